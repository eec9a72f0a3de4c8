package ui

// querySlot identifies one class of in-flight query. Each slot tracks at
// most one outstanding query; issuing a new one supersedes the previous.
type querySlot int

const (
	slotStatus querySlot = iota
	slotList
	slotDetail
	slotCount
)

// slotTracker implements last-writer-wins sequencing for query slots.
// It is only touched from the event loop, so no locking is needed.
type slotTracker struct {
	issued [slotCount]uint64
}

// Issue allocates the next sequence number for a slot. Any result carrying
// an older sequence becomes stale from this point on.
func (t *slotTracker) Issue(slot querySlot) uint64 {
	t.issued[slot]++
	return t.issued[slot]
}

// Current reports whether seq is still the latest issued for the slot.
func (t *slotTracker) Current(slot querySlot, seq uint64) bool {
	return seq == t.issued[slot]
}
