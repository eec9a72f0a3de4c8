package domain

import "time"

// IssueSummary is one row of an issue list query. Never mutated after
// creation; a fresh list replaces any prior list on re-query.
type IssueSummary struct {
	Key      string
	Type     string
	Title    string
	Status   string
	Assignee string
}

// Comment is one entry of an issue's comment thread
type Comment struct {
	Author    string
	Timestamp string
	Body      string
}

// IssueDetail is the full view of a single issue
type IssueDetail struct {
	IssueSummary
	Description string
	Comments    []Comment
}

// AuthState classifies the availability of the external tool
type AuthState int

const (
	AuthUnknown AuthState = iota
	AuthNotInstalled
	AuthNotConfigured
	AuthReady
	AuthError
)

// String implements fmt.Stringer
func (s AuthState) String() string {
	switch s {
	case AuthNotInstalled:
		return "not installed"
	case AuthNotConfigured:
		return "not configured"
	case AuthReady:
		return "ready"
	case AuthError:
		return "error"
	default:
		return "unknown"
	}
}

// AuthStatus is the tri-state-plus-detail produced by the status monitor.
// Only the status monitor creates these; the UI thread owns the current one.
type AuthStatus struct {
	State AuthState
	// Detail carries the authenticated identity when Ready, or raw stderr
	// when State is AuthError.
	Detail    string
	CheckedAt time.Time
}

// Usable reports whether query and mutation actions should be offered
func (a AuthStatus) Usable() bool {
	return a.State == AuthReady
}
