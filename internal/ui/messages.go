package ui

import (
	"jtui/internal/domain"
	"jtui/internal/ports"
)

// Query result messages. Each carries the sequence number issued when the
// query was dispatched; the model drops results whose sequence is no longer
// the latest for the slot, so a slow early query can never overwrite the
// result of a later one.

// authStatusMsg delivers the result of an authentication check
type authStatusMsg struct {
	seq    uint64
	status domain.AuthStatus
}

// issueListMsg delivers the result of an issue list query
type issueListMsg struct {
	seq    uint64
	title  string
	issues []domain.IssueSummary
	err    error
}

// issueDetailMsg delivers the result of an issue view query
type issueDetailMsg struct {
	seq    uint64
	detail domain.IssueDetail
	err    error
}

// commentAddedMsg reports completion of a comment mutation
type commentAddedMsg struct {
	key string
	err error
}

// transitionDoneMsg reports completion of an issue transition
type transitionDoneMsg struct {
	key   string
	state string
	err   error
}

// Terminal session messages.

// sessionOutputMsg carries one chunk of pty output
type sessionOutputMsg struct {
	chunk []byte
}

// sessionExitMsg reports that the hosted process has finished
type sessionExitMsg struct {
	exit ports.SessionExit
}
