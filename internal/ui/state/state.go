package state

import "time"

// AppState contains the application side of the pager.
// Bound is the selected page as the application sees it: the pager writes every
// selection change into it and the application reads it to decide where to go next.
type AppState struct {
	// Selection binding
	Bound int

	// Content
	ContentShift int // added to every displayed page number

	// Layout
	Width       int
	Height      int
	RightToLeft bool
	ShowStatus  bool

	// UI state
	StatusMessage string
	StatusIsError bool
	statusExpiry  time.Time
	Ready         bool
}

// NewAppState creates a new application state
func NewAppState(start int) *AppState {
	return &AppState{
		Bound:      start,
		ShowStatus: true,
	}
}

// SetStatus shows msg until ttl has passed
func (s *AppState) SetStatus(msg string, isError bool, now time.Time, ttl time.Duration) {
	s.StatusMessage = msg
	s.StatusIsError = isError
	s.statusExpiry = now.Add(ttl)
}

// ExpireStatus clears the status message once it is due.
// It reports whether the message was cleared.
func (s *AppState) ExpireStatus(now time.Time) bool {
	if s.StatusMessage == "" || now.Before(s.statusExpiry) {
		return false
	}
	s.StatusMessage = ""
	s.StatusIsError = false
	return true
}

// PageHeight is the number of rows available to the pages
func (s *AppState) PageHeight(chrome int) int {
	h := s.Height - chrome
	if h < 1 {
		return 1
	}
	return h
}
