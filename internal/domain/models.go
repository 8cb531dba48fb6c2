package domain

import "fmt"

// Session accumulates what happened during one run of the pager
type Session struct {
	StartPage   int
	LastPage    int
	Changes     int // selection changes reported by the pager
	Navigations int // programmatic navigations requested
	Shift       int // content shift in effect at exit
	Errors      int
}

// Apply folds an event into the session
func (s *Session) Apply(e DomainEvent) {
	switch ev := e.(type) {
	case SelectionChangedEvent:
		s.LastPage = ev.Index
		s.Changes++
	case NavigationRequestedEvent:
		s.Navigations++
	case ContentShiftedEvent:
		s.Shift = ev.Shift
	case ErrorEvent:
		s.Errors++
	}
}

// Summary is the line printed when the program exits
func (s Session) Summary() string {
	return fmt.Sprintf("last page: %d (started at %d, %d changes, %d navigations)",
		s.LastPage, s.StartPage, s.Changes, s.Navigations)
}
