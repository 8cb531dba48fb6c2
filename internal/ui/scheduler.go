package ui

import tea "github.com/charmbracelet/bubbletea"

// deferredMsg carries work queued during one Update into the next
type deferredMsg struct {
	fns []func()
}

func (m deferredMsg) run() {
	for _, fn := range m.fns {
		fn()
	}
}

// Scheduler defers pager notifications to a later turn of the Bubble Tea loop
type Scheduler struct {
	queue []func()
}

// Defer implements pager.Scheduler
func (s *Scheduler) Defer(fn func()) {
	s.queue = append(s.queue, fn)
}

// Cmd drains the queue into a command; nil when nothing is queued
func (s *Scheduler) Cmd() tea.Cmd {
	if len(s.queue) == 0 {
		return nil
	}
	fns := s.queue
	s.queue = nil
	return func() tea.Msg { return deferredMsg{fns: fns} }
}
