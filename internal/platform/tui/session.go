// Package tui provides the Bubble Tea host for the platformer.
// It owns the tick loop, input latching, and terminal rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. Gen ties the message to the
// session generation that scheduled it.
type TickMsg struct {
	Gen uint64
	At  time.Time
}

// Session schedules ticks while the game is playing. Stopping bumps the
// generation, so a tick already in flight is ignored when it arrives.
type Session struct {
	interval time.Duration
	gen      uint64
	running  bool
}

// NewSession creates a stopped session ticking at fps.
func NewSession(fps int) Session {
	if fps <= 0 {
		fps = 60
	}
	return Session{interval: time.Second / time.Duration(fps)}
}

// Start begins a new generation and schedules its first tick.
func (s *Session) Start() tea.Cmd {
	s.gen++
	s.running = true
	return s.Next()
}

// Stop ends the current generation. Pending ticks become stale.
func (s *Session) Stop() {
	if !s.running {
		return
	}
	s.gen++
	s.running = false
}

// Running reports whether ticks are being scheduled.
func (s Session) Running() bool {
	return s.running
}

// Accept reports whether msg belongs to the live generation.
func (s Session) Accept(msg TickMsg) bool {
	return s.running && msg.Gen == s.gen
}

// Next schedules the following tick of the live generation.
func (s Session) Next() tea.Cmd {
	if !s.running {
		return nil
	}
	gen := s.gen
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}

// Interval returns the tick period.
func (s Session) Interval() time.Duration {
	return s.interval
}
