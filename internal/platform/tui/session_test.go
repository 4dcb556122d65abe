package tui

import (
	"testing"
	"time"
)

func TestNewSessionInterval(t *testing.T) {
	tests := []struct {
		fps  int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}
	for _, tt := range tests {
		if got := NewSession(tt.fps).Interval(); got != tt.want {
			t.Errorf("NewSession(%d).Interval() = %v, want %v", tt.fps, got, tt.want)
		}
	}
}

func TestSessionStoppedSchedulesNothing(t *testing.T) {
	s := NewSession(60)
	if s.Running() {
		t.Fatal("new session should be stopped")
	}
	if s.Next() != nil {
		t.Error("stopped session should not schedule ticks")
	}
	if s.Accept(TickMsg{Gen: 0}) {
		t.Error("stopped session should not accept ticks")
	}
}

func TestSessionStartAccept(t *testing.T) {
	s := NewSession(60)
	if cmd := s.Start(); cmd == nil {
		t.Fatal("Start should schedule a tick")
	}
	if !s.Running() {
		t.Fatal("session should be running after Start")
	}
	if !s.Accept(TickMsg{Gen: s.gen}) {
		t.Error("live generation tick rejected")
	}
	if s.Accept(TickMsg{Gen: s.gen - 1}) {
		t.Error("older generation tick accepted")
	}
}

func TestSessionStopInvalidatesPendingTicks(t *testing.T) {
	s := NewSession(60)
	s.Start()
	pending := TickMsg{Gen: s.gen}

	s.Stop()
	if s.Accept(pending) {
		t.Error("tick from stopped generation accepted")
	}

	// Restarting must not revive the old generation.
	s.Start()
	if s.Accept(pending) {
		t.Error("tick from previous generation accepted after restart")
	}
	if !s.Accept(TickMsg{Gen: s.gen}) {
		t.Error("fresh generation tick rejected")
	}
}

func TestSessionStopIdempotent(t *testing.T) {
	s := NewSession(60)
	s.Start()
	s.Stop()
	gen := s.gen
	s.Stop()
	if s.gen != gen {
		t.Errorf("second Stop bumped generation %d -> %d", gen, s.gen)
	}
}
