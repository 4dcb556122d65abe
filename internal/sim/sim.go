// Package sim runs the platformer headless from a scripted input timeline.
package sim

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/superdudu/internal/core"
	"github.com/vovakirdan/superdudu/internal/games/platformer"
)

// ErrBadScript is wrapped by every script decoding error.
var ErrBadScript = errors.New("sim: invalid script")

// Segment holds a set of actions for the ticks in [From, To).
// At is shorthand for a single tick.
type Segment struct {
	From    *uint64  `yaml:"from"`
	To      *uint64  `yaml:"to"`
	At      *uint64  `yaml:"at"`
	Actions []string `yaml:"actions"`
}

// Script describes one headless run.
type Script struct {
	Character   string    `yaml:"character"`
	Level       int       `yaml:"level"`
	Ticks       uint64    `yaml:"ticks"`
	AutoAdvance bool      `yaml:"auto_advance"` // Continue to the next level on completion
	Inputs      []Segment `yaml:"inputs"`

	character platformer.Character
	frames    []span
}

type span struct {
	from, to uint64
	frame    core.InputFrame
}

var actionNames = map[string]core.Action{
	"left":  core.ActionLeft,
	"right": core.ActionRight,
	"jump":  core.ActionJump,
	"run":   core.ActionRun,
}

// ParseScript decodes and checks a YAML script.
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("%w: %v", ErrBadScript, err)
	}
	if err := s.compile(); err != nil {
		return Script{}, err
	}
	return s, nil
}

// LoadScript reads a script file.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return Script{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (s *Script) compile() error {
	s.character = platformer.CharacterBubu
	if s.Character != "" {
		c, err := platformer.ParseCharacter(s.Character)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBadScript, err)
		}
		s.character = c
	}
	if s.Level <= 0 {
		s.Level = 1
	}
	if s.Ticks == 0 {
		return fmt.Errorf("%w: ticks must be positive", ErrBadScript)
	}

	s.frames = s.frames[:0]
	for i, seg := range s.Inputs {
		var from, to uint64
		switch {
		case seg.At != nil:
			if seg.From != nil || seg.To != nil {
				return fmt.Errorf("%w: input %d: at excludes from/to", ErrBadScript, i)
			}
			from, to = *seg.At, *seg.At+1
		case seg.From != nil && seg.To != nil:
			from, to = *seg.From, *seg.To
		case seg.From != nil:
			from, to = *seg.From, s.Ticks
		default:
			return fmt.Errorf("%w: input %d: needs at or from", ErrBadScript, i)
		}
		if to <= from {
			return fmt.Errorf("%w: input %d: empty range [%d, %d)", ErrBadScript, i, from, to)
		}

		frame := core.NewInputFrame()
		for _, name := range seg.Actions {
			a, ok := actionNames[strings.ToLower(strings.TrimSpace(name))]
			if !ok {
				return fmt.Errorf("%w: input %d: unknown action %q", ErrBadScript, i, name)
			}
			frame.Set(a)
		}
		s.frames = append(s.frames, span{from: from, to: to, frame: frame})
	}
	return nil
}

// Controls returns the merged controls for tick t. Overlapping segments
// combine their actions.
func (s Script) Controls(t uint64) core.Controls {
	frame := core.NewInputFrame()
	for _, sp := range s.frames {
		if t < sp.from || t >= sp.to {
			continue
		}
		for a, on := range sp.frame.Actions {
			if on {
				frame.Set(a)
			}
		}
	}
	return frame.Controls()
}

// Result summarizes a finished run.
type Result struct {
	Final  platformer.State
	Ticks  uint64
	Events map[platformer.EventKind]int
	Hash   uint64
}

// Run plays the script from a fresh game and stops after the scripted number
// of ticks or once the game leaves the playing status for good.
func Run(e *platformer.Engine, s Script) (Result, error) {
	state := e.SelectLevel(e.NewGame(s.character), s.Level)
	res := Result{Events: make(map[platformer.EventKind]int)}

	for t := range s.Ticks {
		if state.Status == platformer.StatusLevelComplete && s.AutoAdvance {
			next, err := e.Apply(state, platformer.CmdNextLevel)
			if err != nil {
				return Result{}, err
			}
			state = next
		}
		if state.Status != platformer.StatusPlaying {
			break
		}

		var events []platformer.Event
		state, events = e.StepWithEvents(state, s.Controls(t))
		for _, ev := range events {
			res.Events[ev.Kind]++
		}
		res.Ticks++
	}

	res.Final = state
	snap := state.Snapshot()
	res.Hash = snap.Hash()
	return res, nil
}
