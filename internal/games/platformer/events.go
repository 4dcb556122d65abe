package platformer

import "fmt"

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventCoin EventKind = iota
	EventPowerUp
	EventStomp
	EventHit
	EventLifeLost
	EventLevelComplete
	EventTimeUp
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventCoin:
		return "coin"
	case EventPowerUp:
		return "powerup"
	case EventStomp:
		return "stomp"
	case EventHit:
		return "hit"
	case EventLifeLost:
		return "life-lost"
	case EventLevelComplete:
		return "level-complete"
	case EventTimeUp:
		return "time-up"
	case EventGameOver:
		return "game-over"
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// Event is emitted by StepWithEvents. ID names the entity involved, if any.
type Event struct {
	Kind   EventKind
	ID     string
	Points int
}

// events collects tick events; a nil recorder discards them.
type events struct {
	list []Event
}

func (ev *events) add(kind EventKind, id string, points int) {
	if ev == nil {
		return
	}
	ev.list = append(ev.list, Event{Kind: kind, ID: id, Points: points})
}
