package tetris

import (
	"fmt"
	"time"
)

// EventKind selects which fields of an Event are meaningful.
type EventKind uint8

const (
	// EventTick advances time by DeltaTime.
	EventTick EventKind = iota
	// EventIntent applies Intent.
	EventIntent
)

// Event is the input of one state transition.
type Event struct {
	Kind      EventKind
	DeltaTime time.Duration
	Intent    Intent
}

func Tick(dt time.Duration) Event {
	return Event{Kind: EventTick, DeltaTime: dt}
}

func IntentEvent(i Intent) Event {
	return Event{Kind: EventIntent, Intent: i}
}

func (e Event) String() string {
	switch e.Kind {
	case EventTick:
		return fmt.Sprintf("tick(%s)", e.DeltaTime)
	case EventIntent:
		return e.Intent.String()
	}
	return fmt.Sprintf("event(%d)", uint8(e.Kind))
}
