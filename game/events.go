package game

import (
	"fmt"
	"log/slog"

	"github.com/jakecoffman/cp"
)

//go:generate go tool mockgen -destination=./mocks/listener_mock.go -package=mocks . Listener

// Event is something that happened during a step. Update returns the events
// of the step in the order they occurred.
type Event interface {
	fmt.Stringer
	event()
}

// TargetDestroyed is emitted when a live target is hit. Hosts play the hit
// sound on it.
type TargetDestroyed struct {
	Round    int
	Slot     int
	Position cp.Vector
}

type ProjectileLaunched struct {
	Velocity cp.Vector
}

type ProjectileLanded struct {
	Position cp.Vector
}

// RoundCleared is emitted on the step the last target dies, when the dwell
// timer starts.
type RoundCleared struct {
	Round int
}

// RoundReset is emitted whenever a fresh batch is spawned. Manual is set for
// player-requested resets.
type RoundReset struct {
	Round  int
	Manual bool
}

type ModeChanged struct {
	From, To Mode
}

func (TargetDestroyed) event()    {}
func (ProjectileLaunched) event() {}
func (ProjectileLanded) event()   {}
func (RoundCleared) event()       {}
func (RoundReset) event()         {}
func (ModeChanged) event()        {}

func (e TargetDestroyed) String() string {
	return fmt.Sprintf("target-destroyed round=%d slot=%d", e.Round, e.Slot)
}

func (e ProjectileLaunched) String() string {
	return fmt.Sprintf("projectile-launched v=(%.1f,%.1f)", e.Velocity.X, e.Velocity.Y)
}

func (e ProjectileLanded) String() string {
	return fmt.Sprintf("projectile-landed x=%.1f", e.Position.X)
}

func (e RoundCleared) String() string {
	return fmt.Sprintf("round-cleared round=%d", e.Round)
}

func (e RoundReset) String() string {
	return fmt.Sprintf("round-reset round=%d manual=%t", e.Round, e.Manual)
}

func (e ModeChanged) String() string {
	return fmt.Sprintf("mode-changed %s->%s", e.From, e.To)
}

// EventLog collects the events of the current step. It lives in the ECS as a
// singleton so systems can append to it.
type EventLog struct {
	Events []Event
}

func (l *EventLog) Emit(e Event) {
	l.Events = append(l.Events, e)
}

// Drain returns the collected events and empties the log.
func (l *EventLog) Drain() []Event {
	events := l.Events
	l.Events = nil
	return events
}

// Listener reacts to game events, e.g. by playing a sound.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) {
	f(event)
}

// Dispatch hands every event to every listener, events in order.
func Dispatch(events []Event, listeners ...Listener) {
	for _, event := range events {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
}

// NewLogListener returns a Listener that writes events to logger. A nil
// logger uses slog.Default().
func NewLogListener(logger *slog.Logger) Listener {
	if logger == nil {
		logger = slog.Default()
	}

	return ListenerFunc(func(event Event) {
		switch e := event.(type) {
		case TargetDestroyed:
			logger.Info("target hit", "round", e.Round, "slot", e.Slot, "x", e.Position.X, "y", e.Position.Y)
		case RoundCleared:
			logger.Info("all targets destroyed", "round", e.Round)
		case RoundReset:
			logger.Info("round reset", "round", e.Round, "manual", e.Manual)
		case ModeChanged:
			logger.Info("mode changed", "from", e.From.String(), "to", e.To.String())
		case ProjectileLaunched:
			logger.Debug("projectile launched", "vx", e.Velocity.X, "vy", e.Velocity.Y)
		case ProjectileLanded:
			logger.Debug("projectile landed", "x", e.Position.X, "y", e.Position.Y)
		default:
			logger.Warn("unknown event", "event", event.String())
		}
	})
}
