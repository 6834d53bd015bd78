package game

import "fmt"

// Mode is the top level state of a game.
type Mode int

const (
	// Menu is the initial mode. Only Start is accepted.
	Menu Mode = iota
	// Playing runs the simulation.
	Playing
	// Over is declared for a future loss condition. Nothing transitions
	// into it today.
	Over
)

func (m Mode) String() string {
	switch m {
	case Menu:
		return "menu"
	case Playing:
		return "playing"
	case Over:
		return "over"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}
