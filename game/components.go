package game

import (
	"github.com/jakecoffman/cp"
	"github.com/plus3/slingshot/ecs"
	"github.com/plus3/slingshot/physics"
)

// RoundState is the round controller's bookkeeping. Number counts batches
// spawned since the game started.
type RoundState struct {
	Number  int
	Pending bool
	Elapsed float64
	Dwell   float64
}

// Aim is the in-progress drag gesture.
type Aim struct {
	Active bool
	Press  cp.Vector
}

// Session accumulates statistics over the whole game.
type Session struct {
	Shots         int
	Hits          int
	RoundsCleared int
}

type ModeState struct {
	Mode Mode
}

type targetEntity struct {
	ecs.EntityId
	*physics.Target
}

func newRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[physics.Target](registry)
	return registry
}
