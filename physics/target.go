package physics

import "github.com/jakecoffman/cp"

const DefaultTargetRadius = 15.0

// Target is a fixed destructible body. It starts alive and dies on its first hit.
type Target struct {
	slot   int
	pos    cp.Vector
	radius float64
	alive  bool
}

// NewTarget creates a live target. slot is the target's index within its
// round's batch and decides the order targets are tested in.
func NewTarget(slot int, pos cp.Vector, radius float64) Target {
	if radius == 0 {
		radius = DefaultTargetRadius
	}
	return Target{
		slot:   slot,
		pos:    pos,
		radius: radius,
		alive:  true,
	}
}

// MarkHit kills the target. It returns true only when the target was alive,
// so a repeated hit produces no second "destroyed" event.
func (t *Target) MarkHit() bool {
	if !t.alive {
		return false
	}
	t.alive = false
	return true
}

// Bounds returns the square bound around the target.
func (t *Target) Bounds() cp.BB {
	return SquareBounds(t.pos, t.radius)
}

func (t *Target) IsAlive() bool       { return t.alive }
func (t *Target) Slot() int           { return t.slot }
func (t *Target) Position() cp.Vector { return t.pos }
func (t *Target) Radius() float64     { return t.radius }
