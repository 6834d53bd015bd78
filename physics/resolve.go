package physics

import (
	"cmp"
	"slices"

	"github.com/jakecoffman/cp"
)

// Hit describes the target destroyed by a Resolve pass.
type Hit struct {
	Slot     int
	Position cp.Vector
}

// Resolve tests a flying projectile against targets in the order given and
// stops at the first live target whose bound overlaps the projectile's. That
// target is marked hit and the projectile is returned to its origin. At most
// one target is hit per call; a projectile that is not flying hits nothing.
func Resolve(p *Projectile, targets []*Target) (Hit, bool) {
	if !p.IsFlying() {
		return Hit{}, false
	}

	bounds := p.Bounds()
	for _, target := range targets {
		if !target.IsAlive() || !Overlaps(bounds, target.Bounds()) {
			continue
		}

		target.MarkHit()
		p.Reset()
		return Hit{Slot: target.slot, Position: target.pos}, true
	}

	return Hit{}, false
}

// SortBySlot orders targets by their slot so Resolve visits them in batch order.
func SortBySlot(targets []*Target) {
	slices.SortFunc(targets, func(a, b *Target) int {
		return cmp.Compare(a.slot, b.slot)
	})
}
