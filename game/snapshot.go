package game

import (
	"github.com/jakecoffman/cp"
)

// Snapshot is everything a renderer needs for one frame. It is a value copy;
// holding it does not pin game state.
type Snapshot struct {
	Tick       uint64
	Time       float64
	Mode       Mode
	Viewport   Viewport
	Projectile ProjectileView
	Targets    []TargetView
	Aim        AimLine
	Round      RoundState
	Stats      Session
}

type ProjectileView struct {
	Position cp.Vector
	Origin   cp.Vector
	Bounds   cp.BB
	Radius   float64
	Flying   bool
}

// TargetView is a live target. Dead targets are not drawn and not included.
type TargetView struct {
	Slot     int
	Position cp.Vector
	Radius   float64
}

// AimLine runs from the projectile to the press point while the player is
// dragging and the projectile is at rest.
type AimLine struct {
	Active bool
	From   cp.Vector
	To     cp.Vector
}

func (g *Game) Snapshot() Snapshot {
	projectile := g.projectile.Get()

	snapshot := Snapshot{
		Tick:     g.tick,
		Time:     g.time,
		Mode:     g.Mode(),
		Viewport: g.cfg.Viewport,
		Projectile: ProjectileView{
			Position: projectile.Position(),
			Origin:   projectile.Origin(),
			Bounds:   projectile.Bounds(),
			Radius:   projectile.Radius(),
			Flying:   projectile.IsFlying(),
		},
		Round: *g.round.State(),
		Stats: *g.session.Get(),
	}

	if aim := g.aim.Get(); aim.Active && !projectile.IsFlying() {
		snapshot.Aim = AimLine{Active: true, From: projectile.Position(), To: aim.Press}
	}

	for _, target := range g.round.Targets() {
		if !target.IsAlive() {
			continue
		}
		snapshot.Targets = append(snapshot.Targets, TargetView{
			Slot:     target.Slot(),
			Position: target.Position(),
			Radius:   target.Radius(),
		})
	}

	return snapshot
}
