package game

import (
	"github.com/plus3/slingshot/ecs"
	"github.com/plus3/slingshot/physics"
)

// FlightSystem integrates the projectile.
type FlightSystem struct {
	Projectile ecs.Singleton[physics.Projectile]
	Events     ecs.Singleton[EventLog]

	ReturnOnLanding bool
}

func (s *FlightSystem) Execute(frame *ecs.UpdateFrame) {
	projectile := s.Projectile.Get()
	if projectile == nil {
		return
	}

	if !projectile.Integrate(frame.DeltaTime) {
		return
	}

	s.Events.Get().Emit(ProjectileLanded{Position: projectile.Position()})
	if s.ReturnOnLanding {
		projectile.Reset()
	}
}

// CollisionSystem tests the flying projectile against the live targets in
// slot order and destroys at most one per step.
type CollisionSystem struct {
	Targets    ecs.Query[targetEntity]
	Projectile ecs.Singleton[physics.Projectile]
	Round      ecs.Singleton[RoundState]
	Session    ecs.Singleton[Session]
	Events     ecs.Singleton[EventLog]

	batch []*physics.Target
}

func (s *CollisionSystem) Execute(frame *ecs.UpdateFrame) {
	projectile := s.Projectile.Get()
	if projectile == nil || !projectile.IsFlying() {
		return
	}

	s.batch = s.batch[:0]
	for item := range s.Targets.Values() {
		s.batch = append(s.batch, item.Target)
	}
	physics.SortBySlot(s.batch)

	hit, ok := physics.Resolve(projectile, s.batch)
	if !ok {
		return
	}

	s.Session.Get().Hits++
	s.Events.Get().Emit(TargetDestroyed{
		Round:    s.Round.Get().Number,
		Slot:     hit.Slot,
		Position: hit.Position,
	})
}

// RoundSystem drives the round controller. It must be registered last: a
// round reset deletes and spawns targets directly in storage.
type RoundSystem struct {
	Round *RoundController
}

func (s *RoundSystem) Execute(frame *ecs.UpdateFrame) {
	s.Round.Tick(frame.DeltaTime)
}
