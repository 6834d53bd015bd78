package game

import (
	"github.com/plus3/slingshot/ecs"
	"github.com/plus3/slingshot/physics"
)

// dwellEpsilon absorbs the rounding of summed frame deltas, so twelve steps
// of 0.1s count as a full 1.2s dwell.
const dwellEpsilon = 1e-9

// RoundController owns the target batch: it seeds rounds, notices when every
// target is dead and reseeds after the dwell.
type RoundController struct {
	storage    *ecs.Storage
	layout     TargetConfig
	state      *ecs.Singleton[RoundState]
	projectile *ecs.Singleton[physics.Projectile]
	session    *ecs.Singleton[Session]
	events     *ecs.Singleton[EventLog]
	targets    *ecs.View[targetEntity]
}

// NewRoundController creates a controller over storage. The storage must
// already hold the projectile singleton.
func NewRoundController(storage *ecs.Storage, layout TargetConfig, dwell float64) *RoundController {
	return &RoundController{
		storage:    storage,
		layout:     layout,
		state:      ecs.NewSingleton(storage, RoundState{Dwell: dwell}),
		projectile: ecs.NewSingleton[physics.Projectile](storage),
		session:    ecs.NewSingleton[Session](storage),
		events:     ecs.NewSingleton[EventLog](storage),
		targets:    ecs.NewView[targetEntity](storage),
	}
}

// ResetRound returns the projectile to its origin, replaces the targets with
// a fresh batch and clears the pending reset.
func (r *RoundController) ResetRound() {
	r.reset(false)
}

// ManualReset is ResetRound on player request.
func (r *RoundController) ManualReset() {
	r.reset(true)
}

func (r *RoundController) reset(manual bool) {
	r.projectile.Get().Reset()

	var stale []ecs.EntityId
	for id := range r.targets.Iter() {
		stale = append(stale, id)
	}
	for _, id := range stale {
		r.storage.Delete(id)
	}

	for slot := range r.layout.Count {
		r.storage.Spawn(physics.NewTarget(slot, r.layout.TargetPosition(slot), r.layout.Radius))
	}

	state := r.state.Get()
	state.Number++
	state.Pending = false
	state.Elapsed = 0

	r.events.Get().Emit(RoundReset{Round: state.Number, Manual: manual})
}

// Tick advances the clear detection by dt seconds. The step on which the last
// target is found dead only arms the timer; later steps accumulate dt and the
// round is reset once the dwell has elapsed. Tick reports whether it reset.
func (r *RoundController) Tick(dt float64) bool {
	state := r.state.Get()

	if !state.Pending {
		if r.AllDead() {
			state.Pending = true
			state.Elapsed = 0
			r.session.Get().RoundsCleared++
			r.events.Get().Emit(RoundCleared{Round: state.Number})
		}
		return false
	}

	state.Elapsed += dt
	if state.Elapsed+dwellEpsilon < state.Dwell {
		return false
	}

	r.ResetRound()
	return true
}

// AllDead reports whether no live target remains.
func (r *RoundController) AllDead() bool {
	for item := range r.targets.Values() {
		if item.IsAlive() {
			return false
		}
	}
	return true
}

// Targets returns the current batch, alive or not, in slot order.
func (r *RoundController) Targets() []*physics.Target {
	var targets []*physics.Target
	for item := range r.targets.Values() {
		targets = append(targets, item.Target)
	}
	physics.SortBySlot(targets)
	return targets
}

// State returns the live round state.
func (r *RoundController) State() *RoundState {
	return r.state.Get()
}
