// Package game runs a slingshot session: the mode state machine, the round
// controller and the per-step systems, on top of an ecs.Storage.
//
// A host feeds player input through HandleInput, advances time with Update
// and draws from Snapshot. Update returns the events of the step; hosts route
// them to audio, logging or a replay recorder with Dispatch.
package game

import (
	"fmt"
	"log/slog"

	"github.com/plus3/slingshot/ecs"
	"github.com/plus3/slingshot/physics"
)

// Game is one slingshot session. It is not safe for concurrent use.
type Game struct {
	cfg    Config
	logger *slog.Logger

	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	round     *RoundController

	mode       *ecs.Singleton[ModeState]
	projectile *ecs.Singleton[physics.Projectile]
	aim        *ecs.Singleton[Aim]
	session    *ecs.Singleton[Session]
	events     *ecs.Singleton[EventLog]

	tick uint64
	time float64
}

type Option func(*Game)

// WithLogger sets the logger for ignored input and mode changes.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// New validates cfg and builds a game in Menu mode.
func New(cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:    cfg,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}

	g.storage = ecs.NewStorage(newRegistry())
	g.mode = ecs.NewSingleton(g.storage, ModeState{Mode: Menu})
	g.projectile = ecs.NewSingleton(g.storage, *physics.NewProjectile(cfg.Origin(), cfg.ProjectileParams()))
	g.aim = ecs.NewSingleton(g.storage, Aim{})
	g.session = ecs.NewSingleton(g.storage, Session{})
	g.events = ecs.NewSingleton(g.storage, EventLog{})
	g.round = NewRoundController(g.storage, cfg.Targets, cfg.Round.Dwell)

	g.scheduler = ecs.NewScheduler(g.storage)
	g.scheduler.Register(&FlightSystem{ReturnOnLanding: cfg.Projectile.ReturnOnLanding})
	g.scheduler.Register(&CollisionSystem{})
	g.scheduler.Register(&RoundSystem{Round: g.round})

	return g, nil
}

// HandleInput applies a command and reports whether it had an effect.
// Commands that do not apply to the current mode are ignored.
func (g *Game) HandleInput(cmd Command) bool {
	mode := g.Mode()

	switch mode {
	case Menu:
		if _, ok := cmd.(Start); ok {
			g.setMode(Playing)
			g.round.ResetRound()
			return true
		}

	case Playing:
		switch c := cmd.(type) {
		case AimBegin:
			aim := g.aim.Get()
			aim.Active = true
			aim.Press = c.At
			return true

		case AimRelease:
			return g.release(c)

		case Reset:
			g.round.ManualReset()
			return true
		}
	}

	g.logger.Debug("input ignored", "mode", mode.String(), "command", fmt.Sprint(cmd))
	return false
}

func (g *Game) release(c AimRelease) bool {
	aim := g.aim.Get()
	if !aim.Active {
		g.logger.Debug("release without press ignored")
		return false
	}
	aim.Active = false

	velocity := LaunchVelocity(aim.Press, c.At, g.cfg.Input.PowerMultiplier)
	if !g.projectile.Get().Launch(velocity.X, velocity.Y) {
		g.logger.Debug("launch ignored, projectile in flight")
		return false
	}

	g.session.Get().Shots++
	g.events.Get().Emit(ProjectileLaunched{Velocity: velocity})
	return true
}

func (g *Game) setMode(to Mode) {
	state := g.mode.Get()
	from := state.Mode
	state.Mode = to
	g.events.Get().Emit(ModeChanged{From: from, To: to})
}

// Update advances the simulation by dt seconds and returns the events raised
// since the previous Update, including those caused by input. Outside Playing
// no time passes.
func (g *Game) Update(dt float64) []Event {
	if g.Mode() == Playing {
		g.scheduler.Once(dt)
		g.tick++
		g.time += dt
	}

	return g.events.Get().Drain()
}

func (g *Game) Mode() Mode {
	return g.mode.Get().Mode
}

func (g *Game) Config() Config {
	return g.cfg
}

// Projectile exposes the live projectile.
func (g *Game) Projectile() *physics.Projectile {
	return g.projectile.Get()
}

// Round exposes the round controller.
func (g *Game) Round() *RoundController {
	return g.round
}

// Storage and Scheduler are exposed for debug tooling.
func (g *Game) Storage() *ecs.Storage {
	return g.storage
}

func (g *Game) Scheduler() *ecs.Scheduler {
	return g.scheduler
}
