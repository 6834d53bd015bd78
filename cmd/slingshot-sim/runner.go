package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/plus3/slingshot/ecs"
	"github.com/plus3/slingshot/game"
	"github.com/plus3/slingshot/render"
)

// RunOptions configures a single scripted game.
type RunOptions struct {
	Config game.Config
	Shots  []Shot
	DT     float64
	Logger *slog.Logger

	// Recorder and Terminal are optional.
	Recorder *game.Recorder
	Terminal *render.Terminal

	// Pace sleeps between steps so a terminal view can be followed.
	Pace time.Duration
}

// Result summarises one run.
type Result struct {
	Run           int
	Ticks         uint64
	SimTime       float64
	Shots         int
	Hits          int
	RoundsCleared int
	Rounds        int
	Completed     bool
	Wall          time.Duration
	Systems       []ecs.SystemStats
}

// Run plays the script: it starts the game, fires the next shot whenever the
// projectile is at rest and steps with a fixed dt. It stops when the script
// is exhausted and the projectile is at rest, or when ctx is done.
func Run(ctx context.Context, run int, opts RunOptions) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("run", run)

	g, err := game.New(opts.Config, game.WithLogger(logger))
	if err != nil {
		return Result{}, err
	}

	listeners := []game.Listener{game.NewLogListener(logger)}

	start := time.Now()
	g.HandleInput(game.Start{})

	next := 0
	completed := false
Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}

		if !g.Projectile().IsFlying() {
			if next == len(opts.Shots) {
				completed = true
				break Loop
			}
			shot := opts.Shots[next]
			next++
			g.HandleInput(game.AimBegin{At: shot.Press})
			g.HandleInput(game.AimRelease{At: shot.Release})
		}

		if err := step(g, opts.DT, opts, listeners); err != nil {
			return Result{}, err
		}
		if opts.Pace > 0 {
			time.Sleep(opts.Pace)
		}
	}

	snapshot := g.Snapshot()
	result := Result{
		Run:           run,
		Ticks:         snapshot.Tick,
		SimTime:       snapshot.Time,
		Shots:         snapshot.Stats.Shots,
		Hits:          snapshot.Stats.Hits,
		RoundsCleared: snapshot.Stats.RoundsCleared,
		Rounds:        snapshot.Round.Number,
		Completed:     completed,
		Wall:          time.Since(start),
		Systems:       g.Scheduler().GetStats().Systems,
	}
	logger.Info("run finished", "ticks", result.Ticks, "shots", result.Shots, "hits", result.Hits, "completed", completed)
	return result, nil
}

func step(g *game.Game, dt float64, opts RunOptions, listeners []game.Listener) error {
	events := g.Update(dt)
	game.Dispatch(events, listeners...)

	if opts.Recorder == nil && opts.Terminal == nil {
		return nil
	}

	snapshot := g.Snapshot()
	if opts.Recorder != nil {
		if err := opts.Recorder.Record(snapshot, events); err != nil {
			return fmt.Errorf("record tick %d: %w", snapshot.Tick, err)
		}
	}
	if opts.Terminal != nil {
		opts.Terminal.Draw(snapshot)
	}
	return nil
}
