// Command slingshot-sim plays scripted slingshot games without a window and
// prints a report. Several independent games can run in parallel, one can be
// recorded to a msgpack replay and one can be watched in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/plus3/slingshot/game"
	"github.com/plus3/slingshot/render"
)

// defaultShots clears the default round, one target per shot.
const defaultShots = "167,-153>0,0;183,-153>0,0;200,-153>0,0"

func main() {
	if err := run(); err != nil {
		slog.Error("slingshot-sim failed", "err", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "TOML config file; defaults are used when empty.")
	duration := flag.Duration("duration", 10*time.Second, "Wall-clock limit for the whole batch.")
	dt := flag.Float64("dt", 1.0/60, "Fixed simulation step in seconds.")
	script := flag.String("shots", defaultShots, "Shot script: px,py>rx,ry separated by ';'.")
	batch := flag.Int("batch", 1, "Number of independent games to run.")
	replayPath := flag.String("replay", "", "Write a msgpack replay of the first game to this file.")
	tui := flag.Bool("tui", false, "Draw the first game in the terminal.")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error.")
	writeConfig := flag.Bool("write-config", false, "Print the effective config as TOML and exit.")
	flag.Parse()

	logger, err := newLogger(*logLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	cfg := game.DefaultConfig()
	if *configPath != "" {
		if cfg, err = game.LoadConfig(*configPath); err != nil {
			return err
		}
	}
	if *writeConfig {
		return cfg.Write(os.Stdout)
	}

	shots, err := ParseShots(*script)
	if err != nil {
		return err
	}
	if *dt <= 0 {
		return errors.New("dt must be positive")
	}
	if *batch < 1 {
		return errors.New("batch must be at least 1")
	}

	first := RunOptions{Config: cfg, Shots: shots, DT: *dt, Logger: logger}

	if *replayPath != "" {
		f, err := os.Create(*replayPath)
		if err != nil {
			return fmt.Errorf("create replay: %w", err)
		}
		defer f.Close()
		first.Recorder = game.NewRecorder(f)
	}

	closeTerminal := func() {}
	if *tui {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("open terminal: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("init terminal: %w", err)
		}
		closeTerminal = sync.OnceFunc(screen.Fini)
		defer closeTerminal()
		first.Terminal = render.NewTerminal(screen)
		first.Pace = time.Duration(*dt * float64(time.Second))
		// Logging would scribble over the view.
		logger = slog.New(slog.DiscardHandler)
		first.Logger = logger
	}

	report := &Report{
		Config:   *configPath,
		Duration: *duration,
		DT:       *dt,
		Batch:    *batch,
		Shots:    len(shots),
		Runs:     make([]Result, *batch),
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info("running simulation", "batch", *batch, "shots", len(shots), "dt", *dt)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	start := time.Now()
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))
	for i := range *batch {
		opts := RunOptions{Config: cfg, Shots: shots, DT: *dt, Logger: logger}
		if i == 0 {
			opts = first
		}
		group.Go(func() error {
			result, err := Run(ctx, i, opts)
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			report.Runs[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	closeTerminal()

	report.TotalTime = time.Since(start)
	report.Systems = MergeSystems(report.Runs)
	runtime.ReadMemStats(&report.MemStatsEnd)

	if first.Recorder != nil {
		logger.Info("replay written", "path", *replayPath, "frames", first.Recorder.Frames())
	}

	return report.Generate(os.Stdout)
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}
