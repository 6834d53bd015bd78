// Command slingshot opens a window and plays the slingshot game with the
// mouse. Enter starts, drag and release to shoot, R resets the round, F1
// toggles the debug overlay when -debug is set, Escape quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/plus3/slingshot/assets"
	debugui_ebiten "github.com/plus3/slingshot/debugui/ebiten"
	"github.com/plus3/slingshot/game"
)

const title = "Slingshot"

func main() {
	if err := run(); err != nil {
		slog.Error("slingshot failed", "err", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "TOML config file; defaults are used when empty.")
	assetDir := flag.String("assets", "assets", "Directory holding bird.png, pig.png, background.png and hit.wav.")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error.")
	debug := flag.Bool("debug", false, "Enable the ImGui debug overlay (toggle with F1).")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := game.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = game.LoadConfig(*configPath); err != nil {
			return err
		}
	}

	g, err := game.New(cfg, game.WithLogger(logger))
	if err != nil {
		return err
	}

	registry := assets.NewRegistry(*assetDir,
		assets.WithLogger(logger),
		assets.WithAudioContext(audio.NewContext(assets.SampleRate)),
	)

	h := newHost(g, registry, logger)

	width, height := int(cfg.Viewport.Width), int(cfg.Viewport.Height)
	if *debug {
		h.overlay = debugui_ebiten.NewOverlay(title, width, height, g)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle(title)
	}

	logger.Info("starting", "assets", *assetDir, "debug", *debug)
	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
