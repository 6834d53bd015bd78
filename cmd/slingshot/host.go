package main

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"

	"github.com/plus3/slingshot/assets"
	debugui_ebiten "github.com/plus3/slingshot/debugui/ebiten"
	"github.com/plus3/slingshot/game"
	"github.com/plus3/slingshot/render"
)

// host adapts a game.Game to ebiten.Game.
type host struct {
	game      *game.Game
	registry  *assets.Registry
	screen    *render.Screen
	listeners []game.Listener
	overlay   *debugui_ebiten.Overlay

	last time.Time
}

func newHost(g *game.Game, registry *assets.Registry, logger *slog.Logger) *host {
	return &host{
		game:      g,
		registry:  registry,
		screen:    render.NewScreen(registry),
		listeners: []game.Listener{registry, game.NewLogListener(logger)},
	}
}

func (h *host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if h.overlay != nil && inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		h.overlay.Toggle()
	}

	for _, cmd := range h.commands() {
		h.game.HandleInput(cmd)
	}

	now := time.Now()
	dt := 0.0
	if !h.last.IsZero() {
		dt = now.Sub(h.last).Seconds()
	}
	h.last = now

	game.Dispatch(h.game.Update(dt), h.listeners...)
	h.registry.Collect()

	if h.overlay != nil {
		h.overlay.Update(dt)
	}
	return nil
}

// commands maps this frame's keyboard and mouse edges to game commands.
// Mouse edges are dropped while the overlay owns the cursor.
func (h *host) commands() []game.Command {
	var cmds []game.Command

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		cmds = append(cmds, game.Start{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		cmds = append(cmds, game.Reset{})
	}

	if h.overlay != nil && h.overlay.WantsMouse() {
		return cmds
	}

	x, y := ebiten.CursorPosition()
	cursor := cp.Vector{X: float64(x), Y: float64(y)}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		cmds = append(cmds, game.AimBegin{At: cursor})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		cmds = append(cmds, game.AimRelease{At: cursor})
	}
	return cmds
}

func (h *host) Draw(screen *ebiten.Image) {
	h.screen.Draw(screen, h.game.Snapshot())
	if h.overlay != nil {
		h.overlay.Draw(screen)
	}
}

// Layout keeps the logical screen at the viewport size, so cursor positions
// are already in world units.
func (h *host) Layout(outsideWidth, outsideHeight int) (int, int) {
	viewport := h.game.Config().Viewport
	width, height := int(viewport.Width), int(viewport.Height)
	if h.overlay != nil {
		h.overlay.Layout(width, height)
	}
	return width, height
}
