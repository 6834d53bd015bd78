package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/slingshot/game"
	"github.com/plus3/slingshot/physics"
)

// RoundInspector shows the mode, projectile, round timer and targets of a
// game, and offers the player commands as buttons.
type RoundInspector struct {
	game *game.Game
}

func NewRoundInspector(g *game.Game) *RoundInspector {
	return &RoundInspector{game: g}
}

// Lines reads the game's singletons and formats them one fact per line.
func (r *RoundInspector) Lines() []string {
	storage := r.game.Storage()

	var (
		mode       *game.ModeState
		projectile *physics.Projectile
		round      *game.RoundState
		session    *game.Session
	)

	var lines []string
	if storage.ReadSingleton(&mode) {
		lines = append(lines, "mode: "+mode.Mode.String())
	}
	if storage.ReadSingleton(&projectile) {
		pos, vel := projectile.Position(), projectile.Velocity()
		lines = append(lines,
			fmt.Sprintf("projectile: (%.1f, %.1f) flying=%t", pos.X, pos.Y, projectile.IsFlying()),
			fmt.Sprintf("velocity: (%.1f, %.1f)", vel.X, vel.Y),
		)
	}
	if storage.ReadSingleton(&round) {
		lines = append(lines, fmt.Sprintf("round %d pending=%t elapsed=%.2f/%.2f", round.Number, round.Pending, round.Elapsed, round.Dwell))
	}
	if storage.ReadSingleton(&session) {
		lines = append(lines, fmt.Sprintf("shots=%d hits=%d cleared=%d", session.Shots, session.Hits, session.RoundsCleared))
	}

	for _, target := range r.game.Round().Targets() {
		state := "alive"
		if !target.IsAlive() {
			state = "dead"
		}
		pos := target.Position()
		lines = append(lines, fmt.Sprintf("target %d (%.0f, %.0f) %s", target.Slot(), pos.X, pos.Y, state))
	}
	return lines
}

func (r *RoundInspector) Render() {
	if !imgui.BeginV("Round", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	for _, line := range r.Lines() {
		imgui.Text(line)
	}

	imgui.Separator()
	if imgui.Button("Start") {
		r.game.HandleInput(game.Start{})
	}
	imgui.SameLine()
	if imgui.Button("Reset round") {
		r.game.HandleInput(game.Reset{})
	}

	imgui.End()
}
