package render_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/jakecoffman/cp"
	"github.com/plus3/slingshot/game"
	"github.com/plus3/slingshot/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 30)
	return screen
}

func runeAt(screen tcell.SimulationScreen, x, y int) rune {
	cells, width, _ := screen.GetContents()
	cell := cells[y*width+x]
	if len(cell.Runes) == 0 {
		return 0
	}
	return cell.Runes[0]
}

func TestTerminalDraw(t *testing.T) {
	screen := newSimScreen(t)
	term := render.NewTerminal(screen)

	term.Draw(playingSnapshot(t))

	// 800x600 viewport on 80x30 cells: 10 units across, 20 down per cell
	assert.Equal(t, 'O', runeAt(screen, 10, 22))
	assert.Equal(t, '@', runeAt(screen, 60, 24))
	assert.Equal(t, '@', runeAt(screen, 65, 24))
	assert.Equal(t, '@', runeAt(screen, 70, 24))
	assert.Equal(t, 'r', runeAt(screen, 1, 1))
	assert.Equal(t, ' ', runeAt(screen, 40, 27), "ground")
}

func TestTerminalAimLine(t *testing.T) {
	screen := newSimScreen(t)
	term := render.NewTerminal(screen)

	snapshot := playingSnapshot(t)
	snapshot.Aim = game.AimLine{
		Active: true,
		From:   snapshot.Projectile.Position,
		To:     cp.Vector{X: 0, Y: 450},
	}

	term.Draw(snapshot)

	assert.Equal(t, '.', runeAt(screen, 0, 22))
	assert.Equal(t, '.', runeAt(screen, 5, 22))
	assert.Equal(t, 'O', runeAt(screen, 10, 22), "the projectile is drawn over the line")
}
