package render_test

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/plus3/slingshot/game"
	"github.com/plus3/slingshot/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playingSnapshot(t *testing.T) game.Snapshot {
	t.Helper()
	g, err := game.New(game.DefaultConfig())
	require.NoError(t, err)
	g.HandleInput(game.Start{})
	g.Update(0)
	return g.Snapshot()
}

func TestBuildSceneMenu(t *testing.T) {
	g, err := game.New(game.DefaultConfig())
	require.NoError(t, err)

	scene := render.BuildScene(g.Snapshot())

	assert.Equal(t, render.SkyColor, scene.Background)
	assert.Equal(t, []render.Rect{
		{X: 80, Y: 450, W: 50, H: 150, Color: render.SlingColor},
		{X: 0, Y: 500, W: 800, H: 100, Color: render.GroundColor},
	}, scene.Rects)
	require.Len(t, scene.Circles, 1, "only the projectile before the first round")
	assert.Equal(t, "SLINGSHOT", scene.Labels[0].Text)
}

func TestBuildScenePlaying(t *testing.T) {
	scene := render.BuildScene(playingSnapshot(t))

	assert.Equal(t, 800.0, scene.Width)
	assert.Equal(t, 600.0, scene.Height)
	assert.Empty(t, scene.Lines)
	require.Len(t, scene.Circles, 4)

	for i, c := range scene.Circles[:3] {
		assert.Equal(t, cp.Vector{X: 600 + 50*float64(i), Y: 480}, c.Center)
		assert.Equal(t, 15.0, c.Radius)
		assert.Equal(t, render.TargetColor, c.Color)
	}

	projectile := scene.Circles[3]
	assert.Equal(t, cp.Vector{X: 100, Y: 450}, projectile.Center)
	assert.Equal(t, render.ProjectileColor, projectile.Color)
	assert.Equal(t, "round 1  shots 0  hits 0", scene.Labels[0].Text)
}

func TestBuildSceneAimLine(t *testing.T) {
	snapshot := playingSnapshot(t)
	snapshot.Aim = game.AimLine{Active: true, From: cp.Vector{X: 100, Y: 450}, To: cp.Vector{X: 60, Y: 500}}

	scene := render.BuildScene(snapshot)

	assert.Equal(t, []render.Line{{
		From:  cp.Vector{X: 100, Y: 450},
		To:    cp.Vector{X: 60, Y: 500},
		Color: render.AimColor,
	}}, scene.Lines)
}

func TestBuildSceneSkipsDeadTargets(t *testing.T) {
	snapshot := playingSnapshot(t)
	snapshot.Targets = snapshot.Targets[1:]
	snapshot.Round.Pending = true

	scene := render.BuildScene(snapshot)

	assert.Len(t, scene.Circles, 3)
	assert.Equal(t, "round cleared", scene.Labels[1].Text)
}

func TestBuildSceneFollowsViewport(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Viewport = game.Viewport{Width: 1024, Height: 768, GroundY: 700}
	cfg.Projectile.OriginX = 150
	cfg.Projectile.OriginY = 500
	g, err := game.New(cfg)
	require.NoError(t, err)

	scene := render.BuildScene(g.Snapshot())

	assert.Equal(t, []render.Rect{
		{X: 130, Y: 500, W: 50, H: 200, Color: render.SlingColor},
		{X: 0, Y: 600, W: 1024, H: 100, Color: render.GroundColor},
	}, scene.Rects)
}
