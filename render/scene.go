// Package render turns a game.Snapshot into pictures: a display list built by
// BuildScene, drawn either with ebiten (Screen) or into a terminal (Terminal).
package render

import (
	"fmt"
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/plus3/slingshot/assets"
	"github.com/plus3/slingshot/game"
)

var (
	SkyColor        = color.RGBA{100, 149, 237, 255}
	SlingColor      = color.RGBA{139, 69, 19, 255}
	GroundColor     = color.RGBA{100, 70, 0, 255}
	ProjectileColor = color.RGBA{220, 30, 30, 255}
	TargetColor     = color.RGBA{40, 180, 60, 255}
	AimColor        = color.RGBA{0, 0, 0, 255}
	TextColor       = color.RGBA{255, 255, 255, 255}
)

// Scenery sizes in viewport units.
const (
	GroundDepth = 100
	SlingWidth  = 50
	slingInset  = 20
)

// SlingBase is the post under the launch origin, reaching down to the ground
// line.
func SlingBase(v game.Viewport, origin cp.Vector) Rect {
	return Rect{X: origin.X - slingInset, Y: origin.Y, W: SlingWidth, H: v.GroundY - origin.Y, Color: SlingColor}
}

// Ground is the strip drawn just above the ground line.
func Ground(v game.Viewport) Rect {
	return Rect{X: 0, Y: v.GroundY - GroundDepth, W: v.Width, H: GroundDepth, Color: GroundColor}
}

type Rect struct {
	X, Y, W, H float64
	Color      color.RGBA
}

// Circle is a round body. Sprite names the texture drawn in its place when
// one is loaded.
type Circle struct {
	Center cp.Vector
	Radius float64
	Color  color.RGBA
	Sprite string
	Rune   rune
}

type Line struct {
	From, To cp.Vector
	Color    color.RGBA
}

type Label struct {
	Text string
	X, Y float64
}

// Scene is a display list, drawn back to front: background, rects, lines,
// circles, labels.
type Scene struct {
	Width, Height float64
	Background    color.RGBA
	Rects         []Rect
	Lines         []Line
	Circles       []Circle
	Labels        []Label
}

// BuildScene lays out one frame. It only reads the snapshot.
func BuildScene(s game.Snapshot) Scene {
	scene := Scene{
		Width:      s.Viewport.Width,
		Height:     s.Viewport.Height,
		Background: SkyColor,
		Rects:      []Rect{SlingBase(s.Viewport, s.Projectile.Origin), Ground(s.Viewport)},
	}

	if s.Aim.Active {
		scene.Lines = append(scene.Lines, Line{From: s.Aim.From, To: s.Aim.To, Color: AimColor})
	}

	for _, target := range s.Targets {
		scene.Circles = append(scene.Circles, Circle{
			Center: target.Position,
			Radius: target.Radius,
			Color:  TargetColor,
			Sprite: assets.TexturePig,
			Rune:   '@',
		})
	}

	scene.Circles = append(scene.Circles, Circle{
		Center: s.Projectile.Position,
		Radius: s.Projectile.Radius,
		Color:  ProjectileColor,
		Sprite: assets.TextureBird,
		Rune:   'O',
	})

	switch s.Mode {
	case game.Menu:
		scene.Labels = append(scene.Labels,
			Label{Text: "SLINGSHOT", X: s.Viewport.Width/2 - 32, Y: s.Viewport.Height / 3},
			Label{Text: "press enter to start", X: s.Viewport.Width/2 - 70, Y: s.Viewport.Height/3 + 20},
		)
	case game.Playing:
		scene.Labels = append(scene.Labels, Label{
			Text: fmt.Sprintf("round %d  shots %d  hits %d", s.Round.Number, s.Stats.Shots, s.Stats.Hits),
			X:    10,
			Y:    20,
		})
		if s.Round.Pending {
			scene.Labels = append(scene.Labels, Label{
				Text: "round cleared",
				X:    s.Viewport.Width/2 - 45,
				Y:    s.Viewport.Height / 3,
			})
		}
	case game.Over:
		scene.Labels = append(scene.Labels, Label{Text: "game over", X: s.Viewport.Width/2 - 32, Y: s.Viewport.Height / 3})
	}

	return scene
}
