package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/slingshot/assets"
	"github.com/plus3/slingshot/game"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Screen draws scenes with ebiten. Textures from the registry replace the
// plain shapes when they are loaded.
type Screen struct {
	assets *assets.Registry
	face   font.Face
}

func NewScreen(registry *assets.Registry) *Screen {
	return &Screen{
		assets: registry,
		face:   basicfont.Face7x13,
	}
}

// Draw renders the snapshot onto dst, scaled from the viewport to dst's size.
func (s *Screen) Draw(dst *ebiten.Image, snapshot game.Snapshot) {
	s.DrawScene(dst, BuildScene(snapshot))
}

func (s *Screen) DrawScene(dst *ebiten.Image, scene Scene) {
	bounds := dst.Bounds()
	sx := float32(float64(bounds.Dx()) / scene.Width)
	sy := float32(float64(bounds.Dy()) / scene.Height)

	if bg, ok := s.image(assets.TextureBackground); ok {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(
			float64(bounds.Dx())/float64(bg.Bounds().Dx()),
			float64(bounds.Dy())/float64(bg.Bounds().Dy()),
		)
		dst.DrawImage(bg, op)
	} else {
		dst.Fill(scene.Background)
	}

	for _, r := range scene.Rects {
		vector.DrawFilledRect(dst, float32(r.X)*sx, float32(r.Y)*sy, float32(r.W)*sx, float32(r.H)*sy, r.Color, false)
	}

	for _, l := range scene.Lines {
		vector.StrokeLine(dst,
			float32(l.From.X)*sx, float32(l.From.Y)*sy,
			float32(l.To.X)*sx, float32(l.To.Y)*sy,
			2, l.Color, true)
	}

	for _, c := range scene.Circles {
		cx, cy := float32(c.Center.X)*sx, float32(c.Center.Y)*sy
		if img, ok := s.image(c.Sprite); ok {
			size := img.Bounds()
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(2*c.Radius/float64(size.Dx()), 2*c.Radius/float64(size.Dy()))
			op.GeoM.Translate(c.Center.X-c.Radius, c.Center.Y-c.Radius)
			op.GeoM.Scale(float64(sx), float64(sy))
			dst.DrawImage(img, op)
			continue
		}
		vector.DrawFilledCircle(dst, cx, cy, float32(c.Radius)*sx, c.Color, true)
	}

	for _, l := range scene.Labels {
		text.Draw(dst, l.Text, s.face, int(float32(l.X)*sx), int(float32(l.Y)*sy), TextColor)
	}
}

func (s *Screen) image(name string) (*ebiten.Image, bool) {
	if s.assets == nil || name == "" {
		return nil, false
	}
	return s.assets.Image(name)
}
