package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/slingshot/game"
)

// Terminal draws scenes into a tcell screen, one cell per block of viewport
// units.
type Terminal struct {
	screen tcell.Screen
}

func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Draw(snapshot game.Snapshot) {
	t.DrawScene(BuildScene(snapshot))
}

func (t *Terminal) DrawScene(scene Scene) {
	cols, rows := t.screen.Size()
	if cols == 0 || rows == 0 {
		return
	}
	sx := float64(cols) / scene.Width
	sy := float64(rows) / scene.Height
	cell := func(x, y float64) (int, int) {
		return int(math.Floor(x * sx)), int(math.Floor(y * sy))
	}

	t.screen.Clear()
	t.fill(0, 0, cols, rows, ' ', background(scene.Background))

	for _, r := range scene.Rects {
		x0, y0 := cell(r.X, r.Y)
		x1, y1 := cell(r.X+r.W, r.Y+r.H)
		t.fill(x0, y0, x1, y1, ' ', background(r.Color))
	}

	for _, l := range scene.Lines {
		x0, y0 := cell(l.From.X, l.From.Y)
		x1, y1 := cell(l.To.X, l.To.Y)
		t.line(x0, y0, x1, y1, '.', tcell.StyleDefault.Foreground(rgb(l.Color)))
	}

	for _, c := range scene.Circles {
		x, y := cell(c.Center.X, c.Center.Y)
		t.set(x, y, c.Rune, tcell.StyleDefault.Foreground(rgb(c.Color)).Bold(true))
	}

	for _, l := range scene.Labels {
		x, y := cell(l.X, l.Y)
		for i, r := range l.Text {
			t.set(x+i, y, r, tcell.StyleDefault.Foreground(tcell.ColorWhite))
		}
	}

	t.screen.Show()
}

func (t *Terminal) set(x, y int, r rune, style tcell.Style) {
	cols, rows := t.screen.Size()
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return
	}
	t.screen.SetContent(x, y, r, nil, style)
}

func (t *Terminal) fill(x0, y0, x1, y1 int, r rune, style tcell.Style) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			t.set(x, y, r, style)
		}
	}
}

// line draws with Bresenham's algorithm.
func (t *Terminal) line(x0, y0, x1, y1 int, r rune, style tcell.Style) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	stepX, stepY := 1, 1
	if x0 > x1 {
		stepX = -1
	}
	if y0 > y1 {
		stepY = -1
	}

	e := dx + dy
	for {
		t.set(x0, y0, r, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += stepX
		}
		if e2 <= dx {
			e += dx
			y0 += stepY
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func background(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Background(rgb(c))
}
