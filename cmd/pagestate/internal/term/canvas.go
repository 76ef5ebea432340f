// Package term draws view trees in a terminal. One cell stands for a
// widgets.GlyphWidth x widgets.GlyphHeight block of layout pixels, so a line
// of label text maps to one rune per cell.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/pagestate/pkg/graphics"
	"github.com/go-drift/pagestate/pkg/widgets"
)

// Cell size in layout pixels.
const (
	CellWidth  = widgets.GlyphWidth
	CellHeight = widgets.GlyphHeight
)

// CellWriter is the part of tcell.Screen the canvas writes to.
type CellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Canvas implements graphics.Canvas on a rectangle of terminal cells.
type Canvas struct {
	out           CellWriter
	x, y          int
	width, height int

	// bg tracks the fill of every cell so text keeps its background.
	bg     []tcell.Color
	origin graphics.Offset
	stack  []graphics.Offset
}

// NewCanvas returns a canvas drawing into the width x height cells whose top
// left corner is (x, y).
func NewCanvas(out CellWriter, x, y, width, height int) *Canvas {
	bg := make([]tcell.Color, max(0, width*height))
	for i := range bg {
		bg[i] = tcell.ColorDefault
	}
	return &Canvas{out: out, x: x, y: y, width: width, height: height, bg: bg}
}

// Color converts a graphics color to a terminal color. Fully transparent
// colors map to the terminal default.
func Color(c graphics.Color) tcell.Color {
	if c.IsTransparent() {
		return tcell.ColorDefault
	}
	r, g, b, _ := c.Components()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.origin)
}

func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.origin = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) Translate(dx, dy float64) {
	c.origin = c.origin.Add(graphics.Offset{X: dx, Y: dy})
}

func (c *Canvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	if paint.Color.IsTransparent() {
		return
	}
	r := rect.Translate(c.origin)
	x0, y0 := cellFloor(r.Left, CellWidth), cellFloor(r.Top, CellHeight)
	x1, y1 := cellCeil(r.Right, CellWidth), cellCeil(r.Bottom, CellHeight)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			c.fill(cx, cy, Color(paint.Color))
		}
	}
}

// DrawCircle fills the cells whose centers fall inside the circle. Circles
// smaller than a cell become a dot glyph.
func (c *Canvas) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	if radius <= 0 || paint.Color.IsTransparent() {
		return
	}
	p := center.Add(c.origin)
	col := Color(paint.Color)
	x0, y0 := cellFloor(p.X-radius, CellWidth), cellFloor(p.Y-radius, CellHeight)
	x1, y1 := cellCeil(p.X+radius, CellWidth), cellCeil(p.Y+radius, CellHeight)
	filled := false
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			mid := graphics.Offset{X: (float64(cx) + 0.5) * CellWidth, Y: (float64(cy) + 0.5) * CellHeight}
			if mid.Distance(p) <= radius {
				filled = c.fill(cx, cy, col) || filled
			}
		}
	}
	if !filled {
		cx, cy := cellFloor(p.X, CellWidth), cellFloor(p.Y, CellHeight)
		c.set(cx, cy, '●', col)
	}
}

// DrawText writes one rune per cell starting at the cell holding position.
func (c *Canvas) DrawText(text string, position graphics.Offset, paint graphics.Paint) {
	p := position.Add(c.origin)
	cx := int(math.Round(p.X / CellWidth))
	cy := int(math.Round(p.Y / CellHeight))
	fg := Color(paint.Color)
	for _, r := range text {
		c.set(cx, cy, r, fg)
		cx++
	}
}

func (c *Canvas) inside(cx, cy int) bool {
	return cx >= 0 && cy >= 0 && cx < c.width && cy < c.height
}

func (c *Canvas) fill(cx, cy int, col tcell.Color) bool {
	if !c.inside(cx, cy) {
		return false
	}
	c.bg[cy*c.width+cx] = col
	c.out.SetContent(c.x+cx, c.y+cy, ' ', nil, tcell.StyleDefault.Background(col))
	return true
}

func (c *Canvas) set(cx, cy int, r rune, fg tcell.Color) {
	if !c.inside(cx, cy) {
		return
	}
	style := tcell.StyleDefault.Foreground(fg).Background(c.bg[cy*c.width+cx])
	c.out.SetContent(c.x+cx, c.y+cy, r, nil, style)
}

func cellFloor(v float64, size int) int {
	return int(math.Floor(v / float64(size)))
}

func cellCeil(v float64, size int) int {
	return int(math.Ceil(v / float64(size)))
}
