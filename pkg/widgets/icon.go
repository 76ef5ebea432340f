package widgets

import (
	"unicode/utf8"

	"github.com/go-drift/pagestate/pkg/graphics"
	"github.com/go-drift/pagestate/pkg/view"
)

// Icon is a glyph on a filled disc, sized Diameter on both axes.
type Icon struct {
	view.Base

	Glyph      string
	Diameter   float64
	Fill       graphics.Color
	GlyphColor graphics.Color
}

// NewIcon creates an icon with the given glyph and colors.
func NewIcon(id, glyph string, diameter float64, fill, glyphColor graphics.Color) *Icon {
	i := &Icon{Glyph: glyph, Diameter: diameter, Fill: fill, GlyphColor: glyphColor}
	i.SetID(id)
	return i
}

func (i *Icon) IntrinsicSize() graphics.Size {
	return graphics.Size{Width: i.Diameter, Height: i.Diameter}
}

func (i *Icon) Paint(canvas graphics.Canvas) {
	i.Base.Paint(canvas)
	size := i.Size()
	center := graphics.Offset{X: size.Width / 2, Y: size.Height / 2}
	radius := min(size.Width, size.Height) / 2
	if !i.Fill.IsTransparent() && radius > 0 {
		canvas.DrawCircle(center, radius, graphics.Paint{Color: i.Fill})
	}
	if i.Glyph == "" {
		return
	}
	w := float64(utf8.RuneCountInString(i.Glyph) * GlyphWidth)
	canvas.DrawText(i.Glyph, graphics.Offset{X: center.X - w/2, Y: center.Y - float64(GlyphHeight)/2}, graphics.Paint{Color: i.GlyphColor})
}
