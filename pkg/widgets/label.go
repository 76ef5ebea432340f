package widgets

import (
	"unicode/utf8"

	"github.com/go-drift/pagestate/pkg/graphics"
	"github.com/go-drift/pagestate/pkg/view"
)

// Fixed glyph metrics shared by every backend (7x13 bitmap font).
const (
	GlyphWidth  = 7
	GlyphHeight = 13
)

// Label draws a single line of text centered in its bounds.
type Label struct {
	view.Base

	Text  string
	Color graphics.Color
}

// NewLabel creates a label that wraps its text.
func NewLabel(id, text string, color graphics.Color) *Label {
	l := &Label{Text: text, Color: color}
	l.SetID(id)
	return l
}

func (l *Label) IntrinsicSize() graphics.Size {
	return graphics.Size{
		Width:  float64(utf8.RuneCountInString(l.Text) * GlyphWidth),
		Height: GlyphHeight,
	}
}

func (l *Label) Paint(canvas graphics.Canvas) {
	l.Base.Paint(canvas)
	if l.Text == "" {
		return
	}
	size, text := l.Size(), l.IntrinsicSize()
	pos := graphics.Offset{
		X: (size.Width - text.Width) / 2,
		Y: (size.Height - text.Height) / 2,
	}
	canvas.DrawText(l.Text, pos, graphics.Paint{Color: l.Color})
}
