package testing

import "github.com/go-drift/pagestate/pkg/graphics"

// DrawOp is one recorded canvas call, in absolute coordinates.
type DrawOp struct {
	Op     string // "rect", "circle" or "text"
	Rect   graphics.Rect
	Center graphics.Offset
	Radius float64
	Text   string
	Color  graphics.Color
}

// RecordingCanvas implements graphics.Canvas and records every draw call with
// the current translation applied.
type RecordingCanvas struct {
	Ops []DrawOp

	origin graphics.Offset
	stack  []graphics.Offset
}

func (c *RecordingCanvas) Save() {
	c.stack = append(c.stack, c.origin)
}

func (c *RecordingCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.origin = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *RecordingCanvas) Translate(dx, dy float64) {
	c.origin = c.origin.Add(graphics.Offset{X: dx, Y: dy})
}

func (c *RecordingCanvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	c.Ops = append(c.Ops, DrawOp{Op: "rect", Rect: rect.Translate(c.origin), Color: paint.Color})
}

func (c *RecordingCanvas) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	c.Ops = append(c.Ops, DrawOp{Op: "circle", Center: center.Add(c.origin), Radius: radius, Color: paint.Color})
}

func (c *RecordingCanvas) DrawText(text string, position graphics.Offset, paint graphics.Paint) {
	c.Ops = append(c.Ops, DrawOp{Op: "text", Center: position.Add(c.origin), Text: text, Color: paint.Color})
}

// Circles returns the recorded circle operations.
func (c *RecordingCanvas) Circles() []DrawOp {
	return c.filter("circle")
}

// Texts returns the text of every recorded text operation.
func (c *RecordingCanvas) Texts() []string {
	var out []string
	for _, op := range c.filter("text") {
		out = append(out, op.Text)
	}
	return out
}

// Reset discards the recorded operations.
func (c *RecordingCanvas) Reset() {
	c.Ops = nil
	c.origin = graphics.Offset{}
	c.stack = nil
}

func (c *RecordingCanvas) filter(op string) []DrawOp {
	var out []DrawOp
	for _, o := range c.Ops {
		if o.Op == op {
			out = append(out, o)
		}
	}
	return out
}
