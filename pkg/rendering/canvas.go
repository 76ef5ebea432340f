// Package rendering rasterizes a view tree into an image.
//
// ImageCanvas implements graphics.Canvas on top of an *image.RGBA. Circles
// are anti-aliased with golang.org/x/image/vector, rectangles are composited
// with golang.org/x/image/draw, and text uses the 7x13 bitmap face from
// golang.org/x/image/font/basicfont, which matches the glyph metrics the
// widgets lay out with.
package rendering

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/go-drift/pagestate/pkg/graphics"
)

// kappa is the control point distance for a quarter circle drawn as a cubic
// bezier, relative to the radius.
const kappa = 0.5522847498

// Painter is anything that can paint itself onto a canvas, such as a
// view.Node or a view.Window.
type Painter interface {
	Paint(canvas graphics.Canvas)
}

// ImageCanvas draws onto an RGBA image.
type ImageCanvas struct {
	img    *image.RGBA
	face   font.Face
	origin graphics.Offset
	stack  []graphics.Offset
}

// NewImageCanvas allocates a transparent width x height image.
func NewImageCanvas(width, height int) *ImageCanvas {
	return &ImageCanvas{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		face: basicfont.Face7x13,
	}
}

// Image returns the backing image.
func (c *ImageCanvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the whole image with col, ignoring the current translation.
func (c *ImageCanvas) Clear(col graphics.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.NRGBA()), image.Point{}, draw.Src)
}

func (c *ImageCanvas) Save() {
	c.stack = append(c.stack, c.origin)
}

func (c *ImageCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.origin = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *ImageCanvas) Translate(dx, dy float64) {
	c.origin = c.origin.Add(graphics.Offset{X: dx, Y: dy})
}

func (c *ImageCanvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	if paint.Color.IsTransparent() {
		return
	}
	r := rect.Translate(c.origin)
	bounds := image.Rect(
		int(math.Round(r.Left)), int(math.Round(r.Top)),
		int(math.Round(r.Right)), int(math.Round(r.Bottom)),
	).Intersect(c.img.Bounds())
	if bounds.Empty() {
		return
	}
	draw.Draw(c.img, bounds, image.NewUniform(paint.Color.NRGBA()), image.Point{}, draw.Over)
}

func (c *ImageCanvas) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	if radius <= 0 || paint.Color.IsTransparent() {
		return
	}
	p := center.Add(c.origin)
	b := c.img.Bounds()
	if p.X+radius < 0 || p.Y+radius < 0 || p.X-radius > float64(b.Dx()) || p.Y-radius > float64(b.Dy()) {
		return
	}

	z := vector.NewRasterizer(b.Dx(), b.Dy())
	cx, cy, r := float32(p.X), float32(p.Y), float32(radius)
	k := r * kappa
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()
	z.Draw(c.img, b, image.NewUniform(paint.Color.NRGBA()), image.Point{})
}

// DrawText draws a single line with its top-left corner at position.
func (c *ImageCanvas) DrawText(text string, position graphics.Offset, paint graphics.Paint) {
	if text == "" || paint.Color.IsTransparent() {
		return
	}
	p := position.Add(c.origin)
	ascent := c.face.Metrics().Ascent
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(paint.Color.NRGBA()),
		Face: c.face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(math.Round(p.X * 64)),
			Y: fixed.Int26_6(math.Round(p.Y*64)) + ascent,
		},
	}
	d.DrawString(text)
}

// Render paints p onto a fresh width x height image filled with background.
func Render(p Painter, width, height int, background graphics.Color) *image.RGBA {
	c := NewImageCanvas(width, height)
	c.Clear(background)
	p.Paint(c)
	return c.Image()
}
