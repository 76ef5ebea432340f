package rendering

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/go-drift/pagestate/pkg/graphics"
	"github.com/go-drift/pagestate/pkg/view"
	"github.com/go-drift/pagestate/pkg/widgets"
)

var red = graphics.RGB(0xFF, 0, 0)

func rgba(c graphics.Color) color.RGBA {
	r, g, b, a := c.Components()
	return color.RGBA{R: r, G: g, B: b, A: a}
}

func TestImageCanvas_Rect(t *testing.T) {
	c := NewImageCanvas(20, 20)
	c.Clear(graphics.ColorWhite)
	c.Save()
	c.Translate(5, 5)
	c.DrawRect(graphics.RectFromLTWH(0, 0, 4, 4), graphics.Paint{Color: red})
	c.Restore()

	img := c.Image()
	if got := img.RGBAAt(6, 6); got != rgba(red) {
		t.Errorf("inside pixel = %v, want red", got)
	}
	if got := img.RGBAAt(2, 2); got != rgba(graphics.ColorWhite) {
		t.Errorf("outside pixel = %v, want white", got)
	}
	if got := img.RGBAAt(9, 9); got != rgba(graphics.ColorWhite) {
		t.Errorf("pixel past the rect = %v, want white", got)
	}
}

func TestImageCanvas_Circle(t *testing.T) {
	c := NewImageCanvas(40, 40)
	c.Clear(graphics.ColorWhite)
	c.DrawCircle(graphics.Offset{X: 20, Y: 20}, 10, graphics.Paint{Color: red})

	img := c.Image()
	if got := img.RGBAAt(20, 20); got != rgba(red) {
		t.Errorf("center pixel = %v, want red", got)
	}
	if got := img.RGBAAt(2, 2); got != rgba(graphics.ColorWhite) {
		t.Errorf("corner pixel = %v, want white", got)
	}
	// The bounding box corner lies outside the disc.
	if got := img.RGBAAt(11, 11); got != rgba(graphics.ColorWhite) {
		t.Errorf("bounding box corner = %v, want white", got)
	}
}

func TestImageCanvas_OffscreenCircle(t *testing.T) {
	c := NewImageCanvas(10, 10)
	c.DrawCircle(graphics.Offset{X: -50, Y: -50}, 5, graphics.Paint{Color: red})
	for _, p := range c.Image().Pix {
		if p != 0 {
			t.Fatal("offscreen circle touched the image")
		}
	}
}

func TestImageCanvas_Text(t *testing.T) {
	c := NewImageCanvas(60, 20)
	c.Clear(graphics.ColorWhite)
	c.DrawText("Hi", graphics.Offset{X: 2, Y: 2}, graphics.Paint{Color: graphics.ColorBlack})

	img := c.Image()
	inked := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 60; x++ {
			if img.RGBAAt(x, y) != rgba(graphics.ColorWhite) {
				inked++
				if x >= 2+2*widgets.GlyphWidth || y >= 2+widgets.GlyphHeight {
					t.Fatalf("ink at (%d,%d) outside the text box", x, y)
				}
			}
		}
	}
	if inked == 0 {
		t.Fatal("no text was drawn")
	}
}

func TestRender_Window(t *testing.T) {
	w := view.NewWindow(50, 50)
	box := view.NewFrame("box")
	box.SetBackground(red)
	_ = w.SetContent(box)
	w.Layout()

	img := Render(w, 50, 50, graphics.ColorWhite)
	if got := img.RGBAAt(25, 25); got != rgba(red) {
		t.Fatalf("pixel = %v, want red", got)
	}
}

func TestEncode(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	decoders := map[string]func(*bytes.Reader) (image.Image, error){
		FormatPNG:  func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) },
		FormatBMP:  func(r *bytes.Reader) (image.Image, error) { return bmp.Decode(r) },
		FormatTIFF: func(r *bytes.Reader) (image.Image, error) { return tiff.Decode(r) },
	}
	for _, format := range Formats {
		var buf bytes.Buffer
		if err := Encode(&buf, img, format); err != nil {
			t.Fatalf("Encode(%s) error: %v", format, err)
		}
		out, err := decoders[format](bytes.NewReader(buf.Bytes()))
		if err != nil {
			t.Fatalf("decode %s: %v", format, err)
		}
		if out.Bounds() != img.Bounds() {
			t.Errorf("%s bounds = %v", format, out.Bounds())
		}
	}

	if err := Encode(&bytes.Buffer{}, img, "gif"); err == nil {
		t.Error("expected an error for an unsupported format")
	}
}

func TestFormatOf(t *testing.T) {
	tests := map[string]string{
		"out/loading.png": FormatPNG,
		"a.BMP":           FormatBMP,
		"b.tif":           FormatTIFF,
	}
	for path, want := range tests {
		got, err := FormatOf(path)
		if err != nil || got != want {
			t.Errorf("FormatOf(%q) = %q, %v; want %q", path, got, err, want)
		}
	}
	if _, err := FormatOf("noext"); err == nil {
		t.Error("expected an error without an extension")
	}
	if Extension(FormatTIFF) != ".tiff" || Extension(FormatPNG) != ".png" {
		t.Error("unexpected extension")
	}
}
