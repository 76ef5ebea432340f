// Package theme holds the visual resources of the page-state templates: the
// spinner palette and metrics, the template background, and the icon and
// text of the error, empty and no-network views.
//
// A Style can be written as YAML and loaded with [Load] or [Parse]:
//
//	spinner:
//	  colors: ["#3296FA", "#15BC83", "#FFBB00", "#F25643"]
//	  period: 1.5s
//	background: "#FFFFFF"
//	error:
//	  text: Something went wrong, tap to retry
package theme

import (
	"slices"
	"time"

	"github.com/go-drift/pagestate/pkg/graphics"
)

// Template describes one built-in state view: a glyph on a disc above a line
// of text.
type Template struct {
	Icon      string
	IconColor graphics.Color
	Text      string
}

// Style is a fully resolved set of template resources.
type Style struct {
	// SpinnerColors has one entry per dot; never empty.
	SpinnerColors []graphics.Color
	RotateRadius  float64
	PointRadius   float64
	Period        time.Duration
	// Curve names an easing curve understood by animation.CurveByName.
	Curve string

	Background   graphics.Color
	TextColor    graphics.Color
	IconDiameter float64
	Spacing      float64

	Error     Template
	Empty     Template
	NoNetwork Template
}

// Default returns the stock style.
func Default() *Style {
	return &Style{
		SpinnerColors: []graphics.Color{
			graphics.RGB(0x32, 0x96, 0xFA),
			graphics.RGB(0x15, 0xBC, 0x83),
			graphics.RGB(0xFF, 0xBB, 0x00),
			graphics.RGB(0xF2, 0x56, 0x43),
		},
		RotateRadius: 60,
		PointRadius:  10,
		Period:       1500 * time.Millisecond,
		Curve:        "linear",
		Background:   graphics.ColorWhite,
		TextColor:    graphics.RGB(0x66, 0x66, 0x66),
		IconDiameter: 48,
		Spacing:      12,
		Error: Template{
			Icon:      "!",
			IconColor: graphics.RGB(0xF2, 0x56, 0x43),
			Text:      "Load failed, tap to retry",
		},
		Empty: Template{
			Icon:      "0",
			IconColor: graphics.RGB(0xBB, 0xBB, 0xBB),
			Text:      "No data, tap to retry",
		},
		NoNetwork: Template{
			Icon:      "?",
			IconColor: graphics.RGB(0xFF, 0xBB, 0x00),
			Text:      "No network, tap to retry",
		},
	}
}

// Clone returns a deep copy of s.
func (s *Style) Clone() *Style {
	c := *s
	c.SpinnerColors = slices.Clone(s.SpinnerColors)
	return &c
}
