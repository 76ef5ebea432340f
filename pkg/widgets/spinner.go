package widgets

import (
	"math"
	"time"

	"github.com/go-drift/pagestate/pkg/animation"
	"github.com/go-drift/pagestate/pkg/graphics"
	"github.com/go-drift/pagestate/pkg/view"
)

// Spinner defaults.
const (
	DefaultSpinnerPeriod = 1500 * time.Millisecond
	DefaultRotateRadius  = 60
	DefaultPointRadius   = 10
)

// DefaultSpinnerColors is the stock dot palette, one dot per color.
var DefaultSpinnerColors = []graphics.Color{
	graphics.RGB(0x32, 0x96, 0xFA),
	graphics.RGB(0x15, 0xBC, 0x83),
	graphics.RGB(0xFF, 0xBB, 0x00),
	graphics.RGB(0xF2, 0x56, 0x43),
}

// Dot is one painted spinner dot.
type Dot struct {
	Center graphics.Offset
	Radius float64
	Color  graphics.Color
}

// SpinnerGeometry places N dots evenly on a circle around Center.
type SpinnerGeometry struct {
	Center       graphics.Offset
	RotateRadius float64
	PointRadius  float64
	Colors       []graphics.Color
}

// Dots returns the dots for a progress fraction in [0,1]. Dot i sits at angle
// i*2π/N + progress*2π, at distance RotateRadius + PointRadius/2 from Center.
func (g SpinnerGeometry) Dots(progress float64) []Dot {
	n := len(g.Colors)
	if n == 0 {
		return nil
	}
	offset := progress * 2 * math.Pi
	distance := g.RotateRadius + g.PointRadius/2
	dots := make([]Dot, n)
	for i, c := range g.Colors {
		angle := float64(i)*2*math.Pi/float64(n) + offset
		dots[i] = Dot{
			Center: graphics.Offset{
				X: g.Center.X + distance*math.Cos(angle),
				Y: g.Center.Y + distance*math.Sin(angle),
			},
			Radius: g.PointRadius,
			Color:  c,
		}
	}
	return dots
}

// SpinnerConfig configures a DotSpinner. Zero fields take the defaults.
type SpinnerConfig struct {
	Colors       []graphics.Color
	RotateRadius float64
	PointRadius  float64
	Period       time.Duration
	Curve        func(float64) float64
}

func (c SpinnerConfig) withDefaults() SpinnerConfig {
	if len(c.Colors) == 0 {
		c.Colors = DefaultSpinnerColors
	}
	if c.RotateRadius <= 0 {
		c.RotateRadius = DefaultRotateRadius
	}
	if c.PointRadius <= 0 {
		c.PointRadius = DefaultPointRadius
	}
	if c.Period <= 0 {
		c.Period = DefaultSpinnerPeriod
	}
	if c.Curve == nil {
		c.Curve = animation.LinearCurve
	}
	return c
}

// DotSpinner is a loading indicator: colored dots orbiting the center of the
// view, one revolution per period. It starts running when created.
//
// Stop lets the current revolution finish and then holds still; Start resumes
// endless rotation. Both are idempotent and must be called on the UI thread.
type DotSpinner struct {
	view.Base

	geometry   SpinnerGeometry
	controller *animation.AnimationController
	progress   float64
	onFrame    func()
}

// NewDotSpinner creates a running spinner that fills its parent.
func NewDotSpinner(id string, cfg SpinnerConfig) *DotSpinner {
	cfg = cfg.withDefaults()
	s := &DotSpinner{
		geometry: SpinnerGeometry{
			RotateRadius: cfg.RotateRadius,
			PointRadius:  cfg.PointRadius,
			Colors:       append([]graphics.Color(nil), cfg.Colors...),
		},
	}
	s.SetID(id)
	s.SetLayoutParams(view.MatchParentParams())

	s.controller = animation.NewAnimationController(cfg.Period)
	s.controller.Curve = cfg.Curve
	s.controller.AddListener(func() {
		s.progress = s.controller.Value
		if s.onFrame != nil {
			s.onFrame()
		}
	})
	s.controller.Repeat()
	return s
}

// OnSizeChanged recenters the orbit. Layout calls it whenever the resolved
// size changes; hosts that size the spinner themselves call it directly.
func (s *DotSpinner) OnSizeChanged(width, height float64) {
	s.geometry.Center = graphics.Offset{X: width / 2, Y: height / 2}
}

func (s *DotSpinner) Layout(width, height float64) {
	if s.SetSize(graphics.Size{Width: width, Height: height}) {
		s.OnSizeChanged(width, height)
	}
}

// IntrinsicSize fits the orbit and the dots on it.
func (s *DotSpinner) IntrinsicSize() graphics.Size {
	d := 2 * (s.geometry.RotateRadius + s.geometry.PointRadius*1.5)
	return graphics.Size{Width: d, Height: d}
}

func (s *DotSpinner) Paint(canvas graphics.Canvas) {
	s.Base.Paint(canvas)
	for _, dot := range s.geometry.Dots(s.progress) {
		canvas.DrawCircle(dot.Center, dot.Radius, graphics.Paint{Color: dot.Color})
	}
}

// Start resumes endless rotation. No-op while running.
func (s *DotSpinner) Start() {
	if s.controller.IsRepeating() {
		return
	}
	s.controller.Repeat()
}

// Stop finishes the current revolution and then halts. No-op when stopped.
func (s *DotSpinner) Stop() {
	if !s.controller.IsRepeating() {
		return
	}
	s.controller.StopAfterCycle()
}

// IsRunning reports whether the spinner is set to rotate indefinitely.
func (s *DotSpinner) IsRunning() bool {
	return s.controller.IsRepeating()
}

// Progress returns the current fraction of a revolution.
func (s *DotSpinner) Progress() float64 {
	return s.progress
}

// Geometry returns the current geometry.
func (s *DotSpinner) Geometry() SpinnerGeometry {
	return s.geometry
}

// SetOnFrame installs a hook called after every progress update, typically
// to request a repaint.
func (s *DotSpinner) SetOnFrame(fn func()) {
	s.onFrame = fn
}

// Dispose stops the ticker for good.
func (s *DotSpinner) Dispose() {
	s.controller.Dispose()
}
