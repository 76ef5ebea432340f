package theme

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/pagestate/pkg/animation"
	"github.com/go-drift/pagestate/pkg/graphics"
)

// Spec is the YAML form of a Style. Empty fields keep the default.
type Spec struct {
	Spinner      SpinnerSpec  `yaml:"spinner,omitempty"`
	Background   string       `yaml:"background,omitempty"`
	TextColor    string       `yaml:"text_color,omitempty"`
	IconDiameter float64      `yaml:"icon_diameter,omitempty"`
	Spacing      float64      `yaml:"spacing,omitempty"`
	Error        TemplateSpec `yaml:"error,omitempty"`
	Empty        TemplateSpec `yaml:"empty,omitempty"`
	NoNetwork    TemplateSpec `yaml:"no_network,omitempty"`
}

// SpinnerSpec is the YAML form of the spinner resources.
type SpinnerSpec struct {
	// Colors is nil when absent; an explicit empty list is an error.
	Colors       []string `yaml:"colors,omitempty"`
	RotateRadius float64  `yaml:"rotate_radius,omitempty"`
	PointRadius  float64  `yaml:"point_radius,omitempty"`
	// Period is a time.ParseDuration string such as "1500ms".
	Period string `yaml:"period,omitempty"`
	Curve  string `yaml:"curve,omitempty"`
}

// TemplateSpec is the YAML form of a Template.
type TemplateSpec struct {
	Icon      string `yaml:"icon,omitempty"`
	IconColor string `yaml:"icon_color,omitempty"`
	Text      string `yaml:"text,omitempty"`
}

// Parse decodes a YAML theme document. Unknown keys are rejected. An empty
// document yields an empty Spec.
func Parse(data []byte) (*Spec, error) {
	var spec Spec
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		if errors.Is(err, io.EOF) {
			return &spec, nil
		}
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}
	return &spec, nil
}

// Load reads, parses and resolves the theme file at path.
func Load(path string) (*Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme: %w", err)
	}
	spec, err := Parse(data)
	if err != nil {
		return nil, err
	}
	style, err := spec.Resolve()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return style, nil
}

// Resolve overlays the spec on Default and validates the result.
func (s *Spec) Resolve() (*Style, error) {
	style := Default()
	if s == nil {
		return style, nil
	}

	if s.Spinner.Colors != nil {
		if len(s.Spinner.Colors) == 0 {
			return nil, fmt.Errorf("spinner.colors must not be empty")
		}
		colors := make([]graphics.Color, len(s.Spinner.Colors))
		for i, raw := range s.Spinner.Colors {
			c, err := graphics.ParseHexColor(raw)
			if err != nil {
				return nil, fmt.Errorf("spinner.colors[%d]: %w", i, err)
			}
			colors[i] = c
		}
		style.SpinnerColors = colors
	}
	if err := positive("spinner.rotate_radius", s.Spinner.RotateRadius, &style.RotateRadius); err != nil {
		return nil, err
	}
	if err := positive("spinner.point_radius", s.Spinner.PointRadius, &style.PointRadius); err != nil {
		return nil, err
	}
	if p := strings.TrimSpace(s.Spinner.Period); p != "" {
		d, err := time.ParseDuration(p)
		if err != nil {
			return nil, fmt.Errorf("spinner.period: %w", err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("spinner.period must be positive, got %s", d)
		}
		style.Period = d
	}
	if name := strings.TrimSpace(s.Spinner.Curve); name != "" {
		if _, err := animation.CurveByName(name); err != nil {
			return nil, fmt.Errorf("spinner.curve: %w", err)
		}
		style.Curve = name
	}

	if err := color("background", s.Background, &style.Background); err != nil {
		return nil, err
	}
	if err := color("text_color", s.TextColor, &style.TextColor); err != nil {
		return nil, err
	}
	if err := positive("icon_diameter", s.IconDiameter, &style.IconDiameter); err != nil {
		return nil, err
	}
	if err := positive("spacing", s.Spacing, &style.Spacing); err != nil {
		return nil, err
	}

	for _, t := range []struct {
		key  string
		spec TemplateSpec
		dst  *Template
	}{
		{"error", s.Error, &style.Error},
		{"empty", s.Empty, &style.Empty},
		{"no_network", s.NoNetwork, &style.NoNetwork},
	} {
		if err := t.spec.apply(t.key, t.dst); err != nil {
			return nil, err
		}
	}
	return style, nil
}

func (t TemplateSpec) apply(key string, dst *Template) error {
	if t.Icon != "" {
		dst.Icon = t.Icon
	}
	if t.Text != "" {
		dst.Text = t.Text
	}
	return color(key+".icon_color", t.IconColor, &dst.IconColor)
}

func color(key, raw string, dst *graphics.Color) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	c, err := graphics.ParseHexColor(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = c
	return nil
}

func positive(key string, v float64, dst *float64) error {
	switch {
	case v == 0:
		return nil
	case v < 0:
		return fmt.Errorf("%s must be positive, got %g", key, v)
	}
	*dst = v
	return nil
}
