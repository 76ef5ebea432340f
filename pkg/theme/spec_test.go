package theme

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-drift/pagestate/pkg/graphics"
)

func TestParse_Empty(t *testing.T) {
	spec, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error: %v", err)
	}
	style, err := spec.Resolve()
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	def := Default()
	if len(style.SpinnerColors) != 4 || style.Period != def.Period || style.Background != graphics.ColorWhite {
		t.Fatalf("empty document should resolve to the default style, got %+v", style)
	}
}

func TestParse_Overrides(t *testing.T) {
	doc := `
spinner:
  colors: ["#FF0000", "#8000FF00"]
  rotate_radius: 30
  point_radius: 4
  period: 900ms
  curve: ease-in-out
background: "#101010"
text_color: "#EEEEEE"
error:
  text: Boom
  icon_color: "#00FF00"
no_network:
  icon: N
`
	spec, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	style, err := spec.Resolve()
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	wantColors := []graphics.Color{graphics.RGB(0xFF, 0, 0), graphics.RGBA(0, 0xFF, 0, 0x80)}
	if len(style.SpinnerColors) != 2 || style.SpinnerColors[0] != wantColors[0] || style.SpinnerColors[1] != wantColors[1] {
		t.Errorf("SpinnerColors = %v, want %v", style.SpinnerColors, wantColors)
	}
	if style.RotateRadius != 30 || style.PointRadius != 4 {
		t.Errorf("radii = %v/%v", style.RotateRadius, style.PointRadius)
	}
	if style.Period != 900*time.Millisecond || style.Curve != "ease-in-out" {
		t.Errorf("period=%v curve=%q", style.Period, style.Curve)
	}
	if style.Background != graphics.RGB(0x10, 0x10, 0x10) {
		t.Errorf("Background = %v", style.Background.Hex())
	}
	if style.Error.Text != "Boom" || style.Error.IconColor != graphics.RGB(0, 0xFF, 0) {
		t.Errorf("Error template = %+v", style.Error)
	}
	if style.Error.Icon != Default().Error.Icon {
		t.Errorf("unset icon should keep the default, got %q", style.Error.Icon)
	}
	if style.NoNetwork.Icon != "N" || style.NoNetwork.Text != Default().NoNetwork.Text {
		t.Errorf("NoNetwork template = %+v", style.NoNetwork)
	}
	if style.Empty != Default().Empty {
		t.Errorf("Empty template should be untouched, got %+v", style.Empty)
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"empty colors", "spinner:\n  colors: []\n", "spinner.colors must not be empty"},
		{"bad color", "spinner:\n  colors: [\"#GG0000\"]\n", "spinner.colors[0]"},
		{"bad background", "background: white\n", "background"},
		{"bad period", "spinner:\n  period: soon\n", "spinner.period"},
		{"zero period", "spinner:\n  period: 0s\n", "spinner.period must be positive"},
		{"negative radius", "spinner:\n  rotate_radius: -1\n", "spinner.rotate_radius"},
		{"unknown curve", "spinner:\n  curve: bounce\n", "spinner.curve"},
		{"bad icon color", "empty:\n  icon_color: \"#12\"\n", "empty.icon_color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Parse([]byte(tt.doc))
			if err != nil {
				t.Fatalf("Parse error: %v", err)
			}
			_, err = spec.Resolve()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestParse_UnknownKey(t *testing.T) {
	if _, err := Parse([]byte("spinner:\n  colours: [\"#FFFFFF\"]\n")); err == nil {
		t.Fatal("expected an error for an unknown key")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	if err := os.WriteFile(path, []byte("spinner:\n  period: 2s\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	style, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if style.Period != 2*time.Second {
		t.Fatalf("Period = %v", style.Period)
	}

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestStyle_Clone(t *testing.T) {
	a := Default()
	b := a.Clone()
	b.SpinnerColors[0] = graphics.ColorBlack
	if a.SpinnerColors[0] == graphics.ColorBlack {
		t.Fatal("Clone shares the color slice")
	}
}
