package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-drift/pagestate/cmd/pagestate/internal/config"
)

func TestParseRenderArgs(t *testing.T) {
	opts, err := parseRenderArgs([]string{"--out", "shots", "--format=BMP", "--size", "200x100", "--frames=3"})
	if err != nil {
		t.Fatalf("parseRenderArgs error: %v", err)
	}
	if opts.out != "shots" || opts.format != "bmp" || opts.width != 200 || opts.height != 100 || opts.frames != 3 {
		t.Fatalf("opts = %+v", opts)
	}

	for _, args := range [][]string{
		{"--size", "big"},
		{"--frames", "-1"},
		{"--format", "gif"},
		{"--out"},
		{"extra"},
	} {
		if _, err := parseRenderArgs(args); err == nil {
			t.Errorf("parseRenderArgs(%q) should fail", args)
		}
	}
}

func TestParseRunArgs(t *testing.T) {
	opts, err := parseRunArgs([]string{"--delay=250ms", "--config", "x.yaml"})
	if err != nil {
		t.Fatalf("parseRunArgs error: %v", err)
	}
	if opts.delay != 250*time.Millisecond || opts.config != "x.yaml" {
		t.Fatalf("opts = %+v", opts)
	}
	if _, err := parseRunArgs([]string{"--delay", "soon"}); err == nil {
		t.Error("expected an error for a bad delay")
	}
}

func TestExecute_UnknownCommand(t *testing.T) {
	if err := execute([]string{"explode"}); err == nil {
		t.Fatal("expected an error")
	}
}

func TestRender_WritesEveryState(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	cfgPath := filepath.Join(dir, "pagestate.yaml")
	if err := os.WriteFile(cfgPath, []byte("app:\n  name: Demo\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := execute([]string{"render", "--out", out, "--size", "120x160", "--frames", "2", "--config", cfgPath})
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	for _, name := range []string{"content", "loading", "error", "empty", "no_network", "custom", "loading_000", "loading_001"} {
		if _, err := os.Stat(filepath.Join(out, name+".png")); err != nil {
			t.Errorf("missing %s.png: %v", name, err)
		}
	}
}

func TestWatchConfig_ReportsStartupFailure(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "gone", "pagestate.yaml")

	var got error
	calls := 0
	watchConfig(context.Background(), dir, missing, func(_ *config.Resolved, err error) {
		calls++
		got = err
	})
	if calls != 1 || got == nil {
		t.Fatalf("onChange calls = %d, err = %v; want one error", calls, got)
	}
}
