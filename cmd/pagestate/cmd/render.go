package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-drift/pagestate/cmd/pagestate/internal/config"
	"github.com/go-drift/pagestate/pkg/animation"
	"github.com/go-drift/pagestate/pkg/pagestate"
	"github.com/go-drift/pagestate/pkg/rendering"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render every state to image files",
		Long: `Render the demo page in every state, plus a sequence of spinner
frames, to image files.

Time is simulated, so frames are evenly spaced over one spinner period
regardless of how fast rendering runs.

Flags:
  --out DIR          Output directory (default: ./pagestate-out)
  --format FORMAT    png, bmp or tiff (default: png)
  --size WxH         Image size in pixels (default: 360x640)
  --frames N         Number of spinner frames (default: 12, 0 to skip)
  --config PATH      Config file (default: pagestate.yaml in the project root)`,
		Usage: "pagestate render [--out DIR] [--format FORMAT] [--size WxH] [--frames N] [--config PATH]",
		Run:   runRender,
	})
}

type renderOptions struct {
	out    string
	format string
	width  int
	height int
	frames int
	config string
}

func parseRenderArgs(args []string) (renderOptions, error) {
	opts := renderOptions{
		out:    "pagestate-out",
		format: rendering.FormatPNG,
		width:  360,
		height: 640,
		frames: 12,
	}
	for i := 0; i < len(args); i++ {
		matched := false
		for _, name := range []string{"--out", "--format", "--size", "--frames", "--config"} {
			value, skip, ok, err := flagValue(args, i, name)
			if err != nil {
				return opts, err
			}
			if !ok {
				continue
			}
			matched = true
			i += skip
			switch name {
			case "--out":
				opts.out = value
			case "--format":
				opts.format = strings.ToLower(value)
			case "--size":
				w, h, err := parseSize(value)
				if err != nil {
					return opts, err
				}
				opts.width, opts.height = w, h
			case "--frames":
				n, err := strconv.Atoi(value)
				if err != nil || n < 0 {
					return opts, fmt.Errorf("--frames must be a non-negative integer, got %q", value)
				}
				opts.frames = n
			case "--config":
				opts.config = value
			}
			break
		}
		if !matched {
			return opts, fmt.Errorf("unknown argument %q", args[i])
		}
	}
	if _, err := rendering.FormatOf("x." + opts.format); err != nil {
		return opts, fmt.Errorf("unsupported format %q (use %s)", opts.format, strings.Join(rendering.Formats, ", "))
	}
	return opts, nil
}

func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if ok {
		w, errW := strconv.Atoi(ws)
		h, errH := strconv.Atoi(hs)
		if errW == nil && errH == nil && w > 0 && h > 0 {
			return w, h, nil
		}
	}
	return 0, 0, fmt.Errorf("invalid size %q (want WxH, e.g. 360x640)", s)
}

// stepClock is an animation clock that only moves when told to.
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stepClock) advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func runRender(args []string) error {
	opts, err := parseRenderArgs(args)
	if err != nil {
		return err
	}
	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}
	cfg, err := config.Resolve(root, opts.config)
	if err != nil {
		return err
	}

	clock := &stepClock{now: time.Unix(0, 0)}
	prev := animation.SetClock(clock)
	defer animation.SetClock(prev)

	s, err := newScene(cfg.AppName, cfg.Style, float64(opts.width), float64(opts.height), nil)
	if err != nil {
		return err
	}
	defer s.container.Dispose()

	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, state := range pagestate.States {
		s.container.Show(state)
		if err := s.save(opts, state.String()); err != nil {
			return err
		}
	}

	if opts.frames > 0 {
		s.container.ShowLoading()
		step := cfg.Style.Period / time.Duration(opts.frames)
		for i := range opts.frames {
			if err := s.save(opts, fmt.Sprintf("loading_%03d", i)); err != nil {
				return err
			}
			clock.advance(step)
			animation.StepTickers()
		}
	}
	return nil
}

func (s *scene) save(opts renderOptions, name string) error {
	s.window.Layout()
	img := rendering.Render(s.window, opts.width, opts.height, s.background())

	path := filepath.Join(opts.out, name+rendering.Extension(opts.format))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := rendering.Encode(f, img, opts.format); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}
