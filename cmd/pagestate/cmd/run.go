package cmd

import (
	"context"
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/go-drift/pagestate/cmd/pagestate/internal/config"
	"github.com/go-drift/pagestate/cmd/pagestate/internal/term"
	"github.com/go-drift/pagestate/pkg/animation"
	"github.com/go-drift/pagestate/pkg/pagestate"
	"github.com/go-drift/pagestate/pkg/platform"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Run the interactive terminal demo",
		Long: `Run the demo page in the terminal.

Keys:
  c  content      l  loading      e  error
  m  empty        n  no network   u  custom
  r  reload       q  quit

Clicking the icon or text of the error, empty or no-network view reloads.
A reload shows the loading state and finishes from a background goroutine
after --delay, landing on content or, at random, on one of the failure
states.

Flags:
  --delay DURATION   Simulated load time (default: 1.5s)
  --config PATH      Config file (default: pagestate.yaml in the project root)
  --watch            Rebuild the page when the config file changes`,
		Usage: "pagestate run [--delay DURATION] [--config PATH] [--watch]",
		Run:   runRun,
	})
}

type runOptions struct {
	delay  time.Duration
	config string
	watch  bool
}

func parseRunArgs(args []string) (runOptions, error) {
	opts := runOptions{delay: 1500 * time.Millisecond}
	for i := 0; i < len(args); i++ {
		if args[i] == "--watch" {
			opts.watch = true
			continue
		}
		if value, skip, ok, err := flagValue(args, i, "--delay"); ok {
			if err != nil {
				return opts, err
			}
			d, err := time.ParseDuration(value)
			if err != nil || d < 0 {
				return opts, fmt.Errorf("invalid --delay %q", value)
			}
			opts.delay = d
			i += skip
			continue
		}
		if value, skip, ok, err := flagValue(args, i, "--config"); ok {
			if err != nil {
				return opts, err
			}
			opts.config = value
			i += skip
			continue
		}
		return opts, fmt.Errorf("unknown argument %q", args[i])
	}
	return opts, nil
}

var stateKeys = map[rune]pagestate.State{
	'c': pagestate.Content,
	'l': pagestate.Loading,
	'e': pagestate.Error,
	'm': pagestate.Empty,
	'n': pagestate.NoNetwork,
	'u': pagestate.Custom,
}

func runRun(args []string) error {
	opts, err := parseRunArgs(args)
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

	// The looper belongs to this goroutine, which also runs the tview event
	// loop; posted work is drained from inside tview's update queue.
	app := tview.NewApplication()
	var looper *platform.Looper
	looper = platform.NewLooper(platform.WithWake(func() {
		app.QueueUpdateDraw(func() { looper.Drain() })
	}))

	var (
		s       *scene
		reloads int
		notice  string
	)
	reload := func() {
		reloads++
		n := reloads
		c, body := s.container, s.body
		c.ShowLoading()
		go func() {
			time.Sleep(opts.delay)
			outcome := pagestate.Content
			if rand.IntN(4) == 0 {
				failures := []pagestate.State{pagestate.Error, pagestate.Empty, pagestate.NoNetwork}
				outcome = failures[rand.IntN(len(failures))]
			}
			looper.Post(func() {
				if outcome == pagestate.Content {
					body.Text = fmt.Sprintf("Content loaded (reload #%d)", n)
				}
			})
			// Off the UI thread: marshaled onto the looper.
			c.Show(outcome)
		}()
	}

	s, err = newScene(cfg.AppName, cfg.Style, 0, 0, reload, pagestate.WithExecutor(looper))
	if err != nil {
		return err
	}
	defer func() { s.container.Dispose() }()

	status := tview.NewTextView().SetDynamicColors(true)
	status.SetBorderPadding(0, 0, 1, 1)
	host := term.NewHost(s.window)
	host.SetKeyHandler(func(event *tcell.EventKey) *tcell.EventKey {
		switch r := event.Rune(); {
		case r == 'q':
			app.Stop()
		case r == 'r':
			reload()
		default:
			if state, ok := stateKeys[r]; ok {
				s.container.Show(state)
			}
		}
		return nil
	})
	app.SetBeforeDrawFunc(func(screen tcell.Screen) bool {
		status.SetText(fmt.Sprintf("[::b]%s[::-]  state: [yellow]%s[-]   c l e m n u: switch  r: reload  q: quit  %s",
			tview.Escape(cfg.AppName), s.container.State(), tview.Escape(notice)))
		return false
	})

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(host, 0, 1, true).
		AddItem(status, 1, 0, false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	driver := &animation.Driver{Post: looper.Post}
	go func() { _ = driver.Run(ctx) }()

	if opts.watch {
		path := opts.config
		if path == "" {
			path = filepath.Join(root, config.FileName)
		}
		go watchConfig(ctx, root, path, func(next *config.Resolved, err error) {
			looper.Post(func() {
				if err != nil {
					notice = "config: " + err.Error()
					return
				}
				rebuilt, err := newScene(next.AppName, next.Style, 0, 0, reload, pagestate.WithExecutor(looper))
				if err != nil {
					notice = "config: " + err.Error()
					return
				}
				state := s.container.State()
				s.container.Dispose()
				s, cfg = rebuilt, next
				host.SetWindow(s.window)
				s.container.Show(state)
				notice = "config reloaded"
			})
		})
	}

	reload()
	return app.SetRoot(layout, true).EnableMouse(true).Run()
}

// watchConfig runs config.Watch until ctx is done. A watcher that cannot
// start is reported through onChange like any later failure.
func watchConfig(ctx context.Context, root, path string, onChange func(*config.Resolved, error)) {
	if err := config.Watch(ctx, root, path, onChange); err != nil && ctx.Err() == nil {
		onChange(nil, fmt.Errorf("watch: %w", err))
	}
}
