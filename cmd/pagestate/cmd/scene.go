package cmd

import (
	"github.com/go-drift/pagestate/pkg/graphics"
	"github.com/go-drift/pagestate/pkg/pagestate"
	"github.com/go-drift/pagestate/pkg/theme"
	"github.com/go-drift/pagestate/pkg/view"
	"github.com/go-drift/pagestate/pkg/widgets"
)

// scene is the demo page: a window whose content is wrapped in a container.
type scene struct {
	window    *view.Window
	container *pagestate.Container
	body      *widgets.Label
	style     *theme.Style
}

func newScene(appName string, style *theme.Style, width, height float64, retry func(), opts ...pagestate.Option) (*scene, error) {
	w := view.NewWindow(width, height)

	content := view.NewColumn("content", style.Spacing)
	content.SetBackground(style.Background)
	body := widgets.NewLabel("body", "Content loaded", style.TextColor)
	custom := view.NewColumn("custom", style.Spacing)
	custom.SetBackground(style.Background)
	for _, add := range []struct {
		parent *view.Column
		child  view.Node
	}{
		{content, widgets.NewLabel("title", appName, graphics.ColorBlack)},
		{content, body},
		{custom, widgets.NewLabel("custom_title", "Custom view", graphics.ColorBlack)},
		{custom, widgets.NewLabel("custom_hint", "not wired to retry", style.TextColor)},
	} {
		if err := add.parent.AddChild(add.child); err != nil {
			return nil, err
		}
	}
	if err := w.SetContent(content); err != nil {
		return nil, err
	}

	opts = append([]pagestate.Option{pagestate.WithStyle(style)}, opts...)
	c, err := pagestate.Create(w, opts...).
		SetCustomView(custom).
		SetRetryListener(retry).
		Build()
	if err != nil {
		return nil, err
	}
	// A zero-sized window is laid out by its host once the size is known.
	w.Layout()
	return &scene{window: w, container: c, body: body, style: style}, nil
}

func (s *scene) background() graphics.Color {
	return s.style.Background
}
