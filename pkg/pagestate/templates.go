package pagestate

import (
	"github.com/go-drift/pagestate/pkg/animation"
	"github.com/go-drift/pagestate/pkg/errors"
	"github.com/go-drift/pagestate/pkg/theme"
	"github.com/go-drift/pagestate/pkg/view"
	"github.com/go-drift/pagestate/pkg/widgets"
)

// Ids of the built-in template views, for use with view.Find.
const (
	LoadingViewID   = "loading_view"
	LoadingSpinner  = "loading_spinner"
	ErrorViewID     = "error_view"
	ErrorIconID     = "error_icon"
	ErrorTextID     = "error_text"
	EmptyViewID     = "empty_view"
	EmptyIconID     = "empty_icon"
	EmptyTextID     = "empty_text"
	NoNetworkViewID = "no_network_view"
	NoNetworkIconID = "no_network_icon"
	NoNetworkTextID = "no_network_text"
)

func newLoadingView(style *theme.Style) (*view.Frame, error) {
	curve, err := animation.CurveByName(style.Curve)
	if err != nil {
		return nil, errors.Report(errors.InvalidArgument("pagestate.newLoadingView", "style: %v", err))
	}
	spinner := widgets.NewDotSpinner(LoadingSpinner, widgets.SpinnerConfig{
		Colors:       style.SpinnerColors,
		RotateRadius: style.RotateRadius,
		PointRadius:  style.PointRadius,
		Period:       style.Period,
		Curve:        curve,
	})

	root := view.NewFrame(LoadingViewID)
	root.SetLayoutParams(view.MatchParentParams())
	root.SetBackground(style.Background)
	if err := root.AddChild(spinner); err != nil {
		return nil, err
	}
	return root, nil
}

// newMessageView builds an icon above a line of text. Both are wired to
// onClick, the whole view is not.
func newMessageView(ids [3]string, t theme.Template, style *theme.Style, onClick func()) (*view.Column, error) {
	col := view.NewColumn(ids[0], style.Spacing)
	col.SetLayoutParams(view.MatchParentParams())
	col.SetBackground(style.Background)

	icon := widgets.NewIcon(ids[1], t.Icon, style.IconDiameter, t.IconColor, style.Background)
	icon.SetOnClick(onClick)
	text := widgets.NewLabel(ids[2], t.Text, style.TextColor)
	text.SetOnClick(onClick)

	for _, child := range []view.Node{icon, text} {
		if err := col.AddChild(child); err != nil {
			return nil, err
		}
	}
	return col, nil
}

func (b *Builder) installDefaults() error {
	c := b.container
	style := b.style
	message := func(ids [3]string, t theme.Template) func() (view.Node, error) {
		return func() (view.Node, error) { return newMessageView(ids, t, style, c.retry) }
	}
	defaults := []struct {
		state   State
		newView func() (view.Node, error)
	}{
		{Error, message([3]string{ErrorViewID, ErrorIconID, ErrorTextID}, style.Error)},
		{Loading, func() (view.Node, error) { return newLoadingView(style) }},
		{Empty, message([3]string{EmptyViewID, EmptyIconID, EmptyTextID}, style.Empty)},
		{NoNetwork, message([3]string{NoNetworkViewID, NoNetworkIconID, NoNetworkTextID}, style.NoNetwork)},
	}
	for _, d := range defaults {
		v, err := d.newView()
		if err != nil {
			return err
		}
		if err := c.setSlot(d.state, v); err != nil {
			return err
		}
	}
	c.spinner = findSpinner(c.slots[Loading])
	return nil
}
