package pagestate

import (
	"github.com/go-drift/pagestate/pkg/errors"
	"github.com/go-drift/pagestate/pkg/platform"
	"github.com/go-drift/pagestate/pkg/theme"
	"github.com/go-drift/pagestate/pkg/view"
)

// Option configures a Builder.
type Option func(*Builder)

// WithExecutor sets the UI executor state changes are marshaled onto. Without
// one, every Show call applies synchronously.
func WithExecutor(exec platform.Executor) Option {
	return func(b *Builder) {
		b.exec = exec
	}
}

// WithStyle sets the resources of the default views. A nil style keeps
// theme.Default.
func WithStyle(style *theme.Style) Option {
	return func(b *Builder) {
		if style != nil {
			b.style = style.Clone()
		}
	}
}

// Builder assembles a Container in three steps: Init wraps the target, the
// Set methods replace default views, and Build hands out the result.
//
// The first failing call records its error; every later call is a no-op and
// Err and Build return that error. Errors are also sent to the errors package
// handler where they occur.
type Builder struct {
	exec      platform.Executor
	style     *theme.Style
	container *Container
	anchor    view.Anchor
	inited    bool
	built     bool
	err       error
}

// NewBuilder returns a builder with no target yet.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{style: theme.Default()}
	for _, opt := range opts {
		opt(b)
	}
	b.container = newContainer(b.exec)
	return b
}

// Create is NewBuilder(opts...).Init(target).
func Create(target any, opts ...Option) *Builder {
	return NewBuilder(opts...).Init(target)
}

// Init wraps target. The target may be:
//
//   - a view.Node with a parent: the node itself is wrapped in place;
//   - a view.Screen: the first child of its content root is wrapped;
//   - a view.Fragment whose View is a group: its first child is wrapped.
//
// Anything else, including nil, is an invalid argument. Init may be called
// once per builder.
func (b *Builder) Init(target any) *Builder {
	const op = "pagestate.Builder.Init"
	if b.err != nil {
		return b
	}
	if b.inited || b.built {
		return b.fail(errors.IllegalState(op, "container already initialized"))
	}

	content, err := resolveContent(op, target)
	if err != nil {
		return b.failWith(err)
	}
	anchor, err := view.Detach(content)
	if err != nil {
		return b.failWith(err)
	}
	c := b.container
	if err := view.Attach(c, anchor.Parent, anchor.Index, anchor.Params); err != nil {
		return b.failWith(err)
	}
	if err := c.InsertChild(content, 0, anchor.Params); err != nil {
		return b.failWith(err)
	}
	c.slots[Content] = content
	b.anchor = anchor
	b.inited = true

	if err := b.installDefaults(); err != nil {
		return b.failWith(err)
	}
	return b
}

func resolveContent(op string, target any) (view.Node, error) {
	if view.IsNil(target) {
		return nil, errors.Report(errors.InvalidArgument(op, "target must not be nil"))
	}
	switch t := target.(type) {
	case view.Node:
		if view.IsNil(t.Parent()) {
			return nil, errors.Report(errors.InvalidArgument(op, "view %q has no parent", t.ID()))
		}
		return t, nil
	case view.Screen:
		return firstChild(op, t.ContentRoot())
	case view.Fragment:
		root := t.View()
		if view.IsNil(root) {
			return nil, errors.Report(errors.InvalidArgument(op, "fragment has no view"))
		}
		g, ok := root.(view.Group)
		if !ok {
			return nil, errors.Report(errors.InvalidArgument(op, "fragment view %q is not a group", root.ID()))
		}
		return firstChild(op, g)
	default:
		return nil, errors.Report(errors.InvalidArgument(op, "target must be a view, screen or fragment, got %T", target))
	}
}

func firstChild(op string, root view.Group) (view.Node, error) {
	if view.IsNil(root) {
		return nil, errors.Report(errors.InvalidArgument(op, "host has no root view"))
	}
	if root.ChildCount() == 0 {
		return nil, errors.Report(errors.InvalidArgument(op, "host root %q has no children", root.ID()))
	}
	return root.ChildAt(0), nil
}

// SetLoadingView replaces the loading view. The spinner driven by the
// Loading state becomes the first Spinner found in v, if any.
func (b *Builder) SetLoadingView(v view.Node) *Builder {
	return b.setView("pagestate.Builder.SetLoadingView", Loading, v)
}

// SetErrorView replaces the error view. Custom views are not wired to the
// retry listener.
func (b *Builder) SetErrorView(v view.Node) *Builder {
	return b.setView("pagestate.Builder.SetErrorView", Error, v)
}

// SetEmptyView replaces the empty-data view.
func (b *Builder) SetEmptyView(v view.Node) *Builder {
	return b.setView("pagestate.Builder.SetEmptyView", Empty, v)
}

// SetNoNetView replaces the no-network view.
func (b *Builder) SetNoNetView(v view.Node) *Builder {
	return b.setView("pagestate.Builder.SetNoNetView", NoNetwork, v)
}

// SetCustomView sets the view shown by ShowCustom.
func (b *Builder) SetCustomView(v view.Node) *Builder {
	return b.setView("pagestate.Builder.SetCustomView", Custom, v)
}

func (b *Builder) setView(op string, state State, v view.Node) *Builder {
	if b.err != nil || view.IsNil(v) {
		return b
	}
	if !b.inited {
		return b.fail(errors.IllegalState(op, "Init must be called first"))
	}
	if b.built {
		return b.fail(errors.IllegalState(op, "container already built"))
	}

	c := b.container
	if view.IsDescendant(c, v) {
		return b.fail(errors.InvalidArgument(op, "view %q contains the container", v.ID()))
	}
	if err := c.setSlot(state, v); err != nil {
		return b.failWith(err)
	}
	if state == Loading {
		if c.spinner != nil {
			c.spinner.Stop()
		}
		c.spinner = findSpinner(v)
	}
	return b
}

// SetRetryListener sets the callback run when the icon or text of a default
// error, empty or no-network view is clicked, replacing any previous one.
// It may be called after Build.
func (b *Builder) SetRetryListener(fn func()) *Builder {
	b.container.onRetry = fn
	return b
}

// Anchor returns where the wrapped view sat before Init.
func (b *Builder) Anchor() view.Anchor {
	return b.anchor
}

// Err returns the first error recorded by the builder.
func (b *Builder) Err() error {
	return b.err
}

// Build returns the container showing the Loading state. Slots can no longer
// be changed afterwards. Off the UI thread, Loading is applied through the
// executor like any Show call.
func (b *Builder) Build() (*Container, error) {
	if b.err != nil {
		return nil, b.err
	}
	if !b.inited {
		b.fail(errors.IllegalState("pagestate.Builder.Build", "Init must be called first"))
		return nil, b.err
	}
	if !b.built {
		b.built = true
		c := b.container
		platform.Dispatch(c.exec, func() { c.apply(Loading) })
	}
	return b.container, nil
}

func (b *Builder) fail(err *errors.PageError) *Builder {
	b.err = errors.Report(err)
	return b
}

// failWith records an error that was already reported.
func (b *Builder) failWith(err error) *Builder {
	b.err = err
	return b
}
