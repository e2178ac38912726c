package ui

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/johann/pinboard/internal/dom"
)

var (
	// ErrAlreadyMounted is returned when Mount is called a second time.
	ErrAlreadyMounted = errors.New("app already mounted")
	// ErrRenderDepth is returned when component expansion nests too deep,
	// usually a component that renders itself.
	ErrRenderDepth = errors.New("component nesting too deep")
)

// DefaultMaxDepth bounds component nesting during expansion.
const DefaultMaxDepth = 64

// ErrorHandler receives component render failures that were replaced by a
// placeholder instead of aborting the render.
type ErrorHandler func(component string, err error)

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger handed to components and used by the default
// error handler.
func WithLogger(logger *zap.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithErrorHandler replaces the default error handler, which logs a warning.
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *App) {
		if h != nil {
			a.onError = h
		}
	}
}

// WithMaxDepth overrides DefaultMaxDepth.
func WithMaxDepth(depth int) Option {
	return func(a *App) {
		if depth > 0 {
			a.maxDepth = depth
		}
	}
}

// App is one application instance: a root component plus its global
// components. Creating it has no side effects; Mount renders it once.
type App struct {
	root     Component
	registry *Registry
	logger   *zap.Logger
	onError  ErrorHandler
	maxDepth int

	errs    []error
	mounted bool
}

// CreateApp wraps root in a new application instance.
func CreateApp(root Component, opts ...Option) *App {
	a := &App{
		root:     root,
		registry: NewRegistry(),
		logger:   zap.NewNop(),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.onError == nil {
		a.onError = func(component string, err error) {
			a.logger.Warn("component render failed",
				zap.String("component", component),
				zap.Error(err),
			)
		}
	}
	return a
}

// Component registers c under name for the whole component tree and returns
// the app for chaining. Registering the same name again replaces the
// binding. Invalid registrations are reported by Mount.
func (a *App) Component(name string, c Component) *App {
	if a.mounted {
		a.logger.Warn("component registered after mount is ignored", zap.String("component", name))
		return a
	}
	if err := a.registry.Register(name, c); err != nil {
		a.errs = append(a.errs, err)
	}
	return a
}

// Resolve looks up a global component.
func (a *App) Resolve(name string) (Component, bool) {
	return a.registry.Lookup(name)
}

// Components lists the registered component names.
func (a *App) Components() []string {
	return a.registry.Names()
}

// Mounted reports whether Mount has succeeded.
func (a *App) Mounted() bool {
	return a.mounted
}

// Render expands the root component without attaching it anywhere.
func (a *App) Render() ([]*html.Node, error) {
	if err := errors.Join(a.errs...); err != nil {
		return nil, err
	}
	if a.root == nil {
		return nil, errors.New("app has no root component")
	}
	return a.renderComponent("root", a.root, Props{}, nil, 0)
}

// Mount renders the app and attaches the output as the children of the
// element matching selector. A missing element is an error wrapping
// dom.ErrMountTargetMissing and leaves the document untouched.
func (a *App) Mount(doc *dom.Document, selector string) error {
	if a.mounted {
		return ErrAlreadyMounted
	}
	if _, err := doc.Query(selector); err != nil {
		return err
	}

	nodes, err := a.Render()
	if err != nil {
		return err
	}
	if err := doc.Mount(selector, nodes); err != nil {
		return err
	}

	a.mounted = true
	a.logger.Debug("app mounted",
		zap.String("selector", selector),
		zap.Strings("components", a.registry.Names()),
	)
	return nil
}

func (a *App) renderComponent(name string, c Component, props Props, slot []*html.Node, depth int) ([]*html.Node, error) {
	if depth > a.maxDepth {
		return nil, fmt.Errorf("%w: %s at depth %d", ErrRenderDepth, name, depth)
	}

	ctx := &RenderContext{Slot: slot, name: name, logger: a.logger}
	nodes, err := c.Render(ctx, props)
	if err != nil {
		return nil, err
	}
	return a.expand(nodes, depth)
}

func (a *App) expand(nodes []*html.Node, depth int) ([]*html.Node, error) {
	out := make([]*html.Node, 0, len(nodes))
	for _, n := range nodes {
		expanded, err := a.expandNode(n, depth)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded...)
	}
	return out, nil
}

func (a *App) expandNode(n *html.Node, depth int) ([]*html.Node, error) {
	if n.Type == html.ElementNode {
		if c, ok := a.registry.Lookup(n.Data); ok {
			return a.expandComponent(n, c, depth)
		}
	}

	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		expanded, err := a.expandNode(c, depth)
		if err != nil {
			return nil, err
		}
		replaceNode(c, expanded)
		c = next
	}
	return []*html.Node{n}, nil
}

func (a *App) expandComponent(n *html.Node, c Component, depth int) ([]*html.Node, error) {
	props := make(Props, len(n.Attr))
	for _, attr := range n.Attr {
		props[attr.Key] = attr.Val
	}

	slot, err := a.expand(detachChildren(n), depth)
	if err != nil {
		return nil, err
	}

	rendered, err := a.renderComponent(n.Data, c, props, slot, depth+1)
	if err != nil {
		if errors.Is(err, ErrRenderDepth) {
			return nil, err
		}
		a.onError(n.Data, err)
		return append([]*html.Node{placeholder(n.Data)}, slot...), nil
	}
	return rendered, nil
}

func placeholder(component string) *html.Node {
	return &html.Node{Type: html.CommentNode, Data: " " + component + " "}
}
