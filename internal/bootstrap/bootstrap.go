// Package bootstrap performs the one-shot client start-up sequence:
// register icon assets, create the app, register the icon component and
// mount into the host document.
package bootstrap

import (
	"fmt"
	"io/fs"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/johann/pinboard/internal/dom"
	"github.com/johann/pinboard/internal/icons"
	"github.com/johann/pinboard/internal/icons/solid"
	"github.com/johann/pinboard/internal/ui"
)

const (
	// DefaultSelector is the mount point in the host page.
	DefaultSelector = "#app"
	// HostDocument is the host page inside the frontend sources.
	HostDocument = "index.html"
	// RootTemplate is the root component inside the frontend sources.
	RootTemplate = "App.html"

	iconStyleAttr = "data-icon-styles"
)

// Options tune Run. The zero value mounts at DefaultSelector using the
// process-wide icon library and the solid icon set.
type Options struct {
	Selector string
	Library  *icons.Library
	Icons    []icons.Definition
	Logger   *zap.Logger
	OnError  ui.ErrorHandler
}

func (o Options) selector() string {
	if o.Selector == "" {
		return DefaultSelector
	}
	return o.Selector
}

func (o Options) library() *icons.Library {
	if o.Library == nil {
		return icons.Default()
	}
	return o.Library
}

func (o Options) icons() []icons.Definition {
	if o.Icons == nil {
		return solid.All
	}
	return o.Icons
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// LoadDocument parses the host page from the frontend sources.
func LoadDocument(fsys fs.FS) (*dom.Document, error) {
	f, err := fsys.Open(HostDocument)
	if err != nil {
		return nil, fmt.Errorf("open host document: %w", err)
	}
	defer f.Close()

	return dom.Parse(f)
}

// RootComponent builds the root component from the frontend sources.
func RootComponent(fsys fs.FS) (ui.Component, error) {
	src, err := fs.ReadFile(fsys, RootTemplate)
	if err != nil {
		return nil, fmt.Errorf("read root component: %w", err)
	}
	return ui.NewTemplate("App", string(src))
}

// Run mounts root into doc. Icons are registered before the app renders;
// the icon stylesheet is added to the head after a successful mount.
func Run(doc *dom.Document, root ui.Component, opts Options) (*ui.App, error) {
	logger := opts.logger()

	lib := opts.library()
	lib.Add(opts.icons()...)

	appOpts := []ui.Option{ui.WithLogger(logger)}
	if opts.OnError != nil {
		appOpts = append(appOpts, ui.WithErrorHandler(opts.OnError))
	}

	app := ui.CreateApp(root, appOpts...).
		Component(icons.ComponentName, icons.NewComponent(lib))

	if err := app.Mount(doc, opts.selector()); err != nil {
		return nil, fmt.Errorf("mount app: %w", err)
	}

	injectIconStyles(doc)

	logger.Info("app bootstrapped",
		zap.String("selector", opts.selector()),
		zap.Int("icons", len(opts.icons())),
	)
	return app, nil
}

func injectIconStyles(doc *dom.Document) {
	if _, err := doc.Query("style[" + iconStyleAttr + "]"); err == nil {
		return
	}

	style := dom.Element(atom.Style, html.Attribute{Key: iconStyleAttr})
	style.AppendChild(&html.Node{Type: html.TextNode, Data: icons.CSS})
	doc.Head().AppendChild(style)
}
