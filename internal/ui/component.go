// Package ui is a small server-side component model. An App owns a root
// component and a registry of global components; mounting renders the root,
// expands every registered component tag found in the output and attaches
// the result to an element of a host document.
package ui

import (
	"bytes"
	"fmt"
	"html/template"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Props are the attributes a component tag was written with.
type Props map[string]string

// Get returns the value of key, or "".
func (p Props) Get(key string) string {
	return p[key]
}

// Has reports whether key was set, even without a value.
func (p Props) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Bool treats a present attribute as true unless its value is "false".
func (p Props) Bool(key string) bool {
	v, ok := p[key]
	return ok && v != "false"
}

// RenderContext is passed to a component for a single render.
type RenderContext struct {
	// Slot holds the already rendered children of the component tag.
	Slot []*html.Node

	name   string
	logger *zap.Logger
}

// Name is the registered name the component was invoked with.
func (ctx *RenderContext) Name() string {
	return ctx.name
}

// Logger returns the application logger.
func (ctx *RenderContext) Logger() *zap.Logger {
	return ctx.logger
}

// Component renders a list of nodes. Returned nodes may contain tags of
// other registered components; the App expands them.
type Component interface {
	Render(ctx *RenderContext, props Props) ([]*html.Node, error)
}

// ComponentFunc adapts a function to Component.
type ComponentFunc func(ctx *RenderContext, props Props) ([]*html.Node, error)

// Render calls f.
func (f ComponentFunc) Render(ctx *RenderContext, props Props) ([]*html.Node, error) {
	return f(ctx, props)
}

// Template is a component defined by markup. The source is an html/template
// executed with the props as data. A <slot></slot> element is replaced by
// the children the component was invoked with; its own children are the
// fallback when there are none.
type Template struct {
	name string
	tmpl *template.Template
}

// NewTemplate parses source once so errors surface at definition time.
func NewTemplate(name, source string) (*Template, error) {
	t, err := template.New(name).Option("missingkey=zero").Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parse component %s: %w", name, err)
	}
	return &Template{name: name, tmpl: t}, nil
}

// MustTemplate is NewTemplate that panics on error, for static definitions.
func MustTemplate(name, source string) *Template {
	t, err := NewTemplate(name, source)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the template name.
func (t *Template) Name() string {
	return t.name
}

// Render executes the template and parses the output as an HTML fragment.
func (t *Template) Render(ctx *RenderContext, props Props) ([]*html.Node, error) {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, map[string]string(props)); err != nil {
		return nil, fmt.Errorf("execute component %s: %w", t.name, err)
	}

	nodes, err := html.ParseFragment(&buf, &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Div,
		Data:     "div",
	})
	if err != nil {
		return nil, fmt.Errorf("parse output of %s: %w", t.name, err)
	}

	var slot []*html.Node
	if ctx != nil {
		slot = ctx.Slot
	}
	return fillSlots(nodes, slot), nil
}

func fillSlots(nodes []*html.Node, slot []*html.Node) []*html.Node {
	used := false
	take := func() []*html.Node {
		if !used {
			used = true
			return slot
		}
		clones := make([]*html.Node, len(slot))
		for i, n := range slot {
			clones[i] = cloneNode(n)
		}
		return clones
	}

	var walk func(n *html.Node) []*html.Node
	walk = func(n *html.Node) []*html.Node {
		if n.Type == html.ElementNode && n.Data == "slot" {
			if len(slot) > 0 {
				return take()
			}
			return detachChildren(n)
		}
		for c := n.FirstChild; c != nil; {
			next := c.NextSibling
			replaceNode(c, walk(c))
			c = next
		}
		return []*html.Node{n}
	}

	out := make([]*html.Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, walk(n)...)
	}
	return out
}

// replaceNode swaps old for repl inside old's parent. A single-element
// replacement equal to old is a no-op.
func replaceNode(old *html.Node, repl []*html.Node) {
	if len(repl) == 1 && repl[0] == old {
		return
	}
	parent := old.Parent
	for _, r := range repl {
		if r.Parent != nil {
			r.Parent.RemoveChild(r)
		}
		parent.InsertBefore(r, old)
	}
	parent.RemoveChild(old)
}

func detachChildren(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		out = append(out, c)
		c = next
	}
	return out
}

func cloneNode(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(cloneNode(child))
	}
	return c
}
