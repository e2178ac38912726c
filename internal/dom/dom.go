// Package dom holds the host document an application is mounted into.
package dom

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrMountTargetMissing is returned when no element matches a mount selector.
var ErrMountTargetMissing = errors.New("mount target missing")

// MountTargetError reports the selector that matched nothing.
type MountTargetError struct {
	Selector string
}

func (e *MountTargetError) Error() string {
	return fmt.Sprintf("%v: no element matches %q", ErrMountTargetMissing, e.Selector)
}

func (e *MountTargetError) Unwrap() error {
	return ErrMountTargetMissing
}

// SelectorError reports a selector that could not be compiled.
type SelectorError struct {
	Selector string
	Err      error
}

func (e *SelectorError) Error() string {
	return fmt.Sprintf("invalid selector %q: %v", e.Selector, e.Err)
}

func (e *SelectorError) Unwrap() error {
	return e.Err
}

// Document is a parsed HTML document.
type Document struct {
	root *html.Node
}

// Parse reads a full HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &Document{root: root}, nil
}

// ParseString is Parse for in-memory markup.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Root returns the document node.
func (d *Document) Root() *html.Node {
	return d.root
}

// Query returns the first element matching selector.
func (d *Document) Query(selector string) (*html.Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, &SelectorError{Selector: selector, Err: err}
	}
	n := sel.MatchFirst(d.root)
	if n == nil {
		return nil, &MountTargetError{Selector: selector}
	}
	return n, nil
}

// Mount replaces the children of the element matching selector with nodes.
func (d *Document) Mount(selector string, nodes []*html.Node) error {
	target, err := d.Query(selector)
	if err != nil {
		return err
	}

	for c := target.FirstChild; c != nil; {
		next := c.NextSibling
		target.RemoveChild(c)
		c = next
	}
	for _, n := range nodes {
		detach(n)
		target.AppendChild(n)
	}
	return nil
}

// Head returns the <head> element, creating it when the parser did not.
func (d *Document) Head() *html.Node {
	if n, err := d.Query("head"); err == nil {
		return n
	}

	htmlEl, err := d.Query("html")
	if err != nil {
		htmlEl = Element(atom.Html)
		d.root.AppendChild(htmlEl)
	}
	head := Element(atom.Head)
	htmlEl.InsertBefore(head, htmlEl.FirstChild)
	return head
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// Bytes renders the document into memory.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderNodes renders a node list as an HTML fragment.
func RenderNodes(nodes []*html.Node) (string, error) {
	var buf bytes.Buffer
	for _, n := range nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// Element creates an empty element node for a known tag.
func Element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

// Attr returns the value of key on n.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}
