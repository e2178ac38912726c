package dom_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/johann/pinboard/internal/dom"
)

const host = `<!DOCTYPE html><html><head><title>t</title></head><body><div id="app"></div><p class="note">x</p></body></html>`

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func TestQuery(t *testing.T) {
	doc, err := dom.ParseString(host)
	require.NoError(t, err)

	for _, sel := range []string{"#app", "div#app", "body > div", ".note", "p"} {
		n, err := doc.Query(sel)
		require.NoError(t, err, sel)
		assert.Equal(t, html.ElementNode, n.Type, sel)
	}
}

func TestQueryMissing(t *testing.T) {
	doc, err := dom.ParseString(`<html><body><div id="root"></div></body></html>`)
	require.NoError(t, err)

	_, err = doc.Query("#app")
	require.ErrorIs(t, err, dom.ErrMountTargetMissing)

	var target *dom.MountTargetError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, "#app", target.Selector)
}

func TestQueryInvalidSelector(t *testing.T) {
	doc, err := dom.ParseString(host)
	require.NoError(t, err)

	_, err = doc.Query("#")
	var selErr *dom.SelectorError
	assert.True(t, errors.As(err, &selErr))
	assert.False(t, errors.Is(err, dom.ErrMountTargetMissing))
}

func TestMountReplacesChildren(t *testing.T) {
	doc, err := dom.ParseString(`<html><body><div id="app"><span>old</span></div></body></html>`)
	require.NoError(t, err)

	p := dom.Element(atom.P)
	p.AppendChild(text("new"))
	require.NoError(t, doc.Mount("#app", []*html.Node{p}))

	out, err := doc.Bytes()
	require.NoError(t, err)
	assert.Contains(t, string(out), `<div id="app"><p>new</p></div>`)
	assert.NotContains(t, string(out), "old")
}

func TestMountMissingTarget(t *testing.T) {
	doc, err := dom.ParseString(`<html><body></body></html>`)
	require.NoError(t, err)

	err = doc.Mount("#app", []*html.Node{text("x")})
	assert.ErrorIs(t, err, dom.ErrMountTargetMissing)
}

func TestHead(t *testing.T) {
	doc, err := dom.ParseString(host)
	require.NoError(t, err)

	head := doc.Head()
	require.NotNil(t, head)
	assert.Equal(t, "head", head.Data)

	style := dom.Element(atom.Style)
	style.AppendChild(text("p{}"))
	head.AppendChild(style)

	out, err := doc.Bytes()
	require.NoError(t, err)
	assert.Contains(t, string(out), "<style>p{}</style></head>")
}

func TestRenderNodes(t *testing.T) {
	a := dom.Element(atom.B)
	a.AppendChild(text("bold"))
	out, err := dom.RenderNodes([]*html.Node{a, text(" & more")})
	require.NoError(t, err)
	assert.Equal(t, "<b>bold</b> &amp; more", out)
}

func TestAttr(t *testing.T) {
	n := dom.Element(atom.Div, html.Attribute{Key: "id", Val: "app"})
	v, ok := dom.Attr(n, "id")
	assert.True(t, ok)
	assert.Equal(t, "app", v)

	_, ok = dom.Attr(n, "class")
	assert.False(t, ok)
}
