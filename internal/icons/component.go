package icons

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/johann/pinboard/internal/ui"
)

// ComponentName is the tag the icon component is registered under.
const ComponentName = "font-awesome-icon"

var sizes = map[string]bool{
	"2xs": true, "xs": true, "sm": true, "lg": true, "xl": true, "2xl": true,
	"1x": true, "2x": true, "3x": true, "4x": true, "5x": true,
	"6x": true, "7x": true, "8x": true, "9x": true, "10x": true,
}

type component struct {
	lib *Library
}

// NewComponent returns the icon-rendering component backed by lib.
//
// Props: icon (required), prefix, size, fixed-width, spin, pulse, title
// and class. Rendering an icon lib does not hold fails with an error
// wrapping ErrUnregisteredIcon. Icons have no content of their own, so any
// slot content follows the svg; the parser nests the siblings of a
// self-closing <font-awesome-icon ... /> inside it.
func NewComponent(lib *Library) ui.Component {
	if lib == nil {
		lib = Default()
	}
	return &component{lib: lib}
}

func (c *component) Render(ctx *ui.RenderContext, props ui.Props) ([]*html.Node, error) {
	prefix, name, err := ParseIconProp(props.Get("icon"), props.Get("prefix"))
	if err != nil {
		return nil, err
	}

	def, err := c.lib.Find(prefix, name)
	if err != nil {
		return nil, err
	}

	return append([]*html.Node{svg(def, props)}, ctx.Slot...), nil
}

func svg(def Definition, props ui.Props) *html.Node {
	classes := []string{"svg-inline--fa", "fa-" + def.Name}
	if size := props.Get("size"); sizes[size] {
		classes = append(classes, "fa-"+size)
	}
	if props.Bool("fixed-width") {
		classes = append(classes, "fa-fw")
	}
	if props.Bool("spin") {
		classes = append(classes, "fa-spin")
	}
	if props.Bool("pulse") {
		classes = append(classes, "fa-pulse")
	}
	if extra := strings.TrimSpace(props.Get("class")); extra != "" {
		classes = append(classes, extra)
	}

	title := props.Get("title")

	attrs := []html.Attribute{{Key: "class", Val: strings.Join(classes, " ")}}
	if title == "" {
		attrs = append(attrs, html.Attribute{Key: "aria-hidden", Val: "true"})
	}
	attrs = append(attrs,
		html.Attribute{Key: "focusable", Val: "false"},
		html.Attribute{Key: "data-prefix", Val: def.Prefix},
		html.Attribute{Key: "data-icon", Val: def.Name},
		html.Attribute{Key: "role", Val: "img"},
		html.Attribute{Key: "xmlns", Val: "http://www.w3.org/2000/svg"},
		html.Attribute{Key: "viewBox", Val: def.ViewBox()},
	)

	root := &html.Node{Type: html.ElementNode, Data: "svg", Attr: attrs}
	if title != "" {
		t := &html.Node{Type: html.ElementNode, Data: "title"}
		t.AppendChild(&html.Node{Type: html.TextNode, Data: title})
		root.AppendChild(t)
	}
	root.AppendChild(&html.Node{
		Type: html.ElementNode,
		Data: "path",
		Attr: []html.Attribute{
			{Key: "fill", Val: "currentColor"},
			{Key: "d", Val: def.Path},
		},
	})
	return root
}

// Describe formats a definition for listings.
func Describe(d Definition) string {
	line := fmt.Sprintf("%s %-12s %4dx%-4d U+%s", d.Prefix, d.Name, d.Width, d.Height, strings.ToUpper(d.Unicode))
	if len(d.Aliases) > 0 {
		line += "  aliases: " + strings.Join(d.Aliases, ", ")
	}
	return line
}
