package icons_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johann/pinboard/internal/dom"
	"github.com/johann/pinboard/internal/icons"
	"github.com/johann/pinboard/internal/icons/solid"
	"github.com/johann/pinboard/internal/ui"
)

func newLibrary() *icons.Library {
	lib := icons.NewLibrary()
	lib.Add(solid.Plus, solid.Edit, solid.Thumbtack)
	return lib
}

func renderIcon(t *testing.T, lib *icons.Library, props ui.Props) (string, error) {
	t.Helper()
	nodes, err := icons.NewComponent(lib).Render(&ui.RenderContext{}, props)
	if err != nil {
		return "", err
	}
	out, err := dom.RenderNodes(nodes)
	require.NoError(t, err)
	return out, nil
}

func TestLibraryFind(t *testing.T) {
	lib := newLibrary()

	tests := []struct {
		prefix string
		name   string
		want   string
	}{
		{"fas", "plus", "plus"},
		{"", "plus", "plus"},
		{"fas", "add", "plus"},
		{"fas", "edit", "pen-to-square"},
		{"fas", "pen-to-square", "pen-to-square"},
		{"fas", "thumbtack", "thumbtack"},
		{"fas", "thumb-tack", "thumbtack"},
	}

	for _, tt := range tests {
		t.Run(tt.prefix+"/"+tt.name, func(t *testing.T) {
			d, err := lib.Find(tt.prefix, tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Name)
		})
	}
}

func TestLibraryFindMissing(t *testing.T) {
	lib := newLibrary()

	for _, ref := range [][2]string{{"fas", "trash"}, {"far", "plus"}} {
		_, err := lib.Find(ref[0], ref[1])
		require.ErrorIs(t, err, icons.ErrUnregisteredIcon)

		var nf *icons.IconNotFoundError
		require.True(t, errors.As(err, &nf))
		assert.Equal(t, ref[0], nf.Prefix)
		assert.Equal(t, ref[1], nf.Name)
	}
}

func TestLibraryAddDefaultsPrefix(t *testing.T) {
	lib := icons.NewLibrary()
	lib.Add(icons.Definition{Name: "dot", Width: 16, Height: 16, Path: "M0 0h16v16H0z"})

	d, err := lib.Find("fas", "dot")
	require.NoError(t, err)
	assert.Equal(t, "fas", d.Prefix)
	assert.Equal(t, "0 0 16 16", d.ViewBox())
}

func TestLibraryListing(t *testing.T) {
	lib := newLibrary()

	assert.Equal(t, []string{
		"fas add", "fas edit", "fas pen-to-square", "fas plus", "fas thumb-tack", "fas thumbtack",
	}, lib.Names())

	defs := lib.Definitions()
	require.Len(t, defs, 3)
	assert.Equal(t, "pen-to-square", defs[0].Name)
	assert.Equal(t, "plus", defs[1].Name)
	assert.Equal(t, "thumbtack", defs[2].Name)
}

func TestParseIconProp(t *testing.T) {
	tests := []struct {
		value      string
		fallback   string
		wantPrefix string
		wantName   string
		wantErr    bool
	}{
		{"plus", "", "fas", "plus", false},
		{"fa-plus", "", "fas", "plus", false},
		{"fas plus", "", "fas", "plus", false},
		{"fas:plus", "", "fas", "plus", false},
		{"fa-solid fa-plus", "", "fas", "plus", false},
		{"fa-regular fa-plus", "", "far", "plus", false},
		{"plus", "far", "far", "plus", false},
		{"  edit  ", "", "fas", "edit", false},
		{"", "", "", "", true},
		{"fa-", "", "", "", true},
		{"a b c", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			prefix, name, err := icons.ParseIconProp(tt.value, tt.fallback)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPrefix, prefix)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestComponentRendersRegisteredIcons(t *testing.T) {
	lib := newLibrary()

	for _, name := range []string{"plus", "edit", "thumbtack"} {
		t.Run(name, func(t *testing.T) {
			out, err := renderIcon(t, lib, ui.Props{"icon": name})
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(out, `<svg class="svg-inline--fa fa-`), out)
			assert.Contains(t, out, `aria-hidden="true"`)
			assert.Contains(t, out, `data-prefix="fas"`)
			assert.Contains(t, out, `<path fill="currentColor" d="M`)
		})
	}
}

func TestComponentUnregisteredIcon(t *testing.T) {
	_, err := renderIcon(t, newLibrary(), ui.Props{"icon": "trash"})
	assert.ErrorIs(t, err, icons.ErrUnregisteredIcon)
}

func TestComponentMissingIconProp(t *testing.T) {
	_, err := renderIcon(t, newLibrary(), ui.Props{})
	require.Error(t, err)
	assert.False(t, errors.Is(err, icons.ErrUnregisteredIcon))
}

func TestComponentProps(t *testing.T) {
	out, err := renderIcon(t, newLibrary(), ui.Props{
		"icon":        "thumbtack",
		"size":        "2x",
		"fixed-width": "",
		"spin":        "false",
		"class":       "pinned",
		"title":       "Pin",
	})
	require.NoError(t, err)

	assert.Contains(t, out, `class="svg-inline--fa fa-thumbtack fa-2x fa-fw pinned"`)
	assert.NotContains(t, out, "fa-spin")
	assert.NotContains(t, out, "aria-hidden")
	assert.Contains(t, out, `viewBox="0 0 384 512"`)
	assert.Contains(t, out, "<title>Pin</title>")
}

func TestComponentIgnoresUnknownSize(t *testing.T) {
	out, err := renderIcon(t, newLibrary(), ui.Props{"icon": "plus", "size": "huge"})
	require.NoError(t, err)
	assert.Contains(t, out, `class="svg-inline--fa fa-plus"`)
}

func TestComponentInApp(t *testing.T) {
	lib := newLibrary()
	root := ui.MustTemplate("Root", `<p><font-awesome-icon icon="plus"></font-awesome-icon><font-awesome-icon icon="trash"></font-awesome-icon></p>`)

	var failed []error
	app := ui.CreateApp(root, ui.WithErrorHandler(func(_ string, err error) {
		failed = append(failed, err)
	})).Component(icons.ComponentName, icons.NewComponent(lib))

	nodes, err := app.Render()
	require.NoError(t, err)
	out, err := dom.RenderNodes(nodes)
	require.NoError(t, err)

	assert.Contains(t, out, `data-icon="plus"`)
	assert.Contains(t, out, "<!-- font-awesome-icon -->")
	require.Len(t, failed, 1)
	assert.ErrorIs(t, failed[0], icons.ErrUnregisteredIcon)
}

func TestComponentSelfClosingKeepsSiblings(t *testing.T) {
	root := ui.MustTemplate("Root", `<button><font-awesome-icon icon="plus" /><span>New note</span></button>`)
	app := ui.CreateApp(root).Component(icons.ComponentName, icons.NewComponent(newLibrary()))

	nodes, err := app.Render()
	require.NoError(t, err)
	out, err := dom.RenderNodes(nodes)
	require.NoError(t, err)

	assert.Regexp(t, `^<button><svg [^>]*data-icon="plus"[^>]*>.*</svg><span>New note</span></button>$`, out)
}

func TestDescribe(t *testing.T) {
	line := icons.Describe(solid.Edit)
	assert.Contains(t, line, "pen-to-square")
	assert.Contains(t, line, "U+F044")
	assert.Contains(t, line, "aliases: edit")
}
