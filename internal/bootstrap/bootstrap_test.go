package bootstrap_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johann/pinboard"
	"github.com/johann/pinboard/internal/bootstrap"
	"github.com/johann/pinboard/internal/dom"
	"github.com/johann/pinboard/internal/icons"
	"github.com/johann/pinboard/internal/icons/solid"
	"github.com/johann/pinboard/internal/ui"
)

const host = `<!DOCTYPE html><html><head><title>t</title></head><body><div id="app"></div></body></html>`

func mustDoc(t *testing.T, s string) *dom.Document {
	t.Helper()
	doc, err := dom.ParseString(s)
	require.NoError(t, err)
	return doc
}

func render(t *testing.T, doc *dom.Document) string {
	t.Helper()
	out, err := doc.Bytes()
	require.NoError(t, err)
	return string(out)
}

func TestRunMountsIntoEmptyTarget(t *testing.T) {
	doc := mustDoc(t, host)
	root := ui.MustTemplate("App", `<p><font-awesome-icon icon="plus"></font-awesome-icon> add</p>`)

	app, err := bootstrap.Run(doc, root, bootstrap.Options{Library: icons.NewLibrary()})
	require.NoError(t, err)
	assert.True(t, app.Mounted())

	_, ok := app.Resolve(icons.ComponentName)
	assert.True(t, ok)

	out := render(t, doc)
	assert.Contains(t, out, `<div id="app"><p><svg`)
	assert.Contains(t, out, `data-icon="plus"`)
	assert.Contains(t, out, `<style data-icon-styles="">`)
}

func TestRunMissingTarget(t *testing.T) {
	doc := mustDoc(t, `<html><head></head><body><main></main></body></html>`)
	before := render(t, doc)

	_, err := bootstrap.Run(doc, ui.MustTemplate("App", `<p>x</p>`), bootstrap.Options{Library: icons.NewLibrary()})
	require.ErrorIs(t, err, dom.ErrMountTargetMissing)

	// nothing mounted, no styles injected
	assert.Equal(t, before, render(t, doc))
}

func TestRunCustomSelector(t *testing.T) {
	doc := mustDoc(t, `<html><body><section class="root">old</section></body></html>`)

	_, err := bootstrap.Run(doc, ui.MustTemplate("App", `<p>new</p>`), bootstrap.Options{
		Selector: "section.root",
		Library:  icons.NewLibrary(),
	})
	require.NoError(t, err)

	out := render(t, doc)
	assert.Contains(t, out, `<section class="root"><p>new</p></section>`)
	assert.NotContains(t, out, "old")
}

func TestRunRegistersIcons(t *testing.T) {
	lib := icons.NewLibrary()
	_, err := bootstrap.Run(mustDoc(t, host), ui.MustTemplate("App", `<p></p>`), bootstrap.Options{Library: lib})
	require.NoError(t, err)

	assert.Len(t, lib.Definitions(), len(solid.All))
	for _, name := range []string{"plus", "edit", "thumbtack"} {
		_, err := lib.Find(icons.DefaultPrefix, name)
		assert.NoError(t, err, name)
	}
}

func TestRunUnknownIconIsReported(t *testing.T) {
	var reported []string
	doc := mustDoc(t, host)

	_, err := bootstrap.Run(doc, ui.MustTemplate("App", `<p><font-awesome-icon icon="rocket"></font-awesome-icon></p>`), bootstrap.Options{
		Library: icons.NewLibrary(),
		OnError: func(component string, err error) {
			assert.ErrorIs(t, err, icons.ErrUnregisteredIcon)
			reported = append(reported, component)
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{icons.ComponentName}, reported)
	assert.Contains(t, render(t, doc), "<!-- font-awesome-icon -->")
}

func TestRunSelfClosingIcons(t *testing.T) {
	var reported []string
	doc := mustDoc(t, host)
	root := ui.MustTemplate("App", `<button><font-awesome-icon icon="plus" /><span>New note</span></button>`+
		`<p><font-awesome-icon icon="rocket" /><em>still here</em></p>`)

	_, err := bootstrap.Run(doc, root, bootstrap.Options{
		Library: icons.NewLibrary(),
		OnError: func(component string, _ error) { reported = append(reported, component) },
	})
	require.NoError(t, err)

	out := render(t, doc)
	assert.Contains(t, out, `</svg><span>New note</span></button>`)
	assert.Contains(t, out, `<!-- font-awesome-icon --><em>still here</em></p>`)
	assert.Equal(t, []string{icons.ComponentName}, reported)
}

func TestIconStylesInjectedOnce(t *testing.T) {
	doc := mustDoc(t, `<html><head></head><body><div id="a"></div><div id="b"></div></body></html>`)
	lib := icons.NewLibrary()

	_, err := bootstrap.Run(doc, ui.MustTemplate("A", `<p>a</p>`), bootstrap.Options{Selector: "#a", Library: lib})
	require.NoError(t, err)
	_, err = bootstrap.Run(doc, ui.MustTemplate("B", `<p>b</p>`), bootstrap.Options{Selector: "#b", Library: lib})
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(render(t, doc), "data-icon-styles"))
}

func TestLoadFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		bootstrap.HostDocument: {Data: []byte(host)},
		bootstrap.RootTemplate: {Data: []byte(`<h1>Board</h1>`)},
	}

	doc, err := bootstrap.LoadDocument(fsys)
	require.NoError(t, err)
	root, err := bootstrap.RootComponent(fsys)
	require.NoError(t, err)

	_, err = bootstrap.Run(doc, root, bootstrap.Options{Library: icons.NewLibrary()})
	require.NoError(t, err)
	assert.Contains(t, render(t, doc), `<div id="app"><h1>Board</h1></div>`)
}

func TestLoadMissingFiles(t *testing.T) {
	_, err := bootstrap.LoadDocument(fstest.MapFS{})
	assert.Error(t, err)
	_, err = bootstrap.RootComponent(fstest.MapFS{})
	assert.Error(t, err)
}

func TestEmbeddedFrontend(t *testing.T) {
	fsys := pinboard.Files()

	doc, err := bootstrap.LoadDocument(fsys)
	require.NoError(t, err)
	root, err := bootstrap.RootComponent(fsys)
	require.NoError(t, err)

	var failures []error
	_, err = bootstrap.Run(doc, root, bootstrap.Options{
		Library: icons.NewLibrary(),
		OnError: func(_ string, err error) { failures = append(failures, err) },
	})
	require.NoError(t, err)
	assert.Empty(t, failures)

	out := render(t, doc)
	assert.Contains(t, out, `data-icon="thumbtack"`)
	assert.Contains(t, out, `data-icon="plus"`)
	assert.Contains(t, out, `data-icon="pen-to-square"`)
	assert.NotContains(t, out, "<font-awesome-icon")
}
