package ui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johann/pinboard/internal/dom"
	"github.com/johann/pinboard/internal/ui"
)

const hostPage = `<!DOCTYPE html><html><head></head><body><div id="app"></div></body></html>`

func TestMount(t *testing.T) {
	doc, err := dom.ParseString(hostPage)
	require.NoError(t, err)

	app := ui.CreateApp(ui.MustTemplate("Root", `<main>hi</main>`))
	require.NoError(t, app.Mount(doc, "#app"))
	assert.True(t, app.Mounted())

	out, err := doc.Bytes()
	require.NoError(t, err)
	assert.Contains(t, string(out), `<div id="app"><main>hi</main></div>`)
}

func TestMountMissingTarget(t *testing.T) {
	doc, err := dom.ParseString(`<!DOCTYPE html><html><head></head><body></body></html>`)
	require.NoError(t, err)
	before, err := doc.Bytes()
	require.NoError(t, err)

	app := ui.CreateApp(ui.MustTemplate("Root", `<main>hi</main>`))
	err = app.Mount(doc, "#app")
	require.ErrorIs(t, err, dom.ErrMountTargetMissing)
	assert.False(t, app.Mounted())

	after, err := doc.Bytes()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestMountTwice(t *testing.T) {
	doc, err := dom.ParseString(hostPage)
	require.NoError(t, err)

	app := ui.CreateApp(ui.MustTemplate("Root", `<main>hi</main>`))
	require.NoError(t, app.Mount(doc, "#app"))
	assert.ErrorIs(t, app.Mount(doc, "#app"), ui.ErrAlreadyMounted)
}

func TestRegisterAfterMountIgnored(t *testing.T) {
	doc, err := dom.ParseString(hostPage)
	require.NoError(t, err)

	app := ui.CreateApp(ui.MustTemplate("Root", `<main>hi</main>`))
	require.NoError(t, app.Mount(doc, "#app"))

	app.Component("late-comer", textComponent("x"))
	_, ok := app.Resolve("late-comer")
	assert.False(t, ok)
}

func TestMountWithoutRoot(t *testing.T) {
	doc, err := dom.ParseString(hostPage)
	require.NoError(t, err)

	assert.Error(t, ui.CreateApp(nil).Mount(doc, "#app"))
}
