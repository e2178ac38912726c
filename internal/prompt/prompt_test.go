package prompt_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/johann/pinboard/internal/prompt"
)

func TestString(t *testing.T) {
	var out bytes.Buffer
	p := prompt.New(strings.NewReader("\n\n:9000\n"), &out)

	assert.Equal(t, ":8080", p.String("Listen", ":8080", ":1"))
	assert.Equal(t, ":1", p.String("Listen", "", ":1"))
	assert.Equal(t, ":9000", p.String("Listen", ":8080", ""))
	assert.Contains(t, out.String(), "Listen [:8080]: ")
}

func TestInt(t *testing.T) {
	var out bytes.Buffer
	p := prompt.New(strings.NewReader("\n9191\nlots\n"), &out)

	assert.Equal(t, 9090, p.Int("Metrics port", 9090))
	assert.Equal(t, 9191, p.Int("Metrics port", 9090))
	assert.Equal(t, 9090, p.Int("Metrics port", 9090))
	assert.Contains(t, out.String(), "Not a number")
}

func TestSecret(t *testing.T) {
	var out bytes.Buffer
	p := prompt.New(strings.NewReader("\nnew-secret\n"), &out)

	assert.Equal(t, "old", p.Secret("Secret", "old"))
	assert.Equal(t, "new-secret", p.Secret("Secret", "old"))
	assert.NotContains(t, out.String(), "old")
	assert.Contains(t, out.String(), "****hidden****")
}

func TestYesNo(t *testing.T) {
	p := prompt.New(strings.NewReader("\nyes\nN\nmaybe\n"), &bytes.Buffer{})

	assert.True(t, p.YesNo("TLS?", true))
	assert.True(t, p.YesNo("TLS?", false))
	assert.False(t, p.YesNo("TLS?", true))
	assert.False(t, p.YesNo("TLS?", true))
}

func TestEOFKeepsDefaults(t *testing.T) {
	p := prompt.New(strings.NewReader(""), &bytes.Buffer{})
	assert.Equal(t, "x", p.String("L", "x", ""))
	assert.False(t, p.YesNo("Q", false))
}
