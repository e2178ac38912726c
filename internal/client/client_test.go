package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johann/pinboard/internal/client"
	"github.com/johann/pinboard/internal/config"
)

func newClient(t *testing.T, serverURL, base string) *client.Client {
	t.Helper()
	cfg := config.DefaultClientConfig()
	cfg.ServerURL = serverURL
	cfg.APIBase = base
	c, err := client.New(cfg)
	require.NoError(t, err)
	return c
}

func TestGreeting(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Hello World!"))
	}))
	defer srv.Close()

	got, err := newClient(t, srv.URL+"/", "/api").Greeting(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Hello World!", got)
}

func TestGreetingNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"not found","path":"/v2/"}`))
	}))
	defer srv.Close()

	_, err := newClient(t, srv.URL, "/v2").Greeting(context.Background())
	require.ErrorIs(t, err, client.ErrNotFound)

	var statusErr *client.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, "not found", statusErr.Message)
}

func TestURL(t *testing.T) {
	assert.Equal(t, "http://h/api/", newClient(t, "http://h", "/api/").URL("/"))
	assert.Equal(t, "http://h/", newClient(t, "http://h", "/").URL("/"))
}

func TestNewRequiresServer(t *testing.T) {
	_, err := client.New(&config.ClientConfig{})
	assert.Error(t, err)
}
