// Package api defines the HTTP API served under the base path.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/johann/pinboard/internal/router"
)

// DefaultBase is the prefix the API is mounted under.
const DefaultBase = "/api"

// Greeting is the body of GET {base}/.
const Greeting = "Hello World!"

// Routes returns the unprefixed route table.
func Routes() *router.Router {
	r := router.New()
	if err := r.GET("/", handleGreeting); err != nil {
		// static table, cannot fail
		panic(err)
	}
	return r
}

// Mount returns the route table re-based under base.
func Mount(base string) (*router.Router, error) {
	return router.WithBase(base, Routes())
}

func handleGreeting(c *gin.Context) (any, error) {
	return Greeting, nil
}
