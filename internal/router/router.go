// Package router provides the route table used by the API server.
//
// A Router is an ordered table of (method, pattern) entries. It is built once
// at startup, optionally re-based under a path prefix with WithBase, and then
// installed onto a gin engine. Installing seals the table; it is read-only
// from then on, so concurrent requests need no locking.
package router

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	// ErrDuplicateRoute is returned when a (method, pattern) pair is registered twice.
	ErrDuplicateRoute = errors.New("duplicate route")
	// ErrInvalidRoute is returned for an unknown method or a malformed pattern.
	ErrInvalidRoute = errors.New("invalid route")
	// ErrSealed is returned when registering on a router that has been installed.
	ErrSealed = errors.New("router is sealed")
)

var methods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodOptions: true,
	http.MethodConnect: true,
	http.MethodTrace:   true,
}

// HandlerFunc produces the response for a request. The returned value is
// written according to its type, see Respond.
type HandlerFunc func(c *gin.Context) (any, error)

// Route is a single entry of the route table.
type Route struct {
	Method  string
	Pattern string
	Handler HandlerFunc
}

// RouteError describes a rejected registration.
type RouteError struct {
	Method  string
	Pattern string
	Err     error
}

func (e *RouteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Pattern, e.Err)
}

func (e *RouteError) Unwrap() error {
	return e.Err
}

type routeKey struct {
	method  string
	pattern string
}

// Router is an ordered route table.
type Router struct {
	routes []Route
	index  map[routeKey]int
	sealed bool
}

// New creates an empty router
func New() *Router {
	return &Router{
		index: make(map[routeKey]int),
	}
}

// Register adds a route. Duplicate (method, pattern) pairs are rejected.
func (r *Router) Register(method, pattern string, h HandlerFunc) error {
	method = strings.ToUpper(strings.TrimSpace(method))

	if r.sealed {
		return &RouteError{Method: method, Pattern: pattern, Err: ErrSealed}
	}
	if !methods[method] {
		return &RouteError{Method: method, Pattern: pattern, Err: fmt.Errorf("%w: unknown method", ErrInvalidRoute)}
	}
	if err := validatePattern(pattern); err != nil {
		return &RouteError{Method: method, Pattern: pattern, Err: err}
	}
	if h == nil {
		return &RouteError{Method: method, Pattern: pattern, Err: fmt.Errorf("%w: nil handler", ErrInvalidRoute)}
	}

	key := routeKey{method: method, pattern: pattern}
	if _, exists := r.index[key]; exists {
		return &RouteError{Method: method, Pattern: pattern, Err: ErrDuplicateRoute}
	}

	r.index[key] = len(r.routes)
	r.routes = append(r.routes, Route{Method: method, Pattern: pattern, Handler: h})
	return nil
}

// GET registers a handler for GET requests.
func (r *Router) GET(pattern string, h HandlerFunc) error {
	return r.Register(http.MethodGet, pattern, h)
}

// Lookup finds the entry registered for exactly this method and pattern.
func (r *Router) Lookup(method, path string) (Route, bool) {
	i, ok := r.index[routeKey{method: strings.ToUpper(method), pattern: path}]
	if !ok {
		return Route{}, false
	}
	return r.routes[i], true
}

// Routes returns a copy of the table in registration order.
func (r *Router) Routes() []Route {
	out := make([]Route, len(r.routes))
	copy(out, r.routes)
	return out
}

// Len returns the number of registered routes.
func (r *Router) Len() int {
	return len(r.routes)
}

// Sealed reports whether the router has been installed.
func (r *Router) Sealed() bool {
	return r.sealed
}

// WithBase returns a new router holding every route of r under prefix.
// The prefix "/api" turns "/" into "/api/". An empty prefix or "/" copies
// the table unchanged. r itself is not modified.
func WithBase(prefix string, r *Router) (*Router, error) {
	base, err := normalizePrefix(prefix)
	if err != nil {
		return nil, err
	}

	out := New()
	for _, route := range r.routes {
		if err := out.Register(route.Method, base+route.Pattern, route.Handler); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Install registers the table on a gin engine or group and seals the router.
func (r *Router) Install(routes gin.IRoutes) error {
	if r.sealed {
		return ErrSealed
	}
	for _, route := range r.routes {
		routes.Handle(route.Method, route.Pattern, Wrap(route.Handler))
	}
	r.sealed = true
	return nil
}

// Handler builds a standalone engine serving this table, with NotFound as
// the fallback for everything else.
func (r *Router) Handler() (http.Handler, error) {
	engine := NewEngine()
	if err := r.Install(engine); err != nil {
		return nil, err
	}
	return engine, nil
}

// NewEngine returns a gin engine configured for strict matching: no
// trailing-slash or fixed-path redirects, and no 405 responses. Unmatched
// requests are answered by NotFound.
func NewEngine() *gin.Engine {
	engine := gin.New()
	engine.RedirectTrailingSlash = false
	engine.RedirectFixedPath = false
	engine.HandleMethodNotAllowed = false
	engine.NoRoute(NotFound)
	return engine
}

func validatePattern(pattern string) error {
	if !strings.HasPrefix(pattern, "/") {
		return fmt.Errorf("%w: pattern must start with /", ErrInvalidRoute)
	}
	if strings.ContainsAny(pattern, " \t\r\n?#") {
		return fmt.Errorf("%w: pattern contains whitespace, ? or #", ErrInvalidRoute)
	}
	if strings.Contains(pattern, "//") {
		return fmt.Errorf("%w: empty path segment", ErrInvalidRoute)
	}
	return nil
}

func normalizePrefix(prefix string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" || prefix == "/" {
		return "", nil
	}
	if !strings.HasPrefix(prefix, "/") {
		return "", fmt.Errorf("%w: prefix %q must start with /", ErrInvalidRoute, prefix)
	}
	prefix = strings.TrimSuffix(prefix, "/")
	if err := validatePattern(prefix); err != nil {
		return "", fmt.Errorf("prefix %q: %w", prefix, err)
	}
	return prefix, nil
}
