package ui

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/net/html/atom"
)

// ErrInvalidComponentName is returned for empty, malformed or reserved names.
var ErrInvalidComponentName = errors.New("invalid component name")

var componentName = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// Registry maps component names to definitions. Names are stored in
// kebab-case, so FontAwesomeIcon and font-awesome-icon are the same entry.
type Registry struct {
	components map[string]Component
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{components: make(map[string]Component)}
}

// Register binds name to c. Registering a name again replaces the binding.
func (r *Registry) Register(name string, c Component) error {
	key, err := NormalizeName(name)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("%w: %q has no definition", ErrInvalidComponentName, name)
	}
	r.components[key] = c
	return nil
}

// Lookup resolves a tag or component name.
func (r *Registry) Lookup(name string) (Component, bool) {
	c, ok := r.components[kebab(name)]
	return c, ok
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.components))
	for name := range r.components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered components.
func (r *Registry) Len() int {
	return len(r.components)
}

// NormalizeName converts a component name to its tag form and validates it.
// Built-in HTML element names are reserved.
func NormalizeName(name string) (string, error) {
	key := kebab(strings.TrimSpace(name))
	if !componentName.MatchString(key) {
		return "", fmt.Errorf("%w: %q", ErrInvalidComponentName, name)
	}
	if atom.Lookup([]byte(key)) != 0 {
		return "", fmt.Errorf("%w: %q is a built-in element", ErrInvalidComponentName, name)
	}
	return key, nil
}

func kebab(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 && !strings.HasSuffix(b.String(), "-") {
				b.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
