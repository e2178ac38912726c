// Package icons holds the icon registry consumed by the icon component.
//
// Icons are registered into a Library before any render references them.
// A package-level default library backs Add and Default, so registering
// once at startup makes icons available to every app in the process.
package icons

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// DefaultPrefix is the style prefix used when an icon reference has none.
const DefaultPrefix = "fas"

// ErrUnregisteredIcon is returned when an icon that was never added is referenced.
var ErrUnregisteredIcon = errors.New("unregistered icon")

// IconNotFoundError names the missing icon.
type IconNotFoundError struct {
	Prefix string
	Name   string
}

func (e *IconNotFoundError) Error() string {
	return fmt.Sprintf("%v: %s %s", ErrUnregisteredIcon, e.Prefix, e.Name)
}

func (e *IconNotFoundError) Unwrap() error {
	return ErrUnregisteredIcon
}

// Definition is the rendering data of one icon.
type Definition struct {
	Prefix  string
	Name    string
	Width   int
	Height  int
	Aliases []string
	Unicode string
	Path    string
}

// ViewBox returns the SVG viewBox attribute value.
func (d Definition) ViewBox() string {
	return fmt.Sprintf("0 0 %d %d", d.Width, d.Height)
}

type iconKey struct {
	prefix string
	name   string
}

// Library maps (prefix, name) to icon definitions.
type Library struct {
	mu    sync.RWMutex
	icons map[iconKey]Definition
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{icons: make(map[iconKey]Definition)}
}

// Add registers definitions under their names and aliases. Adding an icon
// again replaces it.
func (l *Library) Add(defs ...Definition) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, d := range defs {
		prefix := d.Prefix
		if prefix == "" {
			prefix = DefaultPrefix
			d.Prefix = prefix
		}
		l.icons[iconKey{prefix: prefix, name: d.Name}] = d
		for _, alias := range d.Aliases {
			l.icons[iconKey{prefix: prefix, name: alias}] = d
		}
	}
}

// Find returns the definition for prefix and name. An empty prefix means
// DefaultPrefix.
func (l *Library) Find(prefix, name string) (Definition, error) {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	l.mu.RLock()
	d, ok := l.icons[iconKey{prefix: prefix, name: name}]
	l.mu.RUnlock()

	if !ok {
		return Definition{}, &IconNotFoundError{Prefix: prefix, Name: name}
	}
	return d, nil
}

// Names lists every registered reference as "prefix name", aliases
// included, sorted.
func (l *Library) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	names := make([]string, 0, len(l.icons))
	for k := range l.icons {
		names = append(names, k.prefix+" "+k.name)
	}
	sort.Strings(names)
	return names
}

// Definitions returns each distinct icon once, sorted by prefix and name.
func (l *Library) Definitions() []Definition {
	l.mu.RLock()
	defer l.mu.RUnlock()

	seen := make(map[iconKey]bool)
	var defs []Definition
	for _, d := range l.icons {
		k := iconKey{prefix: d.Prefix, name: d.Name}
		if seen[k] {
			continue
		}
		seen[k] = true
		defs = append(defs, d)
	}
	sort.Slice(defs, func(i, j int) bool {
		if defs[i].Prefix != defs[j].Prefix {
			return defs[i].Prefix < defs[j].Prefix
		}
		return defs[i].Name < defs[j].Name
	})
	return defs
}

var library = NewLibrary()

// Default returns the process-wide library.
func Default() *Library {
	return library
}

// Add registers definitions in the process-wide library.
func Add(defs ...Definition) {
	library.Add(defs...)
}

var stylePrefixes = map[string]string{
	"fa-solid":   "fas",
	"fa-regular": "far",
	"fa-brands":  "fab",
	"fa-light":   "fal",
	"fa-thin":    "fat",
}

// ParseIconProp splits an icon reference into prefix and name. Accepted
// forms: "plus", "fa-plus", "fas plus", "fas:plus", "fa-solid fa-plus".
// fallbackPrefix applies when the reference carries none.
func ParseIconProp(value, fallbackPrefix string) (prefix, name string, err error) {
	if fallbackPrefix == "" {
		fallbackPrefix = DefaultPrefix
	}

	fields := strings.FieldsFunc(strings.TrimSpace(value), func(r rune) bool {
		return r == ' ' || r == ':' || r == '\t'
	})

	switch len(fields) {
	case 1:
		prefix, name = fallbackPrefix, fields[0]
	case 2:
		prefix, name = fields[0], fields[1]
		if p, ok := stylePrefixes[prefix]; ok {
			prefix = p
		}
	default:
		return "", "", fmt.Errorf("invalid icon reference %q", value)
	}

	name = strings.TrimPrefix(name, "fa-")
	if name == "" {
		return "", "", fmt.Errorf("invalid icon reference %q", value)
	}
	return prefix, name, nil
}
