package bundle

import (
	"bufio"
	"errors"
	"io/fs"
	"path"
	"strings"
)

// IgnoreFile lists source paths to leave out of the bundle, one
// gitignore-style pattern per line.
const IgnoreFile = ".bundleignore"

type ignoreRule struct {
	pattern  string
	negation bool
	dirOnly  bool
	anchored bool
}

// Ignore matches slash-separated source paths against ignore rules. Later
// rules override earlier ones, and "!" re-includes.
type Ignore struct {
	rules []ignoreRule
}

// LoadIgnore reads IgnoreFile from fsys. A missing file yields an empty
// matcher.
func LoadIgnore(fsys fs.FS) (*Ignore, error) {
	f, err := fsys.Open(IgnoreFile)
	if errors.Is(err, fs.ErrNotExist) {
		return &Ignore{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m := &Ignore{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		m.Add(scanner.Text())
	}
	return m, scanner.Err()
}

// Add appends one pattern line. Blank lines and comments are skipped.
func (m *Ignore) Add(line string) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}

	var r ignoreRule
	if strings.HasPrefix(line, "!") {
		r.negation = true
		line = line[1:]
	}
	if strings.HasSuffix(line, "/") {
		r.dirOnly = true
		line = strings.TrimSuffix(line, "/")
	}
	if strings.HasPrefix(line, "/") {
		r.anchored = true
		line = line[1:]
	}
	r.pattern = line
	m.rules = append(m.rules, r)
}

// Match reports whether p is ignored.
func (m *Ignore) Match(p string, isDir bool) bool {
	ignored := false
	for _, r := range m.rules {
		if r.dirOnly && !isDir {
			continue
		}
		if r.match(p) {
			ignored = !r.negation
		}
	}
	return ignored
}

func (r ignoreRule) match(p string) bool {
	if strings.Contains(r.pattern, "**") {
		return matchDoubleStar(r.pattern, p)
	}
	if r.anchored || strings.Contains(r.pattern, "/") {
		ok, _ := path.Match(r.pattern, p)
		return ok
	}
	// bare names match in any directory
	ok, _ := path.Match(r.pattern, path.Base(p))
	return ok
}

// matchDoubleStar handles a single "**", which spans any number of path
// segments.
func matchDoubleStar(pattern, p string) bool {
	prefix, suffix, _ := strings.Cut(pattern, "**")
	if !strings.HasPrefix(p, prefix) {
		return false
	}
	suffix = strings.TrimPrefix(suffix, "/")
	if suffix == "" {
		return true
	}

	rest := strings.TrimPrefix(p, prefix)
	parts := strings.Split(rest, "/")
	for i := range parts {
		if ok, _ := path.Match(suffix, strings.Join(parts[i:], "/")); ok {
			return true
		}
	}
	return false
}
