// Package bundle turns the frontend sources into the deployable client
// bundle: the host page with the app pre-mounted plus its static assets.
package bundle

import (
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/johann/pinboard/internal/bootstrap"
	"github.com/johann/pinboard/internal/cid"
)

// File is a single bundle entry.
type File struct {
	Path        string
	ContentType string
	Data        []byte
	// ETag is the CID of Data.
	ETag string
}

// Bundle is the built client.
type Bundle struct {
	files map[string]*File
}

// Build renders the host page from fsys with the app mounted, and collects
// every other file except the root component source as a static asset.
// Paths matched by IgnoreFile are skipped.
func Build(fsys fs.FS, opts bootstrap.Options) (*Bundle, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	doc, err := bootstrap.LoadDocument(fsys)
	if err != nil {
		return nil, err
	}
	root, err := bootstrap.RootComponent(fsys)
	if err != nil {
		return nil, err
	}
	if _, err := bootstrap.Run(doc, root, opts); err != nil {
		return nil, err
	}

	page, err := doc.Bytes()
	if err != nil {
		return nil, fmt.Errorf("render host document: %w", err)
	}

	b := &Bundle{files: make(map[string]*File)}
	if err := b.add(bootstrap.HostDocument, page); err != nil {
		return nil, err
	}

	ignore, err := LoadIgnore(fsys)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", IgnoreFile, err)
	}

	err = fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == "." {
			return nil
		}
		if ignore.Match(p, d.IsDir()) {
			logger.Debug("ignored", zap.String("path", p))
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || p == bootstrap.HostDocument || p == bootstrap.RootTemplate || p == IgnoreFile {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		return b.add(p, data)
	})
	if err != nil {
		return nil, fmt.Errorf("collect assets: %w", err)
	}

	logger.Debug("bundle built", zap.Int("files", len(b.files)))
	return b, nil
}

func (b *Bundle) add(p string, data []byte) error {
	id, err := cid.Generate(data)
	if err != nil {
		return fmt.Errorf("%s: %w", p, err)
	}
	b.files[p] = &File{
		Path:        p,
		ContentType: contentType(p, data),
		Data:        data,
		ETag:        id,
	}
	return nil
}

// File returns the entry at path. A leading slash is ignored and "/" maps
// to the host page.
func (b *Bundle) File(p string) (*File, bool) {
	p = strings.TrimPrefix(path.Clean("/"+p), "/")
	if p == "" {
		p = bootstrap.HostDocument
	}
	f, ok := b.files[p]
	return f, ok
}

// Files returns every entry sorted by path.
func (b *Bundle) Files() []*File {
	out := make([]*File, 0, len(b.files))
	for _, f := range b.files {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// WriteDir writes the bundle below dir, creating it if needed.
func (b *Bundle) WriteDir(dir string) error {
	for _, f := range b.Files() {
		dst := filepath.Join(dir, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(dst, f.Data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", f.Path, err)
		}
	}
	return nil
}

func contentType(p string, data []byte) string {
	if ct := mime.TypeByExtension(path.Ext(p)); ct != "" {
		return ct
	}
	return mimetype.Detect(data).String()
}
