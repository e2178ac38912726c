package pinboard

import (
	"embed"
	"io/fs"
)

// Frontend contains the client sources: the host page, the root component
// and static assets.
//
//go:embed frontend
var Frontend embed.FS

// Files returns Frontend rooted at the frontend directory.
func Files() fs.FS {
	sub, err := fs.Sub(Frontend, "frontend")
	if err != nil {
		panic("critical: embedded frontend missing: " + err.Error())
	}
	return sub
}
