package gallery

import (
	"encoding/json"
	"os"
	"path/filepath"

	errors "github.com/wordhope/donation-site/internal"
)

const feedFileName = "gallery.json"

// Loader reads the gallery feed from the content directory. Every Load hits
// the filesystem; the feed is small and editors expect changes to show up
// without a restart.
type Loader struct {
	dir string
}

func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

func (l *Loader) Load() (*Document, error) {
	data, err := os.ReadFile(filepath.Join(l.dir, feedFileName))
	if err != nil {
		return nil, errors.NewNotFoundError("Missing gallery content", errors.ErrCodeGalleryUnavailable).WithCause(err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewInternalError("malformed gallery content", err)
	}

	return &doc, nil
}
