package finder

import (
	"path/filepath"
	"strings"
	"time"
)

// Entry is one file or directory encountered during a walk.
type Entry struct {
	Path    string    // path as discovered, prefixed by the walk root
	IsFile  bool      // true only for regular files
	ModTime time.Time // zero when the modification time could not be read
}

// Name returns the final path component of the entry.
func (e Entry) Name() string {
	return filepath.Base(e.Path)
}

// Matches reports whether e is a regular file whose name ends with
// cfg.Suffix and whose local modification date equals cfg.Date.
func Matches(e Entry, cfg Config) bool {
	if !e.IsFile {
		return false
	}
	if !strings.HasSuffix(e.Name(), cfg.Suffix) {
		return false
	}
	date, ok := ModDate(e.ModTime)
	if !ok {
		return false
	}
	return date == cfg.Date
}
