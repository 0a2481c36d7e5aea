package finder

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Walker enumerates the descendants of a root directory.
type Walker struct {
	root           string
	followSymlinks bool
	logger         *slog.Logger
}

// WalkerOption configures a Walker.
type WalkerOption func(*Walker)

// WithFollowSymlinks makes the walker resolve symlinks. Symlinked directories
// are descended at most once per resolved path.
func WithFollowSymlinks(follow bool) WalkerOption {
	return func(w *Walker) {
		w.followSymlinks = follow
	}
}

// WithLogger sets the logger that receives skipped-entry diagnostics.
func WithLogger(logger *slog.Logger) WalkerOption {
	return func(w *Walker) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// NewWalker validates that root exists and is a directory.
// It returns an error wrapping ErrInvalidRoot otherwise.
func NewWalker(root string, opts ...WalkerOption) (*Walker, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidRoot, root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w %q: not a directory", ErrInvalidRoot, root)
	}

	w := &Walker{
		root:   root,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Root returns the directory the walker starts from.
func (w *Walker) Root() string {
	return w.root
}

// Entries yields every file and directory below the root, depth-first.
// The root itself is never yielded. Entries that cannot be read are skipped.
func (w *Walker) Entries(yield func(Entry) bool) {
	var visited map[string]bool
	if w.followSymlinks {
		visited = make(map[string]bool)
		if resolved, ok := w.realPath(w.root); ok {
			visited[resolved] = true
		}
	}
	w.walkDir(w.root, visited, yield)
}

// walkDir returns false once yield has asked to stop.
func (w *Walker) walkDir(dir string, visited map[string]bool, yield func(Entry) bool) bool {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		// os.ReadDir still returns whatever it read before failing.
		w.skip(dir, err)
	}

	for _, d := range dirEntries {
		path := joinPath(dir, d.Name())

		if d.Type()&fs.ModeSymlink != 0 {
			if !w.followSymlinks {
				if !yield(w.entryFor(path, d)) {
					return false
				}
				continue
			}
			if !w.walkSymlink(path, visited, yield) {
				return false
			}
			continue
		}

		if !yield(w.entryFor(path, d)) {
			return false
		}
		if !d.IsDir() {
			continue
		}
		if visited != nil {
			resolved, ok := w.realPath(path)
			if !ok || visited[resolved] {
				continue
			}
			visited[resolved] = true
		}
		if !w.walkDir(path, visited, yield) {
			return false
		}
	}
	return true
}

// walkSymlink yields the resolved form of a symlink and descends into it
// when it points at a directory that has not been visited yet.
func (w *Walker) walkSymlink(path string, visited map[string]bool, yield func(Entry) bool) bool {
	info, err := os.Stat(path)
	if err != nil {
		w.skip(path, err)
		return true
	}

	entry := Entry{
		Path:    path,
		IsFile:  info.Mode().IsRegular(),
		ModTime: info.ModTime(),
	}
	if !yield(entry) {
		return false
	}
	if !info.IsDir() {
		return true
	}

	resolved, ok := w.realPath(path)
	if !ok {
		return true
	}
	if visited[resolved] {
		w.logger.Debug("skipping already visited directory",
			slog.String("path", path),
			slog.String("target", resolved))
		return true
	}
	visited[resolved] = true
	return w.walkDir(path, visited, yield)
}

func (w *Walker) entryFor(path string, d fs.DirEntry) Entry {
	entry := Entry{
		Path:   path,
		IsFile: d.Type().IsRegular(),
	}
	info, err := d.Info()
	if err != nil {
		w.skip(path, err)
		return entry
	}
	entry.ModTime = info.ModTime()
	return entry
}

func (w *Walker) realPath(path string) (string, bool) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		w.skip(path, err)
		return "", false
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		w.skip(path, err)
		return "", false
	}
	return abs, true
}

func (w *Walker) skip(path string, err error) {
	w.logger.Debug("skipping unreadable entry",
		slog.String("path", path),
		slog.Any("error", err))
}

// joinPath appends name to dir without cleaning, so "./" prefixes survive.
func joinPath(dir, name string) string {
	if dir != "" && os.IsPathSeparator(dir[len(dir)-1]) {
		return dir + name
	}
	return dir + string(filepath.Separator) + name
}
