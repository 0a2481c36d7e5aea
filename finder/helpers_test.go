package finder

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// noonOn returns local noon of the given day, far from any date boundary.
func noonOn(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.Local)
}

// writeFile creates dir/rel (and its parents) with the given modification time.
func writeFile(t *testing.T, dir, rel string, modTime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("content"), 0644))
	require.NoError(t, os.Chtimes(path, modTime, modTime))
	return path
}

// collect drains a walker into a slice of entries.
func collect(w *Walker) []Entry {
	var entries []Entry
	for e := range w.Entries {
		entries = append(entries, e)
	}
	return entries
}

func entryPaths(entries []Entry) []string {
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		paths = append(paths, e.Path)
	}
	return paths
}

func chtimes(path string, modTime time.Time) error {
	return os.Chtimes(path, modTime, modTime)
}
