package finder

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"slices"
)

// Search walks cfg.Root and returns the paths of all matching files,
// sorted lexicographically. It fails only when the root is invalid.
func Search(cfg Config, logger *slog.Logger) ([]string, error) {
	walker, err := NewWalker(cfg.Root,
		WithFollowSymlinks(cfg.FollowSymlinks),
		WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	var matches []string
	for entry := range walker.Entries {
		if Matches(entry, cfg) {
			matches = append(matches, entry.Path)
		}
	}
	slices.Sort(matches)
	return matches, nil
}

// Run searches according to cfg and writes one formatted link per match to w.
// Nothing is written when the root is invalid or nothing matches.
func Run(w io.Writer, cfg Config, logger *slog.Logger) error {
	matches, err := Search(cfg, logger)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for _, path := range matches {
		if _, err := fmt.Fprintln(bw, FormatLink(path)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
