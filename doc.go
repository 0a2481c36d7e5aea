// Package main provides the mdfiles command-line interface.
//
// mdfiles walks a directory tree and prints every file whose name ends with
// a suffix and whose modification date equals a target date, one markdown
// link per line, sorted by path.
//
// Usage:
//
//	mdfiles [--date YYYY-MM-DD] [--suffix .go] [--root .]
//
// Flags:
//   - --date, -d: target calendar date (default today, local time)
//   - --suffix, -s: exact, case-sensitive file name tail (default ".go")
//   - --root, -r: directory to search (default ".")
//   - --follow-symlinks: resolve symlinks, visiting each directory once
//   - --config: load defaults from a YAML file
//   - --verbose: log skipped entries to stderr
package main
