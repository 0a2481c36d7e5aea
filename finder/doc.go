// Package finder locates files modified on a given calendar date and renders
// them as markdown links.
//
// The package is split along the stages of a single search:
//
// Date Extraction:
//   - Date is a year/month/day triple with no time-of-day component
//   - ParseDate accepts the YYYY-MM-DD layout only
//   - DateOf converts a modification timestamp to the local calendar date
//
// Traversal:
//   - Walker validates the root directory before any traversal begins
//   - Walker.Entries yields every descendant of the root depth-first
//   - Unreadable entries are skipped (and logged at debug level), never fatal
//   - Symlinks are not followed unless FollowSymlinks is set, in which case
//     each resolved directory is visited at most once
//
// Matching and Output:
//   - Matches requires a regular file, an exact case-sensitive name suffix
//     and an equal modification date
//   - FormatLink renders "- [name](path)" without escaping
//   - Search collects and sorts matches; Run writes them one per line
package finder
