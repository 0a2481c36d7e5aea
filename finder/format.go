package finder

import "path/filepath"

// FormatLink renders path as a markdown list item linking to itself.
// Markdown special characters in the name or path are not escaped.
func FormatLink(path string) string {
	return "- [" + filepath.Base(path) + "](" + path + ")"
}
