package finder

// Default values applied when a Config field is not supplied.
const (
	DefaultSuffix = ".go"
	DefaultRoot   = "."
)

// Config describes one search. It is built once at startup and never mutated.
type Config struct {
	Date           Date   // target calendar date
	Suffix         string // exact, case-sensitive tail of the file name
	Root           string // directory the traversal starts from
	FollowSymlinks bool   // resolve symlinks instead of treating them as non-files
}

// DefaultConfig returns the configuration used when no flags are given.
// Today's date is captured here so a whole run compares against one date.
func DefaultConfig() Config {
	return Config{
		Date:   Today(),
		Suffix: DefaultSuffix,
		Root:   DefaultRoot,
	}
}
