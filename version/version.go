package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// These will be set by build flags or default to development values
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

const unknown = "unknown"

// Info contains version information
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// GetVersion returns the version string, preferring the compile-time value.
func GetVersion() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}
	return "development"
}

// GetCommit returns the VCS revision the binary was built from.
func GetCommit() string {
	return preferSet(Commit, "vcs.revision")
}

// GetBuildDate returns the build (or last commit) timestamp.
func GetBuildDate() string {
	return preferSet(Date, "vcs.time")
}

// preferSet returns value when it was set at compile time, otherwise the
// named build setting, otherwise "unknown".
func preferSet(value, setting string) string {
	if value != unknown && value != "" {
		return value
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == setting && s.Value != "" {
				return s.Value
			}
		}
	}
	return unknown
}

// GetInfo returns complete version information
func GetInfo() Info {
	return Info{
		Version: GetVersion(),
		Commit:  GetCommit(),
		Date:    GetBuildDate(),
	}
}

// String formats i as "version (commit, built date)", dropping unknown parts.
func (i Info) String() string {
	if i.Commit == unknown || len(i.Commit) <= 7 {
		return i.Version
	}
	shortCommit := i.Commit[:7]
	if i.Date == unknown {
		return fmt.Sprintf("%s (%s)", i.Version, shortCommit)
	}
	return fmt.Sprintf("%s (%s, built %s)", i.Version, shortCommit, i.Date)
}

// GetFullVersion returns a formatted version string with commit and date
func GetFullVersion() string {
	return GetInfo().String()
}
