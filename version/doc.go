// Package version reports the mdfiles version and build metadata.
//
// Values come from, in order of preference:
//   - Compile-time variables (Version, Commit, Date) set via -ldflags
//   - Runtime build info from debug.ReadBuildInfo()
//   - Development defaults
//
// Release builds set them with:
//
//	-ldflags "-X github.com/dendrascience/mdfiles/version.Version=v1.0.0 -X github.com/dendrascience/mdfiles/version.Commit=abc123"
package version
