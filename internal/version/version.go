// Package version reports the build information stamped in by the linker.
package version

import "fmt"

// Set with -ldflags "-X github.com/arthur-debert/matrixlab/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// String is the one-line version, with the short commit hash when known.
func String() string {
	if Commit == "" {
		return Version
	}
	short := Commit
	if len(short) > 7 {
		short = short[:7]
	}
	return fmt.Sprintf("%s (%s)", Version, short)
}
