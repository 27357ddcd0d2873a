// Package version holds the moonbag build stamp. The release build sets
// the variables with -ldflags "-X github.com/dreamerjackson/moonbag/version.Version=...".
package version

import (
	"fmt"
	"io"
	"runtime"
)

const unstamped = "None"

var (
	BuildTS   = unstamped
	GitHash   = unstamped
	GitBranch = unstamped
	Version   = "dev"
)

// GetVersion is Version with the short commit appended on stamped builds.
func GetVersion() string {
	if GitHash == "" || GitHash == unstamped {
		return Version
	}
	h := GitHash
	if len(h) > 7 {
		h = h[:7]
	}
	return fmt.Sprintf("%s-%s", Version, h)
}

// Printer writes what `moonbag version` shows.
func Printer(w io.Writer) {
	fmt.Fprintln(w, "moonbag", GetVersion())
	fmt.Fprintln(w, "Git Branch:       ", GitBranch)
	fmt.Fprintln(w, "Git Commit:       ", GitHash)
	fmt.Fprintln(w, "Build Time (UTC): ", BuildTS)
	fmt.Fprintln(w, "Go Version:       ", runtime.Version())
}
