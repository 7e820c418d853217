// Package version records build identity for the ripple CLI.
package version

import (
	"strings"

	"github.com/fatih/color"
)

// Overridable at build time via -ldflags, e.g.
//
//	-ldflags "-X ripple/internal/version.GitCommit=$(git rev-parse --short HEAD)"
var (
	// Version is the toolchain's semantic version.
	Version = "0.1.0-dev"
	// GitCommit is the commit hash the binary was built from.
	GitCommit = ""
	// BuildDate is the build timestamp in ISO-8601.
	BuildDate = ""
)

var prereleaseColor = color.New(color.FgYellow)

// Pretty returns Version with the prerelease tag highlighted, so a dev
// build stands out from a tagged release in terminal output.
func Pretty() string {
	base, pre, found := strings.Cut(Version, "-")
	if !found {
		return base
	}
	return base + "-" + prereleaseColor.Sprint(pre)
}
