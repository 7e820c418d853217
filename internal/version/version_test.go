package version_test

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"ripple/internal/version"
)

func TestPrettyKeepsSemverText(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	if got := version.Pretty(); got != version.Version {
		t.Fatalf("Pretty() = %q, want %q without color", got, version.Version)
	}
	if !strings.HasPrefix(version.Version, "0.") {
		t.Fatalf("Version = %q, not a semver string", version.Version)
	}
}
