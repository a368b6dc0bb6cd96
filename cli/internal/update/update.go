// Package update compares the running version against the latest known
// release.
package update

import (
	"fmt"
	"runtime"

	"github.com/hashicorp/go-version"
)

// latestKnown is the newest release this build is aware of. Release builds
// bump it alongside the version constant.
const latestKnown = "0.1.0"

// Check reports whether a release newer than current is available, and which.
func Check(current string) (string, bool, error) {
	installed, err := version.NewVersion(current)
	if err != nil {
		return "", false, fmt.Errorf("invalid version format: %w", err)
	}

	latest, err := version.NewVersion(latestKnown)
	if err != nil {
		return "", false, fmt.Errorf("invalid latest version format: %w", err)
	}

	return latestKnown, installed.LessThan(latest), nil
}

// DownloadURL returns the release download URL for the current platform.
func DownloadURL(v string) string {
	return fmt.Sprintf("https://github.com/loomlang/loom/releases/download/v%s/loom-%s-%s", v, runtime.GOOS, runtime.GOARCH)
}
