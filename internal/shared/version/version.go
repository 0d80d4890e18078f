// Package version exposes build metadata injected with -ldflags.
package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Set at build time:
//
//	-ldflags "-X github.com/lexdoc-ai/lexdoc/internal/shared/version.Version=v1.2.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Normalize ensures the version string has a "v" prefix.
func Normalize(version string) string {
	version = strings.TrimSpace(version)
	if version == "" || version == "dev" {
		return version
	}
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// String is the one-line form printed by the CLI.
func String() string {
	return fmt.Sprintf("lexdoc %s (commit %s, built %s, %s)", Normalize(Version), Commit, BuildTime, runtime.Version())
}
