// Package version exposes build metadata for the relnorm binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set via ldflags by GoReleaser; resolved from module build info otherwise.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Resolve fills in the version details from embedded module build info
// when they were not set via ldflags. Binaries installed with
// "go install github.com/pthm/relnorm/cmd/relnorm@version" carry the
// module version and VCS stamps.
func Resolve() {
	if Version != "dev" {
		return
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		Version = v
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			Commit = shortRevision(setting.Value)
		case "vcs.time":
			Date = setting.Value
		}
	}
}

func shortRevision(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// Info returns the full version line printed by "relnorm version".
func Info() string {
	return fmt.Sprintf("relnorm %s (commit: %s, built: %s) %s",
		Version, Commit, Date, runtime.Version())
}

// Short returns just the version string.
func Short() string {
	return Version
}
