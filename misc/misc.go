// Package misc keeps program identity: name, version and source revision.
package misc

import (
	"runtime/debug"
)

const appName = "sassval"

// set with -ldflags "-X sassval/misc.version=... -X sassval/misc.buildHash=..."
var (
	version   = ""
	buildHash = ""
)

func GetAppName() string {
	return appName
}

// GetVersion returns linked in version or module version from build info.
func GetVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// GetGitHash returns linked in hash or vcs revision recorded by the toolchain.
func GetGitHash() string {
	if buildHash != "" {
		return buildHash
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
