package utils

import (
	"runtime/debug"
)

const unknownVersion = "unknown"

// GetApplicationVersion returns the application version recorded in the Go
// build info, or "unknown" for development builds.
func GetApplicationVersion() string {
	buildInfo, buildInfoAvailable := debug.ReadBuildInfo()
	if buildInfoAvailable && buildInfo.Main.Version != "" && buildInfo.Main.Version != "(devel)" {
		return buildInfo.Main.Version
	}
	return unknownVersion
}
