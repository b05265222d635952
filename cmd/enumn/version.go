package main

import "runtime/debug"

// Version is set by the linker for release builds.
var Version = ""

// version returns the version recorded in generated files.
//
// When installed via `go install ...@version`, it returns the module version
// (e.g., "v0.3.1"). Development builds return "" so that generated files do not
// change with every commit.
func version() string {
	if Version != "" {
		return Version
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return ""
}
