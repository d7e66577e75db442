// Package main is the entry point for pairmap.
package main

import "github.com/YumizSui/pairmap/cmd"

// Build-time variables (set via -ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	cmd.Execute(version, commit, buildTime)
}
