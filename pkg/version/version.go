package version

import (
	_ "embed"
	"fmt"
	"runtime"
	"strings"
)

//go:embed VERSION
var Version string

// Get returns the current version of the application
func Get() string {
	return strings.TrimSpace(Version)
}

// Banner is the line printed by the version command
func Banner(name string) string {
	return fmt.Sprintf("%s %s (%s %s/%s)", name, Get(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
