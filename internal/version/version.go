// Package version exposes the build version, injected at link time via
// -ldflags "-X github.com/kprsnt/brandscore/internal/version.Version=...".
package version

// Version is the build version string.
var Version = "dev"
