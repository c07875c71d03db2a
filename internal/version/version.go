// Package version holds build metadata, overridable at link time with
// -ldflags "-X github.com/zhubert/toolplan/internal/version.Version=...".
package version

// Version is the release version of the binary.
var Version = "0.1.0"

// Commit is the git commit the binary was built from.
var Commit = "dev"
