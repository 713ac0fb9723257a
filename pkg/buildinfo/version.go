// Package buildinfo exposes the version metadata stamped into the binary.
// Release builds override the variables with -ldflags "-X ..."; development
// builds report "dev".
package buildinfo

import "fmt"

var (
	// Version is the semantic version of this build.
	Version = "dev"

	// Commit is the git revision the binary was built from.
	Commit = "none"

	// Date is the UTC build timestamp.
	Date = "unknown"
)

// String returns the version metadata as a multi-line block.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the cobra version template, so --version prints the
// full metadata block prefixed with the command name.
func Template() string {
	return "{{.Name}} version " + Version + "\ncommit: " + Commit + "\nbuilt: " + Date + "\n"
}
