// Package buildinfo carries the version stamp injected at build time.
//
// Release builds overwrite the defaults with ldflags, e.g.:
//
//	go build -ldflags "\
//	    -X github.com/wordlattice/wordlattice/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/wordlattice/wordlattice/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/wordlattice/wordlattice/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// A plain `go build` reports the dev defaults.
package buildinfo

import "fmt"

var (
	// Version is the release tag, "dev" when unset.
	Version = "dev"

	// Commit is the source revision the binary was built from.
	Commit = "none"

	// Date is the UTC build timestamp.
	Date = "unknown"
)

// Template renders the stamp as a cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
