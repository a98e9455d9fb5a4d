// Package pathroots enumerates candidate root directories under which
// temporary files and directories may be created.
package pathroots

import (
	"os"
)

// environment variables consulted first, in priority order.
var envVars = []string{"TEMP", "TMP", "TMPDIR"}

// Candidates returns candidate temp roots in priority order: environment
// overrides, OS-conventional locations, then the shell working directory as
// a last resort. Entries are returned verbatim; existence and writability
// are only discovered when a creation is attempted against them.
func Candidates() []string {
	var roots []string

	for _, v := range envVars {
		if p := os.Getenv(v); p != "" {
			roots = append(roots, p)
		}
	}

	roots = append(roots, systemRoots()...)

	if cwd := os.Getenv(cwdEnvVar); cwd != "" {
		roots = append(roots, cwd)
	}

	return roots
}
