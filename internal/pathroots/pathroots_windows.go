//go:build windows

package pathroots

import (
	"os"
	"path/filepath"
)

const cwdEnvVar = "CD"

func systemRoots() []string {
	var roots []string

	if sr := os.Getenv("SYSTEMROOT"); sr != "" {
		roots = append(roots, filepath.Join(sr, "Temp"))
	}

	if up := os.Getenv("USERPROFILE"); up != "" {
		roots = append(roots, filepath.Join(up, "AppData", "Local", "Temp"))
	}

	return append(roots, `C:\temp`, `C:\tmp`)
}
