//go:build !windows

package pathroots

const cwdEnvVar = "PWD"

func systemRoots() []string {
	return []string{"/tmp", "/var/tmp", "/usr/tmp"}
}
