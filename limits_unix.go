//go:build !windows

package tempfile

const defaultMaxPathLength = 4096
