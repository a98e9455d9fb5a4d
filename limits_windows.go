//go:build windows

package tempfile

// MAX_PATH
const defaultMaxPathLength = 260
