// Package private provides a cross-platform abstraction for creating private
// read-write temporary files which are automatically deleted when closed.
//
// Files created here never appear under a stable name: on Linux they are
// opened unlinked via O_TMPFILE where supported, on other Unix systems they
// are unlinked immediately after creation, and on Windows they are opened
// with FILE_FLAG_DELETE_ON_CLOSE.
package private

import "os"

const permissions os.FileMode = 0o600
