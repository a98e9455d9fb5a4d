// Package tempfile creates temporary files and directories with
// collision-resistant random names and guarantees their cleanup.
//
// Two resource kinds are provided. Directory and File are explicit handles:
// constructed empty, bound to a filesystem object by Create and released by
// Remove. ScopedDirectory and ScopedFile bind creation to construction and
// removal to Close, so a deferred Close guarantees cleanup no matter how
// control leaves the enclosing scope:
//
//	d := tempfile.NewScopedDirectory(ctx)
//	defer d.Close()
//
//	if !d.Good() {
//		return errors.New("no usable temporary location")
//	}
//
//	use(d.Path())
//
// Creation walks an ordered list of candidate roots (TEMP, TMP and TMPDIR
// environment overrides, then OS-conventional locations, then the shell
// working directory) and retries randomly generated names under each until
// one can be claimed.
//
// A handle is not safe for concurrent use, but distinct handles may be used
// from parallel goroutines: a process-wide lock serializes the
// check-then-act sequence every creation and removal performs against the
// shared filesystem namespace. Races against other processes are not
// defended beyond the retry loop.
package tempfile

import (
	"context"
	"os"
	"sync"

	"github.com/pkg/errors"

	"github.com/dparrini/go-tempfile/internal/namegen"
	"github.com/dparrini/go-tempfile/internal/pathroots"
	"github.com/dparrini/go-tempfile/logging"
)

var log = logging.Module("tempfile") //nolint:gochecknoglobals

// DefaultPrefix is the name prefix used when no WithPrefix option is given.
const DefaultPrefix = "tmp"

const (
	defaultMaxAttempts = 100

	defaultDirMode  os.FileMode = 0o700
	defaultFileMode os.FileMode = 0o600
)

// creationMu serializes every creation and removal across all Directory and
// File handles. It is held only for the duration of a single search or
// removal, never across unrelated work.
var creationMu sync.Mutex //nolint:gochecknoglobals

// searchAndCreate walks candidate roots in priority order and attempts to
// claim a fresh randomly-named path under each, invoking create as the
// terminal action. The caller must hold creationMu.
func searchAndCreate(ctx context.Context, o *options, create func(path string) error) (string, error) {
	roots := o.roots
	if roots == nil {
		roots = pathroots.Candidates()
	}

	for _, root := range roots {
		for attempt := 0; attempt < o.maxAttempts; attempt++ {
			name := o.prefix + namegen.Token()

			// room for the separator plus one spare byte, as a path-limit margin
			if len(root)+1+len(name)+1 > o.maxPathLength {
				continue
			}

			path := root + string(os.PathSeparator) + name

			if o.fs.Exists(path) {
				continue
			}

			if err := create(path); err != nil {
				log(ctx).Debugw("temp path attempt failed", "path", path, "error", err)
				continue
			}

			return path, nil
		}
	}

	return "", errors.New("no candidate location could be used")
}
