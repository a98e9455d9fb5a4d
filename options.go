package tempfile

import (
	"github.com/dparrini/go-tempfile/internal/osfs"
)

type options struct {
	prefix        string
	maxAttempts   int
	maxPathLength int
	roots         []string
	fs            osfs.Interface
}

// Option customizes a temporary resource handle.
type Option func(*options)

// WithPrefix sets the name prefix of the created resource. The prefix must
// not contain a path separator or characters invalid in a filename on the
// target OS; it is not validated. Default is DefaultPrefix.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithMaxAttempts bounds how many random names are tried per candidate root
// before moving on to the next one. Default is 100.
func WithMaxAttempts(n int) Option {
	return func(o *options) { o.maxAttempts = n }
}

// WithMaxPathLength bounds the total length of generated paths; candidate
// names that would exceed it are skipped. The default is OS-dependent.
func WithMaxPathLength(n int) Option {
	return func(o *options) { o.maxPathLength = n }
}

// WithRoots replaces the default candidate-root enumeration with an explicit
// list, tried in the given order. An empty list makes every creation fail.
func WithRoots(roots ...string) Option {
	return func(o *options) { o.roots = append([]string{}, roots...) }
}

// withFS substitutes the filesystem implementation, for tests.
func withFS(fs osfs.Interface) Option {
	return func(o *options) { o.fs = fs }
}

func buildOptions(opts []Option) *options {
	o := &options{
		prefix:        DefaultPrefix,
		maxAttempts:   defaultMaxAttempts,
		maxPathLength: defaultMaxPathLength,
		fs:            osfs.Real{},
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}
