// Package walk sums the sizes of regular files beneath a path.
package walk

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hyperjump/sizeof/internal/fileid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ErrTooDeep is reported for directories skipped by the depth cap.
var ErrTooDeep = errors.New("maximum depth exceeded")

// Walker computes the total size of the regular files in a tree.
type Walker struct {
	maxDepth int
	logger   *zap.Logger
}

// Option configures a Walker.
type Option func(*Walker)

// WithMaxDepth stops descent below n directory levels under the root. Zero means unlimited.
func WithMaxDepth(n int) Option {
	return func(w *Walker) { w.maxDepth = n }
}

// WithLogger sets a logger for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(w *Walker) { w.logger = l }
}

// New returns a Walker.
func New(opts ...Option) *Walker {
	w := &Walker{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

type pending struct {
	path  string
	depth int
}

// Size returns the total byte size of the regular files reachable from root.
// root itself is resolved through symlinks; entries below it are not.
// Directories are visited at most once per call, keyed by device and inode.
// Entries that cannot be read contribute nothing: their errors are combined
// into the returned error and the total covers everything that was readable.
func (w *Walker) Size(root string) (uint64, error) {
	info, err := os.Stat(root)
	if err != nil {
		return 0, err
	}
	if info.Mode().IsRegular() {
		return uint64(info.Size()), nil
	}
	if !info.IsDir() {
		return 0, nil
	}

	var (
		total uint64
		errs  error
	)
	seen := make(map[fileid.Key]struct{})
	stack := []pending{{path: root}}
	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		key, ok, err := fileid.Of(dir.path)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if ok {
			if _, dup := seen[key]; dup {
				w.logger.Debug("directory already visited", zap.String("path", dir.path), zap.Stringer("id", key))
				continue
			}
			seen[key] = struct{}{}
		}

		// os.ReadDir returns whatever it read before failing.
		entries, err := os.ReadDir(dir.path)
		if err != nil {
			errs = multierr.Append(errs, err)
		}
		for _, entry := range entries {
			path := filepath.Join(dir.path, entry.Name())
			switch mode := entry.Type(); {
			case mode.IsDir():
				if w.maxDepth > 0 && dir.depth+1 > w.maxDepth {
					errs = multierr.Append(errs, fmt.Errorf("%s: %w", path, ErrTooDeep))
					continue
				}
				stack = append(stack, pending{path: path, depth: dir.depth + 1})
			case mode.IsRegular():
				fi, err := entry.Info()
				if err != nil {
					errs = multierr.Append(errs, err)
					continue
				}
				total += uint64(fi.Size())
			}
		}
	}
	return total, errs
}

// Accumulator keeps the running total across targets.
type Accumulator struct {
	walker *Walker
	sum    bool
	total  uint64
}

// NewAccumulator returns an Accumulator. When sum is true the total is never
// reset between targets.
func NewAccumulator(w *Walker, sum bool) *Accumulator {
	return &Accumulator{walker: w, sum: sum}
}

// Begin starts a new target.
func (a *Accumulator) Begin() {
	if !a.sum {
		a.total = 0
	}
}

// Add walks path and adds its size to the total. A non-nil error lists the
// entries that were skipped; the readable part is still counted.
func (a *Accumulator) Add(path string) error {
	n, err := a.walker.Size(path)
	a.total += n
	return err
}

// Total returns the running total in bytes.
func (a *Accumulator) Total() uint64 {
	return a.total
}
