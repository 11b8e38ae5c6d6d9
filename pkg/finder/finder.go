// Package finder enumerates workspace files with Ant-style glob
// patterns ("**/" matches any directory depth). Results are always
// relative forward-slash paths, sorted for determinism.
package finder

import (
	"context"
	"io/fs"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/modscan/modscan/pkg/errors"
	"github.com/modscan/modscan/pkg/logging"
)

// Finder locates files under a root directory. Implementations must
// return an empty slice, not an error, when nothing matches, and must
// propagate cancellation from ctx rather than swallowing it.
type Finder interface {
	Find(ctx context.Context, root, pattern string) ([]string, error)
}

// GlobFinder is the default Finder on top of the real filesystem
type GlobFinder struct {
	logger zerolog.Logger
}

// NewGlobFinder creates a new GlobFinder
func NewGlobFinder() *GlobFinder {
	return &GlobFinder{
		logger: logging.GetLogger("finder"),
	}
}

// Find returns the relative slash paths of all files under root that
// match pattern. Directories are never returned.
func (f *GlobFinder) Find(ctx context.Context, root, pattern string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, errors.Newf(errors.ErrPatternInvalid, "invalid file pattern: %s", pattern)
	}

	var matches []string
	err := doublestar.GlobWalk(os.DirFS(root), pattern, func(path string, d fs.DirEntry) error {
		// Cancellation is checked per match so a runaway glob over a
		// large workspace can be aborted between files.
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		matches = append(matches, path)
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Wrapf(err, errors.ErrWorkspaceAccess, "failed to scan %s", root)
	}

	sort.Strings(matches)

	f.logger.Debug().
		Str("root", root).
		Str("pattern", pattern).
		Int("matches", len(matches)).
		Msg("File discovery complete")

	return matches, nil
}
