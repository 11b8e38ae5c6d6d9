package modules

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/modscan/modscan/pkg/descriptor"
	"github.com/modscan/modscan/pkg/finder"
	"github.com/modscan/modscan/pkg/logging"
	"github.com/modscan/modscan/pkg/paths"
)

// Detector infers module names for workspace files
type Detector struct {
	finder finder.Finder
	parser *descriptor.Parser
	logger zerolog.Logger
}

// NewDetector creates a Detector on the real filesystem
func NewDetector() *Detector {
	return NewDetectorWith(finder.NewGlobFinder(), descriptor.NewParser())
}

// NewDetectorWith creates a Detector with custom collaborators
func NewDetectorWith(f finder.Finder, p *descriptor.Parser) *Detector {
	return &Detector{
		finder: f,
		parser: p,
		logger: logging.GetLogger("modules.detector"),
	}
}

// BuildIndex scans the workspace once for build descriptors and builds
// the prefix index. Maven descriptors are tried first; Ant descriptors
// are consulted only when the Maven pass registers nothing at all. The
// only error returned is a cancellation from file discovery.
func (d *Detector) BuildIndex(ctx context.Context, root string) (*Index, error) {
	done := logging.LogOperationStart(d.logger, "build-index")
	defer done()

	entries, err := d.collect(ctx, root, descriptor.KindMaven)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		entries, err = d.collect(ctx, root, descriptor.KindAnt)
		if err != nil {
			return nil, err
		}
	}

	index := NewIndex(entries)
	d.logger.Debug().
		Str("root", root).
		Int("entries", index.Len()).
		Msg("Module index built")
	return index, nil
}

// collect locates all descriptors of one kind and parses their names
func (d *Detector) collect(ctx context.Context, root string, kind descriptor.Kind) ([]Entry, error) {
	found, err := d.locate(ctx, root, kind.Filename())
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, file := range found {
		var name string
		switch kind {
		case descriptor.KindAnt:
			name = d.parser.AntName(paths.BeforeLast(file, "/"+descriptor.AntProject))
		default:
			name = d.parser.MavenName(file)
		}
		if paths.IsBlank(name) {
			continue
		}
		entries = append(entries, Entry{
			Prefix: paths.BeforeLast(file, kind.Filename()),
			Name:   name,
		})
	}
	return entries, nil
}

// locate finds all descriptors with the given filename anywhere under
// root, returning absolute forward-slash paths.
func (d *Detector) locate(ctx context.Context, root, filename string) ([]string, error) {
	relative, err := d.finder.Find(ctx, root, "**/"+filename)
	if err != nil {
		return nil, err
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		absRoot = root
	}
	absRoot = paths.ToSlash(absRoot)

	absolute := make([]string, len(relative))
	for i, rel := range relative {
		absolute[i] = absRoot + "/" + paths.ToSlash(rel)
	}
	return absolute, nil
}

// Heuristic infers a module name for a single file without an index.
//
// For Maven builds the pom next to the file (or next to its target/
// directory) is consulted first; for Ant builds the build.xml in the
// file's parent directory. The final fallback is the name of the parent
// directory itself, which may be empty.
func (d *Detector) Heuristic(file string, mavenBuild, antBuild bool) string {
	full := paths.ToSlash(file)

	if mavenBuild {
		if name := d.parser.MavenName(full); !paths.IsBlank(name) {
			return name
		}
	}

	parent := paths.BeforeLast(full, "/")

	if antBuild {
		if name := d.parser.AntName(parent); !paths.IsBlank(name) {
			return name
		}
	}

	if strings.Contains(parent, "/") {
		return paths.AfterLast(parent, "/")
	}
	return parent
}

// Resolve returns the module name for a file, using the index when one
// is provided and per-file heuristics otherwise. "" means unknown.
func (d *Detector) Resolve(file string, index *Index, mavenBuild, antBuild bool) string {
	if index != nil {
		return index.Lookup(file)
	}
	return d.Heuristic(file, mavenBuild, antBuild)
}
