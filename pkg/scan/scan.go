// Package scan orchestrates a workspace scan: it discovers report files
// matching a pattern, attributes each file to a build module, delegates
// the file to a pluggable AnnotationParser and aggregates annotations
// and diagnostics into a Result.
//
// Nothing in a scan is fatal. Unreadable or empty files become
// per-module diagnostics, parser failures are captured with their
// cause, and cancellation ends the scan cleanly with whatever partial
// result exists.
package scan

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/modscan/modscan/pkg/finder"
	"github.com/modscan/modscan/pkg/logging"
	"github.com/modscan/modscan/pkg/modules"
	"github.com/modscan/modscan/pkg/paths"
)

// AnnotationParser parses a single report file that has already been
// attributed to a module. Implementations are external to the scan
// core.
type AnnotationParser interface {
	Parse(file, module string) ([]Annotation, error)
}

// Runner scans one workspace for files matching an Ant-style pattern
// and feeds them to an AnnotationParser
type Runner struct {
	pattern    string
	parser     AnnotationParser
	mavenBuild bool
	antBuild   bool
	moduleName string
	index      *modules.Index
	finder     finder.Finder
	detector   *modules.Detector
	logger     zerolog.Logger
}

// NewRunner creates a Runner that detects module names per file with
// the heuristics for the given build tools
func NewRunner(pattern string, parser AnnotationParser, mavenBuild, antBuild bool) *Runner {
	return &Runner{
		pattern:    pattern,
		parser:     parser,
		mavenBuild: mavenBuild,
		antBuild:   antBuild,
		finder:     finder.NewGlobFinder(),
		detector:   modules.NewDetector(),
		logger:     logging.GetLogger("scan"),
	}
}

// NewRunnerForModule creates a Runner that attributes every file to the
// given module name, skipping detection. This is the Maven-build path
// where the host already knows the module.
func NewRunnerForModule(pattern string, parser AnnotationParser, moduleName string) *Runner {
	r := NewRunner(pattern, parser, true, false)
	r.moduleName = moduleName
	return r
}

// WithIndex makes the Runner resolve modules through a precomputed
// descriptor index instead of per-file heuristics
func (r *Runner) WithIndex(index *modules.Index) *Runner {
	r.index = index
	return r
}

// WithCollaborators replaces the file finder and module detector,
// mainly for tests
func (r *Runner) WithCollaborators(f finder.Finder, d *modules.Detector) *Runner {
	r.finder = f
	r.detector = d
	return r
}

// Run scans the workspace and returns the aggregated result. Run never
// fails: every problem ends up as a diagnostic in the result, and a
// cancellation returns whatever was accumulated so far.
func (r *Runner) Run(ctx context.Context, workspace string) *Result {
	result := NewResult(workspace)

	files, err := r.finder.Find(ctx, workspace, r.pattern)
	if err != nil {
		if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
			r.logger.Info().Str("workspace", workspace).Msg("Scan has been canceled")
			return result
		}
		result.AddMessage(fmt.Sprintf("File discovery failed: %v", err))
		return result
	}

	if len(files) == 0 && !r.mavenBuild {
		result.AddMessage(msgNoFiles(r.pattern))
		return result
	}

	r.parseFiles(ctx, workspace, files, result)
	return result
}

// parseFiles processes the discovered files one by one
func (r *Runner) parseFiles(ctx context.Context, workspace string, files []string, result *Result) {
	absWorkspace, err := filepath.Abs(workspace)
	if err != nil {
		absWorkspace = workspace
	}
	absWorkspace = paths.ToSlash(absWorkspace)

	for _, rel := range files {
		if ctx.Err() != nil {
			r.logger.Info().Str("workspace", workspace).Msg("Scan has been canceled")
			return
		}

		file := absWorkspace + "/" + paths.ToSlash(rel)

		module := r.moduleName
		if paths.IsBlank(module) {
			module = r.detector.Resolve(file, r.index, r.mavenBuild, r.antBuild)
		}

		handle, err := os.Open(file)
		if err != nil {
			message := msgNoPermission(module, file)
			r.logger.Warn().Str("file", file).Msg(message)
			result.AddModuleMessage(module, message)
			continue
		}
		info, statErr := handle.Stat()
		_ = handle.Close()
		if statErr == nil && info.Size() <= 0 {
			message := msgEmptyFile(module, file)
			r.logger.Warn().Str("file", file).Msg(message)
			result.AddModuleMessage(module, message)
			continue
		}

		r.parseFile(file, module, result)
		result.AddModule(module)
	}
}

// parseFile delegates one file to the annotation parser and records the
// outcome
func (r *Runner) parseFile(file, module string, result *Result) {
	annotations, err := r.parser.Parse(file, module)
	if err != nil {
		cause := err
		if unwrapped := stderrors.Unwrap(err); unwrapped != nil {
			cause = unwrapped
		}
		message := msgParseFailure(file, cause)
		r.logger.Error().Str("file", file).Str("module", module).Err(err).Msg("Parsing failed")
		result.AddModuleMessage(module, message)
		return
	}

	result.AddAnnotations(annotations)
	r.logger.Info().
		Str("file", file).
		Str("module", module).
		Int("annotations", len(annotations)).
		Msg("Successfully parsed file")
}
