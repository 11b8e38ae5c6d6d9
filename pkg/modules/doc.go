// Package modules attributes workspace files to build modules.
//
// A module is one Maven or Ant build unit inside a larger workspace.
// Detection works in two modes:
//
// Indexed: BuildIndex walks the workspace once for descriptor files,
// extracts the declared project names and builds a sorted prefix index
// from containing directory to module name. Index.Lookup then resolves
// any file path against that index. Maven descriptors win outright: Ant
// build.xml files are only consulted when the whole workspace yields no
// usable pom entry.
//
// Heuristic: without a precomputed index, Detector.Heuristic infers a
// name per file from the build-tool descriptors next to it (including
// Maven's target/ output convention) and finally falls back to the name
// of the file's parent directory.
//
// Both modes normalize Windows-style separators first and never fail:
// the empty string is the "unknown module" answer.
package modules
