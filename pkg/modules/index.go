package modules

import (
	"sort"
	"strings"

	"github.com/modscan/modscan/pkg/paths"
)

// Entry maps one directory-path prefix to a module name. The prefix is
// the descriptor's path with the trailing filename stripped, so it ends
// in "/", and the name is never blank.
type Entry struct {
	Prefix string
	Name   string
}

// Index is a read-only collection of prefix entries, sorted
// lexicographically by prefix. Once built it is immutable and safe for
// concurrent lookups.
type Index struct {
	entries []Entry
}

// NewIndex creates an index from the given entries, sorting them by
// prefix. Entries with blank names are dropped.
func NewIndex(entries []Entry) *Index {
	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if !paths.IsBlank(e.Name) {
			kept = append(kept, e)
		}
	}
	sort.Slice(kept, func(i, j int) bool {
		return kept[i].Prefix < kept[j].Prefix
	})
	return &Index{entries: kept}
}

// Entries returns a copy of the sorted entries, so callers cannot
// mutate the index through the returned slice
func (ix *Index) Entries() []Entry {
	entries := make([]Entry, len(ix.entries))
	copy(entries, ix.entries)
	return entries
}

// Len returns the number of entries
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Lookup returns the module name for a file path, or "" when no
// registered prefix matches.
//
// The full sorted entry list is scanned and every match overwrites the
// result, so among several matching prefixes the lexicographically
// greatest one wins. For well-formed nested paths this is the deepest
// matching directory, but the tie-break is the sort order, not the
// prefix length.
func (ix *Index) Lookup(file string) string {
	full := paths.ToSlash(file)

	name := ""
	for _, e := range ix.entries {
		if strings.HasPrefix(full, e.Prefix) {
			name = e.Name
		}
	}
	return name
}
