package modules_test

import (
	"testing"

	"github.com/modscan/modscan/pkg/descriptor"
	"github.com/modscan/modscan/pkg/finder"
	"github.com/modscan/modscan/pkg/modules"
	"github.com/modscan/modscan/pkg/testutil"
	"github.com/stretchr/testify/assert"
)

// heuristicDetector builds a detector whose descriptor parser reads from
// the given in-memory files
func heuristicDetector(opener *testutil.MemOpener) *modules.Detector {
	return modules.NewDetectorWith(finder.NewGlobFinder(), descriptor.NewParserWithOpener(opener))
}

func TestDetector_Heuristic(t *testing.T) {
	t.Run("directory_name_fallback", func(t *testing.T) {
		d := heuristicDetector(testutil.NewMemOpener())

		assert.Equal(t, "moduleA", d.Heuristic("/ws/moduleA/File.java", false, false))
		assert.Equal(t, "src", d.Heuristic("/ws/moduleA/src/File.java", false, false))
	})

	t.Run("maven_pom_next_to_target", func(t *testing.T) {
		opener := testutil.NewMemOpener().
			Add("/ws/proj/pom.xml", `<project><name>proj</name></project>`)
		d := heuristicDetector(opener)

		assert.Equal(t, "proj", d.Heuristic("/ws/proj/target/classes/Foo.class", true, false))
	})

	t.Run("maven_without_pom_falls_back_to_directory", func(t *testing.T) {
		d := heuristicDetector(testutil.NewMemOpener())

		assert.Equal(t, "classes", d.Heuristic("/ws/proj/target/classes/Foo.class", true, false))
	})

	t.Run("ant_build_xml_in_parent", func(t *testing.T) {
		opener := testutil.NewMemOpener().
			Add("/ws/legacy/src/build.xml", `<project name="legacy-src"/>`)
		d := heuristicDetector(opener)

		assert.Equal(t, "legacy-src", d.Heuristic("/ws/legacy/src/F.java", false, true))
	})

	t.Run("ant_without_descriptor_falls_back_to_directory", func(t *testing.T) {
		d := heuristicDetector(testutil.NewMemOpener())

		assert.Equal(t, "src", d.Heuristic("/ws/legacy/src/F.java", false, true))
	})

	t.Run("backslash_path_resolves_identically", func(t *testing.T) {
		opener := testutil.NewMemOpener().
			Add("/ws/proj/pom.xml", `<project><name>proj</name></project>`)
		d := heuristicDetector(opener)

		forward := d.Heuristic("/ws/proj/target/classes/Foo.class", true, false)
		backward := d.Heuristic(`\ws\proj\target\classes\Foo.class`, true, false)
		assert.Equal(t, forward, backward)

		assert.Equal(t,
			d.Heuristic("a/b/c.txt", false, false),
			d.Heuristic(`a\b\c.txt`, false, false))
	})

	t.Run("path_without_separator_is_returned_as_is", func(t *testing.T) {
		d := heuristicDetector(testutil.NewMemOpener())

		assert.Equal(t, "File.java", d.Heuristic("File.java", false, false))
	})

	t.Run("file_at_root_yields_empty", func(t *testing.T) {
		d := heuristicDetector(testutil.NewMemOpener())

		assert.Equal(t, "", d.Heuristic("/File.java", false, false))
	})
}

func TestDetector_Resolve(t *testing.T) {
	opener := testutil.NewMemOpener()
	d := heuristicDetector(opener)
	index := modules.NewIndex([]modules.Entry{
		{Prefix: "/ws/core/", Name: "Core"},
	})

	t.Run("uses_index_when_present", func(t *testing.T) {
		assert.Equal(t, "Core", d.Resolve("/ws/core/F.java", index, false, false))
		assert.Equal(t, "", d.Resolve("/elsewhere/F.java", index, false, false))
	})

	t.Run("falls_back_to_heuristic_without_index", func(t *testing.T) {
		assert.Equal(t, "core", d.Resolve("/ws/core/F.java", nil, false, false))
	})
}
