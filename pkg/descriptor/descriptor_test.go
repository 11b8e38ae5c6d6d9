package descriptor_test

import (
	"testing"

	"github.com/modscan/modscan/pkg/descriptor"
	"github.com/modscan/modscan/pkg/testutil"
	"github.com/stretchr/testify/assert"
)

const pomWithName = `<?xml version="1.0" encoding="UTF-8"?>
<project>
  <modelVersion>4.0.0</modelVersion>
  <artifactId>core-utils</artifactId>
  <name>Core Utilities</name>
</project>`

const buildXMLWithName = `<?xml version="1.0"?>
<project name="legacy-build" default="compile">
  <target name="compile"/>
</project>`

func TestParser_MavenName(t *testing.T) {
	t.Run("extracts_project_name", func(t *testing.T) {
		opener := testutil.NewMemOpener().Add("/ws/core/pom.xml", pomWithName)
		parser := descriptor.NewParserWithOpener(opener)

		assert.Equal(t, "Core Utilities", parser.MavenName("/ws/core/pom.xml"))
	})

	t.Run("target_path_reads_sibling_pom", func(t *testing.T) {
		opener := testutil.NewMemOpener().Add("/ws/core/pom.xml", pomWithName)
		parser := descriptor.NewParserWithOpener(opener)

		assert.Equal(t, "Core Utilities", parser.MavenName("/ws/core/target/classes/Foo.class"))
	})

	t.Run("missing_file_returns_empty", func(t *testing.T) {
		parser := descriptor.NewParserWithOpener(testutil.NewMemOpener())

		assert.Equal(t, "", parser.MavenName("/ws/core/pom.xml"))
	})

	t.Run("malformed_xml_returns_empty", func(t *testing.T) {
		opener := testutil.NewMemOpener().Add("/ws/core/pom.xml", "<project><name>broken")
		parser := descriptor.NewParserWithOpener(opener)

		assert.Equal(t, "", parser.MavenName("/ws/core/pom.xml"))
	})

	t.Run("pom_without_name_returns_empty", func(t *testing.T) {
		opener := testutil.NewMemOpener().
			Add("/ws/core/pom.xml", `<project><artifactId>core</artifactId></project>`)
		parser := descriptor.NewParserWithOpener(opener)

		assert.Equal(t, "", parser.MavenName("/ws/core/pom.xml"))
	})

	t.Run("unrelated_path_returns_empty", func(t *testing.T) {
		opener := testutil.NewMemOpener().Add("/ws/core/pom.xml", pomWithName)
		parser := descriptor.NewParserWithOpener(opener)

		// Neither a pom path nor under target/: nothing to read.
		assert.Equal(t, "", parser.MavenName("/ws/core/src/Foo.java"))
	})
}

func TestParser_AntName(t *testing.T) {
	t.Run("extracts_name_attribute", func(t *testing.T) {
		opener := testutil.NewMemOpener().Add("/ws/legacy/build.xml", buildXMLWithName)
		parser := descriptor.NewParserWithOpener(opener)

		assert.Equal(t, "legacy-build", parser.AntName("/ws/legacy"))
	})

	t.Run("blank_dir_reads_bare_filename", func(t *testing.T) {
		opener := testutil.NewMemOpener().Add("build.xml", buildXMLWithName)
		parser := descriptor.NewParserWithOpener(opener)

		assert.Equal(t, "legacy-build", parser.AntName(""))
	})

	t.Run("missing_file_returns_empty", func(t *testing.T) {
		parser := descriptor.NewParserWithOpener(testutil.NewMemOpener())

		assert.Equal(t, "", parser.AntName("/ws/legacy"))
	})

	t.Run("malformed_xml_returns_empty", func(t *testing.T) {
		opener := testutil.NewMemOpener().Add("/ws/legacy/build.xml", "<project name=")
		parser := descriptor.NewParserWithOpener(opener)

		assert.Equal(t, "", parser.AntName("/ws/legacy"))
	})

	t.Run("wrong_root_element_returns_empty", func(t *testing.T) {
		opener := testutil.NewMemOpener().Add("/ws/legacy/build.xml", `<build name="nope"/>`)
		parser := descriptor.NewParserWithOpener(opener)

		assert.Equal(t, "", parser.AntName("/ws/legacy"))
	})

	t.Run("missing_name_attribute_returns_empty", func(t *testing.T) {
		opener := testutil.NewMemOpener().Add("/ws/legacy/build.xml", `<project default="all"/>`)
		parser := descriptor.NewParserWithOpener(opener)

		assert.Equal(t, "", parser.AntName("/ws/legacy"))
	})
}

func TestParser_OSOpener(t *testing.T) {
	// The default parser reads from the real filesystem.
	root := testutil.WriteWorkspace(t, map[string]string{
		"core/pom.xml": pomWithName,
	})
	parser := descriptor.NewParser()

	assert.Equal(t, "Core Utilities", parser.MavenName(root+"/core/pom.xml"))
	assert.Equal(t, "", parser.MavenName(root+"/missing/pom.xml"))
}

func TestKind(t *testing.T) {
	assert.Equal(t, "maven", descriptor.KindMaven.String())
	assert.Equal(t, "ant", descriptor.KindAnt.String())
	assert.Equal(t, "pom.xml", descriptor.KindMaven.Filename())
	assert.Equal(t, "build.xml", descriptor.KindAnt.Filename())
}
