package modules_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/modscan/modscan/pkg/modules"
	"github.com/modscan/modscan/pkg/paths"
	"github.com/modscan/modscan/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pomCore = `<project><name>Core</name></project>`
const pomUtil = `<project><name>Util</name></project>`
const antLegacy = `<project name="Legacy"/>`

// absSlash returns the workspace root the way index prefixes record it
func absSlash(t *testing.T, root string) string {
	t.Helper()
	abs, err := filepath.Abs(root)
	require.NoError(t, err)
	return paths.ToSlash(abs)
}

func TestDetector_BuildIndex(t *testing.T) {
	t.Run("maven_descriptors_registered", func(t *testing.T) {
		root := testutil.WriteWorkspace(t, map[string]string{
			"core/pom.xml": pomCore,
			"util/pom.xml": pomUtil,
		})

		index, err := modules.NewDetector().BuildIndex(context.Background(), root)
		require.NoError(t, err)

		ws := absSlash(t, root)
		assert.Equal(t, []modules.Entry{
			{Prefix: ws + "/core/", Name: "Core"},
			{Prefix: ws + "/util/", Name: "Util"},
		}, index.Entries())
	})

	t.Run("maven_wins_over_ant_workspace_wide", func(t *testing.T) {
		root := testutil.WriteWorkspace(t, map[string]string{
			"core/pom.xml":     pomCore,
			"legacy/build.xml": antLegacy,
		})

		index, err := modules.NewDetector().BuildIndex(context.Background(), root)
		require.NoError(t, err)

		require.Equal(t, 1, index.Len())
		assert.Equal(t, "Core", index.Entries()[0].Name)
	})

	t.Run("ant_used_when_no_maven_entry_is_usable", func(t *testing.T) {
		// A pom without a declared name yields no Maven entries, so the
		// whole workspace falls back to Ant.
		root := testutil.WriteWorkspace(t, map[string]string{
			"core/pom.xml":     `<project><artifactId>core</artifactId></project>`,
			"legacy/build.xml": antLegacy,
		})

		index, err := modules.NewDetector().BuildIndex(context.Background(), root)
		require.NoError(t, err)

		ws := absSlash(t, root)
		assert.Equal(t, []modules.Entry{
			{Prefix: ws + "/legacy/", Name: "Legacy"},
		}, index.Entries())
	})

	t.Run("malformed_descriptors_are_skipped", func(t *testing.T) {
		root := testutil.WriteWorkspace(t, map[string]string{
			"bad/pom.xml":  "<project><name>oops",
			"good/pom.xml": pomCore,
		})

		index, err := modules.NewDetector().BuildIndex(context.Background(), root)
		require.NoError(t, err)

		require.Equal(t, 1, index.Len())
		assert.Equal(t, "Core", index.Entries()[0].Name)
	})

	t.Run("descriptor_at_workspace_root", func(t *testing.T) {
		root := testutil.WriteWorkspace(t, map[string]string{
			"pom.xml": pomCore,
		})

		index, err := modules.NewDetector().BuildIndex(context.Background(), root)
		require.NoError(t, err)

		ws := absSlash(t, root)
		require.Equal(t, 1, index.Len())
		assert.Equal(t, ws+"/", index.Entries()[0].Prefix)
	})

	t.Run("empty_workspace_yields_empty_index", func(t *testing.T) {
		root := testutil.WriteWorkspace(t, nil)

		index, err := modules.NewDetector().BuildIndex(context.Background(), root)
		require.NoError(t, err)
		assert.Equal(t, 0, index.Len())
	})

	t.Run("cancellation_propagates", func(t *testing.T) {
		root := testutil.WriteWorkspace(t, map[string]string{
			"core/pom.xml": pomCore,
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := modules.NewDetector().BuildIndex(ctx, root)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestIndex_Lookup(t *testing.T) {
	index := modules.NewIndex([]modules.Entry{
		{Prefix: "/ws/core/", Name: "Core"},
		{Prefix: "/ws/core/sub/", Name: "Sub"},
		{Prefix: "/ws/util/", Name: "Util"},
	})

	t.Run("path_under_prefix", func(t *testing.T) {
		assert.Equal(t, "Core", index.Lookup("/ws/core/src/Main.java"))
		assert.Equal(t, "Util", index.Lookup("/ws/util/U.java"))
	})

	t.Run("deepest_nested_prefix_wins", func(t *testing.T) {
		assert.Equal(t, "Sub", index.Lookup("/ws/core/sub/S.java"))
	})

	t.Run("unregistered_path_returns_empty", func(t *testing.T) {
		assert.Equal(t, "", index.Lookup("/elsewhere/F.java"))
	})

	t.Run("backslash_path_resolves_identically", func(t *testing.T) {
		assert.Equal(t,
			index.Lookup("/ws/core/sub/S.java"),
			index.Lookup(`\ws\core\sub\S.java`))
	})

	t.Run("last_match_in_sort_order_wins", func(t *testing.T) {
		// Both prefixes match; the scan keeps the later (greater) entry.
		overlap := modules.NewIndex([]modules.Entry{
			{Prefix: "/ws/", Name: "Outer"},
			{Prefix: "/ws/app/", Name: "Inner"},
		})
		assert.Equal(t, "Inner", overlap.Lookup("/ws/app/F.java"))
		assert.Equal(t, "Outer", overlap.Lookup("/ws/other/F.java"))
	})
}

func TestIndex_EntriesReturnsCopy(t *testing.T) {
	index := modules.NewIndex([]modules.Entry{
		{Prefix: "/ws/core/", Name: "Core"},
	})

	entries := index.Entries()
	entries[0] = modules.Entry{Prefix: "/elsewhere/", Name: "Tampered"}

	assert.Equal(t, "Core", index.Entries()[0].Name)
	assert.Equal(t, "Core", index.Lookup("/ws/core/F.java"))
}

func TestNewIndex_DropsBlankNames(t *testing.T) {
	index := modules.NewIndex([]modules.Entry{
		{Prefix: "/ws/a/", Name: "  "},
		{Prefix: "/ws/b/", Name: "B"},
	})
	require.Equal(t, 1, index.Len())
	assert.Equal(t, "B", index.Entries()[0].Name)
}
