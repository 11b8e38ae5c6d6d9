package scan_test

import (
	"testing"

	"github.com/modscan/modscan/pkg/scan"
	"github.com/stretchr/testify/assert"
)

func TestResult_Modules(t *testing.T) {
	result := scan.NewResult("/ws")
	result.AddModule("util")
	result.AddModule("core")
	result.AddModule("util")

	assert.Equal(t, []string{"core", "util"}, result.Modules())
}

func TestResult_Annotations(t *testing.T) {
	result := scan.NewResult("/ws")
	result.AddAnnotations([]scan.Annotation{
		{Module: "core", File: "a.xml"},
		{Module: "core", File: "b.xml"},
		{Module: "util", File: "c.xml"},
	})

	assert.Equal(t, 3, result.AnnotationCount())
	assert.Equal(t, 2, result.ModuleAnnotationCount("core"))
	assert.Equal(t, 0, result.ModuleAnnotationCount("missing"))
}

func TestResult_ModuleMessages(t *testing.T) {
	result := scan.NewResult("/ws")
	result.AddModuleMessage("core", "first")
	result.AddModuleMessage("core", "second")
	result.AddModuleMessage("util", "other")

	assert.Equal(t, []string{"first", "second"}, result.ModuleMessages("core"))
	assert.Equal(t, []string{"core", "util"}, result.ModulesWithMessages())
	assert.Empty(t, result.Messages())
}

func TestResult_BlankModuleMessageIsGlobal(t *testing.T) {
	result := scan.NewResult("/ws")
	result.AddModuleMessage("", "unattributed problem")

	assert.Equal(t, []string{"unattributed problem"}, result.Messages())
	assert.Empty(t, result.ModulesWithMessages())
}
