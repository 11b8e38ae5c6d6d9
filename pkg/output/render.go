package output

import (
	"fmt"
	"strings"

	"github.com/modscan/modscan/pkg/output/styles"
	"github.com/modscan/modscan/pkg/scan"
)

// RenderResult renders a scan result as a per-module report. Styles are
// applied only for FormatTerminal; FormatText (and unresolved
// FormatAuto) produce plain text.
func RenderResult(result *scan.Result, format Format) string {
	styled := func(name, s string) string {
		if format == FormatTerminal {
			return styles.GetStyle(name).Render(s)
		}
		return s
	}

	var b strings.Builder

	b.WriteString(styled("Header", fmt.Sprintf("Scan of %s", result.Workspace())))
	b.WriteString("\n")

	modules := result.Modules()
	for _, module := range modules {
		name := module
		if name == "" {
			name = "(unknown module)"
		}
		count := result.ModuleAnnotationCount(module)
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			styled("Module", name),
			styled("Count", fmt.Sprintf("%d annotations", count))))
	}
	if len(modules) == 0 {
		b.WriteString("  no modules scanned\n")
	}

	for _, message := range result.Messages() {
		b.WriteString(fmt.Sprintf("  %s\n", styled("Warning", message)))
	}
	for _, module := range result.ModulesWithMessages() {
		for _, message := range result.ModuleMessages(module) {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				styled("Module", module+":"),
				styled("Error", firstLine(message))))
		}
	}

	b.WriteString(styled("Summary",
		fmt.Sprintf("%d annotations in %d modules", result.AnnotationCount(), len(modules))))
	b.WriteString("\n")

	return b.String()
}

// RenderIndex renders the entries of a module index as a prefix table
func RenderIndex(entries []IndexEntry, format Format) string {
	styled := func(name, s string) string {
		if format == FormatTerminal {
			return styles.GetStyle(name).Render(s)
		}
		return s
	}

	var b strings.Builder
	if len(entries) == 0 {
		b.WriteString("no modules detected\n")
		return b.String()
	}
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("%s  %s\n",
			styled("Module", e.Name),
			styled("Path", e.Prefix)))
	}
	return b.String()
}

// IndexEntry is one rendered row of a module index
type IndexEntry struct {
	Prefix string
	Name   string
}

// firstLine truncates multi-line diagnostics for the report; the full
// text is available in the log
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
