package scan

import "sort"

// Annotation is one finding produced by an AnnotationParser for a
// scanned file. The scan core carries annotations through untouched;
// their meaning belongs to the parser.
type Annotation struct {
	Module  string
	File    string
	Line    int
	Message string
}

// Result accumulates everything one scan produced: the set of modules
// seen, all annotations, and the diagnostic messages recorded globally
// or against a module. It is built single-threaded during the scan and
// read-only afterwards.
type Result struct {
	workspace      string
	modules        map[string]struct{}
	annotations    []Annotation
	messages       []string
	moduleMessages map[string][]string
}

// NewResult creates an empty result for a workspace scan
func NewResult(workspace string) *Result {
	return &Result{
		workspace:      workspace,
		modules:        make(map[string]struct{}),
		moduleMessages: make(map[string][]string),
	}
}

// Workspace returns the scanned workspace root
func (r *Result) Workspace() string {
	return r.workspace
}

// AddModule records that a module was seen
func (r *Result) AddModule(module string) {
	r.modules[module] = struct{}{}
}

// AddAnnotations appends parsed annotations
func (r *Result) AddAnnotations(annotations []Annotation) {
	r.annotations = append(r.annotations, annotations...)
}

// AddMessage records a workspace-level diagnostic
func (r *Result) AddMessage(message string) {
	r.messages = append(r.messages, message)
}

// AddModuleMessage records a diagnostic against a module. A blank
// module name files the message at workspace level instead.
func (r *Result) AddModuleMessage(module, message string) {
	if module == "" {
		r.AddMessage(message)
		return
	}
	r.moduleMessages[module] = append(r.moduleMessages[module], message)
}

// Modules returns the recorded module names in sorted order
func (r *Result) Modules() []string {
	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Annotations returns all accumulated annotations
func (r *Result) Annotations() []Annotation {
	return r.annotations
}

// AnnotationCount returns the number of accumulated annotations
func (r *Result) AnnotationCount() int {
	return len(r.annotations)
}

// ModuleAnnotationCount returns the number of annotations attributed to
// one module
func (r *Result) ModuleAnnotationCount(module string) int {
	count := 0
	for _, a := range r.annotations {
		if a.Module == module {
			count++
		}
	}
	return count
}

// Messages returns the workspace-level diagnostics
func (r *Result) Messages() []string {
	return r.messages
}

// ModuleMessages returns the diagnostics recorded against a module
func (r *Result) ModuleMessages(module string) []string {
	return r.moduleMessages[module]
}

// ModulesWithMessages returns the modules that have diagnostics, sorted
func (r *Result) ModulesWithMessages() []string {
	names := make([]string, 0, len(r.moduleMessages))
	for name := range r.moduleMessages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
