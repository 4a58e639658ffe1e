// Package manifest holds the fixed table of hand-written modules the
// validator checks the real source tree against. The table is static
// configuration: it is the ground truth, never derived from disk state.
package manifest

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// EntryPath is the repository-relative path of the application entry point.
const EntryPath = "src/main.js"

// TagPrefix is the custom-element namespace shared by every UI component.
const TagPrefix = "mb3d-"

// Entry describes one expected hand-written module.
type Entry struct {
	// Role is a short human label used in diagnostics ("entry point", ...).
	Role string
	// Path is the expected repository-relative path.
	Path string
	// Export is the expected exported identifier, empty when the manifest
	// does not pin one (entry point, worker script).
	Export string
	// Tag is the custom-element tag for UI components, empty otherwise.
	Tag string
}

// IsComponent reports whether the entry describes a UI component module.
func (e Entry) IsComponent() bool {
	return e.Tag != ""
}

var titler = cases.Title(language.English)

// ClassName derives the expected exported class name from a component tag:
// "mb3d-formula-panel" -> "MB3DFormulaPanel".
func ClassName(tag string) string {
	rest := strings.TrimPrefix(tag, TagPrefix)
	var b strings.Builder
	b.WriteString("MB3D")
	for _, seg := range strings.Split(rest, "-") {
		b.WriteString(titler.String(seg))
	}
	return b.String()
}

func component(role, path, tag string) Entry {
	return Entry{Role: role, Path: path, Export: ClassName(tag), Tag: tag}
}

// Entries returns the expected-file manifest. The slice is rebuilt per call
// so callers can never corrupt the table.
func Entries() []Entry {
	return []Entry{
		{Role: "entry point", Path: EntryPath},
		{Role: "header type", Path: "src/core/types/header.js", Export: "createDefaultHeader"},
		{Role: "render params", Path: "src/core/types/params.js", Export: "buildRenderParams"},
		{Role: "state engine", Path: "src/core/engine/state.js", Export: "AppState"},
		{Role: "worker pool", Path: "src/core/engine/worker_pool.js", Export: "WorkerPool"},
		component("app shell", "src/components/app/mb3d-app.js", "mb3d-app"),
		component("viewer", "src/components/viewer/mb3d-viewer.js", "mb3d-viewer"),
		component("navigator", "src/components/navigator/mb3d-navigator.js", "mb3d-navigator"),
		component("controls", "src/components/controls/mb3d-controls.js", "mb3d-controls"),
		component("formula panel", "src/components/formulas/mb3d-formula-panel.js", "mb3d-formula-panel"),
		component("light editor", "src/components/lighting/mb3d-light-editor.js", "mb3d-light-editor"),
		component("color picker", "src/components/color/mb3d-color-picker.js", "mb3d-color-picker"),
		{Role: "calc worker", Path: "src/workers/calc-worker.js"},
	}
}

// Components returns only the UI-component entries, in manifest order.
func Components() []Entry {
	var out []Entry
	for _, e := range Entries() {
		if e.IsComponent() {
			out = append(out, e)
		}
	}
	return out
}
