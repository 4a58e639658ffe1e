// Package testkit builds throwaway web-application trees for tests: a
// complete, contract-satisfying set of hand-written modules, the entry
// document, a stub engine crate and static assets. Tests mutate the tree
// to produce the negative cases they need.
package testkit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mbweb/internal/manifest"
)

// WriteProject writes a fully valid project tree under root.
func WriteProject(tb testing.TB, root string) {
	tb.Helper()
	for rel, content := range ProjectFiles() {
		WriteFile(tb, root, rel, content)
	}
}

// WriteFile writes one file under root, creating parent directories.
func WriteFile(tb testing.TB, root, rel, content string) {
	tb.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		tb.Fatalf("mkdir for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		tb.Fatalf("write %s: %v", rel, err)
	}
}

// Remove deletes a file or subtree under root.
func Remove(tb testing.TB, root, rel string) {
	tb.Helper()
	if err := os.RemoveAll(filepath.Join(root, filepath.FromSlash(rel))); err != nil {
		tb.Fatalf("remove %s: %v", rel, err)
	}
}

// ProjectFiles returns the full fixture tree keyed by repository-relative
// path. Component sources are generated from the expected-file manifest so
// the fixture never drifts from the table the validator enforces.
func ProjectFiles() map[string]string {
	files := map[string]string{
		"index.html":                     indexHTML(),
		"src/main.js":                    mainJS(),
		"src/core/types/header.js":       headerJS,
		"src/core/types/params.js":       paramsJS,
		"src/core/engine/state.js":       stateJS,
		"src/core/engine/worker_pool.js": workerPoolJS,
		"src/workers/calc-worker.js":     calcWorkerJS,
		"src/wasm/Cargo.toml":            cargoTOML,
		"src/wasm/src/lib.rs":            libRS,
		"assets/favicon.svg":             faviconSVG,
	}
	for _, comp := range manifest.Components() {
		files[comp.Path] = ComponentSource(comp.Export)
	}
	return files
}

// ComponentSource renders a UI-component module satisfying all four
// structural markers for the given class name.
func ComponentSource(className string) string {
	return fmt.Sprintf(`import { AppState } from '%s';

export class %s extends HTMLElement {
  constructor() {
    super();
    this.attachShadow({ mode: 'open' });
  }

  connectedCallback() {
    this.shadowRoot.textContent = '%s';
  }
}
`, stateSpecifierFromComponent, className, className)
}

// Components sit at src/components/<dir>/, two levels below src/.
const stateSpecifierFromComponent = "../../core/engine/state.js"

func mainJS() string {
	var b strings.Builder
	b.WriteString("import { AppState } from './core/engine/state.js';\n")
	b.WriteString("import { createDefaultHeader } from './core/types/header.js';\n")
	for _, comp := range manifest.Components() {
		rel := strings.TrimPrefix(comp.Path, "src/")
		fmt.Fprintf(&b, "import { %s } from './%s';\n", comp.Export, rel)
	}
	b.WriteString("\nexport const app = new AppState(createDefaultHeader());\n\n")
	for _, comp := range manifest.Components() {
		fmt.Fprintf(&b, "customElements.define('%s', %s);\n", comp.Tag, comp.Export)
	}
	return b.String()
}

func indexHTML() string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("  <meta charset=\"utf-8\">\n  <title>Mandelbulb3D Web</title>\n")
	b.WriteString("  <script type=\"module\" src=\"src/main.js\"></script>\n")
	b.WriteString("</head>\n<body>\n")
	for _, comp := range manifest.Components() {
		fmt.Fprintf(&b, "  <%s></%s>\n", comp.Tag, comp.Tag)
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

const headerJS = `export function createDefaultHeader() {
  return { magic: 'MB3D', version: 1 };
}
`

const paramsJS = `export function hexToRgb(hex) {
  const v = parseInt(hex.slice(1), 16);
  return [(v >> 16) & 255, (v >> 8) & 255, v & 255];
}

export function buildRenderParams(header) {
  return { width: 800, height: 600, header };
}
`

const stateJS = `import { createDefaultHeader } from '../types/header.js';
import { buildRenderParams } from '../types/params.js';
import { WorkerPool } from './worker_pool.js';

export class AppState {
  constructor(header = createDefaultHeader()) {
    this.header = header;
    this.params = buildRenderParams(header);
    this.pool = new WorkerPool(navigator.hardwareConcurrency || 4);
  }
}
`

const workerPoolJS = `export class WorkerPool {
  constructor(size) {
    this.size = size;
    this.workers = [];
  }
}
`

const calcWorkerJS = `import { buildRenderParams } from '../core/types/params.js';
import init from '../wasm/pkg/mb3d_wasm.js';

self.onmessage = async (msg) => {
  await init();
  self.postMessage(buildRenderParams(msg.data.header));
};
`

const cargoTOML = `[package]
name = "mb3d_wasm"
version = "0.1.0"
edition = "2021"

[lib]
crate-type = ["cdylib"]

[dependencies]
wasm-bindgen = "0.2"

[package.metadata.wasm-pack.profile.release]
wasm-opt = false
`

const libRS = `use wasm_bindgen::prelude::*;

#[wasm_bindgen]
pub fn render_scanlines(start: u32, count: u32) -> u32 {
    start + count
}
`

const faviconSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 16 16"><circle cx="8" cy="8" r="7"/></svg>
`
