package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindWithoutManifestRootsAtStartDir(t *testing.T) {
	dir := t.TempDir()
	layout, err := Find(dir)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if layout.Root != dir {
		t.Fatalf("Root = %q, want %q", layout.Root, dir)
	}
	if layout.ManifestPath != "" {
		t.Fatalf("ManifestPath = %q, want empty", layout.ManifestPath)
	}
	if layout.Config.Serve.Port != DefaultPort {
		t.Fatalf("Port = %d, want %d", layout.Config.Serve.Port, DefaultPort)
	}
	if layout.WasmPkg != filepath.Join(dir, "src", "wasm", "pkg") {
		t.Fatalf("WasmPkg = %q", layout.WasmPkg)
	}
}

func TestFindDiscoversManifestUpwards(t *testing.T) {
	root := t.TempDir()
	data := `[package]
name = "mandelbulb-web"

[serve]
port = 9100
`
	if err := os.WriteFile(filepath.Join(root, ManifestName), []byte(data), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	nested := filepath.Join(root, "src", "core")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	layout, err := Find(nested)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if layout.Root != root {
		t.Fatalf("Root = %q, want %q", layout.Root, root)
	}
	if layout.Config.Package.Name != "mandelbulb-web" {
		t.Fatalf("name = %q", layout.Config.Package.Name)
	}
	if layout.Config.Serve.Port != 9100 {
		t.Fatalf("port = %d, want 9100", layout.Config.Serve.Port)
	}
}

func TestLoadConfigRejectsMissingName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte("[serve]\nport = 8000\n"), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("LoadConfig should fail without [package].name")
	}
}

func TestLoadConfigRejectsBadPort(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ManifestName)
	data := "[package]\nname = \"x\"\n\n[serve]\nport = 99999\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("LoadConfig should reject out-of-range port")
	}
}

func TestToolCommandDefaultsAndOverrides(t *testing.T) {
	layout := NewLayout("/proj")
	layout.Config = DefaultConfig()

	wasm := layout.WasmCommand()
	if wasm[0] != "wasm-pack" {
		t.Fatalf("wasm[0] = %q, want wasm-pack", wasm[0])
	}
	found := false
	for _, arg := range wasm {
		if arg == layout.WasmCrate {
			found = true
		}
	}
	if !found {
		t.Fatalf("wasm command %v does not reference the crate dir", wasm)
	}

	layout.Config.Tools.Lint = "eslint --max-warnings 0 src"
	lint := layout.LintCommand()
	if lint[0] != "eslint" || len(lint) != 4 {
		t.Fatalf("lint = %v, want eslint override split on fields", lint)
	}
}
