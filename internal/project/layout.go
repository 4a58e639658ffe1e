// Package project locates the web-application root and exposes its fixed
// filesystem layout: the entry document, the hand-written source tree, the
// engine crate and its compiled output, the dist tree and static assets.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestName is the optional project manifest searched for upwards from
// the start directory. A project without one is rooted at the start
// directory itself.
const ManifestName = "mbweb.toml"

// Layout holds the absolute paths the toolchain operates on.
type Layout struct {
	Root      string
	IndexHTML string
	SrcDir    string
	WasmCrate string
	WasmPkg   string
	Dist      string
	Assets    string

	Config Config
	// ManifestPath is empty when no mbweb.toml was found.
	ManifestPath string
}

// NewLayout derives the fixed layout from an absolute project root.
func NewLayout(root string) Layout {
	return Layout{
		Root:      root,
		IndexHTML: filepath.Join(root, "index.html"),
		SrcDir:    filepath.Join(root, "src"),
		WasmCrate: filepath.Join(root, "src", "wasm"),
		WasmPkg:   filepath.Join(root, "src", "wasm", "pkg"),
		Dist:      filepath.Join(root, "dist"),
		Assets:    filepath.Join(root, "assets"),
	}
}

// Find resolves the project layout for startDir: if an mbweb.toml exists in
// startDir or any parent, the project roots there and the manifest is
// loaded; otherwise startDir itself is the root with default config.
func Find(startDir string) (Layout, error) {
	if startDir == "" {
		startDir = "."
	}
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	manifestPath, found, err := findManifest(abs)
	if err != nil {
		return Layout{}, err
	}
	if !found {
		layout := NewLayout(abs)
		layout.Config = DefaultConfig()
		return layout, nil
	}
	cfg, err := LoadConfig(manifestPath)
	if err != nil {
		return Layout{}, err
	}
	layout := NewLayout(filepath.Dir(manifestPath))
	layout.Config = cfg
	layout.ManifestPath = manifestPath
	return layout, nil
}

func findManifest(dir string) (string, bool, error) {
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Rel renders an absolute path relative to the project root for output;
// falls back to the absolute path when they do not share a base.
func (l Layout) Rel(target string) string {
	rel, err := filepath.Rel(l.Root, target)
	if err != nil {
		return target
	}
	return rel
}
