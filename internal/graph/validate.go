// Package graph statically validates the hand-written module tree: every
// relative import must resolve to an existing file, every manifest entry
// must exist with its pinned export, no UI component may reach back into
// the entry point, and each component must satisfy the structural contract.
// Inspection is read-only; source files are read on demand and never cached
// across runs.
package graph

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"mbweb/internal/diag"
	"mbweb/internal/manifest"
	"mbweb/internal/resolve"
	"mbweb/internal/scan"
)

// DefaultMaxDiagnostics caps a validation run's findings.
const DefaultMaxDiagnostics = 200

// Options configures a validation run.
type Options struct {
	// Root is the absolute project root directory.
	Root string
	// Entries is the expected-file manifest; nil means manifest.Entries().
	Entries []manifest.Entry
	// MaxDiagnostics caps the bag; 0 means DefaultMaxDiagnostics.
	MaxDiagnostics int
}

func (o Options) entries() []manifest.Entry {
	if o.Entries != nil {
		return o.Entries
	}
	return manifest.Entries()
}

// Validate runs the full module-graph validation and returns every finding
// in one sorted bag. An error is returned only for I/O failures outside the
// rules themselves (an unreadable tree), never for rule violations.
func Validate(opts Options) (*diag.Bag, error) {
	max := opts.MaxDiagnostics
	if max <= 0 {
		max = DefaultMaxDiagnostics
	}
	bag := diag.NewBag(max)
	reporter := diag.BagReporter{Bag: bag}

	modules, err := listModules(opts.Root)
	if err != nil {
		return nil, err
	}
	for _, rel := range modules {
		if err := checkImports(opts.Root, rel, reporter); err != nil {
			return nil, err
		}
	}
	if err := checkManifest(opts.Root, opts.entries(), reporter); err != nil {
		return nil, err
	}
	if err := checkEntryDocument(opts.Root, opts.entries(), reporter); err != nil {
		return nil, err
	}
	if err := CheckContracts(opts.Root, opts.entries(), reporter); err != nil {
		return nil, err
	}

	bag.Sort()
	return bag, nil
}

// listModules enumerates hand-written .js modules under src/, slash-relative
// to root, in sorted order. The engine crate subtree is not hand-written
// JavaScript and is excluded; TypeScript residue is surfaced by
// checkManifest, not here.
func listModules(root string) ([]string, error) {
	srcDir := filepath.Join(root, "src")
	wasmDir := filepath.Join(srcDir, "wasm")
	var out []string
	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == wasmDir {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".js" {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("source tree %q does not exist", srcDir)
		}
		return nil, fmt.Errorf("failed to walk %q: %w", srcDir, err)
	}
	sort.Strings(out)
	return out, nil
}

// checkImports validates every import specifier of one module: relative
// specifiers must resolve to existing files, except targets under the
// generated engine-output subtree while that subtree is absent. Component
// modules additionally must not reference the entry point — the minimal
// one-directional cycle guard, matched on specifier substring.
func checkImports(root, rel string, r diag.Reporter) error {
	text, err := readSource(root, rel)
	if err != nil {
		return err
	}
	pkgPresent := dirExists(filepath.Join(root, filepath.FromSlash(resolve.GeneratedPrefix)))
	isComponent := strings.HasPrefix(rel, "src/components/")

	for _, specifier := range scan.Imports(text) {
		if isComponent && strings.Contains(specifier, "main") {
			r.Report(diag.NewError(diag.GraphEntryPointImport, rel,
				fmt.Sprintf("component imports the entry point via %q", specifier)))
			continue
		}
		target, ok := resolve.Target(rel, specifier)
		if !ok {
			// bare or URL specifier, out of scope for resolution
			continue
		}
		if resolve.IsGenerated(target) && !pkgPresent {
			continue
		}
		if !fileExists(filepath.Join(root, filepath.FromSlash(target))) {
			r.Report(diag.NewError(diag.GraphUnresolvedImport, rel,
				fmt.Sprintf("import %q resolves to %s which does not exist", specifier, target)))
		}
	}
	return nil
}

// checkManifest cross-checks the expected-file table: every entry must
// exist, be non-empty, and expose its pinned export. It also reports
// TypeScript residue under src/ as warnings.
func checkManifest(root string, entries []manifest.Entry, r diag.Reporter) error {
	for _, e := range entries {
		path := filepath.Join(root, filepath.FromSlash(e.Path))
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				r.Report(diag.NewError(diag.ManifestMissingFile, e.Path,
					fmt.Sprintf("expected %s is missing", e.Role)))
				continue
			}
			return fmt.Errorf("failed to stat %q: %w", path, err)
		}
		if info.Size() == 0 {
			r.Report(diag.NewError(diag.ManifestEmptyFile, e.Path,
				fmt.Sprintf("expected %s is empty", e.Role)))
			continue
		}
		if e.Export == "" {
			continue
		}
		text, err := readSource(root, e.Path)
		if err != nil {
			return err
		}
		if !containsExport(scan.Exports(text), e.Export) {
			r.Report(diag.NewError(diag.ManifestMissingExport, e.Path,
				fmt.Sprintf("expected export %q not declared", e.Export)))
		}
	}
	return checkStaleSources(root, r)
}

func checkStaleSources(root string, r diag.Reporter) error {
	srcDir := filepath.Join(root, "src")
	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".ts" {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		r.Report(diag.NewWarning(diag.ManifestStaleSource, filepath.ToSlash(rel),
			"TypeScript residue in the hand-written tree"))
		return nil
	})
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to walk %q: %w", srcDir, err)
	}
	return nil
}

// checkEntryDocument validates index.html (present, wired to src/main.js
// rather than a stale .ts entry, and carrying every component tag) and that
// the entry point registers each component tag as a quoted string.
func checkEntryDocument(root string, entries []manifest.Entry, r diag.Reporter) error {
	const doc = "index.html"
	text, err := readSource(root, doc)
	if err != nil {
		return err
	}
	if text == "" {
		r.Report(diag.NewError(diag.DocMissingEntry, doc, "entry document is missing or empty"))
		return nil
	}
	if !strings.Contains(text, manifest.EntryPath) || strings.Contains(text, "src/main.ts") {
		r.Report(diag.NewError(diag.DocStaleEntry, doc,
			fmt.Sprintf("entry document must reference %s", manifest.EntryPath)))
	}

	mainText, err := readSource(root, manifest.EntryPath)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if !e.IsComponent() {
			continue
		}
		if !strings.Contains(text, "<"+e.Tag) {
			r.Report(diag.NewError(diag.DocMissingComponent, doc,
				fmt.Sprintf("entry document does not place <%s>", e.Tag)))
		}
		if mainText != "" && !containsQuoted(mainText, e.Tag) {
			r.Report(diag.NewError(diag.GraphUnregisteredComponent, manifest.EntryPath,
				fmt.Sprintf("entry point does not register %q", e.Tag)))
		}
	}
	return nil
}

func containsQuoted(text, tag string) bool {
	return strings.Contains(text, "'"+tag+"'") || strings.Contains(text, `"`+tag+`"`)
}

func containsExport(exports []string, name string) bool {
	for _, e := range exports {
		if e == name {
			return true
		}
	}
	return false
}

// readSource reads a repository-relative file; a missing file reads as "".
func readSource(root, rel string) (string, error) {
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read %q: %w", rel, err)
	}
	return string(data), nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
