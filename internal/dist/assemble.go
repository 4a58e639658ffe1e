// Package dist assembles the deployable output tree: the entry document,
// the hand-written source tree without the engine's native sources, the
// compiled engine output when present, and static assets. Assembly is
// destructive-then-constructive — a previous output tree is removed in
// full before anything is copied — and any I/O failure aborts the run.
package dist

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"mbweb/internal/project"
)

// Assembler produces the dist tree for one project layout.
type Assembler struct {
	Layout   project.Layout
	Progress ProgressSink
}

// Result reports what a successful assembly produced. FileCount is a sanity
// signal, not a correctness guarantee.
type Result struct {
	FileCount int
	Record    Record
}

type copyStep struct {
	stage   Stage
	src     string // absolute source path
	dst     string // absolute destination path
	rel     string // dist-relative slash path, used in events and the record
	display string // project-relative slash path shown in progress
}

// Plan returns the project-relative paths Assemble will copy, in copy order.
// Used to seed progress displays.
func (a *Assembler) Plan() ([]string, error) {
	steps, err := a.plan()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(steps))
	for _, s := range steps {
		out = append(out, s.display)
	}
	return out, nil
}

// Assemble rebuilds the dist tree from scratch. On failure the output
// directory must be treated as not assembled; the next successful run
// starts from a clean slate either way.
func (a *Assembler) Assemble() (Result, error) {
	steps, err := a.plan()
	if err != nil {
		return Result{}, err
	}

	a.emit(Event{Stage: StageClean, Status: StatusWorking})
	if err := os.RemoveAll(a.Layout.Dist); err != nil {
		return Result{}, fmt.Errorf("failed to remove %q: %w", a.Layout.Dist, err)
	}
	if err := os.MkdirAll(a.Layout.Dist, 0o755); err != nil {
		return Result{}, fmt.Errorf("failed to create %q: %w", a.Layout.Dist, err)
	}
	a.emit(Event{Stage: StageClean, Status: StatusDone})

	record := Record{Schema: recordSchemaVersion}
	for _, step := range steps {
		a.emit(Event{File: step.display, Stage: step.stage, Status: StatusWorking})
		digest, err := copyFile(step.src, step.dst)
		if err != nil {
			a.emit(Event{File: step.display, Stage: step.stage, Status: StatusError, Err: err})
			return Result{}, err
		}
		record.Files = append(record.Files, FileDigest{Path: step.rel, SHA256: digest})
		a.emit(Event{File: step.display, Stage: step.stage, Status: StatusDone})
	}
	record.finalize()

	return Result{FileCount: len(record.Files), Record: record}, nil
}

// plan walks the inputs and produces the ordered copy list: index.html, the
// src/ tree minus the engine crate, the compiled engine output if present,
// then assets if present.
func (a *Assembler) plan() ([]copyStep, error) {
	var steps []copyStep

	if _, err := os.Stat(a.Layout.IndexHTML); err != nil {
		return nil, fmt.Errorf("entry document: %w", err)
	}
	steps = append(steps, copyStep{
		stage:   StageIndex,
		src:     a.Layout.IndexHTML,
		dst:     filepath.Join(a.Layout.Dist, "index.html"),
		rel:     "index.html",
		display: "index.html",
	})

	srcSteps, err := a.planTree(StageSource, a.Layout.SrcDir, "src", a.Layout.WasmCrate)
	if err != nil {
		return nil, err
	}
	steps = append(steps, srcSteps...)

	if info, err := os.Stat(a.Layout.WasmPkg); err == nil && info.IsDir() {
		pkgSteps, err := a.planTree(StageEngine, a.Layout.WasmPkg, "src/wasm/pkg", "")
		if err != nil {
			return nil, err
		}
		steps = append(steps, pkgSteps...)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat %q: %w", a.Layout.WasmPkg, err)
	}

	if info, err := os.Stat(a.Layout.Assets); err == nil && info.IsDir() {
		assetSteps, err := a.planTree(StageAssets, a.Layout.Assets, "assets", "")
		if err != nil {
			return nil, err
		}
		steps = append(steps, assetSteps...)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat %q: %w", a.Layout.Assets, err)
	}

	return steps, nil
}

func (a *Assembler) planTree(stage Stage, srcRoot, distPrefix, skipDir string) ([]copyStep, error) {
	var steps []copyStep
	err := filepath.WalkDir(srcRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDir != "" && path == skipDir {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(srcRoot, path)
		if err != nil {
			return err
		}
		relSlash := distPrefix + "/" + filepath.ToSlash(rel)
		steps = append(steps, copyStep{
			stage:   stage,
			src:     path,
			dst:     filepath.Join(a.Layout.Dist, filepath.FromSlash(relSlash)),
			rel:     relSlash,
			display: relSlash,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %q: %w", srcRoot, err)
	}
	sort.Slice(steps, func(i, j int) bool { return steps[i].rel < steps[j].rel })
	return steps, nil
}

func (a *Assembler) emit(evt Event) {
	if a.Progress == nil {
		return
	}
	a.Progress.OnEvent(evt)
}

// copyFile copies src to dst verbatim, creating parent directories, and
// returns the content digest used for the assembly record.
func copyFile(src, dst string) ([]byte, error) {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %q: %w", filepath.Dir(dst), err)
	}
	in, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat %q: %w", src, err)
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return nil, fmt.Errorf("failed to create %q: %w", dst, err)
	}

	hash := sha256.New()
	if _, err := io.Copy(io.MultiWriter(out, hash), in); err != nil {
		_ = out.Close()
		return nil, fmt.Errorf("failed to copy %q: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("failed to close %q: %w", dst, err)
	}
	return hash.Sum(nil), nil
}
