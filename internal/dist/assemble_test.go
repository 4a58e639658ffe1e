package dist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mbweb/internal/project"
	"mbweb/internal/testkit"
)

func newAssembler(t *testing.T) (*Assembler, string) {
	t.Helper()
	root := t.TempDir()
	testkit.WriteProject(t, root)
	return &Assembler{Layout: project.NewLayout(root)}, root
}

func mustAssemble(t *testing.T, a *Assembler) Result {
	t.Helper()
	res, err := a.Assemble()
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	return res
}

func TestAssembleProducesExpectedTree(t *testing.T) {
	a, root := newAssembler(t)
	res := mustAssemble(t, a)

	for _, rel := range []string{
		"index.html",
		"src/main.js",
		"src/core/engine/state.js",
		"src/components/app/mb3d-app.js",
		"assets/favicon.svg",
	} {
		if _, err := os.Stat(filepath.Join(root, "dist", filepath.FromSlash(rel))); err != nil {
			t.Fatalf("dist missing %s: %v", rel, err)
		}
	}
	if res.FileCount == 0 {
		t.Fatalf("FileCount = 0, want > 0")
	}
	if int(res.Record.Count) != res.FileCount {
		t.Fatalf("record count %d != file count %d", res.Record.Count, res.FileCount)
	}
}

func TestAssembleExcludesEngineNativeSource(t *testing.T) {
	a, root := newAssembler(t)
	mustAssemble(t, a)

	if _, err := os.Stat(filepath.Join(root, "dist", "src", "wasm")); !os.IsNotExist(err) {
		t.Fatalf("dist must not contain the engine native-source subtree")
	}
}

func TestAssembleOmitsAbsentEngineOutput(t *testing.T) {
	a, _ := newAssembler(t)
	// pkg ещё не собран — assemble обязан пройти без ошибок
	res := mustAssemble(t, a)
	for _, f := range res.Record.Files {
		if strings.HasPrefix(f.Path, "src/wasm/") {
			t.Fatalf("record contains engine output %q without a build", f.Path)
		}
	}
}

func TestAssembleIncludesBuiltEngineOutput(t *testing.T) {
	a, root := newAssembler(t)
	testkit.WriteFile(t, root, "src/wasm/pkg/mb3d_wasm.js", "export default function init() {}\n")
	testkit.WriteFile(t, root, "src/wasm/pkg/mb3d_wasm_bg.wasm", "\x00asm")

	mustAssemble(t, a)
	for _, rel := range []string{"src/wasm/pkg/mb3d_wasm.js", "src/wasm/pkg/mb3d_wasm_bg.wasm"} {
		if _, err := os.Stat(filepath.Join(root, "dist", filepath.FromSlash(rel))); err != nil {
			t.Fatalf("dist missing engine output %s: %v", rel, err)
		}
	}
	// исходники движка всё равно не копируются
	if _, err := os.Stat(filepath.Join(root, "dist", "src", "wasm", "Cargo.toml")); !os.IsNotExist(err) {
		t.Fatalf("dist must not contain Cargo.toml")
	}
}

func TestAssembleIsIdempotent(t *testing.T) {
	a, _ := newAssembler(t)
	first := mustAssemble(t, a)
	second := mustAssemble(t, a)
	if !first.Record.Equal(second.Record) {
		t.Fatalf("two runs over unchanged inputs diverged:\n%+v\n%+v", first.Record, second.Record)
	}
}

func TestAssembleDiscardsStaleOutput(t *testing.T) {
	a, root := newAssembler(t)
	testkit.WriteFile(t, root, "dist/leftover/garbage.txt", "stale")

	mustAssemble(t, a)
	if _, err := os.Stat(filepath.Join(root, "dist", "leftover")); !os.IsNotExist(err) {
		t.Fatalf("stale content survived assembly")
	}
}

func TestAssembleFailsWithoutEntryDocument(t *testing.T) {
	a, root := newAssembler(t)
	testkit.Remove(t, root, "index.html")

	if _, err := a.Assemble(); err == nil {
		t.Fatalf("Assemble should fail without index.html")
	}
}

func TestAssembleEmitsProgressEvents(t *testing.T) {
	a, _ := newAssembler(t)
	plan, err := a.Plan()
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	ch := make(chan Event, 256)
	a.Progress = ChannelSink{Ch: ch}
	mustAssemble(t, a)
	close(ch)

	done := map[string]bool{}
	for evt := range ch {
		if evt.Status == StatusDone && evt.File != "" {
			done[evt.File] = true
		}
	}
	for _, file := range plan {
		if !done[file] {
			t.Fatalf("no done event for planned file %q", file)
		}
	}
}

func TestRecordStoreRoundTrip(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	store, err := OpenRecordStore("mbweb-test")
	if err != nil {
		t.Fatalf("OpenRecordStore: %v", err)
	}

	a, root := newAssembler(t)
	res := mustAssemble(t, a)
	if err := store.Put(root, res.Record); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok, err := store.Get(root)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatalf("Get found nothing after Put")
	}
	if !got.Equal(res.Record) {
		t.Fatalf("stored record differs from original")
	}

	if _, ok, _ := store.Get(filepath.Join(root, "elsewhere")); ok {
		t.Fatalf("Get for unknown root should miss")
	}
}
