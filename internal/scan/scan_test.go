package scan

import (
	"reflect"
	"testing"
)

func TestExportsFourDeclarationForms(t *testing.T) {
	text := `
export class AppState {}
export function hexToRgb(hex) {}
export const DEFAULT_WIDTH = 800;
export let renderCount = 0;
`
	got := Exports(text)
	want := []string{"AppState", "hexToRgb", "DEFAULT_WIDTH", "renderCount"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Exports = %v, want %v", got, want)
	}
}

func TestExportsIgnoresDefaultAndReExports(t *testing.T) {
	text := `
export default class Hidden {}
export { AppState } from './state.js';
`
	got := Exports(text)
	// "default class" не матчится на четыре поддерживаемые формы
	if len(got) != 0 {
		t.Fatalf("Exports = %v, want none", got)
	}
}

func TestImportsPreserveOrderAndDuplicates(t *testing.T) {
	text := `
import { AppState } from './core/engine/state.js';
import { createDefaultHeader } from "./core/types/header.js";
import { AppState as Again } from './core/engine/state.js';
`
	got := Imports(text)
	want := []string{
		"./core/engine/state.js",
		"./core/types/header.js",
		"./core/engine/state.js",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Imports = %v, want %v", got, want)
	}
}

func TestImportsNotConfusedByComments(t *testing.T) {
	text := `
// import { Old } from './removed.js';
/* export class Ghost {} */
import { Real } from './real.js';
export class Live {}
`
	imports := Imports(text)
	if !reflect.DeepEqual(imports, []string{"./real.js"}) {
		t.Fatalf("Imports = %v, want [./real.js]", imports)
	}
	exports := Exports(text)
	if !reflect.DeepEqual(exports, []string{"Live"}) {
		t.Fatalf("Exports = %v, want [Live]", exports)
	}
}

func TestImportsNotConfusedByStringLiterals(t *testing.T) {
	text := `
const doc = "see // not a comment";
const tmpl = ` + "`" + `from './fake.js'` + "`" + `;
import { Real } from './real.js';
`
	imports := Imports(text)
	if !reflect.DeepEqual(imports, []string{"./real.js"}) {
		t.Fatalf("Imports = %v, want [./real.js]", imports)
	}
}

func TestStringLiteralBodiesAreData(t *testing.T) {
	text := `
const hint = "write export class Ghost to declare one";
const path = 'from ./fake.js';
throw new Error("from './also-fake.js'");
import { Real } from './real.js';
export class Live {}
`
	imports := Imports(text)
	if !reflect.DeepEqual(imports, []string{"./real.js"}) {
		t.Fatalf("Imports = %v, want [./real.js]", imports)
	}
	exports := Exports(text)
	if !reflect.DeepEqual(exports, []string{"Live"}) {
		t.Fatalf("Exports = %v, want [Live]", exports)
	}
}

func TestFromSpecifierSurvivesStringBlanking(t *testing.T) {
	// notfrom не считается за from: граница слова обязательна
	text := `
notfrom './looks-like-import.js';
export { hexToRgb } from './params.js';
import Wide from
    "./multiline.js";
`
	got := Imports(text)
	want := []string{"./params.js", "./multiline.js"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Imports = %v, want %v", got, want)
	}
}

func TestEmptyTextYieldsNothing(t *testing.T) {
	if got := Exports(""); got != nil {
		t.Fatalf("Exports(\"\") = %v, want nil", got)
	}
	if got := Imports(""); got != nil {
		t.Fatalf("Imports(\"\") = %v, want nil", got)
	}
}
