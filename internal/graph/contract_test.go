package graph

import (
	"testing"

	"mbweb/internal/diag"
	"mbweb/internal/manifest"
	"mbweb/internal/testkit"
)

func checkContracts(t *testing.T, root string) *diag.Bag {
	t.Helper()
	bag := diag.NewBag(DefaultMaxDiagnostics)
	if err := CheckContracts(root, manifest.Entries(), diag.BagReporter{Bag: bag}); err != nil {
		t.Fatalf("CheckContracts: %v", err)
	}
	return bag
}

func TestContractsPassOnCleanComponents(t *testing.T) {
	root := t.TempDir()
	testkit.WriteProject(t, root)
	bag := checkContracts(t, root)
	if bag.Len() != 0 {
		t.Fatalf("clean components produced %+v", bag.Items())
	}
}

func TestContractMarkersReportedIndependently(t *testing.T) {
	root := t.TempDir()
	testkit.WriteProject(t, root)
	// нет shadow root и lifecycle, но базовый класс и экспорт на месте
	testkit.WriteFile(t, root, "src/components/controls/mb3d-controls.js",
		"export class MB3DControls extends HTMLElement {\n}\n")

	bag := checkContracts(t, root)
	if len(findCode(bag, diag.ContractMissingShadow)) != 1 {
		t.Fatalf("want missing-shadow, got %+v", bag.Items())
	}
	if len(findCode(bag, diag.ContractMissingLifecycle)) != 1 {
		t.Fatalf("want missing-lifecycle, got %+v", bag.Items())
	}
	if len(findCode(bag, diag.ContractMissingBaseClass)) != 0 {
		t.Fatalf("base class is present, got %+v", bag.Items())
	}
	if len(findCode(bag, diag.ContractMissingExport)) != 0 {
		t.Fatalf("export is present, got %+v", bag.Items())
	}
}

func TestContractWrongClassName(t *testing.T) {
	root := t.TempDir()
	testkit.WriteProject(t, root)
	testkit.WriteFile(t, root, "src/components/color/mb3d-color-picker.js",
		testkit.ComponentSource("ColorPicker"))

	bag := checkContracts(t, root)
	found := findCode(bag, diag.ContractMissingExport)
	if len(found) != 1 || found[0].File != "src/components/color/mb3d-color-picker.js" {
		t.Fatalf("want missing-export for the color picker, got %+v", found)
	}
}

func TestContractMissingFileFailsAllMarkers(t *testing.T) {
	root := t.TempDir()
	testkit.WriteProject(t, root)
	testkit.Remove(t, root, "src/components/app/mb3d-app.js")

	bag := checkContracts(t, root)
	count := 0
	for _, d := range bag.Items() {
		if d.File == "src/components/app/mb3d-app.js" {
			count++
		}
	}
	if count != 4 {
		t.Fatalf("missing component must fail all four markers, got %d (%+v)", count, bag.Items())
	}
}
