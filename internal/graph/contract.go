package graph

import (
	"fmt"
	"strings"

	"mbweb/internal/diag"
	"mbweb/internal/manifest"
	"mbweb/internal/scan"
)

// CheckContracts verifies the structural contract of every UI-component
// entry in the manifest. The four markers are checked independently so one
// run reports every violation of a component at once. A missing component
// file fails all four markers (and is separately reported by the manifest
// pass).
func CheckContracts(root string, entries []manifest.Entry, r diag.Reporter) error {
	for _, e := range entries {
		if !e.IsComponent() {
			continue
		}
		text, err := readSource(root, e.Path)
		if err != nil {
			return err
		}
		checkContract(e, text, r)
	}
	return nil
}

func checkContract(e manifest.Entry, text string, r diag.Reporter) {
	if !strings.Contains(text, "extends HTMLElement") {
		r.Report(diag.NewError(diag.ContractMissingBaseClass, e.Path,
			"component class does not extend HTMLElement"))
	}
	if !strings.Contains(text, "attachShadow(") {
		r.Report(diag.NewError(diag.ContractMissingShadow, e.Path,
			"component does not attach a shadow root"))
	}
	if !strings.Contains(text, "connectedCallback(") {
		r.Report(diag.NewError(diag.ContractMissingLifecycle, e.Path,
			"component does not define connectedCallback"))
	}
	if !containsExport(scan.Exports(text), e.Export) {
		r.Report(diag.NewError(diag.ContractMissingExport, e.Path,
			fmt.Sprintf("component does not export class %q", e.Export)))
	}
}
