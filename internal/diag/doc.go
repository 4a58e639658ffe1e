// Package diag defines the diagnostic model shared by the module-graph
// validator and the component contract checker: severities, stable codes,
// and the Bag aggregate that collects every finding of a run so a single
// invocation surfaces the complete defect set.
package diag
