package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mbweb/internal/diag"
	"mbweb/internal/graph"
)

var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Statically validate the module graph and component contracts",
	Long: "Verify that every relative import resolves, every expected module exists with its " +
		"pinned export, no component reaches back into the entry point, and every UI component " +
		"satisfies the structural contract. All findings of a run are reported together.",
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	layout, err := layoutFromArgs(args)
	if err != nil {
		return err
	}
	quiet, err := quietFlag(cmd)
	if err != nil {
		return err
	}

	bag, err := graph.Validate(graph.Options{Root: layout.Root})
	if err != nil {
		return err
	}
	printDiagnostics(bag)

	if bag.HasErrors() {
		return fmt.Errorf("validation failed: %d finding(s)", bag.Len()+bag.Dropped())
	}
	if !quiet {
		if bag.Len() > 0 {
			_, _ = fmt.Fprintf(os.Stdout, "validation passed with %d warning(s)\n", bag.Len())
		} else {
			_, _ = fmt.Fprintln(os.Stdout, "validation passed")
		}
	}
	return nil
}

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
)

func printDiagnostics(bag *diag.Bag) {
	for _, d := range bag.Items() {
		label := severityLabel(d.Severity)
		if d.File != "" {
			_, _ = fmt.Fprintf(os.Stderr, "%s %s [%s] %s\n", label, d.File, d.Code, d.Message)
		} else {
			_, _ = fmt.Fprintf(os.Stderr, "%s [%s] %s\n", label, d.Code, d.Message)
		}
		for _, note := range d.Notes {
			_, _ = fmt.Fprintf(os.Stderr, "    note: %s %s\n", note.File, note.Msg)
		}
	}
	if dropped := bag.Dropped(); dropped > 0 {
		_, _ = fmt.Fprintf(os.Stderr, "output truncated: %d more finding(s) over the limit\n", dropped)
	}
}

func severityLabel(sev diag.Severity) string {
	switch sev {
	case diag.SevError:
		return errorColor.Sprint("error:")
	case diag.SevWarning:
		return warningColor.Sprint("warning:")
	default:
		return infoColor.Sprint("info:")
	}
}
