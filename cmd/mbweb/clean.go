package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mbweb/internal/project"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [path]",
	Short: "Remove generated artifacts (dist tree and compiled engine output)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	layout, err := layoutFromArgs(args)
	if err != nil {
		return err
	}
	quiet, err := quietFlag(cmd)
	if err != nil {
		return err
	}
	return cleanArtifacts(layout, quiet)
}

// cleanArtifacts makes both generated directories absent. Already-absent
// targets are not an error.
func cleanArtifacts(layout project.Layout, quiet bool) error {
	removed := 0
	for _, target := range []string{layout.Dist, layout.WasmPkg} {
		info, err := os.Stat(target)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to stat %q: %w", target, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%q is not a directory", target)
		}
		if err := os.RemoveAll(target); err != nil {
			return fmt.Errorf("failed to remove %q: %w", target, err)
		}
		removed++
		if !quiet {
			_, _ = fmt.Fprintf(os.Stdout, "removed %s\n", layout.Rel(target))
		}
	}
	if removed == 0 && !quiet {
		_, _ = fmt.Fprintln(os.Stdout, "nothing to remove")
	}
	return nil
}
