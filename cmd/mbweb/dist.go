package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mbweb/internal/dist"
	"mbweb/internal/observ"
	"mbweb/internal/project"
)

var distCmd = &cobra.Command{
	Use:   "dist [path]",
	Short: "Assemble the deployable dist tree",
	Long:  "Rebuild dist/ from scratch: entry document, hand-written sources without the engine crate, compiled engine output if present, static assets.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDist,
}

func init() {
	distCmd.Flags().String("ui", "auto", "progress display (auto|on|off)")
}

func runDist(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	layout, err := layoutFromArgs(args)
	if err != nil {
		return err
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	uiModeValue, err := readUIMode(uiValue)
	if err != nil {
		return err
	}
	quiet, err := quietFlag(cmd)
	if err != nil {
		return err
	}
	timings, err := timingsFlag(cmd)
	if err != nil {
		return err
	}

	timer := observ.NewTimer()
	phase := timer.Begin("dist")
	result, err := assembleDist(layout, uiModeValue, quiet)
	if err != nil {
		return err
	}
	timer.End(phase, fmt.Sprintf("%d files", result.FileCount))
	if timings {
		_, _ = fmt.Fprint(os.Stdout, timer.Summary())
	}
	return nil
}

func assembleDist(layout project.Layout, mode uiMode, quiet bool) (dist.Result, error) {
	assembler := &dist.Assembler{Layout: layout}

	var result dist.Result
	var err error
	if shouldUseTUI(mode) && !quiet {
		result, err = runAssembleWithUI("assembling dist", assembler)
	} else {
		result, err = assembler.Assemble()
	}
	if err != nil {
		return dist.Result{}, err
	}

	// Запись об успешной сборке — сигнал для повторных прогонов, не для корректности.
	if store, storeErr := dist.OpenRecordStore("mbweb"); storeErr == nil {
		if putErr := store.Put(layout.Root, result.Record); putErr != nil && !quiet {
			_, _ = fmt.Fprintf(os.Stderr, "warning: failed to store assembly record: %v\n", putErr)
		}
	}

	if !quiet {
		_, _ = fmt.Fprintf(os.Stdout, "dist assembled (%d files) at %s\n",
			result.FileCount, layout.Rel(layout.Dist))
	}
	return result, nil
}
