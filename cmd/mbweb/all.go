package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mbweb/internal/observ"
)

var allCmd = &cobra.Command{
	Use:   "all [path]",
	Short: "Full build: compile the engine, then assemble dist",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAll,
}

func init() {
	allCmd.Flags().Bool("print-commands", false, "print external commands before running them")
	allCmd.Flags().String("ui", "auto", "progress display (auto|on|off)")
}

func runAll(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	layout, err := layoutFromArgs(args)
	if err != nil {
		return err
	}
	printCommands, err := cmd.Flags().GetBool("print-commands")
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

	phase := timer.Begin("wasm")
	if err := compileEngine(cmd, layout, printCommands, quiet); err != nil {
		return err
	}
	timer.End(phase, "")

	phase = timer.Begin("dist")
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
