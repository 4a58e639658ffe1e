package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mbweb/internal/observ"
	"mbweb/internal/project"
	"mbweb/internal/toolrun"
)

var wasmCmd = &cobra.Command{
	Use:   "wasm [path]",
	Short: "Compile the Rust engine crate to WASM",
	Long:  "Compile the engine crate via the external WASM compiler (wasm-pack by default, override in mbweb.toml [tools].wasm).",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWasm,
}

func init() {
	wasmCmd.Flags().Bool("print-commands", false, "print external commands before running them")
}

func runWasm(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	layout, err := layoutFromArgs(args)
	if err != nil {
		return err
	}
	printCommands, err := cmd.Flags().GetBool("print-commands")
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
	if timings {
		_, _ = fmt.Fprint(os.Stdout, timer.Summary())
	}
	return nil
}

func compileEngine(cmd *cobra.Command, layout project.Layout, printCommands, quiet bool) error {
	if !quiet {
		_, _ = fmt.Fprintf(os.Stdout, "compiling engine crate %s\n", layout.Rel(layout.WasmCrate))
	}
	if err := toolrun.Run(cmd.Context(), layout.WasmCommand(), toolrun.Options{
		Dir:  layout.Root,
		Echo: printCommands,
	}); err != nil {
		return err
	}
	if !quiet {
		_, _ = fmt.Fprintf(os.Stdout, "engine output at %s\n", layout.Rel(layout.WasmPkg))
	}
	return nil
}
