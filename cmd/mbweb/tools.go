package main

import (
	"github.com/spf13/cobra"

	"mbweb/internal/project"
	"mbweb/internal/toolrun"
)

// The lint/fmt/test verbs delegate to external tools and propagate their
// exit codes as-is.

var lintCmd = &cobra.Command{
	Use:   "lint [path]",
	Short: "Run the external linter over the hand-written sources",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, args, project.Layout.LintCommand)
	},
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [path]",
	Short: "Run the external formatter over the hand-written sources",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, args, project.Layout.FmtCommand)
	},
}

var testCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Run the external test runner",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, args, project.Layout.TestCommand)
	},
}

func runTool(cmd *cobra.Command, args []string, command func(project.Layout) []string) error {
	cmd.SilenceUsage = true

	layout, err := layoutFromArgs(args)
	if err != nil {
		return err
	}
	return toolrun.Run(cmd.Context(), command(layout), toolrun.Options{Dir: layout.Root})
}
