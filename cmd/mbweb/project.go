package main

import (
	"github.com/spf13/cobra"

	"mbweb/internal/project"
)

// layoutFromArgs resolves the project layout for the optional positional
// path argument shared by most commands; "." when omitted.
func layoutFromArgs(args []string) (project.Layout, error) {
	startDir := "."
	if len(args) > 0 && args[0] != "" {
		startDir = args[0]
	}
	return project.Find(startDir)
}

func quietFlag(cmd *cobra.Command) (bool, error) {
	return cmd.Root().PersistentFlags().GetBool("quiet")
}

func timingsFlag(cmd *cobra.Command) (bool, error) {
	return cmd.Root().PersistentFlags().GetBool("timings")
}
