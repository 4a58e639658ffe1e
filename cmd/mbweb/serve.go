package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"mbweb/internal/devserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve [path]",
	Short: "Serve the project root with cross-origin isolation headers",
	Long:  "Start a local dev server. COOP/COEP headers are injected on every response so SharedArrayBuffer is available to the engine.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (default from mbweb.toml, else 8000)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	layout, err := layoutFromArgs(args)
	if err != nil {
		return err
	}
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return err
	}
	if port == 0 {
		port = layout.Config.Serve.Port
	}
	quiet, err := quietFlag(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		_, _ = fmt.Fprintf(os.Stdout, "serving %s on http://localhost:%d\n", layout.Root, port)
	}
	server := &devserver.Server{Root: layout.Root, Port: port, Quiet: quiet}
	if err := server.ListenAndServe(ctx); err != nil {
		return err
	}
	if !quiet {
		_, _ = fmt.Fprintln(os.Stdout, "server stopped")
	}
	return nil
}
