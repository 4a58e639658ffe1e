// Package main implements the mbweb CLI.
package main

import (
	"errors"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"mbweb/internal/toolrun"
	"mbweb/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "mbweb",
	Short: "Mandelbulb3D Web build and validation toolchain",
	Long:  `mbweb builds the WASM compute engine, assembles the deployable dist tree, serves it with cross-origin isolation headers, and statically validates the hand-written module graph.`,
	// Вызов без подкоманды — это ошибка, не help.
	RunE: func(*cobra.Command, []string) error {
		return errors.New("no command given")
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		mode, err := cmd.Root().PersistentFlags().GetString("color")
		if err != nil {
			return err
		}
		return applyColorMode(mode)
	},
}

func init() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	// Добавляем команды
	rootCmd.AddCommand(wasmCmd)
	rootCmd.AddCommand(distCmd)
	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
}

// main executes the root command; on failure the process exits with the
// propagated exit code (the delegated tool's code for external failures).
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(toolrun.ExitCode(err))
	}
}

func applyColorMode(mode string) error {
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "", "auto":
		color.NoColor = !isTerminal(os.Stdout)
	default:
		return errInvalidColorMode(mode)
	}
	return nil
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
