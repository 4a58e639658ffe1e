// Package toolrun invokes delegated external tools (engine compiler,
// linter, formatter, test runner) as blocking child processes. Exit codes
// are propagated as-is, never reinterpreted. No timeout is imposed: a hung
// tool hangs the command, which is acceptable for a local developer tool.
package toolrun

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Options configures one invocation.
type Options struct {
	// Dir is the child's working directory; empty means inherit.
	Dir string
	// Echo prints the command line before running it.
	Echo bool
}

// Run executes argv with stdio wired through. The returned error is nil on
// exit 0, the raw *exec.ExitError on a non-zero exit, or a lookup/start
// failure.
func Run(ctx context.Context, argv []string, opts Options) error {
	if len(argv) == 0 {
		return errors.New("missing command")
	}
	if _, err := exec.LookPath(argv[0]); err != nil {
		return fmt.Errorf("%s not found in PATH: %w", argv[0], err)
	}
	if opts.Echo {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", strings.Join(argv, " "))
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = opts.Dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// ExitCode extracts the child exit code from a Run error: 0 for nil, the
// child's code for *exec.ExitError, 1 for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
