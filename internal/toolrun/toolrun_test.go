package toolrun

import (
	"context"
	"errors"
	"testing"
)

func TestRunSuccess(t *testing.T) {
	err := Run(context.Background(), []string{"sh", "-c", "exit 0"}, Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if code := ExitCode(err); code != 0 {
		t.Fatalf("ExitCode = %d, want 0", code)
	}
}

func TestRunPropagatesExitCode(t *testing.T) {
	err := Run(context.Background(), []string{"sh", "-c", "exit 3"}, Options{})
	if err == nil {
		t.Fatalf("Run should fail for exit 3")
	}
	if code := ExitCode(err); code != 3 {
		t.Fatalf("ExitCode = %d, want 3", code)
	}
}

func TestRunMissingTool(t *testing.T) {
	err := Run(context.Background(), []string{"definitely-not-a-real-tool-mbweb"}, Options{})
	if err == nil {
		t.Fatalf("Run should fail for a missing tool")
	}
	if code := ExitCode(err); code != 1 {
		t.Fatalf("ExitCode = %d, want 1 for lookup failure", code)
	}
}

func TestRunEmptyCommand(t *testing.T) {
	if err := Run(context.Background(), nil, Options{}); err == nil {
		t.Fatalf("Run should reject an empty command")
	}
}

func TestExitCodeForForeignError(t *testing.T) {
	if code := ExitCode(errors.New("boom")); code != 1 {
		t.Fatalf("ExitCode = %d, want 1", code)
	}
}
