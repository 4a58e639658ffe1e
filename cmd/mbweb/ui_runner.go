package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"mbweb/internal/dist"
	"mbweb/internal/ui"
)

// runAssembleWithUI runs the assembler in the background while the terminal
// shows per-file progress. The assembler's outcome wins over UI errors.
func runAssembleWithUI(title string, assembler *dist.Assembler) (dist.Result, error) {
	files, err := assembler.Plan()
	if err != nil {
		return dist.Result{}, err
	}

	events := make(chan dist.Event, 256)
	var result dist.Result

	var g errgroup.Group
	g.Go(func() error {
		defer close(events)
		withProgress := *assembler
		withProgress.Progress = dist.ChannelSink{Ch: events}
		res, err := withProgress.Assemble()
		result = res
		return err
	})

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	if err := g.Wait(); err != nil {
		return result, err
	}
	if uiErr != nil {
		return result, uiErr
	}
	return result, nil
}
