package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"arialint/internal/driver"
	"arialint/internal/ui"
)

type diagnoseOutcome struct {
	result *driver.DiagnoseResult
	err    error
}

// runDiagnoseWithUI runs the driver in the background and renders its
// progress events until the run finishes.
func runDiagnoseWithUI(ctx context.Context, title, target string, opts driver.Options) (*driver.DiagnoseResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan diagnoseOutcome, 1)

	go func() {
		runOpts := opts
		runOpts.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.Diagnose(ctx, target, nil, runOpts)
		outcomeCh <- diagnoseOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
