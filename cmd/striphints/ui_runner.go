package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"striphints/internal/driver"
	"striphints/internal/ui"
)

type dirOutcome struct {
	results []driver.DirResult
	err     error
}

func runStripDirWithUI(ctx context.Context, title string, files []string, dir string, opts driver.Options, jobs int) ([]driver.DirResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan dirOutcome, 1)

	go func() {
		res, err := driver.StripDir(ctx, dir, opts, jobs, driver.ChannelSink(events))
		outcomeCh <- dirOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
