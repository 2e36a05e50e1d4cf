package main

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/qtyi/luna-sub005/internal/driver"
	"github.com/qtyi/luna-sub005/internal/source"
	"github.com/qtyi/luna-sub005/internal/ui"
)

type dirOutcome struct {
	fileSet *source.FileSet
	results []driver.ParseDirResult
	err     error
}

// diagnoseDirWithUI runs DiagnoseDir while a Bubble Tea progress view
// renders its events on out.
func diagnoseDirWithUI(ctx context.Context, out io.Writer, title string, files []string, dir string, opts driver.Options) (*source.FileSet, []driver.ParseDirResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan dirOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		fs, results, err := driver.DiagnoseDir(ctx, dir, optsCopy)
		outcomeCh <- dirOutcome{fileSet: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(out))
	_, uiErr := program.Run()
	// Модель могла выйти раньше (ctrl+c): дочитываем события, чтобы воркеры не встали.
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
