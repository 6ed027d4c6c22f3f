package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"jsmin/internal/buildpipeline"
	"jsmin/internal/driver"
	"jsmin/internal/source"
	"jsmin/internal/ui"
)

type minifyOutcome struct {
	fs      *source.FileSet
	results []driver.Result
	err     error
}

// runMinifyWithUI runs MinifyAll in the background and renders its
// progress events until the run closes the channel.
func runMinifyWithUI(ctx context.Context, inputs []driver.Input, opts driver.Options, jobs int) (*source.FileSet, []driver.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	events := make(chan buildpipeline.Event, 256)
	outcomeCh := make(chan minifyOutcome, 1)

	go func() {
		opts.Progress = buildpipeline.ChannelSink{Ch: events}
		fs, results, err := driver.MinifyAll(ctx, inputs, opts, jobs)
		outcomeCh <- minifyOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	files := make([]string, len(inputs))
	for i, in := range inputs {
		files[i] = in.Path
	}
	model := ui.NewProgressModel("minify", files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	// ctrl+c останавливает ещё не начатые файлы
	cancel()
	// дочитываем события, чтобы воркеры не встали на канале
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		return outcome.fs, outcome.results, uiErr
	}
	return outcome.fs, outcome.results, outcome.err
}
