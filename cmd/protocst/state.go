package main

import (
	"context"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// globalState is everything a command touches outside of its arguments.
// Tests swap in an in-memory file system and buffers.
type globalState struct {
	ctx    context.Context
	fs     afero.Fs
	stdout io.Writer
	stderr io.Writer
	logger *logrus.Logger
	cfg    config

	noColor bool
}

// paint returns a color that honors --no-color.
func (gs *globalState) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if gs.noColor {
		c.DisableColor()
	}
	return c
}

func newGlobalState(ctx context.Context) *globalState {
	return &globalState{
		ctx:    ctx,
		fs:     afero.NewOsFs(),
		stdout: os.Stdout,
		stderr: os.Stderr,
		logger: &logrus.Logger{
			Out:       os.Stderr,
			Formatter: &logrus.TextFormatter{DisableTimestamp: true},
			Hooks:     make(logrus.LevelHooks),
			Level:     logrus.InfoLevel,
		},
		cfg: defaultConfig(),
	}
}
