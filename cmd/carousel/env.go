package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Environment bundles the process-level writers and logger so commands stay
// testable without touching os.Stdout/os.Stderr directly.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *log.Logger
}

func newEnvironment() *Environment {
	return &Environment{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false}),
	}
}

// applyVerbosity adjusts the log level from the common flags. Quiet wins over
// verbose when both are set.
func (e *Environment) applyVerbosity(f commonFlags) {
	switch {
	case f.quiet:
		e.Logger.SetLevel(log.ErrorLevel)
	case f.verbose:
		e.Logger.SetLevel(log.DebugLevel)
	default:
		e.Logger.SetLevel(log.InfoLevel)
	}
}
