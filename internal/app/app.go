package app

import (
	"errors"
	"fmt"
	"runtime/debug"

	"tsnip/internal/cli"
	"tsnip/internal/model"
	"tsnip/internal/remover"
)

// App orchestrates the entire application logic.
type App struct {
	cfg *cli.Config
}

// DetailedError enhances a standard error with a stack trace.
type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string {
	return e.Err.Error()
}

// Stack returns the stack trace carried by err, or nil when err holds none.
func Stack(err error) []byte {
	var detailed *DetailedError
	if errors.As(err, &detailed) {
		return detailed.Stack
	}
	return nil
}

// New creates a new App instance.
func New(cfg *cli.Config) *App {
	return &App{cfg: cfg}
}

// Execute runs the removal against the fixed target file.
func (a *App) Execute() (summary model.Summary, err error) {
	// Centralized panic recovery to provide stack traces for unexpected errors.
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{
				Err:   fmt.Errorf("internal panic: %v", r),
				Stack: debug.Stack(),
			}
		}
	}()

	return remover.Remove(remover.TargetFile)
}
