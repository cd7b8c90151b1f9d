package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"tsnip/internal/app"
	"tsnip/internal/cli"
	"tsnip/internal/tui"
	"tsnip/internal/ui"
)

func main() {
	cfg := cli.ParseFlags()
	application := app.New(cfg)

	if usePlain(cfg, os.Stdout) {
		runPlain(application, cfg)
		return
	}

	model := tui.New(application, cfg)
	p := tea.NewProgram(model)
	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		os.Exit(1)
	}
}

// usePlain reports whether to skip the spinner TUI. The plain path is
// forced when stdout is not a terminal so a piped run still gets the bare
// status line.
func usePlain(cfg *cli.Config, stdout *os.File) bool {
	return cfg.NoAnimation || !isatty.IsTerminal(stdout.Fd())
}

// runPlain executes without the spinner TUI. The status line still goes
// to stdout in every terminating path.
func runPlain(application *app.App, cfg *cli.Config) {
	summary, err := application.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if stack := app.Stack(err); stack != nil {
			os.Stderr.Write(stack)
		}
		os.Exit(1)
	}
	ui.PrintPlain(summary, cfg.Quiet)
}
