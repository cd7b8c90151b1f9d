package cli

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Config holds all the command-line flag values. The target file and the
// section markers are fixed; only the output presentation is adjustable.
type Config struct {
	Quiet       bool
	NoAnimation bool
}

// ParseFlags defines and parses command-line flags using pflag.
func ParseFlags() *Config {
	cfg := &Config{}

	pflag.BoolVarP(&cfg.Quiet, "quiet", "q", false, "Only print the status line, without the file detail.")
	pflag.BoolVar(&cfg.NoAnimation, "no-animation", false, "Disable the loading spinner and print plainly.")

	pflag.Usage = func() {
		fmt.Println("Usage: tsnip [flags]")
		fmt.Println("\nDelete the marked Testimonials section from index.html in the current directory.")
		fmt.Println("\nFlags:")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	return cfg
}
