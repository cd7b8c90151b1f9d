package main

import (
	"os"
	"testing"

	"tsnip/internal/cli"
)

func TestUsePlain(t *testing.T) {
	// A pipe is not a terminal, so the plain path must be chosen even
	// without --no-animation.
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	if !usePlain(&cli.Config{}, w) {
		t.Error("expected plain output when stdout is a pipe")
	}
	if !usePlain(&cli.Config{NoAnimation: true}, w) {
		t.Error("expected plain output when --no-animation is set")
	}
}
