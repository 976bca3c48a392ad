package main

import (
	"fmt"
	"os"
	"testing"

	carousel "github.com/alnah/go-carousel"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"generic", fmt.Errorf("boom"), ExitGeneral},
		{"missing asset", fmt.Errorf("setup: %w", carousel.ErrMissingAsset), ExitRender},
		{"pdf generation", carousel.ErrPDFGeneration, ExitRender},
		{"file not found", fmt.Errorf("open: %w", os.ErrNotExist), ExitIO},
		{"read deck", ErrReadDeck, ExitIO},
		{"read background", ErrReadBackground, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"no input", ErrNoInput, ExitUsage},
		{"unknown command", ErrUnknownCommand, ExitUsage},
		{"unknown format", ErrUnknownFormat, ExitUsage},
		{"deck parse", fmt.Errorf("deck: %w", ErrDeckParse), ExitUsage},
		{"empty deck", ErrEmptyDeck, ExitUsage},
		{"invalid canvas", carousel.ErrInvalidCanvas, ExitUsage},
		{"invalid text color", carousel.ErrInvalidTextColor, ExitUsage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
