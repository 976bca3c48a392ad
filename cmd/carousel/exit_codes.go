package main

import (
	"errors"
	"os"

	carousel "github.com/alnah/go-carousel"
	"github.com/alnah/go-carousel/internal/yamlutil"
)

// Exit codes for the carousel CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful render
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, deck, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitRender  = 4 // Rendering or assembly errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Rendering/assembly errors (exit 4)
	if errors.Is(err, carousel.ErrMissingAsset) ||
		errors.Is(err, carousel.ErrPDFGeneration) {
		return ExitRender
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadDeck) ||
		errors.Is(err, ErrReadBackground) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/deck/validation errors (exit 2)
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrUnknownFormat) ||
		errors.Is(err, ErrDeckParse) ||
		errors.Is(err, ErrEmptyDeck) ||
		errors.Is(err, yamlutil.ErrInputTooLarge) ||
		errors.Is(err, carousel.ErrInvalidCanvas) ||
		errors.Is(err, carousel.ErrInvalidTextColor) ||
		errors.Is(err, carousel.ErrInvalidAssemblyMode) ||
		errors.Is(err, carousel.ErrNoSlides) {
		return ExitUsage
	}

	return ExitGeneral
}
