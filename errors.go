package carousel

import "errors"

// Sentinel errors for library operations.
var (
	// ErrMissingAsset indicates a required asset (font set or default
	// background) is absent or unreadable. This is a configuration error:
	// it surfaces from NewRenderer, before any slide is produced.
	ErrMissingAsset = errors.New("required asset missing or unreadable")

	// ErrInvalidCanvas indicates a canvas with non-positive dimensions.
	ErrInvalidCanvas = errors.New("invalid canvas dimensions")

	// ErrInvalidTextColor indicates a text color that is not a valid hex color.
	ErrInvalidTextColor = errors.New("invalid text color")

	// ErrNoSlides indicates an empty slide sequence was passed to Assemble.
	ErrNoSlides = errors.New("no slides to assemble")

	// ErrInvalidAssemblyMode indicates an unknown assembly mode.
	ErrInvalidAssemblyMode = errors.New("invalid assembly mode")

	// ErrPDFGeneration indicates the paginated document could not be built.
	ErrPDFGeneration = errors.New("PDF generation failed")
)
