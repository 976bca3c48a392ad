package assets

// FontSet holds the raw TTF bytes for the four variants styled text needs.
type FontSet struct {
	Regular    []byte
	Bold       []byte
	Italic     []byte
	BoldItalic []byte
}

// Loader defines the contract for resolving rendering assets.
// Implementations may serve embedded data, a filesystem directory, or a
// combination with fallback.
type Loader interface {
	// Fonts returns the complete font set.
	// Returns ErrAssetNotFound if a variant is missing.
	Fonts() (*FontSet, error)

	// Background returns the default background image bytes.
	// Returns ErrAssetNotFound if no default background exists.
	Background() ([]byte, error)
}
