package assets

import (
	"embed"
	"fmt"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

//go:embed backgrounds/default.png
var backgrounds embed.FS

// EmbeddedLoader serves the built-in asset set: the Go font family for all
// four variants and the embedded default background. It never fails, which
// makes the default renderer configuration asset-complete by construction.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// Fonts returns the Go font family TTF data.
func (e *EmbeddedLoader) Fonts() (*FontSet, error) {
	return &FontSet{
		Regular:    goregular.TTF,
		Bold:       gobold.TTF,
		Italic:     goitalic.TTF,
		BoldItalic: gobolditalic.TTF,
	}, nil
}

// Background returns the embedded default background image.
func (e *EmbeddedLoader) Background() ([]byte, error) {
	data, err := backgrounds.ReadFile("backgrounds/default.png")
	if err != nil {
		// Unreachable with a correct build; embed guarantees presence.
		return nil, fmt.Errorf("%w: embedded default background: %v", ErrAssetRead, err)
	}
	return data, nil
}

// Compile-time interface check.
var _ Loader = (*EmbeddedLoader)(nil)
