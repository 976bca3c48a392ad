package carousel

import (
	"github.com/alnah/go-carousel/internal/compose"
	"github.com/alnah/go-carousel/internal/layout"
)

// Option configures a Renderer.
type Option func(*Renderer)

// rendererConfig holds internal configuration for Renderer.
type rendererConfig struct {
	assetPath string
	layout    layout.Config
	palette   compose.Palette
	textColor string // hex override, parsed in NewRenderer
}

// WithAssetPath overrides the embedded assets with a directory containing
// custom fonts and/or a custom default background. Assets the directory does
// not provide fall back to the embedded set.
func WithAssetPath(path string) Option {
	return func(r *Renderer) {
		r.cfg.assetPath = path
	}
}

// WithMargin sets the canvas margin in pixels.
// Panics if px < 0 (programmer error).
func WithMargin(px float64) Option {
	if px < 0 {
		panic("carousel: WithMargin must not be negative")
	}
	return func(r *Renderer) {
		r.cfg.layout.Margin = px
	}
}

// WithFontSizes sets the title and body font sizes in points.
// Panics if either size is not positive (programmer error).
func WithFontSizes(title, body float64) Option {
	if title <= 0 || body <= 0 {
		panic("carousel: WithFontSizes sizes must be positive")
	}
	return func(r *Renderer) {
		r.cfg.layout.TitleSize = title
		r.cfg.layout.BodySize = body
	}
}

// WithLineSpacing sets the baseline-to-baseline distance as a multiple of
// the font size. Panics if spacing is not positive (programmer error).
func WithLineSpacing(spacing float64) Option {
	if spacing <= 0 {
		panic("carousel: WithLineSpacing must be positive")
	}
	return func(r *Renderer) {
		r.cfg.layout.LineSpacing = spacing
	}
}

// WithDarkText switches to the dark palette: near-black text with a light
// solid fallback fill, for light backgrounds. The default is light text for
// dark backgrounds.
func WithDarkText() Option {
	return func(r *Renderer) {
		r.cfg.palette = compose.Dark
	}
}

// WithTextColor overrides the palette's text color with a hex color such as
// "#f2e9d8". Returns ErrInvalidTextColor from NewRenderer if the value does
// not parse.
func WithTextColor(hex string) Option {
	return func(r *Renderer) {
		r.cfg.textColor = hex
	}
}
