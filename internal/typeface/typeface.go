// Package typeface loads the four TrueType variants a slide needs
// (regular, bold, italic, bold-italic) and measures text with them.
//
// One Set serves both the layout engine and the compositor, so measured
// widths always match what gets drawn. Faces are cached per (style, size);
// the cache is not safe for concurrent use, matching the single-threaded
// rendering pipeline.
package typeface

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/alnah/go-carousel/internal/markdown"
)

// styleMask selects the style bits that pick a font variant.
const styleMask = markdown.StyleBold | markdown.StyleItalic

type faceKey struct {
	style markdown.Style
	size  float64
}

// Set holds the parsed font variants and a face cache.
type Set struct {
	variants [styleMask + 1]*truetype.Font
	faces    map[faceKey]font.Face
}

// NewSet parses the four font variants. All four must parse; a missing or
// corrupt font is a configuration error, not a per-slide one.
func NewSet(regular, bold, italic, boldItalic []byte) (*Set, error) {
	s := &Set{faces: make(map[faceKey]font.Face)}

	for _, v := range []struct {
		name  string
		style markdown.Style
		data  []byte
	}{
		{"regular", 0, regular},
		{"bold", markdown.StyleBold, bold},
		{"italic", markdown.StyleItalic, italic},
		{"bold-italic", markdown.StyleBold | markdown.StyleItalic, boldItalic},
	} {
		f, err := truetype.Parse(v.data)
		if err != nil {
			return nil, fmt.Errorf("parsing %s font: %w", v.name, err)
		}
		s.variants[v.style] = f
	}
	return s, nil
}

// Face returns the cached font.Face for a style and size. DPI is fixed at 72
// so point sizes equal pixel sizes.
func (s *Set) Face(style markdown.Style, size float64) font.Face {
	key := faceKey{style & styleMask, size}
	if f, ok := s.faces[key]; ok {
		return f
	}
	f := truetype.NewFace(s.variants[key.style], &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	s.faces[key] = f
	return f
}

// Advance returns the horizontal advance of text in pixels.
func (s *Set) Advance(text string, style markdown.Style, size float64) float64 {
	return fromFixed(font.MeasureString(s.Face(style, size), text))
}

// LineMetrics returns the ascent and descent of a line in pixels.
func (s *Set) LineMetrics(style markdown.Style, size float64) (ascent, descent float64) {
	m := s.Face(style, size).Metrics()
	return fromFixed(m.Ascent), fromFixed(m.Descent)
}

func fromFixed(v fixed.Int26_6) float64 { return float64(v) / 64 }
