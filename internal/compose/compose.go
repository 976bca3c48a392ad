// Package compose draws laid-out slide text over a background image.
//
// The background is scaled with aspect-fill (preserving aspect ratio,
// center-cropping the excess) so arbitrary uploads are never distorted.
// Text is drawn run by run with the style-matching font face at the
// positions the layout engine computed. Compositing is deterministic:
// identical inputs produce bit-identical pixels.
package compose

import (
	"bytes"
	"image"
	"image/color"

	// Register the background formats the original upload form accepted.
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/alnah/go-carousel/internal/layout"
	"github.com/alnah/go-carousel/internal/typeface"
)

// Palette is a fixed text/fill color pair chosen for contrast. It is not
// content-adaptive; callers pick light or dark up front.
type Palette struct {
	Text color.Color // text fill
	Fill color.Color // solid background used when no image is available
}

// Light is white text over a dark fallback fill, for dark backgrounds.
var Light = Palette{
	Text: color.White,
	Fill: color.RGBA{R: 0x10, G: 0x18, B: 0x30, A: 0xFF},
}

// Dark is near-black text over a light fallback fill, for light backgrounds.
var Dark = Palette{
	Text: color.RGBA{R: 0x1A, G: 0x1A, B: 0x1A, A: 0xFF},
	Fill: color.RGBA{R: 0xF2, G: 0xF0, B: 0xEC, A: 0xFF},
}

// DecodeBackground decodes uploaded background bytes (PNG or JPEG).
func DecodeBackground(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

// Compositor draws slides. Faces must be the same set the layout engine
// measured with, so drawn advances match computed positions.
type Compositor struct {
	Faces   *typeface.Set
	Palette Palette
}

// Composite renders the line boxes over background at the canvas size.
// A nil background paints the palette's solid fill instead; callers decide
// whether that counts as a fallback worth flagging.
func (c *Compositor) Composite(lines []layout.Line, background image.Image, width, height int) *image.RGBA {
	dc := gg.NewContext(width, height)

	if background != nil {
		fitted := imaging.Fill(background, width, height, imaging.Center, imaging.Lanczos)
		dc.DrawImage(fitted, 0, 0)
	} else {
		dc.SetColor(c.Palette.Fill)
		dc.Clear()
	}

	dc.SetColor(c.Palette.Text)
	for _, ln := range lines {
		for _, frag := range ln.Fragments {
			dc.SetFontFace(c.Faces.Face(frag.Style, ln.FontSize))
			dc.DrawString(frag.Text, frag.X, ln.Baseline)
		}
	}

	return dc.Image().(*image.RGBA)
}
