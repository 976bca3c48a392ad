package carousel

import "fmt"

// Default canvas dimensions, matching the square carousel format.
const (
	DefaultWidth  = 1080
	DefaultHeight = 1080
)

// CanvasSpec describes one slide's target surface. Title slides use larger
// type than body slides; the layout algorithm is otherwise identical.
// Immutable once created; zero dimensions mean "use the defaults".
type CanvasSpec struct {
	Width  int
	Height int
	Title  bool
}

// withDefaults fills zero dimensions with the default canvas size.
func (c CanvasSpec) withDefaults() CanvasSpec {
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	return c
}

// Validate checks that the canvas has positive dimensions.
func (c CanvasSpec) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidCanvas, c.Width, c.Height)
	}
	return nil
}

// Slide is the input unit: one slide's markdown text, its canvas, and an
// optional background image (PNG or JPEG bytes). A nil Background selects
// the default background asset. The same byte slice may be shared across
// all slides of a deck.
type Slide struct {
	Text       string
	Canvas     CanvasSpec
	Background []byte
}

// RenderedSlide is one finished slide raster. Slides are positionally
// ordered; that order is preserved through assembly.
type RenderedSlide struct {
	PNG    []byte // encoded raster
	Width  int
	Height int

	// Overflow reports that the text block was taller than the canvas's
	// usable height and ran past the bottom margin. The slide is still
	// rendered; the caller decides whether to warn.
	Overflow bool

	// BackgroundFallback reports that the provided background could not be
	// decoded and a solid fill was used instead.
	BackgroundFallback bool
}

// AssemblyMode selects how rendered slides are packaged.
type AssemblyMode string

const (
	// ModeImageSet packages each slide as an individually named PNG inside
	// a zip archive; names encode the 1-based slide index.
	ModeImageSet AssemblyMode = "image-set"

	// ModePDF builds a single paginated PDF where each page matches its
	// slide's pixel dimensions and carries the raster at full bleed.
	ModePDF AssemblyMode = "pdf"
)

// Validate checks that the mode is known.
func (m AssemblyMode) Validate() error {
	switch m {
	case ModeImageSet, ModePDF:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidAssemblyMode, m)
}

// Document is the assembled output: a zip archive or a PDF, depending on
// Mode. Pages equals the slide count in both modes.
type Document struct {
	Mode  AssemblyMode
	Data  []byte
	Pages int
}
