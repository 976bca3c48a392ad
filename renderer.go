package carousel

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/alnah/go-carousel/internal/assets"
	"github.com/alnah/go-carousel/internal/compose"
	"github.com/alnah/go-carousel/internal/layout"
	"github.com/alnah/go-carousel/internal/markdown"
	"github.com/alnah/go-carousel/internal/typeface"
)

// Compile-time interface implementation checks. The typeface set and the
// per-run measuring cache must both satisfy the layout engine's metrics
// contract; a signature drift should fail the build, not a render.
var (
	_ layout.Metrics = (*typeface.Set)(nil)
	_ layout.Metrics = (*measureCache)(nil)
)

// Renderer turns slides into raster images. Create with NewRenderer; the
// zero value is not usable. A Renderer is not safe for concurrent use: the
// pipeline is deliberately single-threaded, one slide at a time.
type Renderer struct {
	cfg       rendererConfig
	faces     *typeface.Set
	defaultBG image.Image
}

// NewRenderer creates a Renderer and resolves its assets up front. A missing
// or corrupt font set or default background is a configuration error: no
// valid output is possible, so it surfaces here rather than per slide.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		cfg: rendererConfig{
			layout:  layout.DefaultConfig(),
			palette: compose.Light,
		},
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.cfg.textColor != "" {
		c, err := colorful.Hex(r.cfg.textColor)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTextColor, r.cfg.textColor)
		}
		r.cfg.palette.Text = c
	}

	loader, err := assets.NewResolver(r.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingAsset, err)
	}

	fonts, err := loader.Fonts()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingAsset, err)
	}
	r.faces, err = typeface.NewSet(fonts.Regular, fonts.Bold, fonts.Italic, fonts.BoldItalic)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingAsset, err)
	}

	bg, err := loader.Background()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingAsset, err)
	}
	r.defaultBG, err = compose.DecodeBackground(bg)
	if err != nil {
		return nil, fmt.Errorf("%w: default background does not decode: %v", ErrMissingAsset, err)
	}

	return r, nil
}

// Render processes slides in order, one slide tokenized, laid out, and
// composited to completion before the next begins. The context is checked
// only between slides: the unit of cancellation is "stop before starting
// the next slide". Per-slide buffers are released as each PNG is encoded,
// bounding peak memory to one slide plus the encoded outputs.
func (r *Renderer) Render(ctx context.Context, slides []Slide) ([]RenderedSlide, error) {
	// One width-measurement memo per run; slide content is typically unique
	// across runs, so the table is discarded with the run.
	metrics := newMeasureCache(r.faces)

	out := make([]RenderedSlide, 0, len(slides))
	for i, s := range slides {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rs, err := r.renderSlide(s, metrics)
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
		out = append(out, rs)
	}
	return out, nil
}

// renderSlide runs the full pipeline for one slide.
func (r *Renderer) renderSlide(s Slide, metrics layout.Metrics) (RenderedSlide, error) {
	canvas := s.Canvas.withDefaults()
	if err := canvas.Validate(); err != nil {
		return RenderedSlide{}, err
	}

	block := markdown.Tokenize(s.Text)

	engine := layout.Engine{Metrics: metrics, Config: r.cfg.layout}
	laid := engine.Layout(block, layout.Canvas{
		Width:  canvas.Width,
		Height: canvas.Height,
		Title:  canvas.Title,
	})

	background := r.defaultBG
	fallback := false
	if len(s.Background) > 0 {
		img, err := compose.DecodeBackground(s.Background)
		if err != nil {
			// Corrupt upload: solid fill instead of failing the slide.
			background = nil
			fallback = true
		} else {
			background = img
		}
	}

	comp := compose.Compositor{Faces: r.faces, Palette: r.cfg.palette}
	img := comp.Composite(laid.Lines, background, canvas.Width, canvas.Height)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return RenderedSlide{}, fmt.Errorf("encoding slide raster: %w", err)
	}

	return RenderedSlide{
		PNG:                buf.Bytes(),
		Width:              canvas.Width,
		Height:             canvas.Height,
		Overflow:           laid.Overflow,
		BackgroundFallback: fallback,
	}, nil
}

// measureKey identifies one memoized measurement.
type measureKey struct {
	text  string
	style markdown.Style
	size  float64
}

// measureCache memoizes text advances for the duration of one Render call.
// Slides on the same deck often repeat words (headings, list prefixes), so
// the memo saves re-shaping without becoming a process-wide cache.
type measureCache struct {
	src    *typeface.Set
	widths map[measureKey]float64
}

func newMeasureCache(src *typeface.Set) *measureCache {
	return &measureCache{src: src, widths: make(map[measureKey]float64)}
}

func (m *measureCache) Advance(text string, style markdown.Style, size float64) float64 {
	key := measureKey{text, style, size}
	if w, ok := m.widths[key]; ok {
		return w
	}
	w := m.src.Advance(text, style, size)
	m.widths[key] = w
	return w
}

func (m *measureCache) LineMetrics(style markdown.Style, size float64) (float64, float64) {
	return m.src.LineMetrics(style, size)
}
