// Package carousel renders markdown-formatted text blocks into fixed-size
// slide images and assembles them into a downloadable document.
//
// # Quick Start
//
// Create a renderer, render slides, and assemble the result:
//
//	r, err := carousel.NewRenderer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	slides, err := r.Render(ctx, []carousel.Slide{
//	    {Text: "**Welcome**", Canvas: carousel.CanvasSpec{Width: 1080, Height: 1080, Title: true}},
//	    {Text: "- point one\n- point two", Canvas: carousel.CanvasSpec{Width: 1080, Height: 1080}},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	doc, err := carousel.Assemble(slides, carousel.ModePDF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("carousel_slides.pdf", doc.Data, 0644)
//
// Each RenderedSlide also carries its standalone PNG bytes, plus warning
// flags (text overflow, background fallback) the caller can surface.
//
// # Rendering Pipeline
//
// Every slide passes through three stages, one slide completed before the
// next begins:
//
//  1. Tokenize: the markdown subset (bold, italic, bullet and numbered list
//     items) becomes styled runs; malformed markup degrades to literal text.
//  2. Layout: greedy word-wrap against the canvas width, list indents,
//     paragraph gaps, and vertical centering produce positioned line boxes.
//  3. Composite: the background (provided, or the default asset) is
//     aspect-filled onto the canvas and the line boxes are drawn over it.
//
// Rendering is deterministic: identical inputs produce byte-identical
// output, both for slide PNGs and for assembled documents.
//
// # Supported Markdown
//
// Bold (**text**), italic (*text*), combinable nesting (**a*b*c**),
// bulleted items ("- item"), and numbered items ("2. item", the typed
// ordinal is echoed, never renumbered). Blank lines separate paragraphs.
// Everything else is rendered as literal text.
//
// # Configuration
//
// Use functional options to customize the renderer:
//
//	r, err := carousel.NewRenderer(
//	    carousel.WithAssetPath("/path/to/assets"),
//	    carousel.WithTextColor("#f2e9d8"),
//	    carousel.WithFontSizes(84, 44),
//	)
//
// # Assets
//
// The renderer needs a four-variant font set (regular, bold, italic,
// bold-italic) and a default background image. Both are embedded (the Go
// font family and a built-in gradient), so the zero-configuration renderer
// always works. WithAssetPath overrides them from a directory; see the
// internal assets package documentation for the expected layout.
package carousel
