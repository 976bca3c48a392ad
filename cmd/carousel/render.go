package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	carousel "github.com/alnah/go-carousel"
	"github.com/alnah/go-carousel/internal/fileutil"
)

// Sentinel errors for the render command.
var (
	ErrNoInput        = errors.New("no deck file specified")
	ErrUnknownFormat  = errors.New("unknown output format")
	ErrWriteOutput    = errors.New("failed to write output file")
	ErrUnknownCommand = errors.New("unknown command")
)

// filePermissions is rw-r--r--: rendered output is meant to be shared.
const filePermissions = 0o644

// Fixed output names.
const (
	zipName = "carousel_slides.zip"
	pdfName = "carousel_slides.pdf"
)

// outputFormat describes which artifacts one --format value produces.
type outputFormat struct {
	pngs bool
	zip  bool
	pdf  bool
}

var formats = map[string]outputFormat{
	"png": {pngs: true},
	"zip": {zip: true},
	"pdf": {pdf: true},
	"all": {pngs: true, zip: true, pdf: true},
}

// runRender renders a deck file and writes the requested artifacts.
func runRender(ctx context.Context, args []string, flags *renderFlags, env *Environment) error {
	format, ok := formats[flags.output.format]
	if !ok {
		return fmt.Errorf("%w: %q (expected png, zip, pdf, or all)", ErrUnknownFormat, flags.output.format)
	}

	if len(args) == 0 {
		return ErrNoInput
	}
	if bg := flags.style.background; bg != "" && !fileutil.FileExists(bg) {
		return fmt.Errorf("%w: %s", ErrReadBackground, bg)
	}
	deck, err := loadDeck(args[0])
	if err != nil {
		return err
	}

	canvas := carousel.CanvasSpec{Width: flags.canvas.width, Height: flags.canvas.height}
	if flags.canvas.width == carousel.DefaultWidth && flags.canvas.height == carousel.DefaultHeight && deck.Canvas != nil {
		canvas.Width = deck.Canvas.Width
		canvas.Height = deck.Canvas.Height
	}

	slides, err := buildSlides(deck, canvas, flags.style.background)
	if err != nil {
		return err
	}
	env.Logger.Debug("deck loaded", "path", args[0], "slides", len(slides))

	renderer, err := carousel.NewRenderer(rendererOptions(flags, deck)...)
	if err != nil {
		return err
	}

	rendered, err := renderer.Render(ctx, slides)
	if err != nil {
		return err
	}
	for i, rs := range rendered {
		if rs.Overflow {
			env.Logger.Warn("text does not fit the canvas", "slide", i+1)
		}
		if rs.BackgroundFallback {
			env.Logger.Warn("background image does not decode, using solid fill", "slide", i+1)
		}
		env.Logger.Debug("slide rendered", "slide", i+1, "bytes", len(rs.PNG))
	}

	return writeOutputs(rendered, format, flags.output.dir, env)
}

// rendererOptions maps CLI flags and deck settings onto library options.
// Flags win over deck values.
func rendererOptions(flags *renderFlags, deck *Deck) []carousel.Option {
	opts := []carousel.Option{
		carousel.WithMargin(flags.canvas.margin),
		carousel.WithFontSizes(flags.canvas.titleSize, flags.canvas.bodySize),
		carousel.WithLineSpacing(flags.canvas.lineSpacing),
	}
	if flags.style.assetPath != "" {
		opts = append(opts, carousel.WithAssetPath(flags.style.assetPath))
	}
	if flags.style.darkText {
		opts = append(opts, carousel.WithDarkText())
	}
	if c := firstNonEmpty(flags.style.textColor, deck.TextColor); c != "" {
		opts = append(opts, carousel.WithTextColor(c))
	}
	return opts
}

// writeOutputs writes the requested artifacts into dir.
func writeOutputs(rendered []carousel.RenderedSlide, format outputFormat, dir string, env *Environment) error {
	if err := fileutil.EnsureDir(dir); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if format.pngs {
		for i, rs := range rendered {
			path := filepath.Join(dir, fmt.Sprintf("carousel_slide_%d.png", i+1))
			if err := writeFile(path, rs.PNG, env); err != nil {
				return err
			}
		}
	}

	if format.zip {
		doc, err := carousel.Assemble(rendered, carousel.ModeImageSet)
		if err != nil {
			return err
		}
		if err := writeFile(filepath.Join(dir, zipName), doc.Data, env); err != nil {
			return err
		}
	}

	if format.pdf {
		doc, err := carousel.Assemble(rendered, carousel.ModePDF)
		if err != nil {
			return err
		}
		if err := writeFile(filepath.Join(dir, pdfName), doc.Data, env); err != nil {
			return err
		}
	}

	return nil
}

func writeFile(path string, data []byte, env *Environment) error {
	// #nosec G306 -- rendered output is meant to be readable
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	env.Logger.Info("created", "path", path)
	return nil
}
