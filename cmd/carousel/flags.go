package main

import (
	"os"

	flag "github.com/spf13/pflag"

	carousel "github.com/alnah/go-carousel"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	quiet   bool
	verbose bool
}

// outputFlags holds output destination and format flags.
type outputFlags struct {
	dir    string
	format string
}

// canvasFlags holds canvas geometry and typography flags.
type canvasFlags struct {
	width       int
	height      int
	margin      float64
	titleSize   float64
	bodySize    float64
	lineSpacing float64
}

// styleFlags holds color and asset flags.
type styleFlags struct {
	background string
	textColor  string
	darkText   bool
	assetPath  string
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common commonFlags
	output outputFlags
	canvas canvasFlags
	style  styleFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-slide detail")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.dir, "output", "o", ".", "output directory")
	fs.StringVarP(&f.format, "format", "f", "zip", "output format: png, zip, pdf, all")
}

// addCanvasFlags adds canvas flags to a FlagSet. Defaults mirror the library
// defaults so the flags can be applied unconditionally.
func addCanvasFlags(fs *flag.FlagSet, f *canvasFlags) {
	fs.IntVar(&f.width, "width", carousel.DefaultWidth, "canvas width in pixels")
	fs.IntVar(&f.height, "height", carousel.DefaultHeight, "canvas height in pixels")
	fs.Float64Var(&f.margin, "margin", 80, "canvas margin in pixels")
	fs.Float64Var(&f.titleSize, "title-size", 72, "title font size in points")
	fs.Float64Var(&f.bodySize, "body-size", 40, "body font size in points")
	fs.Float64Var(&f.lineSpacing, "line-spacing", 1.35, "baseline distance as a multiple of font size")
}

// addStyleFlags adds style flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVarP(&f.background, "background", "b", "", "background image for every slide")
	fs.StringVar(&f.textColor, "text-color", "", "text color as hex, e.g. #f2e9d8")
	fs.BoolVar(&f.darkText, "dark-text", false, "dark text for light backgrounds")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory (fonts, default background)")
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string) (*renderFlags, []string, error) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	f := &renderFlags{}

	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.output)
	addCanvasFlags(fs, &f.canvas)
	addStyleFlags(fs, &f.style)

	fs.Usage = func() { printRenderUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
