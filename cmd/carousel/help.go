package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: carousel <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Render a deck file into carousel slides")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'carousel help <command>' for details on a specific command.")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: carousel render <deck.yaml> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a YAML deck into slide images, a zip archive, or a PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  deck.yaml    Deck file: title, slides, optional background and canvas")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default \".\")")
	fmt.Fprintln(w, "  -f, --format <s>          Output format: png, zip, pdf, all (default \"zip\")")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Canvas:")
	fmt.Fprintln(w, "      --width <n>           Canvas width in pixels (default 1080)")
	fmt.Fprintln(w, "      --height <n>          Canvas height in pixels (default 1080)")
	fmt.Fprintln(w, "      --margin <f>          Canvas margin in pixels (default 80)")
	fmt.Fprintln(w, "      --title-size <f>      Title font size in points (default 72)")
	fmt.Fprintln(w, "      --body-size <f>       Body font size in points (default 40)")
	fmt.Fprintln(w, "      --line-spacing <f>    Baseline distance multiplier (default 1.35)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Style:")
	fmt.Fprintln(w, "  -b, --background <path>   Background image for every slide")
	fmt.Fprintln(w, "      --text-color <s>      Text color as hex, e.g. #f2e9d8")
	fmt.Fprintln(w, "      --dark-text           Dark text for light backgrounds")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-slide detail")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: carousel version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: carousel help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
