package main

import (
	"testing"

	carousel "github.com/alnah/go-carousel"
)

func TestParseRenderFlagsDefaults(t *testing.T) {
	f, args, err := parseRenderFlags([]string{"deck.yaml"})
	if err != nil {
		t.Fatalf("parseRenderFlags() error = %v", err)
	}
	if len(args) != 1 || args[0] != "deck.yaml" {
		t.Errorf("positional args = %v, want [deck.yaml]", args)
	}
	if f.output.dir != "." {
		t.Errorf("output dir = %q, want .", f.output.dir)
	}
	if f.output.format != "zip" {
		t.Errorf("format = %q, want zip", f.output.format)
	}
	if f.canvas.width != carousel.DefaultWidth || f.canvas.height != carousel.DefaultHeight {
		t.Errorf("canvas = %dx%d, want defaults", f.canvas.width, f.canvas.height)
	}
	if f.canvas.margin != 80 || f.canvas.titleSize != 72 || f.canvas.bodySize != 40 {
		t.Errorf("typography defaults wrong: %+v", f.canvas)
	}
}

func TestParseRenderFlagsOverrides(t *testing.T) {
	f, args, err := parseRenderFlags([]string{
		"-o", "out",
		"--format", "all",
		"--width", "1080", "--height", "1350",
		"--margin", "60",
		"-b", "bg.png",
		"--text-color", "#f2e9d8",
		"--dark-text",
		"-v",
		"deck.yaml",
	})
	if err != nil {
		t.Fatalf("parseRenderFlags() error = %v", err)
	}
	if len(args) != 1 || args[0] != "deck.yaml" {
		t.Errorf("positional args = %v, want [deck.yaml]", args)
	}
	if f.output.dir != "out" || f.output.format != "all" {
		t.Errorf("output flags = %+v", f.output)
	}
	if f.canvas.height != 1350 || f.canvas.margin != 60 {
		t.Errorf("canvas flags = %+v", f.canvas)
	}
	if f.style.background != "bg.png" || f.style.textColor != "#f2e9d8" || !f.style.darkText {
		t.Errorf("style flags = %+v", f.style)
	}
	if !f.common.verbose {
		t.Error("verbose not set")
	}
}

func TestParseRenderFlagsUnknown(t *testing.T) {
	if _, _, err := parseRenderFlags([]string{"--no-such-flag"}); err == nil {
		t.Error("unknown flag accepted")
	}
}
