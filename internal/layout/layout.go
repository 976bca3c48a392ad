// Package layout turns tokenized slide text into positioned line boxes.
//
// The engine performs greedy word-wrap against the canvas's usable width,
// indents list items behind a rendered bullet or ordinal prefix, separates
// paragraphs with a larger vertical gap, and vertically centers the finished
// block inside the canvas. A block taller than the usable height is never
// truncated; the overflow is reported on the Result so callers can warn.
package layout

import (
	"strings"

	"github.com/alnah/go-carousel/internal/markdown"
)

// Bullet is the glyph rendered in front of bulleted list items.
const Bullet = "•"

// Metrics measures text for a given style and font size. Implementations are
// expected to be deterministic: identical inputs must yield identical widths.
type Metrics interface {
	// Advance returns the horizontal advance of text in pixels.
	Advance(text string, style markdown.Style, size float64) float64
	// LineMetrics returns the ascent and descent of a line in pixels.
	LineMetrics(style markdown.Style, size float64) (ascent, descent float64)
}

// Config holds the tunable layout constants. All em-relative values are
// multiples of the block's font size.
type Config struct {
	Margin       float64 // horizontal and vertical canvas margin in pixels
	BodySize     float64 // font size for body slides, in points (== pixels at 72 DPI)
	TitleSize    float64 // font size for title slides
	LineSpacing  float64 // baseline-to-baseline distance, em-relative
	ParagraphGap float64 // extra gap above a paragraph break, em-relative
	ListIndent   float64 // left indent of list item text, em-relative
}

// DefaultConfig returns the layout constants used by the carousel renderer,
// sized for a 1080 px canvas.
func DefaultConfig() Config {
	return Config{
		Margin:       80,
		BodySize:     40,
		TitleSize:    72,
		LineSpacing:  1.35,
		ParagraphGap: 0.7,
		ListIndent:   1.4,
	}
}

// Canvas describes the target surface. Title canvases use the larger title
// font size; the algorithm is otherwise identical.
type Canvas struct {
	Width  int
	Height int
	Title  bool
}

// Fragment is a run of equally styled text positioned on a line. X is the
// absolute horizontal pixel offset on the canvas.
type Fragment struct {
	Text  string
	Style markdown.Style
	X     float64
}

// Line is one laid-out line box. Baseline is the absolute vertical pixel
// coordinate text is drawn at. Never mutated after creation.
type Line struct {
	Fragments []Fragment
	Baseline  float64
	Width     float64
	FontSize  float64
	Ascent    float64
	Descent   float64
}

// Result is the outcome of laying out one slide's text.
type Result struct {
	Lines []Line
	// Height is the measured block height before centering.
	Height float64
	// Overflow reports that the block exceeds the canvas's usable height.
	// Lines are kept and allowed to run past the bottom margin.
	Overflow bool
}

// Engine lays out text blocks. The zero value is not usable; both fields must
// be set.
type Engine struct {
	Metrics Metrics
	Config  Config
}

// word is a wrap-atomic unit: fragments glued together with no intervening
// whitespace, possibly spanning a style boundary ("wo**rd**").
type word struct {
	frags []Fragment // X holds the fragment's offset within the word
	width float64
}

// Layout produces positioned line boxes for block on canvas. An empty block
// yields an empty Result and no error.
func (e *Engine) Layout(block markdown.TextBlock, canvas Canvas) Result {
	cfg := e.Config
	size := cfg.BodySize
	if canvas.Title {
		size = cfg.TitleSize
	}
	usableW := float64(canvas.Width) - 2*cfg.Margin
	usableH := float64(canvas.Height) - 2*cfg.Margin
	lineAdvance := size * cfg.LineSpacing
	ascent, descent := e.Metrics.LineMetrics(0, size)
	spaceW := e.Metrics.Advance(" ", 0, size)

	var lines []Line
	baseline := 0.0 // relative to the top of the text block until centering

	advanceLine := func() {
		if len(lines) == 0 {
			baseline = ascent
			return
		}
		baseline += lineAdvance
	}

	for _, b := range block.Blocks {
		if b.ParaBreak && len(lines) > 0 {
			baseline += size * cfg.ParagraphGap
		}

		indent := 0.0
		prefix := ""
		switch b.Role {
		case markdown.RoleBullet:
			prefix = Bullet
		case markdown.RoleNumbered:
			prefix = b.Ordinal
		}
		if prefix != "" {
			indent = size * cfg.ListIndent
		}

		words := e.splitWords(b.Runs, size)
		avail := usableW - indent

		emit := func(ws []word, firstOfBlock bool) {
			advanceLine()
			ln := Line{
				Baseline: baseline,
				FontSize: size,
				Ascent:   ascent,
				Descent:  descent,
			}
			if prefix != "" && firstOfBlock {
				ln.Fragments = append(ln.Fragments, Fragment{Text: prefix, X: 0})
			}
			x := indent
			for i, w := range ws {
				if i > 0 {
					x += spaceW
				}
				for _, f := range w.frags {
					ln.Fragments = append(ln.Fragments, Fragment{Text: f.Text, Style: f.Style, X: x + f.X})
				}
				x += w.width
			}
			ln.Width = x
			lines = append(lines, ln)
		}

		if len(words) == 0 {
			// A list marker with no text still renders its prefix.
			emit(nil, true)
			continue
		}

		var cur []word
		curW := 0.0
		firstLine := true
		for _, w := range words {
			need := w.width
			if len(cur) > 0 {
				need += spaceW
			}
			// A single word wider than the available width gets its own
			// line rather than being split mid-word.
			if len(cur) > 0 && curW+need > avail {
				emit(cur, firstLine)
				firstLine = false
				cur = cur[:0]
				curW = 0
				need = w.width
			}
			cur = append(cur, w)
			curW += need
		}
		if len(cur) > 0 {
			emit(cur, firstLine)
		}
	}

	if len(lines) == 0 {
		return Result{}
	}

	height := baseline + descent
	shift := cfg.Margin
	if slack := usableH - height; slack > 0 {
		shift += slack / 2
	}
	for i := range lines {
		lines[i].Baseline += shift
		for j := range lines[i].Fragments {
			lines[i].Fragments[j].X += cfg.Margin
		}
	}

	return Result{
		Lines:    lines,
		Height:   height,
		Overflow: height > usableH,
	}
}

// splitWords breaks runs into wrap-atomic words, preserving per-fragment
// style. A run boundary with no whitespace on either side glues fragments
// into a single word.
func (e *Engine) splitWords(runs []markdown.Run, size float64) []word {
	var words []word
	open := false // the previous run ended mid-word
	for _, r := range runs {
		if r.Text == "" {
			continue
		}
		leading := isSpace(r.Text[0])
		trailing := isSpace(r.Text[len(r.Text)-1])
		fields := strings.Fields(r.Text)

		for i, f := range fields {
			fw := e.Metrics.Advance(f, r.Style, size)
			if i == 0 && open && !leading && len(words) > 0 {
				w := &words[len(words)-1]
				w.frags = append(w.frags, Fragment{Text: f, Style: r.Style, X: w.width})
				w.width += fw
				continue
			}
			words = append(words, word{
				frags: []Fragment{{Text: f, Style: r.Style, X: 0}},
				width: fw,
			})
		}

		if len(fields) == 0 {
			open = false // whitespace-only run closes any glued word
			continue
		}
		open = !trailing
	}
	return words
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}
