// Package markdown tokenizes the markdown subset supported on slides: bold,
// italic, bulleted list items, and numbered list items.
//
// The tokenizer is total: it never fails, and any input it cannot interpret as
// markup is kept as literal text. Inline emphasis is parsed with goldmark's
// CommonMark emphasis parser, which gives greedy bold-before-italic matching
// and literal fallback for unterminated markers. Block constructs are detected
// line by line, so the literal ordinal of a numbered item ("2.") is preserved
// exactly as typed; the engine never re-numbers lists.
package markdown

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Style is a bit set of inline style flags. Bold and italic combine freely.
type Style uint8

const (
	// StyleBold marks text wrapped in a doubled emphasis marker (**...**).
	StyleBold Style = 1 << iota
	// StyleItalic marks text wrapped in a single emphasis marker (*...*).
	StyleItalic
)

// Bold reports whether the bold flag is set.
func (s Style) Bold() bool { return s&StyleBold != 0 }

// Italic reports whether the italic flag is set.
func (s Style) Italic() bool { return s&StyleItalic != 0 }

// Role tags a block with its layout behavior.
type Role uint8

const (
	// RolePlain is a regular paragraph line.
	RolePlain Role = iota
	// RoleBullet is a bulleted list item ("- item").
	RoleBullet
	// RoleNumbered is a numbered list item ("2. item").
	RoleNumbered
)

// Run is a contiguous span of text sharing one style. Immutable once produced.
type Run struct {
	Text  string
	Style Style
}

// Block is one line-level unit: a paragraph line or a list item, with the
// styled runs that make up its text. ParaBreak records that a blank line
// separated this block from the one before it.
type Block struct {
	Role      Role
	Ordinal   string // literal ordinal text for RoleNumbered, e.g. "2."
	ParaBreak bool
	Runs      []Run
}

// TextBlock is the tokenized content of one slide.
type TextBlock struct {
	Blocks []Block
}

// Empty reports whether the block holds no content.
func (t TextBlock) Empty() bool { return len(t.Blocks) == 0 }

// PlainText returns the concatenation of all run texts, blocks separated by
// newlines. Style and list markers are already stripped.
func (t TextBlock) PlainText() string {
	var sb strings.Builder
	for i, b := range t.Blocks {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, r := range b.Runs {
			sb.WriteString(r.Text)
		}
	}
	return sb.String()
}

var (
	bulletPattern   = regexp.MustCompile(`^-\s+`)
	numberedPattern = regexp.MustCompile(`^(\d+\.)\s+`)
)

// inlineParser is a goldmark parser stripped down to the slide grammar: every
// line is a paragraph (headings, fences, and blockquotes stay literal text)
// and emphasis is the only inline construct (code spans, links, and raw HTML
// stay literal text). This keeps the tokenizer round-trip safe: concatenating
// run texts reproduces the input minus emphasis markers.
var inlineParser = parser.NewParser(
	parser.WithBlockParsers(util.Prioritized(parser.NewParagraphParser(), 100)),
	parser.WithInlineParsers(util.Prioritized(parser.NewEmphasisParser(), 100)),
)

// Tokenize converts raw slide text into a TextBlock. It is total over all
// string inputs: malformed markup degrades to literal text.
func Tokenize(input string) TextBlock {
	input = strings.ReplaceAll(input, "\r\n", "\n")

	var blocks []Block
	pendingBreak := false
	for _, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimLeft(line, " \t")
		if strings.TrimSpace(line) == "" {
			// Blank lines before the first block and runs of blank lines
			// collapse to a single paragraph break.
			pendingBreak = len(blocks) > 0
			continue
		}

		b := Block{Role: RolePlain, ParaBreak: pendingBreak}
		pendingBreak = false

		rest := line
		if m := numberedPattern.FindStringSubmatch(trimmed); m != nil {
			b.Role = RoleNumbered
			b.Ordinal = m[1]
			rest = trimmed[len(m[0]):]
		} else if m := bulletPattern.FindString(trimmed); m != "" {
			b.Role = RoleBullet
			rest = trimmed[len(m):]
		}

		b.Runs = parseInline(rest)
		if len(b.Runs) == 0 {
			b.Runs = []Run{{Text: rest}}
		}
		blocks = append(blocks, b)
	}
	return TextBlock{Blocks: blocks}
}

// parseInline parses one line's emphasis markup into styled runs.
func parseInline(line string) []Run {
	src := []byte(line)
	doc := inlineParser.Parse(text.NewReader(src))

	var runs []Run
	var bold, italic int
	style := func() Style {
		var s Style
		if bold > 0 {
			s |= StyleBold
		}
		if italic > 0 {
			s |= StyleItalic
		}
		return s
	}

	// Walk never returns an error here: the callback cannot fail.
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Emphasis:
			delta := 1
			if !entering {
				delta = -1
			}
			if node.Level >= 2 {
				bold += delta
			} else {
				italic += delta
			}
		case *ast.Text:
			if entering {
				runs = append(runs, Run{Text: string(node.Segment.Value(src)), Style: style()})
			}
		case *ast.String:
			if entering {
				runs = append(runs, Run{Text: string(node.Value), Style: style()})
			}
		}
		return ast.WalkContinue, nil
	})
	return mergeRuns(runs)
}

// mergeRuns joins adjacent runs that share a style and drops empty ones.
func mergeRuns(runs []Run) []Run {
	merged := runs[:0]
	for _, r := range runs {
		if r.Text == "" {
			continue
		}
		if n := len(merged); n > 0 && merged[n-1].Style == r.Style {
			merged[n-1].Text += r.Text
			continue
		}
		merged = append(merged, r)
	}
	return merged
}
