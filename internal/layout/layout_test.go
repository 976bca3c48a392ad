package layout

import (
	"math"
	"reflect"
	"testing"

	"github.com/alnah/go-carousel/internal/markdown"
)

// fixedMetrics gives every rune a constant advance so wrap points are exact.
type fixedMetrics struct {
	unit float64
}

func (m fixedMetrics) Advance(text string, _ markdown.Style, _ float64) float64 {
	return float64(len([]rune(text))) * m.unit
}

func (m fixedMetrics) LineMetrics(_ markdown.Style, size float64) (float64, float64) {
	return size * 0.8, size * 0.2
}

func testEngine() *Engine {
	return &Engine{
		Metrics: fixedMetrics{unit: 10},
		Config: Config{
			Margin:       10,
			BodySize:     20,
			TitleSize:    40,
			LineSpacing:  1.5,
			ParagraphGap: 0.7,
			ListIndent:   1.4,
		},
	}
}

func lineText(ln Line) string {
	s := ""
	for _, f := range ln.Fragments {
		s += f.Text
	}
	return s
}

func TestLayoutEmptyBlock(t *testing.T) {
	res := testEngine().Layout(markdown.TextBlock{}, Canvas{Width: 100, Height: 100})
	if len(res.Lines) != 0 {
		t.Errorf("lines = %d, want 0", len(res.Lines))
	}
	if res.Height != 0 {
		t.Errorf("height = %v, want 0", res.Height)
	}
	if res.Overflow {
		t.Error("overflow = true, want false")
	}
}

func TestLayoutGreedyWrap(t *testing.T) {
	// usable width = 100 - 2*10 = 80; words are 30 wide, spaces 10.
	// "aaa bbb" = 70 fits, adding " ccc" would need 110 -> wrap.
	e := testEngine()
	tb := markdown.Tokenize("aaa bbb ccc")
	res := e.Layout(tb, Canvas{Width: 100, Height: 400})

	if len(res.Lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(res.Lines))
	}
	if got := lineText(res.Lines[0]); got != "aaabbb" {
		t.Errorf("line 0 fragments = %q, want aaa and bbb", got)
	}
	if got := lineText(res.Lines[1]); got != "ccc" {
		t.Errorf("line 1 fragments = %q, want ccc", got)
	}
	// Fragment offsets include the margin and inter-word space.
	if x := res.Lines[0].Fragments[1].X; x != 10+40 {
		t.Errorf("second word X = %v, want 50", x)
	}
}

func TestLayoutOverlongWordOwnLine(t *testing.T) {
	// 12 runes * 10 = 120 > usable 80: the word must land alone on a line,
	// unsplit, rather than looping forever.
	e := testEngine()
	tb := markdown.Tokenize("a incomprehensibilities b")
	res := e.Layout(tb, Canvas{Width: 100, Height: 400})

	if len(res.Lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(res.Lines))
	}
	if got := lineText(res.Lines[1]); got != "incomprehensibilities" {
		t.Errorf("line 1 = %q, want the overlong word alone", got)
	}
}

func TestLayoutWordSpanningStyleBoundary(t *testing.T) {
	// "wo**rd**" is one wrap unit even though it is two styled fragments.
	e := testEngine()
	tb := markdown.Tokenize("wo**rd**")
	res := e.Layout(tb, Canvas{Width: 200, Height: 400})

	if len(res.Lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(res.Lines))
	}
	frags := res.Lines[0].Fragments
	if len(frags) != 2 {
		t.Fatalf("fragments = %d, want 2", len(frags))
	}
	if frags[0].Text != "wo" || frags[1].Text != "rd" {
		t.Errorf("fragments = %q + %q, want wo + rd", frags[0].Text, frags[1].Text)
	}
	if !frags[1].Style.Bold() {
		t.Error("second fragment lost bold style")
	}
	// The glued fragment starts right after the first, no space between.
	if frags[1].X != frags[0].X+20 {
		t.Errorf("glued fragment X = %v, want %v", frags[1].X, frags[0].X+20)
	}
}

func TestLayoutListIndent(t *testing.T) {
	e := testEngine()
	// usable 180-20=160, indent 20*1.4=28, avail 132; each word 30+10 space.
	tb := markdown.Tokenize("- one two three four five")
	res := e.Layout(tb, Canvas{Width: 180, Height: 400})

	if len(res.Lines) < 2 {
		t.Fatalf("lines = %d, want wrap onto continuation line", len(res.Lines))
	}
	first := res.Lines[0]
	if first.Fragments[0].Text != Bullet {
		t.Errorf("first fragment = %q, want bullet glyph", first.Fragments[0].Text)
	}
	if first.Fragments[0].X != 10 {
		t.Errorf("bullet X = %v, want left margin 10", first.Fragments[0].X)
	}
	if got := first.Fragments[1].X; got != 10+28 {
		t.Errorf("first word X = %v, want %v", got, 10+28)
	}
	// Continuation lines carry the indent but no prefix.
	cont := res.Lines[1]
	if cont.Fragments[0].Text == Bullet {
		t.Error("continuation line repeats the bullet prefix")
	}
	if got := cont.Fragments[0].X; got != 10+28 {
		t.Errorf("continuation X = %v, want %v", got, 10+28)
	}
}

func TestLayoutNumberedPrefix(t *testing.T) {
	e := testEngine()
	tb := markdown.Tokenize("2. second")
	res := e.Layout(tb, Canvas{Width: 400, Height: 400})

	if len(res.Lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(res.Lines))
	}
	if got := res.Lines[0].Fragments[0].Text; got != "2." {
		t.Errorf("prefix = %q, want literal ordinal 2.", got)
	}
}

func TestLayoutParagraphGap(t *testing.T) {
	e := testEngine()
	size := e.Config.BodySize
	lineAdvance := size * e.Config.LineSpacing

	plain := e.Layout(markdown.Tokenize("one\ntwo"), Canvas{Width: 400, Height: 400})
	broken := e.Layout(markdown.Tokenize("one\n\ntwo"), Canvas{Width: 400, Height: 400})

	gapPlain := plain.Lines[1].Baseline - plain.Lines[0].Baseline
	gapBroken := broken.Lines[1].Baseline - broken.Lines[0].Baseline

	if gapPlain != lineAdvance {
		t.Errorf("line gap = %v, want %v", gapPlain, lineAdvance)
	}
	want := lineAdvance + size*e.Config.ParagraphGap
	if gapBroken != want {
		t.Errorf("paragraph gap = %v, want %v", gapBroken, want)
	}
	if gapBroken <= gapPlain {
		t.Error("paragraph gap not larger than line gap")
	}
}

func TestLayoutVerticalCentering(t *testing.T) {
	e := testEngine()
	tb := markdown.Tokenize("one\ntwo\nthree")
	canvas := Canvas{Width: 400, Height: 400}
	res := e.Layout(tb, canvas)

	if res.Overflow {
		t.Fatal("unexpected overflow")
	}
	first := res.Lines[0]
	last := res.Lines[len(res.Lines)-1]
	top := first.Baseline - first.Ascent
	bottom := last.Baseline + last.Descent
	center := (top + bottom) / 2
	if math.Abs(center-float64(canvas.Height)/2) > 1 {
		t.Errorf("block center = %v, want %v ±1", center, canvas.Height/2)
	}
}

func TestLayoutOverflow(t *testing.T) {
	e := testEngine()
	tb := markdown.Tokenize("one\ntwo\nthree\nfour\nfive\nsix")
	res := e.Layout(tb, Canvas{Width: 400, Height: 120})

	if !res.Overflow {
		t.Fatal("overflow = false, want true")
	}
	if len(res.Lines) != 6 {
		t.Errorf("lines = %d, want all 6 kept", len(res.Lines))
	}
	// Overflowing blocks start at the top margin instead of centering.
	if got := res.Lines[0].Baseline; got != e.Config.Margin+res.Lines[0].Ascent {
		t.Errorf("first baseline = %v, want %v", got, e.Config.Margin+res.Lines[0].Ascent)
	}
}

func TestLayoutTitleUsesTitleSize(t *testing.T) {
	e := testEngine()
	tb := markdown.Tokenize("welcome")

	body := e.Layout(tb, Canvas{Width: 400, Height: 400})
	title := e.Layout(tb, Canvas{Width: 400, Height: 400, Title: true})

	if body.Lines[0].FontSize != e.Config.BodySize {
		t.Errorf("body font size = %v, want %v", body.Lines[0].FontSize, e.Config.BodySize)
	}
	if title.Lines[0].FontSize != e.Config.TitleSize {
		t.Errorf("title font size = %v, want %v", title.Lines[0].FontSize, e.Config.TitleSize)
	}
}

func TestLayoutIdempotent(t *testing.T) {
	e := testEngine()
	tb := markdown.Tokenize("**Welcome**\n- point one\n- point two")
	canvas := Canvas{Width: 400, Height: 400}

	a := e.Layout(tb, canvas)
	b := e.Layout(tb, canvas)
	if !reflect.DeepEqual(a, b) {
		t.Error("two layouts of the same input differ")
	}
}
