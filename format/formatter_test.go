package format

import (
	"strings"
	"testing"

	"github.com/npillmayer/ntroff/interp"
)

// testWord is a WordBuilder test double with fully explicit measurements,
// so assertions don't depend on uax11's actual width scale.
type testWord struct {
	text string
	wid  int
	hy   int
	eos  bool
}

func (w *testWord) Buf() string { return w.text }
func (w *testWord) Wid() int    { return w.wid }
func (w *testWord) HyWid() int  { return w.hy }
func (w *testWord) ElsNeg() int { return 0 }
func (w *testWord) ElsPos() int { return 0 }
func (w *testWord) Eos() bool   { return w.eos }
func (w *testWord) Empty() bool { return w.text == "" }
func (w *testWord) Sub(text string) WordBuilder {
	return &testWord{text: text, wid: w.wid, hy: w.hy}
}

// Sentence-end double space: two explicit spaces after a sentence-ending
// word are replaced by swid+sentence-space-width (here 10+5) rather than
// kept as the typed 2*swid (§8, "sentence-end double space").
func TestSentenceEndDoubleSpaceBecomesSentenceSpace(t *testing.T) {
	store := NewDefaultStore(1000)
	store.NFill = false
	store.NSpaceScale = 100
	store.NSentenceSpaceScale = 150
	store.SpaceWidthFunc = func(font, size, scale int) int {
		if scale == 150 {
			return 5
		}
		return 10
	}
	f, err := New(store)
	if err != nil {
		t.Fatal(err)
	}
	if !f.Word(&testWord{text: "Hi.", wid: 20, eos: true}) {
		t.Fatal("Word(Hi.) reported retry")
	}
	f.Space()
	f.Space() // gap == 2*swid == 20, triggers the sentence-end branch
	if !f.Word(&testWord{text: "There.", wid: 40, eos: true}) {
		t.Fatal("Word(There.) reported retry")
	}
	if !f.Fill(true) {
		t.Fatal("Fill reported retry")
	}
	line, ok := f.NextLine()
	if !ok {
		t.Fatal("expected one emitted line")
	}
	want := "\\h'0u'Hi.\\h'15u'There."
	if line.Text != want {
		t.Errorf("line text = %q, want %q", line.Text, want)
	}
}

// With fill and adjustment both off, queued words come back out verbatim,
// each preceded by the exact escaped gap it was given (§8 round-trip).
func TestRoundTripNoFillNoAdjust(t *testing.T) {
	store := NewDefaultStore(1000)
	store.NFill = false
	f, err := New(store)
	if err != nil {
		t.Fatal(err)
	}
	f.Word(&testWord{text: "one", wid: 10})
	f.Space()
	f.Word(&testWord{text: "two", wid: 10})
	f.Space()
	f.Space()
	f.Word(&testWord{text: "three", wid: 10})
	if !f.Fill(true) {
		t.Fatal("Fill reported retry")
	}
	line, ok := f.NextLine()
	if !ok {
		t.Fatal("expected one emitted line")
	}
	if !strings.Contains(line.Text, "one") || !strings.Contains(line.Text, "two") || !strings.Contains(line.Text, "three") {
		t.Errorf("line text missing a word: %q", line.Text)
	}
	if _, ok := f.NextLine(); ok {
		t.Error("expected exactly one line")
	}
}

// FillReq (`\p`) marks a forced break at the next word regardless of word
// costs: breakParagraph must short-circuit straight to that boundary.
func TestFillReqForcesBreakAtMarkedBoundary(t *testing.T) {
	store := NewDefaultStore(100000)
	f, err := New(store)
	if err != nil {
		t.Fatal(err)
	}
	f.Word(&testWord{text: "a", wid: 5})
	f.Space()
	f.Word(&testWord{text: "b", wid: 5})
	if !f.FillReq() {
		t.Fatal("FillReq reported retry")
	}
	f.Space()
	f.Word(&testWord{text: "c", wid: 5})

	if got := f.breakParagraph(f.nwords, false); got != f.fillreq {
		t.Errorf("breakParagraph = %d, want fillreq boundary %d", got, f.fillreq)
	}
}

// SuppressNL followed by Newline must not emit an extra blank line: the
// suppressed newline is consumed without decrementing nls below what
// Newline already accounts for.
func TestSuppressNLThenNewlineIsNoOp(t *testing.T) {
	store := NewDefaultStore(1000)
	f, err := New(store)
	if err != nil {
		t.Fatal(err)
	}
	f.Word(&testWord{text: "word", wid: 10})
	if !f.Newline() {
		t.Fatal("Newline reported retry")
	}
	f.SuppressNL()
	if !f.Newline() {
		t.Fatal("second Newline reported retry")
	}
	// Without SuppressNL the second Newline would flush "word" as a line;
	// with it, nothing is emitted and nls bookkeeping stays non-negative.
	if f.MoreLines() {
		t.Error("expected no emitted line after SuppressNL + Newline")
	}
	if f.nls < 0 {
		t.Errorf("nls went negative: %d", f.nls)
	}
}

// A lone word wider than the line must still form its own line rather
// than being folded into findCost's search (breakParagraph's early-out).
func TestOverlongWordGetsItsOwnLine(t *testing.T) {
	store := NewDefaultStore(10)
	f, err := New(store)
	if err != nil {
		t.Fatal(err)
	}
	f.Word(&testWord{text: "short", wid: 5})
	f.Space()
	f.Word(&testWord{text: "waytoolongforthisline", wid: 500})
	if !f.Fill(true) {
		t.Fatal("Fill reported retry")
	}
	var lines []Line
	for {
		l, ok := f.NextLine()
		if !ok {
			break
		}
		lines = append(lines, l)
	}
	if len(lines) == 0 {
		t.Fatal("expected at least one line")
	}
	last := lines[len(lines)-1]
	if !strings.Contains(last.Text, "waytoolongforthisline") {
		t.Errorf("expected overlong word on its own line, got %q", last.Text)
	}
}

// A word carrying the maximum NHYPHSWORD hyphenation-insertion marks,
// queued at the exact point where Word's capacity guard (nwords+NHYPHSWORD
// >= NWORDS) does not yet trip, must still land its NHYPHSWORD+1 sub-words
// inside the fixed-size word array without overflowing it (§8,
// "hyphenation at capacity"; §9 Design Notes, "sub-word expansion").
func TestHyphenationSplitFillsWordArrayAtCapacity(t *testing.T) {
	store := NewDefaultStore(1000)
	f, err := New(store)
	if err != nil {
		t.Fatal(err)
	}
	f.li, f.ll = store.Indent(), store.LineLength()
	f.nwords = NWORDS - NHYPHSWORD - 1
	if f.nwords+NHYPHSWORD >= NWORDS {
		t.Fatalf("test setup doesn't sit below the auto-fill threshold")
	}

	marks := strings.Repeat(string(interp.EC)+"%", NHYPHSWORD)
	if !f.Word(&testWord{text: marks, wid: 3}) {
		t.Fatal("Word reported retry at the capacity boundary")
	}
	if f.nwords != NWORDS {
		t.Errorf("nwords = %d, want exactly %d (all %d sub-words placed, no overflow)",
			f.nwords, NWORDS, NHYPHSWORD+1)
	}
}

// Widow avoidance: a 12-word paragraph where every word is the same width
// lets the cost-minimal (but unbiased) break leave a single word stranded
// on the last line. With a short-last-line penalty configured,
// breakParagraph must instead prefer a break that leaves a fuller last
// line (§8, "widow avoidance").
func TestWidowAvoidancePrefersBalancedSplit(t *testing.T) {
	const n = 12
	store := NewDefaultStore(565)
	store.SpaceWidthFunc = func(font, size, scale int) int { return 50 }
	store.NShortLastLinePct = 70
	store.NShortLastLineCost = 1000
	f, err := New(store)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < n; i++ {
		if i > 0 {
			f.Space()
		}
		if !f.Word(&testWord{text: "w", wid: 5}) {
			t.Fatalf("Word(%d) reported retry", i)
		}
	}
	if f.nwords != n {
		t.Fatalf("nwords = %d, want %d", f.nwords, n)
	}
	for i := 0; i <= f.nwords; i++ {
		f.bestPos[i] = -1
	}

	unbiased := f.breakParagraph(f.nwords, false)
	if unbiased != n-1 {
		t.Fatalf("unbiased break = %d, want %d (the cost-minimal one-word widow)", unbiased, n-1)
	}

	widowed := f.breakParagraph(f.nwords, true)
	if widowed == n-1 {
		t.Fatal("breakParagraph still chose the one-word last line with the widow penalty enabled")
	}
	if n-widowed < 2 {
		t.Errorf("last line still only %d word(s) after widow avoidance", n-widowed)
	}
}

// Trap-limited fill: with HyLast set and a next_trap budget of 2 lines,
// fillWords must extract no more than those 2 lines this cycle, leaving
// the remainder queued for the next cycle (§8, "trap-limited fill").
func TestTrapLimitedFillEmitsOnlyTrapBudgetLines(t *testing.T) {
	store := NewDefaultStore(80)
	store.SpaceWidthFunc = func(font, size, scale int) int { return 5 }
	store.NHyFlags = HyLast
	store.NNextTrap = 2
	f, err := New(store)
	if err != nil {
		t.Fatal(err)
	}
	const n = 20
	for i := 0; i < n; i++ {
		if i > 0 {
			f.Space()
		}
		if !f.Word(&testWord{text: "w", wid: 10}) {
			t.Fatalf("Word(%d) reported retry", i)
		}
	}
	// 20 words at this width can't fit fewer than 4 lines, so the 2-line
	// trap budget must bind.
	f.Fill(false)

	var lines []Line
	for {
		l, ok := f.NextLine()
		if !ok {
			break
		}
		lines = append(lines, l)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines this cycle, want exactly 2 (trap budget)", len(lines))
	}
	for _, l := range lines {
		if strings.Contains(l.Text, `\(hy`) {
			t.Errorf("line ended hyphenated despite a non-hyphenated break of equal depth: %q", l.Text)
		}
	}
	if f.nwords == 0 {
		t.Error("expected remaining words still buffered after the trap-limited fill")
	}
}
