package format

import (
	"fmt"

	"github.com/npillmayer/ntroff/cord"
)

// Formatter buffers pending words and emits justified lines (§3.2/§3.3/
// §3.4). A single instance belongs to one formatting context; it is not
// safe for concurrent use (§5).
type Formatter struct {
	store Store

	words  [NWORDS]Word
	nwords int

	lines        [NLINES]Line
	lHead, lTail int

	best    [NWORDS + 1]int64
	bestPos [NWORDS + 1]int
	bestDep [NWORDS + 1]int

	gap    int
	nls    int
	nlsSup bool
	li, ll int
	filled bool
	eos    bool
	fillreq int

	events *Events
}

// New creates an empty Formatter reading configuration from store.
func New(store Store) (*Formatter, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	return &Formatter{store: store}, nil
}

// Notify wires an Events broadcaster; subsequent enqueue operations
// publish Retry to it on back-pressure, and Fill publishes LineReady when it
// completes. Pass nil to stop publishing.
func (f *Formatter) Notify(events *Events) { f.events = events }

func (f *Formatter) publish(kind EventKind) {
	if f.events != nil {
		f.events.publish(kind)
	}
}

// --- geometry -------------------------------------------------------------

func (f *Formatter) lineLen() int {
	v := f.ll - f.li
	if v < 0 {
		return 0
	}
	return v
}

func (f *Formatter) fillMode() bool {
	return f.store.CenterCount() == 0 && f.store.Fill()
}

func (f *Formatter) adjustMode() bool {
	return f.store.Fill() && !f.store.NoAdjust() && f.store.CenterCount() == 0 &&
		f.store.AdjustMode()&AdjBoth == AdjBoth
}

// confUpdate snapshots .ll/.li; .ti is delayed until the partial line is
// output (§3.3 invariant 5).
func (f *Formatter) confUpdate() {
	f.ll = f.store.LineLength()
	ti := f.store.TempIndent()
	if ti >= 0 {
		f.li = ti
	} else {
		f.li = f.store.Indent()
	}
	f.store.ClearTempIndent()
}

func (f *Formatter) confChanged() bool {
	li := f.store.Indent()
	if ti := f.store.TempIndent(); ti >= 0 {
		li = ti
	}
	return f.ll != f.store.LineLength() || f.li != li
}

func (f *Formatter) moveWords(dst, src, length int) {
	copy(f.words[dst:dst+length], f.words[src:src+length])
}

// --- word/line accounting --------------------------------------------------

func (f *Formatter) wordsLen(beg, end int) int {
	w := 0
	for i := beg; i < end; i++ {
		w += f.words[i].wid + f.words[i].gap
	}
	if beg < end {
		w += f.words[end-1].hy
	}
	return w
}

func (f *Formatter) spaces(beg, end int) int {
	n := 0
	for i := beg + 1; i < end; i++ {
		if f.words[i].str {
			n++
		}
	}
	return n
}

func (f *Formatter) spacesSum(beg, end int) int {
	n := 0
	for i := beg + 1; i < end; i++ {
		if f.words[i].str {
			n += f.words[i].gap
		}
	}
	return n
}

func (f *Formatter) nlines() int {
	if f.lTail <= f.lHead {
		return f.lHead - f.lTail
	}
	return NLINES - f.lTail + f.lHead
}

// wordsCopy assembles words[beg:end] into the escaped line text, mirroring
// fmt_wordscopy: each word is preceded by a `\h'Ngap'` motion escape, and a
// trailing hyphen glyph is appended if the last word carries one. Built
// fragment by fragment through a cord.Builder rather than string
// concatenation, since the line text is assembled piecewise from many
// small, independently-generated escape and word fragments.
func (f *Formatter) wordsCopy(beg, end int) (text string, w int, elsNeg, elsPos int) {
	b := cord.NewBuilder()
	for i := beg; i < end; i++ {
		wd := &f.words[i]
		b.Append(cord.StringLeaf(fmt.Sprintf("\\h'%du'", wd.gap)))
		b.Append(cord.StringLeaf(wd.s))
		w += wd.wid + wd.gap
		if wd.elsn < elsNeg {
			elsNeg = wd.elsn
		}
		if wd.elsp > elsPos {
			elsPos = wd.elsp
		}
	}
	if beg < end {
		last := &f.words[end-1]
		if last.hy != 0 {
			b.Append(cord.StringLeaf(`\(hy`))
		}
		w += last.hy
	}
	return b.Cord().String(), w, elsNeg, elsPos
}

// --- line ring --------------------------------------------------------------

// NextLine dequeues the oldest completed line, if any.
func (f *Formatter) NextLine() (Line, bool) {
	if f.lHead == f.lTail {
		return Line{}, false
	}
	l := f.lines[f.lTail]
	f.lTail = (f.lTail + 1) % NLINES
	return l, true
}

func (f *Formatter) mkLine() (*Line, bool) {
	if (f.lHead+1)%NLINES == f.lTail {
		return nil, false
	}
	l := &f.lines[f.lHead]
	f.lHead = (f.lHead + 1) % NLINES
	l.Li = f.li
	l.Ll = f.ll
	return l, true
}

// extractLine distributes adjustment stretch (if llen > 0) across the
// stretchable gaps in words[beg:end], then copies the line text out.
// Returns false (retry) if the line ring is full.
func (f *Formatter) extractLine(beg, end, llen int) bool {
	l, ok := f.mkLine()
	if !ok {
		return false
	}
	w := f.wordsLen(beg, end)
	nspc := f.spaces(beg, end)
	if nspc != 0 && llen != 0 {
		div := (llen - w) / nspc
		rem := (llen - w) % nspc
		if rem < 0 {
			div--
			rem += nspc
		}
		for i := beg + 1; i < end; i++ {
			if f.words[i].str {
				extra := div
				if rem > 0 {
					extra++
					rem--
				}
				f.words[i].gap += extra
			}
		}
	}
	text, wid, elsn, elsp := f.wordsCopy(beg, end)
	l.Text, l.Wid, l.ElsNeg, l.ElsPos = text, wid, elsn, elsp
	return true
}

// sp flushes all queued words into a single line, e.g. for a forced blank
// line after a space-only newline.
func (f *Formatter) sp() bool {
	if !f.fillWords(true) {
		return false
	}
	if !f.extractLine(0, f.nwords, 0) {
		return false
	}
	f.filled = false
	f.nls--
	f.nlsSup = false
	f.nwords = 0
	f.fillreq = 0
	return true
}

// --- public contract --------------------------------------------------------

// Fill flushes as many lines as possible; if br, the remaining words
// become a short final line. Returns false on ring back-pressure (retry).
func (f *Formatter) Fill(br bool) bool {
	ok := f.fillWords(br)
	if !ok {
		f.publish(Retry)
		return false
	}
	if br {
		f.filled = false
		if f.nwords > 0 {
			if !f.sp() {
				f.publish(Retry)
				return false
			}
		}
	}
	f.publish(LineReady)
	return true
}

// Space enlarges the pending inter-word gap by one space's width.
func (f *Formatter) Space() {
	f.gap += f.store.SpaceWidth(f.store.Font(), f.store.Size(), f.store.SpaceScale())
}

// Newline acts as a fill/space boundary in fill mode, or a forced break
// otherwise.
func (f *Formatter) Newline() bool {
	f.gap = 0
	if !f.fillMode() {
		f.nls++
		f.sp()
		return true
	}
	if f.nls >= 1 {
		if !f.sp() {
			f.publish(Retry)
			return false
		}
	}
	if f.nls == 0 && !f.filled && f.nwords == 0 {
		f.sp()
	}
	f.nls++
	return true
}

// FillReq marks a paragraph-fill point at the next word (`\p`).
func (f *Formatter) FillReq() bool {
	if f.fillreq > 0 {
		if !f.fillWords(false) {
			f.publish(Retry)
			return false
		}
	}
	f.fillreq = f.nwords + 1
	return true
}

// SuppressNL decrements the observed-newline count and marks it
// suppressed, so a following Newline is a no-op with respect to emitted
// blank lines.
func (f *Formatter) SuppressNL() {
	if f.nls > 0 {
		f.nls--
		f.nlsSup = true
	}
}

// Wid reports the width of the words queued so far, plus the pending gap.
func (f *Formatter) Wid() int {
	return f.wordsLen(0, f.nwords) + f.wordGap()
}

// MoreWords reports whether any word is still queued (or a line pending).
func (f *Formatter) MoreWords() bool { return f.MoreLines() || f.nwords > 0 }

// MoreLines reports whether a completed line is waiting in the ring.
func (f *Formatter) MoreLines() bool { return f.lHead != f.lTail }

// --- word insertion ----------------------------------------------------------

func (f *Formatter) wordGap() int {
	nls := f.nls > 0 || f.nlsSup
	swid := f.store.SpaceWidth(f.store.Font(), f.store.Size(), f.store.SpaceScale())
	if f.eos && f.nwords > 0 {
		if (nls && f.gap == 0) || (!nls && f.gap == 2*swid) {
			return swid + f.store.SpaceWidth(f.store.Font(), f.store.Size(), f.store.SentenceSpaceScale())
		}
	}
	if nls && f.gap == 0 && f.nwords > 0 {
		return swid
	}
	return f.gap
}

func wordFrom(wb WordBuilder, hy bool, str bool, gap int) Word {
	hyWid := 0
	if hy {
		hyWid = wb.HyWid()
	}
	return Word{s: wb.Buf(), wid: wb.Wid(), elsn: wb.ElsNeg(), elsp: wb.ElsPos(), hy: hyWid, str: str, gap: gap}
}

// insertWord splits wb at any hyphenation marks, queuing one sub-word per
// split (Word insertion, step 5). Only the first sub-word carries gap and
// the stretchable flag.
func (f *Formatter) insertWord(wb WordBuilder, gap int) {
	clean, points := findHyphenPoints(wb.Buf())
	if len(points) == 0 {
		f.words[f.nwords] = wordFrom(wb, false, true, gap)
		f.nwords++
		return
	}
	n := len(points)
	if f.fillreq == f.nwords+1 {
		f.fillreq += n
	}
	prev := 0
	for i := 0; i <= n; i++ {
		end := len(clean)
		if i < n {
			end = points[i].idx
		}
		piece := string(clean[prev:end])
		sub := wb.Sub(piece)
		hy := i < n && points[i].insert
		g := 0
		if i == 0 {
			g = gap
		}
		f.words[f.nwords] = wordFrom(sub, hy, i == 0, g)
		f.nwords++
		prev = end
	}
}

// Word enqueues a fully measured word, triggering a fill first if the
// buffer is near capacity or the line geometry has changed. Returns false
// if the caller must drain via NextLine and retry.
func (f *Formatter) Word(wb WordBuilder) bool {
	if wb == nil || wb.Empty() {
		return true
	}
	if f.nwords+NHYPHSWORD >= NWORDS || f.confChanged() {
		if !f.fillWords(false) {
			f.publish(Retry)
			return false
		}
	}
	if f.fillMode() && f.nls > 0 && f.gap > 0 {
		if !f.sp() {
			f.publish(Retry)
			return false
		}
	}
	if f.nwords == 0 {
		f.confUpdate()
	}
	f.gap = f.wordGap()
	f.eos = wb.Eos()
	gap := f.gap
	if f.filled {
		gap = 0
	}
	f.insertWord(wb, gap)
	f.filled = false
	f.nls = 0
	f.nlsSup = false
	f.gap = 0
	return true
}
