package format

// scaledown approximates 8*sqrt(cost) by summing pairs of bits of cost
// scaled by position, capped at 2^13 — ported bit-for-bit per the
// specification's Open Questions ("its exact bit pattern must be
// preserved").
func scaledown(cost int64) int64 {
	var ret int64
	for i := 0; i < 14; i++ {
		ret += ((cost >> uint(i*2)) & 3) << uint(i+3)
	}
	if ret < 1<<13 {
		return ret
	}
	return 1 << 13
}

// fmtCost is the cost of putting lwid of word material, over nspc
// stretchable gaps totalling swid, into a line of target length llen.
func fmtCost(llen, lwid, swid, nspc int) int64 {
	denom := int64(swid)
	if denom == 0 {
		denom = 1
	}
	diff := int64(llen - lwid)
	if diff < 0 {
		diff = -diff
	}
	ratio := diff * 100 / denom
	if ratio > 4000 {
		ratio = 4000 + scaledown(ratio-4000)
	}
	n := int64(nspc)
	if n == 0 {
		n = 1
	}
	return ratio * ratio / 100 * n
}

// hyDepth counts consecutive preceding lines (walking best_pos backward
// from pos) that ended on a hyphenation break, capped at 5.
func (f *Formatter) hyDepth(pos int) int {
	n := 0
	for pos > 0 && f.words[pos-1].hy != 0 {
		n++
		if n >= 5 {
			break
		}
		pos = f.bestPos[pos]
	}
	return n
}

// hyCost is the penalty for a line ending in a hyphenation break at the
// given depth: depths 1/2/>=3 add HyCost1, HyCost1+HyCost2, and
// HyCost1+HyCost2+HyCost3 respectively. Exceeding the configured
// hyphenation-lines limit makes the break prohibitively expensive.
func (f *Formatter) hyCost(depth int) int64 {
	if hlm := f.store.HyLinesMax(); hlm > 0 && depth > hlm {
		return 10000000
	}
	switch {
	case depth >= 3:
		return int64(f.store.HyCost1() + f.store.HyCost2() + f.store.HyCost3())
	case depth == 2:
		return int64(f.store.HyCost1() + f.store.HyCost2())
	case depth == 1:
		return int64(f.store.HyCost1())
	default:
		return 0
	}
}

// findCost computes (and memoises) the minimum total cost over all break
// sequences ending immediately before word pos.
func (f *Formatter) findCost(pos int) int64 {
	if pos <= 0 {
		return 0
	}
	if f.bestPos[pos] >= 0 {
		return f.best[pos]
	}
	llen := f.lineLen()
	if llen < 1 {
		llen = 1
	}
	hyphenated := f.words[pos-1].hy != 0
	lwid := f.words[pos-1].hy
	swid, nspc := 0, 0
	for i := pos - 1; i >= 0; i-- {
		lwid += f.words[i].wid
		if i+1 < pos {
			lwid += f.words[i+1].gap
		}
		if i+1 < pos && f.words[i+1].str {
			swid += f.words[i+1].gap
			nspc++
		}
		if lwid > llen+swid*f.store.ShrinkPercent()/100 && i+1 < pos {
			break
		}
		cur := f.findCost(i) + fmtCost(llen, lwid, swid, nspc)
		if hyphenated {
			cur += f.hyCost(1 + f.hyDepth(i))
		}
		if f.bestPos[pos] < 0 || cur < f.best[pos] {
			f.bestPos[pos] = i
			f.bestDep[pos] = f.bestDep[i] + 1
			f.best[pos] = cur
		}
	}
	return f.best[pos]
}

func (f *Formatter) bestPosAt(pos int) int {
	f.findCost(pos)
	if f.bestPos[pos] < 0 {
		return 0
	}
	return f.bestPos[pos]
}

func (f *Formatter) bestDepAt(pos int) int {
	f.findCost(pos)
	if f.bestDep[pos] < 0 {
		return 0
	}
	return f.bestDep[pos]
}

// breakParagraph chooses the final line's starting word: an explicit
// fillreq boundary, a lone word too wide to share a line, or the feasible
// start minimising findCost plus (when br is set) a short-last-line
// penalty that discourages orphans/widows.
func (f *Formatter) breakParagraph(pos int, br bool) int {
	llen := f.lineLen()
	if f.fillreq > 0 && f.fillreq <= f.nwords {
		f.findCost(f.fillreq)
		return f.fillreq
	}
	if pos > 0 && f.words[pos-1].wid >= llen {
		f.findCost(pos)
		return pos
	}
	lwid, swid, nspc := 0, 0, 0
	if pos-1 >= 0 && f.words[pos-1].hy != 0 {
		lwid += f.words[pos-1].hy
	}
	best := -1
	var bestCost int64
	for i := pos - 1; i >= 0; i-- {
		lwid += f.words[i].wid
		if i+1 < pos {
			lwid += f.words[i+1].gap
		}
		if i+1 < pos && f.words[i+1].str {
			swid += f.words[i+1].gap
			nspc++
		}
		if lwid > llen && i+1 < pos {
			break
		}
		cost := f.findCost(i)
		if br && f.store.ShortLastLinePct() > 0 && lwid < llen*f.store.ShortLastLinePct()/100 {
			pmll := llen * f.store.ShortLastLinePct() / 100
			if pmll > 0 {
				cost += int64(f.store.ShortLastLineCost()) * int64(pmll-lwid) / int64(pmll)
			}
		}
		if best < 0 || cost < bestCost {
			best = i
			bestCost = cost
		}
	}
	return best
}

// hyAt reports whether the word ending at idx (i.e. words[idx-1]) carries
// a hyphen, treating idx<=0 (no such word) as false — a bounds-safe
// reading of the original's words[idx-1].hy, which never guarded idx==0.
func (f *Formatter) hyAt(idx int) bool {
	if idx <= 0 {
		return false
	}
	return f.words[idx-1].hy != 0
}

// head restricts extraction to the first nreq lines before a page trap:
// it finds the nreq-th line's break position, then prefers a
// non-hyphenated break at the same depth over a hyphenated one.
func (f *Formatter) head(nreq, pos int) int {
	if nreq <= 0 || f.bestDepAt(pos) < nreq {
		return pos
	}
	best := pos
	for best > 0 && f.bestDepAt(best) > nreq {
		best = f.bestPosAt(best)
	}
	prev, next := best, best
	for prev > 1 && f.hyAt(prev) && f.bestDepAt(prev-1) == nreq {
		prev--
	}
	for next < pos && f.hyAt(next) && f.bestDepAt(next) == nreq {
		next++
	}
	prevHy := f.hyAt(prev)
	nextHy := f.hyAt(next)
	switch {
	case !prevHy && !nextHy:
		if f.findCost(prev) <= f.findCost(next) {
			return prev
		}
		return next
	case !prevHy:
		return prev
	case !nextHy:
		return next
	default:
		return best
	}
}

// breakLines recursively extracts lines from left to right using
// bestPos, returning the number of words consumed.
func (f *Formatter) breakLines(end int) int {
	beg := f.bestPosAt(end)
	ret := 0
	if beg > 0 {
		ret += f.breakLines(beg)
	}
	f.words[beg].gap = 0
	llen := 0
	if f.adjustMode() {
		llen = f.lineLen()
	}
	if !f.extractLine(beg, end, llen) {
		return ret
	}
	if beg > 0 {
		f.confUpdate()
	}
	return ret + (end - beg)
}

// safeLines estimates the number of lines available until the next page
// trap, using the current line-height/baseline geometry.
func (f *Formatter) safeLines() int {
	lineHeight := f.store.LineHeight()
	if lineHeight < 1 {
		lineHeight = 1
	}
	lnht := lineHeight * f.store.Baseline()
	if lnht < 1 {
		lnht = 1
	}
	return (f.store.NextTrap() + lnht - 1) / lnht
}

// fillWords is the core of the state machine's Filling state: it resets
// the DP memo, picks a paragraph break (restricted to the trap-safe head
// if HyLast applies), extracts lines for the consumed words, and shifts
// the remainder down to index 0. Returns false if filling could not
// complete this cycle (either back-pressure from the trap budget, or a
// head/partial-consumption condition the caller must retry after
// draining).
func (f *Formatter) fillWords(br bool) bool {
	if !f.fillMode() {
		return true
	}
	llen := f.wordsLen(0, f.nwords) - f.spacesSum(0, f.nwords)*f.store.ShrinkPercent()/100
	if (f.fillreq <= 0 || f.nwords < f.fillreq) && llen <= f.lineLen() {
		return true
	}
	nreq := 0
	if f.store.HyFlags()&HyLast != 0 {
		nreq = f.safeLines()
	}
	if nreq > 0 && nreq <= f.nlines() {
		return false
	}
	for i := 0; i <= f.nwords; i++ {
		f.bestPos[i] = -1
	}
	end := f.breakParagraph(f.nwords, br)
	head := false
	if nreq > 0 {
		endHead := f.head(nreq-f.nlines(), end)
		head = endHead < end
		end = endHead
	}
	n := 0
	if end > 0 {
		n = f.breakLines(end)
	}
	f.nwords -= n
	f.fillreq -= n
	f.moveWords(0, n, f.nwords)
	f.filled = n > 0 && f.nwords == 0
	if f.nwords > 0 {
		f.words[0].gap = 0
		f.confUpdate()
	}
	return !(head || n != end)
}
