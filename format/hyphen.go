package format

import "github.com/npillmayer/ntroff/interp"

// hyphenPoint is one split position inside a word's cleaned text: idx is
// the rune offset (into the cleaned rune slice) where the word is cut,
// and insert reports whether a hyphen glyph must be synthesized at a
// break there (true for an explicit `\%` mark) or whether the text
// already carries a visible hyphen at that position (false, for a
// literal dash).
type hyphenPoint struct {
	idx    int
	insert bool
}

// findHyphenPoints scans text for hyphenation-insertion marks: the
// explicit zero-width marker `\%` (consumed, not copied to the cleaned
// text) and literal hyphen dashes (kept in the cleaned text). This is a
// simplified stand-in for fmt_hyphmarks's escread/c_hc/c_hydash table,
// which depends on the request dispatcher's escape-name registry — out
// of scope per the specification's word-buffer exclusion. It is capped
// at NHYPHSWORD points, matching the original's fixed-size hyidx/hyins
// arrays.
func findHyphenPoints(text string) (clean []rune, points []hyphenPoint) {
	runes := []rune(text)
	out := make([]rune, 0, len(runes))
	for i := 0; i < len(runes) && len(points) < NHYPHSWORD; i++ {
		r := runes[i]
		if r == interp.EC && i+1 < len(runes) && runes[i+1] == '%' {
			points = append(points, hyphenPoint{idx: len(out), insert: true})
			i++
			continue
		}
		out = append(out, r)
		if r == '-' {
			points = append(points, hyphenPoint{idx: len(out), insert: false})
		}
	}
	return out, points
}
