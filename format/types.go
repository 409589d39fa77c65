package format

// Word is a typeset token queued for line-breaking (§3.2).
type Word struct {
	s          string // opaque escaped string representation
	wid        int    // word's width
	elsn, elsp int    // extra line-spacing, negative/positive
	gap        int    // the space before this word
	hy         int    // hyphen width if a break is inserted after this word
	str        bool   // whether the gap before this word may stretch
}

// Line is a completed line ready for the consumer (§3.2).
type Line struct {
	Text       string // the emitted character buffer, gap escapes included
	Wid        int
	Li, Ll     int
	ElsNeg     int
	ElsPos     int
}
