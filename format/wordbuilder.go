package format

import (
	"strings"

	"github.com/npillmayer/uax/uax11"
)

// WordBuilder is the `wb` collaborator the formatter measures words
// through: its escaped buffer, rendered width, hyphen-glyph width,
// extra-line-spacing contributions, and whether it closes a sentence.
// Sub produces a freshly measured builder for a substring of Buf(), used
// when a word is split at a hyphenation point (Word insertion, step 5).
type WordBuilder interface {
	Buf() string
	Wid() int
	HyWid() int
	ElsNeg() int
	ElsPos() int
	Eos() bool
	Empty() bool
	Sub(text string) WordBuilder
}

// PlainWord is a minimal WordBuilder backed by uax11/grapheme width
// measurement, good enough for tests and cmd/ntrofftrace. It carries no
// extra line-spacing (elsn/elsp are always 0) since those come from
// explicit vertical-motion escapes the word-buffer collaborator would
// track, which is out of scope here.
type PlainWord struct {
	text        string
	ctx         *uax11.Context
	hyphenWidth int
	eos         bool
}

// NewPlainWord measures text in ctx (nil defaults to uax11.LatinContext).
func NewPlainWord(text string, ctx *uax11.Context) *PlainWord {
	return &PlainWord{
		text:        text,
		ctx:         ctx,
		hyphenWidth: StringWidth("-", ctx),
		eos:         endsSentence(text),
	}
}

func endsSentence(text string) bool {
	t := strings.TrimRight(text, "'\")]")
	if t == "" {
		return false
	}
	switch t[len(t)-1] {
	case '.', '!', '?':
		return true
	default:
		return false
	}
}

func (w *PlainWord) Buf() string   { return w.text }
func (w *PlainWord) Wid() int      { return StringWidth(w.text, w.ctx) }
func (w *PlainWord) HyWid() int    { return w.hyphenWidth }
func (w *PlainWord) ElsNeg() int   { return 0 }
func (w *PlainWord) ElsPos() int   { return 0 }
func (w *PlainWord) Eos() bool     { return w.eos }
func (w *PlainWord) Empty() bool   { return w.text == "" }

// Sub returns a PlainWord measuring text in the same context.
func (w *PlainWord) Sub(text string) WordBuilder {
	return NewPlainWord(text, w.ctx)
}
