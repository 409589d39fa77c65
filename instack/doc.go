/*
Package instack implements the input-stack collaborator described for the
copy-mode interpreter: a LIFO of text frames (macro/string/register
expansions) sitting on top of a base source, plus a one-character push-back
deque that lets a caller return a character it has already consumed.

The interpreter (package interp) is the only direct consumer of this
contract. Frames are drained transparently: once a pushed frame is
exhausted, reads fall through to the frame below it and, eventually, to the
base text — mirroring the `in_next`/`in_back`/`in_top`/`in_push`/`in_arg`
primitives named in the specification's external-interfaces section.
*/
package instack

import (
	"io"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"

	nhtml "github.com/npillmayer/ntroff/html"
)

// T traces to a global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// FromHTML builds a Stack whose base text is the inner text of an HTML
// document or fragment, letting copy-mode text originate from parsed HTML
// as well as from a plain reader. html.TextFromHTML produces a cord; only
// its string form is needed here as the base of the input stack.
func FromHTML(r io.Reader) (*Stack, error) {
	c, err := nhtml.TextFromHTML(r)
	if err != nil {
		return nil, err
	}
	return New(c.String()), nil
}
