/*
Package format implements the line formatter: it buffers a stream of
typeset words, decides line breaks with a cost-minimising dynamic
program (stretch/shrink adjustment, hyphenation-depth penalties,
short-last-line avoidance, trap-aware head extraction), and emits
fully-adjusted lines on demand.

It is a one-to-one, Go-idiomatic port of the neatroff/mnc `fmt.c` line
formatting buffer: fmt_word/fmt_space/fmt_newline/fmt_fill/fmt_fillreq/
fmt_suppressnl/fmt_nextline/fmt_morewords/fmt_morelines/fmt_wid become
methods on *Formatter, and the C source's `struct fmt`'s fixed-size
arrays become Go array fields of the same capacity. Page composition,
font metrics, and the numeric/register/string tables stay out of scope;
the formatter reads configuration and trap geometry through the Store
interface and measures words through the WordBuilder interface.
*/
package format

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
