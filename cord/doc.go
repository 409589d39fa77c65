/*
Package cord implements an append-only sequence of text fragments, built up
through a Builder and rendered to a string on demand.

This is a leaf-list cord rather than a persistent B+ tree: every caller in
this module only assembles a Cord fragment by fragment (a formatted line's
`\h` motions and words, an HTML text node's runs, a prefetched file chunk)
and then reads it back whole. A balanced tree earns its keep when a cord is
edited after construction; none of this module's builders are, so the
representation is flat.

Typical usage:

	b := cord.NewBuilder()
	b.Append(cord.StringLeaf("Hello "))
	b.Append(cord.StringLeaf("World"))
	c := b.Cord()
	s := c.String() // "Hello World"
*/
package cord

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cords'.
func tracer() tracing.Trace {
	return tracing.Select("cords")
}

// CordError is the package error type.
type CordError string

func (e CordError) Error() string {
	return string(e)
}

// ErrCordCompleted signals that a cord builder has already completed a cord and
// it's illegal to further add fragments.
const ErrCordCompleted = CordError("forbidden to add fragments; cord has been completed")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = CordError("illegal arguments")
