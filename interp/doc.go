/*
Package interp implements the copy-mode input interpreter: a layer over an
instack.Stack that recognizes escape introducers and performs interpolation
(register, string, argument, numeric-format, width, conditional) by pushing
expansion text back onto the stack.

It is a direct, renamed port of the neatroff/mnc cp.c state machine:
cp_next/cp_back become Interpreter.Next/.Back, cp_blk/cp_copymode/cp_reqbeg
become Interpreter.Blk/.CopyMode/.ReqBeg, and the static cp_* handlers become
unexported methods of the same name (cpNum, cpStr, cpWidth, ...). The
register table, string table, name interner, and numeric expression
evaluator are out of scope per the specification and are modeled here as
small interfaces (Registers, Strings, Namer, Evaluator) with minimal
map-backed implementations for tests.
*/
package interp

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
