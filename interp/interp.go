package interp

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/ntroff/instack"
)

// Interpreter is the copy-mode input interpreter, `cp` in the original
// source: it reads through an instack.Stack, recognizes EC-introduced
// escapes, and interpolates their expansions back onto the stack.
type Interpreter struct {
	in    *instack.Stack
	regs  Registers
	strs  Strings
	namer Namer
	eval  Evaluator
	width WidthMeasurer

	blkdep int  // cp_blkdep
	reqdep int  // cp_reqdep
	cpmode bool // cp_cpmode
}

// New builds an Interpreter reading from in, with the given collaborators.
// width may be nil if \w is never used by the input under test.
func New(in *instack.Stack, regs Registers, strs Strings, namer Namer, eval Evaluator, width WidthMeasurer) (*Interpreter, error) {
	if in == nil || regs == nil || strs == nil || namer == nil || eval == nil {
		return nil, ErrNilCollaborator
	}
	return &Interpreter{in: in, regs: regs, strs: strs, namer: namer, eval: eval, width: width}, nil
}

// CopyMode sets or clears copy-mode gating (cp_copymode).
func (ip *Interpreter) CopyMode(mode bool) { ip.cpmode = mode }

// InCopyMode reports the current copy-mode gating state.
func (ip *Interpreter) InCopyMode() bool { return ip.cpmode }

// ReqBeg snapshots the current block depth at the start of a request line
// (cp_reqbeg).
func (ip *Interpreter) ReqBeg() { ip.reqdep = ip.blkdep }

// BlockDepth reports the current `\{`/`\}` nesting depth.
func (ip *Interpreter) BlockDepth() int { return ip.blkdep }

// Back pushes one interpreted character back onto the input stack.
func (ip *Interpreter) Back(c rune) { ip.in.Back(c) }

// rawNext is cp_raw: it drains null-indicators from the base stack and
// handles the handful of escapes that are transparent at every layer
// (folded newline, escaped dot/backslash/tab/bell, block markers).
func (ip *Interpreter) rawNext() (rune, bool) {
	if ip.in.Top() {
		return ip.in.Next()
	}
	c, ok := ip.in.Next()
	for ok && c == NI {
		c, ok = ip.in.Next()
	}
	if !ok {
		return 0, false
	}
	if c != EC {
		return c, true
	}
	c, ok = ip.in.Next()
	for ok && c == NI {
		c, ok = ip.in.Next()
	}
	if !ok {
		return 0, false
	}
	switch {
	case c == '\n':
		return ip.rawNext()
	case c == '.':
		return '.', true
	case c == '\\':
		ip.in.Back('\\')
		return NI, true
	case c == 't':
		ip.in.Back('\t')
		return NI, true
	case c == 'a':
		ip.in.Back('\a')
		return NI, true
	case c == '}' && !ip.cpmode:
		ip.blkdep--
		return ' ', true
	case c == '{' && !ip.cpmode:
		ip.blkdep++
		return ' ', true
	default:
		ip.in.Back(c)
		return EC, true
	}
}

// Next returns the next interpreted character, performing any
// interpolation (register, string, argument, numeric-format, width,
// conditional, environment-reset skip, comment discard) transparently.
func (ip *Interpreter) Next() (rune, bool) {
	if ip.in.Top() {
		return ip.in.Next()
	}
	c, ok := ip.rawNext()
	if !ok || c != EC {
		return c, ok
	}
	c, ok = ip.rawNext()
	if !ok {
		return c, ok
	}
	if c == 'E' && !ip.cpmode {
		c, ok = ip.Next()
		if !ok {
			return c, ok
		}
	}
	switch {
	case c == '"':
		for ok && c != '\n' {
			c, ok = ip.rawNext()
		}
		return c, ok
	case c == 'w' && !ip.cpmode:
		ip.cpWidth()
		return ip.Next()
	case c == 'n':
		ip.cpNum()
		return ip.Next()
	case c == '*':
		ip.cpStr()
		return ip.Next()
	case c == 'g':
		ip.cpNumFmt()
		return ip.Next()
	case c == '$':
		ip.cpArg()
		return ip.Next()
	case c == 'R' && !ip.cpmode:
		ip.cpNumDef()
		return ip.Next()
	case c == '?' && !ip.cpmode:
		ip.cpCond()
		return ip.Next()
	default:
		ip.in.Back(c)
		return EC, true
	}
}

// noninext is cp_noninext: Next with null-indicators stripped.
func (ip *Interpreter) noninext() (rune, bool) {
	c, ok := ip.Next()
	for ok && c == NI {
		c, ok = ip.Next()
	}
	return c, ok
}

// utf8next reads one code point. In the original source this decoded raw
// UTF-8 bytes by hand; here the input stack already works in runes, so it
// reduces to a single noninext read.
func (ip *Interpreter) utf8next() string {
	c, ok := ip.noninext()
	if !ok {
		return ""
	}
	return string(c)
}

// cparg reads an identifier argument in one of cparg's three forms:
// `(xy` (exactly two code points), `[name]` (bounded to maxLen-1 bytes,
// only outside copy-mode), or a single code point.
func (ip *Interpreter) cparg(maxLen int) string {
	c, ok := ip.noninext()
	if !ok {
		return ""
	}
	switch {
	case c == '(':
		return ip.utf8next() + ip.utf8next()
	case c == '[' && !ip.cpmode:
		var b []rune
		n := 0
		c, ok = ip.noninext()
		for ok && c != ']' && n+utf8.RuneLen(c) <= maxLen-1 {
			b = append(b, c)
			n += utf8.RuneLen(c)
			c, ok = ip.noninext()
		}
		return string(b)
	default:
		ip.Back(c)
		return ip.utf8next()
	}
}

func (ip *Interpreter) regid() int {
	return ip.namer.Map(ip.cparg(NMLEN))
}

// quotedNext reads the quoted argument a request-style escape expects
// (`'...'`), or a plain whitespace-delimited token if no opening quote is
// present, mirroring the shape of quotednext(arg, cp_noninext, cp_back).
func (ip *Interpreter) quotedNext() string {
	var b []rune
	c, ok := ip.noninext()
	if !ok {
		return ""
	}
	if c == '\'' {
		for {
			c, ok = ip.noninext()
			if !ok || c == '\'' {
				break
			}
			b = append(b, c)
		}
		return string(b)
	}
	for ok && c != ' ' && c != '\t' && c != '\n' {
		b = append(b, c)
		c, ok = ip.noninext()
	}
	if ok {
		ip.Back(c)
	}
	return string(b)
}

// cpNum interpolates \n[+-](xy.
func (ip *Interpreter) cpNum() {
	c, ok := ip.noninext()
	if ok && c != '-' && c != '+' {
		ip.Back(c)
	}
	id := ip.regid()
	if ok && (c == '-' || c == '+') {
		ip.regs.Inc(id, c == '+')
	}
	if s := ip.regs.Str(id); s != "" {
		ip.in.Push(s, nil)
	}
}

// cpStr interpolates \*(xy, or \*[xy arg1 arg2] with space-separated
// positional arguments inside the brackets; the `(xy` and single-character
// forms carry no arguments. Full request-argument tokenizing
// (quoting, nested escapes) belongs to the request dispatcher, which is
// out of scope here; arguments are split on whitespace.
func (ip *Interpreter) cpStr() {
	arg := ip.cparg(ILNLEN)
	name := arg
	var args []string
	if i := strings.IndexByte(arg, ' '); i >= 0 {
		name = arg[:i]
		args = strings.Fields(arg[i+1:])
		if len(args) > NARGS {
			args = args[:NARGS]
		}
	}
	if s := ip.strs.Get(ip.namer.Map(name)); s != "" {
		ip.in.Push(s, args)
	}
}

// cpNumFmt interpolates \g(xy.
func (ip *Interpreter) cpNumFmt() {
	id := ip.regid()
	if s := ip.regs.GetFmt(id); s != "" {
		ip.in.Push(s, nil)
	}
}

// cpArg interpolates \$1.
func (ip *Interpreter) cpArg() {
	name := ip.cparg(NMLEN)
	n, err := strconv.Atoi(name)
	if err != nil || n <= 0 || n > NARGS {
		return
	}
	if a, ok := ip.in.Arg(n); ok {
		ip.in.Push(a, nil)
	}
}

// cpWidth interpolates \w'...' by measuring the quoted group's rendered
// width and pushing its decimal text.
func (ip *Interpreter) cpWidth() {
	if ip.width == nil {
		return
	}
	w := ip.width(ip.Next, ip.Back)
	ip.in.Push(strconv.Itoa(w), nil)
}

// cpNumDef defines a register as \R'name expr'.
func (ip *Interpreter) cpNumDef() {
	arg := ip.quotedNext()
	i := strings.IndexByte(arg, ' ')
	if i < 0 {
		return
	}
	name, expr := arg[:i], arg[i+1:]
	id := ip.namer.Map(name)
	ip.regs.Set(id, ip.eval.EvalRe(expr, ip.regs.Get(id), 'u'))
}

// cpCond evaluates a conditional \?'cond@then@else@'. If the delimiter
// read is the zero-width marker `\&`, the character after it is used as
// the real delimiter instead.
func (ip *Interpreter) cpCond() {
	arg := ip.quotedNext()
	n, rest := ip.eval.EvalUp(arg)
	cr := newCharReader(rest)
	delim, ok := cr.next()
	if !ok {
		return
	}
	if delim == zeroWidthMarker {
		delim, ok = cr.next()
		if !ok {
			return
		}
	}
	var thenPart strings.Builder
	for {
		s, ok := cr.nextDelim(delim)
		if !ok {
			break
		}
		thenPart.WriteString(s)
	}
	cr.next() // consume the delimiter ending the then-part
	var elsePart strings.Builder
	for {
		s, ok := cr.nextDelim(delim)
		if !ok {
			break
		}
		elsePart.WriteString(s)
	}
	if n > 0 {
		ip.in.Push(thenPart.String(), nil)
	} else {
		ip.in.Push(elsePart.String(), nil)
	}
}

// Blk consumes the remainder of an input block. When skip is set, it
// discards characters up to a newline at or below the depth snapshotted
// by ReqBeg; otherwise it skips leading whitespace (as produced by a
// `\{`/`\}` collapse) but pushes back the first non-whitespace character.
func (ip *Interpreter) Blk(skip bool) {
	if skip {
		c, ok := ip.rawNext()
		for ok && (c != '\n' || ip.blkdep > ip.reqdep) {
			c, ok = ip.rawNext()
		}
		return
	}
	c, ok := ip.Next()
	for ok && (c == ' ' || c == '\t') {
		c, ok = ip.Next()
	}
	if ok && c != ' ' && c != '\t' {
		ip.Back(c)
	}
}
