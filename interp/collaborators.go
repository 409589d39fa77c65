package interp

import "strconv"

// Registers models the register table collaborator (num_get/num_set/
// num_inc/num_str/num_getfmt).
type Registers interface {
	Get(id int) int
	Set(id int, v int)
	Inc(id int, up bool)
	Str(id int) string
	GetFmt(id int) string
}

// Strings models the string table collaborator (str_get).
type Strings interface {
	Get(id int) string
}

// Namer models the name-to-id interning collaborator (map(name)).
type Namer interface {
	Map(name string) int
}

// Evaluator models the numeric expression evaluator (eval_re, eval_up).
type Evaluator interface {
	// EvalUp reads a numeric expression prefix of s, returning its value
	// and the unconsumed remainder (eval_up(&s, '\0')).
	EvalUp(s string) (n int, rest string)
	// EvalRe evaluates expr relative to prev (the register's current
	// value), using unit as the default unit suffix (eval_re(s, prev, u)).
	EvalRe(expr string, prev int, unit byte) int
}

// WidthMeasurer renders the text read through next/back (until the
// collaborator decides it has seen a complete group) and returns its
// typeset width (ren_wid(next, back)).
type WidthMeasurer func(next func() (rune, bool), back func(rune)) int

// RuneWidthMeasurer adapts a per-rune width function — such as one built on
// format.StringWidth — into the WidthMeasurer shape \w needs: it sums widths
// over the characters of a single-quoted group, mirroring ren_wid's own
// quoted-argument convention.
func RuneWidthMeasurer(width func(rune) int) WidthMeasurer {
	return func(next func() (rune, bool), back func(rune)) int {
		c, ok := next()
		if !ok {
			return 0
		}
		if c != '\'' {
			back(c)
			return 0
		}
		total := 0
		for {
			c, ok = next()
			if !ok || c == '\'' {
				break
			}
			total += width(c)
		}
		return total
	}
}

// MapNamer interns names to incrementing integer ids. A minimal test
// double for Namer; a real build backs this with the request dispatcher's
// own symbol table.
type MapNamer struct {
	ids  map[string]int
	next int
}

// NewMapNamer creates an empty MapNamer.
func NewMapNamer() *MapNamer {
	return &MapNamer{ids: make(map[string]int)}
}

// Map interns name, assigning it a fresh id on first sight.
func (m *MapNamer) Map(name string) int {
	if id, ok := m.ids[name]; ok {
		return id
	}
	m.next++
	m.ids[name] = m.next
	return m.next
}

// MapRegisters is a minimal map-backed Registers test double.
type MapRegisters struct {
	vals map[int]int
	fmts map[int]string
}

// NewMapRegisters creates an empty MapRegisters.
func NewMapRegisters() *MapRegisters {
	return &MapRegisters{vals: make(map[int]int), fmts: make(map[int]string)}
}

func (r *MapRegisters) Get(id int) int { return r.vals[id] }

func (r *MapRegisters) Set(id int, v int) { r.vals[id] = v }

func (r *MapRegisters) Inc(id int, up bool) {
	if up {
		r.vals[id]++
	} else {
		r.vals[id]--
	}
}

func (r *MapRegisters) Str(id int) string {
	if v, ok := r.vals[id]; ok {
		return strconv.Itoa(v)
	}
	return ""
}

// GetFmt returns a formatted register value; defaulting to its plain
// string form unless SetFmt gave it an explicit format.
func (r *MapRegisters) GetFmt(id int) string {
	if f, ok := r.fmts[id]; ok {
		return f
	}
	return r.Str(id)
}

// SetFmt pins the interpolation text \g returns for id.
func (r *MapRegisters) SetFmt(id int, f string) { r.fmts[id] = f }

// MapStrings is a minimal map-backed Strings test double.
type MapStrings struct {
	vals map[int]string
}

// NewMapStrings creates an empty MapStrings.
func NewMapStrings() *MapStrings {
	return &MapStrings{vals: make(map[int]string)}
}

func (s *MapStrings) Get(id int) string { return s.vals[id] }

// Set assigns id's expansion text.
func (s *MapStrings) Set(id int, v string) { s.vals[id] = v }

// SimpleEvaluator is a minimal Evaluator test double understanding plain
// signed decimal literals and +N/-N increments, enough to drive the
// conditional and register-define boundary scenarios.
type SimpleEvaluator struct{}

// EvalUp reads a leading signed integer literal off s.
func (SimpleEvaluator) EvalUp(s string) (int, string) {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if start == i {
		return 0, s
	}
	n, _ := strconv.Atoi(s[:i])
	return n, s[i:]
}

// EvalRe evaluates expr as an absolute literal, or as prev+N / prev-N.
func (SimpleEvaluator) EvalRe(expr string, prev int, _ byte) int {
	if expr == "" {
		return prev
	}
	switch expr[0] {
	case '+':
		n, _ := strconv.Atoi(expr[1:])
		return prev + n
	case '-':
		n, _ := strconv.Atoi(expr[1:])
		return prev - n
	default:
		n, err := strconv.Atoi(expr)
		if err != nil {
			return prev
		}
		return n
	}
}
