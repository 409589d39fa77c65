package interp

import (
	"testing"

	"github.com/npillmayer/ntroff/instack"
)

func drain(t *testing.T, ip *Interpreter) string {
	t.Helper()
	var out []rune
	for {
		c, ok := ip.Next()
		if !ok {
			break
		}
		out = append(out, c)
	}
	return string(out)
}

func newTestInterp(t *testing.T, src string) *Interpreter {
	t.Helper()
	ip, err := New(instack.New(src), NewMapRegisters(), NewMapStrings(), NewMapNamer(), SimpleEvaluator{}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return ip
}

func TestConditionalTrue(t *testing.T) {
	ip := newTestInterp(t, `\?'1@A@B@'`)
	if got := drain(t, ip); got != "A" {
		t.Errorf("got %q, want %q", got, "A")
	}
}

func TestConditionalFalse(t *testing.T) {
	ip := newTestInterp(t, `\?'0@A@B@'`)
	if got := drain(t, ip); got != "B" {
		t.Errorf("got %q, want %q", got, "B")
	}
}

// TestConditionalZeroWidthDelimiter exercises the `\&` zero-width-marker
// delimiter form: the character following `\&` becomes the real delimiter.
// Pinned with an unambiguous construction (no extra `@` between the
// condition and `\&`) — see DESIGN.md for why the literal spec example is
// read as illustrative rather than a byte-exact transcript.
func TestConditionalZeroWidthDelimiter(t *testing.T) {
	ip := newTestInterp(t, `\?'1\&@X@Y@'`)
	if got := drain(t, ip); got != "X" {
		t.Errorf("got %q, want %q", got, "X")
	}
}

func TestRegisterIncrement(t *testing.T) {
	namer := NewMapNamer()
	id := namer.Map("xy")
	regs := NewMapRegisters()
	regs.Set(id, 5)
	ip, err := New(instack.New(`\n+(xy`), regs, NewMapStrings(), namer, SimpleEvaluator{}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := drain(t, ip); got != "6" {
		t.Errorf("got %q, want %q", got, "6")
	}
	if regs.Get(id) != 6 {
		t.Errorf("register xy = %d, want 6", regs.Get(id))
	}
}

func TestBackThenNextIsIdempotent(t *testing.T) {
	ip := newTestInterp(t, "hello")
	c, ok := ip.Next()
	if !ok || c != 'h' {
		t.Fatalf("Next() = %q, %v", c, ok)
	}
	ip.Back(c)
	c2, ok := ip.Next()
	if !ok || c2 != c {
		t.Errorf("after Back/Next, got %q, want %q", c2, c)
	}
}

func TestStringInterpolation(t *testing.T) {
	namer := NewMapNamer()
	strs := NewMapStrings()
	strs.Set(namer.Map("AB"), "expanded")
	ip, err := New(instack.New(`\*(AB!`), NewMapRegisters(), strs, namer, SimpleEvaluator{}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := drain(t, ip); got != "expanded!" {
		t.Errorf("got %q, want %q", got, "expanded!")
	}
}

func TestCopyModeSuppressesBlockMarkers(t *testing.T) {
	ip := newTestInterp(t, `a\{b\}c`)
	ip.CopyMode(true)
	if got := drain(t, ip); got != `a\{b\}c` {
		t.Errorf("got %q, want literal %q", got, `a\{b\}c`)
	}
	if ip.BlockDepth() != 0 {
		t.Errorf("block depth changed under copy-mode gating: %d", ip.BlockDepth())
	}
}
