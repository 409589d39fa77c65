package cord

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewStringCord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cords")
	defer teardown()
	//
	c := FromString("Hello World")
	if c.String() != "Hello World" {
		t.Errorf("expected cord.String() to be 'Hello World', got %q", c.String())
	}
	if c.Len() != 11 {
		t.Errorf("expected cord len to be 11, is %d", c.Len())
	}
}

func TestVoidCord(t *testing.T) {
	var c Cord
	if !c.IsVoid() {
		t.Error("expected zero-value Cord to be void")
	}
	if c.String() != "" {
		t.Errorf("expected zero-value Cord to render as \"\", got %q", c.String())
	}
}

func TestBuilderAppend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cords")
	defer teardown()
	//
	b := NewBuilder()
	b.Append(StringLeaf("Hello"))
	b.Append(StringLeaf(", "))
	b.Append(StringLeaf("World"))
	c := b.Cord()
	if c.String() != "Hello, World" {
		t.Errorf("expected concatenated fragments, got %q", c.String())
	}
	if c.Len() != 12 {
		t.Errorf("expected len 12, got %d", c.Len())
	}
}

func TestBuilderAppendAfterCordIsIllegal(t *testing.T) {
	b := NewBuilder()
	b.Append(StringLeaf("x"))
	_ = b.Cord()
	if err := b.Append(StringLeaf("y")); err != ErrCordCompleted {
		t.Errorf("expected ErrCordCompleted appending after Cord(), got %v", err)
	}
}

func TestEachLeafOrder(t *testing.T) {
	b := NewBuilder()
	b.Append(StringLeaf("a"))
	b.Append(StringLeaf("b"))
	b.Append(StringLeaf("c"))
	c := b.Cord()
	var seen []string
	c.EachLeaf(func(l Leaf) error {
		seen = append(seen, l.String())
		return nil
	})
	if len(seen) != 3 || seen[0] != "a" || seen[1] != "b" || seen[2] != "c" {
		t.Errorf("expected fragments in append order, got %v", seen)
	}
}

func TestEmptyLeafIsSkipped(t *testing.T) {
	b := NewBuilder()
	b.Append(StringLeaf(""))
	b.Append(StringLeaf("x"))
	c := b.Cord()
	if c.Len() != 1 {
		t.Errorf("expected empty leaf to contribute nothing, len=%d", c.Len())
	}
}
