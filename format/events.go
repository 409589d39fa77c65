package format

import (
	"context"

	"github.com/guiguan/caster"
)

// EventKind distinguishes the two things a Formatter can tell subscribers
// about without them polling the synchronous NextLine path.
type EventKind int

const (
	// LineReady fires each time Fill completes without back-pressure,
	// whether or not that call queued a new line. Word, Newline and
	// FillReq never publish it, even when they queue lines.
	LineReady EventKind = iota
	// Retry fires when Word, Fill, FillReq or a fill-mode Newline reports
	// back-pressure.
	Retry
)

// Event is what Events broadcasts.
type Event struct {
	Kind EventKind
}

// Events is an optional fan-out notifier, backed by guiguan/caster, that a
// Formatter can publish line-ready/retry events to. This has no
// counterpart in the original source (which had no observer hook); it is
// a justified ambient addition for consumers that would otherwise have to
// poll NextLine.
type Events struct {
	ctx context.Context
	c   *caster.Caster
}

// NewEvents creates an Events broadcaster bound to ctx; Close should be
// called when the formatter using it is done.
func NewEvents(ctx context.Context) *Events {
	return &Events{ctx: ctx, c: caster.New(ctx)}
}

// Subscribe returns a channel of future events and a cancel func to stop
// receiving them.
func (e *Events) Subscribe(bufLen int) (<-chan interface{}, context.CancelFunc) {
	return e.c.Sub(e.ctx, bufLen)
}

func (e *Events) publish(kind EventKind) {
	_ = e.c.Pub(e.ctx, Event{Kind: kind})
}

// Close shuts the broadcaster down; no further events are delivered.
func (e *Events) Close() {
	e.c.Close()
}
