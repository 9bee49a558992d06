package model

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"fmt"
	"iter"

	"github.com/flavioabar/typst/maybe"
	"github.com/flavioabar/typst/styles"
)

// Ordered is the capability weak items need for the tie-break between
// competing candidates. Less must implement a strict partial order;
// incomparable items report false in both directions.
//
// Only the Weak operation requires this capability. Item types without an
// ordering can still be fed through Destructive, Supportive and Ignorant.
type Ordered[T any] interface {
	Less(other T) bool
}

// CollapsingBuilder is a wrapper around a styles.VecBuilder that collapses
// items with no visible effect.
//
// Items come in four classes. Supportive items are real content; they are
// committed immediately and release everything staged before them.
// Destructive items are hard boundaries; they cancel pending weak items.
// Weak items (spacing, soft breaks) survive only between two supportive
// items with no destructive item in between; among several weak candidates
// in one gap a single winner is kept. Ignorant items are invisible markers:
// always preserved in place, transparent to every collapsing decision
// around them.
//
// A CollapsingBuilder is a sequential, single-owner state machine. It must
// not be shared between goroutines; independent documents or sub-trees each
// own a private instance. The zero value is empty and ready to use.
type CollapsingBuilder[T any] struct {
	builder styles.VecBuilder[T]
	staged  []stagedEntry[T] // weak and ignorant items not yet committed
	last    last             // class of the last non-ignorant item
	done    bool             // Finish has been called
}

// stagedEntry is an item held back until its fate is decided. weakness is
// Just(w) for a weak item and Nothing for an ignorant one.
type stagedEntry[T any] struct {
	item     T
	styles   styles.Chain
	weakness maybe.Maybe[uint8]
}

// last tracks the class of the most recent non-ignorant item. A document
// starts as if a break had just occurred (nothing precedes the start), so
// the zero value is lastDestructive and leading weak items never survive.
type last int8

const (
	lastDestructive last = iota
	lastWeak
	lastSupportive
)

func (l last) String() string {
	switch l {
	case lastDestructive:
		return "destructive"
	case lastWeak:
		return "weak"
	case lastSupportive:
		return "supportive"
	}
	return fmt.Sprintf("last(%d)", l)
}

// NewCollapsingBuilder creates an empty collapsing builder.
func NewCollapsingBuilder[T any]() *CollapsingBuilder[T] {
	return &CollapsingBuilder[T]{}
}

// IsEmpty is true if nothing has been committed or staged.
func (b *CollapsingBuilder[T]) IsEmpty() bool {
	return b.builder.IsEmpty() && len(b.staged) == 0
}

// Weak submits a weak item: one that can only exist with at least one
// supportive item to its left and to its right and no destructive item in
// between. Ignorant items in between do not count in either direction.
//
// Among competing weak candidates in the same gap, the strongest one
// (smallest weakness) wins. When tied, the candidate that compares larger
// under the item ordering wins. Losing candidates are discarded outright;
// there is never more than one weak contender staged at a time.
//
// Weak is a package-level function so that the ordering bound applies to
// this operation only, not to the builder's item type as a whole.
func Weak[T Ordered[T]](b *CollapsingBuilder[T], item T, st styles.Chain, weakness uint8) {
	assertThat(!b.done, "attempt to use a finished collapsing builder")
	if b.last == lastDestructive {
		tracer().Debugf("collapse: dropping weak item %v after a destructive one", item)
		return
	}
	if b.last == lastWeak {
		beaten := -1
		for i, prev := range b.staged {
			if w, ok := prev.weakness.Value(); ok &&
				(weakness < w || (weakness == w && prev.item.Less(item))) {
				beaten = i
				break
			}
		}
		if beaten < 0 {
			tracer().Debugf("collapse: weak item %v lost its contest", item)
			return
		}
		b.staged = append(b.staged[:beaten], b.staged[beaten+1:]...)
	}
	b.staged = append(b.staged, stagedEntry[T]{item: item, styles: st, weakness: maybe.Just(weakness)})
	b.last = lastWeak
}

// Destructive commits a hard boundary, forcing nearby weak items to
// collapse.
func (b *CollapsingBuilder[T]) Destructive(item T, st styles.Chain) {
	assertThat(!b.done, "attempt to use a finished collapsing builder")
	b.flush(false)
	b.builder.Push(item, st)
	b.last = lastDestructive
}

// Supportive commits a real content item, allowing nearby weak items to
// exist.
func (b *CollapsingBuilder[T]) Supportive(item T, st styles.Chain) {
	assertThat(!b.done, "attempt to use a finished collapsing builder")
	b.flush(true)
	b.builder.Push(item, st)
	b.last = lastSupportive
}

// Ignorant stages an invisible marker. It is always preserved at its
// position and has no influence on any other item.
func (b *CollapsingBuilder[T]) Ignorant(item T, st styles.Chain) {
	assertThat(!b.done, "attempt to use a finished collapsing builder")
	b.staged = append(b.staged, stagedEntry[T]{item: item, styles: st, weakness: maybe.Nothing[uint8]()})
}

// Items iterates over the contained items: committed ones first, then
// staged ones, each group in arrival order. The iterator is restartable
// and does not change the builder's state.
func (b *CollapsingBuilder[T]) Items() iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range b.builder.Items() {
			if !yield(item) {
				return
			}
		}
		for _, entry := range b.staged {
			if !yield(entry.item) {
				return
			}
		}
	}
}

// Finish flushes remaining staged items and freezes the underlying
// builder. The end of the document behaves like an implicit break, so a
// trailing weak item is discarded. It returns the immutable sequence and
// the common trunk of all retained items' style chains.
//
// Finish consumes the builder; any operation afterwards panics.
func (b *CollapsingBuilder[T]) Finish() (styles.Vec[T], styles.Chain) {
	assertThat(!b.done, "attempt to use a finished collapsing builder")
	tracer().Debugf("collapse: finishing with last=%s, %d staged", b.last, len(b.staged))
	b.flush(false)
	b.done = true
	return b.builder.Finish()
}

// flush commits the staged items, filtering out weak ones unless
// supportive is set.
func (b *CollapsingBuilder[T]) flush(supportive bool) {
	for _, entry := range b.staged {
		if supportive || !entry.weakness.IsJust() {
			b.builder.Push(entry.item, entry.styles)
		}
	}
	b.staged = b.staged[:0]
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("model: "+msg, msgargs...)
		panic(msg)
	}
}
