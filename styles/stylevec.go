package styles

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"fmt"
	"iter"
	"strings"
)

// Vec is an immutable ordered sequence of content items, each paired with
// the style chain that was active when the item was recorded. Items of
// equal consecutive chains are stored as a single run, so a Vec for a
// document section with few style changes is barely larger than a slice.
type Vec[T any] struct {
	items []T
	runs  []styleRun
}

// styleRun associates one chain with a count of consecutive items.
type styleRun struct {
	chain Chain
	count int
}

// Len returns the number of items.
func (v Vec[T]) Len() int {
	return len(v.items)
}

// IsEmpty is true if the sequence holds no items.
func (v Vec[T]) IsEmpty() bool {
	return len(v.items) == 0
}

// Items iterates over the items in sequence order. The returned iterator
// is restartable and does not mutate v.
func (v Vec[T]) Items() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range v.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Pairs iterates over (item, chain) pairs in sequence order.
func (v Vec[T]) Pairs() iter.Seq2[T, Chain] {
	return func(yield func(T, Chain) bool) {
		i := 0
		for _, run := range v.runs {
			for n := 0; n < run.count; n++ {
				if !yield(v.items[i], run.chain) {
					return
				}
				i++
			}
		}
	}
}

func (v Vec[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	for i, item := range v.items {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", item)
	}
	b.WriteByte(']')
	return b.String()
}

// VecBuilder collects (item, chain) pairs in append order and freezes them
// into a Vec. The zero VecBuilder is empty and ready to use.
//
// A VecBuilder is a single-owner, sequential type; see the package
// documentation of package model for the ownership rules.
type VecBuilder[T any] struct {
	items    []T
	runs     []styleRun
	finished bool
}

// Push appends an item together with its active style chain. Push never
// fails.
func (b *VecBuilder[T]) Push(item T, st Chain) {
	assertThat(!b.finished, "attempt to push to a finished style vec builder")
	b.items = append(b.items, item)
	if n := len(b.runs); n > 0 && b.runs[n-1].chain.Same(st) {
		b.runs[n-1].count++
		return
	}
	b.runs = append(b.runs, styleRun{chain: st, count: 1})
}

// IsEmpty is true if no items have been pushed.
func (b *VecBuilder[T]) IsEmpty() bool {
	return len(b.items) == 0
}

// Items iterates over the items pushed so far, in push order. The iterator
// is restartable and does not consume the builder.
func (b *VecBuilder[T]) Items() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range b.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Finish freezes the builder into an immutable Vec and returns it together
// with the common trunk of all recorded chains. The builder may not be
// used afterwards.
func (b *VecBuilder[T]) Finish() (Vec[T], Chain) {
	assertThat(!b.finished, "attempt to finish a style vec builder twice")
	b.finished = true
	chains := make([]Chain, len(b.runs))
	for i, run := range b.runs {
		chains[i] = run.chain
	}
	trunk := Trunk(chains...)
	tracer().Debugf("styles: froze vec of %d items, trunk depth %d", len(b.items), trunk.Depth())
	return Vec[T]{items: b.items, runs: b.runs}, trunk
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("styles: "+msg, msgargs...)
		panic(msg)
	}
}
