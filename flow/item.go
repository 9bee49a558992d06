package flow

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"fmt"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

// Rel is a length with an optional share relative to the enclosing region,
// e.g. "10pt + 5%". Resolving the relative share against a concrete region
// happens during layout, not here.
type Rel struct {
	Abs dimen.DU
	Pct percent.Percent
}

// Abs creates a purely absolute length.
func Abs(d dimen.DU) Rel {
	return Rel{Abs: d}
}

// Pct creates a purely region-relative length.
func Pct(p percent.Percent) Rel {
	return Rel{Pct: p}
}

// IsZero is true for the zero length.
func (r Rel) IsZero() bool {
	return r == Rel{}
}

func (r Rel) String() string {
	var none percent.Percent
	if r.Pct == none {
		return r.Abs.String()
	}
	return fmt.Sprintf("%s + %s", r.Abs, r.Pct)
}

// less orders lengths with equal relative share by their absolute part.
// Lengths with differing relative shares are incomparable.
func (r Rel) less(other Rel) bool {
	return r.Pct == other.Pct && r.Abs < other.Abs
}

// --- Flow items ------------------------------------------------------------

// Item is an element of the assembled flow sequence. Item is a closed sum:
// the concrete kinds are Node, Spacing and Break.
//
// Less implements model.Ordered for the weak tie-break. It is a strict
// partial order; items of different kinds are incomparable.
type Item interface {
	Less(other Item) bool
	fmt.Stringer
	flowItem()
}

// Node is a self-contained piece of content in the flow, e.g. a paragraph.
type Node struct {
	Content Content
}

// Spacing is vertical whitespace between items, either a (relative) length
// or a fraction of the space remaining in the region.
type Spacing struct {
	Amount Rel
	Fr     float64 // > 0 means fractional spacing; Amount is ignored then
}

// Break terminates the current column.
type Break struct{}

func (n Node) flowItem()    {}
func (s Spacing) flowItem() {}
func (b Break) flowItem()   {}

func (n Node) String() string {
	return fmt.Sprintf("Node(%v)", n.Content)
}

func (s Spacing) String() string {
	if s.Fr > 0 {
		return fmt.Sprintf("Spacing(%gfr)", s.Fr)
	}
	return fmt.Sprintf("Spacing(%s)", s.Amount)
}

func (b Break) String() string {
	return "Colbreak"
}

// Less on nodes: content is never ordered.
func (n Node) Less(Item) bool {
	return false
}

// Less orders spacings of the same kind by size; a bigger spacing wins an
// equal-strength contest. Fractional and length spacing are incomparable,
// as are spacing and any other item kind.
func (s Spacing) Less(other Item) bool {
	o, ok := other.(Spacing)
	if !ok {
		return false
	}
	if s.Fr > 0 || o.Fr > 0 {
		return s.Fr > 0 && o.Fr > 0 && s.Fr < o.Fr
	}
	return s.Amount.less(o.Amount)
}

// Less on breaks: all column breaks are equal, none beats another.
func (b Break) Less(Item) bool {
	return false
}
