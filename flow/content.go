package flow

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"

	"github.com/flavioabar/typst/styles"
)

// Content is a piece of document content before assembly. Content is a
// closed sum over the kinds the flow understands.
type Content interface {
	isContent()
}

// Text is a paragraph of text.
type Text string

// Sequence is a run of content children in document order.
type Sequence []Content

// Styled applies an additional style scope to its body.
type Styled struct {
	Body   Content
	Styles styles.Map
}

// VSpace requests vertical space. Weak spacing only materializes between
// two content items; fractional spacing (Fr > 0) distributes leftover
// region space and swallows any pending weak spacing.
type VSpace struct {
	Amount Rel
	Fr     float64
	Weak   bool
}

// Parbreak separates two paragraphs. It materializes as the paragraph
// leading taken from the active styles.
type Parbreak struct{}

// Colbreak terminates the current column. The soft variant collapses at
// region boundaries; a forced one always breaks.
type Colbreak struct {
	Force bool
}

// Tag is an invisible marker preserved at its exact position in the flow,
// e.g. a link target or a counter update.
type Tag string

// Hide lays out its body as usual but suppresses its visual output. The
// body still occupies space, so for assembly it behaves like any node.
type Hide struct {
	Body Content
}

// Axes holds a horizontal and a vertical component of some value.
type Axes[T any] struct {
	X, Y T
}

// Line is a stroked line from a start point along a delta vector. Stroke
// thickness and paint are style properties ("stroke"), not node arguments.
type Line struct {
	Start Axes[dimen.DU]
	Delta Axes[dimen.DU]
}

func (t Text) isContent()     {}
func (s Sequence) isContent() {}
func (s Styled) isContent()   {}
func (v VSpace) isContent()   {}
func (p Parbreak) isContent() {}
func (c Colbreak) isContent() {}
func (t Tag) isContent()      {}
func (h Hide) isContent()     {}
func (l Line) isContent()     {}

// LineTo creates a line between two points.
func LineTo(start, end Axes[dimen.DU]) Line {
	return Line{
		Start: start,
		Delta: Axes[dimen.DU]{X: end.X - start.X, Y: end.Y - start.Y},
	}
}

// LineFromAngle creates a line of the given length pointing away from the
// origin at an angle (in radians, counter-clockwise from the x-axis).
func LineFromAngle(length dimen.DU, angle float64) Line {
	return Line{
		Delta: Axes[dimen.DU]{
			X: dimen.DU(math.Cos(angle) * float64(length)),
			Y: dimen.DU(math.Sin(angle) * float64(length)),
		},
	}
}

func (t Text) String() string {
	return fmt.Sprintf("Text(%q)", string(t))
}

func (s Sequence) String() string {
	b := strings.Builder{}
	b.WriteString("Seq(")
	for i, c := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", c)
	}
	b.WriteString(")")
	return b.String()
}

func (s Styled) String() string {
	return fmt.Sprintf("Styled(%v, %v)", s.Styles, s.Body)
}

func (v VSpace) String() string {
	switch {
	case v.Fr > 0:
		return fmt.Sprintf("VSpace(%gfr)", v.Fr)
	case v.Weak:
		return fmt.Sprintf("VSpace(%s, weak)", v.Amount)
	}
	return fmt.Sprintf("VSpace(%s)", v.Amount)
}

func (p Parbreak) String() string {
	return "Parbreak"
}

func (c Colbreak) String() string {
	if c.Force {
		return "Colbreak(force)"
	}
	return "Colbreak"
}

func (t Tag) String() string {
	return fmt.Sprintf("Tag(%s)", string(t))
}

func (h Hide) String() string {
	return fmt.Sprintf("Hide(%v)", h.Body)
}

func (l Line) String() string {
	return fmt.Sprintf("Line(%v, %v → %v, %v)", l.Start.X, l.Start.Y, l.Delta.X, l.Delta.Y)
}
