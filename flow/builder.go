package flow

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"iter"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"

	"github.com/flavioabar/typst/maybe"
	"github.com/flavioabar/typst/model"
	"github.com/flavioabar/typst/styles"
)

// Weakness levels for the collapsing tie-break. A soft column break beats
// explicit weak spacing, which in turn beats paragraph leading.
const (
	weaknessColbreak uint8 = iota
	weaknessSpacing
	weaknessLeading
)

// defaultLeading is the paragraph leading used when the styles do not set
// the "leading" property: 0.65em at the 11pt base font size.
var defaultLeadingPt = 7.15
var defaultLeading = dimen.DU(defaultLeadingPt * float64(dimen.PT))

// Builder assembles a document's flow into the final sequence of flow
// items. It walks content trees handed to Accept, classifies every piece
// and delegates the collapsing decisions to a model.CollapsingBuilder.
//
// Each Builder owns its engine exclusively; process independent documents
// or sub-trees with one Builder each. The zero value is ready to use.
type Builder struct {
	engine model.CollapsingBuilder[Item]
}

// NewBuilder creates an empty flow builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Accept walks content in document order under the given style chain and
// feeds the resulting flow items to the collapsing engine.
func (fb *Builder) Accept(c Content, st styles.Chain) {
	switch c := c.(type) {
	case Sequence:
		for _, child := range c {
			fb.Accept(child, st)
		}
	case Styled:
		fb.Accept(c.Body, st.Chained(c.Styles))
	case Text:
		fb.engine.Supportive(Node{Content: c}, st)
	case Hide:
		fb.engine.Supportive(Node{Content: c}, st)
	case Line:
		fb.engine.Supportive(Node{Content: c}, st)
	case VSpace:
		switch {
		case c.Fr > 0:
			// fractional space swallows any pending weak spacing
			fb.engine.Destructive(Spacing{Fr: c.Fr}, st)
		case c.Weak:
			model.Weak[Item](&fb.engine, Spacing{Amount: c.Amount}, st, weaknessSpacing)
		default:
			fb.engine.Supportive(Spacing{Amount: c.Amount}, st)
		}
	case Parbreak:
		model.Weak[Item](&fb.engine, Spacing{Amount: Abs(leading(st))}, st, weaknessLeading)
	case Colbreak:
		if c.Force {
			fb.engine.Destructive(Break{}, st)
		} else {
			model.Weak[Item](&fb.engine, Break{}, st, weaknessColbreak)
		}
	case Tag:
		fb.engine.Ignorant(Node{Content: c}, st)
	default:
		tracer().Errorf("flow: unknown content kind %T, skipped", c)
	}
}

// IsEmpty is true as long as no flow item has been produced.
func (fb *Builder) IsEmpty() bool {
	return fb.engine.IsEmpty()
}

// Items iterates over the flow items assembled so far, committed items
// first, then items still staged for collapsing.
func (fb *Builder) Items() iter.Seq[Item] {
	return fb.engine.Items()
}

// Finish assembles the final flow sequence. The builder may not be used
// afterwards.
func (fb *Builder) Finish() (styles.Vec[Item], styles.Chain) {
	return fb.engine.Finish()
}

// leading determines the paragraph leading from the active styles. The
// "leading" property is expected in points, e.g. "7.15pt".
func leading(st styles.Chain) dimen.DU {
	return maybe.AndThen(parsePoints, st.Get("leading")).WithDefault(defaultLeading)
}

func parsePoints(p styles.Property) maybe.Maybe[dimen.DU] {
	pt, err := strconv.ParseFloat(strings.TrimSuffix(string(p), "pt"), 64)
	if err != nil {
		tracer().Errorf("flow: cannot parse length %q, ignored", p)
		return maybe.Nothing[dimen.DU]()
	}
	return maybe.Just(dimen.DU(pt * float64(dimen.PT)))
}
