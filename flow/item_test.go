package flow_test

import (
	"testing"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"

	"github.com/flavioabar/typst/flow"
)

func TestSpacingOrdering(t *testing.T) {
	small := flow.Spacing{Amount: flow.Abs(10 * dimen.PT)}
	big := flow.Spacing{Amount: flow.Abs(20 * dimen.PT)}
	if !small.Less(big) {
		t.Error("expected 10pt < 20pt, isn't")
	}
	if big.Less(small) || small.Less(small) {
		t.Error("expected spacing ordering to be strict, isn't")
	}
}

func TestSpacingIncomparable(t *testing.T) {
	abs := flow.Spacing{Amount: flow.Abs(10 * dimen.PT)}
	rel := flow.Spacing{Amount: flow.Pct(percent.FromInt(50))}
	fr := flow.Spacing{Fr: 1}
	node := flow.Node{Content: flow.Text("Hi")}

	for _, pair := range [][2]flow.Item{{abs, rel}, {abs, fr}, {abs, node}, {fr, node}} {
		if pair[0].Less(pair[1]) || pair[1].Less(pair[0]) {
			t.Errorf("expected %v and %v to be incomparable, aren't", pair[0], pair[1])
		}
	}
}

func TestFractionalOrdering(t *testing.T) {
	one := flow.Spacing{Fr: 1}
	two := flow.Spacing{Fr: 2}
	if !one.Less(two) || two.Less(one) {
		t.Error("expected fractions to be ordered by share, aren't")
	}
}

func TestBreakOrdering(t *testing.T) {
	if (flow.Break{}).Less(flow.Break{}) {
		t.Error("expected column breaks to never beat each other, do")
	}
}
