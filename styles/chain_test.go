package styles_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/flavioabar/typst/styles"
)

func TestChainLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typst.styles")
	defer teardown()
	//
	base := styles.Default().Chained(styles.NewMap(
		styles.KeyValue{Key: "leading", Value: "7.15pt"},
		styles.KeyValue{Key: "stroke", Value: "1pt"},
	))
	inner := base.Chained(styles.NewMap(
		styles.KeyValue{Key: "stroke", Value: "2pt"},
	))

	if p := inner.Get("stroke").WithDefault(""); p != "2pt" {
		t.Errorf("expected innermost scope to win for 'stroke', got %q", p)
	}
	if p := inner.Get("leading").WithDefault(""); p != "7.15pt" {
		t.Errorf("expected 'leading' to cascade from outer scope, got %q", p)
	}
	if inner.Get("lang").IsJust() {
		t.Error("expected lookup of unset property to be Nothing, isn't")
	}
	// base must be unaffected by deriving inner from it
	if p := base.Get("stroke").WithDefault(""); p != "1pt" {
		t.Errorf("expected base chain to be immutable, 'stroke' now %q", p)
	}
}

func TestChainIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typst.styles")
	defer teardown()
	//
	m := styles.NewMap(styles.KeyValue{Key: "lang", Value: "de"})
	a := styles.Default().Chained(m)
	b := a
	c := styles.Default().Chained(m)

	if !a.Same(b) {
		t.Error("expected a copied chain to be the same cascade, isn't")
	}
	if a.Same(c) {
		t.Error("expected independently built chains to differ, don't")
	}
	if !styles.Default().Same(styles.Default()) {
		t.Error("expected all default chains to be the same cascade, aren't")
	}
}

func TestChainTrunk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typst.styles")
	defer teardown()
	//
	root := styles.Default().Chained(styles.NewMap(styles.KeyValue{Key: "lang", Value: "de"}))
	left := root.Chained(styles.NewMap(styles.KeyValue{Key: "stroke", Value: "1pt"}))
	right := root.Chained(styles.NewMap(styles.KeyValue{Key: "stroke", Value: "2pt"}))

	trunk := styles.Trunk(left, right)
	if !trunk.Same(root) {
		t.Errorf("expected trunk of two siblings to be their shared root, is %v", trunk)
	}
	if trunk := styles.Trunk(left, right, styles.Default()); !trunk.IsDefault() {
		t.Errorf("expected trunk with a default chain to be default, is %v", trunk)
	}
	if trunk := styles.Trunk(left); !trunk.Same(left) {
		t.Errorf("expected trunk of a single chain to be that chain, is %v", trunk)
	}
	if trunk := styles.Trunk(); !trunk.IsDefault() {
		t.Errorf("expected trunk of no chains to be default, is %v", trunk)
	}
}

func TestChainDepth(t *testing.T) {
	c := styles.Default()
	for i := 0; i < 3; i++ {
		if c.Depth() != i {
			t.Errorf("expected chain depth %d, is %d", i, c.Depth())
		}
		c = c.Chained(styles.NewMap())
	}
}
