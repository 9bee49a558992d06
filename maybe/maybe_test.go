package maybe_test

import (
	"testing"

	. "github.com/flavioabar/typst/maybe"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	if v, ok := x.Value(); !ok || v != 7 {
		t.Errorf("expected x to be Just(7), is %v, %v", v, ok)
	}
	if w, ok := y.Value(); ok || w != 0 {
		t.Errorf("expected y to be Nothing, is %v, %v", w, ok)
	}
	if !x.IsJust() || y.IsJust() {
		t.Error("expected IsJust to distinguish Just(7) from Nothing, doesn't")
	}
}

func TestMaybeWithDefault(t *testing.T) {
	if xx := Just(7).WithDefault(100); xx != 7 {
		t.Logf("x = %d", xx)
		t.Error("expected Just(7) to have value 7, isn't")
	}
	if yy := Nothing[int]().WithDefault(100); yy != 100 {
		t.Logf("y = %d", yy)
		t.Error("expected Nothing to default to 100, isn't")
	}
}

func TestMaybeMap(t *testing.T) {
	double := func(n int) int { return n * 2 }
	if v := Just(7).Map(double).WithDefault(-1); v != 14 {
		t.Error("expected Just(7).Map(…) to return 14, didn't")
	}
	if v := Nothing[int]().Map(double).WithDefault(99); v != 99 {
		t.Error("expected Nothing.Map(…) to stay Nothing, didn't")
	}
	str := Map(func(n int) rune { return rune('a' + n) }, Just(1))
	if v := str.WithDefault('?'); v != 'b' {
		t.Errorf("expected Map(…, Just 1) to return 'b', got %q", v)
	}
}

func TestMaybeAndThen(t *testing.T) {
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}
	if _, ok := AndThen(gt0, Just(7)).Value(); !ok {
		t.Error("expected Just(7) |> andThen(gt0) to be true, isn't")
	}
	if _, ok := AndThen(gt0, Nothing[int]()).Value(); ok {
		t.Error("expected Nothing |> andThen(gt0) to be Nothing, isn't")
	}
}
