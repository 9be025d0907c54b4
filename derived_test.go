// SPDX-License-Identifier: Apache-2.0

package optic

import (
	"testing"
)

func TestFilter(t *testing.T) {
	t.Parallel()
	even := func(n int) bool { return n%2 == 0 }

	t.Run("SetEvens", func(t *testing.T) {
		t.Parallel()
		got := Slice[int]().Filter(even).Set([]int{1, 2, 3, 4}, 0)
		assertEqual(t, got, []int{1, 0, 3, 0})
	})

	t.Run("NonMatchingUntouched", func(t *testing.T) {
		t.Parallel()
		input := []int{1, 2, 3, 4, 5}
		got := Slice[int]().Filter(even).Modify(input, func(n int) int { return n * 100 })
		assertEqual(t, got, []int{1, 200, 3, 400, 5})
	})

	t.Run("NonMatchingInvisible", func(t *testing.T) {
		t.Parallel()
		tr := Slice[int]().Filter(even)
		assertEqual(t, tr.Collect([]int{1, 2, 3, 4}), []int{2, 4})
		assertEqual(t, tr.Count([]int{1, 3, 5}), 0)
	})

	t.Run("InvisibleToLaterComposition", func(t *testing.T) {
		t.Parallel()
		// Filter first, then focus the X field: only even-X points are
		// visited by the composed traversal.
		tr := Prop(
			Slice[Point]().Filter(func(p Point) bool { return p.X%2 == 0 }),
			getX, setX,
		)
		input := []Point{{X: 1, Y: "a"}, {X: 2, Y: "b"}, {X: 4, Y: "c"}}
		assertEqual(t, tr.Collect(input), []int{2, 4})
		assertEqual(t, tr.Set(input, 0), []Point{{X: 1, Y: "a"}, {X: 0, Y: "b"}, {X: 0, Y: "c"}})
	})
}

func TestProp(t *testing.T) {
	t.Parallel()

	t.Run("SetX", func(t *testing.T) {
		t.Parallel()
		got := pointsX().Set([]Point{{X: 1, Y: "a"}, {X: 2, Y: "b"}}, 0)
		assertEqual(t, got, []Point{{X: 0, Y: "a"}, {X: 0, Y: "b"}})
	})

	t.Run("RoundTrip", func(t *testing.T) {
		t.Parallel()
		input := []Point{{X: 1, Y: "a"}, {X: 2, Y: "b"}, {X: 3, Y: "c"}}
		result := pointsX().Set(input, 42)
		for i, p := range result {
			if p.X != 42 {
				t.Errorf("element %d: got X %d, want 42", i, p.X)
			}
			if p.Y != input[i].Y {
				t.Errorf("element %d: Y changed from %q to %q", i, input[i].Y, p.Y)
			}
		}
	})
}

func TestProps(t *testing.T) {
	t.Parallel()
	type Sprite struct {
		Name string
		X, Y int
	}
	type position struct {
		X, Y int
	}

	pos := Props(Slice[Sprite](),
		func(s Sprite) position { return position{X: s.X, Y: s.Y} },
		func(s Sprite, p position) Sprite {
			s.X, s.Y = p.X, p.Y
			return s
		},
	)

	input := []Sprite{{Name: "a", X: 1, Y: 2}, {Name: "b", X: 3, Y: 4}}
	got := pos.Modify(input, func(p position) position {
		return position{X: p.Y, Y: p.X}
	})
	assertEqual(t, got, []Sprite{{Name: "a", X: 2, Y: 1}, {Name: "b", X: 4, Y: 3}})
}

func TestSome(t *testing.T) {
	t.Parallel()
	tr := Some(Slice[Option[int]]())

	t.Run("ModifyPresent", func(t *testing.T) {
		t.Parallel()
		input := []Option[int]{SomeOf(1), NoneOf[int](), SomeOf(3)}
		got := tr.Modify(input, func(n int) int { return n + 1 })
		assertEqual(t, got, []Option[int]{SomeOf(2), NoneOf[int](), SomeOf(4)})
	})

	t.Run("AbsentInvisible", func(t *testing.T) {
		t.Parallel()
		input := []Option[int]{NoneOf[int](), SomeOf(5)}
		assertEqual(t, tr.Collect(input), []int{5})
		assertEqual(t, tr.Count([]Option[int]{NoneOf[int]()}), 0)
	})
}
