// SPDX-License-Identifier: Apache-2.0

package optic

import (
	"reflect"
	"strconv"
	"testing"
)

// ==== Test Helpers: Assertions ====

// assertEqual fails the test unless got and want are deeply equal.
func assertEqual[T any](t *testing.T, got, want T) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

// ==== Test Helpers: Point ====

// Point is the record type used across the composition and derived
// combinator tests.
type Point struct {
	X int
	Y string
}

// getX and setX name Point's X field for [Prop].
func getX(p Point) int {
	return p.X
}

func setX(p Point, x int) Point {
	p.X = x
	return p
}

// pointsX is a traversal over the X field of every point in a slice.
func pointsX() Traversal[[]Point, int] {
	return Prop(Slice[Point](), getX, setX)
}

// ==== Test Helpers: Optics ====

// negated views an int through its negation; it is its own inverse.
func negated() Iso[int, int] {
	return NewIso(
		func(n int) int { return -n },
		func(n int) int { return -n },
	)
}

// numeric matches strings that parse as integers and rebuilds them with
// strconv.
func numeric() Prism[string, int] {
	return NewPrism(
		func(s string) (int, bool) {
			n, err := strconv.Atoi(s)
			return n, err == nil
		},
		strconv.Itoa,
	)
}

// head focuses the first element of an int slice, when there is one.
func head() Optional[[]int, int] {
	return NewOptional(
		func(xs []int) (int, bool) {
			if len(xs) == 0 {
				return 0, false
			}
			return xs[0], true
		},
		func(xs []int, x int) []int {
			if len(xs) == 0 {
				return xs
			}
			out := append([]int(nil), xs...)
			out[0] = x
			return out
		},
	)
}

// ==== Test Helpers: Effects ====

// counted is the effect value of the counting applicative.
type counted struct {
	value any
	n     int
}

// counting rebuilds the structure like Identity while tallying how many
// per-target effects were combined in.
var counting = Applicative{
	Of: func(v any) any {
		return counted{value: v}
	},
	Map2: func(fa, fb any, f func(a, b any) any) any {
		ca := fa.(counted)
		cb := fb.(counted)
		return counted{value: f(ca.value, cb.value), n: ca.n + cb.n}
	},
}
