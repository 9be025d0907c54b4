// SPDX-License-Identifier: Apache-2.0

package optic

import (
	"cmp"
	"slices"
)

// A Traverse is a traversable strategy for a container shape T holding A
// elements: it applies an effectful function to every element, sequences
// the effects left to right with the given [Applicative], and reassembles
// the container from the results.
//
// A lawful strategy must:
//
//   - visit the same elements, in the same order, for a given container
//     regardless of the effect or function supplied;
//
//   - return the container unchanged under the [Identity] applicative and
//     an identity function;
//
//   - distribute over composition of effectful functions.
//
// [NewTraversal] adapts a strategy into a [Traversal] directly.
type Traverse[T, A any] func(ap Applicative, f func(A) any) func(T) any

// SliceTraverse is the traversable strategy for slices: elements are
// visited in index order and a new slice is assembled from the results.
// The input slice is never mutated.
func SliceTraverse[A any]() Traverse[[]A, A] {
	return func(ap Applicative, f func(A) any) func([]A) any {
		return func(as []A) any {
			if len(as) == 0 {
				return ap.Of(as)
			}
			acc := ap.Of([]A(nil))
			for _, a := range as {
				acc = ap.Map2(acc, f(a), func(xs, x any) any {
					// Copy before appending: a branching effect may
					// combine the same partial result more than once.
					prev := xs.([]A)
					out := make([]A, len(prev), len(prev)+1)
					copy(out, prev)
					return append(out, x.(A))
				})
			}
			return acc
		}
	}
}

// OptionTraverse is the traversable strategy for [Option] values: a present
// value is visited once, an absent one not at all.
func OptionTraverse[A any]() Traverse[Option[A], A] {
	return func(ap Applicative, f func(A) any) func(Option[A]) any {
		return func(o Option[A]) any {
			a, ok := o.Get()
			if !ok {
				return ap.Of(o)
			}
			return ap.Map(f(a), func(v any) any {
				return SomeOf(v.(A))
			})
		}
	}
}

// MapTraverse is the traversable strategy for maps with ordered keys:
// values are visited in ascending key order, keeping the visit order
// deterministic, and a new map is assembled from the results. The input
// map is never mutated.
func MapTraverse[K cmp.Ordered, V any]() Traverse[map[K]V, V] {
	return func(ap Applicative, f func(V) any) func(map[K]V) any {
		return func(m map[K]V) any {
			if len(m) == 0 {
				return ap.Of(m)
			}
			keys := make([]K, 0, len(m))
			for k := range m {
				keys = append(keys, k)
			}
			slices.Sort(keys)
			acc := ap.Of(make(map[K]V, len(m)))
			for _, k := range keys {
				acc = ap.Map2(acc, f(m[k]), func(mv, v any) any {
					out := make(map[K]V, len(m))
					for kk, vv := range mv.(map[K]V) {
						out[kk] = vv
					}
					out[k] = v.(V)
					return out
				})
			}
			return acc
		}
	}
}

// Slice returns a Traversal over every element of a slice.
func Slice[A any]() Traversal[[]A, A] {
	return NewTraversal(SliceTraverse[A]())
}

// OptionValue returns a Traversal over the value inside an [Option], when
// present.
func OptionValue[A any]() Traversal[Option[A], A] {
	return NewTraversal(OptionTraverse[A]())
}

// MapValues returns a Traversal over every value of a map, visited in
// ascending key order.
func MapValues[K cmp.Ordered, V any]() Traversal[map[K]V, V] {
	return NewTraversal(MapTraverse[K, V]())
}
