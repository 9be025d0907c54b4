// SPDX-License-Identifier: Apache-2.0

package optic

// Filter narrows a Traversal to the targets satisfying the predicate.
//
// Non-matching targets are not merely skipped during modification: they are
// excluded from the traversal itself, invisible to any later Modify, Set,
// query, or composition. The predicate must be pure — it is re-evaluated
// against the structure at hand on every run.
//
// Filter composes with a prism whose match succeeds only when the predicate
// holds and whose build is identity.
//
// Example:
//
//	evens := optic.Slice[int]().Filter(func(n int) bool { return n%2 == 0 })
//	evens.Set([]int{1, 2, 3, 4}, 0)
//	// []int{1, 0, 3, 0}
func (t Traversal[S, A]) Filter(pred func(A) bool) Traversal[S, A] {
	return ComposePrism(t, NewPrism(
		func(a A) (A, bool) {
			return a, pred(a)
		},
		func(a A) A {
			return a
		},
	))
}

// Prop narrows a Traversal to a single field of each target.
//
// The field is named by its getter/setter pair, so naming a field that does
// not exist is a compile error, not a runtime one. Prop is [ComposeLens]
// with the field's lens; the setter must be copy-on-write.
//
// Example:
//
//	xs := optic.Prop(optic.Slice[Point](),
//	    func(p Point) int { return p.X },
//	    func(p Point, x int) Point { p.X = x; return p },
//	)
//	xs.Set([]Point{{X: 1, Y: "a"}, {X: 2, Y: "b"}}, 0)
//	// []Point{{X: 0, Y: "a"}, {X: 0, Y: "b"}}
func Prop[S, A, B any](t Traversal[S, A], get func(A) B, set func(A, B) A) Traversal[S, B] {
	return ComposeLens(t, NewLens(get, set))
}

// Props narrows a Traversal to a fixed multi-field projection of each
// target.
//
// The projection is an ordinary struct extracted and re-injected as a
// whole, letting one Modify rewrite several fields of a target at once
// while leaving the rest untouched. As with [Prop], a projection that does
// not line up with the target type is a compile error.
//
// Example:
//
//	type position struct{ X, Y int }
//	pos := optic.Props(optic.Slice[Sprite](),
//	    func(s Sprite) position { return position{s.X, s.Y} },
//	    func(s Sprite, p position) Sprite { s.X, s.Y = p.X, p.Y; return s },
//	)
func Props[S, A, P any](t Traversal[S, A], get func(A) P, set func(A, P) A) Traversal[S, P] {
	return ComposeLens(t, NewLens(get, set))
}

// Some narrows a Traversal over optional values to the values that are
// present.
//
// Absent targets contribute zero visits, under the same skip policy as
// [ComposePrism]: they are left untouched and never abort or alter sibling
// targets.
//
// Example:
//
//	opts := []optic.Option[int]{optic.SomeOf(1), optic.NoneOf[int](), optic.SomeOf(3)}
//	optic.Some(optic.Slice[optic.Option[int]]()).Modify(opts, func(n int) int { return n + 1 })
//	// [Some(2), None, Some(4)]
func Some[S, A any](t Traversal[S, Option[A]]) Traversal[S, A] {
	return ComposeOptional(t, NewOptional(
		func(o Option[A]) (A, bool) {
			return o.Get()
		},
		func(o Option[A], a A) Option[A] {
			if o.IsNone() {
				return o
			}
			return SomeOf(a)
		},
	))
}
