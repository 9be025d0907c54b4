// SPDX-License-Identifier: Apache-2.0

package optic

// ComposeIso narrows a Traversal through an [Iso].
//
// Each A target is converted to its B view, transformed, and converted
// back. The target count is unchanged: every A contributes exactly one B.
//
// Example:
//
//	// Traversal[[]Fahrenheit, Celsius]
//	optic.ComposeIso(optic.Slice[Fahrenheit](), celsius)
func ComposeIso[S, A, B any](t Traversal[S, A], iso Iso[A, B]) Traversal[S, B] {
	return Traversal[S, B]{modifyA: func(ap Applicative, f func(B) any) func(S) any {
		return t.modifyA(ap, func(a A) any {
			return ap.Map(f(iso.Get(a)), func(b any) any {
				return iso.Reverse(b.(B))
			})
		})
	}}
}

// ComposeLens narrows a Traversal through a [Lens].
//
// Each A target's single B part is extracted, transformed, and re-injected
// into that A. The target count is unchanged.
//
// Example:
//
//	// Traversal[[]User, string] over every user's name
//	optic.ComposeLens(optic.Slice[User](), name)
func ComposeLens[S, A, B any](t Traversal[S, A], lens Lens[A, B]) Traversal[S, B] {
	return Traversal[S, B]{modifyA: func(ap Applicative, f func(B) any) func(S) any {
		return t.modifyA(ap, func(a A) any {
			return ap.Map(f(lens.Get(a)), func(b any) any {
				return lens.Set(a, b.(B))
			})
		})
	}}
}

// ComposePrism narrows a Traversal through a [Prism].
//
// For each A target the prism's match is attempted. A hit is transformed
// and rebuilt; a miss leaves that one A untouched and moves on — it never
// errors and never short-circuits the rest of the traversal. Non-matching
// targets contribute zero visits, so they are invisible to any operation
// on the composed Traversal.
func ComposePrism[S, A, B any](t Traversal[S, A], prism Prism[A, B]) Traversal[S, B] {
	return Traversal[S, B]{modifyA: func(ap Applicative, f func(B) any) func(S) any {
		return t.modifyA(ap, func(a A) any {
			b, ok := prism.Match(a)
			if !ok {
				return ap.Of(a)
			}
			return ap.Map(f(b), func(v any) any {
				return prism.Build(v.(B))
			})
		})
	}}
}

// ComposeOptional narrows a Traversal through an [Optional].
//
// The skip policy is the same as [ComposePrism]: an absent focus leaves
// that one A untouched and the rest of the traversal proceeds. A present
// focus is transformed and written back into the original A with the
// optional's partial set, rather than rebuilt from scratch.
func ComposeOptional[S, A, B any](t Traversal[S, A], opt Optional[A, B]) Traversal[S, B] {
	return Traversal[S, B]{modifyA: func(ap Applicative, f func(B) any) func(S) any {
		return t.modifyA(ap, func(a A) any {
			b, ok := opt.Match(a)
			if !ok {
				return ap.Of(a)
			}
			return ap.Map(f(b), func(v any) any {
				return opt.Set(a, v.(B))
			})
		})
	}}
}

// ComposeTraversal nests one Traversal inside another.
//
// For each outer A target, the inner Traversal's own rebuild runs over that
// A; nested effects sequence in the same pass as the outer ones. The
// combined visit order is outer-major, inner-minor, left to right.
//
// Example:
//
//	// Traversal[[][]int, int] over every element of every row
//	optic.ComposeTraversal(optic.Slice[[]int](), optic.Slice[int]())
func ComposeTraversal[S, A, B any](outer Traversal[S, A], inner Traversal[A, B]) Traversal[S, B] {
	return Traversal[S, B]{modifyA: func(ap Applicative, f func(B) any) func(S) any {
		return outer.modifyA(ap, func(a A) any {
			return inner.modifyA(ap, f)(a)
		})
	}}
}
