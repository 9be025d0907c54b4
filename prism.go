// SPDX-License-Identifier: Apache-2.0

package optic

// A Prism focuses on a part that may or may not be there, with a way to
// rebuild the whole from the part alone.
//
// Match attempts to view the part; Build reconstructs a whole from a part
// and must be total. A Prism typically selects one case of a sum-like type
// (a matching interface implementation, a tagged variant, a parseable
// string).
//
// The library consumes Prisms opaquely through [ComposePrism] and
// constructs them internally for [Traversal.Filter].
type Prism[S, A any] struct {
	match func(S) (A, bool)
	build func(A) S
}

// NewPrism creates a Prism from a partial match and a total build.
//
// Example — focus the integer payload of a string that parses as one:
//
//	numeric := optic.NewPrism(
//	    func(s string) (int, bool) {
//	        n, err := strconv.Atoi(s)
//	        return n, err == nil
//	    },
//	    strconv.Itoa,
//	)
func NewPrism[S, A any](match func(S) (A, bool), build func(A) S) Prism[S, A] {
	return Prism[S, A]{match: match, build: build}
}

// Match attempts to view the focused part, reporting whether it matched.
func (p Prism[S, A]) Match(s S) (A, bool) {
	return p.match(s)
}

// Build reconstructs a whole from the focused part.
func (p Prism[S, A]) Build(a A) S {
	return p.build(a)
}
