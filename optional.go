// SPDX-License-Identifier: Apache-2.0

package optic

// An Optional focuses on a part that may or may not be there, updating in
// place when it is.
//
// Unlike a [Prism], an Optional cannot rebuild the whole from the part
// alone: Set needs the original whole and leaves it unchanged when there is
// nothing to replace.
//
// The library consumes Optionals opaquely through [ComposeOptional] and
// constructs them internally for [Some].
type Optional[S, A any] struct {
	match func(S) (A, bool)
	set   func(S, A) S
}

// NewOptional creates an Optional from a partial match and a partial set.
//
// Set must be copy-on-write and must return the original S unchanged when
// the focus is absent.
//
// Example — the first element of a slice, when there is one:
//
//	head := optic.NewOptional(
//	    func(xs []int) (int, bool) {
//	        if len(xs) == 0 {
//	            return 0, false
//	        }
//	        return xs[0], true
//	    },
//	    func(xs []int, x int) []int {
//	        if len(xs) == 0 {
//	            return xs
//	        }
//	        out := append([]int(nil), xs...)
//	        out[0] = x
//	        return out
//	    },
//	)
func NewOptional[S, A any](match func(S) (A, bool), set func(S, A) S) Optional[S, A] {
	return Optional[S, A]{match: match, set: set}
}

// Match attempts to view the focused part, reporting whether it is present.
func (o Optional[S, A]) Match(s S) (A, bool) {
	return o.match(s)
}

// Set returns a new structure with the focused part replaced, or the
// original structure when the focus is absent.
func (o Optional[S, A]) Set(s S, a A) S {
	return o.set(s, a)
}
