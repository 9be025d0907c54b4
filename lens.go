// SPDX-License-Identifier: Apache-2.0

package optic

// A Lens focuses on exactly one always-present part of a structure.
//
// Get extracts the part; Set returns a new whole with the part replaced,
// never mutating the original. Both must be total.
//
// The library consumes Lenses opaquely through [ComposeLens], [Prop], and
// [Props].
type Lens[S, A any] struct {
	get func(S) A
	set func(S, A) S
}

// NewLens creates a Lens from get and set functions.
//
// Set must be a copy-on-write update: it returns a new S and leaves the
// original untouched.
//
// Example:
//
//	name := optic.NewLens(
//	    func(u User) string { return u.Name },
//	    func(u User, n string) User { u.Name = n; return u },
//	)
func NewLens[S, A any](get func(S) A, set func(S, A) S) Lens[S, A] {
	return Lens[S, A]{get: get, set: set}
}

// Get retrieves the focused part.
func (l Lens[S, A]) Get(s S) A {
	return l.get(s)
}

// Set returns a new structure with the focused part replaced.
func (l Lens[S, A]) Set(s S, a A) S {
	return l.set(s, a)
}

// Modify returns a new structure with the focused part transformed.
func (l Lens[S, A]) Modify(s S, f func(A) A) S {
	return l.set(s, f(l.get(s)))
}
