// SPDX-License-Identifier: Apache-2.0

package optic

// An Iso is a lossless, reversible view between two representations.
//
// Get and Reverse must be total inverses of each other:
//
//	reverse(get(a)) == a
//	get(reverse(b)) == b
//
// The library consumes Isos opaquely through [ComposeIso]; it assumes, and
// does not re-verify, the round-trip laws.
type Iso[A, B any] struct {
	get     func(A) B
	reverse func(B) A
}

// NewIso creates an Iso from a pair of mutually inverse conversions.
//
// Example:
//
//	celsius := optic.NewIso(
//	    func(f Fahrenheit) Celsius { return Celsius((f - 32) * 5 / 9) },
//	    func(c Celsius) Fahrenheit { return Fahrenheit(c*9/5 + 32) },
//	)
func NewIso[A, B any](get func(A) B, reverse func(B) A) Iso[A, B] {
	return Iso[A, B]{get: get, reverse: reverse}
}

// Get converts forward.
func (i Iso[A, B]) Get(a A) B {
	return i.get(a)
}

// Reverse converts backward.
func (i Iso[A, B]) Reverse(b B) A {
	return i.reverse(b)
}

// Flip returns the same Iso viewed from the other side.
func (i Iso[A, B]) Flip() Iso[B, A] {
	return Iso[B, A]{get: i.reverse, reverse: i.get}
}
