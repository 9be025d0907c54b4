// SPDX-License-Identifier: Apache-2.0

package optic

// An Option is a value that may be absent.
//
// It is the target type of [Some] and the container type of [OptionValue]:
// a present value contributes one visit to a traversal, an absent one
// contributes zero.
//
// Options are immutable values; the zero Option is absent.
type Option[A any] struct {
	value   A
	present bool
}

// SomeOf returns an Option holding the given value.
func SomeOf[A any](a A) Option[A] {
	return Option[A]{value: a, present: true}
}

// NoneOf returns an absent Option.
func NoneOf[A any]() Option[A] {
	return Option[A]{}
}

// IsSome reports whether the value is present.
func (o Option[A]) IsSome() bool {
	return o.present
}

// IsNone reports whether the value is absent.
func (o Option[A]) IsNone() bool {
	return !o.present
}

// Get returns the value and whether it is present.
//
// If absent, the returned value is the zero value of A.
func (o Option[A]) Get() (A, bool) {
	return o.value, o.present
}

// OrElse returns the value if present, otherwise the fallback.
func (o Option[A]) OrElse(fallback A) A {
	if o.present {
		return o.value
	}
	return fallback
}
