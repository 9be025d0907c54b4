// SPDX-License-Identifier: Apache-2.0

package optic

// collector is the constant applicative over []A: effects accumulate the
// visited targets in order and the rebuilt structure is discarded. Map2
// ignores its combining function, which is what makes a constant effect
// constant.
func collector[A any]() Applicative {
	return Applicative{
		Of: func(any) any {
			return []A(nil)
		},
		Map2: func(fa, fb any, _ func(a, b any) any) any {
			left := fa.([]A)
			right := fb.([]A)
			out := make([]A, 0, len(left)+len(right))
			out = append(out, left...)
			return append(out, right...)
		},
	}
}

// Collect returns every target of the Traversal in visit order.
func (t Traversal[S, A]) Collect(s S) []A {
	got := t.modifyA(collector[A](), func(a A) any {
		return []A{a}
	})(s)
	return got.([]A)
}

// Count returns the number of targets the Traversal visits in s.
func (t Traversal[S, A]) Count(s S) int {
	return len(t.Collect(s))
}

// First returns the first target in visit order, if any.
func (t Traversal[S, A]) First(s S) Option[A] {
	targets := t.Collect(s)
	if len(targets) == 0 {
		return NoneOf[A]()
	}
	return SomeOf(targets[0])
}

// Exists reports whether any target satisfies the predicate.
func (t Traversal[S, A]) Exists(s S, pred func(A) bool) bool {
	for _, a := range t.Collect(s) {
		if pred(a) {
			return true
		}
	}
	return false
}

// All reports whether every target satisfies the predicate.
//
// All is vacuously true when the Traversal visits nothing.
func (t Traversal[S, A]) All(s S, pred func(A) bool) bool {
	for _, a := range t.Collect(s) {
		if !pred(a) {
			return false
		}
	}
	return true
}
