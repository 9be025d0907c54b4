// SPDX-License-Identifier: Apache-2.0

package optic

// A Traversal focuses on zero or more A targets inside an S.
//
// It is an immutable value holding a single operation: the applicative
// traversal function. Given the [Applicative] capability for an effect and
// a per-target effectful transform, it produces a function that applies the
// transform to every target in a fixed left-to-right order and rebuilds an
// S from the effectful results.
//
// Which targets are visited for a given S depends only on the shape of S,
// never on the effect or the transform. Traversals carry no state and are
// safe to share across goroutines.
//
// Traversals are built from a container strategy ([NewTraversal], [Slice],
// [MapValues], [OptionValue]) or by composing an existing Traversal with
// another optic ([ComposeIso], [ComposeLens], [ComposePrism],
// [ComposeOptional], [ComposeTraversal]); composition always returns a new
// value.
type Traversal[S, A any] struct {
	modifyA func(ap Applicative, f func(A) any) func(S) any
}

// NewTraversal derives a Traversal from a traversable strategy.
//
// The adaptation is direct: the strategy becomes the Traversal's one
// operation. Correctness therefore rests entirely on the strategy obeying
// the shape-preservation, identity, and composition laws described on
// [Traverse]; they are assumed here, not re-verified.
func NewTraversal[T, A any](traverse Traverse[T, A]) Traversal[T, A] {
	return Traversal[T, A]{modifyA: traverse}
}

// ModifyA is the Traversal's primitive operation.
//
// f maps each target to an effectful value (an F of A, carried as any); the
// returned function maps a structure to an effectful rebuilt structure (an
// F of S). Effects are sequenced with ap in visit order. ModifyA never runs
// an effect itself.
//
// Most callers want [Traversal.Modify] or [Traversal.Set] instead; ModifyA
// is the escape hatch for custom effects, such as collecting validation
// failures across every target.
func (t Traversal[S, A]) ModifyA(ap Applicative, f func(A) any) func(S) any {
	return t.modifyA(ap, f)
}

// Modify applies f to every target and returns the rebuilt structure.
//
// Targets the Traversal does not focus on are left untouched. The original
// structure is never mutated.
//
// Example:
//
//	optic.Slice[int]().Modify([]int{1, 2, 3}, func(n int) int { return n * 10 })
//	// []int{10, 20, 30}
func (t Traversal[S, A]) Modify(s S, f func(A) A) S {
	rebuilt := t.modifyA(Identity, func(a A) any {
		return f(a)
	})(s)
	return rebuilt.(S)
}

// Set replaces every target with the given value.
//
// Set is [Traversal.Modify] with a constant function; applying it twice is
// the same as applying it once.
func (t Traversal[S, A]) Set(s S, a A) S {
	return t.Modify(s, func(A) A { return a })
}
