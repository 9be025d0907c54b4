// SPDX-License-Identifier: Apache-2.0

// Package optic provides a library for transforming values deep inside
// immutable structures—built around the Traversal, an optic that focuses on
// zero or more targets at once and composes with every other optic kind.
//
// # The Problem
//
// Updating a value nested inside an immutable structure means rebuilding
// every layer above it by hand. Updating many such values—every element of
// a slice, every matching variant, one field of every record—multiplies
// that boilerplate: loops, copies, and reassembly code that obscures the
// one-line transformation actually being performed. The logic for locating
// targets and the logic for transforming them end up tangled together and
// neither is reusable.
//
// Optic separates the two. An optic is a reusable value describing how to
// find and replace part of a structure; the transformation is supplied
// separately, at the call site.
//
// # Core Concepts
//
// [Traversal] is the central type. A Traversal focuses on zero or more A
// targets inside an S and knows how to apply a transformation to each of
// them, in a fixed left-to-right order, rebuilding a new S:
//
//	optic.Slice[int]().Modify([]int{1, 2, 3}, func(n int) int { return n * 10 })
//	// []int{10, 20, 30}
//
// Four narrower optic kinds describe a single focus, and each composes with
// a Traversal to produce a new Traversal:
//
//   - [Iso]: a lossless two-way view (compose with [ComposeIso])
//
//   - [Lens]: exactly one target, always present ([ComposeLens])
//
//   - [Prism]: zero or one target, with match and rebuild ([ComposePrism])
//
//   - [Optional]: zero or one target, with partial update ([ComposeOptional])
//
// Two Traversals also compose ([ComposeTraversal]), nesting the inner one's
// targets inside each outer target. Composition never mutates an operand;
// every optic is an immutable value, safe to build once at package
// initialization and share everywhere.
//
// On top of composition sit the derived combinators: [Traversal.Filter]
// narrows to targets satisfying a predicate, [Prop] and [Props] focus
// fields of each target through a lens, and [Some] descends into present
// [Option] values:
//
//	evens := optic.Slice[int]().Filter(func(n int) bool { return n%2 == 0 })
//	evens.Set([]int{1, 2, 3, 4}, 0)
//	// []int{1, 0, 3, 0}
//
// A Prism or Optional that does not match a particular target silently
// skips that one target; the rest of the traversal proceeds. A miss is a
// zero-visit outcome, never an error.
//
// # Effects
//
// Modify and Set are the pure face of a more general operation. The
// primitive, [Traversal.ModifyA], applies an effectful transformation to
// every target and sequences the effects in visit order, parameterized by
// an [Applicative] capability describing the effect. The library never
// chooses or runs an effect itself; it only sequences.
//
// Two effects come built in: [Identity] (no effect; powers Modify) and the
// error-accumulating validation effect behind [Traversal.ModifyE] and
// [Traversal.ValidateAll], which visits every target and reports every
// failure rather than stopping at the first:
//
//	err := ages.ValidateAll(users, func(age int) error {
//	    if age < 0 {
//	        return fmt.Errorf("negative age %d", age)
//	    }
//	    return nil
//	})
//
// Queries are effects too: [Traversal.Collect], [Traversal.Count],
// [Traversal.First], [Traversal.Exists], and [Traversal.All] run a
// constant effect that gathers targets instead of rebuilding.
//
// # Laws
//
// Traversals obey three laws, and the test suite pins them down:
//
//   - Identity: Modify with the identity function returns an equal
//     structure.
//
//   - Shape preservation: which targets are visited depends only on the
//     structure, never on the effect or transformation.
//
//   - Composition: composing traversals visits the outer targets' inner
//     targets in nested left-to-right order, regardless of grouping.
//
// Container strategies supplied to [NewTraversal] are assumed to obey the
// corresponding laws; the built-in [SliceTraverse], [MapTraverse], and
// [OptionTraverse] do.
//
// # Requirements
//
// Optic requires Go 1.24 or later and has minimal external dependencies.
package optic
