// SPDX-License-Identifier: Apache-2.0

package optic

// An Applicative is the capability record for an effect type F.
//
// Go generics cannot abstract over type constructors, so effectful values
// (F of something) are carried as opaque any values. An Applicative tells
// the traversal machinery how to build and combine them:
//
//   - Of lifts a plain value into the effect.
//
//   - Map2 combines two effectful values with a binary function, preserving
//     left-to-right order.
//
// The two operations must satisfy the usual applicative identity and
// associativity laws; the library sequences effects in visit order but never
// chooses or runs an effect itself.
//
// Example — an effect that counts how many targets were visited while still
// rebuilding the structure:
//
//	type counted struct {
//	    value any
//	    n     int
//	}
//
//	counting := optic.Applicative{
//	    Of: func(v any) any { return counted{value: v} },
//	    Map2: func(fa, fb any, f func(a, b any) any) any {
//	        ca, cb := fa.(counted), fb.(counted)
//	        return counted{value: f(ca.value, cb.value), n: ca.n + cb.n}
//	    },
//	}
type Applicative struct {
	// Of lifts a plain value into the effect.
	Of func(v any) any

	// Map2 combines two effectful values with a binary function,
	// preserving order: the first operand's effect happens before the
	// second's.
	Map2 func(fa, fb any, f func(a, b any) any) any
}

// Map applies a plain function to an effectful value.
//
// It is derived from Of and Map2, so every lawful Applicative gets it for
// free.
func (ap Applicative) Map(fv any, f func(v any) any) any {
	return ap.Map2(fv, ap.Of(nil), func(v, _ any) any {
		return f(v)
	})
}

// Identity is the no-effect applicative: values are carried unchanged and
// Map2 is plain function application.
//
// Running a Traversal's primitive with Identity turns the effectful
// traversal into a direct structural rewrite; [Traversal.Modify] is exactly
// that.
var Identity = Applicative{
	Of: func(v any) any {
		return v
	},
	Map2: func(fa, fb any, f func(a, b any) any) any {
		return f(fa, fb)
	},
}
