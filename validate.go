// SPDX-License-Identifier: Apache-2.0

package optic

import (
	"go.uber.org/multierr"
)

// validated is the effect value of the validation applicative: either a
// rebuilt value or the errors accumulated so far. Once an error is present
// the value is gone for good; later successes only ever join their errors.
type validated struct {
	value any
	err   error
}

// validation sequences per-target effects that may fail, accumulating
// every failure with multierr instead of stopping at the first.
var validation = Applicative{
	Of: func(v any) any {
		return validated{value: v}
	},
	Map2: func(fa, fb any, f func(a, b any) any) any {
		va := fa.(validated)
		vb := fb.(validated)
		if err := multierr.Append(va.err, vb.err); err != nil {
			return validated{err: err}
		}
		return validated{value: f(va.value, vb.value)}
	},
}

// ModifyE applies a failable transform to every target.
//
// Unlike a fail-fast rewrite, every target is visited and every failure is
// collected: the returned error combines all per-target errors, and
// [multierr.Errors] recovers the individual ones. On any failure the zero
// value of S is returned instead of a partially rebuilt structure.
//
// Example:
//
//	prices, err := optic.Slice[string]().ModifyE(raw, normalizePrice)
//	if err != nil {
//	    // err lists every malformed price, not just the first
//	}
func (t Traversal[S, A]) ModifyE(s S, f func(A) (A, error)) (S, error) {
	got := t.modifyA(validation, func(a A) any {
		v, err := f(a)
		if err != nil {
			return validated{err: err}
		}
		return validated{value: v}
	})(s)

	result := got.(validated)
	if result.err != nil {
		var zero S
		return zero, result.err
	}
	return result.value.(S), nil
}

// ValidateAll runs a check against every target, accumulating every
// failure.
//
// It returns nil when all targets pass (or the Traversal visits nothing).
func (t Traversal[S, A]) ValidateAll(s S, check func(A) error) error {
	_, err := t.ModifyE(s, func(a A) (A, error) {
		return a, check(a)
	})
	return err
}
