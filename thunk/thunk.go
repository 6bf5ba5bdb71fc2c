// Package thunk defines the deferred-computation primitives the object
// engine consumes from the expression evaluator: Thunk, LazyBinding, and
// ObjectAssertion.
//
// The evaluator that produces real LazyBindings is out of scope for this
// module; this package provides the interfaces plus minimal reference
// implementations (closures) so the object engine is independently
// testable and embeddable without a full evaluator attached.
package thunk

import (
	"errors"

	"github.com/aledsdavies/jsonnetobj/value"
)

// ErrCyclicForce is returned when a Thunk is forced while it is already
// being forced on the same call stack. Thunks are not required to
// memoize (object.ObjValue does that per-composition), but each must
// track "currently forcing" state per thunk so self-reentrant forcing
// is detected rather than looping forever.
var ErrCyclicForce = errors.New("thunk: cyclic forcing detected")

// Thunk is a deferred computation that yields a Val once forced.
type Thunk interface {
	Force() (value.Val, error)
}

// LazyBinding is invoked with an optional self/super (nil meaning "not
// provided") and yields a Thunk. Evaluate itself must not force
// anything; forcing happens when the caller forces the returned Thunk.
type LazyBinding interface {
	Evaluate(self, super value.ObjectValue) (Thunk, error)
}

// ObjectAssertion is a deferred predicate parameterised by self/super; it
// yields success or a failure reason rather than a Val.
type ObjectAssertion interface {
	Run(self, super value.ObjectValue) error
}

// FuncBinding adapts a plain function to LazyBinding.
type FuncBinding func(self, super value.ObjectValue) (Thunk, error)

// Evaluate implements LazyBinding.
func (f FuncBinding) Evaluate(self, super value.ObjectValue) (Thunk, error) {
	return f(self, super)
}

// FuncAssertion adapts a plain function to ObjectAssertion.
type FuncAssertion func(self, super value.ObjectValue) error

// Run implements ObjectAssertion.
func (f FuncAssertion) Run(self, super value.ObjectValue) error {
	return f(self, super)
}

// closureThunk is the reference Thunk implementation: a single deferred
// computation with a re-entrancy guard. It does not cache its result —
// calling Force twice recomputes; memoization is the object engine's
// job, not the thunk's.
type closureThunk struct {
	compute func() (value.Val, error)
	forcing bool
}

// NewThunk wraps a plain computation as a Thunk.
func NewThunk(compute func() (value.Val, error)) Thunk {
	return &closureThunk{compute: compute}
}

// Force runs the computation, failing fast if it is already running
// (i.e. this same Thunk value is being forced higher up the call stack).
func (t *closureThunk) Force() (value.Val, error) {
	if t.forcing {
		return value.Val{}, ErrCyclicForce
	}
	t.forcing = true
	defer func() { t.forcing = false }()
	return t.compute()
}

// Bind builds a LazyBinding out of a plain function from (self, super) to
// a value, wrapping the result in a fresh closureThunk each time it is
// evaluated. This is the common case for constructing ObjMembers in
// tests and in simple embedders that don't need a distinct Thunk type.
func Bind(compute func(self, super value.ObjectValue) (value.Val, error)) LazyBinding {
	return FuncBinding(func(self, super value.ObjectValue) (Thunk, error) {
		return NewThunk(func() (value.Val, error) {
			return compute(self, super)
		}), nil
	})
}

// Assert builds an ObjectAssertion out of a plain predicate function.
func Assert(check func(self, super value.ObjectValue) error) ObjectAssertion {
	return FuncAssertion(check)
}
