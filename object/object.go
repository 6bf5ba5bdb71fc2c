// Package object implements the Jsonnet object-value and field-resolution
// engine: ObjValue, the central node type implementing self/super late
// binding, field addition, hidden visibility, object-level assertions,
// and per-composition memoization.
//
// This is a direct, idiomatic-Go port of jrsonnet's ObjValue
// (jrsonnet-evaluator/src/obj.rs): pointer identity replaces Gc::ptr_eq,
// a mutex-guarded cache replaces GcCell, and an explicit *StackBudget
// threaded through resolve and the assertion walk replaces a
// process-global recursion limit.
package object

import (
	"sync"

	"github.com/aledsdavies/jsonnetobj/internal/invariant"
	"github.com/aledsdavies/jsonnetobj/istr"
	"github.com/aledsdavies/jsonnetobj/thunk"
	"github.com/aledsdavies/jsonnetobj/value"
	"github.com/aledsdavies/jsonnetobj/visibility"
)

// SourceLocation pins an ObjMember to the source text it came from, for
// diagnostics only; the engine never inspects it during resolution.
type SourceLocation struct {
	File   string
	Line   int
	Column int
}

// ObjMember is a single field descriptor.
type ObjMember struct {
	// Additive is set for "+:" fields: their value is concatenated with
	// the same-named value in super via value.Add.
	Additive bool
	// Visibility is this field's own visibility tag.
	Visibility visibility.Visibility
	// Binding produces the field's value, lazily, parameterised by the
	// composed self and the defining node's super.
	Binding thunk.LazyBinding
	// Location is optional and used only for diagnostics.
	Location *SourceLocation
}

// cacheKey is (field name, effective-self identity).
type cacheKey struct {
	key  istr.IStr
	self *ObjValue
}

// ObjValue is the central node of the object engine: one node of a
// super chain, holding its own members, its own assertions, and the
// per-composition caches that make field resolution and assertion
// side effects run at most once per (field, effective self) pair.
type ObjValue struct {
	super      *ObjValue
	ownMembers map[istr.IStr]ObjMember
	assertions []thunk.ObjectAssertion
	pinnedSelf *ObjValue

	mu            sync.Mutex
	valueCache    map[cacheKey]*value.Val
	assertionsRan map[*ObjValue]struct{}
}

// New creates a fresh node with empty caches and no assertions-ran
// history.
func New(super *ObjValue, members map[istr.IStr]ObjMember, assertions []thunk.ObjectAssertion) *ObjValue {
	if members == nil {
		members = map[istr.IStr]ObjMember{}
	}
	return &ObjValue{
		super:         super,
		ownMembers:    members,
		assertions:    assertions,
		valueCache:    make(map[cacheKey]*value.Val),
		assertionsRan: make(map[*ObjValue]struct{}),
	}
}

// Empty returns a node with no super, no members, no assertions.
func Empty() *ObjValue {
	return New(nil, nil, nil)
}

// ExtendFrom returns a new node that keeps this node's own members and
// assertions but grafts parent at the bottom of this node's super chain:
// if this node has no super, the result's super is parent; otherwise the
// result's super is this.super.ExtendFrom(parent), recursively. This
// implements "A{x:1} + B{y:2}" placing B underneath A's existing chain.
func (o *ObjValue) ExtendFrom(parent *ObjValue) *ObjValue {
	invariant.NotNil(parent, "parent")
	if o.super == nil {
		return New(parent, o.ownMembers, o.assertions)
	}
	return New(o.super.ExtendFrom(parent), o.ownMembers, o.assertions)
}

// ExtendFromValue implements value.ObjectValue so value.Add can compose
// two object Vals without the value package depending on this one.
func (o *ObjValue) ExtendFromValue(parent value.ObjectValue) value.ObjectValue {
	p, ok := parent.(*ObjValue)
	invariant.Precondition(ok, "ExtendFromValue: parent must be *object.ObjValue, got %T", parent)
	return o.ExtendFrom(p)
}

// WithPinnedSelf returns a new node sharing super/ownMembers/assertions
// with the receiver but with pinnedSelf set, and fresh caches — a
// shallow alias used to bind self to a different composed object (e.g.
// "with_this" in the original).
func (o *ObjValue) WithPinnedSelf(self *ObjValue) *ObjValue {
	invariant.NotNil(self, "self")
	return &ObjValue{
		super:         o.super,
		ownMembers:    o.ownMembers,
		assertions:    o.assertions,
		pinnedSelf:    self,
		valueCache:    make(map[cacheKey]*value.Val),
		assertionsRan: make(map[*ObjValue]struct{}),
	}
}

// ExtendWithField is a shorthand for constructing a fresh single-member
// object with this node as its super, used for targeted field overrides.
func (o *ObjValue) ExtendWithField(key istr.IStr, member ObjMember) *ObjValue {
	return New(o, map[istr.IStr]ObjMember{key: member}, nil)
}

// PtrEq reports whether a and b are the same node (reference identity).
// ObjValue must never be compared with == outside this helper: Go would
// happily compile a == b, but that's pointer identity already, so PtrEq
// exists purely to make the intent explicit at call sites that need to
// tell "the same node" apart from "an equivalent node".
func PtrEq(a, b *ObjValue) bool {
	return a == b
}

// effectiveSelf is pinnedSelf if present, else the receiver itself.
func (o *ObjValue) effectiveSelf() *ObjValue {
	if o.pinnedSelf != nil {
		return o.pinnedSelf
	}
	return o
}

// Super exposes the parent node, or nil at the root of the chain.
// Resolution and enumeration inside this package read o.super directly.
func (o *ObjValue) Super() *ObjValue {
	return o.super
}
