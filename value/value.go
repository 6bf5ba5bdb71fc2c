// Package value implements Val, the evaluator's universal value type.
//
// The object engine (package object) only cares about one variant of Val
// — Object — and treats every other variant as opaque data it threads
// through without inspecting, except that it calls Add to implement
// Jsonnet's "+:" field-addition operator. Val's other variants (null,
// bool, number, string, array) exist here so Add has real operands to
// dispatch over; a full expression evaluator is a separate concern and
// is not implemented by this module.
package value

import "fmt"

// Kind tags which variant a Val holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
	// KindFunction is an opaque placeholder: function values are owned
	// by the expression evaluator, which is out of scope here. A
	// function Val carries no addable payload.
	KindFunction
)

var kindNames = [...]string{
	KindNull:     "null",
	KindBool:     "boolean",
	KindNumber:   "number",
	KindString:   "string",
	KindArray:    "array",
	KindObject:   "object",
	KindFunction: "function",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ObjectValue is the interface object.ObjValue satisfies. It is declared
// here, rather than value importing object, so that value has no
// dependency on the object engine: object depends on value for Val, and
// value only needs to know enough about objects to delegate Add for the
// Object+Object case back to the concrete type.
type ObjectValue interface {
	// ExtendFromValue returns a new composition with parent grafted
	// beneath the receiver's own inheritance chain (see
	// object.ObjValue.ExtendFrom, the typed equivalent used internally).
	ExtendFromValue(parent ObjectValue) ObjectValue
}

// Val is the evaluator's universal value.
type Val struct {
	kind Kind

	boolean bool
	number  float64
	str     string
	arr     []Val
	obj     ObjectValue
}

// Null is the Jsonnet null value.
var Null = Val{kind: KindNull}

// Bool constructs a boolean Val.
func Bool(b bool) Val { return Val{kind: KindBool, boolean: b} }

// Number constructs a numeric Val.
func Number(n float64) Val { return Val{kind: KindNumber, number: n} }

// String constructs a string Val.
func String(s string) Val { return Val{kind: KindString, str: s} }

// Array constructs an array Val. The slice is not copied; callers must
// not mutate it after construction, matching Jsonnet's immutable values.
func Array(elems []Val) Val { return Val{kind: KindArray, arr: elems} }

// Object wraps an ObjectValue (normally *object.ObjValue) as a Val.
func Object(o ObjectValue) Val { return Val{kind: KindObject, obj: o} }

// Function returns an opaque, non-addable function placeholder.
func Function() Val { return Val{kind: KindFunction} }

// Kind reports which variant this Val holds.
func (v Val) Kind() Kind { return v.kind }

// AsBool returns the boolean payload; ok is false if Kind() != KindBool.
func (v Val) AsBool() (b bool, ok bool) {
	return v.boolean, v.kind == KindBool
}

// AsNumber returns the numeric payload; ok is false if Kind() != KindNumber.
func (v Val) AsNumber() (n float64, ok bool) {
	return v.number, v.kind == KindNumber
}

// AsString returns the string payload; ok is false if Kind() != KindString.
func (v Val) AsString() (s string, ok bool) {
	return v.str, v.kind == KindString
}

// AsArray returns the array payload; ok is false if Kind() != KindArray.
func (v Val) AsArray() (elems []Val, ok bool) {
	return v.arr, v.kind == KindArray
}

// AsObject returns the object payload; ok is false if Kind() != KindObject.
func (v Val) AsObject() (o ObjectValue, ok bool) {
	return v.obj, v.kind == KindObject
}

// Add implements Jsonnet's "+" operator over the variants the object
// engine can produce on an additive ("+:") field path: string
// concatenation, numeric addition, array concatenation, and object
// composition. Operands of any other kind, including Function, are
// rejected with an error.
//
// For Object+Object, composition follows the same convention as a
// top-level Jsonnet "a + b" object expression: b's own fields win, so b
// is extended from a (b sits above a in the resulting inheritance
// chain). A full evaluator would normally wire object-plus-object
// straight through ObjValue.ExtendFrom at the expression level rather
// than through this generic dispatcher, but Add needs a defined answer
// for the Object case too, so it follows ordinary Jsonnet semantics.
func Add(a, b Val) (Val, error) {
	if a.kind != b.kind {
		return Val{}, fmt.Errorf("cannot add %s and %s", a.kind, b.kind)
	}
	switch a.kind {
	case KindString:
		return String(a.str + b.str), nil
	case KindNumber:
		return Number(a.number + b.number), nil
	case KindArray:
		out := make([]Val, 0, len(a.arr)+len(b.arr))
		out = append(out, a.arr...)
		out = append(out, b.arr...)
		return Array(out), nil
	case KindObject:
		return Object(b.obj.ExtendFromValue(a.obj)), nil
	default:
		return Val{}, fmt.Errorf("values of kind %s do not support +", a.kind)
	}
}
