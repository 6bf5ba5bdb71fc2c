package object

import (
	"github.com/aledsdavies/jsonnetobj/istr"
	"github.com/aledsdavies/jsonnetobj/thunk"
	"github.com/aledsdavies/jsonnetobj/value"
	"github.com/aledsdavies/jsonnetobj/visibility"
)

// field builds a plain (non-additive, Normal) ObjMember from a literal.
func field(v value.Val) ObjMember {
	return ObjMember{
		Visibility: visibility.Normal,
		Binding:    thunk.Bind(func(self, super value.ObjectValue) (value.Val, error) { return v, nil }),
	}
}

// computed builds a Normal ObjMember whose value is computed from self/super.
func computed(compute func(self, super value.ObjectValue) (value.Val, error)) ObjMember {
	return ObjMember{
		Visibility: visibility.Normal,
		Binding:    thunk.Bind(compute),
	}
}

// additive builds an additive ("+:") ObjMember.
func additive(v value.Val) ObjMember {
	return ObjMember{
		Additive:   true,
		Visibility: visibility.Normal,
		Binding:    thunk.Bind(func(self, super value.ObjectValue) (value.Val, error) { return v, nil }),
	}
}

// hidden/unhide build members with a non-Normal visibility tag and a
// fixed value, for visibility-collapse tests.
func hidden(v value.Val) ObjMember {
	return ObjMember{Visibility: visibility.Hidden, Binding: thunk.Bind(func(self, super value.ObjectValue) (value.Val, error) { return v, nil })}
}

func unhide(v value.Val) ObjMember {
	return ObjMember{Visibility: visibility.Unhide, Binding: thunk.Bind(func(self, super value.ObjectValue) (value.Val, error) { return v, nil })}
}

// selfGet fetches key from self, asserting self is an *ObjValue (the
// only value.ObjectValue implementation this module provides).
func selfGet(self value.ObjectValue, key string) (value.Val, error) {
	v, err := self.(*ObjValue).Get(istr.Intern(key))
	if err != nil {
		return value.Val{}, err
	}
	if v == nil {
		return value.Null, nil
	}
	return *v, nil
}

// superGet fetches key from super, treating a nil super (root of chain)
// as field-absent.
func superGet(super value.ObjectValue, key string) (value.Val, error) {
	if super == nil {
		return value.Null, nil
	}
	v, err := super.(*ObjValue).Get(istr.Intern(key))
	if err != nil {
		return value.Val{}, err
	}
	if v == nil {
		return value.Null, nil
	}
	return *v, nil
}

func num(v value.Val) float64 {
	n, _ := v.AsNumber()
	return n
}

func numbers(elems ...float64) value.Val {
	vs := make([]value.Val, len(elems))
	for i, e := range elems {
		vs[i] = value.Number(e)
	}
	return value.Array(vs)
}

func asNumbers(v value.Val) []float64 {
	arr, _ := v.AsArray()
	out := make([]float64, len(arr))
	for i, e := range arr {
		out[i], _ = e.AsNumber()
	}
	return out
}
