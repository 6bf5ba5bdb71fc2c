package object

import (
	"sort"

	"github.com/aledsdavies/jsonnetobj/istr"
	"github.com/aledsdavies/jsonnetobj/visibility"
)

// EnumFields walks the super chain depth-first, parent first, then this
// node's own members, calling visit(name, visibility) for each own-
// members entry at every level. If visit returns true, enumeration stops
// early and EnumFields returns true. A name appearing at multiple levels
// is visited once per level; callers collapse as needed (see
// FieldsVisibility for the canonical collapse rule).
func (o *ObjValue) EnumFields(visit func(name istr.IStr, vis visibility.Visibility) bool) bool {
	if o.super != nil {
		if o.super.EnumFields(visit) {
			return true
		}
	}
	for name, member := range o.ownMembers {
		if visit(name, member.Visibility) {
			return true
		}
	}
	return false
}

// FieldsVisibility folds EnumFields into a name -> "visible by default"
// map. Because enumeration is parent-first, a child's Hidden/Unhide
// always overwrites a parent's entry; a child's Normal only fills in an
// absent entry, so it never unhides a field a parent hid.
func (o *ObjValue) FieldsVisibility() map[istr.IStr]bool {
	out := make(map[istr.IStr]bool)
	o.EnumFields(func(name istr.IStr, vis visibility.Visibility) bool {
		switch vis {
		case visibility.Normal:
			if _, present := out[name]; !present {
				out[name] = true
			}
		case visibility.Hidden:
			out[name] = false
		case visibility.Unhide:
			out[name] = true
		}
		return false
	})
	return out
}

// Fields returns the sorted field names; includeHidden controls whether
// hidden fields are included. Sorting makes the result deterministic
// regardless of the underlying map's iteration order.
func (o *ObjValue) Fields(includeHidden bool) []istr.IStr {
	vis := o.FieldsVisibility()
	names := make([]istr.IStr, 0, len(vis))
	for name, visible := range vis {
		if includeHidden || visible {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		return istr.Less(names[i], names[j])
	})
	return names
}

// FieldVisibility walks the chain from o downward (i.e. o first, then
// super): o's own entry wins unless it is Normal, in which case a Normal
// field inherits whatever visibility (if any) its parent gave the same
// name. Returns (_, false) when the key is absent everywhere.
func (o *ObjValue) FieldVisibility(key istr.IStr) (visibility.Visibility, bool) {
	if member, ok := o.ownMembers[key]; ok {
		if member.Visibility != visibility.Normal {
			return member.Visibility, true
		}
		if o.super != nil {
			if v, ok := o.super.FieldVisibility(key); ok {
				return v, true
			}
		}
		return visibility.Normal, true
	}
	if o.super != nil {
		return o.super.FieldVisibility(key)
	}
	return visibility.Normal, false
}
