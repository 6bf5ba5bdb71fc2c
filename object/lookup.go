package object

import (
	"github.com/aledsdavies/jsonnetobj/istr"
	"github.com/aledsdavies/jsonnetobj/value"
)

// Get resolves key against this node using DefaultMaxStackDepth. It runs
// this node's ancestor assertions first, then walks the inheritance
// chain. It returns (nil, nil) when the field is absent everywhere in
// the chain, (&v, nil) when it resolves to v, and a non-nil error
// (never caching the failure) if assertions or any binding/thunk along
// the way fails.
func (o *ObjValue) Get(key istr.IStr) (*value.Val, error) {
	return o.GetWithBudget(key, NewStackBudget(DefaultMaxStackDepth))
}

// GetWithBudget is Get with an explicit recursion budget, for embedders
// that need a different ceiling than DefaultMaxStackDepth.
func (o *ObjValue) GetWithBudget(key istr.IStr, budget *StackBudget) (*value.Val, error) {
	if err := o.RunAssertionsWithBudget(budget); err != nil {
		return nil, err
	}
	return o.resolve(key, o.effectiveSelf(), budget)
}

// HasField reports whether key resolves to a visible field anywhere in
// the chain (shorthand over FieldVisibility).
func (o *ObjValue) HasField(key istr.IStr) bool {
	return o.HasFieldEx(key, false)
}

// HasFieldEx reports whether key resolves anywhere in the chain,
// including hidden fields when includeHidden is true.
func (o *ObjValue) HasFieldEx(key istr.IStr, includeHidden bool) bool {
	if includeHidden {
		return o.hasFieldIncludeHidden(key)
	}
	v, ok := o.FieldVisibility(key)
	return ok && v.IsVisible()
}

func (o *ObjValue) hasFieldIncludeHidden(key istr.IStr) bool {
	if _, ok := o.ownMembers[key]; ok {
		return true
	}
	if o.super != nil {
		return o.super.hasFieldIncludeHidden(key)
	}
	return false
}

// resolve walks the chain starting at o, memoizing on (key,
// identity(effectiveSelf)) in o's own cache. Errors are never cached,
// so a failing binding can be retried after its underlying condition
// changes.
func (o *ObjValue) resolve(key istr.IStr, effectiveSelf *ObjValue, budget *StackBudget) (*value.Val, error) {
	next, err := budget.enter()
	if err != nil {
		return nil, err
	}

	ck := cacheKey{key: key, self: effectiveSelf}
	o.mu.Lock()
	if cached, ok := o.valueCache[ck]; ok {
		o.mu.Unlock()
		return cached, nil
	}
	o.mu.Unlock()

	result, err := o.resolveUncached(key, effectiveSelf, next)
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	o.valueCache[ck] = result
	o.mu.Unlock()
	return result, nil
}

func (o *ObjValue) resolveUncached(key istr.IStr, effectiveSelf *ObjValue, next *StackBudget) (*value.Val, error) {
	member, hasMember := o.ownMembers[key]

	switch {
	case hasMember && o.super == nil:
		v, err := o.evaluateMember(member, effectiveSelf)
		if err != nil {
			return nil, err
		}
		return &v, nil

	case hasMember && !member.Additive:
		v, err := o.evaluateMember(member, effectiveSelf)
		if err != nil {
			return nil, err
		}
		return &v, nil

	case hasMember: // member.Additive && o.super != nil
		our, err := o.evaluateMember(member, effectiveSelf)
		if err != nil {
			return nil, err
		}
		parentVal, err := o.super.resolve(key, effectiveSelf, next)
		if err != nil {
			return nil, err
		}
		if parentVal == nil {
			return &our, nil
		}
		added, err := value.Add(*parentVal, our)
		if err != nil {
			return nil, propagate(err, member.Location)
		}
		return &added, nil

	case o.super != nil:
		return o.super.resolve(key, effectiveSelf, next)

	default:
		return nil, nil
	}
}

// evaluateMember forces member with self=effectiveSelf and
// super=o.super — the *defining* node's super, not effectiveSelf's. This
// is what implements Jsonnet's rule that super is lexically the parent
// of the defining object while self is the composed child.
func (o *ObjValue) evaluateMember(member ObjMember, effectiveSelf *ObjValue) (value.Val, error) {
	var superArg value.ObjectValue
	if o.super != nil {
		superArg = o.super
	}
	th, err := member.Binding.Evaluate(effectiveSelf, superArg)
	if err != nil {
		return value.Val{}, propagate(err, member.Location)
	}
	v, err := th.Force()
	if err != nil {
		return value.Val{}, propagate(err, member.Location)
	}
	return v, nil
}
