package object

import "github.com/aledsdavies/jsonnetobj/value"

// RunAssertions runs every ancestor's own assertions exactly once for
// this node's effective self, using DefaultMaxStackDepth.
func (o *ObjValue) RunAssertions() error {
	return o.RunAssertionsWithBudget(NewStackBudget(DefaultMaxStackDepth))
}

// RunAssertionsWithBudget is RunAssertions with an explicit recursion
// budget.
func (o *ObjValue) RunAssertionsWithBudget(budget *StackBudget) error {
	return o.runAssertions(o.effectiveSelf(), budget)
}

// runAssertions walks the super chain running each ancestor's own
// assertions against a fixed effective self. target is the effective
// self this whole walk is running for. For each ancestor n starting at
// o, n only runs (and recurses into n.super) the first time it sees
// this target; on a repeat, the entire remaining chain is known to have
// already succeeded for target, so we stop without re-walking it. On
// failure, the "ran" marker is undone on the failing node and on every
// node above it in this walk, so a later retry runs the chain again.
func (o *ObjValue) runAssertions(target *ObjValue, budget *StackBudget) error {
	next, err := budget.enter()
	if err != nil {
		return err
	}

	o.mu.Lock()
	if _, already := o.assertionsRan[target]; already {
		o.mu.Unlock()
		return nil
	}
	o.assertionsRan[target] = struct{}{}
	o.mu.Unlock()

	var superArg value.ObjectValue
	if o.super != nil {
		superArg = o.super
	}
	for _, assertion := range o.assertions {
		if err := assertion.Run(target, superArg); err != nil {
			o.mu.Lock()
			delete(o.assertionsRan, target)
			o.mu.Unlock()
			return &Error{Kind: KindAssertionFailed, Message: "object assertion failed", Cause: err}
		}
	}

	if o.super != nil {
		if err := o.super.runAssertions(target, next); err != nil {
			o.mu.Lock()
			delete(o.assertionsRan, target)
			o.mu.Unlock()
			return err
		}
	}
	return nil
}
