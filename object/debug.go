package object

import (
	"fmt"
	"strings"
)

// String renders the super chain separated by " + ", followed by this
// node's own member names and visibilities. It never forces a field —
// it only reads member metadata, never a binding's computed value.
func (o *ObjValue) String() string {
	var b strings.Builder
	if o.super != nil {
		b.WriteString(o.super.String())
		b.WriteString(" + ")
	}
	b.WriteString("ObjValue{")
	first := true
	for name, member := range o.ownMembers {
		if !first {
			b.WriteString(", ")
		}
		first = false
		suffix := ""
		if member.Additive {
			suffix = "+"
		}
		fmt.Fprintf(&b, "%s%s: %s", name.String(), suffix, member.Visibility.String())
	}
	b.WriteString("}")
	return b.String()
}
