// Package visibility defines the three-valued field-visibility tag used
// by the object engine: Normal ("x: 1"), Hidden ("x:: 1"), and Unhide
// ("x::: 1").
package visibility

import "fmt"

// Visibility is a field's visibility tag.
type Visibility int

const (
	// Normal is the default visibility ("x: 1"). A Normal field does not
	// override a parent's Hidden/Unhide tag for the same name.
	Normal Visibility = iota
	// Hidden fields ("x:: 1") are omitted from default enumeration and
	// manifestation but remain retrievable via Get.
	Hidden
	// Unhide ("x::: 1") forces a field visible even if a parent hid it.
	Unhide
)

var names = [...]string{
	Normal: "normal",
	Hidden: "hidden",
	Unhide: "unhide",
}

// String returns a human-readable name, used only by diagnostics.
func (v Visibility) String() string {
	if int(v) >= 0 && int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("Visibility(%d)", int(v))
}

// IsVisible reports whether a field with this visibility appears in
// default enumeration: true for Normal and Unhide, false for Hidden.
func (v Visibility) IsVisible() bool {
	return v != Hidden
}
