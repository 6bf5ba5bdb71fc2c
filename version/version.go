// Package version declares this engine's semantic version and the range
// of versions it promises compatibility with, the way a library exposes
// a compatibility contract to embedders that vendor or pin against it.
package version

import "golang.org/x/mod/semver"

// Version is this module's semantic version. Embedders pin against it;
// bump it whenever a change to object/value/thunk/istr/visibility
// alters observable behavior.
const Version = "v0.1.0"

// MinSupported is the oldest version an embedder may request compatibility
// with via Supports.
const MinSupported = "v0.1.0"

// Supports reports whether requested falls within [MinSupported, Version],
// the compatibility range this build promises to honor. An invalid
// requested version is never supported.
func Supports(requested string) bool {
	if !semver.IsValid(requested) {
		return false
	}
	return semver.Compare(requested, MinSupported) >= 0 && semver.Compare(requested, Version) <= 0
}
