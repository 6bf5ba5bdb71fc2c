package diagnostics

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/aledsdavies/jsonnetobj/istr"
	"github.com/aledsdavies/jsonnetobj/visibility"
	"golang.org/x/crypto/blake2b"
)

// fingerprintKey is a fixed 32-byte key derived from a description string
// via sha256, so it always satisfies BLAKE2b's <=64-byte key length
// regardless of how the description is edited. Fingerprints only need to
// be stable within a process and collision-resistant across distinct
// shapes, not a security boundary, so a derived compiled-in key is
// sufficient.
var fingerprintKey = func() []byte {
	sum := sha256.Sum256([]byte("jsonnetobj/diagnostics/fingerprint/v1"))
	return sum[:]
}()

// shapeSource is the subset of object.ObjValue the fingerprint depends on.
type shapeSource interface {
	Fields(includeHidden bool) []istr.IStr
	FieldVisibility(key istr.IStr) (visibility.Visibility, bool)
}

// Fingerprint returns a short, deterministic digest of obj's visible shape:
// its field names and their resolved visibilities. Two objects with the
// same fields and visibilities produce the same fingerprint regardless of
// how their super chains are structured underneath. It never forces a
// field, so it is safe to call on objects with failing or expensive
// bindings — useful for embedders logging "which shape did we resolve"
// without paying evaluation cost.
func Fingerprint(obj shapeSource) string {
	h, err := blake2b.New256(fingerprintKey)
	if err != nil {
		panic(err)
	}

	for _, name := range obj.Fields(true) {
		vis, _ := obj.FieldVisibility(name)
		h.Write([]byte(name.String()))
		h.Write([]byte{0})
		h.Write([]byte(vis.String()))
		h.Write([]byte{0})
	}

	return hex.EncodeToString(h.Sum(nil))[:16]
}
