package fixture

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"

	"github.com/aledsdavies/jsonnetobj/object"
	"github.com/fxamacker/cbor/v2"
)

// canonicalVisibility is the cbor-stable form of ObjValue.FieldsVisibility:
// a sorted slice instead of a map, so encoding is deterministic across
// runs regardless of Go's randomized map iteration order.
type canonicalVisibility struct {
	Name    string
	Visible bool
}

// GoldenDigest cbor-encodes obj's FieldsVisibility() in canonical
// (name-sorted) form and returns a hex sha256 of the encoding, for
// comparing a fixture's resolved shape against a recorded golden value
// without committing raw cbor bytes to the test tree. Mirrors the
// teacher's canonical-encode-then-hash pattern for plan digests.
func GoldenDigest(obj *object.ObjValue) (string, error) {
	visibility := obj.FieldsVisibility()

	entries := make([]canonicalVisibility, 0, len(visibility))
	for key, visible := range visibility {
		entries = append(entries, canonicalVisibility{Name: key.String(), Visible: visible})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	encoded, err := cbor.Marshal(entries)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(encoded)
	return hex.EncodeToString(sum[:]), nil
}
