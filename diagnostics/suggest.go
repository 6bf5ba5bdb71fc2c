// Package diagnostics provides non-semantic developer aids for embedders
// of the object engine: "did you mean" field-name suggestions and a
// deterministic debug fingerprint for an ObjValue's visible shape.
// Nothing here participates in field resolution, and nothing here forces
// a field — both tools only ever look at names and visibility metadata.
package diagnostics

import (
	"sort"

	"github.com/aledsdavies/jsonnetobj/istr"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// fieldSource is the subset of object.ObjValue this package depends on.
// Declared as an interface (rather than importing package object
// directly) purely to keep this package's test suite independent of a
// concrete ObjValue construction; object.ObjValue satisfies it as-is.
type fieldSource interface {
	Fields(includeHidden bool) []istr.IStr
}

// SuggestField returns the closest field name to typo, for
// embedders rendering a "field X not found, did you mean Y?" diagnostic.
// It ranks candidates with fuzzy string matching against every field
// name in scope, visible or hidden.
func SuggestField(obj fieldSource, typo string) (string, bool) {
	fields := obj.Fields(true)
	candidates := make([]string, len(fields))
	for i, f := range fields {
		candidates[i] = f.String()
	}
	return suggest(typo, candidates)
}

func suggest(typo string, candidates []string) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}
	ranks := fuzzy.RankFindFold(typo, candidates)
	if len(ranks) == 0 {
		return "", false
	}
	sort.Sort(ranks)
	return ranks[0].Target, true
}
