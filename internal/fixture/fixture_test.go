package fixture

import (
	"testing"

	"github.com/aledsdavies/jsonnetobj/istr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRejectsMissingMembers(t *testing.T) {
	err := Validate([]byte(`{}`))
	assert.Error(t, err)
}

func TestValidateRejectsUnknownVisibility(t *testing.T) {
	err := Validate([]byte(`{"members": {"x": {"value": 1, "visibility": "invisible"}}}`))
	assert.Error(t, err)
}

func TestBuildSimpleObject(t *testing.T) {
	o, err := Build([]byte(`{
		"members": {
			"x": {"value": 1},
			"y": {"value": "hi", "visibility": "hidden"}
		}
	}`))
	require.NoError(t, err)

	v, err := o.Get(istr.Intern("x"))
	require.NoError(t, err)
	require.NotNil(t, v)
	n, _ := v.AsNumber()
	assert.Equal(t, float64(1), n)

	assert.False(t, o.HasField(istr.Intern("y")))
	assert.True(t, o.HasFieldEx(istr.Intern("y"), true))
}

func TestBuildWithSuperChain(t *testing.T) {
	o, err := Build([]byte(`{
		"super": {
			"members": {
				"a": {"value": [1]}
			}
		},
		"members": {
			"a": {"value": [2], "additive": true}
		}
	}`))
	require.NoError(t, err)

	v, err := o.Get(istr.Intern("a"))
	require.NoError(t, err)
	require.NotNil(t, v)
	arr, _ := v.AsArray()
	require.Len(t, arr, 2)
	n0, _ := arr[0].AsNumber()
	n1, _ := arr[1].AsNumber()
	assert.Equal(t, float64(1), n0)
	assert.Equal(t, float64(2), n1)
}

func TestGoldenDigestStableAcrossEquivalentFixtures(t *testing.T) {
	a, err := Build([]byte(`{"members": {"x": {"value": 1}, "y": {"value": 2, "visibility": "hidden"}}}`))
	require.NoError(t, err)
	b, err := Build([]byte(`{"members": {"y": {"value": 99, "visibility": "hidden"}, "x": {"value": -5}}}`))
	require.NoError(t, err)

	digestA, err := GoldenDigest(a)
	require.NoError(t, err)
	digestB, err := GoldenDigest(b)
	require.NoError(t, err)

	// FieldsVisibility only reports name+visibility, not resolved values,
	// so these two structurally-equivalent-but-differently-valued fixtures
	// must land on the same golden digest.
	assert.Equal(t, digestA, digestB)
}

func TestGoldenDigestDiffersOnVisibilityChange(t *testing.T) {
	a, err := Build([]byte(`{"members": {"x": {"value": 1}}}`))
	require.NoError(t, err)
	b, err := Build([]byte(`{"members": {"x": {"value": 1, "visibility": "hidden"}}}`))
	require.NoError(t, err)

	digestA, err := GoldenDigest(a)
	require.NoError(t, err)
	digestB, err := GoldenDigest(b)
	require.NoError(t, err)

	assert.NotEqual(t, digestA, digestB)
}
