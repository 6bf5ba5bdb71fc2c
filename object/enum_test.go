package object

import (
	"testing"

	"github.com/aledsdavies/jsonnetobj/istr"
	"github.com/aledsdavies/jsonnetobj/value"
	"github.com/aledsdavies/jsonnetobj/visibility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namesOf(ks []istr.IStr) []string {
	out := make([]string, len(ks))
	for i, k := range ks {
		out[i] = k.String()
	}
	return out
}

func TestVisibilityCollapseHiddenWins(t *testing.T) {
	// { x: 1 } + { x:: 2 }
	base := New(nil, map[istr.IStr]ObjMember{istr.Intern("x"): field(value.Number(1))}, nil)
	child := New(base, map[istr.IStr]ObjMember{istr.Intern("x"): hidden(value.Number(2))}, nil)

	assert.False(t, child.HasField(istr.Intern("x")))
	assert.True(t, child.HasFieldEx(istr.Intern("x"), true))
}

func TestUnhideBeatsHidden(t *testing.T) {
	// { x:: 1 } + { x::: 2 }
	base := New(nil, map[istr.IStr]ObjMember{istr.Intern("x"): hidden(value.Number(1))}, nil)
	child := New(base, map[istr.IStr]ObjMember{istr.Intern("x"): unhide(value.Number(2))}, nil)

	assert.True(t, child.HasField(istr.Intern("x")))
}

func TestNormalDoesNotUnhideParent(t *testing.T) {
	// { x:: 1 } + { x: 2 }
	base := New(nil, map[istr.IStr]ObjMember{istr.Intern("x"): hidden(value.Number(1))}, nil)
	child := New(base, map[istr.IStr]ObjMember{istr.Intern("x"): field(value.Number(2))}, nil)

	assert.False(t, child.HasField(istr.Intern("x")))
}

func TestFieldsFiltersHiddenByDefault(t *testing.T) {
	// o = { x:: 1, y: self.x }
	o := New(nil, map[istr.IStr]ObjMember{
		istr.Intern("x"): hidden(value.Number(1)),
		istr.Intern("y"): computed(func(self, super value.ObjectValue) (value.Val, error) {
			return selfGet(self, "x")
		}),
	}, nil)

	assert.Equal(t, []string{"y"}, namesOf(o.Fields(false)))

	vx, err := o.Get(istr.Intern("x"))
	require.NoError(t, err)
	require.NotNil(t, vx)
	assert.Equal(t, float64(1), num(*vx))

	vy, err := o.Get(istr.Intern("y"))
	require.NoError(t, err)
	require.NotNil(t, vy)
	assert.Equal(t, float64(1), num(*vy))
}

func TestFieldsIsSortedAndDeterministic(t *testing.T) {
	o := New(nil, map[istr.IStr]ObjMember{
		istr.Intern("zeta"):  field(value.Number(1)),
		istr.Intern("alpha"): field(value.Number(2)),
		istr.Intern("mid"):   field(value.Number(3)),
	}, nil)

	first := namesOf(o.Fields(false))
	second := namesOf(o.Fields(false))
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, first)
}

func TestFieldVisibilityNormalInheritsParent(t *testing.T) {
	base := New(nil, map[istr.IStr]ObjMember{istr.Intern("x"): hidden(value.Number(1))}, nil)
	child := New(base, map[istr.IStr]ObjMember{istr.Intern("x"): field(value.Number(2))}, nil)

	v, ok := child.FieldVisibility(istr.Intern("x"))
	require.True(t, ok)
	assert.Equal(t, visibility.Hidden, v)
}

func TestFieldVisibilityAbsentEverywhere(t *testing.T) {
	_, ok := Empty().FieldVisibility(istr.Intern("nope"))
	assert.False(t, ok)
}
