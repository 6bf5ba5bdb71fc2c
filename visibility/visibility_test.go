package visibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsVisible(t *testing.T) {
	assert.True(t, Normal.IsVisible())
	assert.True(t, Unhide.IsVisible())
	assert.False(t, Hidden.IsVisible())
}

func TestString(t *testing.T) {
	assert.Equal(t, "normal", Normal.String())
	assert.Equal(t, "hidden", Hidden.String())
	assert.Equal(t, "unhide", Unhide.String())
	assert.Contains(t, Visibility(99).String(), "Visibility(99)")
}
