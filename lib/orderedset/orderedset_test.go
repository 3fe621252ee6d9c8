package orderedset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	t.Parallel()

	s := New("b", "a", "b")
	assert.True(t, s.Add("c"))
	assert.False(t, s.Add("a"))
	assert.Equal(t, []string{"b", "a", "c"}, s.Items())
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 1, s.Index("a"))
	assert.Equal(t, -1, s.Index("z"))
	assert.True(t, s.Has("c"))

	items := s.Items()
	items[0] = "mutated"
	assert.Equal(t, "b", s.Items()[0])
}
