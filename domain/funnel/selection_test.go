package funnel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelection_ClickOrderAssignsRank(t *testing.T) {
	const a, b, c, d = 0, 1, 2, 3
	s := NewSelection(SearchSlots)

	for _, idx := range []int{c, a, d, b} {
		selected, err := s.Toggle(idx)
		require.NoError(t, err)
		assert.True(t, selected)
	}

	assert.True(t, s.Complete())
	assert.Equal(t, 1, s.Rank(c))
	assert.Equal(t, 2, s.Rank(a))
	assert.Equal(t, 3, s.Rank(d))
	assert.Equal(t, 4, s.Rank(b))
}

func TestSelection_ReselectMovesToEnd(t *testing.T) {
	const a, b, c, d = 0, 1, 2, 3
	s := NewSelection(SearchSlots)
	for _, idx := range []int{c, a, d, b} {
		_, err := s.Toggle(idx)
		require.NoError(t, err)
	}

	selected, err := s.Toggle(a)
	require.NoError(t, err)
	assert.False(t, selected)
	assert.False(t, s.Complete())
	assert.Equal(t, 0, s.Rank(a))

	_, err = s.Toggle(a)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Rank(a))
	assert.Equal(t, []int{c, d, b, a}, s.Items)
}

func TestSelection_RejectsBeyondCapacity(t *testing.T) {
	s := NewSelection(2)
	_, _ = s.Toggle(0)
	_, _ = s.Toggle(1)

	_, err := s.Toggle(2)
	assert.ErrorIs(t, err, ErrSelectionFull)
	assert.Equal(t, []int{0, 1}, s.Items)
}

func TestSelection_Set(t *testing.T) {
	s := NewSelection(SearchSlots)

	require.NoError(t, s.Set([]int{5, 2, 0, 1}))
	idx, ok := s.At(1)
	assert.True(t, ok)
	assert.Equal(t, 5, idx)

	assert.ErrorIs(t, s.Set([]int{1, 1}), ErrDuplicateSelection)
	assert.ErrorIs(t, s.Set([]int{0, 1, 2, 3, 4}), ErrSelectionFull)
	assert.ErrorIs(t, s.Set([]int{-1}), ErrNegativeCandidate)
	assert.Equal(t, []int{5, 2, 0, 1}, s.Items, "failed Set leaves selection untouched")
}

func TestSelection_AtOutOfRange(t *testing.T) {
	s := NewSelection(SearchSlots)
	_, ok := s.At(1)
	assert.False(t, ok)
}
