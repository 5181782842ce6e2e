// Package tsp_test validates the Tour representation: construction
// sentinels, O(1) adjacency queries, segment reversal and the closed-form
// export. Contract: strict sentinels, deterministic outcomes.
package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HellOwhatAs/elkai-go/tsp"
)

// TestNewTour_Validation covers every ErrBadTour path: short, out-of-range
// and duplicated sequences.
func TestNewTour_Validation(t *testing.T) {
	cases := []struct {
		name string
		seq  []int
	}{
		{"empty", nil},
		{"too short", []int{0, 1}},
		{"duplicate", []int{0, 1, 1, 3}},
		{"out of range high", []int{0, 1, 4, 2}},
		{"out of range negative", []int{0, -1, 2, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tsp.NewTour(tc.seq)
			assert.ErrorIs(t, err, tsp.ErrBadTour)
		})
	}
}

// TestNewTour_CopiesInput — mutating the source sequence after
// construction must not corrupt the tour.
func TestNewTour_CopiesInput(t *testing.T) {
	seq := []int{0, 2, 1, 3}
	tr, err := tsp.NewTour(seq)
	require.NoError(t, err)

	seq[0], seq[1] = 9, 9
	require.NoError(t, tr.Validate())
	assert.Equal(t, []int{0, 2, 1, 3}, tr.Sequence())
}

// TestTour_Adjacency checks Next/Prev/Pos/At including the wrap between
// the last and first positions.
func TestTour_Adjacency(t *testing.T) {
	tr, err := tsp.NewTour([]int{3, 0, 4, 1, 2})
	require.NoError(t, err)

	assert.Equal(t, 5, tr.Len())
	assert.Equal(t, 0, tr.Next(3))
	assert.Equal(t, 3, tr.Prev(0))
	assert.Equal(t, 3, tr.Next(2), "wrap: last position succeeds to first")
	assert.Equal(t, 2, tr.Prev(3), "wrap: first position precedes to last")
	assert.Equal(t, 2, tr.Pos(4))
	assert.Equal(t, 4, tr.At(2))
}

// TestTour_Between verifies cyclic strict betweenness in the successor
// direction.
func TestTour_Between(t *testing.T) {
	tr, err := tsp.NewTour([]int{0, 1, 2, 3, 4}) // successor order 0→1→2→3→4→0
	require.NoError(t, err)

	assert.True(t, tr.Between(0, 2, 4), "2 lies on the path 0→…→4")
	assert.False(t, tr.Between(4, 2, 0), "path 4→0 skips 2")
	assert.True(t, tr.Between(3, 0, 2), "wrap: 0 lies on the path 3→…→2")
	assert.False(t, tr.Between(0, 4, 2), "4 lies beyond 2 on the path from 0")
}

// TestTour_Reverse exercises a middle segment, a wrapping segment, and the
// self-inverse property. Validate re-checks the permutation invariant after
// every mutation.
func TestTour_Reverse(t *testing.T) {
	tr, err := tsp.NewTour([]int{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)

	tr.Reverse(1, 3) // positions 1..3
	require.NoError(t, tr.Validate())
	assert.Equal(t, []int{0, 3, 2, 1, 4, 5}, tr.Sequence())

	tr.Reverse(1, 3) // self-inverse
	require.NoError(t, tr.Validate())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, tr.Sequence())

	tr.Reverse(4, 1) // wrapping segment 4,5,0,1
	require.NoError(t, tr.Validate())
	assert.Equal(t, []int{5, 4, 2, 3, 1, 0}, tr.Sequence())

	tr.Reverse(4, 1)
	require.NoError(t, tr.Validate())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, tr.Sequence())
}

// TestTour_Closed checks the rotated n+1 export for several anchors.
func TestTour_Closed(t *testing.T) {
	tr, err := tsp.NewTour([]int{2, 0, 1, 3})
	require.NoError(t, err)

	assert.Equal(t, []int{2, 0, 1, 3, 2}, tr.Closed(2))
	assert.Equal(t, []int{0, 1, 3, 2, 0}, tr.Closed(0))
	assert.Equal(t, []int{3, 2, 0, 1, 3}, tr.Closed(3))
}
