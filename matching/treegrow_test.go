package matching_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlmatch/matching"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTreeGrowing_Basics covers trivial inputs.
func TestTreeGrowing_Basics(t *testing.T) {
	_, err := matching.TreeGrowing(nil, nil, nil)
	assert.ErrorIs(t, err, matching.ErrNilGraph)

	g := mustGraph(t, 3, nil)
	m, err := matching.TreeGrowing(g, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, m)

	g = mustGraph(t, 2, []edgeSpec{{0, 1, 4}})
	m, err = matching.TreeGrowing(g, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(4), m.Score(g))
}

// TestTreeGrowing_BeatsGreedyOnChain: on the 2-3-2 path the local
// augmentation trades the heavy middle edge for both outer edges.
func TestTreeGrowing_BeatsGreedyOnChain(t *testing.T) {
	g := mustGraph(t, 4, []edgeSpec{{0, 1, 2}, {1, 2, 3}, {2, 3, 2}})

	m, err := matching.TreeGrowing(g, nil, nil)
	require.NoError(t, err)
	require.NoError(t, m.Verify(g))
	assert.Equal(t, int64(4), m.Score(g))
}

// TestTreeGrowing_CycleInput: cycles must not trap the recursion.
func TestTreeGrowing_CycleInput(t *testing.T) {
	g := mustGraph(t, 4, []edgeSpec{{0, 1, 1}, {1, 2, 2}, {2, 3, 2}, {3, 0, 2}})

	m, err := matching.TreeGrowing(g, nil, nil)
	require.NoError(t, err)
	require.NoError(t, m.Verify(g))
	assert.NotEmpty(t, m)
}

// TestTreeGrowing_AlwaysValidOnRandomGraphs: no optimality guarantee,
// but every output must be a valid matching.
func TestTreeGrowing_AlwaysValidOnRandomGraphs(t *testing.T) {
	rng := rand.New(rand.NewSource(555))
	for trial := 0; trial < 80; trial++ {
		n := 2 + rng.Intn(14)
		g := randomGraph(t, rng, n, 0.5, 30)

		m, err := matching.TreeGrowing(g, nil, nil)
		require.NoError(t, err)
		require.NoError(t, m.Verify(g), "trial %d", trial)
	}
}
