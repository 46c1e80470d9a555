package matching_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlmatch/matching"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGreedy_Basics covers empty, single-edge, and validity cases.
func TestGreedy_Basics(t *testing.T) {
	_, err := matching.Greedy(nil, nil, nil)
	assert.ErrorIs(t, err, matching.ErrNilGraph)

	g := mustGraph(t, 3, nil)
	m, err := matching.Greedy(g, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, m)

	g = mustGraph(t, 2, []edgeSpec{{0, 1, 4}})
	m, err = matching.Greedy(g, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(4), m.Score(g))
}

// TestGreedy_KnownSuboptimal: on the 2-3-2 path greedy grabs the
// middle edge and scores 3 while the optimum is 4.
func TestGreedy_KnownSuboptimal(t *testing.T) {
	g := mustGraph(t, 4, []edgeSpec{{0, 1, 2}, {1, 2, 3}, {2, 3, 2}})

	m, err := matching.Greedy(g, nil, nil)
	require.NoError(t, err)
	require.NoError(t, m.Verify(g))
	assert.Equal(t, int64(3), m.Score(g))
}

// TestGreedy_StableTies: equal weights are taken in input order.
func TestGreedy_StableTies(t *testing.T) {
	// Star at vertex 0: all weights equal; greedy must take the first
	// inserted edge and stop there.
	g := mustGraph(t, 4, []edgeSpec{{0, 1, 5}, {0, 2, 5}, {0, 3, 5}})

	m, err := matching.Greedy(g, nil, nil)
	require.NoError(t, err)
	require.Len(t, m, 1)
	assert.Equal(t, g.Edge(0).ID, g.Edge(m[0]).ID)
}

// TestGreedy_HalfApproximation: greedy never scores below half of the
// blossom optimum.
func TestGreedy_HalfApproximation(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 60; trial++ {
		n := 2 + rng.Intn(12)
		g := randomGraph(t, rng, n, 0.5, 50)

		approx, err := matching.Greedy(g, nil, nil)
		require.NoError(t, err)
		require.NoError(t, approx.Verify(g))

		exact, err := matching.Blossom(g, nil, nil)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, 2*approx.Score(g), exact.Score(g),
			"trial %d: greedy fell below half the optimum", trial)
	}
}

// TestGreedy_PermutationInvariantScore: reordering equal inputs does
// not change the greedy score.
func TestGreedy_PermutationInvariantScore(t *testing.T) {
	edges := []edgeSpec{{0, 1, 3}, {1, 2, 7}, {2, 3, 3}, {3, 0, 7}}
	g1 := mustGraph(t, 4, edges)

	reversed := []edgeSpec{{3, 0, 7}, {2, 3, 3}, {1, 2, 7}, {0, 1, 3}}
	g2 := mustGraph(t, 4, reversed)

	m1, err := matching.Greedy(g1, nil, nil)
	require.NoError(t, err)
	m2, err := matching.Greedy(g2, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, m1.Score(g1), m2.Score(g2))
}
