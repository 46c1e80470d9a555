package matching_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlmatch/core"
	"github.com/katalvlaran/lvlmatch/matching"
	"github.com/katalvlaran/lvlmatch/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBlossom_Scenarios checks the reference cases end to end.
func TestBlossom_Scenarios(t *testing.T) {
	for _, sc := range scenarios() {
		t.Run(sc.name, func(t *testing.T) {
			g := mustGraph(t, sc.n, sc.edges)

			m, err := matching.Blossom(g, nil, nil)
			require.NoError(t, err)
			require.NoError(t, m.Verify(g))
			assert.Equal(t, sc.best, m.Score(g))
		})
	}
}

// TestBlossom_TrivialInputs covers the universal edge cases.
func TestBlossom_TrivialInputs(t *testing.T) {
	// Nil graph is rejected.
	_, err := matching.Blossom(nil, nil, nil)
	assert.ErrorIs(t, err, matching.ErrNilGraph)

	// Vertices without edges yield the empty matching.
	g := mustGraph(t, 5, nil)
	m, err := matching.Blossom(g, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, m)

	// A single edge is returned with its own weight as score.
	g = mustGraph(t, 2, []edgeSpec{{0, 1, 7}})
	m, err = matching.Blossom(g, nil, nil)
	require.NoError(t, err)
	require.Len(t, m, 1)
	assert.Equal(t, int64(7), m.Score(g))
}

// TestBlossom_NestedStructures solves shapes that force blossom
// creation and expansion: odd cycles with pendants and dense cliques.
func TestBlossom_NestedStructures(t *testing.T) {
	// A 5-cycle with a heavy pendant edge: forces a blossom and a
	// later augmentation through it.
	g := mustGraph(t, 6, []edgeSpec{
		{0, 1, 8}, {1, 2, 9}, {2, 3, 10}, {3, 4, 7}, {4, 0, 6},
		{4, 5, 11},
	})
	m, err := matching.Blossom(g, nil, nil)
	require.NoError(t, err)
	require.NoError(t, m.Verify(g))
	// Optimal: (1,2)=9 avoided in favor of (0,1)=8,(2,3)=10,(4,5)=11.
	assert.Equal(t, int64(29), m.Score(g))

	// Complete graph on six vertices with distinct weights.
	g = mustGraph(t, 6, nil)
	var w int64 = 1
	for i := 0; i < 6; i++ {
		for j := i + 1; j < 6; j++ {
			_, errAdd := g.AddEdge(core.VertexID(i), core.VertexID(j), w*w)
			require.NoError(t, errAdd)
			w++
		}
	}
	m, err = matching.Blossom(g, nil, nil)
	require.NoError(t, err)
	require.NoError(t, m.Verify(g))

	// Cross-check against the exhaustive oracle.
	oracle, err := matching.Naive(g, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, oracle.Score(g), m.Score(g))
}

// TestBlossom_MatchesNaiveOnRandomGraphs is the oracle sweep: on every
// random graph up to 15 vertices the blossom score must equal the
// exhaustive optimum, and the dual certificate must hold.
func TestBlossom_MatchesNaiveOnRandomGraphs(t *testing.T) {
	rng := rand.New(rand.NewSource(1347))
	for trial := 0; trial < 120; trial++ {
		n := 2 + rng.Intn(14) // 2..15 vertices
		g := randomGraph(t, rng, n, 0.5, 20)

		exact, err := matching.BlossomVerified(g)
		require.NoError(t, err, "trial %d certificate", trial)
		require.NoError(t, exact.Verify(g), "trial %d validity", trial)

		oracle, err := matching.Naive(g, nil, nil)
		require.NoError(t, err)
		require.Equal(t, oracle.Score(g), exact.Score(g),
			"trial %d: blossom disagrees with exhaustive search", trial)
	}
}

// TestBlossom_ZeroWeights: zero-weight edges are legal and never
// improve the score.
func TestBlossom_ZeroWeights(t *testing.T) {
	g := mustGraph(t, 4, []edgeSpec{{0, 1, 0}, {1, 2, 0}, {2, 3, 0}})
	m, err := matching.Blossom(g, nil, nil)
	require.NoError(t, err)
	require.NoError(t, m.Verify(g))
	assert.Zero(t, m.Score(g))
}

// TestBlossom_EdgeOrderPermutation: permuting the input edge order
// may change which edges are picked on ties but never the score.
func TestBlossom_EdgeOrderPermutation(t *testing.T) {
	edges := []edgeSpec{
		{0, 1, 10}, {1, 2, 1}, {2, 3, 2}, {3, 4, 9}, {4, 5, 9}, {5, 6, 2},
	}
	want := int64(21)

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 10; trial++ {
		perm := append([]edgeSpec(nil), edges...)
		rng.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })

		g := mustGraph(t, 7, perm)
		m, err := matching.Blossom(g, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, want, m.Score(g))
	}
}

// TestBlossom_TraceInvariance: a recording sink must not change the
// result relative to no sink at all.
func TestBlossom_TraceInvariance(t *testing.T) {
	g := mustGraph(t, 5, []edgeSpec{
		{0, 1, 3}, {1, 2, 5}, {2, 3, 4}, {3, 4, 8}, {4, 0, 2}, {1, 3, 6},
	})

	plain, err := matching.Blossom(g, nil, nil)
	require.NoError(t, err)

	traced, err := matching.Blossom(g, trace.NewBuffer(), nil)
	require.NoError(t, err)
	assert.Equal(t, plain, traced)
}
