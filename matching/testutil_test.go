package matching_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlmatch/core"
	"github.com/stretchr/testify/require"
)

// edgeSpec is a test shorthand: endpoints plus weight.
type edgeSpec struct {
	u, v core.VertexID
	w    int64
}

// mustGraph builds a graph over n vertices from edge specs.
func mustGraph(t *testing.T, n int, edges []edgeSpec) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for _, e := range edges {
		_, err = g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	return g
}

// scenario is an end-to-end case with a known optimal score.
type scenario struct {
	name  string
	n     int
	edges []edgeSpec
	best  int64
}

// scenarios are the reference cases every exact matcher must solve.
func scenarios() []scenario {
	return []scenario{
		{
			name:  "triangle heavy diagonal",
			n:     3,
			edges: []edgeSpec{{0, 1, 1}, {1, 2, 1}, {0, 2, 10}},
			best:  10,
		},
		{
			name:  "three edge path",
			n:     4,
			edges: []edgeSpec{{0, 1, 2}, {1, 2, 3}, {2, 3, 2}},
			best:  4,
		},
		{
			name:  "four edge path",
			n:     5,
			edges: []edgeSpec{{0, 1, 10}, {1, 2, 1}, {2, 3, 1}, {3, 4, 9}},
			best:  19,
		},
		{
			name:  "six edge path",
			n:     7,
			edges: []edgeSpec{{0, 1, 10}, {1, 2, 1}, {2, 3, 2}, {3, 4, 9}, {4, 5, 9}, {5, 6, 2}},
			best:  21,
		},
		{
			name:  "square",
			n:     4,
			edges: []edgeSpec{{0, 1, 1}, {1, 2, 2}, {2, 3, 2}, {3, 0, 2}},
			best:  4,
		},
		{
			name:  "three disjoint edges",
			n:     6,
			edges: []edgeSpec{{0, 1, 10}, {2, 3, 10}, {4, 5, 9}},
			best:  29,
		},
		{
			name:  "empty graph",
			n:     0,
			edges: nil,
			best:  0,
		},
	}
}

// randomGraph samples a simple graph with n vertices, Bernoulli(p)
// edges, and weights uniform in [0, maxW). Deterministic per rng.
func randomGraph(t *testing.T, rng *rand.Rand, n int, p float64, maxW int64) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				_, err = g.AddEdge(core.VertexID(i), core.VertexID(j), rng.Int63n(maxW))
				require.NoError(t, err)
			}
		}
	}

	return g
}
