package core_test

import (
	"testing"

	"github.com/katalvlaran/lvlmatch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPath returns the weighted path 0—1—2—3 with weights 2,3,2.
func buildPath(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	_, _ = g.AddEdge(0, 1, 2)
	_, _ = g.AddEdge(1, 2, 3)
	_, _ = g.AddEdge(2, 3, 2)

	return g
}

func TestMatching_ScoreAndEdges(t *testing.T) {
	g := buildPath(t)

	m := core.Matching{0, 2} // the outer edges
	assert.Equal(t, int64(4), m.Score(g))

	edges := m.Edges(g)
	require.Len(t, edges, 2)
	assert.Equal(t, core.EdgeID(0), edges[0].ID)
	assert.Equal(t, core.EdgeID(2), edges[1].ID)

	// Empty matching scores zero.
	assert.Zero(t, core.Matching{}.Score(g))
}

func TestMatching_Verify(t *testing.T) {
	g := buildPath(t)

	// Valid matchings.
	assert.NoError(t, core.Matching{}.Verify(g))
	assert.NoError(t, core.Matching{1}.Verify(g))
	assert.NoError(t, core.Matching{0, 2}.Verify(g))

	// Edges 0 and 1 share vertex 1.
	assert.ErrorIs(t, core.Matching{0, 1}.Verify(g), core.ErrNotAMatching)

	// The same edge twice covers its endpoints twice.
	assert.ErrorIs(t, core.Matching{2, 2}.Verify(g), core.ErrNotAMatching)

	// Foreign edge id.
	assert.ErrorIs(t, core.Matching{5}.Verify(g), core.ErrNotAMatching)
	assert.ErrorIs(t, core.Matching{-1}.Verify(g), core.ErrNotAMatching)
}
