package core_test

import (
	"testing"

	"github.com/katalvlaran/lvlmatch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTriangle returns the triangle 0—1 (w1), 1—2 (w1), 0—2 (w10).
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(1, 2, 1)
	_, _ = g.AddEdge(0, 2, 10)

	return g
}

func TestAdjacency_UndirectedFill(t *testing.T) {
	g := buildTriangle(t)
	a := core.NewAdjacency(g, core.FillUndirected, nil)

	// Every vertex of the triangle is incident to two edges.
	assert.False(t, a.IsEmpty())
	assert.Equal(t, 3, a.Len())
	assert.ElementsMatch(t, []core.EdgeID{0, 2}, a.Incident(0))
	assert.ElementsMatch(t, []core.EdgeID{0, 1}, a.Incident(1))
	assert.ElementsMatch(t, []core.EdgeID{1, 2}, a.Incident(2))
}

func TestAdjacency_ForwardFill(t *testing.T) {
	g := buildTriangle(t)
	a := core.NewAdjacency(g, core.FillForward, nil)

	// Each edge sits only at its From endpoint.
	assert.ElementsMatch(t, []core.EdgeID{0, 2}, a.Incident(0))
	assert.ElementsMatch(t, []core.EdgeID{1}, a.Incident(1))
	assert.False(t, a.Contains(2))
	assert.Equal(t, 2, a.Len())
}

func TestAdjacency_Remove(t *testing.T) {
	g := buildTriangle(t)
	a := core.NewAdjacency(g, core.FillUndirected, nil)

	// Removing vertex 0 purges edges 0 and 2 everywhere.
	a.Remove(0)
	assert.False(t, a.Contains(0))
	assert.ElementsMatch(t, []core.EdgeID{1}, a.Incident(1))
	assert.ElementsMatch(t, []core.EdgeID{1}, a.Incident(2))
	assert.Equal(t, 2, a.Len())

	// Removing vertex 1 drains vertex 2 as well: the index is empty.
	a.Remove(1)
	assert.True(t, a.IsEmpty())
	assert.False(t, a.Contains(2))

	// Removing an absent vertex is a no-op.
	a.Remove(1)
	a.Remove(99)
	assert.True(t, a.IsEmpty())
}

func TestAdjacency_Each(t *testing.T) {
	g := buildTriangle(t)
	a := core.NewAdjacency(g, core.FillUndirected, nil)

	// Each walks present vertices in ascending order.
	var order []core.VertexID
	a.Each(func(v core.VertexID, edges []core.EdgeID) bool {
		order = append(order, v)
		assert.NotEmpty(t, edges)

		return true
	})
	assert.Equal(t, []core.VertexID{0, 1, 2}, order)

	// Early stop after the first vertex.
	order = order[:0]
	a.Each(func(v core.VertexID, _ []core.EdgeID) bool {
		order = append(order, v)

		return false
	})
	assert.Equal(t, []core.VertexID{0}, order)
}
