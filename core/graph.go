// Construction and query methods of Graph.
package core

import "fmt"

// AddEdge appends the undirected edge u—v with the given weight and
// returns its EdgeID.
//
// Validation (in order):
//  1. Both endpoints must lie in [0, VertexCount) (ErrVertexRange).
//  2. u != v (ErrSelfLoop).
//  3. No prior edge on the unordered pair {u, v} (ErrDuplicateEdge).
//  4. weight >= 0 (ErrNegativeWeight).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v VertexID, weight int64) (EdgeID, error) {
	// 1) Endpoints must be valid vertex ids.
	if u < 0 || int(u) >= g.n {
		return NoEdge, fmt.Errorf("%w: %d not in [0,%d)", ErrVertexRange, u, g.n)
	}
	if v < 0 || int(v) >= g.n {
		return NoEdge, fmt.Errorf("%w: %d not in [0,%d)", ErrVertexRange, v, g.n)
	}

	// 2) Reject self-loops.
	if u == v {
		return NoEdge, fmt.Errorf("%w: %d—%d", ErrSelfLoop, u, v)
	}

	// 3) Reject a second edge on the same unordered pair.
	key := pairKey(u, v)
	if _, dup := g.pairs[key]; dup {
		return NoEdge, fmt.Errorf("%w: %d—%d", ErrDuplicateEdge, u, v)
	}

	// 4) Weights are non-negative integers by contract.
	if weight < 0 {
		return NoEdge, fmt.Errorf("%w: %d—%d weight=%d", ErrNegativeWeight, u, v, weight)
	}

	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, Edge{ID: id, From: u, To: v, Weight: weight})
	g.pairs[key] = struct{}{}

	return id, nil
}

// VertexCount returns the number of vertices. Vertex ids are exactly
// 0..VertexCount()-1.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edge returns the edge with the given id. Ids outside
// [0, EdgeCount()) are a programmer error and panic.
func (g *Graph) Edge(id EdgeID) Edge {
	if id < 0 || int(id) >= len(g.edges) {
		panic(fmt.Sprintf("core: edge id %d out of range [0,%d)", id, len(g.edges)))
	}

	return g.edges[id]
}

// Edges returns a copy of the edge list in insertion order.
// Mutating the returned slice does not affect the graph.
//
// Complexity: O(E)
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// HasEdge reports whether an edge exists on the unordered pair {u, v}.
//
// Complexity: O(1)
func (g *Graph) HasEdge(u, v VertexID) bool {
	_, ok := g.pairs[pairKey(u, v)]

	return ok
}

// MaxWeight returns the largest edge weight, or 0 for an edgeless graph.
//
// Complexity: O(E)
func (g *Graph) MaxWeight() int64 {
	var maxW int64
	for i := range g.edges {
		if g.edges[i].Weight > maxW {
			maxW = g.edges[i].Weight
		}
	}

	return maxW
}

// pairKey normalizes an unordered vertex pair to a map key.
func pairKey(u, v VertexID) [2]VertexID {
	if u > v {
		u, v = v, u
	}

	return [2]VertexID{u, v}
}
