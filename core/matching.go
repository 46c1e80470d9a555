// Matching: the result type every matcher returns, with score and
// validity checks.
package core

import "fmt"

// Matching is an ordered list of edge ids drawn from one input graph,
// with no two edges sharing a vertex. The empty Matching is valid for
// every graph.
type Matching []EdgeID

// Score returns the sum of weights of the matched edges.
//
// Complexity: O(|m|)
func (m Matching) Score(g *Graph) int64 {
	var total int64
	for _, id := range m {
		total += g.Edge(id).Weight
	}

	return total
}

// Edges resolves the matching to the graph's own Edge values,
// preserving the matching's order.
//
// Complexity: O(|m|)
func (m Matching) Edges(g *Graph) []Edge {
	out := make([]Edge, len(m))
	for i, id := range m {
		out[i] = g.Edge(id)
	}

	return out
}

// Verify checks the matching invariant against g:
//
//   - every edge id refers to an edge of g,
//   - no edge id appears twice,
//   - no vertex is an endpoint of two matched edges.
//
// Returns nil when m is a valid matching of g, otherwise an error
// wrapping ErrNotAMatching with the offending edge or vertex.
//
// Complexity: O(V + |m|)
func (m Matching) Verify(g *Graph) error {
	seen := make([]bool, g.VertexCount())
	used := make(map[EdgeID]struct{}, len(m))
	var e Edge
	for _, id := range m {
		// Edge must belong to the input graph.
		if id < 0 || int(id) >= g.EdgeCount() {
			return fmt.Errorf("%w: edge id %d not in graph", ErrNotAMatching, id)
		}
		// Each edge may be selected at most once.
		if _, dup := used[id]; dup {
			return fmt.Errorf("%w: edge %d selected twice", ErrNotAMatching, id)
		}
		used[id] = struct{}{}

		// Neither endpoint may already be covered.
		e = g.Edge(id)
		if seen[e.From] {
			return fmt.Errorf("%w: vertex %d covered twice", ErrNotAMatching, e.From)
		}
		if seen[e.To] {
			return fmt.Errorf("%w: vertex %d covered twice", ErrNotAMatching, e.To)
		}
		seen[e.From], seen[e.To] = true, true
	}

	return nil
}
