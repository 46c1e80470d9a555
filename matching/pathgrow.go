// Path-growing: the Drake–Hougardy ½-approximation and its per-path
// variant.
package matching

import "github.com/katalvlaran/lvlmatch/core"

// PathGrowing computes a matching by growing vertex-disjoint paths.
//
// Starting from each input vertex that still has incident edges, it
// repeatedly follows the heaviest remaining incident edge, assigning
// edges alternately to two candidate matchings M1 and M2 (the current
// edge goes to M1 while |M1| <= |M2|, else to M2), and removing the
// departed vertex from the adjacency index. Because consecutive path
// edges share a vertex, each candidate is itself a valid matching.
// The better-scoring candidate over the whole run is returned.
//
// The returned score is at least half the optimum. One Step is
// yielded per path step taken.
//
// Complexity: O(V + E·d) time where d bounds vertex degree, O(V + E) space.
func PathGrowing(g *core.Graph, tr core.Tracer, yield func(Step) bool) (core.Matching, error) {
	return pathGrow(g, tr, yield, false)
}

// PathGrowingPatched is PathGrowing with the winner decided per path:
// after each walk ends, the better of M1 and M2 is committed to the
// running result and both candidates are cleared. Per-path decisions
// never score worse than the global decision.
func PathGrowingPatched(g *core.Graph, tr core.Tracer, yield func(Step) bool) (core.Matching, error) {
	return pathGrow(g, tr, yield, true)
}

func pathGrow(g *core.Graph, tr core.Tracer, yield func(Step) bool, patched bool) (core.Matching, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	tr = core.EnsureTracer(tr)
	yield = runYield(yield)

	// 1) Build the undirected index; walks consume it destructively.
	adj := core.NewAdjacency(g, core.FillUndirected, tr)

	var (
		m1, m2 core.Matching // alternating candidates of the current scope
		result core.Matching // committed edges (patched mode only)
		s1, s2 int64         // running candidate scores
	)

	// 2) Start one walk per input vertex that still has edges left.
	for start := 0; start < g.VertexCount(); start++ {
		v := core.VertexID(start)
		if !adj.Contains(v) {
			continue
		}
		tr.CurrentNode(v)

		// 3) Walk: follow the heaviest incident edge until the path
		//    cannot be extended.
		for adj.Contains(v) {
			if !yield(Step{Name: "walk"}) {
				return nil, ErrInterrupted
			}

			e := heaviestIncident(g, adj, v)
			tr.CurrentEdge(e.ID)

			// Assign alternately: M1 while it is not ahead of M2.
			if len(m1) <= len(m2) {
				m1 = append(m1, e.ID)
				s1 += e.Weight
				tr.PickEdge(e.ID, core.ColorBlue)
			} else {
				m2 = append(m2, e.ID)
				s2 += e.Weight
				tr.PickEdge(e.ID, core.ColorYellow)
			}

			// Leave v, then continue from the other endpoint.
			adj.Remove(v)
			v = e.Other(v)
			tr.Commit()
		}

		// 4) Patched variant: settle this path now.
		if patched {
			if s1 >= s2 {
				result = append(result, m1...)
			} else {
				result = append(result, m2...)
			}
			m1, m2, s1, s2 = nil, nil, 0, 0
		}
	}

	// 5) Standard variant: one global comparison at the end.
	if !patched {
		if s1 >= s2 {
			return nonNilMatching(m1), nil
		}

		return nonNilMatching(m2), nil
	}

	return nonNilMatching(result), nil
}

// heaviestIncident picks v's heaviest remaining incident edge,
// breaking weight ties by insertion order.
func heaviestIncident(g *core.Graph, adj *core.Adjacency, v core.VertexID) core.Edge {
	var (
		best  core.Edge
		found bool
	)
	for _, id := range adj.Incident(v) {
		e := g.Edge(id)
		if !found || e.Weight > best.Weight {
			best, found = e, true
		}
	}
	if !found {
		// Contains(v) held, so the incident list cannot be empty.
		panic("matching: path growing: present vertex with empty incident list")
	}

	return best
}

// nonNilMatching normalizes a nil matching to the empty matching.
func nonNilMatching(m core.Matching) core.Matching {
	if m == nil {
		return core.Matching{}
	}

	return m
}
