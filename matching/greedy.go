// Greedy: sort edges by weight descending, select while vertices are
// free.
package matching

import (
	"sort"

	"github.com/katalvlaran/lvlmatch/core"
)

// Greedy computes a matching by scanning edges in order of descending
// weight and selecting every edge whose endpoints are both still free.
// Equal weights keep their input order (stable sort), so results are
// deterministic.
//
// The result is a valid matching but not necessarily optimal: on the
// path 0—1 (2), 1—2 (3), 2—3 (2) greedy picks the middle edge for a
// score of 3 while the two outer edges score 4.
//
// One Step is yielded per scanned edge.
//
// Complexity: O(E log E) time, O(V + E) space.
func Greedy(g *core.Graph, tr core.Tracer, yield func(Step) bool) (core.Matching, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	tr = core.EnsureTracer(tr)
	yield = runYield(yield)

	// 1) Copy the edge list and order it by weight descending.
	//    sort.SliceStable keeps insertion order among equal weights.
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Weight > edges[j].Weight })

	// 2) Scan in sorted order, tracking which vertices are used.
	used := make([]bool, g.VertexCount())
	result := core.Matching{}
	for _, e := range edges {
		if !yield(Step{Name: "scan"}) {
			return nil, ErrInterrupted
		}
		tr.CurrentEdge(e.ID)

		if used[e.From] || used[e.To] {
			tr.Commit()

			continue
		}

		// Both endpoints free: take the edge and block them.
		result = append(result, e.ID)
		used[e.From], used[e.To] = true, true
		tr.PickEdge(e.ID, core.ColorGreen)
		tr.Commit()
	}

	return result, nil
}
