// Naive: exhaustive matching enumeration, exact but exponential.
package matching

import (
	"fmt"

	"github.com/katalvlaran/lvlmatch/core"
)

// Naive computes an optimal matching by enumerating every valid
// matching recursively: each vertex, taken in input order, is either
// skipped or paired with one of its free neighbors. Exact, and useful
// as an oracle against the blossom solver on small inputs.
//
// Graphs above DefaultNaiveCap vertices return the empty matching and
// a trace note instead of burning exponential time; NaiveWithCap
// adjusts the bound. One Step is yielded each time the search reaches
// an undecided vertex, at any recursion depth.
//
// Complexity: exponential in V; space O(V + E).
func Naive(g *core.Graph, tr core.Tracer, yield func(Step) bool) (core.Matching, error) {
	return naive(g, tr, yield, DefaultNaiveCap)
}

// NaiveWithCap returns a Naive matcher with a custom vertex cap.
func NaiveWithCap(cap int) Matcher {
	return func(g *core.Graph, tr core.Tracer, yield func(Step) bool) (core.Matching, error) {
		return naive(g, tr, yield, cap)
	}
}

func naive(g *core.Graph, tr core.Tracer, yield func(Step) bool, cap int) (core.Matching, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	tr = core.EnsureTracer(tr)
	yield = runYield(yield)

	// Oversize inputs degrade gracefully: empty matching, trace note.
	if g.VertexCount() > cap {
		tr.Message(fmt.Sprintf("naive: %d vertices exceed cap %d, skipping", g.VertexCount(), cap))
		tr.Commit()

		return core.Matching{}, nil
	}

	// Pairing v needs every incident edge, whichever endpoint v is.
	adj := core.NewAdjacency(g, core.FillUndirected, tr)

	e := &naiveEnum{
		g:     g,
		adj:   adj,
		used:  make([]bool, g.VertexCount()),
		tr:    tr,
		yield: yield,
		best:  core.Matching{},
	}
	if !e.explore(0, nil, 0) {
		return nil, ErrInterrupted
	}

	return e.best, nil
}

// naiveEnum carries the recursion state of one enumeration.
type naiveEnum struct {
	g         *core.Graph
	adj       *core.Adjacency
	used      []bool
	tr        core.Tracer
	yield     func(Step) bool
	best      core.Matching
	bestScore int64
}

// explore advances to the next undecided vertex from v on, extending
// current (score) with every legal pairing. Returns false when the
// step consumer interrupted the run.
func (e *naiveEnum) explore(v int, current core.Matching, score int64) bool {
	// 1) Skip vertices that are already matched in this branch.
	for v < len(e.used) && e.used[v] {
		v++
	}

	// 2) All vertices decided: candidate complete, keep the best.
	if v >= len(e.used) {
		if score > e.bestScore {
			e.best = append(core.Matching{}, current...)
			e.bestScore = score
		}

		return true
	}
	if !e.yield(Step{Name: "branch"}) {
		return false
	}
	e.tr.CurrentNode(core.VertexID(v))

	// 3) Option one: leave v unmatched.
	if !e.explore(v+1, current, score) {
		return false
	}

	// 4) Option two: pair v with each free neighbor in edge order.
	e.used[v] = true
	var (
		edge core.Edge
		w    core.VertexID
	)
	for _, id := range e.adj.Incident(core.VertexID(v)) {
		edge = e.g.Edge(id)
		w = edge.Other(core.VertexID(v))
		if e.used[w] {
			continue
		}

		e.used[w] = true
		if !e.explore(v+1, append(current, id), score+edge.Weight) {
			return false
		}
		e.used[w] = false
	}
	e.used[v] = false

	return true
}
