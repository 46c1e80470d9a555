// Adjacency: the dense per-vertex incident-edge index used by the
// path-growing and naive matchers.
package core

import "fmt"

// FillMode selects how NewAdjacency distributes edges over the
// per-vertex lists.
type FillMode int

const (
	// FillUndirected appends each edge to both endpoints' lists.
	FillUndirected FillMode = iota

	// FillForward appends each edge only to its From endpoint's list.
	FillForward
)

// Adjacency maps each vertex to the list of its incident edges.
// It is built once from a Graph and then consumed destructively via
// Remove; the Graph itself is never touched.
//
// A vertex is "present" while its list is non-empty; IsEmpty holds
// exactly when no vertex is present.
type Adjacency struct {
	g        *Graph
	mode     FillMode
	incident [][]EdgeID // per-vertex incident edge ids, insertion order
	present  []bool     // present[v]: incident[v] is non-empty
	count    int        // number of present vertices
	tr       Tracer
}

// NewAdjacency builds the index for g in the given fill mode.
// tr may be nil; fill progress is reported as CurrentEdge events,
// which are observable side effects only.
//
// Complexity: O(V + E)
func NewAdjacency(g *Graph, mode FillMode, tr Tracer) *Adjacency {
	a := &Adjacency{
		g:        g,
		mode:     mode,
		incident: make([][]EdgeID, g.VertexCount()),
		present:  make([]bool, g.VertexCount()),
		tr:       EnsureTracer(tr),
	}

	var e Edge
	for i := 0; i < g.EdgeCount(); i++ {
		e = g.Edge(EdgeID(i))
		a.tr.CurrentEdge(e.ID)

		a.append(e.From, e.ID)
		if mode == FillUndirected {
			a.append(e.To, e.ID)
		}
	}

	return a
}

// append records id in v's list, marking v present on first use.
func (a *Adjacency) append(v VertexID, id EdgeID) {
	if !a.present[v] {
		a.present[v] = true
		a.count++
	}
	a.incident[v] = append(a.incident[v], id)
}

// Incident returns v's incident edge ids in insertion order.
// The slice is owned by the index; callers must not retain it across
// a Remove.
func (a *Adjacency) Incident(v VertexID) []EdgeID {
	if !a.inRange(v) || !a.present[v] {
		return nil
	}

	return a.incident[v]
}

// Contains reports whether v still has incident edges in the index.
func (a *Adjacency) Contains(v VertexID) bool {
	return a.inRange(v) && a.present[v]
}

// IsEmpty reports whether no vertex has incident edges left.
func (a *Adjacency) IsEmpty() bool { return a.count == 0 }

// Len returns the number of vertices that still have incident edges.
func (a *Adjacency) Len() int { return a.count }

// Each calls f for every present vertex with its incident list, in
// ascending vertex order, stopping early when f returns false.
func (a *Adjacency) Each(f func(v VertexID, edges []EdgeID) bool) {
	for v := range a.incident {
		if a.present[v] && !f(VertexID(v), a.incident[v]) {
			return
		}
	}
}

// Remove deletes v from the index and purges every edge incident to v
// from each other endpoint's list; an endpoint whose list drains
// becomes absent. Removing an absent vertex is a no-op.
//
// With FillUndirected, an edge listed at v but missing from its other
// endpoint's list means the index is corrupt; that is a bug and Remove
// panics with a diagnostic.
//
// Complexity: O(sum of degrees of v's neighbors); O(V + E) with
// FillForward.
func (a *Adjacency) Remove(v VertexID) {
	if !a.inRange(v) || !a.present[v] {
		return
	}

	var (
		e Edge
		w VertexID
	)
	for _, id := range a.incident[v] {
		a.tr.CurrentEdge(id)

		e = a.g.Edge(id)
		w = e.Other(v)
		if !a.present[w] {
			continue
		}
		a.purge(w, id, v)
	}

	// Under FillForward an edge w→v is listed only at w; drop it there.
	if a.mode == FillForward {
		for w := range a.incident {
			if !a.present[w] || VertexID(w) == v {
				continue
			}
			for _, id := range a.incident[w] {
				if a.g.Edge(id).To == v {
					a.purge(VertexID(w), id, v)

					break
				}
			}
		}
	}

	a.incident[v] = nil
	a.present[v] = false
	a.count--
}

// purge removes edge id from w's list. A miss under FillUndirected
// means the mirror invariant is broken — a bug, so purge panics with a
// diagnostic. Under FillForward the edge was never mirrored and a miss
// is expected.
func (a *Adjacency) purge(w VertexID, id EdgeID, from VertexID) {
	list := a.incident[w]
	for i, cand := range list {
		if cand != id {
			continue
		}
		a.incident[w] = append(list[:i], list[i+1:]...)
		if len(a.incident[w]) == 0 {
			a.present[w] = false
			a.count--
		}

		return
	}

	if a.mode == FillUndirected {
		panic(fmt.Sprintf(
			"core: adjacency corrupt: edge %d listed at vertex %d but absent at endpoint %d",
			id, from, w))
	}
}

func (a *Adjacency) inRange(v VertexID) bool {
	return v >= 0 && int(v) < len(a.incident)
}
