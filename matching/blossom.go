// Blossom: exact maximum-weight matching via Edmonds' primal–dual
// blossom algorithm with the Galil/Gabow refinements.
//
// The solver keeps every table dense and indexed by node id. Vertices
// occupy ids [0, n); blossom ids occupy [n, 2n) and are recycled
// through a free list. "Node" below means either. Each edge k owns two
// endpoint numbers, 2k (attached to the edge's first vertex) and 2k+1
// (attached to the second); p^1 is the far end of p's edge. Dual
// variables are integer-doubled: dualvar[v] stores 2·u(v) for a vertex
// and z(b) for a blossom, so slack(k) = dualvar[i]+dualvar[j]-2·w(k)
// stays integral throughout.
package matching

import (
	"fmt"

	"github.com/katalvlaran/lvlmatch/core"
)

// Node labels during a stage.
const (
	labelFree  = 0 // unlabeled
	labelS     = 1 // even alternating distance from a root
	labelT     = 2 // odd alternating distance from a root
	labelCrumb = 5 // temporary breadcrumb during scanBlossom (labelS|4)
)

const noNode = -1 // absent node / endpoint / edge marker

// Blossom computes an optimal maximum-weight matching. It runs at
// most V stages, each growing alternating trees from every unmatched
// vertex until an augmenting path is found or the dual variables
// prove optimality.
//
// One Step is yielded per stage, per scanned S-vertex, and per dual
// update.
//
// Complexity: O(V³) time, O(V + E) space.
func Blossom(g *core.Graph, tr core.Tracer, yield func(Step) bool) (core.Matching, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	tr = core.EnsureTracer(tr)
	yield = runYield(yield)

	n := g.VertexCount()
	if n == 0 || g.EdgeCount() == 0 {
		return core.Matching{}, nil
	}

	s := newBlossomSolver(g, tr, yield)
	if !s.run() {
		return nil, ErrInterrupted
	}

	return s.extract(), nil
}

// blossomSolver holds the dense per-run tables. Field names follow the
// customary presentation of the algorithm (mate, label, inblossom, …).
type blossomSolver struct {
	g     *core.Graph
	tr    core.Tracer
	yield func(Step) bool

	nvertex   int   // number of vertices n; node ids span [0, 2n)
	maxweight int64 // largest edge weight, initial vertex dual

	// Static edge geometry.
	endpoint []int   // endpoint[p]: vertex that endpoint p is attached to
	neighbend [][]int // neighbend[v]: endpoints p with endpoint[p^1] == v

	// Matching state (survives stages).
	mate []int // mate[v]: remote endpoint of v's matched edge, or noNode

	// Stage state.
	label            []int   // size 2n: labelFree / labelS / labelT (+crumb)
	labelend         []int   // size 2n: endpoint through which the label arrived
	inblossom        []int   // size n: top-level blossom containing v
	blossomparent    []int   // size 2n: parent blossom or noNode
	blossomchilds    [][]int // size 2n: cyclic child list, base first
	blossombase      []int   // size 2n: base vertex, noNode when recycled
	blossomendps     [][]int // size 2n: endpoints linking consecutive children
	bestedge         []int   // size 2n: least-slack edge to an outside S-node
	blossombestedges [][]int // size 2n: cached least-slack edges per S-blossom
	dualvar          []int64 // size 2n: 2·u(v) for vertices, z(b) for blossoms
	allowedge        []bool  // per edge: known zero slack
	unusedblossoms   []int   // free blossom ids
	queue            []int   // S-vertices awaiting scan

	augmented bool
}

func newBlossomSolver(g *core.Graph, tr core.Tracer, yield func(Step) bool) *blossomSolver {
	n := g.VertexCount()
	nedge := g.EdgeCount()
	s := &blossomSolver{
		g:         g,
		tr:        tr,
		yield:     yield,
		nvertex:   n,
		maxweight: g.MaxWeight(),

		endpoint:  make([]int, 2*nedge),
		neighbend: make([][]int, n),

		mate: make([]int, n),

		label:            make([]int, 2*n),
		labelend:         make([]int, 2*n),
		inblossom:        make([]int, n),
		blossomparent:    make([]int, 2*n),
		blossomchilds:    make([][]int, 2*n),
		blossombase:      make([]int, 2*n),
		blossomendps:     make([][]int, 2*n),
		bestedge:         make([]int, 2*n),
		blossombestedges: make([][]int, 2*n),
		dualvar:          make([]int64, 2*n),
		allowedge:        make([]bool, nedge),
	}

	// Endpoint 2k belongs to edge k's first vertex, 2k+1 to its second;
	// neighbend[v] lists the endpoints whose far end sits at v.
	var e core.Edge
	for k := 0; k < nedge; k++ {
		e = g.Edge(core.EdgeID(k))
		s.endpoint[2*k] = int(e.From)
		s.endpoint[2*k+1] = int(e.To)
		s.neighbend[e.From] = append(s.neighbend[e.From], 2*k+1)
		s.neighbend[e.To] = append(s.neighbend[e.To], 2*k)
	}

	// Every vertex starts unmatched, a trivial top-level blossom of
	// itself, with dual u(v) = maxweight/2 (stored doubled).
	for v := 0; v < n; v++ {
		s.mate[v] = noNode
		s.inblossom[v] = v
		s.blossombase[v] = v
		s.dualvar[v] = s.maxweight
	}
	for b := 0; b < 2*n; b++ {
		s.labelend[b] = noNode
		s.blossomparent[b] = noNode
		s.bestedge[b] = noNode
		if b >= n {
			s.blossombase[b] = noNode
			s.unusedblossoms = append(s.unusedblossoms, b)
		}
	}

	return s
}

// edgeAt returns edge k's endpoints and weight.
func (s *blossomSolver) edgeAt(k int) (int, int, int64) {
	e := s.g.Edge(core.EdgeID(k))

	return int(e.From), int(e.To), e.Weight
}

// slack returns the (doubled) dual slack of edge k. Not meaningful for
// edges inside a blossom.
func (s *blossomSolver) slack(k int) int64 {
	i, j, wt := s.edgeAt(k)

	return s.dualvar[i] + s.dualvar[j] - 2*wt
}

// blossomLeaves appends the vertex ids contained in b (b itself when
// trivial) to out.
func (s *blossomSolver) blossomLeaves(b int, out []int) []int {
	if b < s.nvertex {
		return append(out, b)
	}
	for _, child := range s.blossomchilds[b] {
		out = s.blossomLeaves(child, out)
	}

	return out
}

// run executes the stage loop. It returns false when the step
// consumer interrupted the solver.
func (s *blossomSolver) run() bool {
	// Each successful stage augments the matching by one edge, so at
	// most nvertex stages can run.
	for stage := 0; stage < s.nvertex; stage++ {
		if !s.yield(Step{Name: "stage"}) {
			return false
		}
		s.tr.Message(fmt.Sprintf("blossom: stage %d", stage))

		// Reset per-stage labels and caches.
		for b := 0; b < 2*s.nvertex; b++ {
			s.label[b] = labelFree
			s.labelend[b] = noNode
			s.bestedge[b] = noNode
			if b >= s.nvertex {
				s.blossombestedges[b] = nil
			}
		}
		for k := range s.allowedge {
			s.allowedge[k] = false
		}
		s.queue = s.queue[:0]
		s.augmented = false

		// Root every unmatched top-level node as an S-tree.
		for v := 0; v < s.nvertex; v++ {
			if s.mate[v] == noNode && s.label[s.inblossom[v]] == labelFree {
				s.assignLabel(v, labelS, noNode)
			}
		}

		if !s.substage() {
			return false
		}
		if !s.augmented {
			// Optimality proven; no stage can augment anymore.
			break
		}

		// End-stage expansion: every top-level S-blossom whose dual
		// dropped to zero dissolves.
		for b := s.nvertex; b < 2*s.nvertex; b++ {
			if s.blossomparent[b] == noNode && s.blossombase[b] != noNode &&
				s.label[b] == labelS && s.dualvar[b] == 0 {
				s.expandBlossom(b, true)
			}
		}
	}

	return true
}

// substage alternates scan and dual-update phases until the stage
// augments or proves no further progress. Returns false on interrupt.
func (s *blossomSolver) substage() bool {
	for {
		// Phase A: scan newly labeled S-vertices.
		if !s.scan() {
			return false
		}
		if s.augmented {
			return true
		}

		// Phase B: no tight structure left, improve the duals.
		if !s.yield(Step{Name: "dual"}) {
			return false
		}
		if done := s.updateDuals(); done {
			return true
		}
	}
}

// scan pops S-vertices off the queue and relaxes their edges.
// Returns false on interrupt.
func (s *blossomSolver) scan() bool {
	var (
		v, p, k, w int
		kslack     int64
	)
	for len(s.queue) > 0 && !s.augmented {
		// Pop the most recently discovered S-vertex.
		v = s.queue[len(s.queue)-1]
		s.queue = s.queue[:len(s.queue)-1]

		if !s.yield(Step{Name: "scan"}) {
			return false
		}
		s.tr.CurrentNode(core.VertexID(v))
		if s.label[s.inblossom[v]] != labelS {
			panic(fmt.Sprintf("matching: blossom: queued vertex %d lost its S-label", v))
		}

		for _, p = range s.neighbend[v] {
			k = p / 2
			w = s.endpoint[p]

			// Edges internal to a blossom carry no information.
			if s.inblossom[v] == s.inblossom[w] {
				continue
			}

			kslack = 0
			if !s.allowedge[k] {
				kslack = s.slack(k)
				if kslack <= 0 {
					// Tight edge: usable for tree growth.
					s.allowedge[k] = true
				}
			}

			switch {
			case s.allowedge[k]:
				switch {
				case s.label[s.inblossom[w]] == labelFree:
					// w's blossom is fresh: it becomes a T-node and
					// its mate an S-node.
					s.assignLabel(w, labelT, p^1)

				case s.label[s.inblossom[w]] == labelS:
					// Two S-trees meet: either a blossom closes or an
					// augmenting path connects two roots.
					base := s.scanBlossom(v, w)
					if base != noNode {
						s.addBlossom(base, k)
					} else {
						s.augmentMatching(k)
						s.augmented = true
					}

				case s.label[w] == labelFree:
					// w sits in a T-blossom but was not reached
					// itself yet; remember how it is reached.
					if s.label[s.inblossom[w]] != labelT {
						panic(fmt.Sprintf("matching: blossom: vertex %d in non-T blossom scanned as interior", w))
					}
					s.label[w] = labelT
					s.labelend[w] = p ^ 1
				}

			case s.label[s.inblossom[w]] == labelS:
				// Slack edge toward an S-blossom: candidate for δ3.
				b := s.inblossom[v]
				if s.bestedge[b] == noNode || kslack < s.slack(s.bestedge[b]) {
					s.bestedge[b] = k
				}

			case s.label[w] == labelFree:
				// Slack edge toward an unlabeled vertex: candidate for δ2.
				if s.bestedge[w] == noNode || kslack < s.slack(s.bestedge[w]) {
					s.bestedge[w] = k
				}
			}

			if s.augmented {
				break
			}
		}
	}

	return true
}

// assignLabel gives w's top-level blossom label t, reached through
// endpoint p. S-labels enqueue the blossom's leaves; T-labels pull the
// base's mate into the tree as an S-node.
func (s *blossomSolver) assignLabel(w, t, p int) {
	b := s.inblossom[w]
	if s.label[w] != labelFree || s.label[b] != labelFree {
		panic(fmt.Sprintf("matching: blossom: relabeling node %d (blossom %d)", w, b))
	}
	s.label[w], s.label[b] = t, t
	s.labelend[w], s.labelend[b] = p, p
	s.bestedge[w], s.bestedge[b] = noNode, noNode

	switch t {
	case labelS:
		// b's vertices become eligible for scanning.
		s.queue = s.blossomLeaves(b, s.queue)
		s.tr.PickNode(core.VertexID(w), core.ColorGreen)
	case labelT:
		// b's base is matched; its partner joins as an S-node.
		base := s.blossombase[b]
		if s.mate[base] == noNode {
			panic(fmt.Sprintf("matching: blossom: T-labeled blossom %d has unmatched base %d", b, base))
		}
		s.assignLabel(s.endpoint[s.mate[base]], labelS, s.mate[base]^1)
		s.tr.PickNode(core.VertexID(w), core.ColorYellow)
	}
}

// scanBlossom traces back from v and w in alternation toward the tree
// roots, dropping breadcrumbs. It returns the base vertex of the first
// common ancestor blossom, or noNode when the walks reach two distinct
// roots — which means edge (v,w) closes an augmenting path.
func (s *blossomSolver) scanBlossom(v, w int) int {
	var path []int
	base := noNode
	for v != noNode || w != noNode {
		// Walk one step on the v side.
		b := s.inblossom[v]
		if s.label[b]&4 != 0 {
			// Second visit: b is the common ancestor.
			base = s.blossombase[b]

			break
		}
		if s.label[b] != labelS {
			panic(fmt.Sprintf("matching: blossom: backtrack through non-S blossom %d", b))
		}
		path = append(path, b)
		s.label[b] = labelCrumb

		// Hop to the previous S-blossom: through b's matched edge and
		// then the T-blossom's entry endpoint.
		if s.labelend[b] != s.mate[s.blossombase[b]] {
			panic(fmt.Sprintf("matching: blossom: S-blossom %d label endpoint disagrees with its base's mate", b))
		}
		if s.labelend[b] == noNode {
			// b is a tree root (single vertex); this side is done.
			v = noNode
		} else {
			v = s.endpoint[s.labelend[b]]
			bt := s.inblossom[v]
			if s.label[bt] != labelT {
				panic(fmt.Sprintf("matching: blossom: backtrack expected T-blossom, got %d", bt))
			}
			if s.labelend[bt] == noNode {
				panic(fmt.Sprintf("matching: blossom: T-blossom %d has no entry endpoint", bt))
			}
			v = s.endpoint[s.labelend[bt]]
		}

		// Alternate sides while the other walk is still going.
		if w != noNode {
			v, w = w, v
		}
	}

	// Remove the breadcrumbs.
	for _, b := range path {
		s.label[b] = labelS
	}

	return base
}

// extract converts mate into a Matching of input edge ids, each edge
// reported once.
func (s *blossomSolver) extract() core.Matching {
	result := core.Matching{}
	taken := make([]bool, s.g.EdgeCount())
	for v := 0; v < s.nvertex; v++ {
		if s.mate[v] == noNode {
			continue
		}
		k := s.mate[v] / 2
		if taken[k] {
			continue
		}
		taken[k] = true
		result = append(result, core.EdgeID(k))
		s.tr.PickEdge(core.EdgeID(k), core.ColorGreen)
	}
	s.tr.Commit()

	return result
}
