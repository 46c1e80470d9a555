// Blossom construction and expansion.
package matching

import "fmt"

// addBlossom contracts the odd cycle closed by edge k between two
// S-blossoms with common ancestor base into a fresh blossom id.
func (s *blossomSolver) addBlossom(base, k int) {
	v, w, _ := s.edgeAt(k)
	bb := s.inblossom[base]
	bv := s.inblossom[v]
	bw := s.inblossom[w]

	// Allocate from the free list.
	if len(s.unusedblossoms) == 0 {
		panic("matching: blossom: free list exhausted")
	}
	b := s.unusedblossoms[len(s.unusedblossoms)-1]
	s.unusedblossoms = s.unusedblossoms[:len(s.unusedblossoms)-1]

	s.blossombase[b] = base
	s.blossomparent[b] = noNode
	s.blossomparent[bb] = b

	// 1) Trace from v's blossom back to the base, collecting children
	//    and the endpoints that interconnect them.
	var path, endps []int
	for bv != bb {
		s.blossomparent[bv] = b
		path = append(path, bv)
		endps = append(endps, s.labelend[bv])
		if !(s.label[bv] == labelT ||
			(s.label[bv] == labelS && s.labelend[bv] == s.mate[s.blossombase[bv]])) {
			panic(fmt.Sprintf("matching: blossom: cycle child %d has inconsistent label", bv))
		}
		if s.labelend[bv] == noNode {
			panic(fmt.Sprintf("matching: blossom: cycle child %d has no label endpoint", bv))
		}
		v = s.endpoint[s.labelend[bv]]
		bv = s.inblossom[v]
	}

	// Base first, then v's side in tree order toward the closing edge.
	path = append(path, bb)
	reverseInts(path)
	reverseInts(endps)
	endps = append(endps, 2*k)

	// 2) Trace from w's blossom back to the base.
	for bw != bb {
		s.blossomparent[bw] = b
		path = append(path, bw)
		endps = append(endps, s.labelend[bw]^1)
		if !(s.label[bw] == labelT ||
			(s.label[bw] == labelS && s.labelend[bw] == s.mate[s.blossombase[bw]])) {
			panic(fmt.Sprintf("matching: blossom: cycle child %d has inconsistent label", bw))
		}
		if s.labelend[bw] == noNode {
			panic(fmt.Sprintf("matching: blossom: cycle child %d has no label endpoint", bw))
		}
		w = s.endpoint[s.labelend[bw]]
		bw = s.inblossom[w]
	}
	s.blossomchilds[b] = path
	s.blossomendps[b] = endps

	// 3) The new blossom is an S-node rooted where the base was.
	if s.label[bb] != labelS {
		panic(fmt.Sprintf("matching: blossom: base blossom %d is not an S-node", bb))
	}
	s.label[b] = labelS
	s.labelend[b] = s.labelend[bb]
	s.dualvar[b] = 0

	// 4) Every contained vertex now lives in b; former T-vertices
	//    become S-vertices and get scanned.
	for _, leaf := range s.blossomLeaves(b, nil) {
		if s.label[s.inblossom[leaf]] == labelT {
			s.queue = append(s.queue, leaf)
		}
		s.inblossom[leaf] = b
	}

	// 5) Compute b's least-slack edges to each neighboring S-blossom,
	//    reusing the children's caches where they exist. The overall
	//    bestedge[b] falls out of the same pass.
	bestedgeto := make([]int, 2*s.nvertex)
	for i := range bestedgeto {
		bestedgeto[i] = noNode
	}
	var (
		nblists [][]int
		i, j    int
		bj      int
	)
	for _, child := range path {
		if s.blossombestedges[child] == nil {
			// No cache: enumerate the incident edges of every leaf.
			nblists = nblists[:0]
			for _, leaf := range s.blossomLeaves(child, nil) {
				list := make([]int, 0, len(s.neighbend[leaf]))
				for _, p := range s.neighbend[leaf] {
					list = append(list, p/2)
				}
				nblists = append(nblists, list)
			}
		} else {
			nblists = append(nblists[:0], s.blossombestedges[child])
		}
		for _, list := range nblists {
			for _, ke := range list {
				i, j, _ = s.edgeAt(ke)
				if s.inblossom[j] == b {
					i, j = j, i
				}
				bj = s.inblossom[j]
				if bj != b && s.label[bj] == labelS &&
					(bestedgeto[bj] == noNode || s.slack(ke) < s.slack(bestedgeto[bj])) {
					bestedgeto[bj] = ke
				}
			}
		}
		// Children are interior now; their caches are meaningless.
		s.blossombestedges[child] = nil
		s.bestedge[child] = noNode
	}
	s.blossombestedges[b] = nil
	s.bestedge[b] = noNode
	for _, ke := range bestedgeto {
		if ke == noNode {
			continue
		}
		s.blossombestedges[b] = append(s.blossombestedges[b], ke)
		if s.bestedge[b] == noNode || s.slack(ke) < s.slack(s.bestedge[b]) {
			s.bestedge[b] = ke
		}
	}
}

// expandBlossom dissolves blossom b, promoting its children to top
// level. During a stage (endstage false) a T-blossom's children must
// be relabeled along the alternating path from the entry child to the
// base; at stage end zero-dual sub-blossoms dissolve recursively.
func (s *blossomSolver) expandBlossom(b int, endstage bool) {
	// 1) Promote every child to top level.
	for _, child := range s.blossomchilds[b] {
		s.blossomparent[child] = noNode
		switch {
		case child < s.nvertex:
			s.inblossom[child] = child
		case endstage && s.dualvar[child] == 0:
			// Zero-dual sub-blossom: dissolve it too.
			s.expandBlossom(child, endstage)
		default:
			for _, leaf := range s.blossomLeaves(child, nil) {
				s.inblossom[leaf] = child
			}
		}
	}

	// 2) Mid-stage expansion of a T-blossom: relabel the even-length
	//    half of the cycle from the entry child to the base, marking
	//    the traversed edges allowable, then sweep the other half for
	//    vertices reached from outside.
	if !endstage && s.label[b] == labelT {
		if s.labelend[b] == noNode {
			panic(fmt.Sprintf("matching: blossom: expanding T-blossom %d with no entry endpoint", b))
		}
		entrychild := s.inblossom[s.endpoint[s.labelend[b]^1]]
		j := indexOfInt(s.blossomchilds[b], entrychild)
		var jstep, endptrick int
		if j&1 != 0 {
			// Odd index: walk forward around the cycle.
			j -= len(s.blossomchilds[b])
			jstep = 1
			endptrick = 0
		} else {
			// Even index: walk backward.
			jstep = -1
			endptrick = 1
		}

		// Walk from the entry toward the base in steps of two,
		// assigning T-labels through the same machinery as the scan.
		p := s.labelend[b]
		for j != 0 {
			s.label[s.endpoint[p^1]] = labelFree
			s.label[s.endpoint[cyc(s.blossomendps[b], j-endptrick)^endptrick^1]] = labelFree
			s.assignLabel(s.endpoint[p^1], labelT, p)
			s.allowedge[cyc(s.blossomendps[b], j-endptrick)/2] = true
			j += jstep
			p = cyc(s.blossomendps[b], j-endptrick) ^ endptrick
			s.allowedge[p/2] = true
			j += jstep
		}

		// The base child keeps the T-label of the whole blossom.
		bv := s.blossomchilds[b][0]
		s.label[s.endpoint[p^1]] = labelT
		s.label[bv] = labelT
		s.labelend[s.endpoint[p^1]] = p
		s.labelend[bv] = p
		s.bestedge[bv] = noNode

		// Sweep the remaining children: any with an interior vertex
		// already reached from outside becomes a T-node.
		j += jstep
		for cyc(s.blossomchilds[b], j) != entrychild {
			bv = cyc(s.blossomchilds[b], j)
			if s.label[bv] == labelS {
				j += jstep

				continue
			}
			reached := noNode
			for _, leaf := range s.blossomLeaves(bv, nil) {
				if s.label[leaf] != labelFree {
					reached = leaf

					break
				}
			}
			if reached != noNode {
				if s.label[reached] != labelT {
					panic(fmt.Sprintf("matching: blossom: interior vertex %d carries unexpected label", reached))
				}
				if s.inblossom[reached] != bv {
					panic(fmt.Sprintf("matching: blossom: interior vertex %d escaped its sub-blossom", reached))
				}
				s.label[reached] = labelFree
				s.label[s.endpoint[s.mate[s.blossombase[bv]]]] = labelFree
				s.assignLabel(reached, labelT, s.labelend[reached])
			}
			j += jstep
		}
	}

	// 3) Recycle b.
	s.label[b] = labelFree
	s.labelend[b] = noNode
	s.blossomchilds[b] = nil
	s.blossomendps[b] = nil
	s.blossombase[b] = noNode
	s.blossombestedges[b] = nil
	s.bestedge[b] = noNode
	s.unusedblossoms = append(s.unusedblossoms, b)
}

// cyc indexes a cyclic child/endpoint list, accepting the negative
// offsets produced by walking backward around the cycle.
func cyc(list []int, i int) int {
	if i < 0 {
		i += len(list)
	}

	return list[i]
}

// indexOfInt returns the position of x in list; x must be present.
func indexOfInt(list []int, x int) int {
	for i, v := range list {
		if v == x {
			return i
		}
	}

	panic(fmt.Sprintf("matching: blossom: node %d not among expected children", x))
}

// reverseInts reverses list in place.
func reverseInts(list []int) {
	for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
		list[i], list[j] = list[j], list[i]
	}
}
