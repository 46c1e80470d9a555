// Dual-update phase of the blossom solver.
package matching

// updateDuals computes the four candidate deltas, applies the
// smallest to every dual variable, and performs the action its type
// calls for. It returns true when the stage must end without an
// augmentation, which proves the matching optimal.
func (s *blossomSolver) updateDuals() bool {
	var (
		deltaedge    = noNode
		deltablossom = noNode
	)

	// δ1: minimum vertex dual. Dropping every S-vertex dual below the
	// smallest vertex dual would break feasibility, so δ1 caps the
	// update; choosing it means no structural move is left.
	deltatype := 1
	delta := s.dualvar[0]
	for v := 1; v < s.nvertex; v++ {
		if s.dualvar[v] < delta {
			delta = s.dualvar[v]
		}
	}

	// δ2: least slack of a best edge from an unlabeled free vertex.
	for v := 0; v < s.nvertex; v++ {
		if s.label[s.inblossom[v]] == labelFree && s.bestedge[v] != noNode {
			if d := s.slack(s.bestedge[v]); d < delta {
				delta, deltatype, deltaedge = d, 2, s.bestedge[v]
			}
		}
	}

	// δ3: half the least slack of a best edge between two S-blossoms.
	// Such slacks are even (S-duals move in lockstep), so halving
	// stays integral.
	for b := 0; b < 2*s.nvertex; b++ {
		if s.blossomparent[b] == noNode && s.label[b] == labelS && s.bestedge[b] != noNode {
			if d := s.slack(s.bestedge[b]) / 2; d < delta {
				delta, deltatype, deltaedge = d, 3, s.bestedge[b]
			}
		}
	}

	// δ4: smallest dual of a top-level T-blossom.
	for b := s.nvertex; b < 2*s.nvertex; b++ {
		if s.blossombase[b] != noNode && s.blossomparent[b] == noNode &&
			s.label[b] == labelT && s.dualvar[b] < delta {
			delta, deltatype, deltablossom = s.dualvar[b], 4, b
		}
	}

	// Apply δ to every dual: S decreases u, T increases u; top-level
	// S-blossoms gain z, T-blossoms lose z.
	for v := 0; v < s.nvertex; v++ {
		switch s.label[s.inblossom[v]] {
		case labelS:
			s.dualvar[v] -= delta
		case labelT:
			s.dualvar[v] += delta
		}
	}
	for b := s.nvertex; b < 2*s.nvertex; b++ {
		if s.blossombase[b] != noNode && s.blossomparent[b] == noNode {
			switch s.label[b] {
			case labelS:
				s.dualvar[b] += delta
			case labelT:
				s.dualvar[b] -= delta
			}
		}
	}

	s.tr.Data("delta", delta)

	switch deltatype {
	case 1:
		// No improvement is possible anymore.
		return true

	case 2:
		// The δ2 edge went tight: scan its S-side endpoint again.
		s.allowedge[deltaedge] = true
		i, j, _ := s.edgeAt(deltaedge)
		if s.label[s.inblossom[i]] == labelFree {
			i = j
		}
		if s.label[s.inblossom[i]] != labelS {
			panic("matching: blossom: delta-2 edge has no S endpoint")
		}
		s.queue = append(s.queue, i)

	case 3:
		// The δ3 edge went tight between two S-blossoms.
		s.allowedge[deltaedge] = true
		i, _, _ := s.edgeAt(deltaedge)
		if s.label[s.inblossom[i]] != labelS {
			panic("matching: blossom: delta-3 edge has no S endpoint")
		}
		s.queue = append(s.queue, i)

	case 4:
		// A T-blossom's dual hit zero: dissolve it mid-stage.
		s.expandBlossom(deltablossom, false)
	}

	return false
}
