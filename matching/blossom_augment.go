// Augmentation along tight structures.
package matching

import (
	"fmt"

	"github.com/katalvlaran/lvlmatch/core"
)

// augmentBlossom rotates blossom b's internal pairing so that vertex v
// becomes the new base while the blossom stays consistently matched.
// Recurses into sub-blossoms along the cycle.
func (s *blossomSolver) augmentBlossom(b, v int) {
	// 1) Find the immediate child of b that contains v.
	t := v
	for s.blossomparent[t] != b {
		t = s.blossomparent[t]
	}
	if t >= s.nvertex {
		s.augmentBlossom(t, v)
	}

	// 2) Walk the cycle from t's position back to the base, flipping
	//    matched and unmatched pairs two children at a time.
	i := indexOfInt(s.blossomchilds[b], t)
	j := i
	var jstep, endptrick int
	if i&1 != 0 {
		j -= len(s.blossomchilds[b])
		jstep = 1
		endptrick = 0
	} else {
		jstep = -1
		endptrick = 1
	}
	var p int
	for j != 0 {
		j += jstep
		t = cyc(s.blossomchilds[b], j)
		p = cyc(s.blossomendps[b], j-endptrick) ^ endptrick
		if t >= s.nvertex {
			s.augmentBlossom(t, s.endpoint[p])
		}
		j += jstep
		t = cyc(s.blossomchilds[b], j)
		if t >= s.nvertex {
			s.augmentBlossom(t, s.endpoint[p^1])
		}
		// Match the pair through the connecting edge.
		s.mate[s.endpoint[p]] = p ^ 1
		s.mate[s.endpoint[p^1]] = p
	}

	// 3) Rotate the child list so v's child leads; the base follows.
	s.blossomchilds[b] = rotateInts(s.blossomchilds[b], i)
	s.blossomendps[b] = rotateInts(s.blossomendps[b], i)
	s.blossombase[b] = s.blossombase[s.blossomchilds[b][0]]
	if s.blossombase[b] != v {
		panic(fmt.Sprintf("matching: blossom: rotation left base %d instead of %d", s.blossombase[b], v))
	}
}

// augmentMatching flips matched and unmatched edges along the
// augmenting path through tight edge k, walking from both endpoints
// back to their tree roots and rebasing every S-blossom on the way.
func (s *blossomSolver) augmentMatching(k int) {
	kv, kw, _ := s.edgeAt(k)
	s.tr.PickEdge(core.EdgeID(k), core.ColorRed)
	s.tr.Commit()

	for _, side := range [2][2]int{{kv, 2*k + 1}, {kw, 2 * k}} {
		v, p := side[0], side[1]
		// Match v through endpoint p, then ascend: over v's matched
		// edge into the next T-blossom, and through its entry edge
		// into the next S-blossom.
		for {
			bs := s.inblossom[v]
			if s.label[bs] != labelS {
				panic(fmt.Sprintf("matching: blossom: augmenting through non-S node %d", bs))
			}
			if s.labelend[bs] != s.mate[s.blossombase[bs]] {
				panic(fmt.Sprintf("matching: blossom: S-node %d label endpoint disagrees with its base's mate", bs))
			}
			if bs >= s.nvertex {
				s.augmentBlossom(bs, v)
			}
			s.mate[v] = p

			if s.labelend[bs] == noNode {
				// Reached a tree root: this side is done.
				break
			}

			t := s.endpoint[s.labelend[bs]]
			bt := s.inblossom[t]
			if s.label[bt] != labelT {
				panic(fmt.Sprintf("matching: blossom: augmenting through non-T node %d", bt))
			}
			if s.labelend[bt] == noNode {
				panic(fmt.Sprintf("matching: blossom: T-node %d has no entry endpoint", bt))
			}
			if s.blossombase[bt] != t {
				panic(fmt.Sprintf("matching: blossom: T-node %d entered off its base", bt))
			}

			// The T-blossom's entry edge becomes matched.
			v = s.endpoint[s.labelend[bt]]
			w := s.endpoint[s.labelend[bt]^1]
			if bt >= s.nvertex {
				s.augmentBlossom(bt, w)
			}
			s.mate[w] = s.labelend[bt]
			p = s.labelend[bt] ^ 1
		}
	}
}

// rotateInts returns list rotated left by i positions.
func rotateInts(list []int, i int) []int {
	if i == 0 {
		return list
	}
	out := make([]int, 0, len(list))
	out = append(out, list[i:]...)
	out = append(out, list[:i]...)

	return out
}
