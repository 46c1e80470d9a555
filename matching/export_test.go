package matching

import "github.com/katalvlaran/lvlmatch/core"

// BlossomVerified runs the blossom solver and then its debug
// optimality verifier, surfacing certificate violations to tests.
func BlossomVerified(g *core.Graph) (core.Matching, error) {
	if g.VertexCount() == 0 || g.EdgeCount() == 0 {
		return core.Matching{}, nil
	}

	s := newBlossomSolver(g, core.NopTracer{}, func(Step) bool { return true })
	if !s.run() {
		return nil, ErrInterrupted
	}
	if err := s.verifyOptimum(); err != nil {
		return nil, err
	}

	return s.extract(), nil
}
