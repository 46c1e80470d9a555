// Random mission construction.
package mission

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlmatch/core"
)

// Sentinel errors for mission generation.
var (
	// ErrBadNodeCount indicates a negative node count.
	ErrBadNodeCount = errors.New("mission: node count must be non-negative")

	// ErrBadEdgeRate indicates an edge rate outside [0, 100].
	ErrBadEdgeRate = errors.New("mission: edge rate must lie in [0,100] percent")
)

// MaxWeight bounds generated edge weights: weights are uniform in
// [0, MaxWeight).
const MaxWeight = 1000

// Options configures mission generation.
type Options struct {
	// Rng is the random source. Defaults to a source seeded with 1.
	Rng *rand.Rand
}

// Option is a functional option for Options.
type Option func(*Options)

// WithSeed seeds a fresh deterministic source.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies a random source directly. A nil source keeps the
// default.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.Rng = rng
		}
	}
}

// Random samples a mission with nodeCount vertices and edge
// probability edgeRate percent per unordered pair.
//
// Determinism: vertex pairs are tried in a fixed order (i ascending,
// j > i ascending), and each trial draws first the Bernoulli variable
// and then, on success, the weight; a fixed seed therefore fixes the
// full graph.
//
// Complexity: O(nodeCount²)
func Random(nodeCount, edgeRate int, opts ...Option) (*core.Graph, error) {
	// 1) Validate parameters before touching the generator.
	if nodeCount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadNodeCount, nodeCount)
	}
	if edgeRate < 0 || edgeRate > 100 {
		return nil, fmt.Errorf("%w: %d", ErrBadEdgeRate, edgeRate)
	}

	cfg := Options{Rng: rand.New(rand.NewSource(1))}
	for _, opt := range opts {
		opt(&cfg)
	}

	g, err := core.NewGraph(nodeCount)
	if err != nil {
		return nil, err
	}

	// 2) Bernoulli trial per unordered pair, in stable order.
	threshold := float64(edgeRate) / 100.0
	for i := 0; i < nodeCount; i++ {
		for j := i + 1; j < nodeCount; j++ {
			if cfg.Rng.Float64() >= threshold {
				continue
			}
			if _, err = g.AddEdge(core.VertexID(i), core.VertexID(j), cfg.Rng.Int63n(MaxWeight)); err != nil {
				// Pairs are visited once each; a failure here is a bug.
				return nil, fmt.Errorf("mission: AddEdge(%d,%d): %w", i, j, err)
			}
		}
	}

	return g, nil
}
