// Solve: name-based dispatch over the matcher family.
package matching

import (
	"fmt"

	"github.com/katalvlaran/lvlmatch/core"
)

// MatcherFor resolves a method name (Method* constants) to a Matcher.
// The naive matcher is bound to the given cap.
func MatcherFor(method string, naiveCap int) (Matcher, error) {
	switch method {
	case MethodGreedy:
		return Greedy, nil
	case MethodPathGrowing:
		return PathGrowing, nil
	case MethodPathGrowingPatched:
		return PathGrowingPatched, nil
	case MethodNaive:
		return NaiveWithCap(naiveCap), nil
	case MethodTreeGrowing:
		return TreeGrowing, nil
	case MethodBlossom:
		return Blossom, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}

// Methods lists the accepted method names in documentation order.
func Methods() []string {
	return []string{
		MethodGreedy,
		MethodPathGrowing,
		MethodPathGrowingPatched,
		MethodNaive,
		MethodTreeGrowing,
		MethodBlossom,
	}
}

// Solve runs the selected matcher to completion on g and returns the
// verified result. Defaults to the blossom solver; customize with
// WithMethod, WithTracer, WithNaiveCap, WithMaxSteps.
//
// Example:
//
//	res, err := matching.Solve(g, matching.WithMethod(matching.MethodGreedy))
func Solve(g *core.Graph, opts ...Option) (*Result, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	m, err := MatcherFor(cfg.Method, cfg.NaiveCap)
	if err != nil {
		return nil, err
	}

	return runSync(g, m, cfg)
}
