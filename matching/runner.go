// Runners: drive a matcher's step sequence to completion.
package matching

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/katalvlaran/lvlmatch/core"
)

// Result is the outcome of a completed run.
type Result struct {
	// Matching is the verified output matching.
	Matching core.Matching

	// Steps is the number of Step markers the matcher produced.
	Steps int64

	// Score is the matching's total weight.
	Score int64

	// Elapsed is the wall time of the run.
	Elapsed time.Duration
}

// Run drives m to completion synchronously: steps are consumed as
// fast as possible, the step budget (WithMaxSteps) is enforced, and
// the returned matching has been validity-checked. A matching that
// fails the check is a matcher bug and panics with a diagnostic.
func Run(g *core.Graph, m Matcher, opts ...Option) (*Result, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return runSync(g, m, cfg)
}

// RunCooperative drives m in bursts (WithBurst), yielding the
// processor between bursts and honoring cancellation (WithContext) at
// each burst boundary. Cancellation returns ErrCancelled and no
// partial matching. Step counts are identical to Run on identical
// input: both count every Step the matcher produces.
func RunCooperative(g *core.Graph, m Matcher, opts ...Option) (*Result, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	var (
		steps     int64
		cancelled bool
		burst     = int64(cfg.Burst)
	)
	start := time.Now()
	matched, err := m(g, cfg.Tracer, func(Step) bool {
		steps++
		if steps > cfg.MaxSteps {
			return false
		}
		// Burst boundary: check for cancellation, then let the host
		// scheduler breathe before the next burst.
		if steps%burst == 0 {
			if cfg.Ctx.Err() != nil {
				cancelled = true

				return false
			}
			runtime.Gosched()
		}

		return true
	})

	return finishRun(g, matched, err, steps, cfg, cancelled, start)
}

// runSync is the shared synchronous engine behind Run and Solve.
func runSync(g *core.Graph, m Matcher, cfg Options) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	var steps int64
	start := time.Now()
	matched, err := m(g, cfg.Tracer, func(Step) bool {
		steps++

		return steps <= cfg.MaxSteps
	})

	return finishRun(g, matched, err, steps, cfg, false, start)
}

// finishRun maps matcher termination onto runner errors and verifies
// the matching.
func finishRun(g *core.Graph, matched core.Matching, err error, steps int64,
	cfg Options, cancelled bool, start time.Time) (*Result, error) {
	if err != nil {
		// An interrupt we caused is either cancellation or budget.
		if errors.Is(err, ErrInterrupted) {
			if cancelled {
				return nil, ErrCancelled
			}
			if steps > cfg.MaxSteps {
				return nil, fmt.Errorf("%w: %d steps", ErrStepBudget, cfg.MaxSteps)
			}
		}

		return nil, err
	}

	// A matcher returning an invalid matching is a bug, not an
	// operational error.
	if verr := matched.Verify(g); verr != nil {
		panic(fmt.Sprintf("matching: matcher returned invalid matching: %v", verr))
	}

	return &Result{
		Matching: matched,
		Steps:    steps,
		Score:    matched.Score(g),
		Elapsed:  time.Since(start),
	}, nil
}
