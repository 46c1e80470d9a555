// This file declares the Matcher contract, method names, sentinel
// errors, and the functional options shared by Solve and the runners.
package matching

import (
	"context"
	"errors"

	"github.com/katalvlaran/lvlmatch/core"
)

// Sentinel errors for matcher execution.
var (
	// ErrNilGraph is returned when a nil *core.Graph is passed.
	ErrNilGraph = errors.New("matching: graph is nil")

	// ErrUnknownMethod is returned by Solve for an unrecognized method name.
	ErrUnknownMethod = errors.New("matching: unknown method")

	// ErrBadOption is returned when an option carries an invalid value.
	ErrBadOption = errors.New("matching: invalid option")

	// ErrInterrupted is returned by a matcher whose step consumer
	// stopped it before completion. No partial matching accompanies it.
	ErrInterrupted = errors.New("matching: interrupted by step consumer")

	// ErrStepBudget is returned by a runner that exceeded MaxSteps.
	ErrStepBudget = errors.New("matching: step budget exceeded")

	// ErrCancelled is returned by the cooperative runner when its
	// context is cancelled. No partial matching accompanies it.
	ErrCancelled = errors.New("matching: run cancelled")
)

// Method names accepted by Solve and MatcherFor.
const (
	// MethodGreedy selects the sort-and-select heuristic.
	MethodGreedy = "greedy"

	// MethodPathGrowing selects the path-growing ½-approximation.
	MethodPathGrowing = "pathgrow"

	// MethodPathGrowingPatched selects the per-path variant.
	MethodPathGrowingPatched = "pathgrow-patched"

	// MethodNaive selects the capped exhaustive search.
	MethodNaive = "naive"

	// MethodTreeGrowing selects the alternating-tree heuristic.
	MethodTreeGrowing = "treegrow"

	// MethodBlossom selects the exact Edmonds blossom solver.
	MethodBlossom = "blossom"
)

// DefaultNaiveCap is the vertex bound above which the naive matcher
// gives up and returns an empty matching.
const DefaultNaiveCap = 50

// Step marks one unit of visible matcher progress. Steps carry no
// semantics beyond pacing; Name is a display label.
type Step struct {
	// Name labels the kind of progress made, e.g. "stage" or "walk".
	Name string
}

// Matcher is the uniform algorithm contract: compute a matching over
// the read-only graph g, pushing a Step to yield per unit of progress
// and trace events to tr (which may be nil).
//
// When yield returns false the matcher must stop promptly and return
// ErrInterrupted with a nil matching. A nil yield runs to completion.
// Matchers are deterministic given identical inputs.
type Matcher func(g *core.Graph, tr core.Tracer, yield func(Step) bool) (core.Matching, error)

// runYield returns yield, or an always-true stand-in when yield is nil.
func runYield(yield func(Step) bool) func(Step) bool {
	if yield == nil {
		return func(Step) bool { return true }
	}

	return yield
}

// Default runner bounds (reference values).
const (
	// DefaultMaxSteps aborts a run after 10^8 steps.
	DefaultMaxSteps int64 = 100_000_000

	// DefaultBurst is the cooperative runner's steps-per-burst.
	DefaultBurst = 100_000
)

// Options configures Solve and the runners.
type Options struct {
	// Method picks the algorithm for Solve. Default MethodBlossom.
	Method string

	// Tracer receives progress events; nil means no tracing.
	Tracer core.Tracer

	// NaiveCap bounds the naive matcher's input size. Default
	// DefaultNaiveCap. Must be non-negative.
	NaiveCap int

	// MaxSteps bounds the total step count of a run. Default
	// DefaultMaxSteps. Must be positive.
	MaxSteps int64

	// Burst is the cooperative runner's steps-per-burst. Default
	// DefaultBurst. Must be positive.
	Burst int

	// Ctx cancels a cooperative run between bursts. Default
	// context.Background().
	Ctx context.Context

	// err records the first invalid option, surfaced at call time.
	err error
}

// Option is a functional option for Options.
type Option func(*Options)

// DefaultOptions returns the reference configuration: blossom method,
// no tracer, cap 50, 10^8 step budget, 10^5 burst, background context.
func DefaultOptions() Options {
	return Options{
		Method:   MethodBlossom,
		Tracer:   nil,
		NaiveCap: DefaultNaiveCap,
		MaxSteps: DefaultMaxSteps,
		Burst:    DefaultBurst,
		Ctx:      context.Background(),
	}
}

// WithMethod selects the algorithm by name (Method* constants).
func WithMethod(method string) Option {
	return func(o *Options) { o.Method = method }
}

// WithTracer routes progress events to tr.
func WithTracer(tr core.Tracer) Option {
	return func(o *Options) { o.Tracer = tr }
}

// WithNaiveCap overrides the naive matcher's vertex cap.
// Negative caps are invalid and surface as ErrBadOption.
func WithNaiveCap(cap int) Option {
	return func(o *Options) {
		if cap < 0 {
			o.err = errors.Join(o.err, errors.New("matching: NaiveCap must be non-negative"))

			return
		}
		o.NaiveCap = cap
	}
}

// WithMaxSteps overrides the step budget.
// Non-positive budgets are invalid and surface as ErrBadOption.
func WithMaxSteps(maxSteps int64) Option {
	return func(o *Options) {
		if maxSteps <= 0 {
			o.err = errors.Join(o.err, errors.New("matching: MaxSteps must be positive"))

			return
		}
		o.MaxSteps = maxSteps
	}
}

// WithBurst overrides the cooperative runner's burst size.
// Non-positive bursts are invalid and surface as ErrBadOption.
func WithBurst(burst int) Option {
	return func(o *Options) {
		if burst <= 0 {
			o.err = errors.Join(o.err, errors.New("matching: Burst must be positive"))

			return
		}
		o.Burst = burst
	}
}

// WithContext sets the cancellation context for cooperative runs.
// A nil ctx keeps the default.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// buildOptions applies opts over the defaults and validates them.
func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return cfg, errors.Join(ErrBadOption, cfg.err)
	}

	return cfg, nil
}
