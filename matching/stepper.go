// Stepper: pull adapter over the push-style Matcher contract, for
// single-stepping callers (interactive UIs, throttled animation).
package matching

import (
	"iter"

	"github.com/katalvlaran/lvlmatch/core"
)

// Stepper exposes a matcher run one Step at a time. Construct with
// NewStepper, call Next until it reports false, then read Result.
// Stop abandons the run early; the matcher unwinds cooperatively and
// Result reports ErrInterrupted.
//
// A Stepper is single-goroutine: Next and Stop must not race.
type Stepper struct {
	next     func() (Step, bool)
	stop     func()
	finished bool
	matched  core.Matching
	err      error
}

// NewStepper starts m on g lazily; no work happens until the first
// Next call. tr may be nil.
func NewStepper(g *core.Graph, m Matcher, tr core.Tracer) *Stepper {
	s := &Stepper{}
	if g == nil {
		s.finished = true
		s.err = ErrNilGraph

		return s
	}

	seq := func(yield func(Step) bool) {
		s.matched, s.err = m(g, tr, yield)
	}
	s.next, s.stop = iter.Pull(iter.Seq[Step](seq))

	return s
}

// Next advances the run by one step. It returns the step marker and
// true while the matcher is still working; false once it finished (or
// was stopped), at which point Result is available.
func (s *Stepper) Next() (Step, bool) {
	if s.finished {
		return Step{}, false
	}
	step, ok := s.next()
	if !ok {
		s.finished = true
	}

	return step, ok
}

// Stop abandons the run. Safe to call after completion (no-op).
func (s *Stepper) Stop() {
	if s.finished {
		return
	}
	s.stop()
	s.finished = true
}

// Result returns the matching and error of a finished run. Calling it
// before Next has reported false drains the remaining steps first.
func (s *Stepper) Result() (core.Matching, error) {
	for !s.finished {
		if _, ok := s.Next(); !ok {
			break
		}
	}

	return s.matched, s.err
}
