// Package matching computes maximum-weight matchings on general
// undirected graphs.
//
// Five algorithms share one contract (Matcher):
//
//   - Greedy            — sort edges by weight, select greedily.
//     ½-approximation in practice, O(E log E).
//   - PathGrowing       — grows alternating paths, keeps the better of
//     two candidate matchings. Guaranteed ½-approximation, O(V + E·d)
//     where d bounds vertex degree.
//     PathGrowingPatched decides per path instead of globally.
//   - Naive             — exhaustive search, exact but exponential;
//     guarded by a vertex cap (default 50).
//   - TreeGrowing       — DFS that grows an alternating tree with
//     local augmentation. Heuristic, between greedy and exact.
//   - Blossom           — Edmonds' primal–dual blossom algorithm with
//     the Galil refinements. Exact, O(V³).
//
// A Matcher lazily yields Step markers so callers can single-step,
// throttle, or run flat out; Run and RunCooperative drive a matcher to
// completion and verify the result, and Stepper adapts the push-style
// sequence into a pull iterator for interactive callers. Solve picks
// an algorithm by name the way tsp.Solve and prim_kruskal.Compute
// dispatch in the wider lvlath family.
//
// All matchers are deterministic for identical inputs, treat the input
// graph as read-only, and never fail on well-formed input (the naive
// matcher degrades to an empty matching above its cap).
//
// Errors:
//
//	ErrNilGraph      - nil graph passed to a matcher or runner.
//	ErrUnknownMethod - Solve received an unrecognized method name.
//	ErrBadOption     - invalid option value (e.g. negative cap).
//	ErrInterrupted   - the step consumer stopped the matcher early.
//	ErrStepBudget    - a runner exceeded its MaxSteps bound.
//	ErrCancelled     - the cooperative runner observed cancellation.
package matching
