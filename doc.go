// Package lvlmatch is a toolbox for maximum-weight matching on
// general undirected graphs — from fast heuristics to an exact
// blossom solver.
//
// 🚀 What is lvlmatch?
//
//	A focused, dependency-light library that brings together:
//		• Core primitives: dense-id graphs, matchings, score & validity checks
//		• Heuristics: greedy, path-growing (½-approximation), tree-growing
//		• Exact solvers: exhaustive search (small inputs), Edmonds' blossom O(V³)
//		• Lazy stepping: single-step, throttle, or free-run any matcher
//		• Tracing: pluggable sinks for visualization and logging
//		• Missions: reproducible random inputs + YAML files + bench suites
//
// ✨ Why choose lvlmatch?
//
//   - One contract – every algorithm is a Matcher; swap them freely
//   - Exact when it matters – the blossom solver is optimal, with a
//     dual-certificate verifier exercised by the test suite
//   - Deterministic – fixed inputs and seeds reproduce runs bit for bit
//   - Cooperative – runs pause between steps, cancel cleanly, never block
//
// Everything is organized under small subpackages:
//
//	core/     — Graph, Edge, Matching, Adjacency, Tracer contract
//	matching/ — the five matchers, Solve dispatcher, runners, Stepper
//	trace/    — Buffer (replayable) and Log (logrus) sinks
//	mission/  — random mission generator
//	graphio/  — YAML mission files
//	bench/    — pooled benchmark suites
//	cmd/      — the lvlmatch CLI (solve | gen | bench)
//
// Quick ASCII example:
//
//	    0───1
//	    │   │        weights on the square: 1,2,2,2
//	    3───2        optimum picks the two opposite 2-edges
//
//	go get github.com/katalvlaran/lvlmatch
package lvlmatch
