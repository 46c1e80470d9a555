// Package core defines the graph model shared by every matcher in
// lvlmatch: Vertex and Edge identifiers, the immutable input Graph,
// the Matching result type with its score and validity checks, the
// dense Adjacency index, and the Tracer contract matchers push
// progress events to.
//
// Design constraints (observed by all consumers):
//
//   - Vertex ids are dense integers in [0, VertexCount). Edge ids are
//     positions in the input edge list, so a Matching always refers to
//     the caller's own edges rather than reconstructed copies.
//   - Graphs are undirected, loop-free, simple (at most one edge per
//     unordered pair) and carry non-negative integer weights. All four
//     rules are enforced at AddEdge time with sentinel errors.
//   - Once handed to a matcher, a Graph is read-only. Matchers allocate
//     every auxiliary structure themselves, so two matchers may run on
//     the same Graph from different goroutines.
//
// Errors:
//
//	ErrBadVertexCount - negative vertex count passed to NewGraph.
//	ErrVertexRange    - edge endpoint outside [0, VertexCount).
//	ErrSelfLoop       - edge with identical endpoints.
//	ErrDuplicateEdge  - second edge on the same unordered pair.
//	ErrNegativeWeight - edge weight below zero.
//	ErrNotAMatching   - Verify found a shared vertex or a foreign edge.
package core
