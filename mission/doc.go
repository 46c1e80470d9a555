// Package mission generates random matching inputs ("missions").
//
// Random samples an Erdős–Rényi style graph: every unordered vertex
// pair receives an edge with probability edgeRate/100, weighted
// uniformly in [0, 1000). Self-loops never occur, trial order is
// fixed (i ascending, then j > i), and a fixed seed reproduces the
// exact same mission.
package mission
