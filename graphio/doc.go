// Package graphio reads and writes mission files.
//
// The format is a small YAML document:
//
//	nodes: 4
//	edges:
//	  - {from: 0, to: 1, weight: 2}
//	  - {from: 1, to: 2, weight: 3}
//	  - {from: 2, to: 3, weight: 2}
//
// Loading funnels every edge through the core constructors, so a file
// with self-loops, duplicates, or negative weights fails with the
// corresponding core sentinel.
package graphio
