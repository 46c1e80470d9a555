package matching_test

import (
	"fmt"

	"github.com/katalvlaran/lvlmatch/core"
	"github.com/katalvlaran/lvlmatch/matching"
)

// ExampleSolve computes an optimal matching on a short weighted path.
func ExampleSolve() {
	g, _ := core.NewGraph(4)
	_, _ = g.AddEdge(0, 1, 2)
	_, _ = g.AddEdge(1, 2, 3)
	_, _ = g.AddEdge(2, 3, 2)

	res, _ := matching.Solve(g) // blossom by default
	fmt.Println("score:", res.Score)
	for _, e := range res.Matching.Edges(g) {
		fmt.Printf("%d—%d (%d)\n", e.From, e.To, e.Weight)
	}
	// Output:
	// score: 4
	// 0—1 (2)
	// 2—3 (2)
}

// ExampleSolve_greedy shows the heuristic falling for the heavy
// middle edge of the same path.
func ExampleSolve_greedy() {
	g, _ := core.NewGraph(4)
	_, _ = g.AddEdge(0, 1, 2)
	_, _ = g.AddEdge(1, 2, 3)
	_, _ = g.AddEdge(2, 3, 2)

	res, _ := matching.Solve(g, matching.WithMethod(matching.MethodGreedy))
	fmt.Println("score:", res.Score)
	// Output:
	// score: 3
}

// ExampleNewStepper single-steps a matcher run.
func ExampleNewStepper() {
	g, _ := core.NewGraph(2)
	_, _ = g.AddEdge(0, 1, 5)

	s := matching.NewStepper(g, matching.Greedy, nil)
	steps := 0
	for {
		if _, ok := s.Next(); !ok {
			break
		}
		steps++
	}
	m, _ := s.Result()
	fmt.Println("steps:", steps, "edges:", len(m))
	// Output:
	// steps: 1 edges: 1
}
