package search_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

func ExampleAStar() {
	l, _ := gridgraph.FromStrings([]string{
		"S#..",
		".#.E",
		"....",
	})

	res, err := search.AStar(l.Grid, l.Start, l.End)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := l.Grid.PathTo(l.End)
	fmt.Printf("found=%t steps=%d cost=%.3f\n", res.Found, len(path)-1, gridgraph.PathCost(path))
	// Output:
	// found=true steps=4 cost=4.828
}

func ExampleSession_Compare() {
	l, _ := gridgraph.FromStrings([]string{
		"S..",
		"...",
		"..E",
	})
	s, _ := search.NewSession(l.Grid, l.Start, l.End)

	rows, err := s.Compare()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range rows {
		fmt.Printf("%-8s steps=%d cost=%.3f\n", r.Algorithm, r.Steps, r.Cost)
	}
	// Output:
	// dfs      steps=2 cost=2.828
	// bfs      steps=2 cost=2.828
	// dijkstra steps=2 cost=2.828
	// greedy   steps=2 cost=2.828
	// astar    steps=2 cost=2.828
}

func ExampleParseAlgorithm() {
	alg, err := search.ParseAlgorithm("A*")
	fmt.Println(alg, err)
	_, err = search.ParseAlgorithm("jps")
	fmt.Println(err)
	// Output:
	// astar <nil>
	// search: unknown algorithm: "jps"
}
