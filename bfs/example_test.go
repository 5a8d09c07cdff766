// SPDX-License-Identifier: MIT

package bfs_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/arenagraph/bfs"
	"github.com/katalvlaran/arenagraph/core"
)

// ExampleWalk demonstrates BFS layering on a 3×3 grid (9 vertices).
// The corner reaches the far corner in four hops.
func ExampleWalk() {
	g := core.NewGraph[string, int]()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			_, _ = g.InsertVertex(fmt.Sprintf("%d_%d", i, j))
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				_, _ = g.InsertEdge(1, fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1))
			}
			if i+1 < 3 {
				_, _ = g.InsertEdge(1, fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j))
			}
		}
	}

	start, _ := g.Handle("0_0")
	res, err := bfs.Walk(g, bfs.WithStart(start))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for d, level := range res.Levels() {
		names := make([]string, 0, len(level))
		for _, h := range level {
			v, _ := g.Value(h)
			names = append(names, v)
		}
		sort.Strings(names)
		fmt.Println(d, names)
	}
	// Output:
	// 0 [0_0]
	// 1 [0_1 1_0]
	// 2 [0_2 1_1 2_0]
	// 3 [1_2 2_1]
	// 4 [2_2]
}
