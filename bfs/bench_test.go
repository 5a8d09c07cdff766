// SPDX-License-Identifier: MIT

package bfs_test

import (
	"testing"

	"github.com/katalvlaran/arenagraph/bfs"
	"github.com/katalvlaran/arenagraph/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := core.NewGraph[int, struct{}](core.WithCapacity(N+1, N))
	for i := 0; i <= N; i++ {
		_, _ = g.InsertVertex(i)
	}
	for i := 0; i < N; i++ {
		_, _ = g.AddEdge(struct{}{}, i, i+1)
	}
	start, _ := g.Handle(0)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Walk(g, bfs.WithStart(start))
	}
}
