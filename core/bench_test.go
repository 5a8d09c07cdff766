// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/katalvlaran/arenagraph/core"
)

// BenchmarkInsertVertex measures vertex insertion into a pre-sized arena.
func BenchmarkInsertVertex(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		g := core.NewGraph[int, int](core.WithCapacity(1024, 0))
		for i := range 1024 {
			_, _ = g.InsertVertex(i)
		}
	}
}

// BenchmarkReachable measures one-hop iteration over a star's hub.
func BenchmarkReachable(b *testing.B) {
	const n = 512
	g := core.NewGraph[int, int](core.WithCapacity(n, n))
	for i := range n {
		_, _ = g.InsertVertex(i)
	}
	for i := 1; i < n; i++ {
		_, _ = g.AddEdge(i, 0, i)
	}
	hub, _ := g.Handle(0)

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		for range g.Reachable(hub) {
		}
	}
}
