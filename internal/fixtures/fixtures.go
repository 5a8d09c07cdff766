// SPDX-License-Identifier: MIT

// Package fixtures builds the reference graphs shared by the package tests.
package fixtures

import (
	"github.com/katalvlaran/arenagraph/core"
)

// TreeOrder is the vertex count of NumericTree.
const TreeOrder = 100

// NumericTree returns the undirected tree on 0..99 where i is joined to i/10
// for every i in 1..99. Vertex 0 has degree 9, 1..9 have degree 11 and the
// rest are leaves.
func NumericTree(opts ...core.Option) (*core.Graph[int, struct{}], error) {
	g := core.NewGraph[int, struct{}](append([]core.Option{core.WithCapacity(TreeOrder, TreeOrder)}, opts...)...)
	var i int
	for i = 0; i < TreeOrder; i++ {
		if _, err := g.InsertVertex(i); err != nil {
			return nil, err
		}
	}
	for i = 1; i < TreeOrder; i++ {
		if _, err := g.AddEdge(struct{}{}, i/10, i); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Road is one undirected distance between two cities, in kilometres.
type Road struct {
	From, To string
	Km       int
}

// Cities are the ten vertices of GermanRoads.
var Cities = []string{
	"Frankfurt", "Mannheim", "Karlsruhe", "Augsburg", "München",
	"Würzburg", "Erfurt", "Nürnberg", "Stuttgart", "Kassel",
}

// Roads are the eleven edges of GermanRoads.
var Roads = []Road{
	{"Nürnberg", "Würzburg", 103},
	{"München", "Nürnberg", 167},
	{"Frankfurt", "Kassel", 173},
	{"Nürnberg", "Stuttgart", 183},
	{"Erfurt", "Würzburg", 186},
	{"Frankfurt", "Würzburg", 217},
	{"Augsburg", "München", 250},
	{"Augsburg", "Karlsruhe", 250},
	{"Kassel", "München", 502},
	{"Karlsruhe", "Mannheim", 80},
	{"Frankfurt", "Mannheim", 85},
}

// GermanLevels are the breadth-first levels of GermanRoads from Frankfurt.
var GermanLevels = [][]string{
	{"Frankfurt"},
	{"Mannheim", "Würzburg", "Kassel"},
	{"Karlsruhe", "Nürnberg", "Erfurt", "München"},
	{"Augsburg", "Stuttgart"},
}

// GermanRoads returns the undirected city map weighted by road distance.
func GermanRoads(opts ...core.Option) (*core.Graph[string, int], error) {
	g := core.NewGraph[string, int](opts...)
	for _, c := range Cities {
		if _, err := g.InsertVertex(c); err != nil {
			return nil, err
		}
	}
	for _, r := range Roads {
		if _, err := g.InsertEdge(r.Km, r.From, r.To); err != nil {
			return nil, err
		}
	}

	return g, nil
}
