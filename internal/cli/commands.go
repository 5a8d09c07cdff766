// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/arenagraph/bfs"
	"github.com/katalvlaran/arenagraph/components"
	"github.com/katalvlaran/arenagraph/core"
	"github.com/katalvlaran/arenagraph/dfs"
	"github.com/katalvlaran/arenagraph/dijkstra"
	"github.com/katalvlaran/arenagraph/flow"
	"github.com/katalvlaran/arenagraph/prim_kruskal"
)

func newBFSCmd(opts *options) *cobra.Command {
	var (
		start, to string
		maxDepth  int
	)
	cmd := &cobra.Command{
		Use:   "bfs [FILE]",
		Short: "Print breadth-first levels from a start vertex",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadInput(cmd, opts, opts.directed, args)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			seed, ok, err := in.vertex(start)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(w, StyleDim.Render("empty graph"))
				return nil
			}

			res, err := bfs.Walk(in.g,
				bfs.WithContext(cmd.Context()),
				bfs.WithStart(seed),
				bfs.WithMaxDepth(maxDepth),
			)
			if err != nil {
				return err
			}
			printTitle(w, "BFS from "+in.names([]core.VertexHandle{seed})[0])
			for d, level := range res.Levels() {
				fmt.Fprintf(w, "  %s  %s\n", StyleNumber.Render(strconv.Itoa(d)), strings.Join(in.names(level), " "))
			}

			if to == "" {
				return nil
			}
			dest, _, err := in.vertex(to)
			if err != nil {
				return err
			}
			path, err := res.PathTo(dest)
			if err != nil {
				return fmt.Errorf("%w: %s", err, to)
			}
			fmt.Fprintf(w, "%s %s\n", StyleDim.Render("path"), strings.Join(in.names(path), " -> "))

			return nil
		},
	}
	cmd.Flags().StringVarP(&start, "start", "s", "", "start vertex (default: first vertex of the input)")
	cmd.Flags().StringVar(&to, "to", "", "also print the shortest unweighted path to this vertex")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "stop after this depth (0: no limit)")

	return cmd
}

func newDFSCmd(opts *options) *cobra.Command {
	var (
		start    string
		all      bool
		maxDepth int
	)
	cmd := &cobra.Command{
		Use:   "dfs [FILE]",
		Short: "Print the depth-first pre-order, indented by depth",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadInput(cmd, opts, opts.directed, args)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			seed, ok, err := in.vertex(start)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(w, StyleDim.Render("empty graph"))
				return nil
			}

			dopts := []dfs.Option{
				dfs.WithContext(cmd.Context()),
				dfs.WithStart(seed),
				dfs.WithMaxDepth(maxDepth),
			}
			if all {
				dopts = append(dopts, dfs.WithFullTraversal())
			}
			res, err := dfs.Walk(in.g, dopts...)
			if err != nil {
				return err
			}
			printTitle(w, "DFS from "+in.names([]core.VertexHandle{seed})[0])
			for i, name := range in.names(res.Order) {
				fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", res.Depth[res.Order[i]]+1), name)
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&start, "start", "s", "", "start vertex (default: first vertex of the input)")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "restart from unvisited vertices until the whole graph is covered")
	cmd.Flags().IntVar(&maxDepth, "max-depth", -1, "stop below this depth (-1: no limit)")

	return cmd
}

func newComponentsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "components [FILE]",
		Short: "Print the connected components (forward-reachable clusters when directed)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadInput(cmd, opts, opts.directed, args)
			if err != nil {
				return err
			}
			comps, err := components.All(in.g)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printTitle(w, fmt.Sprintf("%d components", len(comps)))
			for i, c := range comps {
				names := in.names(c)
				slices.Sort(names)
				fmt.Fprintf(w, "  %s %s  %s\n",
					StyleNumber.Render(fmt.Sprintf("#%d", i+1)),
					StyleDim.Render(fmt.Sprintf("(%d)", len(c))),
					strings.Join(names, " "))
			}

			return nil
		},
	}
}

func newTopoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "topo [FILE]",
		Short: "Print a topological order; edges are always read as directed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadInput(cmd, opts, true, args)
			if err != nil {
				return err
			}
			dg, ok := in.g.(*core.DiGraph[string, int64])
			if !ok {
				return fmt.Errorf("graphwalk: topo needs a directed graph, got %T", in.g)
			}
			order, err := dfs.TopologicalSort(dg, dfs.WithCancelContext(cmd.Context()))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printTitle(w, "Topological order")
			fmt.Fprintf(w, "  %s\n", strings.Join(in.names(order), " "))

			return nil
		},
	}
}

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [FILE]",
		Short: "Print graph size, arena limits and growth counters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadInput(cmd, opts, opts.directed, args)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			kind := "undirected"
			if opts.directed {
				kind = "directed"
			}
			printTitle(w, "Graph ("+kind+")")
			printKV(w, "vertices", in.g.Order())
			printKV(w, "edges", in.g.Size())
			printKV(w, "vertex limit", in.g.VertexCapacity())
			printKV(w, "edge limit", in.g.EdgeCapacity())
			printKV(w, "vertex growths", in.stats.VertexGrowths)
			printKV(w, "edge growths", in.stats.EdgeGrowths)

			return nil
		},
	}
}

func newPathCmd(opts *options) *cobra.Command {
	var (
		from, to string
		maxDist  float64
	)
	cmd := &cobra.Command{
		Use:   "path --to NAME [FILE]",
		Short: "Print the lightest weighted path between two vertices",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadInput(cmd, opts, opts.directed, args)
			if err != nil {
				return err
			}
			src, ok, err := in.vertex(from)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), StyleDim.Render("empty graph"))
				return nil
			}
			dst, _, err := in.vertex(to)
			if err != nil {
				return err
			}

			dopts := []dijkstra.Option{dijkstra.Source(src), dijkstra.WithContext(cmd.Context())}
			if maxDist > 0 {
				dopts = append(dopts, dijkstra.WithMaxDistance(maxDist))
			}
			res, err := dijkstra.Dijkstra[int64](in.g, dopts...)
			if err != nil {
				return err
			}
			path, err := res.PathTo(dst)
			if err != nil {
				return fmt.Errorf("%w: %s", err, to)
			}
			dist, _ := res.Distance(dst)

			w := cmd.OutOrStdout()
			names := in.names(path)
			printTitle(w, fmt.Sprintf("Path %s -> %s", names[0], names[len(names)-1]))
			fmt.Fprintf(w, "  %s\n", strings.Join(names, " -> "))
			printKV(w, "weight", dist)
			printKV(w, "hops", len(path)-1)

			return nil
		},
	}
	cmd.Flags().StringVarP(&from, "from", "f", "", "start vertex (default: first vertex of the input)")
	cmd.Flags().StringVarP(&to, "to", "t", "", "destination vertex")
	cmd.Flags().Float64Var(&maxDist, "max-distance", 0, "give up beyond this total weight (0: no limit)")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newMSTCmd(opts *options) *cobra.Command {
	var (
		prim bool
		root string
	)
	cmd := &cobra.Command{
		Use:   "mst [FILE]",
		Short: "Print a minimum spanning tree; edges are always read as undirected",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadInput(cmd, opts, false, args)
			if err != nil {
				return err
			}
			g, ok := in.g.(*core.Graph[string, int64])
			if !ok {
				return fmt.Errorf("graphwalk: mst needs an undirected graph, got %T", in.g)
			}

			mopts := []prim_kruskal.Option{prim_kruskal.WithMethod(prim_kruskal.MethodKruskal)}
			if prim {
				start, found, err := in.vertex(root)
				if err != nil {
					return err
				}
				if found {
					mopts = []prim_kruskal.Option{prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithRoot(start)}
				}
			}
			tree, total, err := prim_kruskal.Compute(g, mopts...)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printTitle(w, fmt.Sprintf("Minimum spanning tree (%d edges)", len(tree)))
			for _, e := range tree {
				a, b := e.Endpoints()
				names := in.names([]core.VertexHandle{a, b})
				fmt.Fprintf(w, "  %s - %s %s\n", names[0], names[1], StyleDim.Render(strconv.FormatInt(e.Weight(), 10)))
			}
			printKV(w, "total", total)

			return nil
		},
	}
	cmd.Flags().BoolVar(&prim, "prim", false, "use Prim's algorithm instead of Kruskal's")
	cmd.Flags().StringVar(&root, "root", "", "Prim's start vertex (default: first vertex of the input)")

	return cmd
}

func newFlowCmd(opts *options) *cobra.Command {
	var (
		from, to string
		method   string
	)
	cmd := &cobra.Command{
		Use:   "flow --to NAME [FILE]",
		Short: "Print the maximum flow between two vertices, reading weights as capacities",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadInput(cmd, opts, opts.directed, args)
			if err != nil {
				return err
			}
			src, ok, err := in.vertex(from)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), StyleDim.Render("empty graph"))
				return nil
			}
			dst, _, err := in.vertex(to)
			if err != nil {
				return err
			}

			res, err := flow.MaxFlow[int64](in.g, src, dst,
				flow.WithMethod(flow.Method(method)),
				flow.WithContext(cmd.Context()),
				flow.WithLogger(loggerFromContext(cmd.Context())))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			ends := in.names([]core.VertexHandle{src, dst})
			printTitle(w, fmt.Sprintf("Maximum flow %s -> %s", ends[0], ends[1]))
			printKV(w, "flow", res.MaxFlow)
			printKV(w, "augmentations", res.Augmentations)
			fmt.Fprintf(w, "  %s\n", StyleDim.Render("minimum cut:"))
			for _, a := range res.MinCut() {
				names := in.names([]core.VertexHandle{a.From, a.To})
				fmt.Fprintf(w, "  %s -> %s %s\n", names[0], names[1],
					StyleDim.Render(strconv.FormatInt(res.Capacity(a.From, a.To), 10)))
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&from, "from", "f", "", "source vertex (default: first vertex of the input)")
	cmd.Flags().StringVarP(&to, "to", "t", "", "sink vertex")
	cmd.Flags().StringVarP(&method, "method", "m", string(flow.MethodEdmondsKarp), "ford-fulkerson, edmonds-karp or dinic")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
