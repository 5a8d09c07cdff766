// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/arenagraph/core"
	"github.com/katalvlaran/arenagraph/growth"
)

var (
	version string
	commit  string
	date    string
)

// ErrUnknownVertex is returned for a --start or --to name absent from the input.
var ErrUnknownVertex = errors.New("graphwalk: unknown vertex")

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// options are the persistent flags shared by every subcommand.
type options struct {
	verbose  bool
	directed bool
	config   string
}

// Execute runs the graphwalk CLI.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. Logging goes to the command's
// stderr at info level, or debug level with --verbose.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "graphwalk",
		Short:        "graphwalk traverses graphs read from edge lists",
		Long:         `graphwalk loads a graph from "from to [weight]" lines into arena-backed storage and runs traversals, lightest paths, spanning trees and maximum flows on it.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("graphwalk %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().BoolVarP(&opts.directed, "directed", "d", false, "treat edges as directed")
	root.PersistentFlags().StringVarP(&opts.config, "config", "c", "", "TOML file with arena configuration")

	root.AddCommand(newBFSCmd(opts))
	root.AddCommand(newDFSCmd(opts))
	root.AddCommand(newComponentsCmd(opts))
	root.AddCommand(newTopoCmd(opts))
	root.AddCommand(newPathCmd(opts))
	root.AddCommand(newMSTCmd(opts))
	root.AddCommand(newFlowCmd(opts))
	root.AddCommand(newStatsCmd(opts))

	return root
}

// input is a loaded graph plus what the commands report about it.
type input struct {
	g     loadedGraph
	stats growth.Stats
	first string
}

// loadInput reads the edge list from args[0] (or stdin when absent or "-")
// and builds the graph.
func loadInput(cmd *cobra.Command, opts *options, directed bool, args []string) (*input, error) {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(opts.config)
	if err != nil {
		return nil, err
	}

	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("graphwalk: %w", err)
		}
		defer f.Close()
		r = f
	}

	prog := newProgress(logger)
	lines, err := parseEdgeList(r)
	if err != nil {
		return nil, err
	}
	g, stats, err := buildGraph(ctx, cfg, directed, lines)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Loaded %d vertices and %d edges", g.Order(), g.Size()))

	in := &input{g: g, stats: stats}
	if len(lines) > 0 {
		in.first = lines[0].From
	}

	return in, nil
}

// vertex resolves name, defaulting to the first name of the input.
// ok is false only for an empty graph with no name given.
func (in *input) vertex(name string) (h core.VertexHandle, ok bool, err error) {
	if name == "" {
		name = in.first
	}
	if name == "" {
		return core.VertexHandle{}, false, nil
	}
	h, ok = in.g.Handle(name)
	if !ok {
		return core.VertexHandle{}, false, fmt.Errorf("%w: %q", ErrUnknownVertex, name)
	}

	return h, true, nil
}

// names maps handles to vertex names.
func (in *input) names(hs []core.VertexHandle) []string {
	out := make([]string, 0, len(hs))
	for _, h := range hs {
		v, _ := in.g.Value(h)
		out = append(out, v)
	}

	return out
}
