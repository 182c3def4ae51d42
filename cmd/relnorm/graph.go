package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm/relnorm/internal/cli"
	"github.com/pthm/relnorm/internal/render"
)

var (
	graphInput inputFlags
	graphOut   string
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the dependency graph in Graphviz DOT format",
	Long:  `Emit the functional dependency graph as a Graphviz digraph. Each attribute becomes a node and each determinant-to-dependent pair becomes an edge.`,
	Example: `  # Print DOT to stdout
  relnorm graph --example marketplace

  # Render with Graphviz
  relnorm graph --example marketplace --out deps.dot
  dot -Tpng deps.dot -o deps.png`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := graphInput.analysis()
		if err != nil {
			return err
		}

		out := os.Stdout
		if path := resolveString(graphOut, cfg.Graph.Out); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return cli.GeneralError("creating output file", err)
			}
			defer func() { _ = f.Close() }()
			out = f

			if !quiet {
				fmt.Fprintf(os.Stderr, "Writing dependency graph to %s\n", path)
			}
		}

		return render.WriteDOT(out, a.Relation.Attrs, a.FDs)
	},
}

func init() {
	graphInput.register(graphCmd)
	graphCmd.Flags().StringVar(&graphOut, "out", "", "output file (default: stdout)")
}
