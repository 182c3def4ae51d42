package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm/relnorm"
	"github.com/pthm/relnorm/internal/cli"
	"github.com/pthm/relnorm/internal/examples"
	"github.com/pthm/relnorm/pkg/parser"
	"github.com/pthm/relnorm/schema"
)

// inputFlags holds the shared relation/dependency input flags.
// Every analysis and export command accepts the same input sources,
// resolved with precedence: inline flag > file flag > example > config.
type inputFlags struct {
	relation     string
	fds          string
	relationFile string
	fdsFile      string
	example      string
}

// register adds the shared input flags to a command.
func (in *inputFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&in.relation, "relation", "r", "", "relation text, e.g. 'R(A, B, C)'")
	f.StringVarP(&in.fds, "fds", "f", "", "functional dependencies, one per line")
	f.StringVar(&in.relationFile, "relation-file", "", "file containing the relation declaration")
	f.StringVar(&in.fdsFile, "fds-file", "", "file containing functional dependencies")
	f.StringVar(&in.example, "example", "", "load a built-in example (see 'relnorm example')")
}

// analysis resolves the input sources and runs the analysis.
func (in *inputFlags) analysis() (*relnorm.Analysis, error) {
	relText, fdText, err := in.resolve()
	if err != nil {
		return nil, err
	}

	a, err := relnorm.Analyze(relText, fdText)
	if err != nil {
		return nil, cli.InputParseError("parsing input", err)
	}
	return a, nil
}

func (in *inputFlags) resolve() (relText, fdText string, err error) {
	if in.example != "" {
		ex, err := examples.Load(in.example)
		if err != nil {
			return "", "", cli.InputParseError("loading example", err)
		}
		return ex.Relation, ex.FDs, nil
	}

	relText = in.relation
	if relText == "" {
		path := resolveString(in.relationFile, cfg.Relation)
		if path == "" {
			return "", "", cli.ConfigError("relation is required (use --relation, --relation-file, --example, or set in config)", nil)
		}
		rel, err := parser.ParseRelationFile(path)
		if err != nil {
			return "", "", cli.InputParseError("reading relation", err)
		}
		relText = rel.String()
	}

	fdText = in.fds
	if fdText == "" {
		if path := resolveString(in.fdsFile, cfg.FDs); path != "" {
			content, err := os.ReadFile(path)
			if err != nil {
				return "", "", cli.InputParseError("reading dependencies", err)
			}
			fdText = string(content)
		}
	}

	return relText, fdText, nil
}

// decomposeError maps a decomposition failure to its exit code. Every
// command that decomposes reports non-convergence the same way.
func decomposeError(err error) error {
	if schema.IsNoConvergenceErr(err) {
		return cli.NoConvergenceError("decomposition did not converge", err)
	}
	return cli.GeneralError("decomposing", err)
}
