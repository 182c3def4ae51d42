package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/pthm/relnorm/internal/cli"
	"github.com/pthm/relnorm/internal/render"
)

var (
	analyzeInput  inputFlags
	analyzeOutput string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Report candidate keys, normal form, and violations",
	Long:  `Analyze a relation against its functional dependencies and report candidate keys, the highest satisfied normal form, and any violating dependencies.`,
	Example: `  # Analyze inline input
  relnorm analyze -r 'R(A, B, C)' -f 'A -> B
B -> C'

  # Analyze a built-in example
  relnorm analyze --example marketplace

  # Machine-readable output
  relnorm analyze --example marketplace --output yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := analyzeInput.analysis()
		if err != nil {
			return err
		}

		output := resolveString(analyzeOutput, cfg.Analyze.Output)
		switch output {
		case "", "text":
			return render.NewTextRenderer(os.Stdout).Analysis(a)
		case "yaml":
			out, err := yaml.Marshal(a)
			if err != nil {
				return cli.GeneralError("marshaling analysis", err)
			}
			fmt.Print(string(out))
			return nil
		default:
			return cli.ConfigError(fmt.Sprintf("unknown output format %q (want text or yaml)", output), nil)
		}
	},
}

func init() {
	analyzeInput.register(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "output format: text or yaml")
}
