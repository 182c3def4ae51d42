package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm/relnorm/internal/render"
	"github.com/pthm/relnorm/schema"
)

var decomposeInput inputFlags

var decomposeCmd = &cobra.Command{
	Use:   "decompose",
	Short: "Decompose a relation to BCNF",
	Long:  `Decompose the relation into BCNF fragments, printing each split and the final schemas. The split is lossless: every fragment pair joins back on the violating determinant.`,
	Example: `  # Decompose a built-in example
  relnorm decompose --example marketplace

  # Decompose inline input
  relnorm decompose -r 'R(A, B, C)' -f 'A -> B
B -> C'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := decomposeInput.analysis()
		if err != nil {
			return err
		}

		steps, finals, err := a.Decompose()
		if err != nil {
			if schema.IsNoConvergenceErr(err) {
				// Partial results are still worth showing.
				_ = render.NewTextRenderer(os.Stdout).Decomposition(steps, finals)
			}
			return decomposeError(err)
		}

		return render.NewTextRenderer(os.Stdout).Decomposition(steps, finals)
	},
}

func init() {
	decomposeInput.register(decomposeCmd)
}
