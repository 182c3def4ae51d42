package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pthm/relnorm"
	"github.com/pthm/relnorm/internal/cli"
	"github.com/pthm/relnorm/internal/render"
	"github.com/pthm/relnorm/schema"
)

var (
	closureInput inputFlags
	closureAttrs string
	closureAll   bool
)

var closureCmd = &cobra.Command{
	Use:   "closure",
	Short: "Compute attribute closures",
	Long:  `Compute the closure of a set of attributes under the functional dependencies. With --all, compute the closure of every single attribute of the relation.`,
	Example: `  # Closure of one attribute set
  relnorm closure --example marketplace --attrs GigID

  # Composite selection
  relnorm closure -r 'R(A, B, C)' -f 'A, B -> C' --attrs A,B

  # All single-attribute closures
  relnorm closure --example marketplace --all`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := closureInput.analysis()
		if err != nil {
			return err
		}

		r := render.NewTextRenderer(os.Stdout)

		if closureAll {
			return r.Closures(a.AttributeClosures())
		}

		var attrs []string
		for _, attr := range strings.Split(closureAttrs, ",") {
			if attr = strings.TrimSpace(attr); attr != "" {
				attrs = append(attrs, attr)
			}
		}

		cl, err := a.Closure(attrs...)
		if err != nil {
			if relnorm.IsEmptySelectionErr(err) {
				return cli.InputParseError("no attributes selected (use --attrs or --all)", nil)
			}
			return cli.GeneralError("computing closure", err)
		}

		if !quiet {
			for _, attr := range attrs {
				if !a.Relation.Attrs.Contains(attr) {
					fmt.Fprintf(os.Stderr, "warning: %s is not an attribute of %s\n", attr, a.Relation.Name)
				}
			}
		}

		return r.Closure(schema.NewAttrSet(attrs...), cl)
	},
}

func init() {
	closureInput.register(closureCmd)
	closureCmd.Flags().StringVar(&closureAttrs, "attrs", "", "comma-separated attributes to close over")
	closureCmd.Flags().BoolVar(&closureAll, "all", false, "compute every single-attribute closure")
}
