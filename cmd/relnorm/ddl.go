package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm/relnorm/internal/cli"
	"github.com/pthm/relnorm/internal/sqlgen"
)

var (
	ddlInput inputFlags
	ddlOut   string
)

var ddlCmd = &cobra.Command{
	Use:   "ddl",
	Short: "Export the decomposed schema as PostgreSQL DDL",
	Long:  `Decompose the relation to BCNF and emit one CREATE TABLE statement per final schema. Column types are inferred from attribute names.`,
	Example: `  # Print DDL to stdout
  relnorm ddl --example marketplace

  # Write DDL to a file
  relnorm ddl --example marketplace --out schema.sql`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := ddlInput.analysis()
		if err != nil {
			return err
		}

		_, finals, err := a.Decompose()
		if err != nil {
			return decomposeError(err)
		}

		out := os.Stdout
		if path := resolveString(ddlOut, cfg.DDL.Out); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return cli.GeneralError("creating output file", err)
			}
			defer func() { _ = f.Close() }()
			out = f

			if !quiet {
				fmt.Fprintf(os.Stderr, "Writing DDL for %d table(s) to %s\n", len(finals), path)
			}
		}

		return sqlgen.WriteDDL(out, finals, a.FDs)
	},
}

func init() {
	ddlInput.register(ddlCmd)
	ddlCmd.Flags().StringVar(&ddlOut, "out", "", "output file (default: stdout)")
}
