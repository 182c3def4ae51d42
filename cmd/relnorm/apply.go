package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"

	"github.com/pthm/relnorm/internal/cli"
	"github.com/pthm/relnorm/pkg/migrator"
)

var (
	applyInput  inputFlags
	applyDB     string
	applyDryRun bool
	applyForce  bool
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Create the decomposed tables in PostgreSQL",
	Long:  `Decompose the relation to BCNF and create the resulting tables in PostgreSQL. The apply is tracked and skipped when the schema is unchanged.`,
	Example: `  # Apply to a database
  relnorm apply --example marketplace --db postgres://localhost/mydb

  # Preview SQL without applying
  relnorm apply --example marketplace --dry-run

  # Force re-apply even if schema unchanged
  relnorm apply --example marketplace --db postgres://localhost/mydb --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := applyInput.analysis()
		if err != nil {
			return err
		}

		_, finals, err := a.Decompose()
		if err != nil {
			return decomposeError(err)
		}

		dryRun := resolveBool(applyDryRun, cfg.Apply.DryRun)
		force := resolveBool(applyForce, cfg.Apply.Force)

		opts := migrator.Options{Force: force}
		if dryRun {
			opts.DryRun = os.Stdout
			if !quiet {
				fmt.Fprintln(os.Stderr, "-- Dry-run mode: SQL will be output but not applied")
				fmt.Fprintln(os.Stderr, "")
			}
			m := migrator.New(nil)
			_, err := m.Apply(context.Background(), finals, a.FDs, opts)
			return err
		}

		dsn, err := resolveDSN(applyDB)
		if err != nil {
			return err
		}

		db, err := sql.Open("pgx", dsn)
		if err != nil {
			return cli.DBConnectError("connecting to database", err)
		}
		defer func() { _ = db.Close() }()

		if !quiet {
			fmt.Printf("Applying %d table(s)...\n", len(finals))
		}

		skipped, err := migrator.New(db).Apply(context.Background(), finals, a.FDs, opts)
		if err != nil {
			return cli.GeneralError("applying schema", err)
		}

		if !quiet {
			if skipped {
				fmt.Println("Schema unchanged, apply skipped.")
				fmt.Println("Use --force to re-apply.")
			} else {
				fmt.Println("Schema applied successfully.")
			}
		}
		return nil
	},
}

func init() {
	applyInput.register(applyCmd)
	f := applyCmd.Flags()
	f.StringVar(&applyDB, "db", "", "database URL")
	f.BoolVar(&applyDryRun, "dry-run", false, "output SQL without applying")
	f.BoolVar(&applyForce, "force", false, "force apply even if schema unchanged")
}

// resolveDSN gets the database DSN from flag or config.
func resolveDSN(flagDSN string) (string, error) {
	if flagDSN != "" {
		return flagDSN, nil
	}

	dsn, err := cfg.DSN()
	if err != nil {
		return "", cli.ConfigError("database configuration", err)
	}
	if dsn == "" {
		return "", cli.ConfigError("database URL is required (use --db or set in config)", nil)
	}
	return dsn, nil
}
