// Package migrator applies decomposed relation schemas to PostgreSQL.
//
// The migrator is idempotent. It hashes the generated DDL and records
// each apply in a relnorm_migrations tracking table; a repeat apply with
// an unchanged schema is skipped. When the schema changes (or Force is
// set) the previously created tables are dropped and recreated.
//
// # Usage
//
//	m := migrator.New(db)
//	skipped, err := m.Apply(ctx, finals, fds, migrator.Options{})
//
// For previewing without touching the database, pass a writer:
//
//	var buf bytes.Buffer
//	_, err := m.Apply(ctx, finals, fds, migrator.Options{DryRun: &buf})
package migrator

import (
	"bytes"
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/lib/pq"

	"github.com/pthm/relnorm/internal/sqlgen"
	"github.com/pthm/relnorm/schema"
)

// GenVersion is incremented when DDL generation logic changes.
// This ensures applies re-run even if the schema checksum matches.
const GenVersion = "1"

const migrationsDDL = `
CREATE TABLE IF NOT EXISTS relnorm_migrations (
    id SERIAL PRIMARY KEY,
    schema_checksum TEXT NOT NULL,
    gen_version TEXT NOT NULL,
    table_names TEXT[] NOT NULL,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Options controls apply behavior.
type Options struct {
	// DryRun outputs SQL to the provided writer without touching the
	// database. If nil, the apply proceeds normally.
	DryRun io.Writer

	// Force re-applies even if the schema is unchanged.
	Force bool
}

// MigrationRecord represents a row in the relnorm_migrations table.
type MigrationRecord struct {
	SchemaChecksum string
	GenVersion     string
	TableNames     []string
}

// Migrator loads generated table schemas into PostgreSQL.
type Migrator struct {
	db Execer
}

// New creates a new schema migrator.
// The Execer is typically *sql.DB but can be *sql.Tx for testing.
func New(db Execer) *Migrator {
	return &Migrator{db: db}
}

// ComputeSchemaChecksum returns a SHA256 hash of the DDL content.
// Used to detect schema changes for skip-if-unchanged.
func ComputeSchemaChecksum(content string) string {
	h := sha256.Sum256([]byte(content))
	return hex.EncodeToString(h[:])
}

// Apply creates the tables for the given relations. Returns skipped=true
// when the schema matches the last recorded apply and Force is unset.
//
// Uses a transaction if the db supports it (*sql.DB). This ensures the
// schema is updated atomically or not at all.
func (m *Migrator) Apply(ctx context.Context, relations []schema.Relation, fds []schema.FD, opts Options) (skipped bool, err error) {
	if len(relations) == 0 {
		return false, fmt.Errorf("no relations to apply")
	}

	var script bytes.Buffer
	if err := sqlgen.WriteDDL(&script, relations, fds); err != nil {
		return false, fmt.Errorf("generating DDL: %w", err)
	}
	checksum := ComputeSchemaChecksum(script.String())
	tables := sqlgen.Statements(relations, fds)

	if opts.DryRun != nil {
		m.outputDryRun(opts.DryRun, checksum, tables)
		return false, nil
	}

	last, err := m.getLastMigration(ctx, m.db)
	if err != nil {
		return false, fmt.Errorf("checking last apply: %w", err)
	}
	if !opts.Force && shouldSkipApply(last, checksum) {
		return true, nil
	}

	if txer, ok := m.db.(interface {
		BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
	}); ok {
		tx, err := txer.BeginTx(ctx, nil)
		if err != nil {
			return false, fmt.Errorf("starting transaction: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		if err := m.applyAll(ctx, tx, last, checksum, tables); err != nil {
			return false, err
		}
		return false, tx.Commit()
	}

	// Fall back to non-transactional (for *sql.Conn)
	return false, m.applyAll(ctx, m.db, last, checksum, tables)
}

func (m *Migrator) applyAll(ctx context.Context, db Execer, last *MigrationRecord, checksum string, tables []sqlgen.Table) error {
	if _, err := db.ExecContext(ctx, migrationsDDL); err != nil {
		return fmt.Errorf("applying migrations DDL: %w", err)
	}

	// Drop tables from the previous apply so recreation is clean.
	if last != nil {
		for _, name := range last.TableNames {
			if _, err := db.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", pq.QuoteIdentifier(name))); err != nil {
				return fmt.Errorf("dropping table %s: %w", name, err)
			}
		}
	}

	names := make([]string, 0, len(tables))
	for _, tbl := range tables {
		if _, err := db.ExecContext(ctx, tbl.SQL); err != nil {
			return fmt.Errorf("creating table %s: %w", tbl.Name, err)
		}
		names = append(names, tbl.Name)
	}

	if _, err := db.ExecContext(ctx, `
		INSERT INTO relnorm_migrations (schema_checksum, gen_version, table_names)
		VALUES ($1, $2, $3)
	`, checksum, GenVersion, pq.Array(names)); err != nil {
		return fmt.Errorf("inserting migration record: %w", err)
	}
	return nil
}

// Status represents the current apply state.
type Status struct {
	// Applied indicates whether any schema has been applied.
	Applied bool

	// SchemaChecksum is the checksum of the last applied schema.
	SchemaChecksum string

	// Tables lists the tables created by the last apply.
	Tables []string
}

// GetStatus returns the current apply status.
// Useful for health checks or diagnostics.
func (m *Migrator) GetStatus(ctx context.Context) (*Status, error) {
	last, err := m.getLastMigration(ctx, m.db)
	if err != nil {
		return nil, err
	}
	if last == nil {
		return &Status{}, nil
	}
	return &Status{
		Applied:        true,
		SchemaChecksum: last.SchemaChecksum,
		Tables:         last.TableNames,
	}, nil
}

// GetLastMigration returns the most recent apply record, or nil if none exists.
func (m *Migrator) GetLastMigration(ctx context.Context) (*MigrationRecord, error) {
	return m.getLastMigration(ctx, m.db)
}

func (m *Migrator) getLastMigration(ctx context.Context, db Execer) (*MigrationRecord, error) {
	// First check if the tracking table exists
	var tableExists bool
	err := db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM pg_class c
			JOIN pg_namespace n ON n.oid = c.relnamespace
			WHERE c.relname = 'relnorm_migrations'
			AND n.nspname = current_schema()
		)
	`).Scan(&tableExists)
	if err != nil {
		return nil, fmt.Errorf("checking relnorm_migrations table: %w", err)
	}
	if !tableExists {
		return nil, nil // No tracking table yet
	}

	var rec MigrationRecord
	err = db.QueryRowContext(ctx, `
		SELECT schema_checksum, gen_version, table_names
		FROM relnorm_migrations
		ORDER BY id DESC
		LIMIT 1
	`).Scan(&rec.SchemaChecksum, &rec.GenVersion, pq.Array(&rec.TableNames))
	if err == sql.ErrNoRows {
		return nil, nil // No previous apply
	}
	if err != nil {
		return nil, fmt.Errorf("querying last apply: %w", err)
	}
	return &rec, nil
}

// shouldSkipApply returns true if the schema and generator version are unchanged.
func shouldSkipApply(last *MigrationRecord, checksum string) bool {
	if last == nil {
		return false
	}
	return last.SchemaChecksum == checksum && last.GenVersion == GenVersion
}

// outputDryRun writes the apply SQL to the provided writer.
func (m *Migrator) outputDryRun(w io.Writer, checksum string, tables []sqlgen.Table) {
	_, _ = fmt.Fprintf(w, "-- Schema apply (dry-run)\n")
	_, _ = fmt.Fprintf(w, "-- Schema checksum: %s\n", checksum)
	_, _ = fmt.Fprintf(w, "-- Generator version: %s\n", GenVersion)
	_, _ = fmt.Fprintf(w, "\n%s\n\n", migrationsDDL)

	for _, tbl := range tables {
		_, _ = fmt.Fprintf(w, "%s\n\n", tbl.SQL)
	}
}
