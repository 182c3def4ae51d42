// Package sqlgen renders decomposed relation schemas as PostgreSQL DDL.
//
// Column types are inferred from attribute names with a small heuristic
// (identifier-like names become INT, monetary names become DECIMAL, and
// so on). The primary key of each table is the determinant of the first
// declared dependency that acts as a key within the table, falling back
// to the full attribute set when no dependency applies.
package sqlgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/pthm/relnorm/schema"
)

// Table is a single CREATE TABLE statement with its name, ready for
// execution or display.
type Table struct {
	Name string
	SQL  string
}

// Statements renders one CREATE TABLE per relation, in input order.
// The dependencies are used only to derive primary keys; they may span
// attributes outside any one relation.
func Statements(relations []schema.Relation, fds []schema.FD) []Table {
	tables := make([]Table, 0, len(relations))
	for _, rel := range relations {
		tables = append(tables, Table{Name: rel.Name, SQL: createTable(rel, fds)})
	}
	return tables
}

// WriteDDL writes all statements to w as a single script with a
// header comment, separated by blank lines.
func WriteDDL(w io.Writer, relations []schema.Relation, fds []schema.FD) error {
	if _, err := fmt.Fprintf(w, "-- Generated schema: %d table(s)\n\n", len(relations)); err != nil {
		return err
	}
	for _, tbl := range Statements(relations, fds) {
		if _, err := fmt.Fprintf(w, "%s\n\n", tbl.SQL); err != nil {
			return err
		}
	}
	return nil
}

func createTable(rel schema.Relation, fds []schema.FD) string {
	attrs := rel.Attrs.Sorted()
	pk := primaryKey(rel, fds)

	b := NewBuilder()
	b.Line("CREATE TABLE %s (", rel.Name)
	b.Block(func(b *SQLBuilder) {
		for _, attr := range attrs {
			b.Line("%s %s,", attr, columnType(attr))
		}
		b.Line("PRIMARY KEY (%s)", strings.Join(pk.Sorted(), ", "))
	})
	b.Line(");")
	return b.String()
}

// primaryKey picks the determinant of the first declared dependency
// whose determinant lies inside the relation and determines all of it.
// Relations no dependency can key get their full attribute set.
func primaryKey(rel schema.Relation, fds []schema.FD) schema.AttrSet {
	for _, fd := range fds {
		if !rel.Attrs.ContainsAll(fd.Determinant) {
			continue
		}
		if schema.Closure(fd.Determinant, fds).ContainsAll(rel.Attrs) {
			return fd.Determinant
		}
	}
	return rel.Attrs
}

// columnType infers a PostgreSQL column type from the attribute name.
func columnType(attr string) string {
	name := strings.ToLower(attr)
	switch {
	case strings.Contains(name, "id"):
		return "INT"
	case strings.Contains(name, "price"), strings.Contains(name, "amount"), strings.Contains(name, "budget"):
		return "DECIMAL(10, 2)"
	case strings.Contains(name, "date"):
		return "DATE"
	case strings.Contains(name, "description"), strings.Contains(name, "terms"):
		return "TEXT"
	default:
		return "VARCHAR(255)"
	}
}
