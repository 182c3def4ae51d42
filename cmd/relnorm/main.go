// Package main provides a CLI for analyzing and normalizing relational schemas.
//
// The CLI supports:
//   - analyze: Report candidate keys, normal form, and violations
//   - closure: Compute attribute closures
//   - keys: List candidate keys
//   - decompose: Decompose a relation to BCNF
//   - ddl: Export the decomposed schema as PostgreSQL DDL
//   - graph: Export the dependency graph in Graphviz DOT format
//   - apply: Create the decomposed tables in PostgreSQL
//
// Commands that require database access (apply) need --db or configuration.
// All other commands work purely on relation and dependency text.
package main

func main() {
	Execute()
}
