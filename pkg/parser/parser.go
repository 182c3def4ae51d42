// Package parser turns relation and functional-dependency text into the
// schema package's types.
//
// This is the only package that deals with input formats; downstream
// consumers work purely with schema.Relation and schema.FD values.
//
// # Accepted Formats
//
// Relations:
//
//	R(A, B, C)          conventional form
//	A, B, C             bare attribute list, name defaults to "R"
//	Orders: A, B, C     name-colon form
//
// Functional dependencies, one per line:
//
//	A, B -> C
//	GigID → Title
//
// Blank lines are skipped; lines without a separator are silently
// ignored. Separators "->" and "→" are both accepted, with "→" taking
// precedence when a line contains both.
//
// # Errors
//
// Parse failures are reported through sentinel errors (ErrInvalidRelation,
// ErrInvalidFD) checkable with errors.Is; no partial result is ever
// returned alongside an error.
package parser

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/pthm/relnorm/schema"
)

// relationPattern matches the conventional "Name(A, B, C)" form anywhere
// in the input line.
var relationPattern = regexp.MustCompile(`(\w+)\s*\((.+)\)`)

// ParseRelation parses a relation schema declaration.
func ParseRelation(text string) (schema.Relation, error) {
	text = strings.TrimSpace(text)

	if m := relationPattern.FindStringSubmatch(text); m != nil {
		attrs := splitAttrs(m[2])
		if len(attrs) == 0 {
			return schema.Relation{}, fmt.Errorf("%w: no attributes in %q", ErrInvalidRelation, text)
		}
		return schema.Relation{Name: m[1], Attrs: schema.NewAttrSet(attrs...)}, nil
	}

	// Bare comma list: only when no parenthesis appears at all.
	if !strings.ContainsAny(text, "()") {
		if name, attrs, ok := strings.Cut(text, ":"); ok {
			parts := splitAttrs(attrs)
			if len(parts) > 0 {
				return schema.Relation{Name: strings.TrimSpace(name), Attrs: schema.NewAttrSet(parts...)}, nil
			}
		} else if parts := splitAttrs(text); len(parts) > 0 {
			return schema.Relation{Name: "R", Attrs: schema.NewAttrSet(parts...)}, nil
		}
	}

	return schema.Relation{}, fmt.Errorf("%w: expected 'Name(Attr1, Attr2, ...)', got %q", ErrInvalidRelation, text)
}

// ParseFDs parses a multi-line block of functional dependencies,
// preserving declaration order.
func ParseFDs(text string) ([]schema.FD, error) {
	var fds []schema.FD

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		arrow := "->"
		if strings.Contains(line, "→") {
			arrow = "→"
		}
		lhs, rhs, ok := strings.Cut(line, arrow)
		if !ok {
			continue // not an FD line
		}

		determinant := splitAttrs(lhs)
		dependent := splitAttrs(rhs)
		if len(determinant) == 0 || len(dependent) == 0 {
			return nil, fmt.Errorf("%w: %q has an empty side", ErrInvalidFD, line)
		}

		fds = append(fds, schema.FD{
			Determinant: schema.NewAttrSet(determinant...),
			Dependent:   schema.NewAttrSet(dependent...),
		})
	}

	return fds, nil
}

// ParseRelationFile reads and parses a relation declaration from a file.
func ParseRelationFile(path string) (schema.Relation, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return schema.Relation{}, fmt.Errorf("reading relation file: %w", err)
	}
	return ParseRelation(string(content))
}

// ParseFDsFile reads and parses functional dependencies from a file.
func ParseFDsFile(path string) ([]schema.FD, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading FD file: %w", err)
	}
	return ParseFDs(string(content))
}

// splitAttrs splits a comma-separated attribute list, trimming whitespace
// and dropping empty entries.
func splitAttrs(s string) []string {
	var attrs []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			attrs = append(attrs, part)
		}
	}
	return attrs
}
