package sqlgen

import (
	"fmt"
	"strings"
)

// SQLBuilder builds SQL with automatic indentation management.
// Use this for multi-line statement construction where managing
// indentation manually would be error-prone.
type SQLBuilder struct {
	lines  []string
	indent int
}

const indentStr = "    "

// NewBuilder creates a new SQLBuilder with 4-space indentation.
func NewBuilder() *SQLBuilder {
	return &SQLBuilder{}
}

// Line adds a line at the current indentation level.
func (b *SQLBuilder) Line(format string, args ...any) *SQLBuilder {
	line := fmt.Sprintf(format, args...)
	if b.indent > 0 && line != "" {
		line = strings.Repeat(indentStr, b.indent) + line
	}
	b.lines = append(b.lines, line)
	return b
}

// Block executes a function with increased indentation.
func (b *SQLBuilder) Block(fn func(*SQLBuilder)) *SQLBuilder {
	b.indent++
	fn(b)
	b.indent--
	return b
}

// String returns the built SQL joined by newlines.
func (b *SQLBuilder) String() string {
	return strings.Join(b.lines, "\n")
}
