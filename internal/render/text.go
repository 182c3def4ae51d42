// Package render writes human-readable and graph output for analysis
// results.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/pthm/relnorm"
	"github.com/pthm/relnorm/schema"
)

// TextRenderer writes analysis output as plain text.
type TextRenderer struct {
	writer io.Writer
}

// NewTextRenderer creates a new text renderer.
func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{writer: w}
}

// Analysis writes the full normalization report.
func (r *TextRenderer) Analysis(a *relnorm.Analysis) error {
	_, _ = fmt.Fprintf(r.writer, "RELATION %s\n", a.Relation)

	if len(a.FDs) > 0 {
		_, _ = fmt.Fprintln(r.writer)
		_, _ = fmt.Fprintln(r.writer, "  DEPENDENCIES:")
		for _, fd := range a.FDs {
			_, _ = fmt.Fprintf(r.writer, "    %s\n", fd)
		}
	}

	_, _ = fmt.Fprintln(r.writer)
	_, _ = fmt.Fprintln(r.writer, "  CANDIDATE KEYS:")
	for _, key := range a.Keys {
		_, _ = fmt.Fprintf(r.writer, "    %s\n", key)
	}
	_, _ = fmt.Fprintf(r.writer, "  PRIME ATTRIBUTES: %s\n", joinSorted(a.Prime))

	_, _ = fmt.Fprintln(r.writer)
	_, _ = fmt.Fprintf(r.writer, "  NORMAL FORM: %s\n", a.NormalForm)
	_, _ = fmt.Fprintf(r.writer, "  %s\n", a.Explanation)

	if len(a.Violations) > 0 {
		_, _ = fmt.Fprintln(r.writer)
		_, _ = fmt.Fprintln(r.writer, "  VIOLATIONS:")
		for _, v := range a.Violations {
			_, _ = fmt.Fprintf(r.writer, "    %s\n", v)
		}
	}

	return nil
}

// Closures writes one line per attribute closure.
func (r *TextRenderer) Closures(closures []relnorm.AttributeClosure) error {
	for _, ac := range closures {
		_, _ = fmt.Fprintf(r.writer, "%s+ = %s\n", ac.Attr, ac.Closure)
	}
	return nil
}

// Closure writes a single closure result for an attribute selection.
func (r *TextRenderer) Closure(attrs schema.AttrSet, closure schema.AttrSet) error {
	_, _ = fmt.Fprintf(r.writer, "%s+ = %s\n", joinSorted(attrs), closure)
	return nil
}

// Decomposition writes the step trace and the resulting schemas.
func (r *TextRenderer) Decomposition(steps []schema.Step, finals []schema.Relation) error {
	for i, step := range steps {
		_, _ = fmt.Fprintf(r.writer, "STEP %d: %s\n", i+1, step.Explanation)
		_, _ = fmt.Fprintf(r.writer, "  %s\n", step.Left)
		_, _ = fmt.Fprintf(r.writer, "  %s\n", step.Right)
		_, _ = fmt.Fprintln(r.writer)
	}

	if len(steps) == 0 {
		_, _ = fmt.Fprintln(r.writer, "Already in BCNF; no decomposition needed.")
		_, _ = fmt.Fprintln(r.writer)
	}

	_, _ = fmt.Fprintln(r.writer, "FINAL SCHEMAS:")
	for _, rel := range finals {
		_, _ = fmt.Fprintf(r.writer, "  %s\n", rel)
	}
	return nil
}

func joinSorted(s schema.AttrSet) string {
	return strings.Join(s.Sorted(), ", ")
}
