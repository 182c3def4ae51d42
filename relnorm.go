// Package relnorm analyzes relational schemas for normal-form compliance
// and decomposes them to Boyce-Codd Normal Form.
//
// # Module Structure
//
// The module is split by concern:
//
//   - github.com/pthm/relnorm (root): Analysis facade tying the pieces together.
//   - github.com/pthm/relnorm/schema: Closure, candidate keys, normal forms, decomposition. Stdlib only.
//   - github.com/pthm/relnorm/pkg/parser: Text formats for relations and functional dependencies.
//   - github.com/pthm/relnorm/pkg/migrator: Applies decomposed schemas to PostgreSQL.
//
// Most programs import the root package; the schema package is available
// directly when the inputs are already structured.
//
// # Basic Usage
//
//	a, err := relnorm.Analyze(
//	    "Gigs(GigID, Title, ClientID)",
//	    "GigID -> Title, ClientID",
//	)
//	fmt.Println(a.NormalForm)   // BCNF
//	fmt.Println(a.Keys)         // [{GigID}]
//
// # Decomposition
//
//	steps, finals, err := a.Decompose()
//
// Each step records the violating dependency and the two fragments it
// produced; finals holds the resulting BCNF schemas.
//
// # Closures
//
//	cl, err := a.Closure("GigID")
//	// cl contains every attribute GigID determines
package relnorm

import (
	"fmt"

	"github.com/pthm/relnorm/pkg/parser"
	"github.com/pthm/relnorm/schema"
)

// Analysis holds the full normalization report for one relation.
//
// The zero value is not usable; construct with New or Analyze. All fields
// are computed eagerly at construction so an Analysis can be marshaled
// directly for machine-readable output.
type Analysis struct {
	Relation    schema.Relation    `json:"relation"`
	FDs         []schema.FD        `json:"fds"`
	Keys        []schema.AttrSet   `json:"candidateKeys"`
	Prime       schema.AttrSet     `json:"primeAttributes"`
	NormalForm  schema.NormalForm  `json:"normalForm"`
	Explanation string             `json:"explanation"`
	Violations  []schema.Violation `json:"violations,omitempty"`
}

// New computes the normalization report for a relation and its
// functional dependencies.
func New(rel schema.Relation, fds []schema.FD) *Analysis {
	keys := schema.CandidateKeys(rel.Attrs, fds)
	nf, explanation, violations := schema.DetermineNormalForm(rel.Attrs, fds, keys)

	return &Analysis{
		Relation:    rel,
		FDs:         fds,
		Keys:        keys,
		Prime:       schema.PrimeAttributes(keys),
		NormalForm:  nf,
		Explanation: explanation,
		Violations:  violations,
	}
}

// Analyze parses the relation and dependency text and computes the
// normalization report. It is the text-input counterpart of New.
func Analyze(relationText, fdsText string) (*Analysis, error) {
	rel, err := parser.ParseRelation(relationText)
	if err != nil {
		return nil, err
	}
	fds, err := parser.ParseFDs(fdsText)
	if err != nil {
		return nil, err
	}
	return New(rel, fds), nil
}

// Closure computes the attribute closure of the named attributes under
// the analysis' dependencies. Attributes outside the relation are
// permitted; they simply contribute themselves and whatever they
// determine. An empty selection returns ErrEmptySelection.
func (a *Analysis) Closure(attrs ...string) (schema.AttrSet, error) {
	if len(attrs) == 0 {
		return nil, ErrEmptySelection
	}
	return schema.Closure(schema.NewAttrSet(attrs...), a.FDs), nil
}

// AttributeClosure pairs a single attribute with its closure.
type AttributeClosure struct {
	Attr    string         `json:"attr"`
	Closure schema.AttrSet `json:"closure"`
}

// AttributeClosures computes the closure of every single attribute of
// the relation, in sorted attribute order.
func (a *Analysis) AttributeClosures() []AttributeClosure {
	attrs := a.Relation.Attrs.Sorted()
	closures := make([]AttributeClosure, 0, len(attrs))
	for _, attr := range attrs {
		closures = append(closures, AttributeClosure{
			Attr:    attr,
			Closure: schema.Closure(schema.NewAttrSet(attr), a.FDs),
		})
	}
	return closures
}

// Decompose runs the BCNF decomposition on the analyzed relation.
// When the relation already satisfies BCNF the step list is empty and
// the final schemas contain just the original relation.
func (a *Analysis) Decompose() ([]schema.Step, []schema.Relation, error) {
	steps, finals, err := schema.Decompose(a.Relation.Name, a.Relation.Attrs, a.FDs)
	if err != nil {
		return steps, finals, fmt.Errorf("decomposing %s: %w", a.Relation.Name, err)
	}
	return steps, finals, nil
}
