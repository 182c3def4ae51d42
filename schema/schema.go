// Package schema provides the core types and algorithms for relational
// schema normalization.
//
// This package contains the data model shared by every other relnorm
// package (attribute sets, functional dependencies, relation schemas) and
// the four normalization algorithms built on top of it:
//
//  1. Attribute closure (Closure) - fixed-point computation of X⁺
//  2. Candidate key search (CandidateKeys) - all minimal superkeys
//  3. Normal-form classification (DetermineNormalForm) - 1NF through BCNF
//  4. BCNF decomposition (Decompose) - lossless-join splitting
//
// # Key Types
//
// AttrSet is an unordered set of case-sensitive attribute names. All
// algorithms operate on AttrSets; ordering only matters for display, where
// Sorted and String provide deterministic output.
//
// FD represents one functional dependency "determinant -> dependent".
// FDs are carried in declaration order: order never affects the computed
// closures or keys, but violation reporting and decomposition walk the
// list front to back, so identical input always produces the identical
// trace.
//
// Relation is a named attribute set. Decomposition treats the name as
// part of the schema's identity; children are suffixed _1/_2 relative to
// their parent.
//
// # Purity
//
// Every function in this package is a pure function of its arguments:
// no retained state, no I/O, no mutation of the caller's sets. Distinct
// analyses may run concurrently from separate goroutines without
// coordination.
//
// # Relationship to Other Packages
//
// The schema package is dependency-free (stdlib only) and imported by the
// root relnorm package (analysis facade), pkg/parser (text input),
// internal/sqlgen (DDL generation), and internal/render (reports).
package schema

import (
	"encoding/json"
	"sort"
	"strings"
)

// AttrSet is an unordered collection of unique attribute names.
// Attributes are compared by exact value; no case folding.
//
// A nil AttrSet behaves as the empty set for all read operations.
type AttrSet map[string]struct{}

// NewAttrSet builds a set from the given attribute names.
func NewAttrSet(attrs ...string) AttrSet {
	s := make(AttrSet, len(attrs))
	for _, a := range attrs {
		s[a] = struct{}{}
	}
	return s
}

// Add inserts an attribute into the set.
func (s AttrSet) Add(attr string) {
	s[attr] = struct{}{}
}

// Contains reports whether attr is a member of the set.
func (s AttrSet) Contains(attr string) bool {
	_, ok := s[attr]
	return ok
}

// ContainsAll reports whether every member of other is in s,
// i.e. other ⊆ s. The empty set is a subset of everything.
func (s AttrSet) ContainsAll(other AttrSet) bool {
	for a := range other {
		if !s.Contains(a) {
			return false
		}
	}
	return true
}

// Equal reports set equality.
func (s AttrSet) Equal(other AttrSet) bool {
	return len(s) == len(other) && s.ContainsAll(other)
}

// ProperSubsetOf reports whether s ⊂ other (subset and not equal).
func (s AttrSet) ProperSubsetOf(other AttrSet) bool {
	return len(s) < len(other) && other.ContainsAll(s)
}

// Clone returns an independent copy of the set.
func (s AttrSet) Clone() AttrSet {
	out := make(AttrSet, len(s))
	for a := range s {
		out[a] = struct{}{}
	}
	return out
}

// Union returns a new set containing the members of both sets.
func (s AttrSet) Union(other AttrSet) AttrSet {
	out := make(AttrSet, len(s)+len(other))
	for a := range s {
		out[a] = struct{}{}
	}
	for a := range other {
		out[a] = struct{}{}
	}
	return out
}

// Minus returns a new set containing the members of s not in other.
func (s AttrSet) Minus(other AttrSet) AttrSet {
	out := make(AttrSet, len(s))
	for a := range s {
		if !other.Contains(a) {
			out[a] = struct{}{}
		}
	}
	return out
}

// Intersect returns a new set containing the members present in both sets.
func (s AttrSet) Intersect(other AttrSet) AttrSet {
	out := make(AttrSet)
	for a := range s {
		if other.Contains(a) {
			out[a] = struct{}{}
		}
	}
	return out
}

// Sorted returns the attribute names in lexicographic order.
// Sorting gives deterministic output for reports, DDL, and tests.
func (s AttrSet) Sorted() []string {
	attrs := make([]string, 0, len(s))
	for a := range s {
		attrs = append(attrs, a)
	}
	sort.Strings(attrs)
	return attrs
}

// String renders the set as "{A, B, C}" in sorted order.
func (s AttrSet) String() string {
	return "{" + strings.Join(s.Sorted(), ", ") + "}"
}

// MarshalJSON encodes the set as a sorted array of attribute names so
// analyses serialize cleanly to JSON and YAML.
func (s AttrSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes an array of attribute names.
func (s *AttrSet) UnmarshalJSON(data []byte) error {
	var attrs []string
	if err := json.Unmarshal(data, &attrs); err != nil {
		return err
	}
	*s = NewAttrSet(attrs...)
	return nil
}

// FD is a functional dependency: the determinant set uniquely determines
// the dependent set over all tuples of a relation.
type FD struct {
	Determinant AttrSet `json:"determinant"`
	Dependent   AttrSet `json:"dependent"`
}

// String renders the FD as "A, B -> C" with both sides sorted.
func (fd FD) String() string {
	return strings.Join(fd.Determinant.Sorted(), ", ") + " -> " + strings.Join(fd.Dependent.Sorted(), ", ")
}

// Relation is a named attribute set. Two relations with the same
// attributes but different names are distinct schemas.
type Relation struct {
	Name  string  `json:"name"`
	Attrs AttrSet `json:"attributes"`
}

// String renders the relation as "Name(A, B, C)".
func (r Relation) String() string {
	return r.Name + "(" + strings.Join(r.Attrs.Sorted(), ", ") + ")"
}

// NormalForm identifies the highest normal form a schema satisfies.
type NormalForm string

// Normal forms in increasing strictness.
const (
	NF1  NormalForm = "1NF"
	NF2  NormalForm = "2NF"
	NF3  NormalForm = "3NF"
	BCNF NormalForm = "BCNF"
)

// Violation reasons attached to reported FDs.
const (
	// ReasonPartialDependency marks a 2NF violation: a non-prime
	// attribute depends on a proper subset of a candidate key.
	ReasonPartialDependency = "Partial dependency"

	// ReasonTransitiveDependency marks a 3NF violation: a non-prime
	// attribute depends on a non-superkey determinant that is not part
	// of any key.
	ReasonTransitiveDependency = "Transitive dependency"

	// ReasonNotSuperkey marks a BCNF violation.
	ReasonNotSuperkey = "LHS is not a superkey"
)

// Violation reports one functional dependency that breaks a normal form.
// Dependent holds only the offending attributes (the dependent side minus
// the determinant, further reduced to non-prime attributes for 2NF/3NF
// violations).
type Violation struct {
	Determinant AttrSet `json:"determinant"`
	Dependent   AttrSet `json:"dependent"`
	Reason      string  `json:"reason"`
}

// String renders the violation as "A -> B (reason)".
func (v Violation) String() string {
	return strings.Join(v.Determinant.Sorted(), ", ") + " -> " +
		strings.Join(v.Dependent.Sorted(), ", ") + " (" + v.Reason + ")"
}

// RHSUnion returns the union of every FD's dependent side. Attributes
// outside this union can never be derived and must be part of every
// candidate key.
func RHSUnion(fds []FD) AttrSet {
	union := make(AttrSet)
	for _, fd := range fds {
		for a := range fd.Dependent {
			union[a] = struct{}{}
		}
	}
	return union
}

// PrimeAttributes returns the union of all attributes appearing in any
// candidate key.
func PrimeAttributes(keys []AttrSet) AttrSet {
	prime := make(AttrSet)
	for _, k := range keys {
		for a := range k {
			prime[a] = struct{}{}
		}
	}
	return prime
}
