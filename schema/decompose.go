package schema

import "fmt"

// maxDecomposeIterations caps the work-queue loop. A well-formed FD set
// always converges because each split strictly shrinks at least one
// child, but degenerate input must not spin forever.
const maxDecomposeIterations = 50

// Step records one BCNF split: the schema that was decomposed, the
// violating dependency (determinant and the attributes it determines
// inside that schema), and the two children it produced.
type Step struct {
	Source      Relation `json:"source"`
	ViolatingFD FD       `json:"violating_fd"`
	Left        Relation `json:"left"`
	Right       Relation `json:"right"`
	Explanation string   `json:"explanation"`
}

// Decompose performs a lossless-join BCNF decomposition of the relation.
// Dependency preservation is not guaranteed; that is the standard BCNF
// tradeoff.
//
// The decomposition runs a work queue seeded with the input schema. Each
// iteration pops the head schema and scans the FULL FD list in
// declaration order for the first dependency L -> R with L inside the
// schema whose projected closure (Closure(L, fds) ∩ schema attributes)
// determines something beyond L without covering the whole schema - a
// BCNF violation local to that schema. The schema splits into
//
//	name_1 = L ∪ determined
//	name_2 = attrs − (determined − L)
//
// and both children re-enter the queue. Schemas with no violation are
// final. Child names reuse the parent's name with _1/_2 suffixes, which
// stays unique unless the original name already ends in a colliding
// suffix pattern - a known, accepted limitation.
//
// Closures are always computed over the original FD list, never a
// projection, so dependencies inherited through removed attributes keep
// applying to the children.
//
// If the iteration cap is reached with schemas still queued, Decompose
// returns the steps and finals produced so far together with
// ErrNoConvergence; callers must not treat such a partial result as a
// verified decomposition.
func Decompose(name string, attrs AttrSet, fds []FD) ([]Step, []Relation, error) {
	var steps []Step
	var finals []Relation

	queue := []Relation{{Name: name, Attrs: attrs}}

	for iterations := 0; len(queue) > 0 && iterations < maxDecomposeIterations; iterations++ {
		current := queue[0]
		queue = queue[1:]

		violation, found := findLocalViolation(current.Attrs, fds)
		if !found {
			finals = append(finals, current)
			continue
		}

		left := Relation{
			Name:  current.Name + "_1",
			Attrs: violation.Determinant.Union(violation.Dependent),
		}
		right := Relation{
			Name:  current.Name + "_2",
			Attrs: current.Attrs.Minus(violation.Dependent.Minus(violation.Determinant)),
		}

		steps = append(steps, Step{
			Source:      current,
			ViolatingFD: violation,
			Left:        left,
			Right:       right,
			Explanation: fmt.Sprintf(
				"Decomposed %s because %s -> %s violates BCNF. %s determines %s but is not a superkey.",
				current.Name,
				violation.Determinant, violation.Dependent,
				violation.Determinant, violation.Dependent,
			),
		})

		queue = append(queue, left, right)
	}

	if len(queue) > 0 {
		return steps, finals, fmt.Errorf("%w: %d schemas still pending after %d iterations",
			ErrNoConvergence, len(queue), maxDecomposeIterations)
	}

	return steps, finals, nil
}

// findLocalViolation returns the first FD, in declaration order, that
// violates BCNF within the given attribute set: its determinant lies in
// attrs, determines at least one further attribute of attrs, yet its
// projected closure does not cover attrs.
func findLocalViolation(attrs AttrSet, fds []FD) (FD, bool) {
	for _, fd := range fds {
		if !attrs.ContainsAll(fd.Determinant) {
			continue
		}

		localClosure := Closure(fd.Determinant, fds).Intersect(attrs)
		determined := localClosure.Minus(fd.Determinant)
		if len(determined) == 0 {
			continue
		}

		if !localClosure.ContainsAll(attrs) {
			return FD{Determinant: fd.Determinant, Dependent: determined}, true
		}
	}
	return FD{}, false
}
