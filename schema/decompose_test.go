package schema_test

import (
	"testing"

	"github.com/pthm/relnorm/schema"
)

func TestDecompose_AlreadyBCNF(t *testing.T) {
	attrs := schema.NewAttrSet("GigID", "ClientID", "FreelancerID", "Title", "Description", "Budget", "Status")
	fds := []schema.FD{
		{
			Determinant: schema.NewAttrSet("GigID"),
			Dependent:   schema.NewAttrSet("ClientID", "FreelancerID", "Title", "Description", "Budget", "Status"),
		},
	}

	steps, finals, err := schema.Decompose("Gigs", attrs, fds)
	if err != nil {
		t.Fatalf("Decompose: %v", err)
	}

	if len(steps) != 0 {
		t.Errorf("got %d steps, want 0 for a BCNF schema", len(steps))
	}
	if len(finals) != 1 || finals[0].Name != "Gigs" || !finals[0].Attrs.Equal(attrs) {
		t.Errorf("finals = %v, want the input schema unchanged", finals)
	}
}

func TestDecompose_Marketplace(t *testing.T) {
	attrs := schema.NewAttrSet("MilestoneID", "GigID", "ClientID", "CompanyName",
		"FreelancerID", "FreelancerName", "Title", "GigBudget", "Amount")
	fds := marketplaceFDs()

	steps, finals, err := schema.Decompose("Marketplace", attrs, fds)
	if err != nil {
		t.Fatalf("Decompose: %v", err)
	}

	if len(steps) != 3 {
		t.Fatalf("got %d steps, want 3", len(steps))
	}
	if len(finals) != 4 {
		t.Fatalf("got %d final schemas %v, want 4", len(finals), finals)
	}

	// All 9 original attributes must survive across the final schemas.
	covered := make(schema.AttrSet)
	for _, r := range finals {
		covered = covered.Union(r.Attrs)
	}
	if !covered.Equal(attrs) {
		t.Errorf("final schemas cover %v, want %v", covered, attrs)
	}

	// Each chained determinant keys exactly one resulting table.
	for _, det := range []string{"MilestoneID", "GigID", "ClientID", "FreelancerID"} {
		keyed := 0
		for _, r := range finals {
			if !r.Attrs.Contains(det) {
				continue
			}
			if schema.Closure(schema.NewAttrSet(det), fds).Intersect(r.Attrs).Equal(r.Attrs) {
				keyed++
			}
		}
		if keyed != 1 {
			t.Errorf("determinant %s keys %d final schemas, want exactly 1", det, keyed)
		}
	}

	assertDecompositionProperties(t, steps, finals, fds)
}

func TestDecompose_GigMix(t *testing.T) {
	// GigMix(GigID, ClientID, FreelancerID, Title, Budget, MilestoneID, Amount)
	// with GigID -> ClientID, FreelancerID, Title, Budget declared first:
	// a single split separates the gig attributes from the milestone ones.
	attrs := schema.NewAttrSet("GigID", "ClientID", "FreelancerID", "Title", "Budget", "MilestoneID", "Amount")
	fds := []schema.FD{
		{Determinant: schema.NewAttrSet("GigID"), Dependent: schema.NewAttrSet("ClientID", "FreelancerID", "Title", "Budget")},
		{Determinant: schema.NewAttrSet("MilestoneID"), Dependent: schema.NewAttrSet("GigID", "Amount")},
	}

	steps, finals, err := schema.Decompose("GigMix", attrs, fds)
	if err != nil {
		t.Fatalf("Decompose: %v", err)
	}

	if len(steps) != 1 {
		t.Fatalf("got %d steps, want 1", len(steps))
	}
	if len(finals) != 2 {
		t.Fatalf("got %d final schemas %v, want 2", len(finals), finals)
	}

	step := steps[0]
	if !step.ViolatingFD.Determinant.Equal(schema.NewAttrSet("GigID")) {
		t.Errorf("violating determinant = %v, want {GigID}", step.ViolatingFD.Determinant)
	}
	if step.Left.Name != "GigMix_1" || step.Right.Name != "GigMix_2" {
		t.Errorf("child names = %s, %s, want GigMix_1, GigMix_2", step.Left.Name, step.Right.Name)
	}
	if !step.Left.Attrs.Equal(schema.NewAttrSet("GigID", "ClientID", "FreelancerID", "Title", "Budget")) {
		t.Errorf("left child attrs = %v", step.Left.Attrs)
	}
	if !step.Right.Attrs.Equal(schema.NewAttrSet("GigID", "MilestoneID", "Amount")) {
		t.Errorf("right child attrs = %v", step.Right.Attrs)
	}

	assertDecompositionProperties(t, steps, finals, fds)
}

func TestDecompose_TransitiveChain(t *testing.T) {
	// R(A,B,C), A -> B, B -> C: first split on A (its local closure is
	// everything minus nothing... it is a superkey), so the violation is
	// B -> C, yielding R_1(B,C) and R_2(A,B).
	attrs := schema.NewAttrSet("A", "B", "C")
	fds := []schema.FD{
		{Determinant: schema.NewAttrSet("A"), Dependent: schema.NewAttrSet("B")},
		{Determinant: schema.NewAttrSet("B"), Dependent: schema.NewAttrSet("C")},
	}

	steps, finals, err := schema.Decompose("R", attrs, fds)
	if err != nil {
		t.Fatalf("Decompose: %v", err)
	}

	if len(steps) != 1 {
		t.Fatalf("got %d steps %v, want 1", len(steps), steps)
	}
	if !steps[0].ViolatingFD.Determinant.Equal(schema.NewAttrSet("B")) {
		t.Errorf("violating determinant = %v, want {B}", steps[0].ViolatingFD.Determinant)
	}
	if len(finals) != 2 {
		t.Fatalf("got %d final schemas, want 2", len(finals))
	}

	assertDecompositionProperties(t, steps, finals, fds)
}

func TestDecompose_NoConvergence(t *testing.T) {
	// A wide relation of pairwise-keyed fragments forces one split per
	// fragment; enough fragments exhaust the iteration cap before the
	// queue drains.
	attrs := make(schema.AttrSet)
	var fds []schema.FD
	for _, base := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J",
		"K", "L", "M", "N", "O", "P", "Q", "R", "S", "T",
		"U", "V", "W", "X", "Y", "Z", "AA", "AB", "AC", "AD"} {
		id := base + "1"
		val := base + "2"
		attrs.Add(id)
		attrs.Add(val)
		fds = append(fds, schema.FD{
			Determinant: schema.NewAttrSet(id),
			Dependent:   schema.NewAttrSet(val),
		})
	}

	_, _, err := schema.Decompose("Wide", attrs, fds)

	if err == nil {
		t.Fatal("expected a non-convergence error")
	}
	if !schema.IsNoConvergenceErr(err) {
		t.Errorf("error = %v, want ErrNoConvergence", err)
	}
}

// assertDecompositionProperties checks structural losslessness of every
// step and that every final schema is locally BCNF.
func assertDecompositionProperties(t *testing.T, steps []schema.Step, finals []schema.Relation, fds []schema.FD) {
	t.Helper()

	for _, step := range steps {
		shared := step.Left.Attrs.Intersect(step.Right.Attrs)
		if !shared.ContainsAll(step.ViolatingFD.Determinant) {
			t.Errorf("step %s: children share %v, want at least the determinant %v",
				step.Source.Name, shared, step.ViolatingFD.Determinant)
		}
		union := step.Left.Attrs.Union(step.Right.Attrs)
		if !union.ContainsAll(step.Source.Attrs) {
			t.Errorf("step %s: children union %v drops source attributes %v",
				step.Source.Name, union, step.Source.Attrs.Minus(union))
		}
	}

	for _, r := range finals {
		for _, fd := range fds {
			if !r.Attrs.ContainsAll(fd.Determinant) {
				continue
			}
			local := schema.Closure(fd.Determinant, fds).Intersect(r.Attrs)
			determined := local.Minus(fd.Determinant)
			if len(determined) > 0 && !local.ContainsAll(r.Attrs) {
				t.Errorf("final schema %s still violates BCNF via %s", r, fd)
			}
		}
	}
}
