package relnorm_test

import (
	"testing"

	"github.com/pthm/relnorm"
	"github.com/pthm/relnorm/schema"
)

const marketplaceRelation = "Marketplace(MilestoneID, GigID, Amount, ClientID, FreelancerID, Title, GigBudget, CompanyName, FreelancerName)"

const marketplaceFDs = `
MilestoneID -> GigID, Amount
GigID -> ClientID, FreelancerID, Title, GigBudget
ClientID -> CompanyName
FreelancerID -> FreelancerName
`

func TestAnalyzeBCNF(t *testing.T) {
	a, err := relnorm.Analyze("Gigs(GigID, Title, ClientID)", "GigID -> Title, ClientID")
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	if a.NormalForm != schema.BCNF {
		t.Errorf("NormalForm = %s, want %s", a.NormalForm, schema.BCNF)
	}
	if len(a.Keys) != 1 || !a.Keys[0].Equal(schema.NewAttrSet("GigID")) {
		t.Errorf("Keys = %v, want [{GigID}]", a.Keys)
	}
	if !a.Prime.Equal(schema.NewAttrSet("GigID")) {
		t.Errorf("Prime = %v, want {GigID}", a.Prime)
	}
	if len(a.Violations) != 0 {
		t.Errorf("Violations = %v, want none", a.Violations)
	}
}

func TestAnalyzeMarketplace(t *testing.T) {
	a, err := relnorm.Analyze(marketplaceRelation, marketplaceFDs)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	if a.NormalForm != schema.NF2 {
		t.Errorf("NormalForm = %s, want %s", a.NormalForm, schema.NF2)
	}
	if len(a.Keys) != 1 || !a.Keys[0].Equal(schema.NewAttrSet("MilestoneID")) {
		t.Errorf("Keys = %v, want [{MilestoneID}]", a.Keys)
	}
	if len(a.Violations) != 3 {
		t.Errorf("got %d violations, want 3", len(a.Violations))
	}
	for _, v := range a.Violations {
		if v.Reason != schema.ReasonTransitiveDependency {
			t.Errorf("violation %s has reason %q, want %q", v, v.Reason, schema.ReasonTransitiveDependency)
		}
	}
}

func TestAnalyzeParseErrors(t *testing.T) {
	if _, err := relnorm.Analyze("not a relation (", "A -> B"); err == nil {
		t.Error("Analyze() with bad relation text should fail")
	}
	if _, err := relnorm.Analyze("R(A, B)", "A ->"); err == nil {
		t.Error("Analyze() with bad FD text should fail")
	}
}

func TestClosure(t *testing.T) {
	a, err := relnorm.Analyze(marketplaceRelation, marketplaceFDs)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	cl, err := a.Closure("GigID")
	if err != nil {
		t.Fatalf("Closure() error: %v", err)
	}
	want := schema.NewAttrSet("GigID", "ClientID", "FreelancerID", "Title", "GigBudget", "CompanyName", "FreelancerName")
	if !cl.Equal(want) {
		t.Errorf("Closure(GigID) = %s, want %s", cl, want)
	}
}

func TestClosureEmptySelection(t *testing.T) {
	a, err := relnorm.Analyze("R(A, B)", "A -> B")
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	_, err = a.Closure()
	if !relnorm.IsEmptySelectionErr(err) {
		t.Errorf("Closure() error = %v, want ErrEmptySelection", err)
	}
}

func TestClosureForeignAttribute(t *testing.T) {
	a, err := relnorm.Analyze("R(A, B)", "A -> B")
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	cl, err := a.Closure("Z")
	if err != nil {
		t.Fatalf("Closure() error: %v", err)
	}
	if !cl.Equal(schema.NewAttrSet("Z")) {
		t.Errorf("Closure(Z) = %s, want {Z}", cl)
	}
}

func TestAttributeClosures(t *testing.T) {
	a, err := relnorm.Analyze("R(A, B, C)", "A -> B\nB -> C")
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	closures := a.AttributeClosures()
	if len(closures) != 3 {
		t.Fatalf("got %d closures, want 3", len(closures))
	}

	// Sorted attribute order.
	wantAttrs := []string{"A", "B", "C"}
	wantClosures := []schema.AttrSet{
		schema.NewAttrSet("A", "B", "C"),
		schema.NewAttrSet("B", "C"),
		schema.NewAttrSet("C"),
	}
	for i, ac := range closures {
		if ac.Attr != wantAttrs[i] {
			t.Errorf("closures[%d].Attr = %s, want %s", i, ac.Attr, wantAttrs[i])
		}
		if !ac.Closure.Equal(wantClosures[i]) {
			t.Errorf("closures[%d].Closure = %s, want %s", i, ac.Closure, wantClosures[i])
		}
	}
}

func TestDecompose(t *testing.T) {
	a, err := relnorm.Analyze(marketplaceRelation, marketplaceFDs)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	steps, finals, err := a.Decompose()
	if err != nil {
		t.Fatalf("Decompose() error: %v", err)
	}
	if len(steps) != 3 {
		t.Errorf("got %d steps, want 3", len(steps))
	}
	if len(finals) != 4 {
		t.Errorf("got %d final schemas, want 4", len(finals))
	}
}

func TestDecomposeAlreadyBCNF(t *testing.T) {
	a, err := relnorm.Analyze("Gigs(GigID, Title)", "GigID -> Title")
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	steps, finals, err := a.Decompose()
	if err != nil {
		t.Fatalf("Decompose() error: %v", err)
	}
	if len(steps) != 0 {
		t.Errorf("got %d steps, want 0", len(steps))
	}
	if len(finals) != 1 || finals[0].Name != "Gigs" {
		t.Errorf("finals = %v, want the original relation", finals)
	}
}
