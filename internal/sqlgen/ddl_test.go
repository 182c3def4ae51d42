package sqlgen_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pthm/relnorm/internal/sqlgen"
	"github.com/pthm/relnorm/schema"
)

func TestCreateTableTypes(t *testing.T) {
	rel := schema.Relation{
		Name:  "Gigs",
		Attrs: schema.NewAttrSet("GigID", "Title", "GigBudget", "PostedDate", "Description"),
	}
	fds := []schema.FD{{
		Determinant: schema.NewAttrSet("GigID"),
		Dependent:   schema.NewAttrSet("Title", "GigBudget", "PostedDate", "Description"),
	}}

	tables := sqlgen.Statements([]schema.Relation{rel}, fds)
	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(tables))
	}
	if tables[0].Name != "Gigs" {
		t.Errorf("Name = %s, want Gigs", tables[0].Name)
	}

	sql := tables[0].SQL
	for _, want := range []string{
		"CREATE TABLE Gigs (",
		"GigID INT,",
		"GigBudget DECIMAL(10, 2),",
		"PostedDate DATE,",
		"Description TEXT,",
		"Title VARCHAR(255),",
		"PRIMARY KEY (GigID)",
		");",
	} {
		if !strings.Contains(sql, want) {
			t.Errorf("SQL missing %q:\n%s", want, sql)
		}
	}
}

func TestPrimaryKeyFallback(t *testing.T) {
	// No dependency keys this relation, so every attribute joins the key.
	rel := schema.Relation{Name: "Enrollment", Attrs: schema.NewAttrSet("StudentID", "CourseID")}

	tables := sqlgen.Statements([]schema.Relation{rel}, nil)
	if !strings.Contains(tables[0].SQL, "PRIMARY KEY (CourseID, StudentID)") {
		t.Errorf("expected composite key fallback:\n%s", tables[0].SQL)
	}
}

func TestPrimaryKeyFirstApplicableFD(t *testing.T) {
	rel := schema.Relation{Name: "Clients", Attrs: schema.NewAttrSet("ClientID", "CompanyName")}
	fds := []schema.FD{
		// Outside this relation; must be skipped.
		{Determinant: schema.NewAttrSet("GigID"), Dependent: schema.NewAttrSet("ClientID")},
		{Determinant: schema.NewAttrSet("ClientID"), Dependent: schema.NewAttrSet("CompanyName")},
	}

	tables := sqlgen.Statements([]schema.Relation{rel}, fds)
	if !strings.Contains(tables[0].SQL, "PRIMARY KEY (ClientID)") {
		t.Errorf("expected ClientID key:\n%s", tables[0].SQL)
	}
}

func TestWriteDDL(t *testing.T) {
	relations := []schema.Relation{
		{Name: "Clients", Attrs: schema.NewAttrSet("ClientID", "CompanyName")},
		{Name: "Freelancers", Attrs: schema.NewAttrSet("FreelancerID", "FreelancerName")},
	}
	fds := []schema.FD{
		{Determinant: schema.NewAttrSet("ClientID"), Dependent: schema.NewAttrSet("CompanyName")},
		{Determinant: schema.NewAttrSet("FreelancerID"), Dependent: schema.NewAttrSet("FreelancerName")},
	}

	var buf bytes.Buffer
	if err := sqlgen.WriteDDL(&buf, relations, fds); err != nil {
		t.Fatalf("WriteDDL() error: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "-- Generated schema: 2 table(s)") {
		t.Errorf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "CREATE TABLE Clients") || !strings.Contains(out, "CREATE TABLE Freelancers") {
		t.Errorf("missing tables:\n%s", out)
	}
	// Clients must precede Freelancers, matching input order.
	if strings.Index(out, "Clients") > strings.Index(out, "Freelancers") {
		t.Errorf("tables out of order:\n%s", out)
	}
}
