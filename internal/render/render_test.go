package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/relnorm"
	"github.com/pthm/relnorm/internal/render"
	"github.com/pthm/relnorm/schema"
)

func TestTextAnalysis(t *testing.T) {
	a, err := relnorm.Analyze("Gigs(GigID, Title, ClientID)", "GigID -> Title, ClientID")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.NewTextRenderer(&buf).Analysis(a))

	out := buf.String()
	assert.Contains(t, out, "RELATION Gigs(ClientID, GigID, Title)")
	assert.Contains(t, out, "GigID -> ClientID, Title")
	assert.Contains(t, out, "CANDIDATE KEYS:")
	assert.Contains(t, out, "{GigID}")
	assert.Contains(t, out, "NORMAL FORM: BCNF")
	assert.NotContains(t, out, "VIOLATIONS:")
}

func TestTextAnalysisViolations(t *testing.T) {
	a, err := relnorm.Analyze("R(A, B, C)", "A -> B\nB -> C")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.NewTextRenderer(&buf).Analysis(a))

	out := buf.String()
	assert.Contains(t, out, "NORMAL FORM: 2NF")
	assert.Contains(t, out, "VIOLATIONS:")
	assert.Contains(t, out, "Transitive dependency")
}

func TestTextClosures(t *testing.T) {
	a, err := relnorm.Analyze("R(A, B)", "A -> B")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.NewTextRenderer(&buf).Closures(a.AttributeClosures()))

	out := buf.String()
	assert.Contains(t, out, "A+ = {A, B}")
	assert.Contains(t, out, "B+ = {B}")
}

func TestTextDecomposition(t *testing.T) {
	a, err := relnorm.Analyze("R(A, B, C)", "A -> B\nB -> C")
	require.NoError(t, err)
	steps, finals, err := a.Decompose()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.NewTextRenderer(&buf).Decomposition(steps, finals))

	out := buf.String()
	assert.Contains(t, out, "STEP 1:")
	assert.Contains(t, out, "FINAL SCHEMAS:")
}

func TestTextDecompositionNoSteps(t *testing.T) {
	var buf bytes.Buffer
	finals := []schema.Relation{{Name: "R", Attrs: schema.NewAttrSet("A", "B")}}
	require.NoError(t, render.NewTextRenderer(&buf).Decomposition(nil, finals))
	assert.Contains(t, buf.String(), "Already in BCNF")
}

func TestWriteDOT(t *testing.T) {
	fds := []schema.FD{
		{Determinant: schema.NewAttrSet("A"), Dependent: schema.NewAttrSet("B", "C")},
		{Determinant: schema.NewAttrSet("B"), Dependent: schema.NewAttrSet("C")},
	}

	var buf bytes.Buffer
	require.NoError(t, render.WriteDOT(&buf, schema.NewAttrSet("A", "B", "C", "D"), fds))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "digraph dependencies {"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "}"))
	for _, want := range []string{
		`"A";`, `"D";`,
		`"A" -> "B";`, `"A" -> "C";`, `"B" -> "C";`,
	} {
		assert.Contains(t, out, want)
	}
	// One edge per pair even when dependencies overlap.
	assert.Equal(t, 1, strings.Count(out, `"B" -> "C";`))
}
