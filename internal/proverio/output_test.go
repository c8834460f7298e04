package proverio

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clauseforge/resolvent/pkg/fopc"
)

func TestWriteReportNoContradiction(t *testing.T) {
	outcome, err := fopc.Prove(context.Background(), []string{"p(A)"}, []string{"~q(A)"}, fopc.Limits{})
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, WriteReport(&buf, outcome))

	got := buf.String()
	assert.Contains(t, got, "Initial knowledge base clauses are:")
	assert.Contains(t, got, "Clause 0\t| [p(A)]")
	assert.Contains(t, got, "Clause 1\t| [~q(A)]")
	assert.Contains(t, got, "Knowledge base does not contradict.")
}

func TestWriteReportContradiction(t *testing.T) {
	outcome, err := fopc.Prove(context.Background(), []string{"q(A)"}, []string{"~q(A)"}, fopc.Limits{})
	require.NoError(t, err)
	require.True(t, outcome.Proved)

	var buf strings.Builder
	require.NoError(t, WriteReport(&buf, outcome))

	got := buf.String()
	assert.Contains(t, got, "Knowledge base contradicts, so inverse of the negated target clause is provable.")
	assert.Contains(t, got, "Prove by refutation resolution order will be shown.")
	for _, line := range outcome.Trace {
		assert.Contains(t, got, line.String())
	}
}
