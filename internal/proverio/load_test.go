package proverio

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateClausesAllWellFormed(t *testing.T) {
	logger := hclog.NewNullLogger()
	err := ValidateClauses(logger, []string{"p(A)", "q(x),~p(x)"}, []string{"~q(A)"})
	require.NoError(t, err)
}

func TestValidateClausesAggregatesFailures(t *testing.T) {
	logger := hclog.NewNullLogger()
	err := ValidateClauses(logger, []string{"P(A)", "q()"}, []string{"~q(A)", "r(A"})
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "knowledge_base[0]")
	assert.Contains(t, msg, "knowledge_base[1]")
	assert.Contains(t, msg, "negated_theorem_predicates[1]")
}
