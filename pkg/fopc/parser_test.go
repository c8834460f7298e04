package fopc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClauseSingleLiteral(t *testing.T) {
	c, err := ParseClause("p(x,A)")
	require.NoError(t, err)
	require.Len(t, c.Literals, 1)
	assert.Equal(t, "p(x,A)", c.Literals[0].String())
	assert.False(t, c.Literals[0].Negated)
}

func TestParseClauseNegatedAndNested(t *testing.T) {
	c, err := ParseClause("~p(z,f(B)),q(z)")
	require.NoError(t, err)
	require.Len(t, c.Literals, 2)
	assert.Equal(t, "[~p(z,f(B)), q(z)]", c.String())
}

func TestParseClauseCanonicalOrderIgnoresNegationMarker(t *testing.T) {
	c, err := ParseClause("r(y),~q(y)")
	require.NoError(t, err)
	require.Len(t, c.Literals, 2)
	assert.Equal(t, "[~q(y), r(y)]", c.String())
}

func TestParseClauseWhitespaceIsIgnored(t *testing.T) {
	c, err := ParseClause("p(x, A)")
	require.NoError(t, err)
	assert.Equal(t, "p(x,A)", c.Literals[0].String())
}

func TestParseClauseEmptyArgList(t *testing.T) {
	_, err := ParseClause("p()")
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestParseClauseUpperPredicateRejected(t *testing.T) {
	_, err := ParseClause("P(x)")
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestParseClauseUpperFunctionRejected(t *testing.T) {
	_, err := ParseClause("p(F(x))")
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestParseClauseTrailingInputRejected(t *testing.T) {
	_, err := ParseClause("p(x))")
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestParseClauseTildeInsideArgsRejected(t *testing.T) {
	_, err := ParseClause("p(~x)")
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestParseClauseUnexpectedCharacter(t *testing.T) {
	_, err := ParseClause("p(x)&q(y)")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedInput))
}

func TestParseClauseVariableVsConstant(t *testing.T) {
	c, err := ParseClause("p(x,A,f(y,B))")
	require.NoError(t, err)
	args := c.Literals[0].Args
	assert.True(t, args[0].IsVariable())
	assert.False(t, args[1].IsVariable())
	fn, ok := args[2].(*Function)
	require.True(t, ok)
	assert.True(t, fn.Args[0].IsVariable())
	assert.False(t, fn.Args[1].IsVariable())
}
