package fopc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProveNoContradiction(t *testing.T) {
	outcome, err := Prove(context.Background(), []string{"p(A)"}, []string{"~q(A)"}, Limits{})
	require.NoError(t, err)
	assert.False(t, outcome.Proved)
	assert.Len(t, outcome.InitialClauses, 2)
}

func TestProveTautologyFilteredButProofStillFound(t *testing.T) {
	// The first KB clause is a tautology and rejected on insert, but
	// q(A)/~q(A) still resolve to the empty clause.
	outcome, err := Prove(context.Background(), []string{"p(x),~p(x)", "q(A)"}, []string{"~q(A)"}, Limits{})
	require.NoError(t, err)
	require.True(t, outcome.Proved)
	// only q(A) and ~q(A) survive initial load
	assert.Len(t, outcome.InitialClauses, 2)
	require.Len(t, outcome.Trace, 1)
	assert.Equal(t, "[q(A)] | [~q(A)] -> [] with substitution []", outcome.Trace[0].String())
}

func TestProveSubsumptionDeletesWeakerClause(t *testing.T) {
	// p(A) is subsumed by p(x) and deleted before search; the proof uses
	// p(x) directly.
	outcome, err := Prove(context.Background(), []string{"p(x)", "p(A)"}, []string{"~p(A)"}, Limits{})
	require.NoError(t, err)
	require.True(t, outcome.Proved)

	var sawPX bool
	for _, c := range outcome.InitialClauses {
		if c.String() == "[p(A)]" {
			t.Fatalf("p(A) should have been deleted by subsumption but is still live")
		}
		if c.String() == "[p(x)]" {
			sawPX = true
		}
	}
	assert.True(t, sawPX)
	require.Len(t, outcome.Trace, 1)
	assert.Equal(t, "[p(x)] | [~p(A)] -> [] with substitution [A / x]", outcome.Trace[0].String())
}

func TestProveChainOfImplicationsLikeClauses(t *testing.T) {
	// Checked for soundness/termination rather than an exact
	// derivation-order match: the engine must still find the refutation.
	kb := []string{"~p(x),q(x)", "p(y),r(y)", "~q(z),s(z)", "~r(t),s(t)"}
	outcome, err := Prove(context.Background(), kb, []string{"~s(A)"}, Limits{})
	require.NoError(t, err)
	assert.True(t, outcome.Proved)
	require.NotEmpty(t, outcome.Trace)
	assert.True(t, outcome.Trace[len(outcome.Trace)-1].Resolvent.IsEmpty())
}

func TestProveWithFunctionSymbol(t *testing.T) {
	kb := []string{"p(A,f(t))", "q(z),~p(z,f(B))", "r(y),~q(y)"}
	outcome, err := Prove(context.Background(), kb, []string{"~r(A)"}, Limits{})
	require.NoError(t, err)
	require.True(t, outcome.Proved)

	// "r(y),~q(y)" canonicalizes negated-literal-first since predicate
	// name "q" precedes "r" alphabetically once the polarity marker is
	// ignored for sorting.
	var sawClause bool
	for _, c := range outcome.InitialClauses {
		if c.String() == "[~q(y), r(y)]" {
			sawClause = true
		}
	}
	assert.True(t, sawClause, "expected [~q(y), r(y)] among initial clauses, got %v", outcome.InitialClauses)

	var sawLine bool
	for _, line := range outcome.Trace {
		if line.String() == "[~q(y), r(y)] | [~r(A)] -> [~q(A)] with substitution [A / y]" {
			sawLine = true
		}
	}
	assert.True(t, sawLine, "expected the r(y)/~r(A) resolution step in the trace, got %v", outcome.Trace)
}

func TestProveMalformedClauseReturnsError(t *testing.T) {
	_, err := Prove(context.Background(), []string{"P(x)"}, []string{"~q(A)"}, Limits{})
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestProveRespectsMaxLevel(t *testing.T) {
	kb := []string{"~p(x),q(x)", "p(y),r(y)", "~q(z),s(z)", "~r(t),s(t)"}
	outcome, err := Prove(context.Background(), kb, []string{"~s(A)"}, Limits{MaxLevel: 1})
	require.NoError(t, err)
	assert.False(t, outcome.Proved)
}

func TestUnifyTermsMGUAcceptance(t *testing.T) {
	lhs, err := ParseClause("p(f(h(w)),y,g(k(f(h(w))),x))")
	require.NoError(t, err)
	rhs, err := ParseClause("p(u,k(f(h(w))),g(z,h(w)))")
	require.NoError(t, err)

	sigma, err := unifyTermLists(lhs.Literals[0].Args, rhs.Literals[0].Args)
	require.NoError(t, err)

	assert.Equal(t, "f(h(w))", sigma.Apply(NewVariable("u")).String())
	assert.Equal(t, "k(f(h(w)))", sigma.Apply(NewVariable("y")).String())
	assert.Equal(t, "k(f(h(w)))", sigma.Apply(NewVariable("z")).String())
	assert.Equal(t, "h(w)", sigma.Apply(NewVariable("x")).String())
}
