package proverio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeInputHappyPath(t *testing.T) {
	r := strings.NewReader(`{"knowledge_base":["p(A)"],"negated_theorem_predicates":["~q(A)"]}`)
	doc, err := DecodeInput(r)
	require.NoError(t, err)
	assert.Equal(t, []string{"p(A)"}, doc.KnowledgeBase)
	assert.Equal(t, []string{"~q(A)"}, doc.NegatedTheoremPredicates)
}

func TestDecodeInputAllowsEmptyArrays(t *testing.T) {
	r := strings.NewReader(`{"knowledge_base":[],"negated_theorem_predicates":[]}`)
	doc, err := DecodeInput(r)
	require.NoError(t, err)
	assert.Empty(t, doc.KnowledgeBase)
	assert.Empty(t, doc.NegatedTheoremPredicates)
}

func TestDecodeInputMissingKnowledgeBaseKey(t *testing.T) {
	r := strings.NewReader(`{"negated_theorem_predicates":["~q(A)"]}`)
	_, err := DecodeInput(r)
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestDecodeInputMissingNegatedGoalKey(t *testing.T) {
	r := strings.NewReader(`{"knowledge_base":["p(A)"]}`)
	_, err := DecodeInput(r)
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestDecodeInputMalformedJSON(t *testing.T) {
	r := strings.NewReader(`{not json`)
	_, err := DecodeInput(r)
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestDecodeInputWrongFieldType(t *testing.T) {
	r := strings.NewReader(`{"knowledge_base":"p(A)","negated_theorem_predicates":["~q(A)"]}`)
	_, err := DecodeInput(r)
	assert.ErrorIs(t, err, ErrMalformedInput)
}
