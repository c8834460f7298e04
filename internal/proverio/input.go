// Package proverio is the thin, non-core wrapper around the CLI's I/O
// surface: decoding the JSON input document, aggregating clause-parse
// errors for a friendlier report, and formatting the prover's output as
// plain text. None of the logical engine lives here — see pkg/fopc.
package proverio

import (
	"encoding/json"
	"fmt"
	"io"
)

// InputDocument is the two-key JSON object the CLI expects as its input.
// Both keys are required, even if their arrays are empty; a missing key
// is an error, which is why decoding goes through a raw map first
// instead of unmarshalling directly into this struct (on a plain struct a
// missing JSON key just leaves the field nil and raises no error).
type InputDocument struct {
	KnowledgeBase            []string `json:"knowledge_base"`
	NegatedTheoremPredicates []string `json:"negated_theorem_predicates"`
}

// DecodeInput reads and validates the JSON input document from r.
func DecodeInput(r io.Reader) (*InputDocument, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	kbRaw, ok := raw["knowledge_base"]
	if !ok {
		return nil, fmt.Errorf("%w: missing key %q", ErrMalformedInput, "knowledge_base")
	}
	goalRaw, ok := raw["negated_theorem_predicates"]
	if !ok {
		return nil, fmt.Errorf("%w: missing key %q", ErrMalformedInput, "negated_theorem_predicates")
	}

	doc := &InputDocument{}
	if err := json.Unmarshal(kbRaw, &doc.KnowledgeBase); err != nil {
		return nil, fmt.Errorf("%w: knowledge_base: %v", ErrMalformedInput, err)
	}
	if err := json.Unmarshal(goalRaw, &doc.NegatedTheoremPredicates); err != nil {
		return nil, fmt.Errorf("%w: negated_theorem_predicates: %v", ErrMalformedInput, err)
	}
	return doc, nil
}
