package fopc

import (
	"context"
	"fmt"
)

// Outcome is the result of one Prove call: the clauses that survived
// initial loading, and — if a refutation was found — the ordered
// derivation trace leading to the empty clause.
type Outcome struct {
	InitialClauses []*Clause
	Proved         bool
	Trace          []ProofLine
}

// Prove is the single entry point for resolution refutation: given a
// knowledge base and a set of already-negated goal clauses (both as
// comma-separated clause strings), it attempts resolution refutation and
// returns either the derivation trace or a "no proof found" Outcome.
//
// A non-nil error means a clause string failed to parse or ctx was
// cancelled during the search; this aborts the whole attempt with no
// partial trace (parse errors are surfaced, never treated as "no proof").
func Prove(ctx context.Context, kb []string, negatedGoal []string, limits Limits) (*Outcome, error) {
	session := NewSession()
	store := NewClauseStore(session)

	for _, src := range kb {
		if err := loadOne(store, src); err != nil {
			return nil, err
		}
	}
	for _, src := range negatedGoal {
		if err := loadOne(store, src); err != nil {
			return nil, err
		}
	}

	initial := store.Live()

	emptyID, err := saturate(ctx, store, limits)
	if err != nil {
		return nil, err
	}
	if emptyID < 0 {
		return &Outcome{InitialClauses: initial, Proved: false}, nil
	}

	trace, err := ReconstructProof(store, emptyID)
	if err != nil {
		return nil, err
	}
	return &Outcome{InitialClauses: initial, Proved: true, Trace: trace}, nil
}

// loadOne parses a single clause string and, if well-formed, offers it to
// store for initial insertion. Tautologies and subsumed duplicates are
// silently dropped; only a genuine parse failure is an error.
func loadOne(store *ClauseStore, src string) error {
	clause, err := ParseClause(src)
	if err != nil {
		return fmt.Errorf("fopc: clause %q: %w", src, err)
	}
	store.tryInsertInitial(clause.Literals)
	return nil
}
