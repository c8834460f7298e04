package fopc

import (
	"sort"
	"strings"
)

// noParent marks the absence of a parent clause or resolved-upon literal
// index in provenance metadata.
const noParent = -1

// Clause is an unordered, duplicate-free disjunction of Literals, stored
// as an ordered slice in canonical order so that structural equality
// and printing are deterministic. A Clause with zero Literals is the
// empty clause, denoting a contradiction.
//
// Clauses also carry provenance metadata used only by the search engine
// and proof reconstructor: a unique id, the ids of the two parent
// clauses it was resolved from (noParent for initial clauses), the
// literal indices resolved upon, and the substitution that produced it.
// Clauses are immutable after construction; liveness (subsumption
// deletion) is tracked by the ClauseStore, not on the Clause itself.
type Clause struct {
	ID        int
	Literals  []*Literal
	Parent1   int
	Parent2   int
	LitIndex1 int
	LitIndex2 int
	Subst     *Substitution
	Level     int
}

// canonicalizeLiterals returns lits deduplicated (by syntactic equality)
// and sorted by predicate name, giving every clause a single canonical
// representation regardless of derivation order. Sorting strips a
// literal's leading negation marker before comparing: polarity never
// outranks the alphabetic position of the predicate name itself, it
// only breaks a tie between two literals that would otherwise compare
// equal.
func canonicalizeLiterals(lits []*Literal) []*Literal {
	out := make([]*Literal, 0, len(lits))
	for _, l := range lits {
		dup := false
		for _, existing := range out {
			if existing.Equal(l) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ki, kj := sortKey(out[i]), sortKey(out[j])
		if ki != kj {
			return ki < kj
		}
		return out[i].String() < out[j].String()
	})
	return out
}

// sortKey is a literal's pretty-printed form with any leading "~"
// stripped, so "~q(y)" sorts alongside "q(y)" by predicate name rather
// than being pushed to the end of the clause by its polarity marker.
func sortKey(l *Literal) string {
	return strings.TrimPrefix(l.String(), "~")
}

// newInitialClause builds a Clause with no parents, ready for insertion
// into a ClauseStore (id is assigned by the store).
func newInitialClause(lits []*Literal) *Clause {
	return &Clause{
		Literals:  canonicalizeLiterals(lits),
		Parent1:   noParent,
		Parent2:   noParent,
		LitIndex1: noParent,
		LitIndex2: noParent,
	}
}

// newDerivedClause builds a resolvent Clause carrying full provenance
// (id and level are assigned by the store on insertion).
func newDerivedClause(lits []*Literal, parent1, parent2, litIndex1, litIndex2 int, subst *Substitution) *Clause {
	return &Clause{
		Literals:  canonicalizeLiterals(lits),
		Parent1:   parent1,
		Parent2:   parent2,
		LitIndex1: litIndex1,
		LitIndex2: litIndex2,
		Subst:     subst,
	}
}

// IsEmpty reports whether the clause has no literals — the empty clause,
// denoting a contradiction.
func (c *Clause) IsEmpty() bool { return len(c.Literals) == 0 }

// IsDerived reports whether the clause was produced by resolution rather
// than being part of the initial load.
func (c *Clause) IsDerived() bool { return c.Parent1 != noParent }

// String renders the clause as "[l1, l2, ...]" in canonical stored
// order, or "[]" for the empty clause.
func (c *Clause) String() string {
	parts := make([]string, len(c.Literals))
	for i, l := range c.Literals {
		parts[i] = l.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// variableNames returns the distinct Variable names appearing anywhere in
// the clause's literals, in first-occurrence order.
func (c *Clause) variableNames() []string {
	seen := make(map[string]bool)
	var out []string
	for _, l := range c.Literals {
		collectVariableNamesInLiteral(l, seen, &out)
	}
	return out
}

// isTautology reports whether the clause contains two literals with
// identical argument lists, identical predicate name, and opposite
// polarity.
func isTautology(lits []*Literal) bool {
	for i := 0; i < len(lits); i++ {
		for j := i + 1; j < len(lits); j++ {
			if lits[i].Name == lits[j].Name && lits[i].Negated != lits[j].Negated && sameArgs(lits[i], lits[j]) {
				return true
			}
		}
	}
	return false
}

func sameArgs(a, b *Literal) bool {
	if len(a.Args) != len(b.Args) {
		return false
	}
	for i := range a.Args {
		if !a.Args[i].Equal(b.Args[i]) {
			return false
		}
	}
	return true
}
