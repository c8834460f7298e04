package fopc

// ClauseStore is the monotonically growing, append-only collection of
// clauses for one proof session. Clauses are never mutated or removed
// after insertion; subsumption instead marks a clause as no longer
// live, which keeps parent-id provenance valid for every child ever
// derived from it while excluding it from further pairing and from the
// set of "kept" clauses reported to a caller.
type ClauseStore struct {
	session *Session
	clauses []*Clause
	live    map[int]bool
}

// NewClauseStore creates an empty store bound to session.
func NewClauseStore(session *Session) *ClauseStore {
	return &ClauseStore{session: session, live: make(map[int]bool)}
}

// Get returns the clause with the given id, if any.
func (s *ClauseStore) Get(id int) (*Clause, bool) {
	for _, c := range s.clauses {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// All returns every clause ever inserted, in insertion (id) order,
// including ones later marked deleted by subsumption.
func (s *ClauseStore) All() []*Clause {
	out := make([]*Clause, len(s.clauses))
	copy(out, s.clauses)
	return out
}

// Live returns every currently-live clause, in insertion order.
func (s *ClauseStore) Live() []*Clause {
	var out []*Clause
	for _, c := range s.clauses {
		if s.live[c.ID] {
			out = append(out, c)
		}
	}
	return out
}

// IsLive reports whether the clause with the given id is still live.
func (s *ClauseStore) IsLive(id int) bool { return s.live[id] }

// insertResult reports what happened when a candidate clause's literals
// were offered to the store.
type insertResult int

const (
	insertKept insertResult = iota
	insertRejectedTautology
	insertRejectedDuplicate
	insertRejectedSubsumed
)

// tryInsertInitial loads one parsed clause string's literals as an
// initial (level 0) clause, applying the same tautology/subsumption
// filtering as derived clauses.
func (s *ClauseStore) tryInsertInitial(lits []*Literal) (*Clause, insertResult) {
	return s.insert(canonicalizeLiterals(lits), noParent, noParent, noParent, noParent, nil, 0)
}

// tryInsertResolvent offers a resolvent for insertion at the given level.
func (s *ClauseStore) tryInsertResolvent(r Resolvent, level int) (*Clause, insertResult) {
	return s.insert(canonicalizeLiterals(r.Literals), r.Parent1, r.Parent2, r.LitIndex1, r.LitIndex2, r.Subst, level)
}

func (s *ClauseStore) insert(lits []*Literal, parent1, parent2, li1, li2 int, subst *Substitution, level int) (*Clause, insertResult) {
	if isTautology(lits) {
		return nil, insertRejectedTautology
	}

	candidate := &Clause{Literals: lits}

	for _, existing := range s.Live() {
		if equalUpToRenaming(candidate, existing) {
			return nil, insertRejectedDuplicate
		}
	}
	for _, existing := range s.Live() {
		if subsumes(existing, candidate) {
			return nil, insertRejectedSubsumed
		}
	}

	c := newDerivedClause(lits, parent1, parent2, li1, li2, subst)
	c.ID = s.session.nextID()
	c.Level = level
	s.clauses = append(s.clauses, c)
	s.live[c.ID] = true

	for _, existing := range s.Live() {
		if existing.ID == c.ID {
			continue
		}
		if strictlySubsumes(c, existing) {
			s.live[existing.ID] = false
		}
	}

	return c, insertKept
}

// subsumes reports whether clause a subsumes clause b: there exists a
// substitution θ such that every literal of θ(a), matched against a
// distinct literal of b with the same name/polarity/arity, unifies
// under one consistent θ. This is the sound-but-incomplete assignment
// search used throughout this package.
func subsumes(a, b *Clause) bool {
	return trySubsumeFrom(a.Literals, b.Literals, NewSubstitution())
}

// trySubsumeFrom tries to extend theta so that every literal in aLits
// matches a distinct, not-yet-used literal in bLits.
func trySubsumeFrom(aLits []*Literal, bLits []*Literal, theta *Substitution) bool {
	if len(aLits) == 0 {
		return true
	}
	first := theta.ApplyLiteral(aLits[0])
	for j, candidate := range bLits {
		if !first.sameNameArity(candidate) || first.Negated != candidate.Negated {
			continue
		}
		step, err := UnifySamePolarity(first, candidate)
		if err != nil {
			continue
		}
		newTheta := Compose(step, theta)
		rest := make([]*Literal, 0, len(bLits)-1)
		rest = append(rest, bLits[:j]...)
		rest = append(rest, bLits[j+1:]...)
		if trySubsumeFrom(aLits[1:], rest, newTheta) {
			return true
		}
	}
	return false
}

// equalUpToRenaming reports whether a and b subsume each other and have
// the same literal count — i.e. one is a pure variable-renaming of the
// other.
func equalUpToRenaming(a, b *Clause) bool {
	return len(a.Literals) == len(b.Literals) && subsumes(a, b) && subsumes(b, a)
}

// strictlySubsumes reports whether a strictly subsumes b: a subsumes b,
// a has no more literals than b, and they are not equal up to
// renaming. Only strict subsumption causes deletion.
func strictlySubsumes(a, b *Clause) bool {
	if len(a.Literals) > len(b.Literals) {
		return false
	}
	if !subsumes(a, b) {
		return false
	}
	return !equalUpToRenaming(a, b)
}
