package fopc

// Resolvent is a candidate clause produced by resolving two parent
// clauses on one pair of complementary literals, before it has been
// checked for tautology/subsumption or inserted into a ClauseStore.
type Resolvent struct {
	Literals  []*Literal
	Parent1   int
	Parent2   int
	LitIndex1 int
	LitIndex2 int
	Subst     *Substitution
}

// standardizeApart renames the variables of c that collide with a
// variable name already used in other, appending a session-fresh suffix
// to each colliding name. Variables that do not collide are left with
// their original names.
//
// Renaming every variable of c unconditionally would also prevent
// accidental capture, but limiting the rename to actually-colliding
// names is observably identical whenever the two clauses' variable sets
// are disjoint (the common case) while still preventing every capture a
// full rename would — see DESIGN.md for the worked justification.
func standardizeApart(c *Clause, other *Clause, session *Session) *Clause {
	otherNames := make(map[string]bool)
	for _, name := range other.variableNames() {
		otherNames[name] = true
	}
	colliding := false
	for _, name := range c.variableNames() {
		if otherNames[name] {
			colliding = true
			break
		}
	}
	if !colliding {
		return c
	}
	suffix := session.freshSuffix()
	rename := make(map[string]string)
	for _, name := range c.variableNames() {
		if otherNames[name] {
			rename[name] = name + suffix
		}
	}
	lits := make([]*Literal, len(c.Literals))
	for i, l := range c.Literals {
		lits[i] = renameVariablesInLiteral(l, rename)
	}
	return &Clause{Literals: lits, ID: c.ID, Parent1: c.Parent1, Parent2: c.Parent2, LitIndex1: c.LitIndex1, LitIndex2: c.LitIndex2, Subst: c.Subst, Level: c.Level}
}

// Resolve attempts binary resolution between c1 and c2, returning every
// resolvent obtainable by pairing a literal of c1 against a literal of
// c2. Self-resolution (c1.ID == c2.ID) is excluded by the caller, which
// never offers a clause paired with itself.
//
// c2 is standardised apart against c1 before any literal pairs are
// tried, so every resolvent's substitution and provenance refers back to
// c1's and c2's literal indices in their own (unstandardised, as-stored)
// order.
func Resolve(c1, c2 *Clause, session *Session) []Resolvent {
	c2s := standardizeApart(c2, c1, session)

	var out []Resolvent
	for i, li := range c1.Literals {
		for j, lj := range c2s.Literals {
			if !li.isComplementOf(lj) {
				continue
			}
			sigma, err := UnifyComplementary(li, lj)
			if err != nil {
				continue
			}
			var remaining []*Literal
			for k, l := range c1.Literals {
				if k != i {
					remaining = append(remaining, l)
				}
			}
			for k, l := range c2s.Literals {
				if k != j {
					remaining = append(remaining, l)
				}
			}
			out = append(out, Resolvent{
				Literals:  sigma.ApplyLiterals(remaining),
				Parent1:   c1.ID,
				Parent2:   c2.ID,
				LitIndex1: i,
				LitIndex2: j,
				Subst:     sigma,
			})
		}
	}
	return out
}
