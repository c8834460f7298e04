package fopc

import "strings"

// Literal is a (possibly negated) predicate atom: a name, a polarity flag,
// and a non-empty ordered list of argument Terms. Predicates never nest
// inside other predicates or inside functions, which is why Literal is
// its own type rather than a Term variant.
type Literal struct {
	Name    string
	Negated bool
	Args    []Term
}

// NewLiteral constructs a Literal.
func NewLiteral(name string, negated bool, args []Term) *Literal {
	return &Literal{Name: name, Negated: negated, Args: args}
}

// String renders the literal as "p(a,b)" or, if negated, "~p(a,b)".
func (l *Literal) String() string {
	var b strings.Builder
	if l.Negated {
		b.WriteByte('~')
	}
	b.WriteString(l.Name)
	b.WriteByte('(')
	for i, a := range l.Args {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Equal reports whether two literals are syntactically identical: same
// name, same polarity, and pairwise structurally-equal arguments.
func (l *Literal) Equal(other *Literal) bool {
	if other == nil || l.Name != other.Name || l.Negated != other.Negated || len(l.Args) != len(other.Args) {
		return false
	}
	for i := range l.Args {
		if !l.Args[i].Equal(other.Args[i]) {
			return false
		}
	}
	return true
}

// sameNameArity reports whether two literals share a predicate name and
// arity — the cheap pre-check used before attempting unification, either
// for resolution (opposite polarity) or subsumption matching (same
// polarity).
func (l *Literal) sameNameArity(other *Literal) bool {
	return l.Name == other.Name && len(l.Args) == len(other.Args)
}

// isComplementOf reports whether l and other can be a resolved-upon pair:
// same predicate name and arity, opposite polarity.
func (l *Literal) isComplementOf(other *Literal) bool {
	return l.sameNameArity(other) && l.Negated != other.Negated
}

func renameVariablesInLiteral(l *Literal, rename map[string]string) *Literal {
	args := make([]Term, len(l.Args))
	for i, a := range l.Args {
		args[i] = renameVariables(a, rename)
	}
	return &Literal{Name: l.Name, Negated: l.Negated, Args: args}
}

func collectVariableNamesInLiteral(l *Literal, seen map[string]bool, out *[]string) {
	for _, a := range l.Args {
		collectVariableNames(a, seen, out)
	}
}
