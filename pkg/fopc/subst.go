package fopc

import "strings"

// Binding maps a Variable to the Term it is bound to.
type Binding struct {
	Var  *Variable
	Term Term
}

// Substitution is an ordered, duplicate-free (by variable name) list of
// Bindings. Ordering only matters for display, never for semantics:
// Apply is a single simultaneous pass over a term tree, never
// re-substituting into a replacement, so the bindings behave as if
// applied "in parallel" regardless of their order in the slice.
type Substitution struct {
	Bindings []Binding
}

// NewSubstitution builds a Substitution from the given bindings, dropping
// any identity binding (a variable bound to itself).
func NewSubstitution(bindings ...Binding) *Substitution {
	s := &Substitution{}
	for _, b := range bindings {
		if b.Term.IsVariable() && b.Term.(*Variable).Name == b.Var.Name {
			continue
		}
		s.Bindings = append(s.Bindings, b)
	}
	return s
}

// Empty reports whether the substitution has no non-trivial bindings.
func (s *Substitution) Empty() bool { return s == nil || len(s.Bindings) == 0 }

// lookup returns the term bound to v, or nil if v is unbound in s.
func (s *Substitution) lookup(name string) (Term, bool) {
	if s == nil {
		return nil, false
	}
	for _, b := range s.Bindings {
		if b.Var.Name == name {
			return b.Term, true
		}
	}
	return nil, false
}

// Apply replaces every occurrence of a bound Variable in t with its
// bound Term, in a single simultaneous pass: the replacement term itself
// is not re-walked against the substitution.
func (s *Substitution) Apply(t Term) Term {
	switch x := t.(type) {
	case *Variable:
		if bound, ok := s.lookup(x.Name); ok {
			return bound
		}
		return x
	case *Constant:
		return x
	case *Function:
		args := make([]Term, len(x.Args))
		for i, a := range x.Args {
			args[i] = s.Apply(a)
		}
		return &Function{Name: x.Name, Args: args}
	default:
		return t
	}
}

// ApplyLiteral lifts Apply over a Literal's argument list.
func (s *Substitution) ApplyLiteral(l *Literal) *Literal {
	args := make([]Term, len(l.Args))
	for i, a := range l.Args {
		args[i] = s.Apply(a)
	}
	return &Literal{Name: l.Name, Negated: l.Negated, Args: args}
}

// ApplyLiterals lifts Apply over a slice of Literals.
func (s *Substitution) ApplyLiterals(lits []*Literal) []*Literal {
	out := make([]*Literal, len(lits))
	for i, l := range lits {
		out[i] = s.ApplyLiteral(l)
	}
	return out
}

// Compose returns σ2∘σ1: the substitution that results from applying σ1
// first, then σ2. For each binding t/v in σ1, the composed
// substitution binds v to σ2(t); any binding of σ2 whose variable is not
// already bound in the result is then appended. Identity bindings are
// dropped.
func Compose(sigma2, sigma1 *Substitution) *Substitution {
	var out []Binding
	bound := make(map[string]bool)
	if sigma1 != nil {
		for _, b := range sigma1.Bindings {
			term := sigma2.Apply(b.Term)
			if term.IsVariable() && term.(*Variable).Name == b.Var.Name {
				continue
			}
			out = append(out, Binding{Var: b.Var, Term: term})
			bound[b.Var.Name] = true
		}
	}
	if sigma2 != nil {
		for _, b := range sigma2.Bindings {
			if bound[b.Var.Name] {
				continue
			}
			out = append(out, Binding{Var: b.Var, Term: b.Term})
			bound[b.Var.Name] = true
		}
	}
	return &Substitution{Bindings: out}
}

// String renders the substitution as "[t1 / v1, t2 / v2, ...]", or "[]"
// when empty.
func (s *Substitution) String() string {
	if s.Empty() {
		return "[]"
	}
	parts := make([]string, len(s.Bindings))
	for i, b := range s.Bindings {
		parts[i] = b.Term.String() + " / " + b.Var.Name
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
