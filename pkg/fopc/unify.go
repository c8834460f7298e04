package fopc

import "fmt"

// UnifyTerms computes the most general unifier of two Terms. No occurs
// check is performed: unify(x, f(x)) succeeds with the cyclic binding
// f(x)/x rather than failing, matching the — if unusual — behaviour this
// prover intentionally preserves.
func UnifyTerms(a, b Term) (*Substitution, error) {
	switch x := a.(type) {
	case *Variable:
		if y, ok := b.(*Variable); ok && y.Name == x.Name {
			return NewSubstitution(), nil
		}
		return NewSubstitution(Binding{Var: x, Term: b}), nil
	case *Constant:
		switch y := b.(type) {
		case *Variable:
			return NewSubstitution(Binding{Var: y, Term: x}), nil
		case *Constant:
			if x.Name == y.Name {
				return NewSubstitution(), nil
			}
			return nil, fmt.Errorf("%w: constants %s and %s differ", ErrUnification, x.Name, y.Name)
		default:
			return nil, fmt.Errorf("%w: cannot unify constant %s with %s", ErrUnification, x.Name, b.String())
		}
	case *Function:
		switch y := b.(type) {
		case *Variable:
			return NewSubstitution(Binding{Var: y, Term: x}), nil
		case *Function:
			if x.Name != y.Name || len(x.Args) != len(y.Args) {
				return nil, fmt.Errorf("%w: cannot unify %s with %s", ErrUnification, x.String(), y.String())
			}
			return unifyTermLists(x.Args, y.Args)
		default:
			return nil, fmt.Errorf("%w: cannot unify function %s with %s", ErrUnification, x.String(), b.String())
		}
	default:
		return nil, fmt.Errorf("%w: unknown term variant %T", ErrUnification, a)
	}
}

// unifyTermLists unifies two equal-length term lists positionally: at
// step i it unifies σ(aᵢ) with σ(bᵢ) and composes the result into σ
// before moving on. It is shared by Function/Function unification and by
// UnifyComplementary's argument-list unification.
func unifyTermLists(as, bs []Term) (*Substitution, error) {
	sigma := NewSubstitution()
	for i := range as {
		ai := sigma.Apply(as[i])
		bi := sigma.Apply(bs[i])
		step, err := UnifyTerms(ai, bi)
		if err != nil {
			return nil, err
		}
		sigma = Compose(step, sigma)
	}
	return sigma, nil
}

// UnifyComplementary succeeds iff l1 and l2 name the same predicate with
// opposite polarity and equal arity, and their argument lists unify.
// This is the pairing test used by the resolver.
func UnifyComplementary(l1, l2 *Literal) (*Substitution, error) {
	if !l1.isComplementOf(l2) {
		return nil, fmt.Errorf("%w: %s and %s are not complementary", ErrUnification, l1.String(), l2.String())
	}
	return unifyTermLists(l1.Args, l2.Args)
}

// UnifySamePolarity succeeds iff l1 and l2 name the same predicate with
// the SAME polarity and equal arity, and their argument lists unify.
// This is the matching test used by subsumption, which requires an
// instance of A's literal to already exist in B with matching polarity,
// not an opposite one.
func UnifySamePolarity(l1, l2 *Literal) (*Substitution, error) {
	if !l1.sameNameArity(l2) || l1.Negated != l2.Negated {
		return nil, fmt.Errorf("%w: %s and %s do not match for subsumption", ErrUnification, l1.String(), l2.String())
	}
	return unifyTermLists(l1.Args, l2.Args)
}
