// Package fopc implements the term algebra, parser, unifier, resolver and
// level-saturation search engine for a first-order predicate logic
// resolution refutation prover.
//
// A knowledge base of clauses and a set of negated goal clauses are
// combined and saturated breadth-first until the empty clause is derived
// (a contradiction, proving the un-negated goal) or no new clause can be
// produced. Tautology deletion and subsumption elimination keep the
// clause store small along the way.
package fopc

import (
	"fmt"
	"strings"
)

// Term is the closed algebra of first-order terms: a Variable, a Constant,
// or a Function applied to one or more child Terms. Classification between
// Variable and Constant is purely lexical: a leading lower-case letter
// means Variable (or Function, if followed by arguments), upper-case means
// Constant.
type Term interface {
	// String renders the term in canonical, whitespace-free notation.
	String() string

	// Equal reports whether two terms are structurally identical.
	Equal(other Term) bool

	// IsVariable reports whether the term is a Variable.
	IsVariable() bool
}

// Variable is a named logic variable. Two variables are the same variable
// iff their names match.
type Variable struct {
	Name string
}

// NewVariable constructs a Variable with the given name.
func NewVariable(name string) *Variable { return &Variable{Name: name} }

func (v *Variable) String() string { return v.Name }

func (v *Variable) Equal(other Term) bool {
	o, ok := other.(*Variable)
	return ok && o.Name == v.Name
}

func (v *Variable) IsVariable() bool { return true }

// Constant is a named, rigid term with no children.
type Constant struct {
	Name string
}

// NewConstant constructs a Constant with the given name.
func NewConstant(name string) *Constant { return &Constant{Name: name} }

func (c *Constant) String() string { return c.Name }

func (c *Constant) Equal(other Term) bool {
	o, ok := other.(*Constant)
	return ok && o.Name == c.Name
}

func (c *Constant) IsVariable() bool { return false }

// Function is a named term applied to a non-empty, ordered list of
// argument Terms. There are no nullary functions — a nullary "function"
// is a Constant.
type Function struct {
	Name string
	Args []Term
}

// NewFunction constructs a Function. Args must be non-empty; callers are
// expected to have validated this at parse time (the parser rejects an
// empty argument list as ErrMalformedInput before a Function ever gets
// built from user input).
func NewFunction(name string, args []Term) *Function {
	return &Function{Name: name, Args: args}
}

func (f *Function) String() string {
	var b strings.Builder
	b.WriteString(f.Name)
	b.WriteByte('(')
	for i, a := range f.Args {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	return b.String()
}

func (f *Function) Equal(other Term) bool {
	o, ok := other.(*Function)
	if !ok || o.Name != f.Name || len(o.Args) != len(f.Args) {
		return false
	}
	for i := range f.Args {
		if !f.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

func (f *Function) IsVariable() bool { return false }

// isUpper reports whether the first rune of name is upper-case, the
// lexical test that classifies an identifier as a Constant rather than a
// Variable/Function name.
func isUpper(name string) bool {
	if name == "" {
		return false
	}
	r := name[0]
	return r >= 'A' && r <= 'Z'
}

// collectVariableNames walks t and appends the name of every distinct
// Variable it contains, in first-occurrence order, to seen/out.
func collectVariableNames(t Term, seen map[string]bool, out *[]string) {
	switch x := t.(type) {
	case *Variable:
		if !seen[x.Name] {
			seen[x.Name] = true
			*out = append(*out, x.Name)
		}
	case *Function:
		for _, a := range x.Args {
			collectVariableNames(a, seen, out)
		}
	}
}

// renameVariables returns a copy of t with every Variable whose name is a
// key of rename replaced by NewVariable(rename[name]); other variables,
// constants and function names are left untouched.
func renameVariables(t Term, rename map[string]string) Term {
	switch x := t.(type) {
	case *Variable:
		if newName, ok := rename[x.Name]; ok {
			return &Variable{Name: newName}
		}
		return x
	case *Constant:
		return x
	case *Function:
		args := make([]Term, len(x.Args))
		for i, a := range x.Args {
			args[i] = renameVariables(a, rename)
		}
		return &Function{Name: x.Name, Args: args}
	default:
		panic(fmt.Sprintf("fopc: unknown Term variant %T", t))
	}
}
