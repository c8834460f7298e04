package fopc

import "fmt"

// parser is a recursive-descent parser over the token stream produced by
// lex. It implements the grammar:
//
//	clause   := literal ("," literal)*
//	literal  := "~"? IDENT "(" term ("," term)* ")"
//	term     := IDENT | IDENT "(" term ("," term)* ")"
//
// A literal's leading identifier must have a lower-case initial
// (predicate names are always lower-case); a term identifier followed by
// "(" is a Function (also lower-case initial); a term identifier with no
// following "(" is a Variable (lower-case initial) or a Constant
// (upper-case initial), decided purely lexically. Negation ("~") may only
// appear immediately before a literal's predicate name — it can never
// appear inside an argument list, so a "~" found while parsing a term
// is rejected as malformed input (this is how a negated predicate used as
// an argument is caught: the grammar gives terms no way to carry
// polarity). An un-negated predicate used as an argument is lexically
// identical to a Function and is parsed as one.
type parser struct {
	toks []token
	pos  int
	src  string
}

// ParseClause parses a single clause string such as "~p(z,f(B)),q(z)"
// into a Clause with no provenance (ready for initial loading). It
// returns ErrMalformedInput, wrapped with the offending text, on any
// grammar violation.
func ParseClause(src string) (*Clause, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, src: src}
	lits, err := p.parseClauseBody()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		return nil, fmt.Errorf("%w: unexpected trailing input at position %d in %q", ErrMalformedInput, p.peek().pos, src)
	}
	return newInitialClause(lits), nil
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) advance() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) expect(k tokenKind, what string) (token, error) {
	t := p.peek()
	if t.kind != k {
		return token{}, fmt.Errorf("%w: expected %s at position %d in %q", ErrMalformedInput, what, t.pos, p.src)
	}
	return p.advance(), nil
}

func (p *parser) parseClauseBody() ([]*Literal, error) {
	var lits []*Literal
	lit, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}
	lits = append(lits, lit)
	for p.peek().kind == tokComma {
		p.advance()
		lit, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		lits = append(lits, lit)
	}
	return lits, nil
}

func (p *parser) parseLiteral() (*Literal, error) {
	negated := false
	if p.peek().kind == tokTilde {
		negated = true
		p.advance()
	}
	nameTok, err := p.expect(tokIdent, "predicate name")
	if err != nil {
		return nil, err
	}
	if isUpper(nameTok.text) {
		return nil, fmt.Errorf("%w: predicate %q must have a lower-case initial at position %d in %q", ErrMalformedInput, nameTok.text, nameTok.pos, p.src)
	}
	if _, err := p.expect(tokLParen, "'(' after predicate name"); err != nil {
		return nil, err
	}
	args, err := p.parseArgList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRParen, "')' closing predicate arguments"); err != nil {
		return nil, err
	}
	return NewLiteral(nameTok.text, negated, args), nil
}

// parseArgList parses a non-empty comma-separated list of terms:
// argument lists are never empty.
func (p *parser) parseArgList() ([]Term, error) {
	if p.peek().kind == tokRParen {
		return nil, fmt.Errorf("%w: empty argument list at position %d in %q", ErrMalformedInput, p.peek().pos, p.src)
	}
	var args []Term
	t, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	args = append(args, t)
	for p.peek().kind == tokComma {
		p.advance()
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		args = append(args, t)
	}
	return args, nil
}

func (p *parser) parseTerm() (Term, error) {
	nameTok, err := p.expect(tokIdent, "term")
	if err != nil {
		return nil, err
	}
	if p.peek().kind == tokLParen {
		if isUpper(nameTok.text) {
			return nil, fmt.Errorf("%w: function %q must have a lower-case initial at position %d in %q", ErrMalformedInput, nameTok.text, nameTok.pos, p.src)
		}
		p.advance()
		args, err := p.parseArgList()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "')' closing function arguments"); err != nil {
			return nil, err
		}
		return NewFunction(nameTok.text, args), nil
	}
	if isUpper(nameTok.text) {
		return NewConstant(nameTok.text), nil
	}
	return NewVariable(nameTok.text), nil
}
