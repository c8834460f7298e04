package fopc

import "errors"

// ErrMalformedInput is returned by the parser for any clause string that
// violates the grammar: unbalanced parentheses, empty argument lists, a
// negated predicate used as an argument, a predicate with the wrong
// leading case, or an unexpected character. An un-negated predicate used
// as an argument parses as a Function and is not rejected. fmt.Errorf("%w: ...") wraps it with
// the offending clause text.
var ErrMalformedInput = errors.New("fopc: malformed input")

// ErrUnification is returned internally by the unifier on failure. It
// never escapes to a caller of Prove; it only drives control flow inside
// the resolver.
var ErrUnification = errors.New("fopc: unification failure")
