package proverio

import "errors"

// ErrMalformedInput is returned for a JSON document that fails to decode
// or is missing one of its two required keys.
var ErrMalformedInput = errors.New("proverio: malformed input")
