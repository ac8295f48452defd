package gramcheck

import "github.com/pkg/errors"

// ErrInput is the sentinel cause for rejected input token sequences, such as
// an empty sequence or a token tagged with a tag unknown to the grammar.
// Failing to parse a well-formed sequence is not an input error.
var ErrInput = errors.New("invalid input")

// ErrInvariant is the sentinel cause for internal inconsistencies, e.g. a
// chart derivation which cannot be mapped back onto the original grammar.
// Seeing one wrapped in a returned error indicates a bug, not bad input.
var ErrInvariant = errors.New("invariant violated")
