/*
Package cky implements a CKY chart parser for grammars in Chomsky Normal Form.

The parser fills a triangular chart over a tagged token sequence bottom-up:
lexical rules seed the cells of length 1, binary rules combine adjacent cells
into larger spans. Cells keep every entry, so the finished chart represents
all derivations the grammar licenses, not just one; ambiguity is preserved and
handed to the caller in deterministic chart order. Runtime is cubic in the
sequence length and linear in the number of rules per cell combination.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Matthias Breuer <mb@mbreuer.dev>

*/
package cky

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gramcheck.cky'.
func tracer() tracing.Trace {
	return tracing.Select("gramcheck.cky")
}
