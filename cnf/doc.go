/*
Package cnf transforms context-free grammars into Chomsky Normal Form.

After conversion, every rule is either binary (A → B C over nonterminals) or
lexical (A → t with a terminal t), which is the shape the CKY chart parser
requires. The conversion collapses unit productions into chains, lifts
terminals out of long right-hand sides, and binarizes what remains. None of
this is lossy: every emitted rule remembers its origin, and the Map returned
alongside the grammar lets package tree rebuild parse trees over the original
grammar symbols.

Conversion is deterministic. Converting the same grammar twice yields
identical rule sets in identical order, including the names of synthetic
nonterminals, which are derived from a hash of the originating rule rather
than from a global counter.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Matthias Breuer <mb@mbreuer.dev>

*/
package cnf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gramcheck.cnf'.
func tracer() tracing.Trace {
	return tracing.Select("gramcheck.cnf")
}
