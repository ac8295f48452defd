/*
Package tree rebuilds syntax trees over the original grammar symbols from
binary CNF derivations.

A chart derivation speaks CNF: it contains synthetic cascade symbols from
binarization, lifted preterminals, and rules whose collapsed unit chains are
invisible in the tree shape. Reconstruct undoes all three, guided by the
reconstruction map of package cnf: synthetic nodes are dissolved into their
parent, lifted preterminals disappear in favor of their token, and collapsed
unit chains are re-expanded into the nested single-child nodes the original
grammar would have produced.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Matthias Breuer <mb@mbreuer.dev>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gramcheck.tree'.
func tracer() tracing.Trace {
	return tracing.Select("gramcheck.tree")
}
