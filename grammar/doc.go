/*
Package grammar implements the model for hand-authored context-free grammars.

A Grammar is a set of productions over interned symbols, with a designated
start symbol. Grammars are authored either programmatically with a Builder,

    b := grammar.NewBuilder("English")
    b.LHS("S").N("NP").N("VP").End()
    b.LHS("NP").T("DT").T("NN").Head(1).End()
    g, err := b.Grammar()

or from a textual specification parsed by Parse (see reader.go). Validation
happens once, when the builder seals the grammar: a nonterminal used in a
right-hand side without any production of its own, or an empty right-hand
side, rejects the grammar wholesale. A sealed Grammar is immutable and safe
to share between any number of concurrent parses.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Matthias Breuer <mb@mbreuer.dev>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gramcheck.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("gramcheck.grammar")
}
