/*
Command gramcheck checks grammaticality of tagged English sentences, either
for token sequences given on the command line or interactively in a REPL.

Tokens are entered as surface/TAG pairs, optionally followed by explicit
morphological features:

	gramcheck he/PRP runs/VBZ
	gramcheck "she/PRP/per=3,num=sg devoured/VBD/lemma=devour"

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Matthias Breuer <mb@mbreuer.dev>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gramcheck.cli'.
func tracer() tracing.Trace {
	return tracing.Select("gramcheck.cli")
}
