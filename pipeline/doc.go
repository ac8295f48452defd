/*
Package pipeline wires grammar, CNF conversion, chart parsing, tree
reconstruction and agreement checking into a single grammaticality checker.

A Checker is built once, converting its grammar to CNF up front, and then
serves any number of concurrent Check calls, each of which parses one tagged
token sequence and judges it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Matthias Breuer <mb@mbreuer.dev>

*/
package pipeline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gramcheck.pipeline'.
func tracer() tracing.Trace {
	return tracing.Select("gramcheck.pipeline")
}
