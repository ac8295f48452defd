/*
Package agree validates feature agreement on reconstructed syntax trees.

Three checks run over a tree: determiner–noun number agreement ("a books"),
subject–verb agreement in the present tense ("he run"), and verb
subcategorization against per-lemma argument frames ("went the school").
Checks are conservative: a feature the tagger did not commit to never causes
a violation.

Since a chart may license several trees for one input, the checker also
implements derivation selection: the first derivation in chart order without
violations wins; if every derivation has violations, the first derivation's
violations are reported.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Matthias Breuer <mb@mbreuer.dev>

*/
package agree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gramcheck.agree'.
func tracer() tracing.Trace {
	return tracing.Select("gramcheck.agree")
}
