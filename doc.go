/*
Package gramcheck decides grammaticality of pre-tagged English sentences.

A sentence enters the system as a sequence of tokens, each tagged with a Penn
Treebank POS tag and annotated with morphological features by an external
tagger. The pipeline then runs a hand-authored context-free grammar through a
chart parser and validates feature agreement on the resulting syntax tree.
Package structure is as follows:

■ grammar: Package grammar holds the symbol table and production rules of a
context-free grammar, a builder and a textual reader for authoring grammars,
and the built-in English grammar.

■ cnf: Package cnf converts a grammar into Chomsky Normal Form, together with
a reconstruction map which makes the transformation losslessly reversible.

■ cky: Package cky fills a dynamic-programming chart over a tagged token
sequence, producing all derivations licensed by the CNF grammar.

■ tree: Package tree rebuilds n-ary syntax trees over the original grammar
symbols from binary CNF derivations.

■ agree: Package agree checks subject–verb agreement, determiner–noun
agreement and verb subcategorization on reconstructed trees, and selects
among ambiguous derivations.

■ pipeline: Package pipeline wires the above into a single grammaticality
checker, safe for concurrent use.

The base package contains data types which are used throughout all the other
packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Matthias Breuer <mb@mbreuer.dev>

*/
package gramcheck
