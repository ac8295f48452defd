package grammar

import "sync"

// English returns the built-in English grammar over Penn Treebank POS tags.
// It covers declaratives, imperatives, yes/no and wh-questions, coordination,
// and bare NP fragments. The grammar is parsed once and shared; it is
// immutable and safe for concurrent use.
func English() *Grammar {
	englishOnce.Do(func() {
		g, err := Parse("English", englishRules)
		if err != nil {
			panic(err) // the rule text below is constant
		}
		english = g
	})
	return english
}

var (
	english     *Grammar
	englishOnce sync.Once
)

// Head positions ('^') mark the constituent whose features a phrase inherits:
// the noun of an NP, the finite verb of a VP, the VP of a clause.
const englishRules = `
# --- Sentence level ---------------------------------------------------------

# Declaratives
S -> NP ^VP | NP ^VP PP | NP ^VP RB | NP ^VP PP RB | NP ^VP PP NP | NP ^VP NP

# Imperatives
S -> ^VP | ^VP PP | RB ^VP | VB RB ^VP | VBP RB ^VP | UH ^VP | UH ^VP PP

# Yes/no questions
S -> MD NP ^VP | VBZ NP ^VP | VBP NP ^VP | VBD NP ^VP
S -> VBZ NP NP | VBP NP NP | VBD NP NP
S -> VBZ NP JJ | VBZ NP RB JJ | VBP NP JJ | VBD NP JJ

# Wh-questions
S -> WRB VBZ NP ^VP | WRB VBP NP ^VP | WRB VBD NP ^VP | WRB MD NP ^VP
S -> WP VBZ NP ^VP | WP VBP NP ^VP | WP VBD NP ^VP | WP MD NP ^VP
S -> WDT NN VBZ NP ^VP | WDT NN VBP NP ^VP | WDT NN VBD NP ^VP
S -> WDT NNS VBZ NP ^VP
S -> WP ^VP | WDT NN ^VP | WDT NNS ^VP
S -> WP VBZ ^VP | WP VBP ^VP | WP VBD ^VP
S -> WRB VBZ NP ^VP RB | WRB VBP NP ^VP RB | WRB VBD NP ^VP RB
S -> WRB MD NP ^VP RB

# Coordination and fragments
S -> S CC S
S -> ^NP

# --- Noun phrases -----------------------------------------------------------

NP -> ^PRP | ^NNP | ^NNPS | NNP ^NNP | ^NN | ^NNS | ^EX
NP -> DT ^NN | DT ^NNS | DT NN ^NN | NN ^NN
NP -> DT JJ ^NN | DT JJ ^NNS | DT RB JJ ^NN | DT RB JJ ^NNS
NP -> DT JJR ^NN | DT JJR ^NNS | DT JJS ^NN | DT JJS ^NNS
NP -> DT RBS JJ ^NN | DT RBS JJ ^NNS
NP -> JJ ^NN | JJ ^NNS | RB JJ ^NN | RB JJ ^NNS
NP -> JJR ^NN | JJR ^NNS | JJS ^NN | JJS ^NNS | RBS JJ ^NN
NP -> DT JJ JJ ^NN | DT JJ JJ ^NNS
NP -> PRP$ ^NN | PRP$ ^NNS | PRP$ JJ ^NN | PRP$ JJ ^NNS
NP -> CD ^NN | CD ^NNS | CD JJ ^NNS | DT CD ^NNS
NP -> ^NP PP
NP -> ^VBG | DT ^VBG
NP -> DT VBN ^NN | DT VBN ^NNS | VBN ^NN | VBN ^NNS
NP -> NP CC NP | PRP CC PRP

# --- Verb phrases -----------------------------------------------------------

VP -> ^VB | ^VBD | ^VBP | ^VBZ | ^VBG
VP -> ^VB NP | ^VBD NP | ^VBP NP | ^VBZ NP | ^VBG NP | ^VBN NP
VP -> ^VB NP NP | ^VBD NP NP | ^VBP NP NP | ^VBZ NP NP
VP -> ^VB PP | ^VBD PP | ^VBP PP | ^VBZ PP
VP -> ^VB NP PP | ^VBD NP PP | ^VBP NP PP | ^VBZ NP PP
VP -> ^VB RB | ^VBD RB | ^VBP RB | ^VBZ RB
VP -> ^VB RB RB | ^VBD RB RB | ^VBZ RB RB | ^VB RBR | ^VB RBS
VP -> ^VBD NP RB | ^VBP NP RB | ^VBZ NP RB
VP -> ^MD VB | ^MD VB NP | ^MD VB PP | ^MD VB NP PP
VP -> ^MD VB VBN | ^MD VB VBN NP
VP -> ^VBZ VBG | ^VBP VBG | ^VBD VBG | ^MD VBG
VP -> ^VBZ VBG NP | ^VBP VBG NP | ^VBD VBG NP
VP -> ^VBZ VBN | ^VBP VBN | ^VBZ VBN PP | ^VBP VBN PP | ^VBD VBN PP
VP -> ^VBZ RB VP | ^VBP RB VP | ^VBD RB VP | ^MD RB VP
VP -> ^VB TO VB | ^VBD TO VB | ^VBP TO VB | ^VBZ TO VB
VP -> ^VB TO VB NP | ^VBD TO VB NP | ^VBP TO VB NP | ^VBZ TO VB NP
VP -> ^VBZ JJ | ^VBZ RB JJ | ^VBZ JJR | ^VBZ JJS
VP -> ^VBP JJ | ^VBP RB JJ | ^VBD JJ | ^VBD RB JJ
VP -> ^VB RP | ^VBD RP | ^VBP RP | ^VBZ RP | ^VB RP NP | ^VBD RP NP
VP -> ^VBD RB PP | ^VBD RB RB PP | ^VBZ RB PP | ^VBP RB PP
VP -> ^VBZ JJ NP | ^VBZ RB JJ NP | ^VBZ RBS JJ NP | ^VBP JJ NP | ^VBD JJ NP
VP -> ^VB JJ NP | ^VB RB JJ NP
VP -> ^VBD JJ PP | ^VBD RB JJ PP | ^VBZ JJ PP | ^VBP JJ PP
VP -> ^VBD JJ S | ^VBZ JJ S
VP -> VP CC VP

# --- Prepositional phrases --------------------------------------------------

PP -> IN ^NP | TO ^NP | IN ^NP PP | TO VB
`
