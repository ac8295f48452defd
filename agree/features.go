package agree

import (
	"strings"

	"github.com/mbreuer/gramcheck"
	"github.com/mbreuer/gramcheck/tree"
)

// --- Feature percolation ------------------------------------------------------

// features is the agreement-relevant feature bundle of a constituent. Empty
// strings mean the feature is unconstrained; checks never fail on an
// unconstrained feature.
type features struct {
	number  string
	person  string
	tense   string
	headTag string // POS tag of the head token
	lemma   string // lemma of the head token
}

var (
	nounTags     = map[string]bool{"NN": true, "NNS": true, "NNP": true, "NNPS": true}
	verbTags     = map[string]bool{"VB": true, "VBD": true, "VBP": true, "VBZ": true, "VBG": true, "VBN": true}
	singularTags = map[string]bool{"NN": true, "NNP": true}
	pluralTags   = map[string]bool{"NNS": true, "NNPS": true}
)

// featuresOf computes the feature bundle of a node bottom-up. Leaves take
// their features from the token, falling back on what the POS tag implies;
// inner nodes inherit from their head child, preferring the grammar's head
// annotation over a category-based guess. A coordinated noun phrase is
// third person plural regardless of its conjuncts.
func featuresOf(n *tree.Node) features {
	if n.IsLeaf() {
		return leafFeatures(n.Token)
	}
	if n.Label == "NP" && isCoordination(n) {
		head := featuresOf(headOf(n))
		return features{
			number:  gramcheck.Plural,
			person:  gramcheck.Third,
			headTag: head.headTag,
			lemma:   head.lemma,
		}
	}
	return featuresOf(headOf(n))
}

func leafFeatures(tok *gramcheck.Token) features {
	f := features{
		number:  tok.Morph.Number,
		person:  tok.Morph.Person,
		tense:   tok.Morph.Tense,
		headTag: tok.Tag,
		lemma:   strings.ToLower(tok.Lemma()),
	}
	if f.number == "" {
		if singularTags[tok.Tag] {
			f.number = gramcheck.Singular
		} else if pluralTags[tok.Tag] {
			f.number = gramcheck.Plural
		}
	}
	if f.person == "" && nounTags[tok.Tag] {
		f.person = gramcheck.Third
	}
	if f.tense == "" {
		switch tok.Tag {
		case "VBD":
			f.tense = gramcheck.Past
		case "VBZ", "VBP":
			f.tense = gramcheck.Present
		}
	}
	return f
}

// headOf returns the child whose features the node inherits: the annotated
// head if the grammar provides one, otherwise a category-based guess: the
// rightmost nominal child of an NP, the leftmost verbal child of a VP, the
// first child elsewhere.
func headOf(n *tree.Node) *tree.Node {
	if h := n.HeadChild(); h != nil {
		return h
	}
	switch n.Label {
	case "NP":
		for i := len(n.Children) - 1; i >= 0; i-- {
			c := n.Children[i]
			if c.Label == "NP" || nounTags[c.Label] || c.Label == "PRP" || c.Label == "EX" {
				return c
			}
		}
	case "VP":
		for _, c := range n.Children {
			if verbTags[c.Label] || c.Label == "MD" || c.Label == "VP" {
				return c
			}
		}
	case "PP":
		for _, c := range n.Children {
			if c.Label == "NP" {
				return c
			}
		}
	}
	return n.Children[0]
}

func isCoordination(n *tree.Node) bool {
	for _, c := range n.Children {
		if c.Label == "CC" {
			return true
		}
	}
	return false
}

// headVerb descends through a verb phrase to the token of its head verb.
// Nil if the phrase bottoms out without one.
func headVerb(vp *tree.Node) *tree.Node {
	n := vp
	for n != nil && !n.IsLeaf() {
		n = headOf(n)
	}
	if n != nil && (verbTags[n.Label] || n.Label == "MD") {
		return n
	}
	return nil
}
