package gramcheck

import "fmt"

// --- Tokens -----------------------------------------------------------------

// Morphological feature values as delivered by the external tagger. An empty
// string means the tagger did not commit to a value; checks treat it as
// unconstrained.
const (
	Singular = "sg"
	Plural   = "pl"

	First  = "1"
	Second = "2"
	Third  = "3"

	Present = "pres"
	Past    = "past"
)

// Morph carries the morphological features of a token. The core never infers
// features on its own; whatever the tagger supplies is taken at face value.
type Morph struct {
	Number string `json:"number,omitempty"` // Singular | Plural | ""
	Person string `json:"person,omitempty"` // First | Second | Third | ""
	Tense  string `json:"tense,omitempty"`  // Present | Past | ""
	Lemma  string `json:"lemma,omitempty"`  // base form, lower-case
}

// Token is one input word, tagged and morphologically annotated by an
// external tagger. Tokens are immutable as far as this module is concerned.
type Token struct {
	Surface string `json:"surface"`
	Tag     string `json:"tag"` // Penn Treebank POS tag, a grammar terminal
	Morph   Morph  `json:"morph"`
}

func (t Token) String() string {
	return fmt.Sprintf("%s/%s", t.Surface, t.Tag)
}

// Lemma returns the token's lemma, falling back to the surface form when the
// tagger supplied none.
func (t Token) Lemma() string {
	if t.Morph.Lemma != "" {
		return t.Morph.Lemma
	}
	return t.Surface
}

// --- Spans ------------------------------------------------------------------

// Span is a half-open run of token positions (from…to), to being the position
// just behind the last token covered. Every chart entry and every tree node
// tracks the span of input tokens it covers.
type Span [2]int

// From returns the start position of a span.
func (s Span) From() int {
	return s[0]
}

// To returns the end position of a span.
func (s Span) To() int {
	return s[1]
}

// Len returns the number of tokens covered by s.
func (s Span) Len() int {
	return s[1] - s[0]
}

// Extend widens s to cover other as well.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
