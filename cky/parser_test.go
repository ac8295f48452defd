package cky

import (
	"testing"

	"github.com/mbreuer/gramcheck"
	"github.com/mbreuer/gramcheck/cnf"
	"github.com/mbreuer/gramcheck/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pkg/errors"
)

func makeCNFGrammar(t *testing.T, text string) *cnf.Grammar {
	g, err := grammar.Parse("test", text)
	if err != nil {
		t.Fatalf("cannot build grammar: %v", err)
	}
	cg, _, err := cnf.Convert(g)
	if err != nil {
		t.Fatalf("cannot convert grammar: %v", err)
	}
	return cg
}

func tok(surface, tag string) gramcheck.Token {
	return gramcheck.Token{Surface: surface, Tag: tag}
}

const toyGrammar = `
S  -> NP VP
NP -> DT NN | PRP | NP PP
VP -> VBD NP | VP PP
PP -> IN NP
`

func TestParseRecognizes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramcheck.cky")
	defer teardown()
	//
	cg := makeCNFGrammar(t, toyGrammar)
	chart, err := Parse(cg, []gramcheck.Token{
		tok("he", "PRP"), tok("saw", "VBD"), tok("the", "DT"), tok("man", "NN"),
	})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !chart.Recognized() {
		t.Errorf("sequence PRP VBD DT NN should be recognized")
	}
	if chart.Len() != 4 {
		t.Errorf("chart should cover 4 tokens, has %d", chart.Len())
	}
}

func TestParseRejectsWithoutError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramcheck.cky")
	defer teardown()
	//
	cg := makeCNFGrammar(t, toyGrammar)
	chart, err := Parse(cg, []gramcheck.Token{
		tok("the", "DT"), tok("saw", "VBD"), tok("he", "PRP"),
	})
	if err != nil {
		t.Fatalf("an unparseable sequence must not be an error, have %v", err)
	}
	if chart.Recognized() {
		t.Errorf("sequence DT VBD PRP should not be recognized")
	}
	if len(chart.Derivations()) != 0 {
		t.Errorf("unrecognized chart should have no derivations")
	}
}

func TestParseRejectsUnknownTag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramcheck.cky")
	defer teardown()
	//
	cg := makeCNFGrammar(t, toyGrammar)
	_, err := Parse(cg, []gramcheck.Token{tok("hello", "UH")})
	if !errors.Is(err, gramcheck.ErrInput) {
		t.Errorf("expected ErrInput for unknown tag, have %v", err)
	}
	_, err = Parse(cg, nil)
	if !errors.Is(err, gramcheck.ErrInput) {
		t.Errorf("expected ErrInput for empty input, have %v", err)
	}
}

func TestParseKeepsAmbiguity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramcheck.cky")
	defer teardown()
	//
	// the classic PP attachment ambiguity: [saw [the man] [with the dog]]
	// vs. [saw [the man with the dog]]
	cg := makeCNFGrammar(t, toyGrammar)
	chart, err := Parse(cg, []gramcheck.Token{
		tok("he", "PRP"), tok("saw", "VBD"), tok("the", "DT"), tok("man", "NN"),
		tok("with", "IN"), tok("the", "DT"), tok("dog", "NN"),
	})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if n := len(chart.Derivations()); n != 2 {
		t.Errorf("expected 2 derivations, have %d", n)
	}
}

func TestParseDerivationOrderIsStable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramcheck.cky")
	defer teardown()
	//
	cg := makeCNFGrammar(t, toyGrammar)
	input := []gramcheck.Token{
		tok("he", "PRP"), tok("saw", "VBD"), tok("the", "DT"), tok("man", "NN"),
		tok("with", "IN"), tok("the", "DT"), tok("dog", "NN"),
	}
	first, err := Parse(cg, input)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	second, err := Parse(cg, input)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	a, b := first.Derivations(), second.Derivations()
	if len(a) != len(b) {
		t.Fatalf("derivation counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Rule != b[i].Rule {
			t.Errorf("derivation %d uses different rules across runs", i)
		}
	}
}
