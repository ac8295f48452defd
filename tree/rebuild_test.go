package tree

import (
	"testing"

	"github.com/mbreuer/gramcheck"
	"github.com/mbreuer/gramcheck/cky"
	"github.com/mbreuer/gramcheck/cnf"
	"github.com/mbreuer/gramcheck/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func parse(t *testing.T, text string, tokens []gramcheck.Token) (*cnf.Map, *cky.Chart) {
	g, err := grammar.Parse("test", text)
	if err != nil {
		t.Fatalf("cannot build grammar: %v", err)
	}
	cg, m, err := cnf.Convert(g)
	if err != nil {
		t.Fatalf("cannot convert grammar: %v", err)
	}
	chart, err := cky.Parse(cg, tokens)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !chart.Recognized() {
		t.Fatalf("input not recognized")
	}
	return m, chart
}

func tok(surface, tag string) gramcheck.Token {
	return gramcheck.Token{Surface: surface, Tag: tag}
}

func TestReconstructUndoesBinarization(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramcheck.tree")
	defer teardown()
	//
	// NP → DT JJ NN is ternary and forces a binarization cascade
	m, chart := parse(t, `
S  -> NP ^VP
NP -> DT JJ ^NN
VP -> ^VBZ
`, []gramcheck.Token{
		tok("the", "DT"), tok("big", "JJ"), tok("dog", "NN"), tok("barks", "VBZ"),
	})
	root, err := Reconstruct(m, chart.Derivations()[0])
	if err != nil {
		t.Fatalf("reconstruction failed: %v", err)
	}
	want := "(S (NP (DT the) (JJ big) (NN dog)) (VP (VBZ barks)))"
	if root.Bracket() != want {
		t.Errorf("expected %s, have %s", want, root.Bracket())
	}
}

func TestReconstructExpandsUnitChains(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramcheck.tree")
	defer teardown()
	//
	// S → NP and NP → PRP collapse during conversion and must reappear
	m, chart := parse(t, `
S  -> NP VP | NP
NP -> ^PRP
VP -> ^VBZ
`, []gramcheck.Token{tok("he", "PRP")})
	root, err := Reconstruct(m, chart.Derivations()[0])
	if err != nil {
		t.Fatalf("reconstruction failed: %v", err)
	}
	want := "(S (NP (PRP he)))"
	if root.Bracket() != want {
		t.Errorf("expected %s, have %s", want, root.Bracket())
	}
}

func TestReconstructKeepsHeadAnnotations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramcheck.tree")
	defer teardown()
	//
	m, chart := parse(t, `
S  -> NP ^VP
NP -> DT ^NN
VP -> ^VBZ NP
`, []gramcheck.Token{
		tok("the", "DT"), tok("dog", "NN"), tok("chases", "VBZ"),
		tok("the", "DT"), tok("cat", "NN"),
	})
	root, err := Reconstruct(m, chart.Derivations()[0])
	if err != nil {
		t.Fatalf("reconstruction failed: %v", err)
	}
	if root.Head != 1 {
		t.Errorf("S should be headed by its VP, head is %d", root.Head)
	}
	np := root.Children[0]
	if np.Label != "NP" || np.HeadChild() == nil || np.HeadChild().Label != "NN" {
		t.Errorf("NP should be headed by its noun, have %v", np.HeadChild())
	}
}

func TestReconstructSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramcheck.tree")
	defer teardown()
	//
	m, chart := parse(t, `
S  -> NP ^VP
NP -> DT ^NN
VP -> ^VBZ NP
`, []gramcheck.Token{
		tok("the", "DT"), tok("dog", "NN"), tok("chases", "VBZ"),
		tok("the", "DT"), tok("cat", "NN"),
	})
	root, err := Reconstruct(m, chart.Derivations()[0])
	if err != nil {
		t.Fatalf("reconstruction failed: %v", err)
	}
	if root.Span != (gramcheck.Span{0, 5}) {
		t.Errorf("root should span the whole input, has %s", root.Span)
	}
	vp := root.Children[1]
	if vp.Span != (gramcheck.Span{2, 5}) {
		t.Errorf("VP should span (2…5), has %s", vp.Span)
	}
	leaves := root.Leaves()
	if len(leaves) != 5 {
		t.Fatalf("expected 5 leaves, have %d", len(leaves))
	}
	for i, leaf := range leaves {
		if leaf.Span != (gramcheck.Span{i, i + 1}) {
			t.Errorf("leaf %d has span %s", i, leaf.Span)
		}
	}
}
