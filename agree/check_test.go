package agree

import (
	"strings"
	"testing"

	"github.com/mbreuer/gramcheck"
	"github.com/mbreuer/gramcheck/grammar"
	"github.com/mbreuer/gramcheck/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// --- tree construction helpers ----------------------------------------------

var pos int // leaf positions, reset per tree

func leaf(surface, tag string, m gramcheck.Morph) *tree.Node {
	t := gramcheck.Token{Surface: surface, Tag: tag, Morph: m}
	n := &tree.Node{
		Label: tag,
		Span:  gramcheck.Span{pos, pos + 1},
		Token: &t,
		Head:  grammar.NoHead,
	}
	pos++
	return n
}

func phrase(label string, head int, children ...*tree.Node) *tree.Node {
	span := children[0].Span
	for _, c := range children[1:] {
		span = span.Extend(c.Span)
	}
	return &tree.Node{Label: label, Span: span, Head: head, Children: children}
}

func noMorph() gramcheck.Morph { return gramcheck.Morph{} }

func sg3() gramcheck.Morph {
	return gramcheck.Morph{Number: gramcheck.Singular, Person: gramcheck.Third}
}

func sg1() gramcheck.Morph {
	return gramcheck.Morph{Number: gramcheck.Singular, Person: gramcheck.First}
}

// --- determiner–noun ----------------------------------------------------------

func TestDeterminerNounViolation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramcheck.agree")
	defer teardown()
	//
	pos = 0
	// "these book" as a bare NP fragment
	root := phrase("S", 0,
		phrase("NP", 1,
			leaf("these", "DT", gramcheck.Morph{Number: gramcheck.Plural}),
			leaf("book", "NN", noMorph()),
		),
	)
	violations := NewChecker(nil).Check(root)
	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, have %d: %v", len(violations), violations)
	}
	if violations[0].Kind != DeterminerNoun {
		t.Errorf("expected a determiner-noun violation, have %s", violations[0].Kind)
	}
	if violations[0].Span != (gramcheck.Span{0, 2}) {
		t.Errorf("violation should cover both tokens, spans %s", violations[0].Span)
	}
}

func TestDeterminerNounByLemma(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramcheck.agree")
	defer teardown()
	//
	checker := NewChecker(nil)
	cases := []struct {
		det, noun, nounTag string
		bad                bool
	}{
		{"a", "book", "NN", false},
		{"a", "books", "NNS", true},
		{"the", "book", "NN", false},
		{"the", "books", "NNS", false},
		{"these", "books", "NNS", false},
		{"this", "books", "NNS", true},
	}
	for _, c := range cases {
		pos = 0
		root := phrase("NP", 1,
			leaf(c.det, "DT", noMorph()),
			leaf(c.noun, c.nounTag, noMorph()),
		)
		violations := checker.Check(root)
		if c.bad && len(violations) == 0 {
			t.Errorf("%q %q should violate agreement", c.det, c.noun)
		}
		if !c.bad && len(violations) > 0 {
			t.Errorf("%q %q should be fine, have %v", c.det, c.noun, violations)
		}
	}
}

func TestDeterminerNounSkipsModifiers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramcheck.agree")
	defer teardown()
	//
	pos = 0
	// "these big book": the adjective must not mask the disagreement
	root := phrase("NP", 2,
		leaf("these", "DT", noMorph()),
		leaf("big", "JJ", noMorph()),
		leaf("book", "NN", noMorph()),
	)
	if violations := NewChecker(nil).Check(root); len(violations) != 1 {
		t.Errorf("expected 1 violation, have %v", violations)
	}
}

// --- subject–verb --------------------------------------------------------------

func subjectVerbTree(subjMorph gramcheck.Morph, verbSurface, verbTag string) *tree.Node {
	pos = 0
	return phrase("S", 1,
		phrase("NP", 0, leaf("x", "PRP", subjMorph)),
		phrase("VP", 0, leaf(verbSurface, verbTag, noMorph())),
	)
}

func TestSubjectVerbAgreement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramcheck.agree")
	defer teardown()
	//
	checker := NewChecker(nil)
	cases := []struct {
		morph   gramcheck.Morph
		verbTag string
		bad     bool
	}{
		{sg3(), "VBZ", false}, // he runs
		{sg3(), "VBP", true},  // he run
		{sg1(), "VBP", false}, // I run
		{sg1(), "VBZ", true},  // I runs
		{gramcheck.Morph{Number: gramcheck.Plural, Person: gramcheck.Third}, "VBZ", true}, // they runs
		{sg3(), "VBD", false},    // he ran: past is exempt
		{noMorph(), "VBZ", false}, // unconstrained features never fire
	}
	for _, c := range cases {
		root := subjectVerbTree(c.morph, "x", c.verbTag)
		violations := checker.Check(root)
		hasSV := false
		for _, v := range violations {
			if v.Kind == SubjectVerb {
				hasSV = true
			}
		}
		if c.bad && !hasSV {
			t.Errorf("subject %+v with %s should violate agreement", c.morph, c.verbTag)
		}
		if !c.bad && hasSV {
			t.Errorf("subject %+v with %s should agree, have %v", c.morph, c.verbTag, violations)
		}
	}
}

func TestCoordinatedSubjectIsPlural(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramcheck.agree")
	defer teardown()
	//
	pos = 0
	// "the cat and the dog runs": coordinated subjects are plural
	root := phrase("S", 1,
		phrase("NP", grammar.NoHead,
			phrase("NP", 1, leaf("the", "DT", noMorph()), leaf("cat", "NN", noMorph())),
			leaf("and", "CC", noMorph()),
			phrase("NP", 1, leaf("the", "DT", noMorph()), leaf("dog", "NN", noMorph())),
		),
		phrase("VP", 0, leaf("runs", "VBZ", noMorph())),
	)
	violations := NewChecker(nil).Check(root)
	found := false
	for _, v := range violations {
		if v.Kind == SubjectVerb {
			found = true
		}
	}
	if !found {
		t.Errorf("coordinated subject with VBZ should violate agreement, have %v", violations)
	}
}

// --- subcategorization ----------------------------------------------------------

func TestSubcategorizationMotionVerb(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramcheck.agree")
	defer teardown()
	//
	pos = 0
	// "I went the school": go rejects a bare NP object
	root := phrase("S", 1,
		phrase("NP", 0, leaf("I", "PRP", sg1())),
		phrase("VP", 0,
			leaf("went", "VBD", gramcheck.Morph{Tense: gramcheck.Past, Lemma: "go"}),
			phrase("NP", 1, leaf("the", "DT", noMorph()), leaf("school", "NN", noMorph())),
		),
	)
	violations := NewChecker(nil).Check(root)
	if len(violations) != 1 || violations[0].Kind != Subcategorization {
		t.Fatalf("expected a subcategorization violation, have %v", violations)
	}
	if !strings.Contains(violations[0].Message, "preposition") {
		t.Errorf("message should name the missing preposition, have %q", violations[0].Message)
	}
}

func TestSubcategorizationAllowsPP(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramcheck.agree")
	defer teardown()
	//
	pos = 0
	// "I went to the school"
	root := phrase("S", 1,
		phrase("NP", 0, leaf("I", "PRP", sg1())),
		phrase("VP", 0,
			leaf("went", "VBD", gramcheck.Morph{Tense: gramcheck.Past, Lemma: "go"}),
			phrase("PP", 1,
				leaf("to", "TO", noMorph()),
				phrase("NP", 1, leaf("the", "DT", noMorph()), leaf("school", "NN", noMorph())),
			),
		),
	)
	if violations := NewChecker(nil).Check(root); len(violations) != 0 {
		t.Errorf("motion verb with PP should be fine, have %v", violations)
	}
}

func TestSubcategorizationStrictTransitive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramcheck.agree")
	defer teardown()
	//
	pos = 0
	// "she devoured": devour demands an object
	root := phrase("S", 1,
		phrase("NP", 0, leaf("she", "PRP", sg3())),
		phrase("VP", 0,
			leaf("devoured", "VBD", gramcheck.Morph{Tense: gramcheck.Past, Lemma: "devour"}),
		),
	)
	violations := NewChecker(nil).Check(root)
	if len(violations) != 1 || violations[0].Kind != Subcategorization {
		t.Fatalf("expected a subcategorization violation, have %v", violations)
	}
	if !strings.Contains(violations[0].Message, "direct object") {
		t.Errorf("message should name the missing object, have %q", violations[0].Message)
	}
}

func TestSubcategorizationUnknownLemma(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramcheck.agree")
	defer teardown()
	//
	pos = 0
	root := phrase("S", 1,
		phrase("NP", 0, leaf("he", "PRP", sg3())),
		phrase("VP", 0,
			leaf("zorbed", "VBD", gramcheck.Morph{Tense: gramcheck.Past, Lemma: "zorb"}),
			phrase("NP", 1, leaf("the", "DT", noMorph()), leaf("ball", "NN", noMorph())),
		),
	)
	if violations := NewChecker(nil).Check(root); len(violations) != 0 {
		t.Errorf("unknown verbs are never checked, have %v", violations)
	}
}

// --- frame table ----------------------------------------------------------------

func TestLoadFrames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramcheck.agree")
	defer teardown()
	//
	table, err := LoadFrames(strings.NewReader(`{
		"_source": "test",
		"verbs": {
			"go":  {"allows_np": false, "requires_pp": true},
			"buy": {"allows_np": true}
		}
	}`))
	if err != nil {
		t.Fatalf("cannot load frames: %v", err)
	}
	if table.Len() != 2 {
		t.Errorf("expected 2 frames, have %d", table.Len())
	}
	f, ok := table.Lookup("go")
	if !ok || !f.RequiresPP || f.AllowsNP {
		t.Errorf("frame for 'go' is wrong: %+v", f)
	}
	if _, err := LoadFrames(strings.NewReader(`{"verbs": {}}`)); err == nil {
		t.Errorf("an empty frame table should be rejected")
	}
}
