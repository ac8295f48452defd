package agree

import (
	"fmt"

	"github.com/mbreuer/gramcheck"
	"github.com/mbreuer/gramcheck/tree"
)

// --- Violations ---------------------------------------------------------------

// Kind classifies an agreement violation.
type Kind int8

const (
	SubjectVerb Kind = iota
	DeterminerNoun
	Subcategorization
)

func (k Kind) String() string {
	switch k {
	case SubjectVerb:
		return "subject-verb"
	case DeterminerNoun:
		return "determiner-noun"
	case Subcategorization:
		return "subcategorization"
	}
	return "?"
}

// Violation is one failed agreement check, located at the span of the tree
// node where the check fired.
type Violation struct {
	Kind    Kind
	Span    gramcheck.Span
	Message string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s %s: %s", v.Kind, v.Span, v.Message)
}

// --- The checker --------------------------------------------------------------

// Checker runs agreement and subcategorization checks over syntax trees.
// A Checker is immutable and safe for concurrent use.
type Checker struct {
	frames *FrameTable
}

// NewChecker creates a checker validating against the given frame table.
// A nil table falls back on the built-in default frames.
func NewChecker(frames *FrameTable) *Checker {
	if frames == nil {
		frames = DefaultFrames()
	}
	return &Checker{frames: frames}
}

// Check walks the tree and collects every agreement violation, in tree order.
// An empty result means the tree is clean.
func (c *Checker) Check(root *tree.Node) []Violation {
	var violations []Violation
	root.Walk(func(n *tree.Node) bool {
		if n.IsLeaf() {
			return true
		}
		violations = append(violations, c.checkDeterminer(n)...)
		if v := c.checkSubjectVerb(n); v != nil {
			violations = append(violations, *v)
		}
		violations = append(violations, c.checkSubcategorization(n)...)
		return true
	})
	if len(violations) > 0 {
		tracer().Debugf("tree %s has %d violations", root.Span, len(violations))
	}
	return violations
}

// --- Determiner–noun agreement ------------------------------------------------

// determinerNumber is the number a determiner imposes on its noun; lemmas not
// listed impose none. Morphological number on the token takes precedence.
var determinerNumber = map[string]string{
	"a":     gramcheck.Singular,
	"an":    gramcheck.Singular,
	"this":  gramcheck.Singular,
	"that":  gramcheck.Singular,
	"these": gramcheck.Plural,
	"those": gramcheck.Plural,
}

// checkDeterminer checks number agreement between a determiner child and the
// following noun child, skipping intervening modifiers.
func (c *Checker) checkDeterminer(n *tree.Node) []Violation {
	var violations []Violation
	for i, child := range n.Children {
		if !child.IsLeaf() || child.Label != "DT" {
			continue
		}
		dtNum := child.Token.Morph.Number
		if dtNum == "" {
			dtNum = determinerNumber[leafFeatures(child.Token).lemma]
		}
		if dtNum == "" {
			continue // "the" and friends combine with anything
		}
		noun := followingNoun(n.Children[i+1:])
		if noun == nil {
			continue
		}
		nounNum := leafFeatures(noun.Token).number
		if nounNum == "" || nounNum == dtNum {
			continue
		}
		violations = append(violations, Violation{
			Kind: DeterminerNoun,
			Span: child.Span.Extend(noun.Span),
			Message: fmt.Sprintf("determiner %q (%s) does not agree with %q (%s)",
				child.Token.Surface, dtNum, noun.Token.Surface, nounNum),
		})
	}
	return violations
}

// followingNoun returns the first noun leaf among siblings, skipping
// adjectives, adverbs and participles used attributively.
func followingNoun(siblings []*tree.Node) *tree.Node {
	for _, s := range siblings {
		if !s.IsLeaf() {
			return nil
		}
		switch s.Label {
		case "JJ", "JJR", "JJS", "RB", "RBS", "CD", "VBN":
			continue
		case "NN", "NNS":
			return s
		default:
			return nil
		}
	}
	return nil
}

// --- Subject–verb agreement ---------------------------------------------------

// checkSubjectVerb fires on clause nodes with a subject NP followed by a VP.
// The present-tense rules of English apply: VBZ wants a third person singular
// subject, VBP wants anything but; past tense is exempt.
func (c *Checker) checkSubjectVerb(n *tree.Node) *Violation {
	if n.Label != "S" || len(n.Children) < 2 {
		return nil
	}
	if n.Children[0].Label != "NP" || n.Children[1].Label != "VP" {
		return nil
	}
	subject := featuresOf(n.Children[0])
	verb := headVerb(n.Children[1])
	if verb == nil {
		return nil
	}
	vf := leafFeatures(verb.Token)
	if vf.tense == gramcheck.Past {
		return nil
	}
	thirdSingular := subject.person == gramcheck.Third && subject.number == gramcheck.Singular
	undetermined := subject.person == "" || subject.number == ""

	switch verb.Label {
	case "VBZ":
		if !thirdSingular && !undetermined {
			return &Violation{
				Kind: SubjectVerb,
				Span: n.Span,
				Message: fmt.Sprintf("verb %q requires a third person singular subject, subject is %s person %s",
					verb.Token.Surface, personName(subject.person), numberName(subject.number)),
			}
		}
	case "VBP":
		if thirdSingular {
			return &Violation{
				Kind: SubjectVerb,
				Span: n.Span,
				Message: fmt.Sprintf("verb %q does not combine with a third person singular subject",
					verb.Token.Surface),
			}
		}
	}
	return nil
}

func personName(p string) string {
	switch p {
	case gramcheck.First:
		return "first"
	case gramcheck.Second:
		return "second"
	case gramcheck.Third:
		return "third"
	}
	return "unknown"
}

func numberName(num string) string {
	switch num {
	case gramcheck.Singular:
		return "singular"
	case gramcheck.Plural:
		return "plural"
	}
	return "unknown"
}

// --- Verb subcategorization ---------------------------------------------------

// checkSubcategorization fires on clause nodes containing a VP. The verb's
// arguments are the VP-internal constituents after the head verb plus the
// VP's right siblings within the clause, which is where the grammar attaches
// sentence-final adjuncts.
func (c *Checker) checkSubcategorization(n *tree.Node) []Violation {
	if n.Label != "S" {
		return nil
	}
	vpIdx := -1
	for i, child := range n.Children {
		if child.Label == "VP" {
			vpIdx = i
			break
		}
	}
	if vpIdx < 0 {
		return nil
	}
	vp := n.Children[vpIdx]
	verb := headVerb(vp)
	if verb == nil {
		return nil
	}
	frame, known := c.frames.Lookup(leafFeatures(verb.Token).lemma)
	if !known {
		return nil
	}
	args := argumentsAfter(vp, verb)
	args = append(args, n.Children[vpIdx+1:]...)

	hasNP, hasPP, hasAny := false, false, len(args) > 0
	for _, a := range args {
		switch a.Label {
		case "NP":
			hasNP = true
		case "PP":
			hasPP = true
		}
	}

	lemma := leafFeatures(verb.Token).lemma
	var violations []Violation
	if hasNP && !hasPP {
		if frame.RequiresPP {
			violations = append(violations, Violation{
				Kind: Subcategorization,
				Span: vp.Span,
				Message: fmt.Sprintf("verb %q requires a preposition with its object",
					lemma),
			})
		} else if !frame.AllowsNP {
			violations = append(violations, Violation{
				Kind: Subcategorization,
				Span: vp.Span,
				Message: fmt.Sprintf("verb %q does not take a direct object",
					lemma),
			})
		}
	}
	if frame.RequiresPP && !hasPP && !hasNP && hasAny {
		violations = append(violations, Violation{
			Kind: Subcategorization,
			Span: vp.Span,
			Message: fmt.Sprintf("verb %q requires a prepositional phrase", lemma),
		})
	}
	if frame.RequiresNP && !hasNP {
		violations = append(violations, Violation{
			Kind: Subcategorization,
			Span: vp.Span,
			Message: fmt.Sprintf("verb %q requires a direct object", lemma),
		})
	}
	return violations
}

// argumentsAfter collects the constituents following the head verb inside the
// verb phrase, descending through nested VPs on the head path.
func argumentsAfter(vp *tree.Node, verb *tree.Node) []*tree.Node {
	var args []*tree.Node
	n := vp
	for n != nil && !n.IsLeaf() {
		next := headOf(n)
		passed := false
		for _, child := range n.Children {
			if child == next {
				passed = true
				continue
			}
			if passed {
				args = append(args, child)
			}
		}
		if next == verb {
			break
		}
		n = next
	}
	return args
}
