package pipeline

import (
	"github.com/mbreuer/gramcheck"
	"github.com/mbreuer/gramcheck/agree"
	"github.com/mbreuer/gramcheck/cky"
	"github.com/mbreuer/gramcheck/cnf"
	"github.com/mbreuer/gramcheck/grammar"
	"github.com/mbreuer/gramcheck/tree"
)

// Checker is the assembled grammaticality checker. It holds the grammar, its
// CNF form and the agreement checker; all of these are immutable, so one
// Checker serves concurrent Check calls.
type Checker struct {
	grammar *grammar.Grammar
	cnf     *cnf.Grammar
	rmap    *cnf.Map
	agree   *agree.Checker
}

// Option configures a Checker under construction.
type Option func(*options)

type options struct {
	grammar *grammar.Grammar
	frames  *agree.FrameTable
}

// WithGrammar replaces the built-in English grammar.
func WithGrammar(g *grammar.Grammar) Option {
	return func(o *options) { o.grammar = g }
}

// WithFrames replaces the built-in verb subcategorization frames.
func WithFrames(t *agree.FrameTable) Option {
	return func(o *options) { o.frames = t }
}

// New builds a checker. Without options it checks against the built-in
// English grammar and default verb frames. Grammar conversion happens here,
// once; a grammar that cannot be converted fails construction.
func New(opts ...Option) (*Checker, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	g := o.grammar
	if g == nil {
		g = grammar.English()
	}
	cnfGrammar, rmap, err := cnf.Convert(g)
	if err != nil {
		return nil, err
	}
	tracer().Infof("checker ready: grammar %q, %d CNF rules", g.Name, cnfGrammar.Size())
	return &Checker{
		grammar: g,
		cnf:     cnfGrammar,
		rmap:    rmap,
		agree:   agree.NewChecker(o.frames),
	}, nil
}

// Grammar returns the grammar the checker validates against.
func (c *Checker) Grammar() *grammar.Grammar {
	return c.grammar
}

// Result is the judgement for one token sequence.
type Result struct {
	// Grammatical is true when some derivation parses and passes all
	// agreement checks.
	Grammatical bool `json:"grammatical"`
	// Recognized is true when the grammar licenses at least one derivation,
	// agreement aside. Grammatical implies Recognized.
	Recognized bool `json:"recognized"`
	// Tags is the input POS tag sequence.
	Tags []string `json:"tags"`
	// Tree is the selected syntax tree: the first clean derivation, or the
	// first derivation when all have violations. Nil if unrecognized.
	Tree *tree.Node `json:"-"`
	// Bracket is Tree in labelled bracket notation.
	Bracket string `json:"bracket,omitempty"`
	// Violations of the selected derivation; empty when Grammatical.
	Violations []agree.Violation `json:"violations,omitempty"`
}

// Check parses the tagged token sequence and judges its grammaticality.
// An error is returned only for rejected input (gramcheck.ErrInput) or an
// internal inconsistency (gramcheck.ErrInvariant); a sequence the grammar
// does not recognize produces a result with Recognized and Grammatical both
// false.
func (c *Checker) Check(tokens []gramcheck.Token) (*Result, error) {
	result := &Result{Tags: make([]string, len(tokens))}
	for i, tok := range tokens {
		result.Tags[i] = tok.Tag
	}
	chart, err := cky.Parse(c.cnf, tokens)
	if err != nil {
		return nil, err
	}
	if !chart.Recognized() {
		tracer().Infof("no derivation for %v", result.Tags)
		return result, nil
	}
	result.Recognized = true

	selected, violations, err := c.agree.Select(c.rmap, chart)
	if err != nil {
		return nil, err
	}
	result.Tree = selected
	if selected != nil {
		result.Bracket = selected.Bracket()
	}
	result.Violations = violations
	result.Grammatical = len(violations) == 0
	tracer().Infof("checked %v: grammatical=%t, %d violations",
		result.Tags, result.Grammatical, len(violations))
	return result, nil
}
