package cky

import (
	"github.com/mbreuer/gramcheck"
	"github.com/mbreuer/gramcheck/cnf"
	"github.com/pkg/errors"
)

// Parse fills a CKY chart over the tagged token sequence. The returned chart
// holds every derivation the grammar licenses; an unrecognized but well-formed
// input yields a chart without derivations, not an error.
//
// An empty sequence, or a token whose tag is not a terminal of the source
// grammar, rejects the input with gramcheck.ErrInput.
func Parse(g *cnf.Grammar, tokens []gramcheck.Token) (*Chart, error) {
	if len(tokens) == 0 {
		return nil, errors.Wrap(gramcheck.ErrInput, "empty token sequence")
	}
	for i, tok := range tokens {
		if !g.Source.IsKnownTerminal(tok.Tag) {
			return nil, errors.Wrapf(gramcheck.ErrInput,
				"token %d (%s): tag %s unknown to grammar %q",
				i, tok, tok.Tag, g.Source.Name)
		}
	}
	chart := newChart(g, tokens)

	// length-1 spans: apply the lexical rules
	for i, tok := range tokens {
		for _, r := range g.Lexical[tok.Tag] {
			chart.add(&Entry{
				Symbol: r.LHS,
				Span:   gramcheck.Span{i, i + 1},
				Lex:    r,
				Token:  tok,
			})
		}
	}
	chart.dump(1)

	// longer spans: combine adjacent cells with the binary rules
	n := len(tokens)
	for length := 2; length <= n; length++ {
		for from := 0; from+length <= n; from++ {
			for split := from + 1; split < from+length; split++ {
				combine(chart, from, split, from+length)
			}
		}
		chart.dump(length)
	}
	tracer().Infof("chart for %d tokens complete, %d derivations",
		n, len(chart.Derivations()))
	return chart, nil
}

// combine pairs every entry of cell (from…split) with every entry of cell
// (split…to) and applies the matching binary rules.
func combine(chart *Chart, from, split, to int) {
	lefts := chart.cell(from, split).Iterator()
	for lefts.Next() {
		left := lefts.Value().(*Entry)
		rights := chart.cell(split, to).Iterator()
		for rights.Next() {
			right := rights.Value().(*Entry)
			for _, r := range chart.grammar.RulesFor(left.Symbol, right.Symbol) {
				chart.add(&Entry{
					Symbol: r.LHS,
					Span:   gramcheck.Span{from, to},
					Rule:   r,
					Left:   left,
					Right:  right,
				})
			}
		}
	}
}
