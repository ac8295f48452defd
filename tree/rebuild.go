package tree

import (
	"github.com/mbreuer/gramcheck"
	"github.com/mbreuer/gramcheck/cky"
	"github.com/mbreuer/gramcheck/cnf"
	"github.com/mbreuer/gramcheck/grammar"
	"github.com/pkg/errors"
)

// Reconstruct turns a chart derivation into a syntax tree over the original
// grammar symbols, using the reconstruction map produced during CNF
// conversion. The reconstructed tree is exactly the tree the original grammar
// derives: synthetic binarization symbols are dissolved, lifted preterminals
// are replaced by their token, and collapsed unit chains are re-expanded in
// full.
//
// A derivation which cannot be mapped back (a missing rule reference, or a
// node whose children do not line up with any source production) wraps
// gramcheck.ErrInvariant; this indicates a defect in conversion or parsing,
// not bad input.
func Reconstruct(m *cnf.Map, root *cky.Entry) (*Node, error) {
	nodes, err := rebuild(m, root)
	if err != nil {
		return nil, err
	}
	if len(nodes) != 1 {
		return nil, errors.Wrapf(gramcheck.ErrInvariant,
			"derivation root reconstructed to %d trees", len(nodes))
	}
	tracer().Debugf("reconstructed %s", nodes[0])
	return nodes[0], nil
}

// rebuild returns the forest a chart entry stands for: a single tree for
// entries labelled with an original symbol, the bare children for entries
// labelled with a synthetic one.
func rebuild(m *cnf.Map, e *cky.Entry) ([]*Node, error) {
	if e.IsLeaf() {
		tok := e.Token
		leaf := &Node{Label: tok.Tag, Span: e.Span, Token: &tok, Head: grammar.NoHead}
		if m.IsSpliced(e.Symbol) {
			// lifted preterminal, dissolved into the parent
			return []*Node{leaf}, nil
		}
		node, err := wrap(m, e.Symbol, e.Lex.Chain, e.Lex.Origin, []*Node{leaf})
		if err != nil {
			return nil, err
		}
		return []*Node{node}, nil
	}
	if e.Rule == nil {
		return nil, errors.Wrapf(gramcheck.ErrInvariant,
			"inner chart entry %s has no rule", e)
	}
	children, err := rebuild(m, e.Left)
	if err != nil {
		return nil, err
	}
	right, err := rebuild(m, e.Right)
	if err != nil {
		return nil, err
	}
	children = append(children, right...)
	if m.IsSpliced(e.Symbol) {
		// inner symbol of a binarization cascade
		return children, nil
	}
	node, err := wrap(m, e.Symbol, e.Rule.Chain, e.Rule.Origin, children)
	if err != nil {
		return nil, err
	}
	return []*Node{node}, nil
}

// wrap builds the tree node for a reconstructed constituent: the source
// production's node over the children, re-wrapped by the collapsed unit
// chain, outermost label last.
func wrap(m *cnf.Map, lhs int, chain []int, origin *cnf.Origin, children []*Node) (*Node, error) {
	if origin == nil || origin.Production == nil {
		return nil, errors.Wrapf(gramcheck.ErrInvariant,
			"rule for %s lacks origin information", m.Grammar().SymbolName(lhs))
	}
	p := origin.Production
	if len(children) != len(p.RHS) {
		return nil, errors.Wrapf(gramcheck.ErrInvariant,
			"node %s reconstructed with %d children, rule %d has %d",
			p.LHS, len(children), p.Serial, len(p.RHS))
	}
	span := children[0].Span
	for _, c := range children[1:] {
		span = span.Extend(c.Span)
	}
	label := m.Grammar().SymbolName(lhs)
	if len(chain) > 0 {
		label = m.Grammar().SymbolName(chain[len(chain)-1])
	}
	node := &Node{Label: label, Span: span, Head: p.Head, Children: children}
	for i := len(chain) - 2; i >= 0; i-- {
		node = &Node{
			Label:    m.Grammar().SymbolName(chain[i]),
			Span:     span,
			Head:     0,
			Children: []*Node{node},
		}
	}
	if len(chain) > 0 {
		node = &Node{
			Label:    m.Grammar().SymbolName(lhs),
			Span:     span,
			Head:     0,
			Children: []*Node{node},
		}
	}
	return node, nil
}
