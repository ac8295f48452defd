package cnf

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/mbreuer/gramcheck/grammar"
	"github.com/pkg/errors"
)

// maxSyntheticSymbols bounds the number of nonterminals a conversion may
// create. A grammar blowing past this is almost certainly degenerate.
const maxSyntheticSymbols = 4096

// liftPrefix prefixes preterminals standing for a promoted terminal tag.
const liftPrefix = "T_"

// Convert transforms a grammar into Chomsky Normal Form and returns the CNF
// grammar together with the map needed to reconstruct parse trees over the
// original symbols.
//
// The conversion proceeds in three steps, each recorded in the rules' origin
// information: unit productions are collapsed into the non-unit productions
// they reach, with the traversed chain kept on the emitted rule; terminals
// inside right-hand sides of length two or more are lifted into synthetic
// preterminals; right-hand sides longer than two are broken into a cascade of
// binary rules over synthetic symbols. Synthetic names are derived from a
// hash of the originating rule, so converting equal grammars yields equal
// output, rule for rule and name for name.
//
// A cycle of unit productions rejects the grammar, as does exceeding the
// synthetic-symbol bound; both wrap grammar.ErrGrammar.
func Convert(src *grammar.Grammar) (*Grammar, *Map, error) {
	c := &converter{
		g: &Grammar{
			Source:    src,
			Lexical:   make(map[string][]*LexRule),
			Binary:    make(map[int]map[int][]*Rule),
			ids:       make(map[string]int),
			synthetic: make(map[int]*Origin),
		},
		seen:  make(map[string]bool),
		lifts: make(map[string]int),
	}
	// intern the source nonterminals first, in authoring order, so that
	// symbol ids are stable across conversions
	src.EachSymbol(func(sym *grammar.Symbol) {
		if !sym.IsTerminal() {
			c.g.intern(sym.Name)
		}
	})
	c.g.start = c.g.ids[src.Start().Name]

	for _, p := range src.Rules() {
		if err := c.convertProduction(p); err != nil {
			return nil, nil, err
		}
	}
	if len(c.g.synthetic) > maxSyntheticSymbols {
		return nil, nil, errors.Wrapf(grammar.ErrGrammar,
			"conversion created %d synthetic symbols, limit is %d",
			len(c.g.synthetic), maxSyntheticSymbols)
	}
	tracer().Infof("converted grammar %q to CNF: %d → %d rules, %d synthetic symbols",
		src.Name, src.Size(), c.g.Size(), len(c.g.synthetic))
	return c.g, &Map{g: c.g}, nil
}

type converter struct {
	g     *Grammar
	seen  map[string]bool // dedup keys of emitted rules
	lifts map[string]int  // terminal tag → preterminal id
}

// convertProduction dispatches on the shape of a source production. Unit
// productions are expanded through the unit-reachable non-unit productions;
// everything else is emitted directly with an empty chain.
func (c *converter) convertProduction(p *grammar.Production) error {
	if p.IsUnit() {
		below := p.RHS[0]
		onPath := map[*grammar.Symbol]bool{p.LHS: true, below: true}
		return c.expandUnit(c.g.intern(p.LHS.Name), below, []*grammar.Symbol{below}, onPath)
	}
	return c.emit(c.g.intern(p.LHS.Name), nil, p)
}

// expandUnit walks the unit productions below lhs, emitting every non-unit
// production reachable, with the traversed chain attached. onPath guards
// against unit cycles.
func (c *converter) expandUnit(lhs int, at *grammar.Symbol, path []*grammar.Symbol,
	onPath map[*grammar.Symbol]bool) error {
	//
	for _, p := range c.g.Source.ProductionsFor(at) {
		if !p.IsUnit() {
			chain := make([]int, len(path))
			for i, sym := range path {
				chain[i] = c.g.intern(sym.Name)
			}
			if err := c.emit(lhs, chain, p); err != nil {
				return err
			}
			continue
		}
		below := p.RHS[0]
		if onPath[below] {
			return errors.Wrapf(grammar.ErrGrammar,
				"cycle of unit productions through %s", below)
		}
		onPath[below] = true
		if err := c.expandUnit(lhs, below, append(path, below), onPath); err != nil {
			return err
		}
		delete(onPath, below)
	}
	return nil
}

// emit converts one non-unit source production into CNF rules with the given
// left-hand side and collapsed chain.
func (c *converter) emit(lhs int, chain []int, p *grammar.Production) error {
	if p.IsLexical() {
		c.emitLexical(&LexRule{
			LHS:      lhs,
			Terminal: p.RHS[0].Name,
			Chain:    chain,
			Origin:   &Origin{Kind: OriginalRule, Production: p},
		})
		return nil
	}
	// lift terminals out of the right-hand side
	rhs := make([]int, len(p.RHS))
	for i, sym := range p.RHS {
		if sym.IsTerminal() {
			rhs[i] = c.lift(sym.Name)
		} else {
			rhs[i] = c.g.intern(sym.Name)
		}
	}
	if len(rhs) == 2 {
		c.emitBinary(&Rule{
			LHS: lhs, Left: rhs[0], Right: rhs[1],
			Chain:  chain,
			Origin: &Origin{Kind: OriginalRule, Production: p},
		})
		return nil
	}
	return c.binarize(lhs, chain, rhs, p)
}

// binarize breaks A → B1 B2 … Bn (n > 2) into a right-branching cascade
//
//	A    → B1 X_1
//	X_1  → B2 X_2   …
//	X_n-2 → Bn-1 Bn
//
// over synthetic symbols named after a hash of the source production.
func (c *converter) binarize(lhs int, chain []int, rhs []int, p *grammar.Production) error {
	base := cascadeName(p)
	current := lhs
	for pos := 0; pos < len(rhs)-2; pos++ {
		name := fmt.Sprintf("%s_%d", base, pos+1)
		if id, ok := c.g.ids[name]; ok && c.g.synthetic[id] == nil {
			return errors.Wrapf(grammar.ErrGrammar,
				"synthetic symbol %s collides with a grammar symbol", name)
		}
		next := c.g.intern(name)
		if c.g.synthetic[next] == nil {
			c.g.synthetic[next] = &Origin{Kind: BinarizedRule, Production: p, Pos: pos + 1}
		}
		r := &Rule{
			LHS: current, Left: rhs[pos], Right: next,
			Origin: &Origin{Kind: BinarizedRule, Production: p, Pos: pos},
		}
		if pos == 0 {
			r.Chain = chain // the chain sits above the cascade's top rule
		}
		c.emitBinary(r)
		current = next
	}
	c.emitBinary(&Rule{
		LHS: current, Left: rhs[len(rhs)-2], Right: rhs[len(rhs)-1],
		Origin: &Origin{Kind: BinarizedRule, Production: p, Pos: len(rhs) - 2},
	})
	return nil
}

// lift returns the preterminal standing for terminal tag t, creating the
// symbol and its lexical rule on first use.
func (c *converter) lift(tag string) int {
	if id, ok := c.lifts[tag]; ok {
		return id
	}
	id := c.g.intern(liftPrefix + tag)
	c.lifts[tag] = id
	c.g.synthetic[id] = &Origin{Kind: LiftedTerminal, Terminal: tag}
	c.emitLexical(&LexRule{
		LHS:      id,
		Terminal: tag,
		Origin:   &Origin{Kind: LiftedTerminal, Terminal: tag},
	})
	return id
}

func (c *converter) emitBinary(r *Rule) {
	key := fmt.Sprintf("b|%d|%d|%d|%v", r.LHS, r.Left, r.Right, r.Chain)
	if c.seen[key] {
		return
	}
	c.seen[key] = true
	byRight, ok := c.g.Binary[r.Left]
	if !ok {
		byRight = make(map[int][]*Rule)
		c.g.Binary[r.Left] = byRight
	}
	byRight[r.Right] = append(byRight[r.Right], r)
	c.g.rules = append(c.g.rules, r)
}

func (c *converter) emitLexical(r *LexRule) {
	key := fmt.Sprintf("l|%d|%s|%v", r.LHS, r.Terminal, r.Chain)
	if c.seen[key] {
		return
	}
	c.seen[key] = true
	c.g.Lexical[r.Terminal] = append(c.g.Lexical[r.Terminal], r)
	c.g.lexical = append(c.g.lexical, r)
}

// cascadeName derives the stable name prefix for the synthetic symbols of a
// binarization cascade from the content of the source production.
func cascadeName(p *grammar.Production) string {
	key := struct {
		LHS string
		RHS []string
	}{LHS: p.LHS.Name, RHS: make([]string, len(p.RHS))}
	for i, sym := range p.RHS {
		key.RHS[i] = sym.Name
	}
	hash := fmt.Sprintf("%x", structhash.Md5(key, 1))
	return fmt.Sprintf("X_%s_%s", p.LHS.Name, hash[:8])
}
