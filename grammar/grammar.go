package grammar

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/pkg/errors"
)

// ErrGrammar is the sentinel cause for all load-time grammar rejections.
// A grammar failing validation is rejected wholesale; no partial grammar is
// ever handed out.
var ErrGrammar = errors.New("invalid grammar")

// Symbol is an interned grammar symbol, either a terminal (a POS tag) or a
// nonterminal (a syntactic category). Within one grammar, symbols with the
// same name are pointer-identical; comparison is by identity, never by
// position.
type Symbol struct {
	Name     string
	Value    int // interning order, stable for a given grammar
	terminal bool
}

// IsTerminal returns true for terminal symbols.
func (sym *Symbol) IsTerminal() bool {
	return sym.terminal
}

func (sym *Symbol) String() string {
	return sym.Name
}

// NoHead marks a production without a head-position annotation.
const NoHead = -1

// Production is one grammar rule LHS → RHS. Head, if not NoHead, is the
// index into RHS of the constituent whose features the LHS inherits for
// agreement purposes. Productions are owned by their Grammar and immutable
// after load.
type Production struct {
	Serial int // position in rule insertion order
	LHS    *Symbol
	RHS    []*Symbol
	Head   int
}

func (p *Production) String() string {
	rhs := make([]string, len(p.RHS))
	for i, sym := range p.RHS {
		rhs[i] = sym.Name
	}
	return fmt.Sprintf("%d: %s → %s", p.Serial, p.LHS.Name, strings.Join(rhs, " "))
}

// IsUnit returns true for unit productions A → B with a single nonterminal
// right-hand side.
func (p *Production) IsUnit() bool {
	return len(p.RHS) == 1 && !p.RHS[0].IsTerminal()
}

// IsLexical returns true for productions A → t with a single terminal
// right-hand side.
func (p *Production) IsLexical() bool {
	return len(p.RHS) == 1 && p.RHS[0].IsTerminal()
}

// Grammar is an immutable context-free grammar: productions in insertion
// order, a designated start symbol, and the set of known terminals.
type Grammar struct {
	Name      string
	rules     []*Production
	byLHS     map[*Symbol][]*Production
	symbols   map[string]*Symbol
	terminals *treeset.Set // terminal names, ordered for deterministic dumps
	start     *Symbol
}

// Start returns the grammar's start symbol.
func (g *Grammar) Start() *Symbol {
	return g.start
}

// Rules returns all productions in insertion order. Callers must not modify
// the returned slice.
func (g *Grammar) Rules() []*Production {
	return g.rules
}

// Size returns the number of productions.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// ProductionsFor returns the productions with the given left-hand side, in
// insertion order.
func (g *Grammar) ProductionsFor(lhs *Symbol) []*Production {
	return g.byLHS[lhs]
}

// Symbol looks up an interned symbol by name; nil if the grammar never saw
// that name.
func (g *Grammar) Symbol(name string) *Symbol {
	return g.symbols[name]
}

// IsKnownTerminal reports whether name is a terminal of this grammar. The
// parser uses this to reject tokens whose tag the grammar cannot account for.
func (g *Grammar) IsKnownTerminal(name string) bool {
	return g.terminals.Contains(name)
}

// Terminals returns the terminal names in lexicographic order.
func (g *Grammar) Terminals() []string {
	values := g.terminals.Values()
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.(string)
	}
	return names
}

// EachSymbol calls f for every symbol of the grammar, nonterminals first,
// each group in interning order.
func (g *Grammar) EachSymbol(f func(*Symbol)) {
	ordered := make([]*Symbol, 0, len(g.symbols))
	for _, sym := range g.symbols {
		ordered = append(ordered, sym)
	}
	// interning order is the authoring order, so sort by Value
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && ordered[j-1].Value > ordered[j].Value; j-- {
			ordered[j-1], ordered[j] = ordered[j], ordered[j-1]
		}
	}
	for _, sym := range ordered {
		if !sym.IsTerminal() {
			f(sym)
		}
	}
	for _, sym := range ordered {
		if sym.IsTerminal() {
			f(sym)
		}
	}
}

// FindHead returns the head-position annotation for a node labelled lhs with
// the given children labels, by matching the children against the grammar's
// productions for lhs. NoHead if no production matches or the matching one is
// unannotated.
func (g *Grammar) FindHead(lhs string, children []string) int {
	sym := g.symbols[lhs]
	if sym == nil {
		return NoHead
	}
	for _, p := range g.byLHS[sym] {
		if len(p.RHS) != len(children) {
			continue
		}
		match := true
		for i, c := range children {
			if p.RHS[i].Name != c {
				match = false
				break
			}
		}
		if match {
			return p.Head
		}
	}
	return NoHead
}

// findProduction returns the production lhs → rhs if the grammar already
// holds one, nil otherwise.
func (g *Grammar) findProduction(lhs *Symbol, rhs []*Symbol) *Production {
	for _, p := range g.byLHS[lhs] {
		if len(p.RHS) != len(rhs) {
			continue
		}
		match := true
		for i, sym := range rhs {
			if p.RHS[i] != sym {
				match = false
				break
			}
		}
		if match {
			return p
		}
	}
	return nil
}

// Dump writes the grammar to the trace, one production per line.
func (g *Grammar) Dump() {
	tracer().Infof("grammar %q, start symbol %s", g.Name, g.start)
	for _, p := range g.rules {
		tracer().Infof("%s", p)
	}
}

// validate enforces the load-time invariants: a start symbol must exist,
// every nonterminal occurring in a right-hand side must have at least one
// production, and no right-hand side may be empty. Empty right-hand sides
// are caught earlier, at authoring time; this is the final gate.
func (g *Grammar) validate() error {
	if g.start == nil {
		return errors.Wrap(ErrGrammar, "no start symbol designated")
	}
	if len(g.byLHS[g.start]) == 0 {
		return errors.Wrapf(ErrGrammar, "start symbol %s has no production", g.start)
	}
	for _, p := range g.rules {
		if len(p.RHS) == 0 {
			return errors.Wrapf(ErrGrammar, "epsilon production for %s", p.LHS)
		}
		for _, sym := range p.RHS {
			if sym.IsTerminal() {
				continue
			}
			if len(g.byLHS[sym]) == 0 {
				return errors.Wrapf(ErrGrammar,
					"nonterminal %s used in rule %d has no production", sym, p.Serial)
			}
		}
	}
	return nil
}

func newGrammar(name string) *Grammar {
	return &Grammar{
		Name:      name,
		byLHS:     make(map[*Symbol][]*Production),
		symbols:   make(map[string]*Symbol),
		terminals: treeset.NewWith(utils.StringComparator),
	}
}

// intern returns the symbol for name, creating it with the given kind on
// first sight. Using one name both as terminal and nonterminal is an
// authoring error.
func (g *Grammar) intern(name string, terminal bool) (*Symbol, error) {
	if sym, ok := g.symbols[name]; ok {
		if sym.terminal != terminal {
			return nil, errors.Wrapf(ErrGrammar,
				"symbol %s used both as terminal and as nonterminal", name)
		}
		return sym, nil
	}
	sym := &Symbol{Name: name, Value: len(g.symbols), terminal: terminal}
	g.symbols[name] = sym
	if terminal {
		g.terminals.Add(name)
	}
	return sym, nil
}
