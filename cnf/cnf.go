package cnf

import (
	"fmt"
	"strings"

	"github.com/mbreuer/gramcheck/grammar"
)

// --- CNF rules --------------------------------------------------------------

// OriginKind distinguishes how a CNF rule or symbol came into existence.
type OriginKind int8

const (
	// OriginalRule marks rules carried over from a source production,
	// possibly with a collapsed unit chain on top.
	OriginalRule OriginKind = iota
	// BinarizedRule marks rules of the cascade created by breaking a long
	// right-hand side into binary steps.
	BinarizedRule
	// LiftedTerminal marks preterminal rules created by lifting a terminal
	// out of a long right-hand side.
	LiftedTerminal
)

func (k OriginKind) String() string {
	switch k {
	case OriginalRule:
		return "original"
	case BinarizedRule:
		return "binarized"
	case LiftedTerminal:
		return "lifted"
	}
	return "?"
}

// Origin records where a CNF rule (or synthetic symbol) came from.
// For OriginalRule and BinarizedRule, Production is the source production;
// Pos is the 0-based step within a binarization cascade. For LiftedTerminal,
// Terminal names the promoted tag and Production is nil.
type Origin struct {
	Kind       OriginKind
	Production *grammar.Production
	Pos        int
	Terminal   string
}

// Rule is a binary CNF rule LHS → Left Right, all three symbol ids.
// Chain holds the ids of unit-production left-hand sides collapsed into this
// rule, ordered from just below LHS down to the left-hand side of the source
// production. An empty chain means LHS is that left-hand side itself.
type Rule struct {
	LHS    int
	Left   int
	Right  int
	Chain  []int
	Origin *Origin
}

// LexRule is a lexical CNF rule LHS → t over a terminal tag t.
// Chain as in Rule.
type LexRule struct {
	LHS      int
	Terminal string
	Chain    []int
	Origin   *Origin
}

// --- CNF grammar ------------------------------------------------------------

// Grammar is a context-free grammar in Chomsky Normal Form. Nonterminals are
// interned as small ints; rules are indexed the way the CKY parser consumes
// them: lexical rules by terminal tag, binary rules by their (Left, Right)
// child pair.
type Grammar struct {
	Source  *grammar.Grammar
	Lexical map[string][]*LexRule
	Binary  map[int]map[int][]*Rule

	names     []string
	ids       map[string]int
	start     int
	synthetic map[int]*Origin
	rules     []*Rule    // all binary rules, emission order
	lexical   []*LexRule // all lexical rules, emission order
}

// Start returns the id of the start symbol.
func (g *Grammar) Start() int {
	return g.start
}

// SymbolName returns the name of the symbol with the given id.
func (g *Grammar) SymbolName(id int) string {
	return g.names[id]
}

// SymbolID returns the id for a symbol name, or -1 if unknown.
func (g *Grammar) SymbolID(name string) int {
	if id, ok := g.ids[name]; ok {
		return id
	}
	return -1
}

// IsSynthetic reports whether the symbol with the given id was created during
// conversion, i.e. does not occur in the source grammar.
func (g *Grammar) IsSynthetic(id int) bool {
	_, ok := g.synthetic[id]
	return ok
}

// Rules returns all binary rules in emission order.
func (g *Grammar) Rules() []*Rule {
	return g.rules
}

// LexRules returns all lexical rules in emission order.
func (g *Grammar) LexRules() []*LexRule {
	return g.lexical
}

// Size returns the total number of CNF rules.
func (g *Grammar) Size() int {
	return len(g.rules) + len(g.lexical)
}

// RulesFor returns the binary rules with the given (left, right) child pair,
// in emission order. Nil if no rule combines the pair.
func (g *Grammar) RulesFor(left, right int) []*Rule {
	if byRight, ok := g.Binary[left]; ok {
		return byRight[right]
	}
	return nil
}

// RuleString formats a rule for tracing and error messages.
func (g *Grammar) RuleString(r *Rule) string {
	var sb strings.Builder
	sb.WriteString(g.names[r.LHS])
	for _, c := range r.Chain {
		sb.WriteString("/")
		sb.WriteString(g.names[c])
	}
	fmt.Fprintf(&sb, " → %s %s", g.names[r.Left], g.names[r.Right])
	return sb.String()
}

// Dump writes the full CNF grammar to the trace.
func (g *Grammar) Dump() {
	tracer().Infof("CNF grammar from %q: %d binary, %d lexical rules",
		g.Source.Name, len(g.rules), len(g.lexical))
	for _, r := range g.rules {
		tracer().Infof("%s", g.RuleString(r))
	}
	for _, r := range g.lexical {
		tracer().Infof("%s → %q", g.names[r.LHS], r.Terminal)
	}
}

func (g *Grammar) intern(name string) int {
	if id, ok := g.ids[name]; ok {
		return id
	}
	id := len(g.names)
	g.ids[name] = id
	g.names = append(g.names, name)
	return id
}

// --- Reconstruction map -----------------------------------------------------

// Map relates the CNF grammar back to its source grammar. Package tree walks
// it to undo binarization, terminal lifting and unit-chain collapsing when
// turning CNF derivations into trees over the original symbols.
type Map struct {
	g *Grammar
}

// Grammar returns the CNF grammar this map belongs to.
func (m *Map) Grammar() *Grammar {
	return m.g
}

// Source returns the original grammar.
func (m *Map) Source() *grammar.Grammar {
	return m.g.Source
}

// OriginOf returns the origin of a synthetic symbol, or nil for symbols of
// the source grammar.
func (m *Map) OriginOf(id int) *Origin {
	return m.g.synthetic[id]
}

// IsSpliced reports whether tree nodes labelled with this symbol must be
// dissolved during reconstruction, handing their children to the parent.
func (m *Map) IsSpliced(id int) bool {
	return m.g.IsSynthetic(id)
}

// ChainNames resolves a rule's collapsed unit chain to symbol names, ordered
// top-down.
func (m *Map) ChainNames(chain []int) []string {
	names := make([]string, len(chain))
	for i, id := range chain {
		names[i] = m.g.names[id]
	}
	return names
}
