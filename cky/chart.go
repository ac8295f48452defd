package cky

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/mbreuer/gramcheck"
	"github.com/mbreuer/gramcheck/cnf"
)

// --- Chart entries ----------------------------------------------------------

// Entry is one recognized constituent: a CNF symbol covering a span of the
// input. Leaf entries carry the token and the lexical rule that admitted it;
// inner entries carry the binary rule and the two child entries it combined.
type Entry struct {
	Symbol int
	Span   gramcheck.Span

	Lex   *cnf.LexRule    // set on leaf entries
	Token gramcheck.Token // the covered token, leaf entries only

	Rule  *cnf.Rule // set on inner entries
	Left  *Entry
	Right *Entry
}

// IsLeaf reports whether e was produced by a lexical rule.
func (e *Entry) IsLeaf() bool {
	return e.Lex != nil
}

// --- The chart --------------------------------------------------------------

// Chart is the triangular CKY table over an input of n tokens. Cell (i, j)
// holds every entry whose span is (i…j), in the order the parser found them;
// this order is deterministic for a given grammar and input.
type Chart struct {
	grammar *cnf.Grammar
	tokens  []gramcheck.Token
	cells   [][]*arraylist.List // [from][to-from-1]
}

func newChart(g *cnf.Grammar, tokens []gramcheck.Token) *Chart {
	n := len(tokens)
	cells := make([][]*arraylist.List, n)
	for i := 0; i < n; i++ {
		cells[i] = make([]*arraylist.List, n-i)
		for j := range cells[i] {
			cells[i][j] = arraylist.New()
		}
	}
	return &Chart{grammar: g, tokens: tokens, cells: cells}
}

// Grammar returns the CNF grammar the chart was filled with.
func (c *Chart) Grammar() *cnf.Grammar {
	return c.grammar
}

// Tokens returns the input token sequence.
func (c *Chart) Tokens() []gramcheck.Token {
	return c.tokens
}

// Len returns the length of the input.
func (c *Chart) Len() int {
	return len(c.tokens)
}

func (c *Chart) cell(from, to int) *arraylist.List {
	return c.cells[from][to-from-1]
}

func (c *Chart) add(e *Entry) {
	c.cell(e.Span.From(), e.Span.To()).Add(e)
}

// EntriesAt returns the entries covering span (from…to), in chart order.
func (c *Chart) EntriesAt(from, to int) []*Entry {
	cell := c.cell(from, to)
	entries := make([]*Entry, 0, cell.Size())
	it := cell.Iterator()
	for it.Next() {
		entries = append(entries, it.Value().(*Entry))
	}
	return entries
}

// Derivations returns the entries which span the whole input with the start
// symbol, in chart order: every complete derivation the grammar licenses.
// Empty means the input was not recognized.
func (c *Chart) Derivations() []*Entry {
	var roots []*Entry
	for _, e := range c.EntriesAt(0, len(c.tokens)) {
		if e.Symbol == c.grammar.Start() {
			roots = append(roots, e)
		}
	}
	return roots
}

// Recognized reports whether the chart contains at least one complete
// derivation.
func (c *Chart) Recognized() bool {
	return len(c.Derivations()) > 0
}

// dump traces one chart row, for debugging.
func (c *Chart) dump(length int) {
	for from := 0; from+length <= len(c.tokens); from++ {
		var names []string
		for _, e := range c.EntriesAt(from, from+length) {
			names = append(names, c.grammar.SymbolName(e.Symbol))
		}
		tracer().Debugf("cell %s: [%s]",
			gramcheck.Span{from, from + length}, strings.Join(names, " "))
	}
}

func (e *Entry) String() string {
	return fmt.Sprintf("entry %d %s", e.Symbol, e.Span)
}
