package grammar

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// --- Textual grammar format -------------------------------------------------

// Parse reads a grammar from its textual specification. The format is
// line-oriented:
//
//	# comments run to end of line
//	S  -> NP VP
//	NP -> DT ^NN | PRP
//
// Alternatives separated by '|' expand into one production each. A '^' prefix
// marks the head constituent of an alternative. Symbols appearing on the left
// of some '->' are the nonterminals; all remaining symbols are terminals. The
// start symbol is the left-hand side of the first rule.
func Parse(name, text string) (*Grammar, error) {
	toks, err := tokenizeGrammar(text)
	if err != nil {
		return nil, err
	}
	lines := splitRules(toks)
	// first pass: every LHS name is a nonterminal
	nonterms := map[string]bool{}
	for _, line := range lines {
		if len(line) < 2 || line[1].typ != tokArrow {
			return nil, errors.Wrapf(ErrGrammar, "line %d: expected 'LHS -> …'",
				line[0].line)
		}
		if line[0].typ != tokIdent {
			return nil, errors.Wrapf(ErrGrammar, "line %d: rule must start with a symbol",
				line[0].line)
		}
		nonterms[line[0].lexeme] = true
	}
	b := NewBuilder(name)
	for _, line := range lines {
		lhs := line[0].lexeme
		for _, alt := range splitAlternatives(line[2:]) {
			if err := buildAlternative(b, lhs, alt, nonterms); err != nil {
				return nil, err
			}
		}
	}
	g, err := b.Grammar()
	if err != nil {
		return nil, err
	}
	tracer().Infof("parsed grammar %q from text, %d productions", name, g.Size())
	return g, nil
}

func buildAlternative(b *Builder, lhs string, alt []grammarToken, nonterms map[string]bool) error {
	if len(alt) == 0 {
		return errors.Wrapf(ErrGrammar, "empty alternative for %s", lhs)
	}
	rb := b.LHS(lhs)
	pos, head := 0, NoHead
	for _, t := range alt {
		switch t.typ {
		case tokHead:
			head = pos
		case tokIdent:
			if nonterms[t.lexeme] {
				rb.N(t.lexeme)
			} else {
				rb.T(t.lexeme)
			}
			pos++
		default:
			return errors.Wrapf(ErrGrammar, "line %d: unexpected %q in rule for %s",
				t.line, t.lexeme, lhs)
		}
	}
	rb.Head(head).End()
	return nil
}

// splitRules groups the token stream into rules. A rule extends over
// continuation lines until the next line starting a new 'LHS ->' or EOF.
func splitRules(toks []grammarToken) [][]grammarToken {
	var rules [][]grammarToken
	var current []grammarToken
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		startsRule := t.typ == tokIdent && i+1 < len(toks) && toks[i+1].typ == tokArrow
		if startsRule && len(current) > 0 {
			rules = append(rules, current)
			current = nil
		}
		current = append(current, t)
	}
	if len(current) > 0 {
		rules = append(rules, current)
	}
	return rules
}

func splitAlternatives(toks []grammarToken) [][]grammarToken {
	var alts [][]grammarToken
	var current []grammarToken
	for _, t := range toks {
		if t.typ == tokPipe {
			alts = append(alts, current)
			current = nil
			continue
		}
		current = append(current, t)
	}
	alts = append(alts, current)
	return alts
}

// --- Scanner ----------------------------------------------------------------

type tokenType int

const (
	tokIdent tokenType = iota
	tokArrow
	tokPipe
	tokHead
)

type grammarToken struct {
	typ    tokenType
	lexeme string
	line   int
}

// grammarLexer is initialized once; lexmachine lexers are safe for concurrent
// scanner creation.
var grammarLexer = newGrammarLexer()

func newGrammarLexer() *lexmachine.Lexer {
	lexer := lexmachine.NewLexer()
	skip := func(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
		return nil, nil
	}
	tok := func(typ tokenType) lexmachine.Action {
		return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
			return grammarToken{typ: typ, lexeme: string(m.Bytes), line: m.StartLine}, nil
		}
	}
	lexer.Add([]byte(`#[^\n]*`), skip)
	lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
	lexer.Add([]byte(`->`), tok(tokArrow))
	lexer.Add([]byte(`\|`), tok(tokPipe))
	lexer.Add([]byte(`\^`), tok(tokHead))
	// '$' and '-' need escaping, lexmachine treats them as metacharacters
	lexer.Add([]byte(`[a-zA-Z_][a-zA-Z0-9_\$'.\-]*`), tok(tokIdent))
	if err := lexer.Compile(); err != nil {
		panic(err) // the patterns above are constant
	}
	return lexer
}

func tokenizeGrammar(text string) ([]grammarToken, error) {
	scanner, err := grammarLexer.Scanner([]byte(strings.TrimSpace(text)))
	if err != nil {
		return nil, errors.Wrap(ErrGrammar, err.Error())
	}
	var toks []grammarToken
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			return nil, errors.Wrapf(ErrGrammar, "scanning grammar text: %v", err)
		}
		if tok == nil {
			continue
		}
		toks = append(toks, tok.(grammarToken))
	}
	if len(toks) == 0 {
		return nil, errors.Wrap(ErrGrammar, "empty grammar text")
	}
	return toks, nil
}
