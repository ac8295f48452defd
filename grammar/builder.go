package grammar

import (
	"github.com/pkg/errors"
)

// --- Grammar builder --------------------------------------------------------

// Builder is a fluent API for the programmatic construction of grammars.
// Rules are started with LHS(), extended symbol by symbol, and closed with
// End(). The first rule's left-hand side becomes the start symbol unless
// SetStart overrides it.
//
// The builder collects authoring errors instead of failing fast; Grammar()
// reports the first one together with the validation result.
type Builder struct {
	g    *Grammar
	err  error
	open *ruleBuilder
}

// NewBuilder creates a new grammar builder for a grammar with the given name.
func NewBuilder(name string) *Builder {
	return &Builder{g: newGrammar(name)}
}

// LHS starts a new production with the given left-hand side nonterminal.
// An unclosed previous rule is an authoring error.
func (b *Builder) LHS(name string) *ruleBuilder {
	if b.open != nil {
		b.fail(errors.Wrapf(ErrGrammar, "rule for %s not closed before starting %s",
			b.open.lhs, name))
	}
	lhs, err := b.g.intern(name, false)
	if err != nil {
		b.fail(err)
		lhs = &Symbol{Name: name} // dummy, keeps the chain alive
	}
	rb := &ruleBuilder{b: b, lhs: lhs, head: NoHead}
	b.open = rb
	return rb
}

// SetStart designates the start symbol, overriding the first-rule default.
func (b *Builder) SetStart(name string) *Builder {
	sym, err := b.g.intern(name, false)
	if err != nil {
		b.fail(err)
		return b
	}
	b.g.start = sym
	return b
}

// Grammar seals the grammar: it validates the rule set and returns the
// finished, immutable grammar. After a successful call the builder must not
// be used again.
func (b *Builder) Grammar() (*Grammar, error) {
	if b.open != nil {
		b.fail(errors.Wrapf(ErrGrammar, "rule for %s not closed", b.open.lhs))
	}
	if b.err != nil {
		return nil, b.err
	}
	if err := b.g.validate(); err != nil {
		return nil, err
	}
	tracer().Infof("built grammar %q with %d productions", b.g.Name, b.g.Size())
	return b.g, nil
}

func (b *Builder) fail(err error) {
	if b.err == nil { // keep the first error, it is usually the root cause
		b.err = err
	}
}

// ruleBuilder builds a single production. Obtained from Builder.LHS, closed
// with End.
type ruleBuilder struct {
	b    *Builder
	lhs  *Symbol
	rhs  []*Symbol
	head int
}

// N appends a nonterminal to the right-hand side.
func (rb *ruleBuilder) N(name string) *ruleBuilder {
	sym, err := rb.b.g.intern(name, false)
	if err != nil {
		rb.b.fail(err)
		return rb
	}
	rb.rhs = append(rb.rhs, sym)
	return rb
}

// T appends a terminal to the right-hand side.
func (rb *ruleBuilder) T(name string) *ruleBuilder {
	sym, err := rb.b.g.intern(name, true)
	if err != nil {
		rb.b.fail(err)
		return rb
	}
	rb.rhs = append(rb.rhs, sym)
	return rb
}

// Head annotates the position (0-based, into the right-hand side) of the
// production's head constituent.
func (rb *ruleBuilder) Head(pos int) *ruleBuilder {
	rb.head = pos
	return rb
}

// End closes the production and appends it to the grammar.
func (rb *ruleBuilder) End() *Builder {
	b := rb.b
	b.open = nil
	if len(rb.rhs) == 0 {
		b.fail(errors.Wrapf(ErrGrammar, "empty right-hand side for %s", rb.lhs))
		return b
	}
	if rb.head != NoHead && (rb.head < 0 || rb.head >= len(rb.rhs)) {
		b.fail(errors.Wrapf(ErrGrammar, "head position %d out of range for %s",
			rb.head, rb.lhs))
		return b
	}
	if dup := b.g.findProduction(rb.lhs, rb.rhs); dup != nil {
		// keep the first occurrence, including its head annotation
		tracer().Debugf("dropping duplicate of rule %s", dup)
		if b.g.start == nil {
			b.g.start = rb.lhs
		}
		return b
	}
	p := &Production{
		Serial: len(b.g.rules),
		LHS:    rb.lhs,
		RHS:    rb.rhs,
		Head:   rb.head,
	}
	b.g.rules = append(b.g.rules, p)
	b.g.byLHS[rb.lhs] = append(b.g.byLHS[rb.lhs], p)
	if b.g.start == nil {
		b.g.start = rb.lhs
	}
	return b
}
