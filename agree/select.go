package agree

import (
	"github.com/mbreuer/gramcheck/cky"
	"github.com/mbreuer/gramcheck/cnf"
	"github.com/mbreuer/gramcheck/tree"
	"github.com/pkg/errors"
)

// Select reconstructs the chart's derivations in chart order and picks the
// first one that passes all checks, returning its tree and no violations.
// When every derivation has violations, the first derivation's tree and
// violations are returned, so callers report a stable diagnosis rather than
// an arbitrary one. A chart without derivations yields (nil, nil, nil).
func (c *Checker) Select(m *cnf.Map, chart *cky.Chart) (*tree.Node, []Violation, error) {
	derivations := chart.Derivations()
	if len(derivations) == 0 {
		return nil, nil, nil
	}
	var firstTree *tree.Node
	var firstViolations []Violation
	for i, d := range derivations {
		t, err := tree.Reconstruct(m, d)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "derivation %d", i)
		}
		violations := c.Check(t)
		if len(violations) == 0 {
			tracer().Debugf("derivation %d of %d is clean", i, len(derivations))
			return t, nil, nil
		}
		if firstTree == nil {
			firstTree = t
			firstViolations = violations
		}
	}
	tracer().Debugf("all %d derivations have violations", len(derivations))
	return firstTree, firstViolations, nil
}
