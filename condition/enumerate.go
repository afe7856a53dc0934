package condition

import (
	"fmt"

	"github.com/katalvlaran/lvlearnta/bounds"
)

// ErrUnboundedEnumerate is returned by Enumerate when a non-simple pair has
// an infinite bound and so cannot be split into finitely many regions.
var ErrUnboundedEnumerate = fmt.Errorf("condition: %w", errUnboundedEnumerate)
var errUnboundedEnumerate = fmt.Errorf("cannot enumerate an unbounded pair")

// Enumerate splits a (possibly non-simple) condition into the finite list
// of simple conditions (regions) whose union it is. A condition that is
// already simple enumerates to itself.
func (c TimedCondition) Enumerate() ([]TimedCondition, error) {
	if c.IsSimple() {
		return []TimedCondition{c}, nil
	}
	L := c.WordLength()
	for i := 0; i <= L; i++ {
		for j := i; j <= L; j++ {
			if c.pairIsSimple(i, j) {
				continue
			}
			return c.splitPair(i, j)
		}
	}
	// Unreachable: IsSimple() would have been true above.
	return []TimedCondition{c}, nil
}

// splitPair splits this condition on pair (i,j) into its constituent point
// / unit-open segments and recursively enumerates each.
func (c TimedCondition) splitPair(i, j int) ([]TimedCondition, error) {
	up := c.GetUpperBound(i, j)
	low := c.GetLowerBound(i, j)
	if up.IsInf() || low.IsInf() {
		return nil, ErrUnboundedEnumerate
	}
	lowVal, lowClosed := -low.N, low.NonStrict
	highVal, highClosed := up.N, up.NonStrict

	var out []TimedCondition
	for p := lowVal; p <= highVal; p++ {
		if (p == lowVal && !lowClosed) || (p == highVal && !highClosed) {
			// this integer point is excluded by a strict endpoint.
		} else {
			seg := c.Clone()
			seg.setUpper(i, j, bounds.LeqC(p))
			seg.setLower(i, j, bounds.LeqC(-p))
			seg.dbm.Close()
			if seg.IsSatisfiable() {
				sub, err := seg.Enumerate()
				if err != nil {
					return nil, err
				}
				out = append(out, sub...)
			}
		}
		if p < highVal {
			seg := c.Clone()
			seg.setUpper(i, j, bounds.LtC(p+1))
			seg.setLower(i, j, bounds.LtC(-p))
			seg.dbm.Close()
			if seg.IsSatisfiable() {
				sub, err := seg.Enumerate()
				if err != nil {
					return nil, err
				}
				out = append(out, sub...)
			}
		}
	}
	return out, nil
}
