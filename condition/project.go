package condition

import "github.com/katalvlaran/lvlearnta/bounds"

// Project restricts this condition to its first L+1 variables (x_0..x_L),
// dropping x_{L+1}..x_{WordLength()}. Because the backing DBM is canonical,
// the kept entries already reflect the tightest bound derivable through any
// path (including ones through dropped nodes), so a principal submatrix
// extraction is sound without re-closing.
func (c TimedCondition) Project(l int) (TimedCondition, error) {
	if l < 0 || l > c.WordLength() {
		return TimedCondition{}, ErrIndexOutOfRange
	}
	d, err := bounds.New(l + 2)
	if err != nil {
		return TimedCondition{}, err
	}
	for i := 0; i < l+2; i++ {
		for j := 0; j < l+2; j++ {
			d.Set(i, j, c.dbm.At(i, j))
		}
	}
	return TimedCondition{dbm: d}, nil
}

// AppendZero grows this condition by one new trailing variable x_{L+1},
// pinned to exactly 0 — the fresh pending duration right after a discrete
// event fires.
func (c TimedCondition) AppendZero() TimedCondition {
	oldSize := c.dbm.Size()
	d, err := bounds.New(oldSize + 1)
	if err != nil {
		panic(err)
	}
	for i := 0; i < oldSize; i++ {
		for j := 0; j < oldSize; j++ {
			d.Set(i, j, c.dbm.At(i, j))
		}
	}
	newNode := oldSize
	d.Set(newNode, newNode, bounds.Leq0)
	d.Set(newNode, 0, bounds.Leq0)
	d.Set(0, newNode, bounds.Leq0)
	d.Close()
	return TimedCondition{dbm: d}
}

// DropLast is the inverse of AppendZero: removes the last variable x_L,
// which must currently be pinned to a single point (its identity as "the
// most recent pending duration" requires this for the operation to be a
// true inverse).
func (c TimedCondition) DropLast() (TimedCondition, error) {
	l := c.WordLength()
	if l < 0 {
		return TimedCondition{}, ErrIndexOutOfRange
	}
	return c.Project(l - 1)
}

// StepDiagonal advances or retreats the region boundary for the given
// variables: when towardOpen is true, each variable's self-pair T_{v,v}
// moves from a pinned point [c,c] to the open unit interval (c,c+1)
// (fractional part leaving 0); when false, the inverse transform applies
// (fractional part reaching the next integer).
func (c TimedCondition) StepDiagonal(affected []int, towardOpen bool) TimedCondition {
	result := c.Clone()
	for _, v := range affected {
		up := result.GetUpperBound(v, v)
		if towardOpen {
			cval := up.N
			result.setUpper(v, v, bounds.LtC(cval+1))
			result.setLower(v, v, bounds.LtC(-cval))
		} else {
			cval := up.N // currently c+1 via LtC(c+1)
			result.setUpper(v, v, bounds.LeqC(cval))
			result.setLower(v, v, bounds.LeqC(-cval))
		}
	}
	result.dbm.Close()
	return result
}
