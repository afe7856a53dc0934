package condition

import (
	"math"

	"github.com/katalvlaran/lvlearnta/bounds"
)

// TimedCondition is a conjunction of inequalities on word-position tail
// sums T_{i,j} = d_i + ... + d_j, wrapped around a bounds.DBM. See doc.go
// for the index convention.
type TimedCondition struct {
	dbm *bounds.DBM // size = WordLength()+2
}

// Empty returns the timed condition for the zero-length word: d_0 = 0.
func Empty() TimedCondition {
	d, err := bounds.Zero(2)
	if err != nil {
		panic(err) // unreachable: size 2 is always valid
	}
	return TimedCondition{dbm: d}
}

// FromDBM wraps a raw DBM as a TimedCondition. The caller is responsible
// for the DBM having the right shape (size = wordLength+2) and being
// canonical.
func FromDBM(d *bounds.DBM) TimedCondition { return TimedCondition{dbm: d} }

// DBM exposes the backing matrix for packages (language, synth, zone) that
// need direct DBM-level access.
func (c TimedCondition) DBM() *bounds.DBM { return c.dbm }

// WordLength returns L such that this condition has variables x_0..x_L.
func (c TimedCondition) WordLength() int { return c.dbm.Size() - 2 }

// Size returns the number of x-variables (L+1); this is the quantity the
// concatenation-size invariant (spec.md §8) is stated in terms of.
func (c TimedCondition) Size() int { return c.dbm.Size() - 1 }

// nodeOf maps tail-sum variable index i (0..L) to its DBM node.
func (c TimedCondition) nodeOf(i int) int { return i + 1 }

// FromAccumulated builds the (possibly non-simple, but integer-pinned)
// timed condition containing exactly the given accumulated tail-sum
// valuation, tightened to the surrounding region rather than the single
// point when the concrete value is non-integral. accumulated[i] is the
// concrete value of x_i (i.e. T_{i,L}); its length is L+1.
func FromAccumulated(accumulated []float64) (TimedCondition, error) {
	if len(accumulated) == 0 {
		return TimedCondition{}, ErrEmptyValuation
	}
	L := len(accumulated) - 1
	d, err := bounds.New(L + 2)
	if err != nil {
		return TimedCondition{}, err
	}
	tc := TimedCondition{dbm: d}
	for i := 0; i <= L; i++ {
		for j := i; j <= L; j++ {
			var next float64
			if j+1 <= L {
				next = accumulated[j+1]
			}
			diff := accumulated[i] - next
			tc.restrictToRegionOf(i, j, diff)
		}
	}
	d.Close()
	return tc, nil
}

// MakeExact is like FromAccumulated but pins every T_{i,j} to the exact
// (possibly non-integral, rounded to the nearest integer since Bound
// values are integral) value rather than snapping to the surrounding
// region — used by tests that need a precise witness rather than a region.
func MakeExact(accumulated []float64) (TimedCondition, error) {
	if len(accumulated) == 0 {
		return TimedCondition{}, ErrEmptyValuation
	}
	L := len(accumulated) - 1
	d, err := bounds.New(L + 2)
	if err != nil {
		return TimedCondition{}, err
	}
	tc := TimedCondition{dbm: d}
	for i := 0; i <= L; i++ {
		for j := i; j <= L; j++ {
			var next float64
			if j+1 <= L {
				next = accumulated[j+1]
			}
			diff := accumulated[i] - next
			c := int(math.Round(diff))
			tc.setUpper(i, j, bounds.LeqC(c))
			tc.setLower(i, j, bounds.LeqC(-c))
		}
	}
	d.Close()
	return tc, nil
}

func (c TimedCondition) restrictToRegionOf(i, j int, diff float64) {
	floor := math.Floor(diff)
	if floor == diff {
		cc := int(diff)
		c.setUpper(i, j, bounds.LeqC(cc))
		c.setLower(i, j, bounds.LeqC(-cc))
	} else {
		cc := int(floor)
		c.setUpper(i, j, bounds.LtC(cc+1))
		c.setLower(i, j, bounds.LtC(-cc))
	}
}

func (c TimedCondition) setUpper(i, j int, b bounds.Bound) {
	c.dbm.Tighten(c.nodeOf(i), c.tailNode(j), b)
}
func (c TimedCondition) setLower(i, j int, b bounds.Bound) {
	c.dbm.Tighten(c.tailNode(j), c.nodeOf(i), b)
}

// tailNode returns the DBM node for x_{j+1}; when j is the last position
// this is the anchor (node 0), which doubles as x_{L+1} = 0.
func (c TimedCondition) tailNode(j int) int {
	if j+1 > c.WordLength() {
		return 0
	}
	return c.nodeOf(j + 1)
}

// GetUpperBound returns the tightest known upper bound on T_{i,j}.
func (c TimedCondition) GetUpperBound(i, j int) bounds.Bound {
	return c.dbm.At(c.nodeOf(i), c.tailNode(j))
}

// GetLowerBound returns the tightest known lower bound on T_{i,j} (as the
// bound on -T_{i,j}, i.e. the raw DBM entry in the reverse direction).
func (c TimedCondition) GetLowerBound(i, j int) bounds.Bound {
	return c.dbm.At(c.tailNode(j), c.nodeOf(i))
}

// IsSatisfiable reports whether the backing DBM has a satisfying
// valuation.
func (c TimedCondition) IsSatisfiable() bool { return c.dbm.IsSatisfiable() }

// pairIsSimple reports whether T_{i,j} is pinned to a point [c,c] or a
// unit-open interval (c,c+1).
func (c TimedCondition) pairIsSimple(i, j int) bool {
	up := c.GetUpperBound(i, j)
	low := c.GetLowerBound(i, j)
	if up.IsInf() || low.IsInf() {
		return false
	}
	if up.N == -low.N {
		// point: needs both non-strict.
		return up.NonStrict && low.NonStrict
	}
	if up.N == -low.N+1 {
		// unit-open: needs both strict.
		return !up.NonStrict && !low.NonStrict
	}
	return false
}

// IsSimple reports whether every (i,j) pair is a point or a unit-open
// region — i.e. this condition denotes an Alur–Dill region.
func (c TimedCondition) IsSimple() bool {
	L := c.WordLength()
	for i := 0; i <= L; i++ {
		for j := i; j <= L; j++ {
			if !c.pairIsSimple(i, j) {
				return false
			}
		}
	}
	return true
}

// SimpleVariables returns the indices i in [0,L] for which T_{i,i} (a
// single clock's own remaining duration, when i is the current position)
// is pinned to a point or unit-open interval — used by guard simplicity
// checks in package guard.
func (c TimedCondition) SimpleVariables() []int {
	var out []int
	L := c.WordLength()
	for i := 0; i <= L; i++ {
		if c.pairIsSimple(i, i) {
			out = append(out, i)
		}
	}
	return out
}

// Clone returns a deep copy.
func (c TimedCondition) Clone() TimedCondition {
	return TimedCondition{dbm: c.dbm.Clone()}
}

// Equal reports structural equality of the two conditions' canonical
// DBMs.
func (c TimedCondition) Equal(o TimedCondition) bool {
	return c.dbm.Equal(o.dbm)
}
