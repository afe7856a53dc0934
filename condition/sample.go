package condition

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlearnta/bounds"
)

// Sample returns a concrete accumulated-duration valuation satisfying this
// condition: for each tail-sum variable x_i (from the most-delayed down to
// x_0), pick the midpoint of the feasible interval given the choices
// already fixed for later variables. Returned as a dense vector (index i
// is x_i) via gonum/mat.
func (c TimedCondition) Sample() (*mat.VecDense, error) {
	if !c.IsSatisfiable() {
		return nil, ErrUnsatisfiable
	}
	L := c.WordLength()
	values := make([]float64, L+1) // values[i] = x_i

	// tailValue returns the already-fixed value of x_{j+1}, or 0 when
	// j+1 > L (the anchor).
	tailValue := func(j int) float64 {
		if j+1 > L {
			return 0
		}
		return values[j+1]
	}

	for i := L; i >= 0; i-- {
		// T_{i,j} = x_i - x_{j+1} for every j >= i, with x_{j+1} already fixed.
		lo, hi := math.Inf(-1), math.Inf(1)
		for j := i; j <= L; j++ {
			lowBound := c.GetLowerBound(i, j)
			upBound := c.GetUpperBound(i, j)
			lo = math.Max(lo, tailValue(j)-float64(lowBound.N))
			if !upBound.IsInf() {
				hi = math.Min(hi, tailValue(j)+float64(upBound.N))
			}
		}
		if math.IsInf(hi, 1) {
			hi = lo + 1
		}
		values[i] = (lo + hi) / 2
	}
	return mat.NewVecDense(L+1, values), nil
}

// ApplyResets builds a fresh timed condition of word length targetDim
// (variables x_0..x_targetDim) by
// applying a reset sequence (as in bounds.DBM.ApplyResets) to this
// condition's DBM, growing or shrinking the variable set as needed: the
// target condition starts as the "top" (unconstrained) condition of the
// requested dimension, is juxtaposed against this one with no sharing, the
// renaming/reset equalities are added, and the result is canonised and
// projected onto the fresh target half.
func (c TimedCondition) ApplyResets(resets []bounds.Reset, targetDim int) (TimedCondition, error) {
	fresh, err := bounds.New(targetDim + 2)
	if err != nil {
		return TimedCondition{}, err
	}
	joined, err := bounds.Juxtapose(c.dbm, fresh, 0)
	if err != nil {
		return TimedCondition{}, err
	}
	oldSize := c.dbm.Size()
	// Target x_i (0-based) lives at joined node oldSize+i, since the
	// anchor is shared and the fresh block's own anchor folds into node 0.
	// Resets' Clock field is expressed in that 0-based target-variable
	// space and is remapped here; CopyFrom is a copy-reset's source and is
	// always a joined-node absolute index already (it may point at either
	// a pre-existing source clock or an already-placed target clock), so
	// the caller computes it: source x_k is joined node k+1, and an
	// already-placed target x_k is joined node oldSize+k.
	remapped := make([]bounds.Reset, len(resets))
	for k, r := range resets {
		remapped[k] = bounds.Reset{
			Clock:    oldSize + r.Clock,
			IsConst:  r.IsConst,
			Value:    r.Value,
			CopyFrom: r.CopyFrom,
		}
	}
	joined.ApplyResets(remapped)
	joined.Close()

	result, err := bounds.New(targetDim + 2)
	if err != nil {
		return TimedCondition{}, err
	}
	for i := 0; i < targetDim+2; i++ {
		ji := i
		if i > 0 {
			ji = oldSize + i - 1
		}
		for j := 0; j < targetDim+2; j++ {
			jj := j
			if j > 0 {
				jj = oldSize + j - 1
			}
			result.Set(i, j, joined.At(ji, jj))
		}
	}
	result.Close()
	return TimedCondition{dbm: result}, nil
}
