package bounds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsSatisfiableAndCanonical(t *testing.T) {
	d, err := New(3)
	require.NoError(t, err)
	assert.True(t, d.IsSatisfiable())
	assertCanonical(t, d)
}

func TestInvalidDimension(t *testing.T) {
	_, err := New(0)
	assert.ErrorIs(t, err, ErrInvalidDimension)
	_, err = Zero(-1)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestTightenMakesUnsatisfiable(t *testing.T) {
	d, err := New(2)
	require.NoError(t, err)
	// x1 - 0 <= -1 and 0 - x1 <= -1 (i.e. x1>=1 and x1<=-1) is empty.
	d.Tighten(1, 0, LeqC(-1))
	d.Tighten(0, 1, LeqC(-1))
	assert.False(t, d.IsSatisfiable())
}

func TestZeroPinsAllClocks(t *testing.T) {
	d, err := Zero(3)
	require.NoError(t, err)
	assert.True(t, d.IsSatisfiable())
	for i := 0; i < 3; i++ {
		assert.Equal(t, Leq0, d.At(i, i))
	}
}

// assertCanonical checks D[i][j] <= D[i][k] + D[k][j] for all i,j,k — the
// core testable invariant from spec.md §8.
func assertCanonical(t *testing.T, d *DBM) {
	t.Helper()
	n := d.Size()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				via := d.At(i, k).Add(d.At(k, j))
				assert.Falsef(t, via.Less(d.At(i, j)), "canonicity violated at (%d,%d,%d)", i, j, k)
			}
		}
	}
}

func TestCloseRestoresCanonicity(t *testing.T) {
	d, err := New(4)
	require.NoError(t, err)
	d.Set(0, 1, LeqC(5))
	d.Set(1, 2, LeqC(3))
	d.Set(0, 2, LeqC(100)) // deliberately loose, should tighten to 8
	d.Close()
	assertCanonical(t, d)
	assert.Equal(t, 8, d.At(0, 2).N)
}

func TestConstResetPolicy(t *testing.T) {
	d, err := New(2)
	require.NoError(t, err)
	d.Tighten(1, 0, LeqC(10))
	d.Tighten(0, 1, LeqC(-3)) // 3 <= x1 <= 10
	d.ConstResetPolicy(1, 5)
	assertCanonical(t, d)
	assert.Equal(t, LeqC(5), d.At(1, 0))
	assert.Equal(t, LeqC(-5), d.At(0, 1))
}

func TestCopyResetPolicy(t *testing.T) {
	d, err := New(3)
	require.NoError(t, err)
	d.Tighten(1, 0, LeqC(7))
	d.Tighten(0, 1, LeqC(-2))
	d.CopyResetPolicy(2, 1)
	assertCanonical(t, d)
	assert.Equal(t, d.At(1, 0), d.At(2, 0))
	assert.Equal(t, d.At(0, 1), d.At(0, 2))
}

func TestApplyAndRevertResetsRoundTrip(t *testing.T) {
	d, err := New(3)
	require.NoError(t, err)
	d.Tighten(1, 0, LeqC(4))
	d.Tighten(0, 1, LeqC(-4))
	resets := []Reset{{Clock: 2, IsConst: false, CopyFrom: 1}}
	d.ApplyResets(resets)
	assert.Equal(t, d.At(1, 0), d.At(2, 0))
	d.RevertResets(resets)
	assertCanonical(t, d)
}

func TestElapseUnboundsUpper(t *testing.T) {
	d, err := New(2)
	require.NoError(t, err)
	d.Tighten(1, 0, LeqC(3))
	d.Elapse()
	d.Close()
	assert.True(t, d.At(1, 0).IsInf())
}

func TestReverseElapseZeroesLower(t *testing.T) {
	d, err := New(2)
	require.NoError(t, err)
	d.Tighten(0, 1, LeqC(-2))
	d.ReverseElapse()
	d.Close()
	assert.Equal(t, Leq0, d.At(0, 1))
}

func TestExtrapolateDropsBeyondMax(t *testing.T) {
	d, err := New(2)
	require.NoError(t, err)
	d.Tighten(1, 0, LeqC(100))
	d.Extrapolate([]int{5})
	assert.True(t, d.At(1, 0).IsInf())
}

func TestJuxtaposeNoSharedGrowsByBothSizesMinusAnchor(t *testing.T) {
	a, err := New(2)
	require.NoError(t, err)
	b, err := New(3)
	require.NoError(t, err)
	r, err := Juxtapose(a, b, 0)
	require.NoError(t, err)
	assert.Equal(t, 2+3-1, r.Size())
	assertCanonical(t, r)
}

func TestJuxtaposeSharedIntersects(t *testing.T) {
	a, err := New(3) // anchor, x1, x2
	require.NoError(t, err)
	a.Tighten(1, 0, LeqC(10))
	b, err := New(2) // anchor, y1 (y1 identified with a's x2)
	require.NoError(t, err)
	b.Tighten(1, 0, LeqC(4))
	r, err := Juxtapose(a, b, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Size())
	assertCanonical(t, r)
	// The shared node (index 2) must reflect the tighter of the two
	// upper bounds against the anchor.
	assert.Equal(t, LeqC(4), r.At(2, 0))
}

func TestBoundArithmeticStrictness(t *testing.T) {
	assert.Equal(t, LeqC(5), LeqC(2).Add(LeqC(3)))
	assert.Equal(t, LtC(5), LtC(2).Add(LeqC(3)))
	assert.Equal(t, LtC(5), LeqC(2).Add(LtC(3)))
	assert.True(t, LtC(3).Less(LeqC(3)))
	assert.False(t, LeqC(3).Less(LtC(3)))
}

func TestIncludes(t *testing.T) {
	tight, err := New(2)
	require.NoError(t, err)
	tight.Tighten(1, 0, LeqC(3))
	loose, err := New(2)
	require.NoError(t, err)
	loose.Tighten(1, 0, LeqC(10))
	assert.True(t, loose.Includes(tight))
	assert.False(t, tight.Includes(loose))
}
