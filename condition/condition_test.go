package condition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyIsSimpleAndSatisfiable(t *testing.T) {
	c := Empty()
	assert.True(t, c.IsSatisfiable())
	assert.Equal(t, 0, c.WordLength())
	assert.Equal(t, 1, c.Size())
}

func TestFromAccumulatedRoundTripsRegion(t *testing.T) {
	c, err := FromAccumulated([]float64{1.5, 0.5})
	require.NoError(t, err)
	assert.True(t, c.IsSatisfiable())
	assert.Equal(t, 1, c.WordLength())
	// T_{0,0} = x_0 - x_1 = 1.0, an integer, so it must be a simple point.
	up := c.GetUpperBound(0, 0)
	assert.Equal(t, 1, up.N)
	assert.True(t, up.NonStrict)
}

func TestMakeExactPinsPoint(t *testing.T) {
	c, err := MakeExact([]float64{2, 0})
	require.NoError(t, err)
	assert.True(t, c.IsSimple())
}

func TestConcatenateSizeInvariant(t *testing.T) {
	a, err := FromAccumulated([]float64{1, 0})
	require.NoError(t, err)
	b, err := FromAccumulated([]float64{2, 0})
	require.NoError(t, err)
	r, err := Concatenate(a, b)
	require.NoError(t, err)
	assert.Equal(t, a.Size()+b.Size()-1, r.Size())
}

func TestEnumerateProducesSimpleRegions(t *testing.T) {
	// The region of the valuation (0.5, 0) enumerates to simple regions only.
	d := Empty()
	_ = d
	c, err := FromAccumulated([]float64{0.5, 0})
	require.NoError(t, err)
	regions, err := c.Enumerate()
	require.NoError(t, err)
	for _, r := range regions {
		assert.True(t, r.IsSimple())
	}
}

func TestSampleSatisfiesCondition(t *testing.T) {
	c, err := MakeExact([]float64{3, 1})
	require.NoError(t, err)
	v, err := c.Sample()
	require.NoError(t, err)
	assert.InDelta(t, 3.0, v.AtVec(0), 1e-9)
	assert.InDelta(t, 1.0, v.AtVec(1), 1e-9)
}
