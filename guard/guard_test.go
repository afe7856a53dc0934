package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstraintSatisfy(t *testing.T) {
	c := Constraint{Clock: 0, Op: LE, C: 3}
	assert.True(t, c.Satisfy(3))
	assert.False(t, c.Satisfy(3.1))
}

func TestConstraintNegate(t *testing.T) {
	c := Constraint{Clock: 0, Op: LT, C: 3}
	n := c.Negate()
	assert.Equal(t, GE, n.Op)
	assert.Equal(t, 3, n.C)
	assert.False(t, c.Satisfy(3))
	assert.True(t, n.Satisfy(3))
}

func TestIsWeakerLattice(t *testing.T) {
	g := Guard{{Clock: 0, Op: LE, C: 5}}
	assert.True(t, IsWeaker(g, g))

	g1 := Guard{{Clock: 0, Op: LE, C: 10}} // x<=10, weaker
	g2 := Guard{{Clock: 0, Op: LE, C: 5}}  // x<=5, tighter
	g3 := Guard{{Clock: 0, Op: LE, C: 3}}  // x<=3, tightest
	assert.True(t, IsWeaker(g1, g2))
	assert.True(t, IsWeaker(g2, g3))
	assert.True(t, IsWeaker(g1, g3)) // transitivity
}

func TestUnionHullDominance(t *testing.T) {
	g1 := Guard{{Clock: 0, Op: LE, C: 5}, {Clock: 0, Op: GE, C: 1}}
	g2 := Guard{{Clock: 0, Op: LE, C: 8}, {Clock: 0, Op: GE, C: 2}}
	hull, err := UnionHull([]Guard{g1, g2})
	require.NoError(t, err)
	assert.True(t, IsWeaker(hull, g1))
	assert.True(t, IsWeaker(hull, g2))
}

func TestUnionHullDropsClockMissingFromSomeInput(t *testing.T) {
	g1 := Guard{{Clock: 0, Op: LE, C: 5}, {Clock: 1, Op: LE, C: 2}}
	g2 := Guard{{Clock: 0, Op: LE, C: 8}}
	hull, err := UnionHull([]Guard{g1, g2})
	require.NoError(t, err)
	for _, c := range hull {
		assert.NotEqual(t, 1, c.Clock)
	}
}

func TestUnionHullEmptyErrors(t *testing.T) {
	_, err := UnionHull(nil)
	assert.ErrorIs(t, err, ErrEmptyGuards)
}

func TestDNFNegateDoubleNegationIsEquivalent(t *testing.T) {
	g := Guard{{Clock: 0, Op: LE, C: 5}, {Clock: 0, Op: GE, C: 1}}
	neg := g.Negate()
	negneg := neg.Negate()
	// x in [1,5] negated twice accepts the inside point 3 again: some
	// disjunct of negneg holds at 3, and no disjunct of neg does.
	var insideHeld, outsideRejected bool
	for _, disj := range negneg {
		if disj.Satisfy([]float64{3}) {
			insideHeld = true
		}
	}
	for _, disj := range neg {
		if disj.Satisfy([]float64{3}) {
			outsideRejected = true
		}
	}
	assert.True(t, insideHeld)
	assert.False(t, outsideRejected)
}

func TestSimpleVariables(t *testing.T) {
	g := Guard{{Clock: 0, Op: LE, C: 5}, {Clock: 0, Op: GE, C: 5}, {Clock: 1, Op: LE, C: 3}}
	simple := g.SimpleVariables()
	assert.Contains(t, simple, 0)
	assert.NotContains(t, simple, 1)
}
