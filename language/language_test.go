package language

import (
	"testing"

	"github.com/katalvlaran/lvlearnta/timedword"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementaryContainsMatchesWordAndDelays(t *testing.T) {
	e := Empty()
	tw, err := timedword.New(nil, []float64{0})
	require.NoError(t, err)
	assert.True(t, e.Contains(tw))

	other, err := timedword.New([]string{"a"}, []float64{0, 0})
	require.NoError(t, err)
	assert.False(t, e.Contains(other))
}

func TestForwardDiscreteSuccessorPredecessorRoundTrip(t *testing.T) {
	f := NewForward()
	next := f.DiscreteSuccessor("a")
	assert.Equal(t, []string{"a"}, next.Word)
	assert.Equal(t, 2, next.Order.Size())

	back, err := next.DiscretePredecessor("a")
	require.NoError(t, err)
	assert.Equal(t, f.Word, back.Word)
	assert.True(t, f.Cond.Equal(back.Cond))
}

func TestForwardDiscretePredecessorRejectsWrongEvent(t *testing.T) {
	f := NewForward().DiscreteSuccessor("a")
	_, err := f.DiscretePredecessor("b")
	assert.ErrorIs(t, err, ErrEventMismatch)
}

func TestForwardContinuousSuccessorPredecessorRoundTrip(t *testing.T) {
	f := NewForward().DiscreteSuccessor("a")
	stepped := f.Successor()
	back := stepped.Predecessor()
	assert.True(t, f.Cond.Equal(back.Cond))
	assert.True(t, f.Order.Equal(back.Order))
}

func TestForwardPrefixesCoverEveryLength(t *testing.T) {
	f := NewForward().DiscreteSuccessor("a").DiscreteSuccessor("b")
	prefixes := f.Prefixes()
	require.Len(t, prefixes, 3)
	assert.Equal(t, 0, prefixes[0].WordSize())
	assert.Equal(t, 1, prefixes[1].WordSize())
	assert.Equal(t, 2, prefixes[2].WordSize())
}

func TestBackwardDiscreteSuccessorPredecessorRoundTrip(t *testing.T) {
	b := NewBackward()
	next := b.DiscreteSuccessor("a")
	assert.Equal(t, []string{"a"}, next.Word)

	back, err := next.DiscretePredecessor("a")
	require.NoError(t, err)
	assert.Equal(t, b.Word, back.Word)
	assert.True(t, b.Cond.Equal(back.Cond))
}

func TestBackwardSuffixesShortestFirst(t *testing.T) {
	b := NewBackward().DiscreteSuccessor("b") // word = [b]
	b = b.DiscreteSuccessor("a")              // prepend: word = [a, b]
	suffixes := b.Suffixes()
	require.Len(t, suffixes, 3)
	assert.Equal(t, 0, suffixes[0].WordSize())
	assert.Equal(t, 2, suffixes[len(suffixes)-1].WordSize())
}

func TestForwardSampleSatisfiesOwnCondition(t *testing.T) {
	f := NewForward().DiscreteSuccessor("a")
	v, err := f.Sample()
	require.NoError(t, err)
	assert.Equal(t, 2, v.Len())
	assert.InDelta(t, 0.0, v.AtVec(0), 1e-9)
	assert.InDelta(t, 0.0, v.AtVec(1), 1e-9)
}
