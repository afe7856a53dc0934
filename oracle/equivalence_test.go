package oracle

import (
	"testing"

	"github.com/katalvlaran/lvlearnta/automaton"
	"github.com/katalvlaran/lvlearnta/guard"
	"github.com/katalvlaran/lvlearnta/timedword"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildGuardedTA(threshold int) *automaton.TimedAutomaton {
	ta := automaton.New(1, []int{threshold + 1})
	s0 := ta.AddState(false)
	s1 := ta.AddState(true)
	ta.Initial = s0
	ta.AddTransition(s0, "a", automaton.Transition{
		Target: s1,
		Guard:  guard.Guard{{Clock: 0, Op: guard.GE, C: threshold}},
	})
	ta.AddTransition(s1, "a", automaton.Transition{Target: s1})
	return ta
}

func TestByTestFindsDivergingWord(t *testing.T) {
	reference := buildGuardedTA(2)
	hypothesis := buildGuardedTA(5)
	o := NewByTest(reference)
	tw, err := timedword.New([]string{"a"}, []float64{3, 0})
	require.NoError(t, err)
	o.Add(tw)
	cex, found := o.FindCounterExample(hypothesis)
	assert.True(t, found)
	assert.Equal(t, tw, cex)
}

func TestByTestNoDivergenceOnIdenticalAutomata(t *testing.T) {
	reference := buildGuardedTA(2)
	hypothesis := buildGuardedTA(2)
	o := NewByTest(reference)
	tw, err := timedword.New([]string{"a"}, []float64{3, 0})
	require.NoError(t, err)
	o.Add(tw)
	_, found := o.FindCounterExample(hypothesis)
	assert.False(t, found)
}

func TestByRandomTestFindsDivergence(t *testing.T) {
	reference := buildGuardedTA(2)
	hypothesis := buildGuardedTA(8)
	o := NewByRandomTest(reference, []string{"a"}, 200, 1, 10)
	_, found := o.FindCounterExample(hypothesis)
	assert.True(t, found)
}

func TestChainStopsAtFirstHit(t *testing.T) {
	reference := buildGuardedTA(2)
	hypothesis := buildGuardedTA(5)
	byTest := NewByTest(reference)
	tw, err := timedword.New([]string{"a"}, []float64{3, 0})
	require.NoError(t, err)
	byTest.Add(tw)
	chain := Chain{byTest, NewByRandomTest(reference, []string{"a"}, 1, 1, 1)}
	cex, found := chain.FindCounterExample(hypothesis)
	assert.True(t, found)
	assert.Equal(t, tw, cex)
}
