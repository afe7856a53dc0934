package zone

import (
	"testing"

	"github.com/katalvlaran/lvlearnta/automaton"
	"github.com/katalvlaran/lvlearnta/guard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threshold(t int) *automaton.TimedAutomaton {
	ta := automaton.New(1, []int{t + 1})
	s0 := ta.AddState(false)
	s1 := ta.AddState(true)
	ta.Initial = s0
	ta.AddTransition(s0, "a", automaton.Transition{
		Target: s1,
		Guard:  guard.Guard{{Clock: 0, Op: guard.GE, C: t}},
		Resets: []automaton.Reset{{Clock: 0}},
	})
	ta.AddTransition(s1, "a", automaton.Transition{Target: s1, Resets: []automaton.Reset{{Clock: 0}}})
	ta.MakeComplete([]string{"a"})
	return ta
}

func TestBuildExploresReachableStates(t *testing.T) {
	ta := threshold(2)
	za, err := Build(ta)
	require.NoError(t, err)
	assert.NotNil(t, za.Initial)
	assert.GreaterOrEqual(t, len(za.States), 2)
}

func TestFindCounterExampleDetectsDifferentThreshold(t *testing.T) {
	reference := threshold(2)
	hypothesis := threshold(5)
	tw, found, err := FindCounterExample(reference, hypothesis, []string{"a"})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"a"}, tw.Events)
}

func TestFindCounterExampleNoneOnIdenticalAutomata(t *testing.T) {
	reference := threshold(2)
	hypothesis := threshold(2)
	_, found, err := FindCounterExample(reference, hypothesis, []string{"a"})
	require.NoError(t, err)
	assert.False(t, found)
}
