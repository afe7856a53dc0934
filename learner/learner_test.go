package learner

import (
	"testing"

	"github.com/katalvlaran/lvlearnta/automaton"
	"github.com/katalvlaran/lvlearnta/guard"
	"github.com/katalvlaran/lvlearnta/oracle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func targetTA(threshold int) *automaton.TimedAutomaton {
	ta := automaton.New(1, []int{threshold + 1})
	s0 := ta.AddState(false)
	s1 := ta.AddState(true)
	ta.Initial = s0
	ta.AddTransition(s0, "a", automaton.Transition{
		Target: s1,
		Guard:  guard.Guard{{Clock: 0, Op: guard.GE, C: threshold}},
		Resets: []automaton.Reset{{Clock: 0}},
	})
	ta.AddTransition(s1, "a", automaton.Transition{Target: s1, Resets: []automaton.Reset{{Clock: 0}}})
	ta.MakeComplete([]string{"a"})
	return ta
}

func TestLearnerConvergesAgainstByRandomTestOracle(t *testing.T) {
	reference := targetTA(2)
	sul := automaton.NewRunner(reference)
	eqOracle := oracle.NewByRandomTest(reference, []string{"a"}, 300, 3, 6)

	l, err := New([]string{"a"}, sul, eqOracle)
	require.NoError(t, err)
	l.MaxRounds = 50

	hypothesis, err := l.Run()
	require.NoError(t, err)
	assert.NotNil(t, hypothesis)
	assert.NotNil(t, hypothesis.Initial)

	_, found := eqOracle.FindCounterExample(hypothesis)
	assert.False(t, found)
}
