package synth

import (
	"testing"

	"github.com/katalvlaran/lvlearnta/automaton"
	"github.com/katalvlaran/lvlearnta/guard"
	"github.com/katalvlaran/lvlearnta/oracle"
	"github.com/katalvlaran/lvlearnta/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildReferenceTA(threshold int) *automaton.TimedAutomaton {
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

func TestBuildHypothesisProducesRunnableAutomaton(t *testing.T) {
	reference := buildReferenceTA(2)
	memOracle := oracle.NewSymbolicMembershipOracle(automaton.NewRunner(reference))
	tbl, err := table.New(memOracle, []string{"a"})
	require.NoError(t, err)
	require.NoError(t, tbl.Saturate())

	hyp, err := BuildHypothesis(tbl, []string{"a"})
	require.NoError(t, err)
	assert.NotNil(t, hyp.Initial)
	assert.NotEmpty(t, hyp.States)

	r := automaton.NewRunner(hyp)
	r.Pre()
	r.StepDelay(0)
	r.StepSymbol("a")
	r.Post()
}

// buildTwoClockReferenceTA accepts "ab" when b fires at least threshB time
// units after b's own location was entered, regardless of how long a took
// to fire. Only clock 1 is reset (by a) and tested (by b); clock 0 is
// declared but never used.
func buildTwoClockReferenceTA(threshB int) *automaton.TimedAutomaton {
	ta := automaton.New(2, []int{1, threshB + 1})
	s0 := ta.AddState(false)
	s1 := ta.AddState(false)
	s2 := ta.AddState(true)
	ta.Initial = s0
	ta.AddTransition(s0, "a", automaton.Transition{
		Target: s1,
		Resets: []automaton.Reset{{Clock: 1}},
	})
	ta.AddTransition(s1, "b", automaton.Transition{
		Target: s2,
		Guard:  guard.Guard{{Clock: 1, Op: guard.GE, C: threshB}},
		Resets: []automaton.Reset{{Clock: 1}},
	})
	ta.MakeComplete([]string{"a", "b"})
	return ta
}

func TestBuildHypothesisMultiClockProducesRunnableAutomaton(t *testing.T) {
	reference := buildTwoClockReferenceTA(1)
	memOracle := oracle.NewSymbolicMembershipOracle(automaton.NewRunner(reference))
	tbl, err := table.New(memOracle, []string{"a", "b"})
	require.NoError(t, err)
	require.NoError(t, tbl.Saturate())

	hyp, err := BuildHypothesis(tbl, []string{"a", "b"})
	require.NoError(t, err)
	require.NotNil(t, hyp.Initial)
	require.GreaterOrEqual(t, hyp.ClockCount, 1)

	r := automaton.NewRunner(hyp)
	r.Pre()
	r.StepSymbol("a")
	r.StepDelay(2)
	accepted := r.StepSymbol("b")
	assert.True(t, accepted)
	r.Post()

	r.Pre()
	r.StepSymbol("a")
	rejected := r.StepSymbol("b")
	assert.False(t, rejected)
	r.Post()
}
