package recognizable

import (
	"testing"

	"github.com/katalvlaran/lvlearnta/automaton"
	"github.com/katalvlaran/lvlearnta/guard"
	"github.com/katalvlaran/lvlearnta/language"
	"github.com/katalvlaran/lvlearnta/oracle"
	"github.com/katalvlaran/lvlearnta/timedword"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTA(threshold int) *automaton.TimedAutomaton {
	ta := automaton.New(1, []int{threshold + 1})
	s0 := ta.AddState(false)
	s1 := ta.AddState(true)
	ta.Initial = s0
	ta.AddTransition(s0, "a", automaton.Transition{
		Target: s1,
		Guard:  guard.Guard{{Clock: 0, Op: guard.GE, C: threshold}},
	})
	ta.AddTransition(s1, "a", automaton.Transition{Target: s1})
	ta.MakeComplete([]string{"a"})
	return ta
}

func TestLanguageAnswerQueryMatchesRunner(t *testing.T) {
	ta := buildTA(2)
	l := New(ta)
	tw, err := timedword.New([]string{"a"}, []float64{3, 0})
	require.NoError(t, err)
	assert.True(t, l.AnswerQuery(tw))
	assert.Equal(t, uint64(1), l.Count())
}

func TestAnalyzeCEXFindsFreshSuffix(t *testing.T) {
	reference := buildTA(2)
	hypothesisTA := buildTA(5)
	memOracle := oracle.NewSULMembershipOracle(automaton.NewRunner(reference))
	hyp := New(hypothesisTA)
	tw, err := timedword.New([]string{"a"}, []float64{3, 0})
	require.NoError(t, err)

	suffix, found := AnalyzeCEX(tw, memOracle, hyp, nil)
	assert.True(t, found)
	assert.NotEmpty(t, suffix.Word)
}

func TestAnalyzeCEXSkipsAlreadyCoveredSuffixes(t *testing.T) {
	reference := buildTA(2)
	hypothesisTA := buildTA(5)
	memOracle := oracle.NewSULMembershipOracle(automaton.NewRunner(reference))
	hyp := New(hypothesisTA)
	tw, err := timedword.New([]string{"a"}, []float64{3, 0})
	require.NoError(t, err)

	_, covering, err := suffixAt(tw, tw.Len())
	require.NoError(t, err)
	suffix, found := AnalyzeCEX(tw, memOracle, hyp, []language.Backward{covering})
	if found {
		assert.NotEqual(t, covering.Word, suffix.Word)
	}
}
