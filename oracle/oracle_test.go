package oracle

import (
	"testing"

	"github.com/katalvlaran/lvlearnta/condition"
	"github.com/katalvlaran/lvlearnta/language"
	"github.com/katalvlaran/lvlearnta/timedword"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSul accepts any word whose total duration is at least 2.
type fakeSul struct {
	total float64
	steps uint64
}

func (f *fakeSul) Pre()  { f.total = 0 }
func (f *fakeSul) Post() {}
func (f *fakeSul) StepSymbol(action string) bool {
	f.steps++
	return true
}
func (f *fakeSul) StepDelay(duration float64) bool {
	f.steps++
	f.total += duration
	return f.total >= 2
}
func (f *fakeSul) Count() uint64 { return f.steps }

func TestSULMembershipOracleAnswersQuery(t *testing.T) {
	sul := &fakeSul{}
	o := NewSULMembershipOracle(sul)
	tw, err := timedword.New([]string{"a"}, []float64{1, 1})
	require.NoError(t, err)
	assert.True(t, o.AnswerQuery(tw))
}

func TestMembershipOracleCacheAvoidsRepeatSulCalls(t *testing.T) {
	sul := &fakeSul{}
	base := NewSULMembershipOracle(sul)
	cached := NewMembershipOracleCache(base)
	tw, err := timedword.New([]string{"a"}, []float64{1, 1})
	require.NoError(t, err)

	assert.True(t, cached.AnswerQuery(tw))
	before := sul.Count()
	assert.True(t, cached.AnswerQuery(tw))
	assert.Equal(t, before, sul.Count())
	assert.Equal(t, uint64(2), cached.CountNoCache())
}

func TestSymbolicMembershipOracleQueryClassifiesRegions(t *testing.T) {
	sul := &fakeSul{}
	o := NewSymbolicMembershipOracle(sul)
	cond, err := condition.FromAccumulated([]float64{3})
	require.NoError(t, err)
	elem := language.ElementaryLanguage{Word: nil, Cond: cond}
	set, err := o.Query(elem)
	require.NoError(t, err)
	assert.False(t, set.Empty())
}
