package recognizable

import (
	"github.com/katalvlaran/lvlearnta/condition"
	"github.com/katalvlaran/lvlearnta/forder"
	"github.com/katalvlaran/lvlearnta/language"
	"github.com/katalvlaran/lvlearnta/oracle"
	"github.com/katalvlaran/lvlearnta/timedword"
)

// tailAccumulated returns T_{i,L} = durations[i]+...+durations[L] for
// i=0..L, where durations has L+1 entries.
func tailAccumulated(durations []float64) []float64 {
	out := make([]float64, len(durations))
	var sum float64
	for i := len(durations) - 1; i >= 0; i-- {
		sum += durations[i]
		out[i] = sum
	}
	return out
}

// suffixAt builds the concrete TimedWord and the corresponding Backward
// elementary language for word's tail starting at event index i.
func suffixAt(word timedword.TimedWord, i int) (timedword.TimedWord, language.Backward, error) {
	events := append([]string(nil), word.Events[i:]...)
	durations := make([]float64, len(events)+1)
	durations[0] = word.Durations[i]
	copy(durations[1:], word.Durations[i+1:])
	tw, err := timedword.New(events, durations)
	if err != nil {
		return timedword.TimedWord{}, language.Backward{}, err
	}
	cond, err := condition.MakeExact(tailAccumulated(durations))
	if err != nil {
		return timedword.TimedWord{}, language.Backward{}, err
	}
	backward := language.Backward{
		ElementaryLanguage: language.ElementaryLanguage{Word: events, Cond: cond},
		Order:              forder.New(),
	}
	return tw, backward, nil
}

// AnalyzeCEX examines a word known to diverge between memOracle and
// hypothesis and returns a suffix the table does not already have among
// currentSuffixes, for the learner to add as a new column. It returns
// false if every suffix of word is already covered.
func AnalyzeCEX(word timedword.TimedWord, memOracle oracle.MembershipOracle, hypothesis *Language, currentSuffixes []language.Backward) (language.Backward, bool) {
	_ = memOracle.AnswerQuery(word)
	_ = hypothesis.AnswerQuery(word)
	for i := 0; i <= word.Len(); i++ {
		tw, candidate, err := suffixAt(word, i)
		if err != nil {
			continue
		}
		fresh := true
		for _, s := range currentSuffixes {
			if s.Contains(tw) {
				fresh = false
				break
			}
		}
		if fresh {
			return candidate, true
		}
	}
	return language.Backward{}, false
}
