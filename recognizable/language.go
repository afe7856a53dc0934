package recognizable

import (
	"github.com/katalvlaran/lvlearnta/automaton"
	"github.com/katalvlaran/lvlearnta/timedword"
)

// Language is the timed language a TimedAutomaton recognizes, exposed as
// an oracle.MembershipOracle so it can stand in for the real oracle when
// comparing against a counterexample.
type Language struct {
	ta      *automaton.TimedAutomaton
	queries uint64
}

// New wraps ta as a recognizable Language.
func New(ta *automaton.TimedAutomaton) *Language { return &Language{ta: ta} }

// AnswerQuery reports whether tw is accepted by the wrapped automaton.
func (l *Language) AnswerQuery(tw timedword.TimedWord) bool {
	l.queries++
	r := automaton.NewRunner(l.ta)
	r.Pre()
	result := r.StepDelay(tw.Durations[0])
	for i, ev := range tw.Events {
		r.StepSymbol(ev)
		result = r.StepDelay(tw.Durations[i+1])
	}
	r.Post()
	return result
}

// Count returns the number of queries answered so far.
func (l *Language) Count() uint64 { return l.queries }
