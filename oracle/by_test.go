package oracle

import (
	"github.com/katalvlaran/lvlearnta/automaton"
	"github.com/katalvlaran/lvlearnta/timedword"
)

// ByTest is an equivalence oracle backed by a fixed suite of timed words:
// it runs each against both the reference automaton and the hypothesis,
// comparing their accept/reject verdicts step by step, and returns the
// first word where they diverge.
type ByTest struct {
	reference *automaton.TimedAutomaton
	words     []timedword.TimedWord
}

// NewByTest wraps reference with an initially empty test suite.
func NewByTest(reference *automaton.TimedAutomaton) *ByTest {
	return &ByTest{reference: reference}
}

// Add appends a test word to the suite.
func (o *ByTest) Add(tw timedword.TimedWord) { o.words = append(o.words, tw) }

// FindCounterExample runs every test word against both automata and
// returns the first on which they disagree.
func (o *ByTest) FindCounterExample(hypothesis *automaton.TimedAutomaton) (timedword.TimedWord, bool) {
	refRunner := automaton.NewRunner(o.reference)
	hypRunner := automaton.NewRunner(hypothesis)
	for _, word := range o.words {
		refRunner.Pre()
		hypRunner.Pre()
		if diverges(refRunner, hypRunner, word) {
			return word, true
		}
	}
	return timedword.TimedWord{}, false
}

// diverges steps both runners through word's delays and events in
// lockstep, reporting true at the first point their accept/reject
// verdicts differ.
func diverges(ref, hyp *automaton.Runner, word timedword.TimedWord) bool {
	if ref.StepDelay(word.Durations[0]) != hyp.StepDelay(word.Durations[0]) {
		return true
	}
	for i, ev := range word.Events {
		if ref.StepSymbol(ev) != hyp.StepSymbol(ev) {
			return true
		}
		if ref.StepDelay(word.Durations[i+1]) != hyp.StepDelay(word.Durations[i+1]) {
			return true
		}
	}
	return false
}
