package oracle

import (
	"github.com/katalvlaran/lvlearnta/automaton"
	"github.com/katalvlaran/lvlearnta/timedword"
)

// EquivalenceOracle answers equivalence queries against a hypothesis
// automaton, returning a distinguishing counterexample timed word, or
// false if none was found.
type EquivalenceOracle interface {
	FindCounterExample(hypothesis *automaton.TimedAutomaton) (timedword.TimedWord, bool)
}
