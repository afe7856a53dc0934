package oracle

import (
	"github.com/katalvlaran/lvlearnta/automaton"
	"github.com/katalvlaran/lvlearnta/timedword"
)

// Chain runs a sequence of equivalence oracles in order, returning the
// first counterexample any of them finds — e.g. a cheap ByTest suite
// first, falling back to ByRandomTest only if the suite is satisfied.
type Chain []EquivalenceOracle

// FindCounterExample delegates to each oracle in order.
func (c Chain) FindCounterExample(hypothesis *automaton.TimedAutomaton) (timedword.TimedWord, bool) {
	for _, o := range c {
		if tw, ok := o.FindCounterExample(hypothesis); ok {
			return tw, true
		}
	}
	return timedword.TimedWord{}, false
}
