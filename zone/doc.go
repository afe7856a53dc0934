// Package zone builds the (finite, extrapolated) zone automaton of a
// TimedAutomaton and uses it for a depth-bounded search against another
// TimedAutomaton, reconstructing a timed counterexample word when the
// search finds a disagreement (not a proof of equivalence otherwise).
//
// A Zone is a thin reuse of bounds.DBM over clock valuations (as opposed
// to condition.TimedCondition's word-position tail sums): node 0 is the
// zero reference, node i+1 is clock i.
package zone
