// Package guard implements atomic clock constraints and the guards (DNF
// conjunctions/disjunctions of constraints) that label timed-automaton
// transitions.
//
// A Constraint is a single atomic bound on one clock: `x <op> c` for
// op in {<, <=, >, >=}. A Guard is a conjunction (AND) of Constraints — one
// transition's enabling condition. A DNF is a disjunction of Guards, used
// when several incoming conditions are merged (union-hull) or when a
// constraint set is negated.
package guard
