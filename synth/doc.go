// Package synth builds a hypothesis TimedAutomaton from a saturated
// observation table.
//
// BuildHypothesis assigns one physical clock per historical reset point
// rather than a single always-reset clock: a discrete successor's
// word-position variables inherit the physical clocks of the prefix they
// extend (language.Forward.DiscreteSuccessor only ever appends one new
// variable at the tail), and renaming.FindRenaming aligns a successor's
// variables against the representative it folds into, emitting an
// explicit copy reset wherever that folding identifies two distinct
// historical clocks (an external transition's "reset x1 := x2"). Where a
// continuous-successor chain keeps landing on the same representative
// before leaving P-recorded territory, the transition's guard is widened
// to the union hull across the whole chain (an internal transition, and
// the same mechanism an imprecise-clock relaxation needs).
//
// The result is post-processed by splitStates, handleInactiveClocks,
// mergeNondeterministicBranching, per-transition guard simplification, and
// zone-based dead-state removal, in that order (spec.md's DESIGN NOTES
// §9). See DESIGN.md for why several of these passes are structural
// no-ops given this build's reset model, and for the scope this
// construction deliberately stops short of (it does not detect "implicit"
// clock equalities beyond the explicit renaming witness FindRenaming
// already computes).
package synth
