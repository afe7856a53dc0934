// Package lvlearnta implements active learning of deterministic timed
// automata: Angluin-style membership and equivalence queries adapted to
// real-time behavior via difference-bound matrices, regional elementary
// languages, and a Rivest–Schapire-style counterexample analysis.
//
// The engine is organized as a pipeline of single-purpose packages:
//
//	bounds/        difference-bound matrices over clock differences
//	condition/     timed conditions (regions) over word-position variables
//	forder/        fractional orders distinguishing same-region instants
//	timedword/     the shared delay/event runtime witness
//	language/      elementary languages (forward and backward regions)
//	guard/         transition guards in disjunctive normal form
//	oracle/        membership and equivalence oracles over a system under learning
//	renaming/      row-equivalence search via clock-renaming witnesses
//	table/         the observation table and its closure/consistency loop
//	synth/         hypothesis synthesis from a saturated observation table
//	automaton/     the timed automaton type and its deterministic runner
//	recognizable/  the hypothesis's recognized language and counterexample analysis
//	zone/          zone automata and zone-based equivalence checking
//	learner/       the outer learning loop tying every package together
//
// See DESIGN.md for how each package is grounded, and SPEC_FULL.md for the
// full specification this engine implements.
package lvlearnta
