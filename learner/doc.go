// Package learner drives the outer active-learning loop: saturate the
// observation table, synthesize a hypothesis, ask the equivalence oracle
// for a counterexample, and either return the hypothesis or fold the
// counterexample's fresh suffix back into the table and repeat.
package learner
