// Package table implements the timed observation table: the Angluin-style
// grid of prefixes x suffixes that the learner grows via closedness,
// consistency, and exterior-consistency checks until it yields a
// well-formed hypothesis.
//
// Rows are forward regional elementary languages, columns are backward
// regional elementary languages, and cells are the condition.Set a
// SymbolicMembershipOracle query returns for their concatenation.
package table
