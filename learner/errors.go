package learner

import "fmt"

// ErrNoRoundsLeft is returned when the learner exhausts MaxRounds without
// converging, guarding against a runaway loop if counterexample analysis
// ever keeps surfacing suffixes the table already has.
var ErrNoRoundsLeft = fmt.Errorf("learner: %w", errNoRoundsLeft)
var errNoRoundsLeft = fmt.Errorf("exceeded max learning rounds without converging")

// ErrStaleCounterExample is returned when the equivalence oracle's
// counterexample no longer diverges from the hypothesis it was drawn
// against and counterexample analysis can't extract a fresh suffix from
// it either — this should not happen for a correct equivalence oracle.
var ErrStaleCounterExample = fmt.Errorf("learner: %w", errStaleCounterExample)
var errStaleCounterExample = fmt.Errorf("counterexample analysis found no fresh suffix")
