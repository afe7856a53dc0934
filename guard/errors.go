package guard

import "fmt"

// ErrDifferentClock reports two Constraints on different clocks. No
// function in this package returns it; IsWeaker reports a bool instead.
var ErrDifferentClock = fmt.Errorf("guard: %w", errDifferentClock)
var errDifferentClock = fmt.Errorf("constraints are on different clocks")

// ErrEmptyGuards is returned by UnionHull when given no guards to merge.
var ErrEmptyGuards = fmt.Errorf("guard: %w", errEmptyGuards)
var errEmptyGuards = fmt.Errorf("no guards to merge")
