package condition

import "fmt"

// ErrEmptyValuation is returned when FromAccumulated or MakeExact is given an
// accumulated-duration vector of length 0 where at least the trailing delay
// is required.
var ErrEmptyValuation = fmt.Errorf("condition: %w", errEmptyValuation)
var errEmptyValuation = fmt.Errorf("accumulated duration vector must be non-empty")

// ErrIndexOutOfRange is returned when (i,j) is outside the valid
// 0 <= i <= j <= size-1 range for this condition's word length.
var ErrIndexOutOfRange = fmt.Errorf("condition: %w", errIndexOutOfRange)
var errIndexOutOfRange = fmt.Errorf("(i,j) out of range")

// ErrUnsatisfiable is returned when an operation (e.g. Sample) is asked to
// act on a condition whose DBM has no satisfying valuation.
var ErrUnsatisfiable = fmt.Errorf("condition: %w", errUnsatisfiable)
var errUnsatisfiable = fmt.Errorf("condition is unsatisfiable")

// ErrDimensionMismatch is returned by ConvexHull when the two operands'
// word lengths differ.
var ErrDimensionMismatch = fmt.Errorf("condition: %w", errDimensionMismatch)
var errDimensionMismatch = fmt.Errorf("dimension mismatch")
