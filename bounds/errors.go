package bounds

import "fmt"

// ErrInvalidDimension is returned when a DBM is constructed with a
// non-positive size.
var ErrInvalidDimension = fmt.Errorf("bounds: %w", errInvalidDimension)
var errInvalidDimension = fmt.Errorf("dimension must be > 0")

// ErrIndexOutOfRange is returned when a clock index is outside [0, size).
var ErrIndexOutOfRange = fmt.Errorf("bounds: %w", errIndexOutOfRange)
var errIndexOutOfRange = fmt.Errorf("clock index out of range")

// ErrDimensionMismatch is returned when two DBMs of incompatible size are
// combined (e.g. Juxtapose without a matching shared tail).
var ErrDimensionMismatch = fmt.Errorf("bounds: %w", errDimensionMismatch)
var errDimensionMismatch = fmt.Errorf("dimension mismatch")
