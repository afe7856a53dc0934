package table

import "fmt"

// ErrNoFrontier reports a table with no prefix outside P. No function in
// this package returns it.
var ErrNoFrontier = fmt.Errorf("table: %w", errNoFrontier)
var errNoFrontier = fmt.Errorf("no frontier prefix to process")
