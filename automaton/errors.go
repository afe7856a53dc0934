package automaton

import "fmt"

// ErrUnknownState reports a state pointer that does not belong to the
// automaton. No function in this package returns it.
var ErrUnknownState = fmt.Errorf("automaton: %w", errUnknownState)
var errUnknownState = fmt.Errorf("state does not belong to this automaton")

// ErrNoInitialState reports an automaton with no initial state. No
// function in this package returns it; NewRunner returns no error.
var ErrNoInitialState = fmt.Errorf("automaton: %w", errNoInitialState)
var errNoInitialState = fmt.Errorf("automaton has no initial state")
