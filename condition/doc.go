// Package condition implements timed conditions: difference-bound matrices
// indexed by word-position tail-sums, the building block elementary
// languages (package language) are made of.
//
// For a word of length L with durations d_0..d_L (d_i the delay before
// event i, d_L the trailing delay), a TimedCondition tracks the variables
// x_0..x_L where x_i = d_i + d_{i+1} + ... + d_L — "the sum of all
// durations from position i to the end". Internally these are stored as a
// bounds.DBM of size L+2: node 0 is the constant-zero anchor (which
// doubles as the virtual x_{L+1} = 0, the empty tail sum), and node i+1
// holds x_i for i = 0..L.
//
// GetLowerBound(i,j)/GetUpperBound(i,j) read off the bound on
// T_{i,j} = d_i + ... + d_j = x_i - x_{j+1} (x_{L+1} being the anchor).
//
// # Simplicity and regions
//
// A condition IsSimple when every T_{i,j} pair is pinned to either a single
// integer point or a unit-open interval (c, c+1) — the Alur–Dill notion of
// a region. Enumerate splits a non-simple condition into the finite list
// of simple conditions whose union it is.
//
// # Algebra
//
// Concatenate fuses two conditions along their shared junction variable
// (the trailing sum of the left condition is the same real delay as the
// leading sum of the right one). Juxtapose is the more general operation
// used by transition synthesis to align two conditions over an arbitrary
// number of shared tail variables, or none at all (plain block-diagonal
// composition).
package condition
