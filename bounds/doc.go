// Package bounds implements difference-bound matrices (DBMs) over a clock
// set: the canonical representation of a zone of clock valuations used
// throughout the timed-automata learning engine.
//
// A Bound is a pair (n, nonStrict) representing the constraint "≤ n" when
// nonStrict is true, or "< n" when nonStrict is false. A DBM is a square
// matrix of Bounds over nodes 0..k, where node 0 is the constant-zero
// anchor and entry (i,j) is the tightest known bound on x_i - x_j.
//
// # Canonicity
//
// A DBM is canonical (tight) when, for every i, j, k:
//
//	D[i][j] <= D[i][k] + D[k][j]
//
// Close and Close1 restore canonicity. Set, Elapse and ReverseElapse leave
// the matrix uncanonised and the caller closes it afterwards; the other
// exported mutators that can break canonicity close it before returning.
package bounds
