package condition

import "github.com/katalvlaran/lvlearnta/bounds"

// Concatenate fuses two timed conditions along their shared junction
// variable: the trailing tail-sum of c (its last x_L, the pending delay at
// the point of concatenation) is identified with the leading tail-sum of
// o (o's x_0, the same physical delay from the other side). The two
// conditions' constraints on that shared value are intersected.
//
// Result size = c.Size() + o.Size() - 1, matching the invariant in
// spec.md §8.
func Concatenate(c, o TimedCondition) (TimedCondition, error) {
	d, err := bounds.Juxtapose(c.dbm, o.dbm, 1)
	if err != nil {
		return TimedCondition{}, err
	}
	return TimedCondition{dbm: d}, nil
}

// Juxtapose composes two conditions side by side, identifying the last
// `shared` x-variables of c with the first `shared` x-variables of o (their
// constraints are intersected), and leaving the rest block-diagonal. With
// shared == 0 this is plain disjoint composition (used by transition
// synthesis to compare a source and a target condition without assuming
// any positions coincide).
func Juxtapose(c, o TimedCondition, shared int) (TimedCondition, error) {
	d, err := bounds.Juxtapose(c.dbm, o.dbm, shared)
	if err != nil {
		return TimedCondition{}, err
	}
	return TimedCondition{dbm: d}, nil
}
