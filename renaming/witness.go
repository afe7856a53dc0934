package renaming

import "github.com/katalvlaran/lvlearnta/condition"

// FindRenaming builds a candidate renaming relation between two (simple)
// timed conditions by walking both variable sequences in lockstep and
// pairing up positions whose distance-to-end upper bound agrees: a
// two-pointer merge over left.GetUpperBound(v1,N-1) and
// right.GetUpperBound(v2,M-1), advancing whichever side currently has the
// larger bound. This reconstructs the alignment step of the bipartite
// construction without the subsequent strictly-constrained-variable
// refinement (see DESIGN.md).
func FindRenaming(left, right condition.TimedCondition) Relation {
	n := left.Size()
	m := right.Size()
	var out Relation
	v1, v2 := 0, 0
	for v1 < n && v2 < m {
		lb := left.GetUpperBound(v1, n-1)
		rb := right.GetUpperBound(v2, m-1)
		switch {
		case lb.Equal(rb):
			out = append(out, Pair{Left: v1, Right: v2})
			v1++
			v2++
		case lb.Less(rb):
			v2++
		default:
			v1++
		}
	}
	return out
}
