package forder

// FractionalOrder is an ordered partition of clock indices 0..size-1 by
// fractional-part order. Buckets are stored front-to-back; bucket[0], when
// non-empty, holds the clocks whose fractional part is exactly 0.
type FractionalOrder struct {
	buckets [][]int
	size    int
}

// New returns the initial fractional order for a single clock (index 0)
// whose fractional part is 0.
func New() FractionalOrder {
	return FractionalOrder{buckets: [][]int{{0}}, size: 1}
}

// Size returns the number of clocks tracked by this order.
func (f FractionalOrder) Size() int { return f.size }

// Buckets returns the bucket list, front-to-back. Callers must not mutate
// the returned slices.
func (f FractionalOrder) Buckets() [][]int { return f.buckets }

func cloneBuckets(b [][]int) [][]int {
	out := make([][]int, len(b))
	for i, bucket := range b {
		cp := make([]int, len(bucket))
		copy(cp, bucket)
		out[i] = cp
	}
	return out
}

// SuccessorVariables returns the clocks whose fractional part will cross
// an integer boundary next as time elapses: the front bucket if it is
// non-empty (those clocks are at fractional part 0 and about to become
// positive), otherwise the back bucket (the clocks with the highest
// fractional part, about to wrap to 0 as their integer part increments).
func (f FractionalOrder) SuccessorVariables() []int {
	if len(f.buckets) > 0 && len(f.buckets[0]) > 0 {
		return f.buckets[0]
	}
	if len(f.buckets) == 0 {
		return nil
	}
	return f.buckets[len(f.buckets)-1]
}

// Successor advances the order past the next fractional boundary.
func (f FractionalOrder) Successor() FractionalOrder {
	result := FractionalOrder{buckets: cloneBuckets(f.buckets), size: f.size}
	if len(result.buckets) > 0 && len(result.buckets[0]) == 0 {
		// No clocks at fractional part 0: the back bucket (highest
		// fraction) rotates to the front (wraps to 0) and is dropped from
		// the back.
		last := len(result.buckets) - 1
		result.buckets[0] = result.buckets[last]
		result.buckets = result.buckets[:last]
	} else {
		result.buckets = append([][]int{{}}, result.buckets...)
	}
	return result
}

// PredecessorVariables returns the clocks that were at the fractional
// boundary just crossed by the last Successor step.
func (f FractionalOrder) PredecessorVariables() []int {
	if len(f.buckets) > 0 && len(f.buckets[0]) == 0 {
		if len(f.buckets) > 1 {
			return f.buckets[1]
		}
		return nil
	}
	return f.buckets[0]
}

// Predecessor is the inverse of Successor.
func (f FractionalOrder) Predecessor() FractionalOrder {
	result := FractionalOrder{buckets: cloneBuckets(f.buckets), size: f.size}
	if len(result.buckets) > 0 && len(result.buckets[0]) == 0 {
		result.buckets = result.buckets[1:]
	} else {
		result.buckets = append(result.buckets, []int{})
		// swap front and back, mirroring the forward step being undone.
		last := len(result.buckets) - 1
		result.buckets[0], result.buckets[last] = result.buckets[last], result.buckets[0]
	}
	return result
}

// ExtendN appends a new clock (index = current Size()) to the last bucket,
// i.e. gives it the same fractional-order position as whichever clocks
// currently have the highest fractional part. See spec.md §4.3 / DESIGN.md
// for why this departs from the literal upstream C++ (which instead always
// assigns fractional part 0 to the new clock).
func (f FractionalOrder) ExtendN() FractionalOrder {
	result := FractionalOrder{buckets: cloneBuckets(f.buckets), size: f.size + 1}
	last := len(result.buckets) - 1
	if last < 0 {
		result.buckets = [][]int{{f.size}}
		return result
	}
	result.buckets[last] = append(result.buckets[last], f.size)
	return result
}

// ExtendZero renumbers every clock index up by one and prepends a new
// clock 0 (fractional part 0) to the front bucket.
func (f FractionalOrder) ExtendZero() FractionalOrder {
	buckets := cloneBuckets(f.buckets)
	for bi, bucket := range buckets {
		shifted := make([]int, len(bucket))
		for i, v := range bucket {
			shifted[i] = v + 1
		}
		buckets[bi] = shifted
	}
	if len(buckets) == 0 {
		buckets = [][]int{{0}}
	} else {
		buckets[0] = append([]int{0}, buckets[0]...)
	}
	return FractionalOrder{buckets: buckets, size: f.size + 1}
}

// Equal reports structural equality of the bucket partitions.
func (f FractionalOrder) Equal(o FractionalOrder) bool {
	if f.size != o.size || len(f.buckets) != len(o.buckets) {
		return false
	}
	for i := range f.buckets {
		if len(f.buckets[i]) != len(o.buckets[i]) {
			return false
		}
		for k := range f.buckets[i] {
			if f.buckets[i][k] != o.buckets[i][k] {
				return false
			}
		}
	}
	return true
}
