package forder

// UnextendN is the inverse of ExtendN: removes the highest clock index
// (size-1) from whichever bucket holds it.
func (f FractionalOrder) UnextendN() FractionalOrder {
	if f.size == 0 {
		return f
	}
	target := f.size - 1
	buckets := cloneBuckets(f.buckets)
	for bi, bucket := range buckets {
		filtered := bucket[:0]
		for _, v := range bucket {
			if v != target {
				filtered = append(filtered, v)
			}
		}
		buckets[bi] = filtered
	}
	return FractionalOrder{buckets: buckets, size: f.size - 1}
}

// UnextendZero is the inverse of ExtendZero: drops clock 0 and renumbers
// every remaining clock index down by one.
func (f FractionalOrder) UnextendZero() FractionalOrder {
	if f.size == 0 {
		return f
	}
	buckets := make([][]int, 0, len(f.buckets))
	for _, bucket := range f.buckets {
		shifted := make([]int, 0, len(bucket))
		for _, v := range bucket {
			if v == 0 {
				continue
			}
			shifted = append(shifted, v-1)
		}
		if len(shifted) > 0 || len(buckets) == 0 {
			buckets = append(buckets, shifted)
		}
	}
	if len(buckets) == 0 {
		buckets = [][]int{{}}
	}
	return FractionalOrder{buckets: buckets, size: f.size - 1}
}

// Project restricts the order to clocks with index <= maxIndex, preserving
// relative bucket order and dropping now-empty buckets except at least one.
func (f FractionalOrder) Project(maxIndex int) FractionalOrder {
	var buckets [][]int
	for _, bucket := range f.buckets {
		var kept []int
		for _, v := range bucket {
			if v <= maxIndex {
				kept = append(kept, v)
			}
		}
		if len(kept) > 0 {
			buckets = append(buckets, kept)
		}
	}
	if len(buckets) == 0 {
		buckets = [][]int{{}}
	}
	return FractionalOrder{buckets: buckets, size: maxIndex + 1}
}
