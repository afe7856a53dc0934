package condition

import "github.com/katalvlaran/lvlearnta/bounds"

// Set is a (possibly non-convex) union of timed conditions over the same
// word length, used by the symbolic membership oracle to represent the
// result of a query that is only partially included in the target
// language.
type Set struct {
	conditions []TimedCondition
}

// Bottom returns the empty set (no condition is included).
func Bottom() Set { return Set{} }

// NewSet wraps a single condition as a one-element set.
func NewSet(c TimedCondition) Set { return Set{conditions: []TimedCondition{c}} }

// Empty reports whether the set has no conditions.
func (s Set) Empty() bool { return len(s.conditions) == 0 }

// Size returns the number of conditions in the set.
func (s Set) Size() int { return len(s.conditions) }

// Conditions returns the underlying conditions. Callers must not mutate
// the returned slice.
func (s Set) Conditions() []TimedCondition { return s.conditions }

// ConvexHull returns the smallest condition containing both a and b: the
// componentwise maximum (loosest) DBM bound, re-canonised. Both conditions
// must share the same word length.
func ConvexHull(a, b TimedCondition) (TimedCondition, error) {
	if a.WordLength() != b.WordLength() {
		return TimedCondition{}, ErrDimensionMismatch
	}
	size := a.dbm.Size()
	d, err := bounds.New(size)
	if err != nil {
		return TimedCondition{}, err
	}
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			d.Set(i, j, bounds.Max(a.dbm.At(i, j), b.dbm.At(i, j)))
		}
	}
	d.Close()
	return TimedCondition{dbm: d}, nil
}

// Reduce merges a list of simple (single-region) conditions over the same
// word into as few conditions as possible: repeatedly merges any pair
// whose convex hull's region count equals the sum of the regions it
// replaces (i.e. the hull introduces no extra points), restarting the scan
// after each merge.
func Reduce(conditions []TimedCondition) Set {
	if len(conditions) == 0 {
		return Bottom()
	}
	type entry struct {
		cond  TimedCondition
		count int
	}
	entries := make([]entry, len(conditions))
	for i, c := range conditions {
		entries[i] = entry{cond: c, count: 1}
	}
	for i := 0; i < len(entries); i++ {
		merged := false
		for j := i + 1; j < len(entries); j++ {
			hull, err := ConvexHull(entries[i].cond, entries[j].cond)
			if err != nil {
				continue
			}
			regions, err := hull.Enumerate()
			if err != nil {
				continue
			}
			if len(regions) == entries[i].count+entries[j].count {
				entries[i].cond = hull
				entries[i].count += entries[j].count
				entries = append(entries[:j], entries[j+1:]...)
				merged = true
				break
			}
		}
		if merged {
			i = -1
		}
	}
	out := make([]TimedCondition, len(entries))
	for i, e := range entries {
		out[i] = e.cond
	}
	return Set{conditions: out}
}
