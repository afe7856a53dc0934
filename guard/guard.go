package guard

// Guard is a conjunction of atomic Constraints.
type Guard []Constraint

// Satisfy reports whether every constraint in the conjunction holds for
// the given clock valuation (indexed by Constraint.Clock).
func (g Guard) Satisfy(valuation []float64) bool {
	for _, c := range g {
		if c.Clock >= len(valuation) || !c.Satisfy(valuation[c.Clock]) {
			return false
		}
	}
	return true
}

// Clone returns a shallow copy (Constraint is a value type, so this is
// also a deep copy).
func (g Guard) Clone() Guard {
	out := make(Guard, len(g))
	copy(out, g)
	return out
}

// Simplify collapses this guard to the tightest lower and upper bound per
// clock (dropping redundant weaker atoms on the same clock/direction).
func (g Guard) Simplify() Guard {
	type key struct {
		clock int
		upper bool
	}
	best := map[key]Constraint{}
	order := []key{}
	for _, c := range g {
		k := key{clock: c.Clock, upper: c.IsUpperBound()}
		if cur, ok := best[k]; !ok {
			best[k] = c
			order = append(order, k)
		} else if cur.IsWeaker(c) {
			best[k] = c
		}
	}
	out := make(Guard, 0, len(order))
	for _, k := range order {
		out = append(out, best[k])
	}
	return out
}

// SimpleVariables returns the clock indices bounded to a single point by
// this guard: a clock with both a <= c and a >= c atom (or < c+1 and > c-1
// pinning it to the unit interval, but "simple" here follows spec.md §4.5
// and means exactly pinned to a point).
func (g Guard) SimpleVariables() []int {
	simplified := g.Simplify()
	lower := map[int]Constraint{}
	upper := map[int]Constraint{}
	for _, c := range simplified {
		if c.IsUpperBound() {
			upper[c.Clock] = c
		} else {
			lower[c.Clock] = c
		}
	}
	var out []int
	for clock, up := range upper {
		low, ok := lower[clock]
		if !ok {
			continue
		}
		if up.Op == LE && low.Op == GE && up.C == low.C {
			out = append(out, clock)
		}
	}
	return out
}

// DNF is a disjunction of Guards.
type DNF []Guard

// Negate returns the negation of this guard as a DNF: each atom is
// negated, and the conjunction's negation distributes into a disjunction
// of the per-atom negations (De Morgan).
func (g Guard) Negate() DNF {
	out := make(DNF, 0, len(g))
	for _, c := range g {
		out = append(out, Guard{c.Negate()})
	}
	return out
}

// Negate returns the negation of a DNF: converts to CNF clause-by-clause
// (each disjunct's negation is a conjunction) then distributes the
// conjunction of those conjunctions back into DNF, deduplicating weaker
// clauses.
func (d DNF) Negate() DNF {
	if len(d) == 0 {
		return DNF{Guard{}} // negation of "false" (empty disjunction) is "true".
	}
	clauses := make([]DNF, len(d))
	for i, g := range d {
		clauses[i] = g.Negate()
	}
	product := clauses[0]
	for _, clause := range clauses[1:] {
		product = distribute(product, clause)
	}
	return dedupByWeakness(product)
}

// distribute computes the cross-product conjunction of two DNFs: each
// resulting guard is the concatenation of one disjunct from each side.
func distribute(a, b DNF) DNF {
	out := make(DNF, 0, len(a)*len(b))
	for _, ga := range a {
		for _, gb := range b {
			merged := make(Guard, 0, len(ga)+len(gb))
			merged = append(merged, ga...)
			merged = append(merged, gb...)
			out = append(out, merged.Simplify())
		}
	}
	return out
}

// dedupByWeakness drops any disjunct that implies (is at least as strong
// as) another disjunct, i.e. redundant narrower clauses already covered by
// a broader one.
func dedupByWeakness(d DNF) DNF {
	var out DNF
	for _, g := range d {
		redundant := false
		for _, kept := range out {
			if isWeaker(kept, g) {
				redundant = true
				break
			}
		}
		if redundant {
			continue
		}
		filtered := out[:0]
		for _, kept := range out {
			if !isWeaker(g, kept) {
				filtered = append(filtered, kept)
			}
		}
		out = append(filtered, g)
	}
	return out
}

// IsWeaker reports whether g1 is weaker than (implied by) g2: every atom
// of g1 is implied by some atom of g2.
func IsWeaker(g1, g2 Guard) bool { return isWeaker(g1, g2) }

func isWeaker(g1, g2 Guard) bool {
	for _, a1 := range g1 {
		implied := false
		for _, a2 := range g2 {
			if a1.IsWeaker(a2) {
				implied = true
				break
			}
		}
		if !implied {
			return false
		}
	}
	return true
}

// UnionHull returns the tightest guard weaker than (implied by) every
// input guard: for each (clock, upper?) pair present in every input, take
// the loosest (max) bound; a clock/direction not present in every input is
// dropped entirely (the hull cannot constrain it).
func UnionHull(guards []Guard) (Guard, error) {
	if len(guards) == 0 {
		return nil, ErrEmptyGuards
	}
	type key struct {
		clock int
		upper bool
	}
	counts := map[key]int{}
	best := map[key]Constraint{}
	for _, g := range guards {
		seen := map[key]bool{}
		for _, c := range g.Simplify() {
			k := key{clock: c.Clock, upper: c.IsUpperBound()}
			if seen[k] {
				continue
			}
			seen[k] = true
			counts[k]++
			if cur, ok := best[k]; !ok || cur.ToDBMBound().Less(c.ToDBMBound()) {
				best[k] = c
			}
		}
	}
	var out Guard
	for k, cnt := range counts {
		if cnt == len(guards) {
			out = append(out, best[k])
		}
	}
	return out, nil
}
