package synth

import (
	"github.com/katalvlaran/lvlearnta/condition"
	"github.com/katalvlaran/lvlearnta/guard"
	"github.com/katalvlaran/lvlearnta/table"
)

// clockAssignment tracks, across the whole hypothesis build, which physical
// clock backs each P representative's word-position variables. A variable
// x_i = d_i + ... + d_L denotes the time elapsed since the start of delay
// d_i, i.e. since event i-1 fired (condition/doc.go); physical clocks are allocated lazily, one per
// genuinely distinct reset point, the first time a representative is
// reached.
type clockAssignment struct {
	next int
	of   map[int][]int // P representative index -> physical clock per variable
}

func newClockAssignment() *clockAssignment {
	return &clockAssignment{of: map[int][]int{}}
}

func (c *clockAssignment) fresh() int {
	id := c.next
	c.next++
	return id
}

// ensureFresh allocates n brand-new physical clocks, used to bootstrap a
// representative that has no established numbering yet.
func (c *clockAssignment) ensureFresh(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = c.fresh()
	}
	return out
}

// count returns the number of physical clocks allocated so far.
func (c *clockAssignment) count() int { return c.next }

// guardFromVariable reads the bound a condition places on T_{v,L} (the
// elapsed time since the historical reset point denoted by variable v) and
// turns it into the atomic constraints a transition into that region
// imposes on physicalClock.
func guardFromVariable(cond condition.TimedCondition, v, physicalClock int) guard.Guard {
	l := cond.WordLength()
	var g guard.Guard
	up := cond.GetUpperBound(v, l)
	if !up.IsInf() {
		op := guard.LT
		if up.NonStrict {
			op = guard.LE
		}
		g = append(g, guard.Constraint{Clock: physicalClock, Op: op, C: up.N})
	}
	low := cond.GetLowerBound(v, l)
	if !low.IsInf() && low.N != 0 {
		op := guard.GT
		if low.NonStrict {
			op = guard.GE
		}
		g = append(g, guard.Constraint{Clock: physicalClock, Op: op, C: -low.N})
	}
	return g
}

// internalClosure walks the continuous-successor chain starting at idx
// (region-elapse steps that don't consume an event), returning idx itself
// followed by every successor the table has recorded. Only rows promoted
// into P record a continuous successor (table.moveToP), so the chain is
// empty-tailed as soon as it leaves recorded territory.
func internalClosure(tbl *table.ObservationTable, idx int) []int {
	chain := []int{idx}
	cur := idx
	for {
		next, ok := tbl.ContinuousSuccessor(cur)
		if !ok {
			return chain
		}
		chain = append(chain, next)
		cur = next
	}
}
