package synth

import (
	"sort"

	"github.com/katalvlaran/lvlearnta/automaton"
	"github.com/katalvlaran/lvlearnta/guard"
	"github.com/katalvlaran/lvlearnta/language"
	"github.com/katalvlaran/lvlearnta/renaming"
	"github.com/katalvlaran/lvlearnta/table"
)

// resolveTransition computes the guard and reset sequence for the
// transition p --a--> rep, where succ = tbl.DiscreteSuccessor(p, a) and rep
// = tbl.Representative(succ).
//
// Clocks are assigned per historical reset point rather than per action:
// succ's word-position variables 0..Size(p)-1 denote the same reset points
// as p's own variables (language.Forward.DiscreteSuccessor only appends one
// new variable at the tail), so they inherit p's physical clocks directly;
// the newly appended variable gets a fresh physical clock of its own.
// renaming.FindRenaming(succ.Cond, rep.Cond) then aligns succ's variables
// against rep's established numbering (or seeds it, on rep's first visit).
// Where a rep variable's source clock differs from the physical clock
// already assigned to that slot, the transition gets an explicit copy
// reset (automaton.Reset{Clock, CopyFrom}); variables with no source in
// the renaming reset to zero. This is what produces a transition like
// "reset x1 := x2" for an external transition that folds two distinct
// historical reset points into one representative's variable.
func resolveTransition(tbl *table.ObservationTable, prefixes []language.Forward, ca *clockAssignment, p, succ, rep int, chain []int) (guard.Guard, []automaton.Reset) {
	succCond := prefixes[succ].Cond
	repCond := prefixes[rep].Cond
	rel := renaming.FindRenaming(succCond, repCond)

	sourceOf := make(map[int]int, len(rel))
	for _, pair := range rel {
		sourceOf[pair.Right] = pair.Left
	}

	succCache := map[int]int{}
	succVarClock := func(sv int) int {
		if pc, ok := succCache[sv]; ok {
			return pc
		}
		base := ca.of[p]
		var pc int
		if sv < len(base) {
			pc = base[sv]
		} else {
			pc = ca.fresh()
		}
		succCache[sv] = pc
		return pc
	}

	firstVisit := ca.of[rep] == nil
	if firstVisit {
		ca.of[rep] = make([]int, repCond.Size())
	}
	repClocks := ca.of[rep]

	var resets []automaton.Reset
	for tv := 0; tv < repCond.Size(); tv++ {
		sv, paired := sourceOf[tv]
		if firstVisit {
			if paired {
				repClocks[tv] = succVarClock(sv)
			} else {
				repClocks[tv] = ca.fresh()
				resets = append(resets, automaton.Reset{Clock: repClocks[tv]})
			}
			continue
		}
		if !paired {
			resets = append(resets, automaton.Reset{Clock: repClocks[tv]})
			continue
		}
		if desired := succVarClock(sv); desired != repClocks[tv] {
			src := desired
			resets = append(resets, automaton.Reset{Clock: repClocks[tv], CopyFrom: &src})
		}
	}

	g := make(guard.Guard, 0, repCond.Size())
	for tv := 0; tv < repCond.Size(); tv++ {
		g = append(g, guardFromVariable(repCond, tv, repClocks[tv])...)
	}

	// Internal transitions: when the chain from succ elapses through more
	// than one region before leaving P-recorded territory, widen the guard
	// to the union hull across every chain element that also resolves to
	// rep, so the transition accepts the whole internal run rather than
	// only its first instant (and, when two elapse steps land on
	// differently-bounded but still rep-equivalent regions, this is the
	// same union-hull relaxation scenario 6's imprecise-clock widening
	// needs).
	if len(chain) > 1 {
		var guards []guard.Guard
		for _, idx := range chain {
			if tbl.Representative(idx) != rep {
				continue
			}
			idxCond := prefixes[idx].Cond
			if idxCond.Size() != repCond.Size() {
				continue
			}
			cg := make(guard.Guard, 0, repCond.Size())
			for tv := 0; tv < repCond.Size(); tv++ {
				cg = append(cg, guardFromVariable(idxCond, tv, repClocks[tv])...)
			}
			guards = append(guards, cg)
		}
		if len(guards) > 1 {
			if hull, err := guard.UnionHull(guards); err == nil {
				g = hull
			}
		}
	}

	return g.Simplify(), resets
}

// BuildHypothesis turns a saturated observation table into a TimedAutomaton:
// one state per P row, transitions for every recorded discrete successor,
// guarded and reset according to resolveTransition, post-processed by
// splitStates, handleInactiveClocks, mergeNondeterministicBranching,
// per-transition guard simplification, and zone-based dead-state removal
// (in that order — spec.md's DESIGN NOTES §9), then completed against
// alphabet with a sink state for missing transitions.
func BuildHypothesis(tbl *table.ObservationTable, alphabet []string) (*automaton.TimedAutomaton, error) {
	prefixes := tbl.Prefixes()
	initRep := tbl.Representative(0)

	pIndexSet := map[int]bool{}
	for _, p := range tbl.PIndices() {
		pIndexSet[p] = true
	}
	sorted := make([]int, 0, len(pIndexSet))
	for p := range pIndexSet {
		sorted = append(sorted, p)
	}
	sort.Ints(sorted)

	accepting := make(map[int]bool, len(sorted))
	for _, p := range sorted {
		row := tbl.Row(p)
		accepting[p] = len(row) > 0 && !row[0].Empty()
	}

	ca := newClockAssignment()
	ca.of[initRep] = ca.ensureFresh(prefixes[initRep].Cond.Size())

	type edge struct {
		from, target int
		action       string
		guard        guard.Guard
		resets       []automaton.Reset
	}
	var edges []edge
	process := func(p int) {
		for _, a := range alphabet {
			succ, ok := tbl.DiscreteSuccessor(p, a)
			if !ok {
				continue
			}
			rep := tbl.Representative(succ)
			if !pIndexSet[rep] {
				continue
			}
			chain := internalClosure(tbl, succ)
			g, resets := resolveTransition(tbl, prefixes, ca, p, succ, rep, chain)
			edges = append(edges, edge{from: p, target: rep, action: a, guard: g, resets: resets})
		}
	}

	visited := map[int]bool{initRep: true}
	queue := []int{initRep}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		before := len(edges)
		process(p)
		for _, e := range edges[before:] {
			if !visited[e.target] {
				visited[e.target] = true
				queue = append(queue, e.target)
			}
		}
	}
	for _, p := range sorted {
		if visited[p] {
			continue
		}
		visited[p] = true
		if _, ok := ca.of[p]; !ok {
			ca.of[p] = ca.ensureFresh(prefixes[p].Cond.Size())
		}
		process(p)
	}

	maxPerClock := make([]int, ca.count())
	for _, e := range edges {
		for _, c := range e.guard {
			if c.C > maxPerClock[c.Clock] {
				maxPerClock[c.Clock] = c.C
			}
		}
	}
	maxConstraints := make([]int, ca.count())
	for i, m := range maxPerClock {
		maxConstraints[i] = m + 1
	}

	ta := automaton.New(ca.count(), maxConstraints)
	stateOf := make(map[int]*automaton.State, len(sorted))
	for _, p := range sorted {
		stateOf[p] = ta.AddState(accepting[p])
	}
	if init, ok := stateOf[initRep]; ok {
		ta.Initial = init
	}
	for _, e := range edges {
		ta.AddTransition(stateOf[e.from], e.action, automaton.Transition{
			Target: stateOf[e.target],
			Guard:  e.guard,
			Resets: e.resets,
		})
	}

	ta = splitStates(ta)
	ta = handleInactiveClocks(ta)
	ta = mergeNondeterministicBranching(ta)
	simplifyGuards(ta)
	ta, err := pruneUnreachableZones(ta)
	if err != nil {
		return nil, err
	}

	ta.MakeComplete(alphabet)
	return ta, nil
}
