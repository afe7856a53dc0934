package zone

import (
	"github.com/katalvlaran/lvlearnta/automaton"
	"github.com/katalvlaran/lvlearnta/guard"
	"github.com/katalvlaran/lvlearnta/timedword"
	"gonum.org/v1/gonum/mat"
)

// pickTransition returns the (deterministic, post-MakeComplete) single
// transition ta fires on action from state, if any.
func pickTransition(ta *automaton.TimedAutomaton, state *automaton.State, action string) (automaton.Transition, bool) {
	byAction, ok := ta.Next[state]
	if !ok {
		return automaton.Transition{}, false
	}
	transitions, ok := byAction[action]
	if !ok || len(transitions) == 0 {
		return automaton.Transition{}, false
	}
	return transitions[0], true
}

type pathNode struct {
	refState, hypState *automaton.State
	refZone, hypZone    Zone
	actions             []string
	refGuards           []guard.Guard
	hypGuards           []guard.Guard
}

// FindCounterExample searches, via bounded BFS over the pair of zone
// automata, for a timed word on which reference and hypothesis disagree
// on acceptance. The search depth is capped at
// len(reference.States)*len(hypothesis.States)+1 — enough to visit every
// reachable product location once under deterministic complete automata,
// but not a proof of equivalence when the bound is exhausted without a
// hit (see DESIGN.md).
func FindCounterExample(reference, hypothesis *automaton.TimedAutomaton, alphabet []string) (timedword.TimedWord, bool, error) {
	if reference.Initial == nil || hypothesis.Initial == nil {
		return timedword.TimedWord{}, false, nil
	}
	refZone0, err := Initial(reference.ClockCount)
	if err != nil {
		return timedword.TimedWord{}, false, err
	}
	hypZone0, err := Initial(hypothesis.ClockCount)
	if err != nil {
		return timedword.TimedWord{}, false, err
	}
	if reference.Initial.Accepting != hypothesis.Initial.Accepting {
		return reconstructWitness(nil, nil, nil, reference, hypothesis)
	}

	maxDepth := len(reference.States)*len(hypothesis.States) + 1
	queue := []pathNode{{refState: reference.Initial, hypState: hypothesis.Initial, refZone: refZone0, hypZone: hypZone0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if len(cur.actions) >= maxDepth {
			continue
		}
		for _, a := range alphabet {
			refTr, refOK := pickTransition(reference, cur.refState, a)
			hypTr, hypOK := pickTransition(hypothesis, cur.hypState, a)
			if !refOK || !hypOK {
				continue
			}
			nextRefZone := cur.refZone.Clone()
			nextRefZone.Elapse()
			nextRefZone.Tighten(refTr.Guard)
			nextHypZone := cur.hypZone.Clone()
			nextHypZone.Elapse()
			nextHypZone.Tighten(hypTr.Guard)
			if !nextRefZone.IsSatisfiable() || !nextHypZone.IsSatisfiable() {
				continue
			}
			nextRefZone.ApplyResets(refTr.Resets)
			nextRefZone.Extrapolate(reference.MaxConstraints)
			nextHypZone.ApplyResets(hypTr.Resets)
			nextHypZone.Extrapolate(hypothesis.MaxConstraints)

			next := pathNode{
				refState: refTr.Target, hypState: hypTr.Target,
				refZone: nextRefZone, hypZone: nextHypZone,
				actions:   append(append([]string{}, cur.actions...), a),
				refGuards: append(append([]guard.Guard{}, cur.refGuards...), refTr.Guard),
				hypGuards: append(append([]guard.Guard{}, cur.hypGuards...), hypTr.Guard),
			}
			if refTr.Target.Accepting != hypTr.Target.Accepting {
				return reconstructWitness(next.actions, next.refGuards, next.hypGuards, reference, hypothesis)
			}
			queue = append(queue, next)
		}
	}
	return timedword.TimedWord{}, false, nil
}

// sampleDelay returns the smallest nonnegative integer delay satisfying
// both guards, scanning up to bound. Every clock referenced by either
// guard is assigned the same candidate delay: since a Guard is a
// conjunction of independent per-clock atoms, this finds a witness
// whenever some common integer point happens to satisfy every clock's
// bound on both sides simultaneously. It is a documented approximation,
// not a general multi-clock constraint solver — the BFS in
// FindCounterExample already establishes the divergence via exact zone
// arithmetic before this is ever called; this only reconstructs a
// concrete witness word for the caller to read. The trial valuation is
// held in a gonum vector, matching condition.Sample's representation of a
// clock valuation.
func sampleDelay(refGuard, hypGuard guard.Guard, bound int) float64 {
	width := 1
	for _, c := range refGuard {
		if c.Clock+1 > width {
			width = c.Clock + 1
		}
	}
	for _, c := range hypGuard {
		if c.Clock+1 > width {
			width = c.Clock + 1
		}
	}
	for d := 0; d <= bound; d++ {
		trial := mat.NewVecDense(width, nil)
		for k := 0; k < width; k++ {
			trial.SetVec(k, float64(d))
		}
		valuation := trial.RawVector().Data
		if refGuard.Satisfy(valuation) && hypGuard.Satisfy(valuation) {
			return float64(d)
		}
	}
	return float64(bound)
}

func maxBound(constraints ...[]int) int {
	best := 1
	for _, cs := range constraints {
		for _, c := range cs {
			if c > best {
				best = c
			}
		}
	}
	return best
}

// reconstructWitness turns a product BFS path (and, for the degenerate
// zero-length case, nil/nil/nil) into a concrete TimedWord.
func reconstructWitness(actions []string, refGuards, hypGuards []guard.Guard, reference, hypothesis *automaton.TimedAutomaton) (timedword.TimedWord, bool, error) {
	bound := maxBound(reference.MaxConstraints, hypothesis.MaxConstraints)
	durations := make([]float64, len(actions)+1)
	for i := range actions {
		durations[i] = sampleDelay(refGuards[i], hypGuards[i], bound)
	}
	tw, err := timedword.New(append([]string(nil), actions...), durations)
	if err != nil {
		return timedword.TimedWord{}, false, err
	}
	return tw, true, nil
}
