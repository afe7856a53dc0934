package zone

import "github.com/katalvlaran/lvlearnta/automaton"

// ZAState is a state of a zone automaton: a timed-automaton location
// paired with the zone of clock valuations that reach it along some path
// already explored.
type ZAState struct {
	TAState  *automaton.State
	Zone     Zone
	Accepting bool
	Next     map[string][]*ZAState
}

// ZoneAutomaton is the (finite, subset-construction-like) zone automaton
// of a TimedAutomaton, built lazily by BFS from its initial state.
type ZoneAutomaton struct {
	States  []*ZAState
	Initial *ZAState
}

// Build runs the breadth-first ta2za construction: from the initial
// state's zero zone, repeatedly elapses time, follows each transition's
// guard/reset, and merges into an existing explored state when its zone
// is already included in one reached via the same TA location.
func Build(ta *automaton.TimedAutomaton) (*ZoneAutomaton, error) {
	za := &ZoneAutomaton{}
	if ta.Initial == nil {
		return za, nil
	}
	initialZone, err := Initial(ta.ClockCount)
	if err != nil {
		return nil, err
	}
	initial := &ZAState{TAState: ta.Initial, Zone: initialZone, Accepting: ta.Initial.Accepting, Next: map[string][]*ZAState{}}
	za.Initial = initial
	za.States = append(za.States, initial)

	queue := []*ZAState{initial}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		nowZone := current.Zone.Clone()
		nowZone.Elapse()

		for action, transitions := range ta.Next[current.TAState] {
			for _, tr := range transitions {
				if tr.Target == nil {
					continue
				}
				nextZone := nowZone.Clone()
				nextZone.Tighten(tr.Guard)
				if !nextZone.IsSatisfiable() {
					continue
				}
				nextZone.ApplyResets(tr.Resets)
				nextZone.Extrapolate(ta.MaxConstraints)

				if target := za.findMergeable(tr.Target, nextZone); target != nil {
					current.Next[action] = append(current.Next[action], target)
					continue
				}
				next := &ZAState{TAState: tr.Target, Zone: nextZone, Accepting: tr.Target.Accepting, Next: map[string][]*ZAState{}}
				za.States = append(za.States, next)
				current.Next[action] = append(current.Next[action], next)
				queue = append(queue, next)
			}
		}
	}
	return za, nil
}

// findMergeable returns an already-explored state for the same TA
// location whose zone includes nextZone, if any.
func (za *ZoneAutomaton) findMergeable(taState *automaton.State, nextZone Zone) *ZAState {
	for _, s := range za.States {
		if s.TAState == taState && s.Zone.Includes(nextZone) {
			return s
		}
	}
	return nil
}
