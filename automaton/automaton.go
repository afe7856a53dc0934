package automaton

import "github.com/katalvlaran/lvlearnta/guard"

// State is a location of a timed automaton.
type State struct {
	ID        int
	Accepting bool
}

// Reset is one clock reset performed on a transition: Clock is set to 0,
// unless CopyFrom is non-nil, in which case Clock is set to the pre-reset
// value of clock *CopyFrom.
type Reset struct {
	Clock    int
	CopyFrom *int
}

// Transition is a guarded, resetting edge to Target.
type Transition struct {
	Target *State
	Guard  guard.Guard
	Resets []Reset
}

// TimedAutomaton is a deterministic timed automaton: ClockCount clocks,
// each with its own extrapolation bound in MaxConstraints, states, and a
// transition relation keyed by (source state, action).
type TimedAutomaton struct {
	States         []*State
	Initial        *State
	Next           map[*State]map[string][]Transition
	ClockCount     int
	MaxConstraints []int
}

// New returns an empty automaton with the given number of clocks.
func New(clockCount int, maxConstraints []int) *TimedAutomaton {
	return &TimedAutomaton{
		Next:           make(map[*State]map[string][]Transition),
		ClockCount:     clockCount,
		MaxConstraints: maxConstraints,
	}
}

// AddState creates and registers a new state.
func (a *TimedAutomaton) AddState(accepting bool) *State {
	s := &State{ID: len(a.States), Accepting: accepting}
	a.States = append(a.States, s)
	a.Next[s] = make(map[string][]Transition)
	if a.Initial == nil {
		a.Initial = s
	}
	return s
}

// AddTransition registers a transition from 'from' on 'action'.
func (a *TimedAutomaton) AddTransition(from *State, action string, t Transition) {
	if _, ok := a.Next[from]; !ok {
		a.Next[from] = make(map[string][]Transition)
	}
	a.Next[from][action] = append(a.Next[from][action], t)
}

// Alphabet returns the set of actions with at least one transition; the
// order of the returned slice is not defined.
func (a *TimedAutomaton) Alphabet() []string {
	seen := map[string]bool{}
	var out []string
	for _, byAction := range a.Next {
		for action := range byAction {
			if !seen[action] {
				seen[action] = true
				out = append(out, action)
			}
		}
	}
	return out
}

// MakeComplete adds a non-accepting sink state and routes every missing
// (state, action) pair for the given alphabet to it via an unconstrained,
// no-reset transition.
func (a *TimedAutomaton) MakeComplete(alphabet []string) {
	sink := a.AddState(false)
	for _, s := range a.States {
		if s == sink {
			continue
		}
		for _, action := range alphabet {
			if len(a.Next[s][action]) == 0 {
				a.AddTransition(s, action, Transition{Target: sink})
			}
		}
	}
	for _, action := range alphabet {
		if len(a.Next[sink][action]) == 0 {
			a.AddTransition(sink, action, Transition{Target: sink})
		}
	}
}

// Clone returns a deep copy, preserving relative state order and remapping
// every transition target to the corresponding new state.
func (a *TimedAutomaton) Clone() *TimedAutomaton {
	result := New(a.ClockCount, append([]int(nil), a.MaxConstraints...))
	old2new := make(map[*State]*State, len(a.States))
	for _, s := range a.States {
		ns := result.AddState(s.Accepting)
		old2new[s] = ns
	}
	if a.Initial != nil {
		result.Initial = old2new[a.Initial]
	}
	for _, s := range a.States {
		for action, transitions := range a.Next[s] {
			for _, t := range transitions {
				resets := append([]Reset(nil), t.Resets...)
				result.AddTransition(old2new[s], action, Transition{
					Target: old2new[t.Target],
					Guard:  t.Guard.Clone(),
					Resets: resets,
				})
			}
		}
	}
	return result
}

// Complement returns the automaton recognising the complement language:
// makes the automaton complete over alphabet, then flips every state's
// acceptance.
func (a *TimedAutomaton) Complement(alphabet []string) *TimedAutomaton {
	result := a.Clone()
	result.MakeComplete(alphabet)
	for _, s := range result.States {
		s.Accepting = !s.Accepting
	}
	return result
}
