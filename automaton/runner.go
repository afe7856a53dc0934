package automaton

// Runner drives a TimedAutomaton one symbol or delay at a time, tracking a
// concrete clock valuation. It implements oracle.Sul so the same learner
// machinery can query either the real system or a candidate hypothesis.
// Unlike the upstream runner this one assumes no unobservable transitions:
// the observation-table construction this engine targets never emits one,
// so the extra minimum-duration search has no caller (see DESIGN.md).
type Runner struct {
	automaton *TimedAutomaton
	state     *State
	clocks    []float64
	queries   uint64
}

// NewRunner wraps automaton for stepwise execution.
func NewRunner(automaton *TimedAutomaton) *Runner {
	return &Runner{automaton: automaton, clocks: make([]float64, automaton.ClockCount)}
}

// Pre resets the configuration to the initial state with all clocks at 0.
func (r *Runner) Pre() {
	r.state = r.automaton.Initial
	for i := range r.clocks {
		r.clocks[i] = 0
	}
	r.queries++
}

// Post is a no-op; present to satisfy oracle.Sul.
func (r *Runner) Post() {}

func (r *Runner) applyResets(resets []Reset) {
	old := append([]float64(nil), r.clocks...)
	for _, rs := range resets {
		if rs.CopyFrom != nil {
			r.clocks[rs.Clock] = old[*rs.CopyFrom]
		} else {
			r.clocks[rs.Clock] = 0
		}
	}
}

// StepSymbol fires the first transition on action whose guard is satisfied
// by the current clock valuation. If none matches, the runner falls into
// the sink (nil) state and subsequent steps report false.
func (r *Runner) StepSymbol(action string) bool {
	if r.state == nil {
		return false
	}
	for _, t := range r.automaton.Next[r.state][action] {
		if t.Guard.Satisfy(r.clocks) {
			r.applyResets(t.Resets)
			r.state = t.Target
			return r.state.Accepting
		}
	}
	r.state = nil
	return false
}

// StepDelay elapses duration time units on every clock.
func (r *Runner) StepDelay(duration float64) bool {
	if r.state == nil {
		return false
	}
	for i := range r.clocks {
		r.clocks[i] += duration
	}
	return r.state.Accepting
}

// Count returns the number of Pre calls (membership queries) made so far.
func (r *Runner) Count() uint64 { return r.queries }

// State exposes the current state, or nil if the runner has fallen into
// the sink.
func (r *Runner) State() *State { return r.state }

// ClockValuation returns the current clock values. Callers must not mutate
// the returned slice.
func (r *Runner) ClockValuation() []float64 { return r.clocks }
