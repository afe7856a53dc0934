// Package automaton is the timed-automaton data model: states, guarded
// resetting transitions, and a deterministic runner that can act as the
// system-under-learning interface (oracle.Sul) for both the real system and
// a candidate hypothesis.
package automaton
