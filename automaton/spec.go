package automaton

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlearnta/guard"
)

// OTASpec is the JSON interchange format for single-clock timed automata
// (the format used by github.com/Leslieaj/OTALearning): an alphabet, a
// list of location names, the initial location, the accepting locations,
// and a transition list of [source, label, range, reset?, target] tuples
// where range looks like "[3,5)" or "[0,+)" and reset is "r" or "n".
type OTASpec struct {
	Sigma  []string   `json:"sigma"`
	L      []string   `json:"l"`
	Init   string     `json:"init"`
	Accept []string   `json:"accept"`
	Tran   [][]string `json:"tran"`
}

// ParseOTASpec decodes an OTASpec from JSON bytes.
func ParseOTASpec(data []byte) (OTASpec, error) {
	var spec OTASpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return OTASpec{}, fmt.Errorf("automaton: decoding OTA spec: %w", err)
	}
	return spec, nil
}

// Build constructs the single-clock TimedAutomaton this spec describes.
func (spec OTASpec) Build() (*TimedAutomaton, error) {
	accept := map[string]bool{}
	for _, a := range spec.Accept {
		accept[a] = true
	}
	ta := New(1, []int{0})
	states := make(map[string]*State, len(spec.L))
	for _, name := range spec.L {
		states[name] = ta.AddState(accept[name])
	}
	init, ok := states[spec.Init]
	if !ok {
		return nil, fmt.Errorf("automaton: unknown initial location %q", spec.Init)
	}
	ta.Initial = init

	for _, row := range spec.Tran {
		if len(row) != 5 {
			return nil, fmt.Errorf("automaton: transition row must have 5 fields, got %d", len(row))
		}
		source, label, rng, reset, target := row[0], row[1], row[2], row[3], row[4]
		from, ok := states[source]
		if !ok {
			return nil, fmt.Errorf("automaton: unknown source location %q", source)
		}
		to, ok := states[target]
		if !ok {
			return nil, fmt.Errorf("automaton: unknown target location %q", target)
		}
		g, maxC, err := parseRange(rng)
		if err != nil {
			return nil, err
		}
		if maxC > ta.MaxConstraints[0] {
			ta.MaxConstraints[0] = maxC
		}
		var resets []Reset
		if reset == "r" {
			resets = []Reset{{Clock: 0, CopyFrom: nil}}
		}
		ta.AddTransition(from, label, Transition{Target: to, Guard: g, Resets: resets})
	}
	return ta, nil
}

// parseRange parses an interval like "[3,5)", "(0,+)", "[0,3]" into a
// guard over clock 0, returning the largest constant mentioned (for
// extrapolation bookkeeping).
func parseRange(rng string) (guard.Guard, int, error) {
	if len(rng) < 3 {
		return nil, 0, fmt.Errorf("automaton: invalid range %q", rng)
	}
	lowerClosed := rng[0] == '['
	upperClosed := rng[len(rng)-1] == ']'
	inner := rng[1 : len(rng)-1]
	parts := strings.SplitN(inner, ",", 2)
	if len(parts) != 2 {
		return nil, 0, fmt.Errorf("automaton: invalid range %q", rng)
	}
	var g guard.Guard
	maxC := 0
	lowerStr := strings.TrimSpace(parts[0])
	if lowerStr != "0" || !lowerClosed {
		if lowerStr != "" {
			c, err := strconv.Atoi(lowerStr)
			if err != nil {
				return nil, 0, fmt.Errorf("automaton: invalid lower bound %q: %w", lowerStr, err)
			}
			if c > maxC {
				maxC = c
			}
			op := guard.GE
			if !lowerClosed {
				op = guard.GT
			}
			g = append(g, guard.Constraint{Clock: 0, Op: op, C: c})
		}
	}
	upperStr := strings.TrimSpace(parts[1])
	if upperStr != "+" {
		c, err := strconv.Atoi(upperStr)
		if err != nil {
			return nil, 0, fmt.Errorf("automaton: invalid upper bound %q: %w", upperStr, err)
		}
		if c > maxC {
			maxC = c
		}
		op := guard.LE
		if !upperClosed {
			op = guard.LT
		}
		g = append(g, guard.Constraint{Clock: 0, Op: op, C: c})
	}
	return g, maxC, nil
}
