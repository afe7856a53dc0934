package learner

import (
	"github.com/katalvlaran/lvlearnta/automaton"
	"github.com/katalvlaran/lvlearnta/oracle"
	"github.com/katalvlaran/lvlearnta/recognizable"
	"github.com/katalvlaran/lvlearnta/synth"
	"github.com/katalvlaran/lvlearnta/table"
)

// defaultMaxRounds bounds the outer loop so a misbehaving equivalence or
// counterexample-analysis oracle can't spin forever.
const defaultMaxRounds = 10000

// Learner is the deterministic timed automata learner: an observation
// table driven to saturation, a hypothesis synthesizer, and an
// equivalence oracle deciding when to stop.
type Learner struct {
	alphabet  []string
	table     *table.ObservationTable
	rawOracle oracle.MembershipOracle
	eqOracle  oracle.EquivalenceOracle
	MaxRounds int

	eqQueries uint64
}

// New builds a Learner over the given alphabet, driving sul as both the
// symbolic membership oracle (for the table) and the plain membership
// oracle (for counterexample analysis).
func New(alphabet []string, sul oracle.Sul, eqOracle oracle.EquivalenceOracle) (*Learner, error) {
	memOracle := oracle.NewSymbolicMembershipOracle(sul)
	tbl, err := table.New(memOracle, alphabet)
	if err != nil {
		return nil, err
	}
	return &Learner{
		alphabet:  append([]string(nil), alphabet...),
		table:     tbl,
		rawOracle: oracle.NewSULMembershipOracle(sul),
		eqOracle:  eqOracle,
		MaxRounds: defaultMaxRounds,
	}, nil
}

// EqQueries returns the number of counterexample rounds run so far.
func (l *Learner) EqQueries() uint64 { return l.eqQueries }

// Run drives the table to saturation, synthesizes a hypothesis, and
// repeats against fresh counterexamples until the equivalence oracle
// reports none, returning the converged hypothesis.
func (l *Learner) Run() (*automaton.TimedAutomaton, error) {
	for round := 0; round < l.MaxRounds; round++ {
		if err := l.table.Saturate(); err != nil {
			return nil, err
		}
		hypothesis, err := synth.BuildHypothesis(l.table, l.alphabet)
		if err != nil {
			return nil, err
		}

		cex, found := l.eqOracle.FindCounterExample(hypothesis)
		l.eqQueries++
		if !found {
			return hypothesis, nil
		}

		wrapped := recognizable.New(hypothesis)
		suffix, fresh := recognizable.AnalyzeCEX(cex, l.rawOracle, wrapped, l.table.Suffixes())
		if !fresh {
			return nil, ErrStaleCounterExample
		}
		if err := l.table.AddSuffix(suffix); err != nil {
			return nil, err
		}
	}
	return nil, ErrNoRoundsLeft
}
