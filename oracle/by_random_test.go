package oracle

import (
	"math/rand"

	"github.com/katalvlaran/lvlearnta/automaton"
	"github.com/katalvlaran/lvlearnta/timedword"
)

// ByRandomTest is an equivalence oracle that draws random timed words
// (random actions from a fixed alphabet, random delays up to MaxDuration,
// MaxLength events each) and compares the reference and hypothesis
// automata's verdicts step by step, same as ByTest but without needing a
// pre-built suite.
type ByRandomTest struct {
	Alphabet    []string
	MaxTests    int
	MaxLength   int
	MaxDuration float64
	Rand        *rand.Rand

	reference *automaton.TimedAutomaton
}

// NewByRandomTest constructs a ByRandomTest oracle with its own
// deterministic-by-default random source (seed 1); callers that need a
// different sequence set Rand directly.
func NewByRandomTest(reference *automaton.TimedAutomaton, alphabet []string, maxTests, maxLength int, maxDuration float64) *ByRandomTest {
	return &ByRandomTest{
		Alphabet:    alphabet,
		MaxTests:    maxTests,
		MaxLength:   maxLength,
		MaxDuration: maxDuration,
		Rand:        rand.New(rand.NewSource(1)),
		reference:   reference,
	}
}

// FindCounterExample draws up to MaxTests random timed words and returns
// the first one on which the reference and hypothesis automata disagree.
func (o *ByRandomTest) FindCounterExample(hypothesis *automaton.TimedAutomaton) (timedword.TimedWord, bool) {
	refRunner := automaton.NewRunner(o.reference)
	hypRunner := automaton.NewRunner(hypothesis)

	for t := 0; t < o.MaxTests; t++ {
		refRunner.Pre()
		hypRunner.Pre()
		var events []string
		var durations []float64

		for step := 0; step < o.MaxLength; step++ {
			d := o.Rand.Float64() * o.MaxDuration
			durations = append(durations, d)
			if refRunner.StepDelay(d) != hypRunner.StepDelay(d) {
				tw, _ := timedword.New(events, append([]float64(nil), durations...))
				return tw, true
			}
			action := o.Alphabet[o.Rand.Intn(len(o.Alphabet))]
			events = append(events, action)
			if refRunner.StepSymbol(action) != hypRunner.StepSymbol(action) {
				durations = append(durations, 0)
				tw, _ := timedword.New(events, durations)
				return tw, true
			}
		}
		d := o.Rand.Float64() * o.MaxDuration
		durations = append(durations, d)
		if refRunner.StepDelay(d) != hypRunner.StepDelay(d) {
			tw, _ := timedword.New(events, durations)
			return tw, true
		}
	}
	return timedword.TimedWord{}, false
}
