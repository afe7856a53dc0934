package oracle

import "github.com/katalvlaran/lvlearnta/timedword"

// MembershipOracle answers plain (non-symbolic) membership queries: is a
// concrete timed word in the target language.
type MembershipOracle interface {
	AnswerQuery(tw timedword.TimedWord) bool
	Count() uint64
}

// SULMembershipOracle answers membership queries by directly driving a Sul.
type SULMembershipOracle struct {
	sul Sul
}

// NewSULMembershipOracle wraps sul as a MembershipOracle.
func NewSULMembershipOracle(sul Sul) *SULMembershipOracle {
	return &SULMembershipOracle{sul: sul}
}

// AnswerQuery feeds tw's delays and events to the Sul in alternation and
// returns the final verdict.
func (o *SULMembershipOracle) AnswerQuery(tw timedword.TimedWord) bool {
	o.sul.Pre()
	result := o.sul.StepDelay(tw.Durations[0])
	for i, ev := range tw.Events {
		o.sul.StepSymbol(ev)
		result = o.sul.StepDelay(tw.Durations[i+1])
	}
	o.sul.Post()
	return result
}

// Count returns the Sul's Count: the number of queries made so far.
func (o *SULMembershipOracle) Count() uint64 { return o.sul.Count() }
