package oracle

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlearnta/condition"
	"github.com/katalvlaran/lvlearnta/language"
	"github.com/katalvlaran/lvlearnta/timedword"
)

// SymbolicMembershipOracle answers symbolic membership queries: given an
// elementary language (possibly spanning many regions), it determines
// which of its constituent simple regions the target language includes,
// and reports the result as a condition.Set.
type SymbolicMembershipOracle struct {
	sul             Sul
	membershipCache map[string]bool
	queryCache      map[string]condition.Set
}

// NewSymbolicMembershipOracle wraps sul as a SymbolicMembershipOracle.
func NewSymbolicMembershipOracle(sul Sul) *SymbolicMembershipOracle {
	return &SymbolicMembershipOracle{
		sul:             sul,
		membershipCache: make(map[string]bool),
		queryCache:      make(map[string]condition.Set),
	}
}

func elementaryKey(e language.ElementaryLanguage) string {
	var b strings.Builder
	b.WriteString(strings.Join(e.Word, ","))
	b.WriteString("|")
	fmt.Fprintf(&b, "%v", e.Cond.DBM())
	return b.String()
}

func (o *SymbolicMembershipOracle) membership(tw timedword.TimedWord) bool {
	key := tw.String()
	if v, ok := o.membershipCache[key]; ok {
		return v
	}
	o.sul.Pre()
	result := o.sul.StepDelay(tw.Durations[0])
	for i, ev := range tw.Events {
		o.sul.StepSymbol(ev)
		result = o.sul.StepDelay(tw.Durations[i+1])
	}
	o.sul.Post()
	o.membershipCache[key] = result
	return result
}

func (o *SymbolicMembershipOracle) included(e language.ElementaryLanguage) bool {
	v, err := e.Cond.Sample()
	if err != nil {
		return false
	}
	// Sample returns tail sums x_0..x_L; TimedWord wants the per-position
	// delay Durations[i] = x_i - x_{i+1} (with x_{L+1} = 0).
	l := v.Len() - 1
	durations := make([]float64, l+1)
	for i := 0; i <= l; i++ {
		var next float64
		if i+1 <= l {
			next = v.AtVec(i + 1)
		}
		durations[i] = v.AtVec(i) - next
	}
	tw, err := timedword.New(e.Word, durations)
	if err != nil {
		return false
	}
	return o.membership(tw)
}

// Query answers a symbolic membership query for elementary, returning the
// set of regions within it that the target language includes.
func (o *SymbolicMembershipOracle) Query(elementary language.ElementaryLanguage) (condition.Set, error) {
	key := elementaryKey(elementary)
	if v, ok := o.queryCache[key]; ok {
		return v, nil
	}
	regions, err := elementary.Cond.Enumerate()
	if err != nil {
		return condition.Set{}, err
	}

	var included []condition.TimedCondition
	allIncluded := true
	for _, region := range regions {
		simple := language.ElementaryLanguage{Word: elementary.Word, Cond: region}
		if o.included(simple) {
			included = append(included, region)
		} else {
			allIncluded = false
		}
	}

	var result condition.Set
	switch {
	case len(included) == 0:
		result = condition.Bottom()
	case allIncluded:
		result = condition.NewSet(elementary.Cond)
	default:
		result = condition.Reduce(included)
	}
	o.queryCache[key] = result
	return result, nil
}

// Count returns the Sul's Count: the number of queries made so far.
func (o *SymbolicMembershipOracle) Count() uint64 { return o.sul.Count() }
