package oracle

import "github.com/katalvlaran/lvlearnta/timedword"

// MembershipOracleCache wraps a MembershipOracle, memoising results keyed
// by the timed word's string form so repeated queries (common during
// closure and counterexample analysis) cost no further Sul interaction.
type MembershipOracleCache struct {
	oracle      MembershipOracle
	cache       map[string]bool
	countNoCache uint64
}

// NewMembershipOracleCache wraps oracle with a memoising cache.
func NewMembershipOracleCache(oracle MembershipOracle) *MembershipOracleCache {
	return &MembershipOracleCache{oracle: oracle, cache: make(map[string]bool)}
}

// AnswerQuery returns the cached verdict if tw has been asked before,
// otherwise delegates to the wrapped oracle and caches the result.
func (c *MembershipOracleCache) AnswerQuery(tw timedword.TimedWord) bool {
	c.countNoCache++
	key := tw.String()
	if v, ok := c.cache[key]; ok {
		return v
	}
	result := c.oracle.AnswerQuery(tw)
	c.cache[key] = result
	return result
}

// Count returns the wrapped oracle's (uncached) query count.
func (c *MembershipOracleCache) Count() uint64 { return c.oracle.Count() }

// CountNoCache returns the number of AnswerQuery calls regardless of
// whether they hit the cache.
func (c *MembershipOracleCache) CountNoCache() uint64 { return c.countNoCache }
