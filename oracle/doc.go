// Package oracle provides the membership and symbolic-membership query
// interfaces the learner drives against a system under learning (Sul), plus
// caching decorators and test-suite-backed equivalence oracles.
package oracle
