// Package recognizable wraps a hypothesis TimedAutomaton as the timed
// language it recognizes, and analyzes counterexamples against it.
//
// AnalyzeCEX is a Rivest-Schapire-style counterexample analysis. The
// upstream construction's primary path rewrites the counterexample
// through a chain of single-variable morphisms derived from splitting it
// against the hypothesis's recognized prefixes, then does a linear search
// over that chain for the exact breakpoint where the oracle and the
// hypothesis start disagreeing. Building that chain needs each
// hypothesis state's own "split" decomposition (prefix, morphism, suffix)
// against arbitrary words, which this build's hypothesis does not
// expose. Instead this package goes straight to the fallback
// search upstream keeps for when that primary path can't find a fresh
// suffix: walk the counterexample's own suffixes from longest to
// shortest and return the first one not already covered by the table's
// current suffixes. It is less targeted (it doesn't use the hypothesis
// structure to narrow the search). When every suffix of the
// counterexample is already covered it finds nothing and reports false.
// See DESIGN.md.
package recognizable
