// Package language implements elementary languages: a discrete word paired
// with a timed condition that constrains its inter-event delays, plus the
// forward and backward regional variants used by the observation table to
// walk the region graph one boundary at a time.
//
// A plain ElementaryLanguage carries no fractional-order bookkeeping and is
// used wherever only membership testing matters. Forward and Backward wrap
// it with a forder.FractionalOrder so that Successor/Predecessor can step
// exactly one region at a time, mirroring how the observation table grows
// and shrinks prefixes during closure.
package language
