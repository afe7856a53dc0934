// Package forder implements the fractional order: an ordered partition of
// clock indices by the relative order of their fractional parts, used by
// regional elementary languages (package language) to track which discrete
// successor region a simple timed condition denotes.
//
// The order is stored front-to-back as a list of buckets of clock indices;
// clocks in the same bucket have equal fractional part, and bucket order is
// the "<" order on fractional parts. The front bucket, when non-empty,
// holds the clocks with fractional part exactly 0.
package forder
