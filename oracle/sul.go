package oracle

// Sul is the system under learning: a black box the learner drives one
// discrete action or time delay at a time.
type Sul interface {
	// Pre is called before feeding a new timed word.
	Pre()
	// Post is called after a timed word has been fully fed.
	Post()
	// StepSymbol feeds a discrete action and reports the resulting
	// membership verdict (e.g. "is this an accepting configuration").
	StepSymbol(action string) bool
	// StepDelay feeds a time elapse of the given duration.
	StepDelay(duration float64) bool
	// Count returns the number of queries (Pre calls) made so far.
	Count() uint64
}
