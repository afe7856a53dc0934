package language

import "fmt"

// ErrWordLengthMismatch reports a TimedWord whose event count does not
// match the language's word. No function in this package returns it.
var ErrWordLengthMismatch = fmt.Errorf("language: %w", errWordLengthMismatch)
var errWordLengthMismatch = fmt.Errorf("timed word length does not match language word")

// ErrEmptyWord is returned by discrete predecessor operations on a
// zero-length word.
var ErrEmptyWord = fmt.Errorf("language: %w", errEmptyWord)
var errEmptyWord = fmt.Errorf("word is empty, no discrete predecessor")

// ErrEventMismatch is returned when a discrete predecessor is asked for
// with an event that does not match the word symbol it removes (the last
// one for Forward, the first one for Backward).
var ErrEventMismatch = fmt.Errorf("language: %w", errEventMismatch)
var errEventMismatch = fmt.Errorf("event does not match word symbol")
