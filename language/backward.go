package language

import (
	"github.com/katalvlaran/lvlearnta/forder"
	"gonum.org/v1/gonum/mat"
)

// Backward is the backward regional elementary language: the word grows at
// its front (discovering an earlier event) rather than its tail, used when
// walking a run backward from its end. The fractional order reindexes via
// forder's ExtendZero/UnextendZero, matching PrependZero's shift of every
// existing x_i up by one.
type Backward struct {
	ElementaryLanguage
	Order forder.FractionalOrder
}

// NewBackward returns the backward regional elementary language of the
// empty word.
func NewBackward() Backward {
	return Backward{ElementaryLanguage: Empty(), Order: forder.New()}
}

// DiscreteSuccessor prepends a freshly-pending event a before the current
// word, whose delay has not yet elapsed.
func (b Backward) DiscreteSuccessor(a string) Backward {
	word := make([]string, len(b.Word)+1)
	word[0] = a
	copy(word[1:], b.Word)
	return Backward{
		ElementaryLanguage: ElementaryLanguage{Word: word, Cond: b.Cond.PrependZero()},
		Order:              b.Order.ExtendZero(),
	}
}

// DiscretePredecessor is the inverse of DiscreteSuccessor(a): requires the
// first word symbol to equal a.
func (b Backward) DiscretePredecessor(a string) (Backward, error) {
	if len(b.Word) == 0 {
		return Backward{}, ErrEmptyWord
	}
	if b.Word[0] != a {
		return Backward{}, ErrEventMismatch
	}
	cond, err := b.Cond.DropFirst()
	if err != nil {
		return Backward{}, err
	}
	word := make([]string, len(b.Word)-1)
	copy(word, b.Word[1:])
	return Backward{
		ElementaryLanguage: ElementaryLanguage{Word: word, Cond: cond},
		Order:              b.Order.UnextendZero(),
	}, nil
}

// Successor elapses time by exactly one region boundary.
func (b Backward) Successor() Backward {
	towardOpen := len(b.Order.Buckets()) > 0 && len(b.Order.Buckets()[0]) > 0
	affected := b.Order.SuccessorVariables()
	return Backward{
		ElementaryLanguage: ElementaryLanguage{Word: b.Word, Cond: b.Cond.StepDiagonal(affected, towardOpen)},
		Order:              b.Order.Successor(),
	}
}

// Predecessor is the inverse of Successor.
func (b Backward) Predecessor() Backward {
	frontNonEmpty := len(b.Order.Buckets()) > 0 && len(b.Order.Buckets()[0]) > 0
	affected := b.Order.PredecessorVariables()
	return Backward{
		ElementaryLanguage: ElementaryLanguage{Word: b.Word, Cond: b.Cond.StepDiagonal(affected, frontNonEmpty)},
		Order:              b.Order.Predecessor(),
	}
}

// Suffixes returns, shortest first, the backward regional elementary
// languages of every suffix of this language's word obtained by repeatedly
// stripping the earliest event.
func (b Backward) Suffixes() []Backward {
	out := make([]Backward, 0, len(b.Word)+1)
	cur := b
	out = append(out, cur)
	for len(cur.Word) > 0 {
		next, err := cur.DiscretePredecessor(cur.Word[0])
		if err != nil {
			break
		}
		cur = next
		out = append(out, cur)
	}
	// reverse so the result is shortest-first.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Sample returns a concrete valuation vector drawn from the interior of
// this language's condition.
func (b Backward) Sample() (*mat.VecDense, error) {
	return b.Cond.Sample()
}
