package language

import (
	"github.com/katalvlaran/lvlearnta/forder"
	"gonum.org/v1/gonum/mat"
)

// Forward is the forward regional elementary language: an ElementaryLanguage
// together with the fractional order of its x_0..x_L tail-sum variables,
// letting Successor/Predecessor advance exactly one region boundary at a
// time, growing the word at its tail.
type Forward struct {
	ElementaryLanguage
	Order forder.FractionalOrder
}

// NewForward returns the forward regional elementary language of the empty
// word.
func NewForward() Forward {
	return Forward{ElementaryLanguage: Empty(), Order: forder.New()}
}

// DiscreteSuccessor extends the word by one event a, appending a fresh
// pending-delay variable pinned to 0.
func (f Forward) DiscreteSuccessor(a string) Forward {
	word := make([]string, len(f.Word)+1)
	copy(word, f.Word)
	word[len(f.Word)] = a
	return Forward{
		ElementaryLanguage: ElementaryLanguage{Word: word, Cond: f.Cond.AppendZero()},
		Order:              f.Order.ExtendN(),
	}
}

// DiscretePredecessor is the inverse of DiscreteSuccessor(a): requires the
// last word symbol to equal a.
func (f Forward) DiscretePredecessor(a string) (Forward, error) {
	if len(f.Word) == 0 {
		return Forward{}, ErrEmptyWord
	}
	if f.Word[len(f.Word)-1] != a {
		return Forward{}, ErrEventMismatch
	}
	cond, err := f.Cond.DropLast()
	if err != nil {
		return Forward{}, err
	}
	word := make([]string, len(f.Word)-1)
	copy(word, f.Word[:len(f.Word)-1])
	return Forward{
		ElementaryLanguage: ElementaryLanguage{Word: word, Cond: cond},
		Order:              f.Order.UnextendN(),
	}, nil
}

// Successor elapses time by exactly one region boundary, without consuming
// an event.
func (f Forward) Successor() Forward {
	towardOpen := len(f.Order.Buckets()) > 0 && len(f.Order.Buckets()[0]) > 0
	affected := f.Order.SuccessorVariables()
	return Forward{
		ElementaryLanguage: ElementaryLanguage{Word: f.Word, Cond: f.Cond.StepDiagonal(affected, towardOpen)},
		Order:              f.Order.Successor(),
	}
}

// Predecessor is the inverse of Successor.
func (f Forward) Predecessor() Forward {
	frontNonEmpty := len(f.Order.Buckets()) > 0 && len(f.Order.Buckets()[0]) > 0
	affected := f.Order.PredecessorVariables()
	return Forward{
		ElementaryLanguage: ElementaryLanguage{Word: f.Word, Cond: f.Cond.StepDiagonal(affected, frontNonEmpty)},
		Order:              f.Order.Predecessor(),
	}
}

// Prefixes returns, shortest first, the forward regional elementary
// languages of every prefix of this language's word (including the empty
// prefix and this language itself), each carrying the corresponding
// projection of the condition and order.
func (f Forward) Prefixes() []Forward {
	out := make([]Forward, 0, len(f.Word)+1)
	for k := 0; k <= len(f.Word); k++ {
		cond, err := f.Cond.Project(k)
		if err != nil {
			continue
		}
		word := make([]string, k)
		copy(word, f.Word[:k])
		out = append(out, Forward{
			ElementaryLanguage: ElementaryLanguage{Word: word, Cond: cond},
			Order:              f.Order.Project(k),
		})
	}
	return out
}

// Sample returns a concrete valuation vector (x_0..x_L midpoints) drawn
// from the interior of this language's condition.
func (f Forward) Sample() (*mat.VecDense, error) {
	return f.Cond.Sample()
}
