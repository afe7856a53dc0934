package guard

import (
	"fmt"

	"github.com/katalvlaran/lvlearnta/bounds"
)

// Order is the relational operator of an atomic constraint.
type Order int

const (
	LT Order = iota // x < c
	LE               // x <= c
	GT               // x > c
	GE               // x >= c
)

func (o Order) String() string {
	switch o {
	case LT:
		return "<"
	case LE:
		return "<="
	case GT:
		return ">"
	case GE:
		return ">="
	default:
		return "?"
	}
}

// Constraint is an atomic clock constraint: Clock <op> C.
type Constraint struct {
	Clock int
	Op    Order
	C     int
}

// Satisfy reports whether the constraint holds for the given clock value.
func (c Constraint) Satisfy(v float64) bool {
	cv := float64(c.C)
	switch c.Op {
	case LT:
		return v < cv
	case LE:
		return v <= cv
	case GT:
		return v > cv
	case GE:
		return v >= cv
	default:
		return false
	}
}

// IsUpperBound reports whether this constraint bounds the clock from
// above (< or <=).
func (c Constraint) IsUpperBound() bool { return c.Op == LT || c.Op == LE }

// Negate returns the logical negation of this constraint (a single atomic
// constraint suffices: the negation of a one-sided bound is another
// one-sided bound on the same clock).
func (c Constraint) Negate() Constraint {
	switch c.Op {
	case LT:
		return Constraint{Clock: c.Clock, Op: GE, C: c.C}
	case LE:
		return Constraint{Clock: c.Clock, Op: GT, C: c.C}
	case GT:
		return Constraint{Clock: c.Clock, Op: LE, C: c.C}
	case GE:
		return Constraint{Clock: c.Clock, Op: LT, C: c.C}
	default:
		panic("guard: invalid order")
	}
}

// ToDBMBound converts this constraint to the bounds.Bound it would impose
// as a DBM edge (x - anchor, oriented so upper bounds are direct and lower
// bounds are on the negated value, matching bounds.DBM's x_i - x_j <= b
// convention with j the anchor for upper bounds and i the anchor for lower
// bounds).
func (c Constraint) ToDBMBound() bounds.Bound {
	switch c.Op {
	case LE:
		return bounds.LeqC(c.C)
	case LT:
		return bounds.LtC(c.C)
	case GE:
		return bounds.LeqC(-c.C)
	case GT:
		return bounds.LtC(-c.C)
	default:
		panic("guard: invalid order")
	}
}

// IsWeaker reports whether c is implied by o (same clock, same bound
// direction, and c's bound is looser than or equal to o's).
func (c Constraint) IsWeaker(o Constraint) bool {
	if c.Clock != o.Clock {
		return false
	}
	if c.IsUpperBound() != o.IsUpperBound() {
		return false
	}
	// c is weaker iff o's bound is at least as tight, i.e. o.ToDBMBound()
	// is <= c.ToDBMBound() on the upper-bound encoding used here.
	return !c.ToDBMBound().Less(o.ToDBMBound())
}

// Equal reports structural equality.
func (c Constraint) Equal(o Constraint) bool {
	return c.Clock == o.Clock && c.Op == o.Op && c.C == o.C
}

func (c Constraint) String() string {
	return fmt.Sprintf("x%d%s%d", c.Clock, c.Op, c.C)
}
