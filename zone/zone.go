package zone

import (
	"github.com/katalvlaran/lvlearnta/automaton"
	"github.com/katalvlaran/lvlearnta/bounds"
	"github.com/katalvlaran/lvlearnta/guard"
)

// Zone is a clock-valuation DBM of size clockCount+1.
type Zone struct {
	DBM *bounds.DBM
}

// Initial returns the zone with every clock pinned to zero.
func Initial(clockCount int) (Zone, error) {
	d, err := bounds.Zero(clockCount + 1)
	if err != nil {
		return Zone{}, err
	}
	return Zone{DBM: d}, nil
}

// Clone returns an independent deep copy.
func (z Zone) Clone() Zone { return Zone{DBM: z.DBM.Clone()} }

// Elapse lets an unbounded amount of time pass, then re-closes.
func (z Zone) Elapse() {
	z.DBM.Elapse()
	z.DBM.Close()
}

// Tighten intersects z with a transition guard.
func (z Zone) Tighten(g guard.Guard) {
	for _, c := range g {
		node := c.Clock + 1
		switch c.Op {
		case guard.LE:
			z.DBM.Tighten(node, 0, bounds.LeqC(c.C))
		case guard.LT:
			z.DBM.Tighten(node, 0, bounds.LtC(c.C))
		case guard.GE:
			z.DBM.Tighten(0, node, bounds.LeqC(-c.C))
		case guard.GT:
			z.DBM.Tighten(0, node, bounds.LtC(-c.C))
		}
	}
	z.DBM.Close()
}

// ApplyResets applies a TimedAutomaton transition's clock resets.
func (z Zone) ApplyResets(resets []automaton.Reset) {
	converted := make([]bounds.Reset, len(resets))
	for i, r := range resets {
		if r.CopyFrom == nil {
			converted[i] = bounds.Reset{Clock: r.Clock + 1, IsConst: true, Value: 0}
		} else {
			converted[i] = bounds.Reset{Clock: r.Clock + 1, CopyFrom: *r.CopyFrom + 1}
		}
	}
	z.DBM.ApplyResets(converted)
}

// Extrapolate widens z against per-clock extrapolation bounds, keeping the
// zone automaton finite.
func (z Zone) Extrapolate(maxConstraints []int) { z.DBM.Extrapolate(maxConstraints) }

// IsSatisfiable reports whether z has any satisfying valuation.
func (z Zone) IsSatisfiable() bool { return z.DBM.IsSatisfiable() }

// Includes reports whether z includes every valuation of o (same
// semantics as bounds.DBM.Includes).
func (z Zone) Includes(o Zone) bool { return z.DBM.Includes(o.DBM) }
