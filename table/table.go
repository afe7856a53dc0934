package table

import (
	"github.com/katalvlaran/lvlearnta/condition"
	"github.com/katalvlaran/lvlearnta/language"
	"github.com/katalvlaran/lvlearnta/oracle"
	"github.com/katalvlaran/lvlearnta/renaming"
)

type discreteKey struct {
	index  int
	action string
}

type pairKey struct{ i, j int }

func canonicalPair(i, j int) pairKey {
	if i <= j {
		return pairKey{i, j}
	}
	return pairKey{j, i}
}

// ObservationTable is the timed observation table.
type ObservationTable struct {
	memOracle *oracle.SymbolicMembershipOracle
	alphabet  []string

	prefixes []language.Forward
	suffixes []language.Backward

	pIndices map[int]bool
	// representative maps a non-P row index to the P row index it was
	// found equivalent to when it was last examined.
	representative map[int]int

	closedRelation map[pairKey]renaming.Relation
	distinguished  map[pairKey]bool

	discreteSuccessors   map[discreteKey]int
	continuousSuccessors map[int]int

	rows [][]condition.Set
}

// New builds an observation table seeded with the empty prefix and the
// empty suffix, already filled in via memOracle.
func New(memOracle *oracle.SymbolicMembershipOracle, alphabet []string) (*ObservationTable, error) {
	t := &ObservationTable{
		memOracle:            memOracle,
		alphabet:             append([]string(nil), alphabet...),
		prefixes:             []language.Forward{language.NewForward()},
		suffixes:             []language.Backward{language.NewBackward()},
		pIndices:             map[int]bool{},
		representative:       map[int]int{},
		closedRelation:       map[pairKey]renaming.Relation{},
		distinguished:        map[pairKey]bool{},
		discreteSuccessors:   map[discreteKey]int{},
		continuousSuccessors: map[int]int{},
	}
	if err := t.refreshRows(); err != nil {
		return nil, err
	}
	return t, nil
}

// Prefixes returns the current prefix rows. Callers must not mutate the
// returned slice.
func (t *ObservationTable) Prefixes() []language.Forward { return t.prefixes }

// Suffixes returns the current suffix columns. Callers must not mutate the
// returned slice.
func (t *ObservationTable) Suffixes() []language.Backward { return t.suffixes }

// PIndices returns the indices currently promoted into P.
func (t *ObservationTable) PIndices() []int {
	out := make([]int, 0, len(t.pIndices))
	for idx := range t.pIndices {
		out = append(out, idx)
	}
	return out
}

// IsInP reports whether prefix index idx has been promoted into P.
func (t *ObservationTable) IsInP(idx int) bool { return t.pIndices[idx] }

// Representative resolves idx to its P-class representative: idx itself
// if it is in P, otherwise the P row it was last found equivalent to, or
// idx itself if no equivalence has been recorded yet.
func (t *ObservationTable) Representative(idx int) int {
	if t.pIndices[idx] {
		return idx
	}
	if rep, ok := t.representative[idx]; ok {
		return rep
	}
	return idx
}

// DiscreteSuccessor returns the prefix index reached from idx by firing
// action, if known.
func (t *ObservationTable) DiscreteSuccessor(idx int, action string) (int, bool) {
	v, ok := t.discreteSuccessors[discreteKey{index: idx, action: action}]
	return v, ok
}

// ContinuousSuccessor returns the prefix index reached from idx by
// elapsing one region boundary, if known.
func (t *ObservationTable) ContinuousSuccessor(idx int) (int, bool) {
	v, ok := t.continuousSuccessors[idx]
	return v, ok
}

// Row returns the symbolic-membership results for prefix index idx across
// every suffix.
func (t *ObservationTable) Row(idx int) []condition.Set { return t.rows[idx] }

// AddSuffix appends a new suffix column (typically one surfaced by
// counterexample analysis) and fills in the resulting new cells.
func (t *ObservationTable) AddSuffix(s language.Backward) error {
	t.suffixes = append(t.suffixes, s)
	t.distinguished = map[pairKey]bool{}
	t.closedRelation = map[pairKey]renaming.Relation{}
	return t.refreshRows()
}

// refreshRows fills in any rows/cells the table does not have yet.
func (t *ObservationTable) refreshRows() error {
	for len(t.rows) < len(t.prefixes) {
		t.rows = append(t.rows, nil)
	}
	for i, prefix := range t.prefixes {
		for len(t.rows[i]) < len(t.suffixes) {
			s := len(t.rows[i])
			elem, err := language.Concat(prefix, t.suffixes[s])
			if err != nil {
				return err
			}
			cell, err := t.memOracle.Query(elem)
			if err != nil {
				return err
			}
			t.rows[i] = append(t.rows[i], cell)
		}
	}
	return nil
}

// moveToP promotes prefix index idx into P and appends its discrete and
// continuous successors as new frontier rows.
func (t *ObservationTable) moveToP(idx int) error {
	t.pIndices[idx] = true
	delete(t.representative, idx)
	base := t.prefixes[idx]
	for _, a := range t.alphabet {
		t.prefixes = append(t.prefixes, base.DiscreteSuccessor(a))
		t.discreteSuccessors[discreteKey{index: idx, action: a}] = len(t.prefixes) - 1
	}
	t.prefixes = append(t.prefixes, base.Successor())
	t.continuousSuccessors[idx] = len(t.prefixes) - 1
	return t.refreshRows()
}

// rowsMatch is the equivalence check's comparison of two prefixes' rows
// under a candidate renaming: every suffix's cell must agree on emptiness
// and cardinality. This is a deliberately coarser stand-in for the
// upstream renaming-substitution comparison; see DESIGN.md.
func rowsMatch(a, b []condition.Set) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if a[k].Empty() != b[k].Empty() {
			return false
		}
		if a[k].Size() != b[k].Size() {
			return false
		}
	}
	return true
}

// equivalentWithMemo reports whether prefixes i and j denote equivalent
// rows, consulting (and updating) the distinguished/closedRelation memo
// tables.
func (t *ObservationTable) equivalentWithMemo(i, j int) bool {
	if i == j {
		return true
	}
	key := canonicalPair(i, j)
	if t.distinguished[key] {
		return false
	}
	if _, ok := t.closedRelation[key]; ok {
		return true
	}
	rel := renaming.FindRenaming(t.prefixes[i].Cond, t.prefixes[j].Cond)
	if rowsMatch(t.rows[i], t.rows[j]) {
		t.closedRelation[key] = rel
		return true
	}
	t.distinguished[key] = true
	return false
}
