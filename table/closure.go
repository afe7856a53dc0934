package table

import "github.com/katalvlaran/lvlearnta/renaming"

// findUnclosedRow returns a frontier prefix index (not yet in P) whose row
// does not match any row currently in P, or -1 if the table is closed.
func (t *ObservationTable) findUnclosedRow() int {
	for i := range t.prefixes {
		if t.pIndices[i] {
			continue
		}
		matched := false
		for p := range t.pIndices {
			if t.equivalentWithMemo(i, p) {
				t.representative[i] = p
				matched = true
				break
			}
		}
		if !matched {
			return i
		}
	}
	return -1
}

// Close repeatedly promotes unclosed frontier rows into P until every
// remaining frontier row is equivalent to some row in P.
func (t *ObservationTable) Close() error {
	if len(t.pIndices) == 0 {
		if err := t.moveToP(0); err != nil {
			return err
		}
	}
	for {
		idx := t.findUnclosedRow()
		if idx < 0 {
			return nil
		}
		if err := t.moveToP(idx); err != nil {
			return err
		}
	}
}

// discreteInconsistency locates two equivalent P rows whose successor
// (under the same action) rows disagree, returning the action and the
// suffix index at which the successors diverge.
func (t *ObservationTable) discreteInconsistency() (action string, suffixIdx int, ok bool) {
	pList := t.PIndices()
	for ai := 0; ai < len(pList); ai++ {
		for bi := ai + 1; bi < len(pList); bi++ {
			i, j := pList[ai], pList[bi]
			if !t.equivalentWithMemo(i, j) {
				continue
			}
			for _, a := range t.alphabet {
				si, iok := t.DiscreteSuccessor(i, a)
				sj, jok := t.DiscreteSuccessor(j, a)
				if !iok || !jok {
					continue
				}
				if !t.equivalentWithMemo(si, sj) {
					for k := range t.rows[si] {
						if t.rows[si][k].Empty() != t.rows[sj][k].Empty() ||
							t.rows[si][k].Size() != t.rows[sj][k].Size() {
							return a, k, true
						}
					}
					return a, 0, true
				}
			}
		}
	}
	return "", 0, false
}

// Consistent repairs discrete-successor inconsistencies by adding a new
// suffix (the offending action prepended to the diverging suffix) until
// none remain.
func (t *ObservationTable) Consistent() error {
	for {
		action, suffixIdx, found := t.discreteInconsistency()
		if !found {
			return nil
		}
		newSuffix := t.suffixes[suffixIdx].DiscreteSuccessor(action)
		t.suffixes = append(t.suffixes, newSuffix)
		t.distinguished = map[pairKey]bool{}
		t.closedRelation = map[pairKey]renaming.Relation{}
		if err := t.refreshRows(); err != nil {
			return err
		}
	}
}
