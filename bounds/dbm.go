package bounds

import "fmt"

// DBM is a square, row-major difference-bound matrix over nodes 0..size-1.
// Node 0 is the constant-zero anchor; entries D[i][j] bound x_i - x_j.
//
// The storage layout follows matrix/dense.go's flat-slice convention: a
// single []Bound of length size*size, indexed row-major.
type DBM struct {
	size int
	data []Bound
}

// New constructs a size x size DBM with every off-diagonal entry set to
// PlusInf and every diagonal entry set to Leq0 — the "top" (least
// constrained, universally satisfiable) zone.
func New(size int) (*DBM, error) {
	if size <= 0 {
		return nil, ErrInvalidDimension
	}
	d := &DBM{size: size, data: make([]Bound, size*size)}
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			if i == j {
				d.data[i*size+j] = Leq0
			} else {
				d.data[i*size+j] = PlusInf
			}
		}
	}
	return d, nil
}

// Zero constructs a size x size DBM pinning every clock to exactly 0.
func Zero(size int) (*DBM, error) {
	if size <= 0 {
		return nil, ErrInvalidDimension
	}
	d := &DBM{size: size, data: make([]Bound, size*size)}
	for i := range d.data {
		d.data[i] = Leq0
	}
	return d, nil
}

// Size returns the number of nodes (including the constant anchor 0).
func (d *DBM) Size() int { return d.size }

func (d *DBM) index(i, j int) (int, error) {
	if i < 0 || i >= d.size || j < 0 || j >= d.size {
		return 0, fmt.Errorf("bounds: DBM.index(%d,%d): %w", i, j, ErrIndexOutOfRange)
	}
	return i*d.size + j, nil
}

// At returns the bound on x_i - x_j. It panics on an out-of-range index,
// since every call site in this package is statically bounds-checked by
// construction; callers that need an error-returning variant should use
// AtErr.
func (d *DBM) At(i, j int) Bound {
	idx, err := d.index(i, j)
	if err != nil {
		panic(err)
	}
	return d.data[idx]
}

// AtErr is the error-returning counterpart of At, for indices derived from
// untrusted input.
func (d *DBM) AtErr(i, j int) (Bound, error) {
	idx, err := d.index(i, j)
	if err != nil {
		return Bound{}, err
	}
	return d.data[idx], nil
}

// Set assigns the bound on x_i - x_j without re-canonizing.
func (d *DBM) Set(i, j int, b Bound) {
	idx, err := d.index(i, j)
	if err != nil {
		panic(err)
	}
	d.data[idx] = b
}

// Clone returns a deep copy.
func (d *DBM) Clone() *DBM {
	data := make([]Bound, len(d.data))
	copy(data, d.data)
	return &DBM{size: d.size, data: data}
}

// Tighten adds the constraint x_i - x_j <= b (replacing the current entry
// with the tighter of the two) and restores canonicity by closing at i
// and j, mirroring Zone::tighten in the original source.
func (d *DBM) Tighten(i, j int, b Bound) {
	cur := d.At(i, j)
	d.Set(i, j, Min(cur, b))
	d.Close1(i)
	d.Close1(j)
}

// Close1 performs one step of Floyd–Warshall pivoting at node x: for every
// pair (i,j), D[i][j] = min(D[i][j], D[i][x]+D[x][j]).
func (d *DBM) Close1(x int) {
	n := d.size
	for i := 0; i < n; i++ {
		dix := d.data[i*n+x]
		if dix.IsInf() {
			continue
		}
		for j := 0; j < n; j++ {
			viaX := dix.Add(d.data[x*n+j])
			cur := d.data[i*n+j]
			if viaX.Less(cur) {
				d.data[i*n+j] = viaX
			}
		}
	}
}

// Close runs full Floyd–Warshall canonicalisation, pivoting at every node.
func (d *DBM) Close() {
	for x := 0; x < d.size; x++ {
		d.Close1(x)
	}
}

// IsSatisfiable reports whether the zone is non-empty: every pair (i,j)
// must have D[i][j] + D[j][i] >= (0, non-strict).
func (d *DBM) IsSatisfiable() bool {
	n := d.size
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sum := d.data[i*n+j].Add(d.data[j*n+i])
			if sum.Less(Leq0) {
				return false
			}
		}
	}
	return true
}

// Equal reports whether two canonical DBMs represent the same zone
// (structural equality is sound for canonical DBMs, which are the unique
// tightest representation of a zone).
func (d *DBM) Equal(o *DBM) bool {
	if d.size != o.size {
		return false
	}
	for i := range d.data {
		if !d.data[i].Equal(o.data[i]) {
			return false
		}
	}
	return true
}

// Includes reports whether d's zone is a superset of o's zone (used by the
// zone automaton's state-merging rule): every constraint of d is implied by
// o, i.e. d[i][j] >= o[i][j] for all i,j (d is weaker or equal everywhere).
func (d *DBM) Includes(o *DBM) bool {
	if d.size != o.size {
		return false
	}
	for i := range d.data {
		if d.data[i].Less(o.data[i]) {
			return false
		}
	}
	return true
}

// ConstResetPolicy sets clock x to the constant c: unconstrain x, equate it
// to the anchor at the chosen value, then re-canonise.
func (d *DBM) ConstResetPolicy(x, c int) {
	n := d.size
	for k := 0; k < n; k++ {
		if k == x {
			continue
		}
		d.data[x*n+k] = PlusInf
		d.data[k*n+x] = PlusInf
	}
	d.data[x*n+x] = Leq0
	d.Set(0, x, LeqC(-c))
	d.Set(x, 0, LeqC(c))
	d.Close()
}

// CopyResetPolicy sets clock x to equal clock y: unconstrain x, then add
// the two (0,<=) edges that equate them, and re-canonise.
func (d *DBM) CopyResetPolicy(x, y int) {
	n := d.size
	for k := 0; k < n; k++ {
		if k == x {
			continue
		}
		d.data[x*n+k] = PlusInf
		d.data[k*n+x] = PlusInf
	}
	d.data[x*n+x] = Leq0
	d.Set(x, y, Leq0)
	d.Set(y, x, Leq0)
	d.Close()
}

// Reset is one entry of a reset sequence: clock Clock is set either to the
// constant Value (IsConst true) or copied from clock CopyFrom.
type Reset struct {
	Clock    int
	IsConst  bool
	Value    int
	CopyFrom int
}

// ApplyResets applies a sequence of resets in order.
func (d *DBM) ApplyResets(resets []Reset) {
	for _, r := range resets {
		if r.IsConst {
			d.ConstResetPolicy(r.Clock, r.Value)
		} else {
			d.CopyResetPolicy(r.Clock, r.CopyFrom)
		}
	}
}

// RevertResets computes a weakest precondition: runs the reset sequence in
// reverse, unconstraining each reset clock (since its pre-reset value is
// unconstrained by definition) while reinstating copy equalities so that
// clocks copied from one another remain linked going backwards.
func (d *DBM) RevertResets(resets []Reset) {
	n := d.size
	for k := len(resets) - 1; k >= 0; k-- {
		r := resets[k]
		for j := 0; j < n; j++ {
			d.data[r.Clock*n+j] = PlusInf
			d.data[j*n+r.Clock] = PlusInf
		}
		d.data[r.Clock*n+r.Clock] = Leq0
		if !r.IsConst {
			d.Set(r.Clock, r.CopyFrom, Leq0)
			d.Set(r.CopyFrom, r.Clock, Leq0)
		}
	}
	d.Close()
}

// Elapse unbounds column 0 (the upper bound on every clock becomes
// infinite), modelling the passage of an unbounded amount of time. The
// caller must call Close afterwards if further queries need canonicity
// (mirroring the original source's caller-canonises convention).
func (d *DBM) Elapse() {
	n := d.size
	for i := 0; i < n; i++ {
		if i == 0 {
			continue
		}
		d.data[i*n+0] = PlusInf
	}
}

// ReverseElapse bounds row 0 to (0,<=): every clock's lower bound becomes
// 0, i.e. time may have elapsed backwards without limit. Caller canonises.
func (d *DBM) ReverseElapse() {
	n := d.size
	for j := 0; j < n; j++ {
		d.data[0*n+j] = Leq0
	}
	d.data[0] = Leq0
}

// Extrapolate applies Behrmann et al. diagonal extrapolation against
// per-clock maximum constants maxConst (indexed 0..size-2 for clocks
// 1..size-1; clock 0 is the anchor and has no entry). Any bound that
// exceeds its clock's own maximum, or that would need a maximum larger
// than either endpoint's, is relaxed to infinity.
func (d *DBM) Extrapolate(maxConst []int) {
	n := d.size
	m := func(clock int) int {
		if clock == 0 {
			return 0
		}
		idx := clock - 1
		if idx < 0 || idx >= len(maxConst) {
			return Inf
		}
		return maxConst[idx]
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			b := d.data[i*n+j]
			if b.IsInf() {
				continue
			}
			mi, mj := m(i), m(j)
			switch {
			case b.N > mi:
				d.data[i*n+j] = PlusInf
			case i != 0 && -d.data[0*n+i].N > mi:
				d.data[i*n+j] = PlusInf
			case j != 0 && -d.data[0*n+j].N > mj:
				d.data[i*n+j] = PlusInf
			}
		}
	}
	d.Close()
}

// Juxtapose merges two DBMs block-diagonally. When shared == 0 the result
// simply stacks d (anchor + d's own nodes) against o (o's own nodes,
// renumbered), both keeping independent row/column 0 anchors folded into
// one shared anchor. When shared > 0, the last `shared` nodes of d are
// identified with the first `shared` non-anchor nodes of o, and that
// overlapping sub-block is the intersection (Min) of both sides'
// constraints on it.
func Juxtapose(d, o *DBM, shared int) (*DBM, error) {
	if shared < 0 {
		return nil, ErrDimensionMismatch
	}
	dn := d.size
	on := o.size
	if shared > dn-1 || shared > on-1 {
		return nil, ErrDimensionMismatch
	}
	total := dn + on - 1 - shared
	result, err := New(total)
	if err != nil {
		return nil, err
	}

	// d occupies result indices [0, dn) unchanged, including its own
	// anchor at 0. o's anchor is identified with that same shared anchor;
	// o's first `shared` non-anchor nodes are identified with d's last
	// `shared` non-anchor nodes (the shared tail variables); o's remaining
	// non-anchor nodes continue at fresh indices starting at dn.
	dIndex := func(i int) int { return i }
	oIndex := func(i int) int {
		switch {
		case i == 0:
			return 0
		case i <= shared:
			return dn - shared - 1 + i
		default:
			return dn + (i - 1 - shared)
		}
	}

	for i := 0; i < dn; i++ {
		for j := 0; j < dn; j++ {
			ri, rj := dIndex(i), dIndex(j)
			result.Set(ri, rj, Min(result.At(ri, rj), d.At(i, j)))
		}
	}
	for i := 0; i < on; i++ {
		for j := 0; j < on; j++ {
			ri, rj := oIndex(i), oIndex(j)
			result.Set(ri, rj, Min(result.At(ri, rj), o.At(i, j)))
		}
	}
	result.Close()
	return result, nil
}
