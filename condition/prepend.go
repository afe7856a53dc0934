package condition

import "github.com/katalvlaran/lvlearnta/bounds"

// PrependZero grows this condition by one new leading variable, which
// becomes the new x_0 pinned to exactly 0, shifting every existing x_i to
// x_{i+1}. This is the backward-language analogue of AppendZero: growing
// the word by one earlier event whose pending delay has not yet elapsed.
func (c TimedCondition) PrependZero() TimedCondition {
	oldSize := c.dbm.Size()
	d, err := bounds.New(oldSize + 1)
	if err != nil {
		panic(err)
	}
	// anchor (node 0) stays put; old node k (k>=1) moves to k+1.
	remap := func(k int) int {
		if k == 0 {
			return 0
		}
		return k + 1
	}
	for i := 0; i < oldSize; i++ {
		for j := 0; j < oldSize; j++ {
			d.Set(remap(i), remap(j), c.dbm.At(i, j))
		}
	}
	newNode := 1
	d.Set(newNode, newNode, bounds.Leq0)
	d.Set(newNode, 0, bounds.Leq0)
	d.Set(0, newNode, bounds.Leq0)
	d.Close()
	return TimedCondition{dbm: d}
}

// DropFirst is the inverse of PrependZero: removes x_0 (which must
// currently be pinned to a point) and shifts every remaining x_i down by
// one.
func (c TimedCondition) DropFirst() (TimedCondition, error) {
	l := c.WordLength()
	if l < 0 {
		return TimedCondition{}, ErrIndexOutOfRange
	}
	oldSize := c.dbm.Size()
	d, err := bounds.New(oldSize - 1)
	if err != nil {
		return TimedCondition{}, err
	}
	remap := func(k int) int {
		if k == 0 {
			return 0
		}
		return k - 1
	}
	for i := 1; i < oldSize; i++ {
		if i == 1 {
			continue // dropped node
		}
		for j := 1; j < oldSize; j++ {
			if j == 1 {
				continue
			}
			d.Set(remap(i), remap(j), c.dbm.At(i, j))
		}
	}
	for i := 1; i < oldSize; i++ {
		if i == 1 {
			continue
		}
		d.Set(remap(i), 0, c.dbm.At(i, 0))
		d.Set(0, remap(i), c.dbm.At(0, i))
	}
	d.Set(0, 0, bounds.Leq0)
	return TimedCondition{dbm: d}, nil
}
