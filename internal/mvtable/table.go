// Package mvtable implements a table of rows and columns where every
// row/column cell holds a set of values.
package mvtable

import "slices"

type cell[V comparable] struct {
	values []V
	seen   map[V]struct{}
}

// Table maps (row, column) pairs to sets of values. Rows, columns and the
// values of a cell keep their insertion order. The zero value is not usable;
// call New.
type Table[R, C, V comparable] struct {
	rows    map[R]map[C]*cell[V]
	rowKeys []R
	colKeys []C
	colSeen map[C]struct{}
}

func New[R, C, V comparable]() *Table[R, C, V] {
	return &Table[R, C, V]{
		rows:    make(map[R]map[C]*cell[V]),
		colSeen: make(map[C]struct{}),
	}
}

// Add puts value into the (row, column) cell and returns the table so calls
// can be chained. Adding a value twice has no effect.
func (t *Table[R, C, V]) Add(row R, col C, value V) *Table[R, C, V] {
	cols, ok := t.rows[row]
	if !ok {
		cols = make(map[C]*cell[V])
		t.rows[row] = cols
		t.rowKeys = append(t.rowKeys, row)
	}
	if _, ok := t.colSeen[col]; !ok {
		t.colSeen[col] = struct{}{}
		t.colKeys = append(t.colKeys, col)
	}
	c, ok := cols[col]
	if !ok {
		c = &cell[V]{seen: make(map[V]struct{})}
		cols[col] = c
	}
	if _, dup := c.seen[value]; !dup {
		c.seen[value] = struct{}{}
		c.values = append(c.values, value)
	}
	return t
}

// Values returns a copy of the values stored at (row, column); it is empty
// when either label is unknown.
func (t *Table[R, C, V]) Values(row R, col C) []V {
	if c := t.lookup(row, col); c != nil {
		return slices.Clone(c.values)
	}
	return []V{}
}

// Each calls fn for every value at (row, column) without copying.
func (t *Table[R, C, V]) Each(row R, col C, fn func(V)) {
	if c := t.lookup(row, col); c != nil {
		for _, v := range c.values {
			fn(v)
		}
	}
}

func (t *Table[R, C, V]) Has(row R, col C, value V) bool {
	c := t.lookup(row, col)
	if c == nil {
		return false
	}
	_, ok := c.seen[value]
	return ok
}

func (t *Table[R, C, V]) lookup(row R, col C) *cell[V] {
	cols, ok := t.rows[row]
	if !ok {
		return nil
	}
	return cols[col]
}

// Rows returns the row labels that hold at least one value.
func (t *Table[R, C, V]) Rows() []R { return slices.Clone(t.rowKeys) }

// Columns returns the column labels used by any row.
func (t *Table[R, C, V]) Columns() []C { return slices.Clone(t.colKeys) }
