/*
Package sparse implements a simple type for sparse integer matrices.
It is mainly used for per-rule grammar tables, where most of the cells
stay empty (e.g. the Leo-eligibility table of a preprocessed grammar,
where rows are rules and columns are dot positions).

This implementation uses the COO algorithm (a.k.a. triplet-encoding),
with triplets kept in row-major order for binary search.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"
	"sort"
)

// IntMatrix is a type for a sparse matrix of integer values. Construct with
//
//     M := NewIntMatrix(10, 10, -1)  // last parameter is M's null-value
//
// Now
//
//     M.Set(2, 3, 4711)              // set a value
//     v := M.Value(2, 3)             // returns 4711
//     cnt := M.ValueCount()          // returns 1 (one position set)
//     v = M.Value(9, 9)              // returns -1, i.e. the null-value
//
// Values cannot be deleted, but may be overwritten with the null-value.
// Space for null-values is not re-claimed.
type IntMatrix struct {
	cells   []cell
	rowcnt  int
	colcnt  int
	nullval int32
}

// A cell holds one value, addressed by (row, col).
type cell struct {
	row, col int
	value    int32
}

// DefaultNullValue is the default empty-value for matrices (min int32).
const DefaultNullValue int32 = -2147483648

// NewIntMatrix creates a new matrix for int32, size m x n. The 3rd argument
// is a null-value, indicating empty entries (use DefaultNullValue if you
// haven't any specific requirements).
func NewIntMatrix(m, n int, nullValue int32) *IntMatrix {
	return &IntMatrix{
		cells:   []cell{},
		rowcnt:  m,
		colcnt:  n,
		nullval: nullValue,
	}
}

// M returns the row count.
func (m *IntMatrix) M() int {
	return m.rowcnt
}

// N returns the column count.
func (m *IntMatrix) N() int {
	return m.colcnt
}

// NullValue returns this matrix' null value.
func (m *IntMatrix) NullValue() int32 {
	return m.nullval
}

// ValueCount returns the number of values in the matrix.
func (m *IntMatrix) ValueCount() int {
	return len(m.cells)
}

// locate finds the insertion point for (i,j) in row-major cell order.
func (m *IntMatrix) locate(i, j int) int {
	return sort.Search(len(m.cells), func(k int) bool {
		c := m.cells[k]
		return c.row > i || (c.row == i && c.col >= j)
	})
}

// Value returns the value at position (i,j), or NullValue.
func (m *IntMatrix) Value(i, j int) int32 {
	at := m.locate(i, j)
	if at < len(m.cells) && m.cells[at].row == i && m.cells[at].col == j {
		return m.cells[at].value
	}
	return m.nullval
}

// Set stores a value in the matrix at position (i,j), overwriting any
// previous value at that position. Panics if the position is outside the
// matrix' dimensions.
func (m *IntMatrix) Set(i, j int, value int32) *IntMatrix {
	if i < 0 || i >= m.rowcnt || j < 0 || j >= m.colcnt {
		panic(fmt.Sprintf("sparse matrix index (%d,%d) out of bounds", i, j))
	}
	at := m.locate(i, j)
	if at < len(m.cells) && m.cells[at].row == i && m.cells[at].col == j {
		m.cells[at].value = value
		return m
	}
	m.cells = append(m.cells, cell{})
	copy(m.cells[at+1:], m.cells[at:])
	m.cells[at] = cell{row: i, col: j, value: value}
	return m
}
