// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// Operation name constants for unified error wrapping.
const (
	opNewBinary = "NewBinary"
	opFromRows  = "FromRows"
	opAt        = "At"
	opSet       = "Set"
	opReduce    = "Reduce"
	opPermute   = "Permute"
	opTranspose = "Transpose"
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// binaryErrorf wraps an underlying error with Binary method context.
func binaryErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Binary.%s(%d,%d): %w", method, row, col, err)
}

// Binary is a row-major matrix of 0/1 cells.
// r is rows, c is columns, and data holds r*c cells in row-major order.
type Binary struct {
	r, c int     // number of rows and columns
	data []uint8 // flat backing storage, length == r*c, every cell 0 or 1
}

// NewBinary creates an r×c Binary matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols are non-negative.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewBinary(rows, cols int) (*Binary, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opNewBinary, ErrBadShape)
	}

	return &Binary{r: rows, c: cols, data: make([]uint8, rows*cols)}, nil
}

// FromRows copies a slice-of-rows table into a new Binary matrix.
// Implementation:
//   - Stage 1: validate cols ≥ 0 and every row length == cols (ErrRaggedRows).
//   - Stage 2: copy cells, rejecting anything but 0 or 1 (ErrNonBinary).
//
// cols is explicit so that a table with zero rows still carries its width.
//
// Errors:
//   - ErrBadShape, ErrRaggedRows, ErrNonBinary (wrapped with row/column context).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]int, cols int) (*Binary, error) {
	if cols < 0 {
		return nil, matrixErrorf(opFromRows, ErrBadShape)
	}
	if err := ValidateRectangular(rows, cols); err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}

	m := &Binary{r: len(rows), c: cols, data: make([]uint8, len(rows)*cols)}
	var i, j int
	for i = 0; i < m.r; i++ {
		base := i * cols
		for j = 0; j < cols; j++ {
			v := rows[i][j]
			if err := ValidateCell(v); err != nil {
				return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d col %d: %w", i, j, err))
			}
			m.data[base+j] = uint8(v)
		}
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Binary) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Binary) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Binary) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, binaryErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the cell at (row, col).
// Complexity: O(1).
func (m *Binary) At(row, col int) (int, error) {
	idx, err := m.indexOf(opAt, row, col)
	if err != nil {
		return 0, err
	}

	return int(m.data[idx]), nil
}

// Set assigns v (0 or 1) at (row, col).
// Complexity: O(1).
func (m *Binary) Set(row, col, v int) error {
	idx, err := m.indexOf(opSet, row, col)
	if err != nil {
		return err
	}
	if err = ValidateCell(v); err != nil {
		return binaryErrorf(opSet, row, col, err)
	}
	m.data[idx] = uint8(v)

	return nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c).
func (m *Binary) Clone() *Binary {
	cp := make([]uint8, len(m.data))
	copy(cp, m.data)

	return &Binary{r: m.r, c: m.c, data: cp}
}

// Row returns a fresh []int copy of row i, or nil when i is out of range.
func (m *Binary) Row(i int) []int {
	if i < 0 || i >= m.r {
		return nil
	}
	out := make([]int, m.c)
	base := i * m.c
	for j := range out {
		out[j] = int(m.data[base+j])
	}

	return out
}

// ToRows returns the matrix as a freshly allocated slice of rows.
// The result never aliases the matrix storage.
// Complexity: O(r*c).
func (m *Binary) ToRows() [][]int {
	out := make([][]int, m.r)
	for i := range out {
		out[i] = m.Row(i)
	}

	return out
}

// String implements fmt.Stringer for easy debugging.
func (m *Binary) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteByte('0' + m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
