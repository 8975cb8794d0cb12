// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the row/column aggregates of a response table: row sums
//     (student scores) and column sums (problem correct counts).
//
// Determinism & Performance:
//   - One fixed i→j pass over the flat buffer; integer accumulation, exact.
//   - Zero-size matrices yield empty (non-nil) vectors.

package matrix

// Reduce returns the row sums and column sums of m in a single pass.
// Implementation:
//   - Stage 1: validate m is non-nil.
//   - Stage 2: walk the row-major buffer once, accumulating both vectors.
//
// Behavior highlights:
//   - r == 0 or c == 0 yields empty vectors of the correct length, not an error.
//
// Returns:
//   - rows: len r, rows[i] = Σ_j m[i,j].
//   - cols: len c, cols[j] = Σ_i m[i,j].
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r+c).
func Reduce(m *Binary) (rows, cols []int, err error) {
	if err = ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opReduce, err)
	}

	rows = make([]int, m.r)
	cols = make([]int, m.c)
	var i, j, s int
	for i = 0; i < m.r; i++ {
		base := i * m.c
		s = 0
		for j = 0; j < m.c; j++ {
			v := int(m.data[base+j])
			s += v
			cols[j] += v
		}
		rows[i] = s
	}

	return rows, cols, nil
}

// RowSums returns Σ_j m[i,j] for every row i.
// Complexity: O(r*c).
func (m *Binary) RowSums() []int {
	out := make([]int, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		base := i * m.c
		for j = 0; j < m.c; j++ {
			out[i] += int(m.data[base+j])
		}
	}

	return out
}

// ColSums returns Σ_i m[i,j] for every column j.
// Complexity: O(r*c).
func (m *Binary) ColSums() []int {
	out := make([]int, m.c)
	var i, j int
	for i = 0; i < m.r; i++ {
		base := i * m.c
		for j = 0; j < m.c; j++ {
			out[j] += int(m.data[base+j])
		}
	}

	return out
}
