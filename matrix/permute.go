// SPDX-License-Identifier: MIT

package matrix

// Permute returns a new matrix whose rows and columns are reordered:
//
//	out[i][j] = m[rowPerm[i]][colPerm[j]]
//
// Implementation:
//   - Stage 1: validate m, then both permutations (length, range, uniqueness).
//   - Stage 2: gather rows by rowPerm, columns within each row by colPerm.
//
// Errors:
//   - ErrNilMatrix, ErrBadPermutation (wrapped).
//
// Complexity:
//   - Time O(r*c + r + c), Space O(r*c).
func (m *Binary) Permute(rowPerm, colPerm []int) (*Binary, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPermute, err)
	}
	if err := ValidatePermutation(rowPerm, m.r); err != nil {
		return nil, matrixErrorf(opPermute+": rows", err)
	}
	if err := ValidatePermutation(colPerm, m.c); err != nil {
		return nil, matrixErrorf(opPermute+": cols", err)
	}

	out := &Binary{r: m.r, c: m.c, data: make([]uint8, len(m.data))}
	var i, j int
	for i = 0; i < m.r; i++ {
		dst := i * m.c
		src := rowPerm[i] * m.c
		for j = 0; j < m.c; j++ {
			out.data[dst+j] = m.data[src+colPerm[j]]
		}
	}

	return out, nil
}

// Transpose returns the c×r transpose of m.
// Complexity: O(r*c).
func Transpose(m *Binary) (*Binary, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	out := &Binary{r: m.c, c: m.r, data: make([]uint8, len(m.data))}
	var i, j int
	for i = 0; i < m.r; i++ {
		base := i * m.c
		for j = 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[base+j]
		}
	}

	return out, nil
}
