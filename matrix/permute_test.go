// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/sptable/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPermute_Composition verifies out[i][j] = m[rp[i]][cp[j]] for every cell.
func TestPermute_Composition(t *testing.T) {
	src := [][]int{
		{1, 0, 0, 1},
		{0, 1, 1, 1},
		{1, 1, 0, 0},
	}
	m, err := matrix.FromRows(src, 4)
	require.NoError(t, err)

	rp := []int{2, 0, 1}
	cp := []int{3, 1, 0, 2}
	out, err := m.Permute(rp, cp)
	require.NoError(t, err)

	for i := range rp {
		for j := range cp {
			v, err := out.At(i, j)
			require.NoError(t, err)
			assert.Equalf(t, src[rp[i]][cp[j]], v, "cell (%d,%d)", i, j)
		}
	}

	// source untouched
	assert.Equal(t, src, m.ToRows())
}

// TestPermute_Invalid rejects wrong lengths, out-of-range and repeated entries.
func TestPermute_Invalid(t *testing.T) {
	m, err := matrix.NewBinary(2, 2)
	require.NoError(t, err)

	for _, tc := range []struct {
		name   string
		rp, cp []int
	}{
		{"short rows", []int{0}, []int{0, 1}},
		{"long cols", []int{0, 1}, []int{0, 1, 2}},
		{"out of range", []int{0, 2}, []int{0, 1}},
		{"repeated", []int{0, 1}, []int{1, 1}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := m.Permute(tc.rp, tc.cp)
			assert.ErrorIs(t, err, matrix.ErrBadPermutation)
		})
	}

	var nilM *matrix.Binary
	_, err = nilM.Permute(nil, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestTranspose flips dimensions and cells.
func TestTranspose(t *testing.T) {
	m, err := matrix.FromRows([][]int{{1, 0, 1}, {0, 0, 1}}, 3)
	require.NoError(t, err)

	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 0}, {0, 0}, {1, 1}}, tr.ToRows())

	empty, err := matrix.NewBinary(0, 3)
	require.NoError(t, err)
	tr, err = matrix.Transpose(empty)
	require.NoError(t, err)
	assert.Equal(t, 3, tr.Rows())
	assert.Equal(t, 0, tr.Cols())
}
