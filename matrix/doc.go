// SPDX-License-Identifier: MIT

// Package matrix offers a compact binary (0/1) matrix used to hold
// student × problem response tables.
//
// The matrix package provides:
//
//   - Binary, a row-major 0/1 store with bounds-checked At/Set and deep Clone.
//   - Reduce / RowSums / ColSums, the single-pass row and column aggregates.
//   - Permute, composing a row permutation and a column permutation into a
//     freshly allocated reordered copy: new[i][j] = old[rp[i]][cp[j]].
//   - Transpose, used by loaders that receive problem-major tables.
//
// Zero-size shapes (0×N, N×0, 0×0) are legal everywhere and behave as empty
// tables. Every operation that returns a matrix returns a new one; inputs are
// never aliased or mutated.
//
// See the examples in this package for usage patterns.
package matrix
