// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Return plain sentinel errors (no wrapping beyond the validator tag) so
//    call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure and deterministic.
//  - ValidatePermutation allocates one []bool of length n.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Binary) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateCell ensures v is exactly 0 or 1.
// Complexity: O(1).
func ValidateCell(v int) error {
	if v != 0 && v != 1 {
		return validatorErrorf("ValidateCell", fmt.Errorf("%d: %w", v, ErrNonBinary))
	}

	return nil
}

// ValidateRectangular ensures every row has exactly cols entries.
// It does not inspect cell values.
// Complexity: O(r).
func ValidateRectangular(rows [][]int, cols int) error {
	for i, row := range rows {
		if len(row) != cols {
			return validatorErrorf("ValidateRectangular",
				fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), cols, ErrRaggedRows))
		}
	}

	return nil
}

// ValidatePermutation ensures p is a permutation of [0..n).
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(p []int, n int) error {
	if len(p) != n {
		return validatorErrorf("ValidatePermutation",
			fmt.Errorf("length %d, want %d: %w", len(p), n, ErrBadPermutation))
	}
	seen := make([]bool, n)
	for k, v := range p {
		if v < 0 || v >= n || seen[v] {
			return validatorErrorf("ValidatePermutation",
				fmt.Errorf("entry %d=%d: %w", k, v, ErrBadPermutation))
		}
		seen[v] = true
	}

	return nil
}
