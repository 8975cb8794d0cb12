// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations return these sentinels (wrapped once with an
// operation tag) and tests check them via errors.Is.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) at the
// outer boundary; callers still use errors.Is to match.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> ragged rows -> cell values -> permutations.

var (
	// ErrNilMatrix indicates that a nil *Binary (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrBadShape is returned when a requested shape is negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrRaggedRows signals that a row slice does not match the declared column count.
	ErrRaggedRows = errors.New("matrix: ragged rows")

	// ErrNonBinary signals a cell value other than 0 or 1.
	ErrNonBinary = errors.New("matrix: non-binary value")

	// ErrBadPermutation signals a permutation of the wrong length, with an
	// out-of-range entry or with a repeated entry.
	ErrBadPermutation = errors.New("matrix: invalid permutation")
)
