// SPDX-License-Identifier: MIT

package sptable

import (
	"fmt"

	"github.com/katalvlaran/sptable/matrix"
)

// Validate checks raw against the input contract:
//   - len(Matrix) == len(StudentIDs) (ErrDimensionMismatch),
//   - every row has len(ProblemIDs) cells (ErrRaggedMatrix),
//   - every cell is 0 or 1 (ErrNonBinary),
//   - student IDs are non-empty (ErrEmptyID),
//   - student IDs and problem IDs are unique (ErrDuplicateID).
//
// Analyze calls it unless WithoutIDValidation is given, in which case only the
// shape and cell checks run.
// Complexity: O(S·P).
func Validate(raw Raw) error {
	if err := validateShape(raw); err != nil {
		return err
	}

	return validateIDs(raw)
}

// validateShape checks counts, row lengths and cell values.
func validateShape(raw Raw) error {
	if len(raw.Matrix) != len(raw.StudentIDs) {
		return fmt.Errorf("%d rows for %d students: %w", len(raw.Matrix), len(raw.StudentIDs), ErrDimensionMismatch)
	}
	if err := matrix.ValidateRectangular(raw.Matrix, len(raw.ProblemIDs)); err != nil {
		return err
	}
	for i, row := range raw.Matrix {
		for j, v := range row {
			if err := matrix.ValidateCell(v); err != nil {
				return fmt.Errorf("student %q problem %q: %w", raw.StudentIDs[i], raw.ProblemIDs[j], err)
			}
		}
	}

	return nil
}

// validateIDs checks identifier emptiness and uniqueness.
func validateIDs(raw Raw) error {
	seen := make(map[string]int, len(raw.StudentIDs))
	for i, id := range raw.StudentIDs {
		if id == "" {
			return fmt.Errorf("student %d: %w", i, ErrEmptyID)
		}
		if prev, ok := seen[id]; ok {
			return fmt.Errorf("student %q at %d and %d: %w", id, prev, i, ErrDuplicateID)
		}
		seen[id] = i
	}

	clear(seen)
	for j, id := range raw.ProblemIDs {
		if prev, ok := seen[id]; ok {
			return fmt.Errorf("problem %q at %d and %d: %w", id, prev, j, ErrDuplicateID)
		}
		seen[id] = j
	}

	return nil
}
