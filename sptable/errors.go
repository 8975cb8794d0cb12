// SPDX-License-Identifier: MIT
// Package sptable: sentinel error set.
// Every message is prefixed with "sptable: ...". Callers match with errors.Is;
// the package wraps each sentinel once with the failing operation.

package sptable

import (
	"errors"

	"github.com/katalvlaran/sptable/matrix"
)

var (
	// ErrDimensionMismatch indicates that the ID lists, the matrix and the
	// aggregate vectors disagree on the number of students or problems.
	ErrDimensionMismatch = errors.New("sptable: dimension mismatch")

	// ErrRaggedMatrix indicates a row whose length differs from the problem count.
	// It is the same sentinel as matrix.ErrRaggedRows so either can be matched.
	ErrRaggedMatrix = matrix.ErrRaggedRows

	// ErrNonBinary indicates a cell other than 0 or 1.
	// It is the same sentinel as matrix.ErrNonBinary.
	ErrNonBinary = matrix.ErrNonBinary

	// ErrDuplicateID indicates a repeated student or problem identifier.
	ErrDuplicateID = errors.New("sptable: duplicate identifier")

	// ErrEmptyID indicates an empty student identifier.
	ErrEmptyID = errors.New("sptable: empty identifier")
)
