// SPDX-License-Identifier: MIT

// Package samples provides deterministic response tables for demos, tests and
// benchmarks.
//
// Three bundled data sets cover the usual scales:
//
//   - small:  5 students × 5 problems, a perfect Guttman staircase (D* = 0).
//   - medium: 30 × 20, a typical class.
//   - large:  300 × 60, a full grade.
//
// medium and large come from Generate: each student gets an ability and each
// problem an easiness drawn from a seeded sine-based sequence, and a cell is
// correct when a third draw falls below ability·easiness + offset. The
// sequence is a pure function of its seed, so every call produces the same
// table on every platform.
//
// Generate is exported with functional options (WithStudents, WithProblems,
// WithIDScheme, ...) so callers can build their own synthetic tables in the
// same family.
//
// Errors:
//
//   - ErrTooFew:        negative student or problem count.
//   - ErrBadRange:      ability / easiness span outside [0,1].
//   - ErrUnknownSample: ByName with a name that is not bundled.
package samples
