// SPDX-License-Identifier: MIT

// Package sptable: functional configuration for Analyze and the individual
// calculators.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package sptable

import "fmt"

// Strategy selects how the caution indices and the disparity coefficient are
// evaluated. All strategies return identical values; they differ only in cost.
type Strategy int

const (
	// Naive evaluates every sum directly from its definition.
	// Kept as the reference implementation.
	Naive Strategy = iota

	// PrefixSum precomputes prefix sums of the weight vectors so each
	// boundary sum becomes a lookup. Integer sums stay exact until the final
	// division, so results are bit-identical to Naive.
	PrefixSum
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Naive:
		return "naive"
	case PrefixSum:
		return "prefix"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "naive" / "prefix" to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "naive":
		return Naive, nil
	case "prefix", "":
		return PrefixSum, nil
	default:
		return 0, fmt.Errorf("sptable: unknown strategy %q", s)
	}
}

// Defaults - single source of truth for zero-value behavior.
const (
	// DefaultStrategy is used when WithStrategy is not given.
	DefaultStrategy = PrefixSum

	// DefaultValidateIDs toggles identifier checks (non-empty students,
	// unique students and problems) in Analyze.
	DefaultValidateIDs = true
)

const panicStrategyInvalid = "sptable: WithStrategy: unknown strategy"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	strategy    Strategy
	validateIDs bool
}

// WithStrategy selects the evaluation strategy.
// Panics on an unknown Strategy value.
func WithStrategy(s Strategy) Option {
	if s != Naive && s != PrefixSum {
		panic(panicStrategyInvalid)
	}

	return func(o *Options) { o.strategy = s }
}

// WithoutIDValidation skips the identifier checks in Analyze. Use it when an
// upstream loader already guaranteed unique, non-empty identifiers. Shape and
// cell checks always run.
func WithoutIDValidation() Option {
	return func(o *Options) { o.validateIDs = false }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		strategy:    DefaultStrategy,
		validateIDs: DefaultValidateIDs,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
