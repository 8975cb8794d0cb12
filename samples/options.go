// SPDX-License-Identifier: MIT
// Package: sptable/samples
//
// options.go: functional options for Generate.
//
// Contract:
//   - Option constructors validate and PANIC on meaningless inputs
//     (nil IDFn, non-finite numbers). Generate itself never panics.
//   - Defaults reproduce the medium sample family (see generatorConfig).

package samples

import "math"

// Option customizes Generate by mutating a generatorConfig.
type Option func(*generatorConfig)

// generatorConfig aggregates every knob of Generate.
type generatorConfig struct {
	students, problems int

	studentID IDFn
	problemID IDFn

	abilityBase, abilitySpan float64 // ability_i = base + span·r(i·100 + abilitySeed)
	abilitySeed              float64

	easeBase, easeSpan float64 // ease_j = base + span·r(j·200 + easeSeed)
	easeSeed           float64

	offset   float64 // P(correct) = ability·ease + offset
	cellSeed float64 // cell draw r(i·1000 + j + cellSeed)
}

// Defaults of the medium family.
const (
	defaultStudents    = 30
	defaultProblems    = 20
	defaultAbilityBase = 0.3
	defaultAbilitySpan = 0.4
	defaultAbilitySeed = 1
	defaultEaseBase    = 0.3
	defaultEaseSpan    = 0.5
	defaultEaseSeed    = 1000
	defaultOffset      = 0.1
	defaultCellSeed    = 5000
)

// newGeneratorConfig applies opts in order over the defaults.
func newGeneratorConfig(opts ...Option) generatorConfig {
	cfg := generatorConfig{
		students:    defaultStudents,
		problems:    defaultProblems,
		studentID:   PaddedIDFn("S", 3),
		problemID:   PaddedIDFn("P", 2),
		abilityBase: defaultAbilityBase,
		abilitySpan: defaultAbilitySpan,
		abilitySeed: defaultAbilitySeed,
		easeBase:    defaultEaseBase,
		easeSpan:    defaultEaseSpan,
		easeSeed:    defaultEaseSeed,
		offset:      defaultOffset,
		cellSeed:    defaultCellSeed,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

func mustFinite(name string, vs ...float64) {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic("samples: " + name + ": non-finite value")
		}
	}
}

// WithStudents sets the number of students (rows). Range is checked by Generate.
func WithStudents(n int) Option { return func(c *generatorConfig) { c.students = n } }

// WithProblems sets the number of problems (columns). Range is checked by Generate.
func WithProblems(n int) Option { return func(c *generatorConfig) { c.problems = n } }

// WithIDScheme sets the student and problem identifier generators.
// Panics on nil.
func WithIDScheme(student, problem IDFn) Option {
	if student == nil || problem == nil {
		panic("samples: WithIDScheme(nil)")
	}

	return func(c *generatorConfig) {
		c.studentID = student
		c.problemID = problem
	}
}

// WithAbility sets ability_i = base + span·r(i·100 + seed).
func WithAbility(base, span, seed float64) Option {
	mustFinite("WithAbility", base, span, seed)

	return func(c *generatorConfig) {
		c.abilityBase, c.abilitySpan, c.abilitySeed = base, span, seed
	}
}

// WithEase sets ease_j = base + span·r(j·200 + seed); higher is easier.
func WithEase(base, span, seed float64) Option {
	mustFinite("WithEase", base, span, seed)

	return func(c *generatorConfig) {
		c.easeBase, c.easeSpan, c.easeSeed = base, span, seed
	}
}

// WithOffset sets the additive guessing term of the correct probability.
func WithOffset(offset float64) Option {
	mustFinite("WithOffset", offset)

	return func(c *generatorConfig) { c.offset = offset }
}

// WithCellSeed sets the seed base of the per-cell draws.
func WithCellSeed(seed float64) Option {
	mustFinite("WithCellSeed", seed)

	return func(c *generatorConfig) { c.cellSeed = seed }
}
