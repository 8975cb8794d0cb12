// SPDX-License-Identifier: MIT

package samples

import (
	"math"

	"github.com/katalvlaran/sptable/sptable"
)

const opGenerate = "Generate"

// SeededRandom returns frac(sin(seed)·10000), a value in [0,1) that depends
// only on seed.
func SeededRandom(seed float64) float64 {
	x := math.Sin(seed) * 10000

	return x - math.Floor(x)
}

// Generate builds a synthetic response table.
//
// For student i and problem j:
//
//	ability_i = abilityBase + abilitySpan·r(i·100 + abilitySeed)
//	ease_j    = easeBase + easeSpan·r(j·200 + easeSeed)
//	cell      = 1 iff r(i·1000 + j + cellSeed) < ability_i·ease_j + offset
//
// with r = SeededRandom.
//
// Errors:
//   - ErrTooFew if students or problems is negative.
//   - ErrBadRange if an ability or ease range leaves [0,1].
//
// Complexity: O(S·P).
func Generate(opts ...Option) (sptable.Raw, error) {
	cfg := newGeneratorConfig(opts...)
	if cfg.students < 0 || cfg.problems < 0 {
		return sptable.Raw{}, samplesErrorf(opGenerate, ErrTooFew)
	}
	if !unitRange(cfg.abilityBase, cfg.abilitySpan) || !unitRange(cfg.easeBase, cfg.easeSpan) {
		return sptable.Raw{}, samplesErrorf(opGenerate, ErrBadRange)
	}

	ability := make([]float64, cfg.students)
	for i := range ability {
		ability[i] = cfg.abilityBase + cfg.abilitySpan*SeededRandom(float64(i*100)+cfg.abilitySeed)
	}
	ease := make([]float64, cfg.problems)
	for j := range ease {
		ease[j] = cfg.easeBase + cfg.easeSpan*SeededRandom(float64(j*200)+cfg.easeSeed)
	}

	rows := make([][]int, cfg.students)
	var j int
	for i := range rows {
		rows[i] = make([]int, cfg.problems)
		for j = 0; j < cfg.problems; j++ {
			if SeededRandom(float64(i*1000+j)+cfg.cellSeed) < ability[i]*ease[j]+cfg.offset {
				rows[i][j] = 1
			}
		}
	}

	return sptable.Raw{
		StudentIDs: idsOf(cfg.studentID, cfg.students),
		ProblemIDs: idsOf(cfg.problemID, cfg.problems),
		Matrix:     rows,
	}, nil
}

// unitRange reports whether [base, base+span] lies inside [0,1].
func unitRange(base, span float64) bool {
	return span >= 0 && base >= 0 && base+span <= 1
}
