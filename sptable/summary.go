// SPDX-License-Identifier: MIT

package sptable

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Caution thresholds.
const (
	// WarningThreshold marks an entity as needing attention (index ≥ 0.5).
	WarningThreshold = 0.5

	// CriticalThreshold marks an entity as needing close attention (index ≥ 0.75).
	CriticalThreshold = 0.75
)

// CautionLevel classifies a caution index against the thresholds.
type CautionLevel string

const (
	// LevelNormal is an index below WarningThreshold.
	LevelNormal CautionLevel = "normal"
	// LevelWarning is an index in [WarningThreshold, CriticalThreshold).
	LevelWarning CautionLevel = "warning"
	// LevelCritical is an index at or above CriticalThreshold.
	LevelCritical CautionLevel = "critical"
	// LevelUnknown is a null index.
	LevelUnknown CautionLevel = "unknown"
)

// Level classifies c. A null index is LevelUnknown, never LevelNormal.
func Level(c NullFloat) CautionLevel {
	switch {
	case c.IsNull():
		return LevelUnknown
	case c.AtLeast(CriticalThreshold):
		return LevelCritical
	case c.AtLeast(WarningThreshold):
		return LevelWarning
	default:
		return LevelNormal
	}
}

// Summarize builds the Summary of ranked students and problems.
//
// Threshold counts include only non-null indices that are ≥ the threshold, so
// the critical count never exceeds the warning count. Averages are 0 for empty
// collections. Reliability is the KR-20 coefficient
//
//	(P/(P−1)) · (1 − Σ p_j(1−p_j) / σ²)
//
// with p_j the correct rate and σ² the population variance of scores; it is
// null when P < 2 or σ² == 0.
func Summarize(students []RankedStudent, problems []RankedProblem) Summary {
	sum := Summary{
		StudentCount: len(students),
		ProblemCount: len(problems),
	}

	scores := make([]float64, len(students))
	for i, st := range students {
		scores[i] = float64(st.TotalScore)
		if st.CautionIndex.AtLeast(WarningThreshold) {
			sum.CautionStudents++
		}
		if st.CautionIndex.AtLeast(CriticalThreshold) {
			sum.HighCautionStudents++
		}
	}

	rates := make([]float64, len(problems))
	pq := make([]float64, len(problems))
	for j, pr := range problems {
		rates[j] = pr.CorrectRate
		pq[j] = pr.CorrectRate * (1 - pr.CorrectRate)
		if pr.CautionIndex.AtLeast(WarningThreshold) {
			sum.CautionProblems++
		}
		if pr.CautionIndex.AtLeast(CriticalThreshold) {
			sum.HighCautionProblems++
		}
	}

	var variance float64
	if len(scores) > 0 {
		sum.AverageScore, variance = stat.PopMeanVariance(scores, nil)
		sum.ScoreStdDev = math.Sqrt(variance)
	}
	if len(rates) > 0 {
		sum.AverageCorrectRate = stat.Mean(rates, nil)
	}

	p := len(problems)
	if p >= 2 && variance != 0 {
		fp := float64(p)
		sum.Reliability = Float(fp / (fp - 1) * (1 - floats.Sum(pq)/variance))
	}

	return sum
}
