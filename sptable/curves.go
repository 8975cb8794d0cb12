// SPDX-License-Identifier: MIT

package sptable

// BuildCurves returns the S-curve and P-curve for ranked aggregates.
//
// S-curve (student side), S = len(scores), P = len(correctCounts):
//
//	(0,0), then per ranked student i: (score_i/P, i/S), (score_i/P, (i+1)/S)
//
// P-curve (problem side):
//
//	(0,0), then per ranked problem j: (j/P, cc_j/S), ((j+1)/P, cc_j/S)
//
// Each curve has 1 + 2n points. When S == 0 or P == 0 neither curve can be
// normalized and both are returned empty (non-nil).
//
// Complexity: O(S + P).
func BuildCurves(scores, correctCounts []int) Curves {
	s, p := len(scores), len(correctCounts)
	if s == 0 || p == 0 {
		return Curves{S: []CurvePoint{}, P: []CurvePoint{}}
	}

	fs, fp := float64(s), float64(p)

	sCurve := make([]CurvePoint, 0, 1+2*s)
	sCurve = append(sCurve, CurvePoint{})
	for i, score := range scores {
		x := float64(score) / fp
		sCurve = append(sCurve,
			CurvePoint{X: x, Y: float64(i) / fs},
			CurvePoint{X: x, Y: float64(i+1) / fs},
		)
	}

	pCurve := make([]CurvePoint, 0, 1+2*p)
	pCurve = append(pCurve, CurvePoint{})
	for j, cc := range correctCounts {
		y := float64(cc) / fs
		pCurve = append(pCurve,
			CurvePoint{X: float64(j) / fp, Y: y},
			CurvePoint{X: float64(j+1) / fp, Y: y},
		)
	}

	return Curves{S: sCurve, P: pCurve}
}
