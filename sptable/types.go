// SPDX-License-Identifier: MIT
// Package sptable: input and output value types.

package sptable

// Raw is the unranked response table as delivered by an upstream loader.
//
// Matrix[i][j] is 1 when student i answered problem j correctly, 0 otherwise.
// len(Matrix) == len(StudentIDs) and every row has len(ProblemIDs) cells.
type Raw struct {
	StudentIDs []string `json:"studentIds"`
	ProblemIDs []string `json:"problemIds"`
	Matrix     [][]int  `json:"matrix"`
}

// RankedStudent is one row of the ranked table.
type RankedStudent struct {
	ID            string    `json:"id"`
	OriginalIndex int       `json:"originalIndex"` // position in Raw.StudentIDs
	TotalScore    int       `json:"totalScore"`    // row sum
	Responses     []int     `json:"responses"`     // ranked response vector
	CautionIndex  NullFloat `json:"cautionIndex"`  // CS; null when not computable
}

// RankedProblem is one column of the ranked table.
type RankedProblem struct {
	ID            string    `json:"id"`
	OriginalIndex int       `json:"originalIndex"` // position in Raw.ProblemIDs
	CorrectCount  int       `json:"correctCount"`  // column sum
	CorrectRate   float64   `json:"correctRate"`   // CorrectCount / student count
	CautionIndex  NullFloat `json:"cautionIndex"`  // CP; null when not computable
}

// CurvePoint is a vertex of a boundary polyline; both coordinates lie in [0,1].
type CurvePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Curves holds the S-curve and P-curve polylines.
type Curves struct {
	S []CurvePoint `json:"sCurve"`
	P []CurvePoint `json:"pCurve"`
}

// Summary aggregates counts and descriptive statistics over a Result.
type Summary struct {
	StudentCount       int       `json:"studentCount"`
	ProblemCount       int       `json:"problemCount"`
	AverageScore       float64   `json:"averageScore"`
	AverageCorrectRate float64   `json:"averageCorrectRate"`
	ScoreStdDev        float64   `json:"scoreStdDev"` // population standard deviation
	Reliability        NullFloat `json:"reliability"` // KR-20; null when undefined

	CautionStudents     int `json:"cautionStudentCount"`     // CS ≥ WarningThreshold
	HighCautionStudents int `json:"highCautionStudentCount"` // CS ≥ CriticalThreshold
	CautionProblems     int `json:"cautionProblemCount"`     // CP ≥ WarningThreshold
	HighCautionProblems int `json:"highCautionProblemCount"` // CP ≥ CriticalThreshold
}

// Result is the complete analysis of one Raw table.
type Result struct {
	Students  []RankedStudent `json:"students"`
	Problems  []RankedProblem `json:"problems"`
	Matrix    [][]int         `json:"matrix"` // Matrix[i][j] = Raw.Matrix[Students[i].OriginalIndex][Problems[j].OriginalIndex]
	Curves    Curves          `json:"curves"`
	Disparity float64         `json:"disparityCoefficient"` // D* ≥ 0
	Summary   Summary         `json:"summary"`
}
