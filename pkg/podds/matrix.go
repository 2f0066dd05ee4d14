package podds

import (
	"fmt"
	"math"
)

// ScoreCell is one scoreline of a ScoreMatrix together with its
// modelled probability
type ScoreCell struct {
	HomeGoals   int
	AwayGoals   int
	Probability float64
}

// ScoreMatrix holds the joint probability of every scoreline up to
// MaxGoals for each side, built as the outer product of two independent
// Poisson distributions. The matrix is truncated, not renormalized, so
// TotalProbability reports slightly less than 1. Aggregate queries
// deliberately operate on the truncated mass
type ScoreMatrix struct {
	MaxGoals int
	Matrix   [][]float64 // [homeGoals][awayGoals] -> probability
}

// BuildMatrix creates the joint scoreline probability matrix for a match.
// The pmf for each side is evaluated once per goal count and the matrix
// is filled from the two vectors, so pmf evaluation stays O(maxGoals)
// rather than O(maxGoals^2)
func BuildMatrix(homeMean, awayMean float64, maxGoals int) (*ScoreMatrix, error) {
	if maxGoals < 0 {
		return nil, fmt.Errorf("maxGoals must be non-negative, got %d: %w", maxGoals, ErrInvalidArgument)
	}

	homeProbs := make([]float64, maxGoals+1)
	awayProbs := make([]float64, maxGoals+1)
	for g := 0; g <= maxGoals; g++ {
		var err error
		if homeProbs[g], err = Pmf(homeMean, g); err != nil {
			return nil, fmt.Errorf("home goal expectancy: %w", err)
		}
		if awayProbs[g], err = Pmf(awayMean, g); err != nil {
			return nil, fmt.Errorf("away goal expectancy: %w", err)
		}
	}

	matrix := make([][]float64, maxGoals+1)
	for i := range matrix {
		matrix[i] = make([]float64, maxGoals+1)
		for j := range matrix[i] {
			matrix[i][j] = homeProbs[i] * awayProbs[j]
		}
	}

	return &ScoreMatrix{MaxGoals: maxGoals, Matrix: matrix}, nil
}

// Outcomes calculates win/draw/loss probabilities from the matrix.
// Home wins live in the lower triangle, draws on the diagonal and away
// wins in the upper triangle
func (m *ScoreMatrix) Outcomes() (homeWin, draw, awayWin float64) {
	for i := 0; i <= m.MaxGoals; i++ {
		for j := 0; j <= m.MaxGoals; j++ {
			prob := m.Matrix[i][j]
			if i > j {
				homeWin += prob
			} else if i == j {
				draw += prob
			} else {
				awayWin += prob
			}
		}
	}
	return homeWin, draw, awayWin
}

// OverUnder splits the matrix mass around a total goals threshold.
// A scoreline counts as over when its total exceeds floor(threshold),
// which for the usual half-integer lines (2.5 etc) is simply "more
// goals than the line". Integral thresholds follow the same rule
func (m *ScoreMatrix) OverUnder(threshold float64) (over, under float64) {
	line := int(math.Floor(threshold))
	for i := 0; i <= m.MaxGoals; i++ {
		for j := 0; j <= m.MaxGoals; j++ {
			if i+j > line {
				over += m.Matrix[i][j]
			} else {
				under += m.Matrix[i][j]
			}
		}
	}
	return over, under
}

// BothTeamsToScore returns the probability that both sides register at
// least one goal
func (m *ScoreMatrix) BothTeamsToScore() float64 {
	both := 0.0
	for i := 1; i <= m.MaxGoals; i++ {
		for j := 1; j <= m.MaxGoals; j++ {
			both += m.Matrix[i][j]
		}
	}
	return both
}

// CorrectScore returns the probability of one specific scoreline, or
// zero for scorelines beyond the matrix bound
func (m *ScoreMatrix) CorrectScore(homeGoals, awayGoals int) float64 {
	if homeGoals < 0 || awayGoals < 0 || homeGoals > m.MaxGoals || awayGoals > m.MaxGoals {
		return 0
	}
	return m.Matrix[homeGoals][awayGoals]
}

// ExpectedGoals returns the probability weighted mean goal counts over
// the truncated matrix
func (m *ScoreMatrix) ExpectedGoals() (homeExpected, awayExpected float64) {
	for i := 0; i <= m.MaxGoals; i++ {
		for j := 0; j <= m.MaxGoals; j++ {
			prob := m.Matrix[i][j]
			homeExpected += float64(i) * prob
			awayExpected += float64(j) * prob
		}
	}
	return homeExpected, awayExpected
}

// TotalProbability returns the sum of every cell. Always slightly below
// 1 because goal counts beyond MaxGoals are discarded; approaches 1 as
// MaxGoals grows
func (m *ScoreMatrix) TotalProbability() float64 {
	total := 0.0
	for i := 0; i <= m.MaxGoals; i++ {
		for j := 0; j <= m.MaxGoals; j++ {
			total += m.Matrix[i][j]
		}
	}
	return total
}

// Cells flattens the matrix into its canonical enumeration order: home
// goals ascending, then away goals ascending. The ranker relies on this
// ordering for deterministic tie-breaks
func (m *ScoreMatrix) Cells() []ScoreCell {
	cells := make([]ScoreCell, 0, (m.MaxGoals+1)*(m.MaxGoals+1))
	for i := 0; i <= m.MaxGoals; i++ {
		for j := 0; j <= m.MaxGoals; j++ {
			cells = append(cells, ScoreCell{HomeGoals: i, AwayGoals: j, Probability: m.Matrix[i][j]})
		}
	}
	return cells
}
