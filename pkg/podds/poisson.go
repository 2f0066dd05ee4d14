package podds

import (
	"fmt"
	"math"
)

// maxExactFactorial is the largest k for which k! fits a uint64 and is
// computed exactly. Beyond that the pmf switches to log space
const maxExactFactorial = 20

// Pmf calculates the Poisson probability mass P(X = k) for a team whose
// goal expectancy is mean: exp(-mean) * mean^k / k!
// The factorial is computed as an exact integer for k up to 20, which
// covers every goal count a score matrix will ever ask for and avoids
// the precision loss of a Stirling style approximation at small k
func Pmf(mean float64, k int) (float64, error) {
	if mean <= 0 || math.IsNaN(mean) || math.IsInf(mean, 0) {
		return 0, fmt.Errorf("goal expectancy must be a positive finite number, got %v: %w", mean, ErrInvalidArgument)
	}
	if k < 0 {
		return 0, fmt.Errorf("goal count must be non-negative, got %d: %w", k, ErrInvalidArgument)
	}

	if k <= maxExactFactorial {
		return math.Exp(-mean) * math.Pow(mean, float64(k)) / float64(factorial(k)), nil
	}

	// Log space for large k, same result to within floating tolerance
	logProb := float64(k)*math.Log(mean) - mean - logFactorial(k)
	return math.Exp(logProb), nil
}

// factorial computes k! exactly. Only valid for k in [0, 20]
func factorial(k int) uint64 {
	result := uint64(1)
	for i := 2; i <= k; i++ {
		result *= uint64(i)
	}
	return result
}

// logFactorial computes log(k!) by direct summation
func logFactorial(k int) float64 {
	result := 0.0
	for i := 2; i <= k; i++ {
		result += math.Log(float64(i))
	}
	return result
}
