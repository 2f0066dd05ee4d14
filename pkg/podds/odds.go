package podds

import "fmt"

// ImpliedProbability converts decimal odds to the probability the
// bookmaker's price implies: 1/odds. The result is not corrected for
// the overround; group competing outcomes with Normalize for that
func ImpliedProbability(odds float64) (float64, error) {
	if odds <= 0 {
		return 0, fmt.Errorf("decimal odds must be positive, got %v: %w", odds, ErrInvalidArgument)
	}
	return 1.0 / odds, nil
}

// Normalize rescales a set of mutually exclusive implied probabilities
// so they sum to exactly 1, removing the bookmaker's overround
// proportionally: pi' = pi / sum(p). Works for any outcome count, the
// 1X2 triple and the over/under pair being the usual callers
func Normalize(probs ...float64) ([]float64, error) {
	total := 0.0
	for _, p := range probs {
		total += p
	}
	if total <= 0 {
		return nil, fmt.Errorf("normalization sum must be positive, got %v: %w", total, ErrInvalidArgument)
	}

	normalized := make([]float64, len(probs))
	for i, p := range probs {
		normalized[i] = p / total
	}
	return normalized, nil
}

// NormalizeTriplet normalizes the three-way match result market
func NormalizeTriplet(home, draw, away float64) (float64, float64, float64, error) {
	n, err := Normalize(home, draw, away)
	if err != nil {
		return 0, 0, 0, err
	}
	return n[0], n[1], n[2], nil
}

// Overround returns the bookmaker's margin for a set of mutually
// exclusive decimal odds: the amount by which the implied probabilities
// exceed 1. A fair book returns 0
func Overround(odds ...float64) (float64, error) {
	total := 0.0
	for _, o := range odds {
		p, err := ImpliedProbability(o)
		if err != nil {
			return 0, err
		}
		total += p
	}
	return total - 1.0, nil
}
