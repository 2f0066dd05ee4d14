package podds

import (
	"fmt"
	"sort"
)

// TopScores returns the k most likely scorelines of a matrix, highest
// probability first. Ties keep the canonical enumeration order (home
// goals ascending, then away goals ascending), so the ranking is fully
// deterministic for identical inputs. A k larger than the number of
// cells is capped silently
func TopScores(m *ScoreMatrix, k int) ([]ScoreCell, error) {
	if k < 0 {
		return nil, fmt.Errorf("k must be non-negative, got %d: %w", k, ErrInvalidArgument)
	}

	cells := m.Cells()
	// Stable sort preserves the canonical order between equal probabilities
	sort.SliceStable(cells, func(a, b int) bool {
		return cells[a].Probability > cells[b].Probability
	})

	if k > len(cells) {
		k = len(cells)
	}
	return cells[:k], nil
}
