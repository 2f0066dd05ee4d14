package podds

import "math"

// Market category names used to key margin targets
const (
	MarketMatchResults  = "Match Results"
	MarketAsianHandicap = "Asian Handicap"
	MarketOverUnder     = "Over/Under"
	MarketExactGoals    = "Exact Goals"
	MarketCorrectScore  = "Correct Score"
	MarketHalfTimeFull  = "HT/FT"
)

// MarginTargets maps a market category name to the desired bookmaker
// margin for that category, in percentage points
type MarginTargets map[string]float64

// MarginDifference calculates how far a quoted value sits from the
// target margin for its market category: target - quoted, rounded to
// two decimal places. Purely diagnostic; the quoted value is passed
// through as-is (raw decimal odds in the usual flow)
func MarginDifference(target, quoted float64) float64 {
	return math.Round((target-quoted)*100) / 100
}

// MarginDifferences builds the margin difference table for the five
// quoted selections: the match result selections are measured against
// the Match Results target, the totals selections against the
// Over/Under target
func MarginDifferences(targets MarginTargets, odds MarketOdds) map[string]float64 {
	matchTarget := targets[MarketMatchResults]
	totalsTarget := targets[MarketOverUnder]
	return map[string]float64{
		"Home Win":  MarginDifference(matchTarget, odds.HomeWin),
		"Draw":      MarginDifference(matchTarget, odds.Draw),
		"Away Win":  MarginDifference(matchTarget, odds.AwayWin),
		"Over 2.5":  MarginDifference(totalsTarget, odds.Over),
		"Under 2.5": MarginDifference(totalsTarget, odds.Under),
	}
}
