package podds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest() PredictionRequest {
	return PredictionRequest{
		HomeTeam:      "Team A",
		AwayTeam:      "Team B",
		HomeGoalsMean: 1.2,
		AwayGoalsMean: 1.1,
		Odds:          MarketOdds{HomeWin: 2.50, Draw: 3.20, AwayWin: 3.10, Over: 2.40, Under: 1.55},
	}
}

func TestPredictFullPipeline(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	result, err := engine.Predict(testRequest())
	require.NoError(t, err)

	t.Logf("Model probabilities: Home=%.1f%% Draw=%.1f%% Away=%.1f%%",
		result.ModelOutcomes.HomeWin*100,
		result.ModelOutcomes.Draw*100,
		result.ModelOutcomes.AwayWin*100)

	// Config default cap of 5 means a 6x6 matrix
	assert.Equal(t, 5, result.Matrix.MaxGoals)
	assert.InDelta(t, 0.100247, result.Matrix.Matrix[0][0], 1e-6)

	// Model aggregates cover the truncated mass exactly
	model := result.ModelOutcomes
	assert.InDelta(t, result.Matrix.TotalProbability(), model.HomeWin+model.Draw+model.AwayWin, 1e-12)

	// Market probabilities are overround free
	market := result.MarketOutcomes
	assert.InDelta(t, 0.386445, market.HomeWin, 1e-6)
	assert.InDelta(t, 0.301923, market.Draw, 1e-6)
	assert.InDelta(t, 0.311632, market.AwayWin, 1e-6)
	assert.InDelta(t, 1.0, market.HomeWin+market.Draw+market.AwayWin, 1e-9)
	assert.InDelta(t, 0.035081, result.Overround, 1e-6)

	// Totals market, requested implicitly by the empty selection
	require.NotNil(t, result.MarketTotals)
	assert.InDelta(t, 1.0, result.MarketTotals.Over+result.MarketTotals.Under, 1e-9)
	require.NotNil(t, result.ModelTotals)
	assert.InDelta(t, result.Matrix.TotalProbability(), result.ModelTotals.Over+result.ModelTotals.Under, 1e-12)

	require.NotNil(t, result.BothTeamsToScore)
	assert.Greater(t, *result.BothTeamsToScore, 0.0)

	require.Len(t, result.TopScorelines, 5)

	assert.Equal(t, 2.45, result.MarginDifferences["Home Win"])
	assert.Equal(t, 3.78, result.MarginDifferences["Over 2.5"])
}

func TestPredictSelectedOutputsOnly(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	req := testRequest()
	req.Outputs = []string{OutputMatchResult}

	result, err := engine.Predict(req)
	require.NoError(t, err)

	// Unrequested categories stay nil so nothing renders them
	assert.Nil(t, result.ModelTotals)
	assert.Nil(t, result.MarketTotals)
	assert.Nil(t, result.BothTeamsToScore)
	assert.Nil(t, result.TopScorelines)

	// The match result market and margins always come back
	assert.InDelta(t, 1.0,
		result.MarketOutcomes.HomeWin+result.MarketOutcomes.Draw+result.MarketOutcomes.AwayWin, 1e-9)
	assert.NotEmpty(t, result.MarginDifferences)
}

func TestPredictUnselectedOddsNotValidated(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	// Totals odds are garbage but the totals market was not requested,
	// so the prediction still succeeds
	req := testRequest()
	req.Odds.Over = 0
	req.Odds.Under = 0
	req.Outputs = []string{OutputMatchResult, OutputCorrectScore}

	result, err := engine.Predict(req)
	require.NoError(t, err)
	assert.Nil(t, result.MarketTotals)
	assert.Len(t, result.TopScorelines, 5)
}

func TestPredictRequestOverrides(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	req := testRequest()
	req.MaxGoals = 8
	req.MarginTargets = MarginTargets{MarketMatchResults: 10.0, MarketOverUnder: 6.18}

	result, err := engine.Predict(req)
	require.NoError(t, err)
	assert.Equal(t, 8, result.Matrix.MaxGoals)
	assert.Equal(t, 7.50, result.MarginDifferences["Home Win"])
}

func TestPredictFailsAtomically(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	req := testRequest()
	req.HomeGoalsMean = -1.0
	result, err := engine.Predict(req)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Nil(t, result)

	req = testRequest()
	req.Odds.Draw = 0
	result, err = engine.Predict(req)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Nil(t, result)
}

func TestPredictIdempotent(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	first, err := engine.Predict(testRequest())
	require.NoError(t, err)
	second, err := engine.Predict(testRequest())
	require.NoError(t, err)

	// No hidden state: identical inputs give identical outputs
	assert.Equal(t, first.ModelOutcomes, second.ModelOutcomes)
	assert.Equal(t, first.MarketOutcomes, second.MarketOutcomes)
	assert.Equal(t, first.Matrix.Matrix, second.Matrix.Matrix)
	assert.Equal(t, first.TopScorelines, second.TopScorelines)
	assert.Equal(t, first.MarginDifferences, second.MarginDifferences)
}
