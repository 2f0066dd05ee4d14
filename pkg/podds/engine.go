package podds

import "fmt"

// Output category names a request can select. An empty selection means
// every category
const (
	OutputMatchResult  = "Match Result"
	OutputOverUnder    = "Over/Under"
	OutputCorrectScore = "Correct Score"
	OutputBTTS         = "BTTS"
)

// MarketOdds holds the bookmaker's quoted decimal odds for the five
// selections the engine reconciles against
type MarketOdds struct {
	HomeWin float64 `json:"homeWin" yaml:"homeWin"`
	Draw    float64 `json:"draw" yaml:"draw"`
	AwayWin float64 `json:"awayWin" yaml:"awayWin"`
	Over    float64 `json:"over" yaml:"over"`
	Under   float64 `json:"under" yaml:"under"`
}

// OutcomeProbabilities is a three-way match result probability tuple
type OutcomeProbabilities struct {
	HomeWin float64 `json:"homeWin"`
	Draw    float64 `json:"draw"`
	AwayWin float64 `json:"awayWin"`
}

// OverUnderProbabilities is a two-way totals probability tuple
type OverUnderProbabilities struct {
	Over  float64 `json:"over"`
	Under float64 `json:"under"`
}

// PredictionRequest is the complete, explicit input for one prediction.
// Zero values fall back to the engine Config: MaxGoals 0 means the
// configured cap, a nil MarginTargets means the configured targets and
// an empty Outputs list means every output category
type PredictionRequest struct {
	HomeTeam      string        `json:"homeTeam" yaml:"homeTeam"`
	AwayTeam      string        `json:"awayTeam" yaml:"awayTeam"`
	HomeGoalsMean float64       `json:"homeGoalsMean" yaml:"homeGoalsMean"`
	AwayGoalsMean float64       `json:"awayGoalsMean" yaml:"awayGoalsMean"`
	MaxGoals      int           `json:"maxGoals,omitempty" yaml:"maxGoals"`
	Odds          MarketOdds    `json:"odds" yaml:"odds"`
	MarginTargets MarginTargets `json:"marginTargets,omitempty" yaml:"marginTargets"`
	Outputs       []string      `json:"outputs,omitempty" yaml:"outputs"`
}

// PredictionResult is everything one prediction produced. Categories
// that were not requested stay nil so a renderer cannot mistake them
// for computed values
type PredictionResult struct {
	HomeTeam string `json:"homeTeam"`
	AwayTeam string `json:"awayTeam"`

	// Poisson model outputs, over the truncated matrix mass
	Matrix        *ScoreMatrix            `json:"-"`
	ModelOutcomes OutcomeProbabilities    `json:"modelOutcomes"`
	ModelTotals   *OverUnderProbabilities `json:"modelTotals,omitempty"`

	// Market implied outputs, overround removed
	MarketOutcomes OutcomeProbabilities    `json:"marketOutcomes"`
	MarketTotals   *OverUnderProbabilities `json:"marketTotals,omitempty"`
	Overround      float64                 `json:"overround"`

	BothTeamsToScore  *float64           `json:"bothTeamsToScore,omitempty"`
	TopScorelines     []ScoreCell        `json:"topScorelines,omitempty"`
	MarginDifferences map[string]float64 `json:"marginDifferences"`
}

// Engine runs predictions against a fixed Config. It owns no mutable
// state, so a single Engine may serve concurrent callers without
// synchronization
type Engine struct {
	cfg Config
}

// NewEngine creates an engine with the given configuration
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Predict runs the full prediction for one match: builds the scoreline
// matrix, derives the model outcome probabilities, normalizes the
// quoted odds and produces the margin difference table. Either every
// requested category is computed or an error comes back with a nil
// result; there are no partial results
func (e *Engine) Predict(req PredictionRequest) (*PredictionResult, error) {
	maxGoals := req.MaxGoals
	if maxGoals == 0 {
		maxGoals = e.cfg.MaxGoals
	}
	targets := req.MarginTargets
	if targets == nil {
		targets = e.cfg.MarginTargets
	}

	matrix, err := BuildMatrix(req.HomeGoalsMean, req.AwayGoalsMean, maxGoals)
	if err != nil {
		return nil, err
	}

	homeWin, draw, awayWin := matrix.Outcomes()
	result := &PredictionResult{
		HomeTeam:      req.HomeTeam,
		AwayTeam:      req.AwayTeam,
		Matrix:        matrix,
		ModelOutcomes: OutcomeProbabilities{HomeWin: homeWin, Draw: draw, AwayWin: awayWin},
	}

	// The match result market and the margin table are always produced
	pHome, err := ImpliedProbability(req.Odds.HomeWin)
	if err != nil {
		return nil, fmt.Errorf("home win odds: %w", err)
	}
	pDraw, err := ImpliedProbability(req.Odds.Draw)
	if err != nil {
		return nil, fmt.Errorf("draw odds: %w", err)
	}
	pAway, err := ImpliedProbability(req.Odds.AwayWin)
	if err != nil {
		return nil, fmt.Errorf("away win odds: %w", err)
	}
	nHome, nDraw, nAway, err := NormalizeTriplet(pHome, pDraw, pAway)
	if err != nil {
		return nil, err
	}
	result.MarketOutcomes = OutcomeProbabilities{HomeWin: nHome, Draw: nDraw, AwayWin: nAway}
	if result.Overround, err = Overround(req.Odds.HomeWin, req.Odds.Draw, req.Odds.AwayWin); err != nil {
		return nil, err
	}
	result.MarginDifferences = MarginDifferences(targets, req.Odds)

	if wantsOutput(req.Outputs, OutputOverUnder) {
		over, under := matrix.OverUnder(e.cfg.OverUnderLine)
		result.ModelTotals = &OverUnderProbabilities{Over: over, Under: under}

		pOver, err := ImpliedProbability(req.Odds.Over)
		if err != nil {
			return nil, fmt.Errorf("over odds: %w", err)
		}
		pUnder, err := ImpliedProbability(req.Odds.Under)
		if err != nil {
			return nil, fmt.Errorf("under odds: %w", err)
		}
		normalized, err := Normalize(pOver, pUnder)
		if err != nil {
			return nil, err
		}
		result.MarketTotals = &OverUnderProbabilities{Over: normalized[0], Under: normalized[1]}
	}

	if wantsOutput(req.Outputs, OutputBTTS) {
		btts := matrix.BothTeamsToScore()
		result.BothTeamsToScore = &btts
	}

	if wantsOutput(req.Outputs, OutputCorrectScore) {
		top, err := TopScores(matrix, e.cfg.TopScorelines)
		if err != nil {
			return nil, err
		}
		result.TopScorelines = top
	}

	return result, nil
}

// wantsOutput reports whether a category was selected. An empty
// selection selects everything
func wantsOutput(outputs []string, category string) bool {
	if len(outputs) == 0 {
		return true
	}
	for _, o := range outputs {
		if o == category {
			return true
		}
	}
	return false
}
