package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/richard-senior/podds/internal/logger"
	"github.com/richard-senior/podds/pkg/podds"
)

func main() {
	// Parse command line flags
	debug := flag.Bool("debug", false, "Enable debug logging")
	inputFile := flag.String("input", "", "Request JSON file path (if not provided, stdin will be used)")
	configFile := flag.String("config", "", "Optional YAML config file overriding engine defaults")
	flag.Parse()

	// Configure logging
	logger.SetShowDateTime(true)
	if *debug {
		logger.SetLevel(logger.DEBUG)
		logger.Debug("Debug logging enabled")
	}

	cfg := podds.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = podds.LoadConfig(*configFile)
		if err != nil {
			logger.Fatal("Failed to load config", err)
		}
	}

	// Determine input source
	var input []byte
	var err error
	if *inputFile != "" {
		input, err = os.ReadFile(*inputFile)
		if err != nil {
			logger.Fatal("Failed to read input file", err)
		}
	} else {
		input, err = io.ReadAll(os.Stdin)
		if err != nil {
			logger.Fatal("Failed to read from stdin", err)
		}
	}

	var request podds.PredictionRequest
	if err := json.Unmarshal(input, &request); err != nil {
		logger.Fatal("Failed to parse prediction request", err)
	}
	if err := checkFinite(request); err != nil {
		logger.Fatal("Malformed prediction request", err)
	}

	engine := podds.NewEngine(cfg)
	result, err := engine.Predict(request)
	if err != nil {
		// Render nothing on failure, the engine guarantees no partial results
		logger.Fatal("Prediction failed", err)
	}

	render(os.Stdout, result)
}

// checkFinite rejects NaN and infinite numerics before they reach the
// engine. The engine performs its own domain validation; this only
// guards against garbage that survives JSON decoding
func checkFinite(req podds.PredictionRequest) error {
	values := map[string]float64{
		"homeGoalsMean": req.HomeGoalsMean,
		"awayGoalsMean": req.AwayGoalsMean,
		"odds.homeWin":  req.Odds.HomeWin,
		"odds.draw":     req.Odds.Draw,
		"odds.awayWin":  req.Odds.AwayWin,
		"odds.over":     req.Odds.Over,
		"odds.under":    req.Odds.Under,
	}
	for name, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s is not a finite number", name)
		}
	}
	return nil
}

func render(w io.Writer, r *podds.PredictionResult) {
	title := "Prediction"
	if r.HomeTeam != "" || r.AwayTeam != "" {
		title = fmt.Sprintf("%s v %s", r.HomeTeam, r.AwayTeam)
	}
	fmt.Fprintf(w, "%s\n%s\n\n", title, strings.Repeat("=", len(title)))

	fmt.Fprintln(w, "Match result probabilities")
	fmt.Fprintf(w, "  %-10s %8s %8s\n", "", "model", "market")
	fmt.Fprintf(w, "  %-10s %7.2f%% %7.2f%%\n", "Home Win", r.ModelOutcomes.HomeWin*100, r.MarketOutcomes.HomeWin*100)
	fmt.Fprintf(w, "  %-10s %7.2f%% %7.2f%%\n", "Draw", r.ModelOutcomes.Draw*100, r.MarketOutcomes.Draw*100)
	fmt.Fprintf(w, "  %-10s %7.2f%% %7.2f%%\n", "Away Win", r.ModelOutcomes.AwayWin*100, r.MarketOutcomes.AwayWin*100)
	fmt.Fprintf(w, "  Bookmaker overround: %.2f%%\n\n", r.Overround*100)

	if r.ModelTotals != nil && r.MarketTotals != nil {
		fmt.Fprintln(w, "Total goals")
		fmt.Fprintf(w, "  %-10s %7.2f%% %7.2f%%\n", "Over", r.ModelTotals.Over*100, r.MarketTotals.Over*100)
		fmt.Fprintf(w, "  %-10s %7.2f%% %7.2f%%\n\n", "Under", r.ModelTotals.Under*100, r.MarketTotals.Under*100)
	}

	if r.BothTeamsToScore != nil {
		fmt.Fprintf(w, "Both teams to score: %.2f%%\n\n", *r.BothTeamsToScore*100)
	}

	if len(r.TopScorelines) > 0 {
		fmt.Fprintln(w, "Most likely scorelines")
		for _, cell := range r.TopScorelines {
			fmt.Fprintf(w, "  %d-%d %7.2f%%\n", cell.HomeGoals, cell.AwayGoals, cell.Probability*100)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "Margin differences")
	for _, name := range []string{"Home Win", "Draw", "Away Win", "Over 2.5", "Under 2.5"} {
		fmt.Fprintf(w, "  %-10s %7.2f\n", name, r.MarginDifferences[name])
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Scoreline matrix (home goals down, away goals across, mass %.4f)\n", r.Matrix.TotalProbability())
	fmt.Fprintf(w, "     ")
	for j := 0; j <= r.Matrix.MaxGoals; j++ {
		fmt.Fprintf(w, "%8d", j)
	}
	fmt.Fprintln(w)
	for i := 0; i <= r.Matrix.MaxGoals; i++ {
		fmt.Fprintf(w, "  %2d ", i)
		for j := 0; j <= r.Matrix.MaxGoals; j++ {
			fmt.Fprintf(w, "%8.4f", r.Matrix.Matrix[i][j])
		}
		fmt.Fprintln(w)
	}
}
