package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/josaa-tools/seatcast/internal/cutoffgen"
)

// Default configuration constants.
const (
	defaultRounds     = 6
	defaultMaxRank    = 250000
	defaultGenTimeout = 5 * time.Minute
)

func main() {
	var (
		outputFile = flag.String("output", "data/cutoffs.csv", "Output CSV file")
		rounds     = flag.Int("rounds", defaultRounds, "Number of counselling rounds to generate")
		maxRank    = flag.Int("max-rank", defaultMaxRank, "Upper bound for generated closing ranks")
		logFile    = flag.String("log", "", "Log file for generator output (default: gen_cutoffs_TIMESTAMP.log)")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging")
		help       = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		cutoffgen.ShowHelp()
		return
	}

	if err := cutoffgen.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultGenTimeout)
	defer cancel()

	config := &cutoffgen.Config{
		OutputFile: *outputFile,
		Rounds:     *rounds,
		MaxRank:    *maxRank,
		LogFile:    *logFile,
		Verbose:    *verbose,
	}

	if err := cutoffgen.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Generation failed: " + err.Error() + "\n")
		return
	}
}
