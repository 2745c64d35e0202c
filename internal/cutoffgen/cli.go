package cutoffgen

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/josaa-tools/seatcast/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "gen_cutoffs_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the cutoff generator.
func ShowHelp() {
	os.Stdout.WriteString(`Seatcast Cutoff Generator
=========================

Generates a synthetic institute/program cutoff dataset in the CSV schema the
predictor service loads at startup.

Usage:
  go run cmd/gen-cutoffs/main.go [options]

Options:
  -output string
        Output CSV file (default "data/cutoffs.csv")
  -rounds int
        Number of counselling rounds to generate (default 6)
  -max-rank int
        Upper bound for generated closing ranks (default 250000)
  -log string
        Log file for generator output (default: gen_cutoffs_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Generate the default dataset
  go run cmd/gen-cutoffs/main.go

  # Generate two rounds with a tighter rank ceiling
  go run cmd/gen-cutoffs/main.go -rounds 2 -max-rank 50000 -output /tmp/cutoffs.csv
`)
}
