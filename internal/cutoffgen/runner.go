package cutoffgen

import (
	"context"
	"fmt"
	"time"

	"github.com/josaa-tools/seatcast/pkg/logger"
)

// Run generates a synthetic cutoff dataset and writes it to the configured
// output file.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{StartTime: time.Now()}

	records, err := generateRecords(ctx, config, stats)
	if err != nil {
		return fmt.Errorf("generate records: %w", err)
	}

	if err := writeCSV(ctx, config.OutputFile, records); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	logger.Get().Info(ctx, "cutoff generation complete",
		logger.Int("records", stats.RecordsGenerated),
		logger.Int("institutes", stats.Institutes),
		logger.Int("branches", stats.Branches),
		logger.Int("categories", stats.Categories),
		logger.Int("rounds", stats.Rounds),
		logger.Duration("duration", stats.Duration))
	return nil
}
