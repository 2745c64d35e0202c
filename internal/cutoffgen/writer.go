package cutoffgen

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/josaa-tools/seatcast/internal/domain/model"
	"github.com/josaa-tools/seatcast/pkg/logger"
)

// File permission constants.
const (
	outputFilePermission = 0600
)

// writeCSV writes the generated records in the source dataset schema so the
// output file can be served directly as the service's data_path.
func writeCSV(ctx context.Context, path string, records []model.CutoffRecord) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outputFilePermission)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	w := csv.NewWriter(file)
	header := []string{"Institute", "Academic Program Name", "Category", "College Type", "Location", "Opening Rank", "Closing Rank", "Round"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.Institute,
			rec.ProgramName,
			rec.Category,
			rec.CollegeType,
			rec.Location,
			strconv.FormatFloat(rec.OpeningRank, 'f', -1, 64),
			strconv.FormatFloat(rec.ClosingRank, 'f', -1, 64),
			rec.Round,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	logger.Get().Info(ctx, "wrote cutoff dataset", logger.String("path", path), logger.Int("records", len(records)))
	return nil
}
