package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/josaa-tools/seatcast/internal/domain/model"
	"github.com/josaa-tools/seatcast/pkg/logger"
	"github.com/josaa-tools/seatcast/pkg/metrics"
)

// Default store configuration constants.
const (
	// defaultFallbackRank substitutes malformed rank cells so a broken row
	// sinks to the bottom instead of poisoning a request.
	defaultFallbackRank = 9_999_999

	// defaultStaleCheckInterval throttles mtime checks on read paths.
	defaultStaleCheckInterval = 30 * time.Second
)

// Source CSV column headers, matched case-insensitively.
const (
	colInstitute   = "institute"
	colProgram     = "academic program name"
	colCategory    = "category"
	colCollegeType = "college type"
	colLocation    = "location"
	colOpening     = "opening rank"
	colClosing     = "closing rank"
	colRound       = "round"
)

// snapshot is one immutable load of the dataset. Reload builds a new one and
// swaps the pointer; in-flight readers keep the snapshot they started with.
type snapshot struct {
	records  []model.CutoffRecord
	loadedAt time.Time
	modTime  time.Time
}

// CSVStore implements Store over a local cutoff CSV file.
type CSVStore struct {
	path               string
	fallbackRank       float64
	staleCheckInterval time.Duration
	log                logger.Logger

	snap      atomic.Pointer[snapshot]
	lastCheck atomic.Int64 // unix nanos of the last staleness probe

	// reloadMu serializes loads; readers never take it.
	reloadMu sync.Mutex
}

// Open creates a CSVStore and performs the initial load.
func Open(ctx context.Context, path string, opts ...Option) (*CSVStore, error) {
	s := &CSVStore{
		path:               path,
		fallbackRank:       defaultFallbackRank,
		staleCheckInterval: defaultStaleCheckInterval,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.log == nil {
		s.log = logger.Get().Named("cutoffstore")
	}

	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Records returns the current snapshot rows.
func (s *CSVStore) Records(ctx context.Context) ([]model.CutoffRecord, error) {
	s.maybeRefresh(ctx)

	snap := s.snap.Load()
	if snap == nil || len(snap.records) == 0 {
		return nil, ErrDataUnavailable
	}
	return snap.records, nil
}

// Query returns the snapshot rows matching f, in snapshot order.
func (s *CSVStore) Query(ctx context.Context, f Filter) ([]model.CutoffRecord, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}

	category := strings.ToLower(strings.TrimSpace(f.Category))
	collegeType := strings.ToUpper(strings.TrimSpace(f.CollegeType))
	branch := strings.ToLower(strings.TrimSpace(f.Branch))
	round := strings.TrimSpace(f.Round)

	out := make([]model.CutoffRecord, 0, len(records))
	for _, rec := range records {
		if category != "" && rec.Category != category {
			continue
		}
		if collegeType != "" && rec.CollegeType != collegeType {
			continue
		}
		if branch != "" && rec.ProgramName != branch {
			continue
		}
		if round != "" && rec.Round != round {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

// Facets returns the sorted distinct values of the filterable columns.
func (s *CSVStore) Facets(ctx context.Context) (Facets, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return Facets{}, err
	}

	categories := map[string]struct{}{}
	collegeTypes := map[string]struct{}{}
	branches := map[string]struct{}{}
	rounds := map[string]struct{}{}
	for _, rec := range records {
		categories[rec.Category] = struct{}{}
		collegeTypes[rec.CollegeType] = struct{}{}
		branches[rec.ProgramName] = struct{}{}
		rounds[rec.Round] = struct{}{}
	}

	return Facets{
		Categories:   sortedKeys(categories),
		CollegeTypes: sortedKeys(collegeTypes),
		Branches:     sortedKeys(branches),
		Rounds:       sortedKeys(rounds),
	}, nil
}

// Count returns the number of rows in the current snapshot.
func (s *CSVStore) Count(ctx context.Context) int {
	if snap := s.snap.Load(); snap != nil {
		return len(snap.records)
	}
	return 0
}

// Reload reads the backing file and swaps in a fresh snapshot. On failure the
// previous snapshot, if any, stays in place.
func (s *CSVStore) Reload(ctx context.Context) error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	info, err := os.Stat(s.path)
	if err != nil {
		metrics.RecordDatasetLoadError()
		return fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	f, err := os.Open(s.path)
	if err != nil {
		metrics.RecordDatasetLoadError()
		return fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	defer f.Close()

	records, skipped, err := s.parse(f)
	if err != nil {
		metrics.RecordDatasetLoadError()
		return err
	}

	now := time.Now()
	s.snap.Store(&snapshot{records: records, loadedAt: now, modTime: info.ModTime()})

	metrics.UpdateDatasetRecords(len(records))
	metrics.RecordDatasetReload(now.Unix())
	s.log.Info(ctx, "cutoff snapshot loaded",
		logger.String("path", s.path),
		logger.Int("records", len(records)),
		logger.Int("skippedRows", skipped),
	)
	return nil
}

// ExportCSV writes the current snapshot in the source schema.
func (s *CSVStore) ExportCSV(ctx context.Context, w io.Writer) error {
	records, err := s.Records(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := []string{
		"Institute", "Academic Program Name", "Category", "College Type",
		"Location", "Opening Rank", "Closing Rank", "Round",
	}
	if err := cw.Write(header); err != nil {
		return err
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
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// maybeRefresh reloads the snapshot when the backing file changed on disk.
// Probes are throttled to one per staleCheckInterval; a failed probe or
// reload keeps the current snapshot.
func (s *CSVStore) maybeRefresh(ctx context.Context) {
	if s.staleCheckInterval <= 0 {
		return
	}

	now := time.Now().UnixNano()
	last := s.lastCheck.Load()
	if now-last < int64(s.staleCheckInterval) {
		return
	}
	if !s.lastCheck.CompareAndSwap(last, now) {
		return // another reader is probing
	}

	snap := s.snap.Load()
	info, err := os.Stat(s.path)
	if err != nil {
		s.log.Warn(ctx, "staleness probe failed", logger.Error(err))
		return
	}
	if snap != nil && !info.ModTime().After(snap.modTime) {
		return
	}
	if err := s.Reload(ctx); err != nil {
		s.log.Warn(ctx, "snapshot refresh failed; keeping current snapshot", logger.Error(err))
	}
}

// parse reads and normalizes all rows. Rows with too few fields are skipped;
// malformed rank cells are substituted with the fallback rank.
func (s *CSVStore) parse(r io.Reader) ([]model.CutoffRecord, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: missing header: %v", ErrMalformedDataset, err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	required := []string{colInstitute, colProgram, colCategory, colCollegeType, colOpening, colClosing, colRound}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, 0, fmt.Errorf("%w: missing column %q", ErrMalformedDataset, name)
		}
	}
	locationIdx, hasLocation := idx[colLocation]

	var records []model.CutoffRecord
	skipped := 0
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		if len(row) < len(header) {
			skipped++
			continue
		}

		rec := model.CutoffRecord{
			Institute:   strings.TrimSpace(row[idx[colInstitute]]),
			ProgramName: strings.ToLower(strings.TrimSpace(row[idx[colProgram]])),
			Category:    strings.ToLower(strings.TrimSpace(row[idx[colCategory]])),
			CollegeType: strings.ToUpper(strings.TrimSpace(row[idx[colCollegeType]])),
			OpeningRank: s.parseRank(row[idx[colOpening]]),
			ClosingRank: s.parseRank(row[idx[colClosing]]),
			Round:       strings.TrimSpace(row[idx[colRound]]),
		}
		if hasLocation {
			rec.Location = strings.TrimSpace(row[locationIdx])
		}
		records = append(records, rec)
	}

	return records, skipped, nil
}

// parseRank coerces a rank cell to a number, falling back for cells like "-"
// or suffixed preparatory ranks the source data occasionally carries.
func (s *CSVStore) parseRank(cell string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return s.fallbackRank
	}
	return v
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
