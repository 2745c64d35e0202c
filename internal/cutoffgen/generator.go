package cutoffgen

import (
	"context"
	"crypto/rand"
	"math/big"
	"strconv"

	"github.com/josaa-tools/seatcast/internal/domain/model"
	"github.com/josaa-tools/seatcast/pkg/logger"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
)

// Constants for cutoff window shaping. Opening ranks are drawn around an
// institute tier base, and window widths grow with the base so later
// preferences get wider rank windows, which is how published cutoffs look.
const (
	tierJitterFraction  = 0.35
	minWindowWidth      = 40
	windowWidthFraction = 0.18
	roundDriftFraction  = 0.05
	categoryRelief      = 2.2
)

// institute describes one synthetic institute and its tier base rank.
type institute struct {
	name       string
	kind       string
	location   string
	baseRank   int
	branchSkew float64
}

var institutes = []institute{
	{"Indian Institute of Technology Bombay", "IIT", "Mumbai", 60, 1.0},
	{"Indian Institute of Technology Delhi", "IIT", "New Delhi", 100, 1.1},
	{"Indian Institute of Technology Madras", "IIT", "Chennai", 150, 1.2},
	{"Indian Institute of Technology Kanpur", "IIT", "Kanpur", 220, 1.3},
	{"Indian Institute of Technology Kharagpur", "IIT", "Kharagpur", 300, 1.4},
	{"Indian Institute of Technology Roorkee", "IIT", "Roorkee", 420, 1.5},
	{"Indian Institute of Technology Guwahati", "IIT", "Guwahati", 600, 1.6},
	{"National Institute of Technology Tiruchirappalli", "NIT", "Tiruchirappalli", 1200, 2.0},
	{"National Institute of Technology Karnataka", "NIT", "Surathkal", 1600, 2.1},
	{"National Institute of Technology Warangal", "NIT", "Warangal", 2000, 2.2},
	{"National Institute of Technology Calicut", "NIT", "Calicut", 3200, 2.4},
	{"National Institute of Technology Rourkela", "NIT", "Rourkela", 4500, 2.6},
	{"Indian Institute of Information Technology Allahabad", "IIIT", "Prayagraj", 3800, 2.5},
	{"Indian Institute of Information Technology Hyderabad", "IIIT", "Hyderabad", 900, 1.8},
	{"Birla Institute of Technology and Science Pilani", "GFTI", "Pilani", 2800, 2.3},
}

var branches = []struct {
	name string
	skew float64
}{
	{"computer science and engineering", 1.0},
	{"electrical engineering", 2.2},
	{"electronics and communication engineering", 1.8},
	{"mechanical engineering", 3.5},
	{"civil engineering", 5.0},
	{"chemical engineering", 4.2},
	{"mathematics and computing", 1.4},
	{"aerospace engineering", 3.0},
}

var categories = []struct {
	name   string
	relief float64
}{
	{"open", 1.0},
	{"obc-ncl", categoryRelief},
	{"ews", 1.8},
	{"sc", 5.5},
	{"st", 9.0},
}

// getRandomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

// generateRecords creates one cutoff record per institute, branch, category
// and round combination.
func generateRecords(ctx context.Context, config *Config, stats *Stats) ([]model.CutoffRecord, error) {
	logger.Get().Info(ctx, "generating cutoff records",
		logger.Int("institutes", len(institutes)),
		logger.Int("branches", len(branches)),
		logger.Int("categories", len(categories)),
		logger.Int("rounds", config.Rounds))

	records := make([]model.CutoffRecord, 0, len(institutes)*len(branches)*len(categories)*config.Rounds)

	for _, inst := range institutes {
		for _, branch := range branches {
			for _, category := range categories {
				for round := 1; round <= config.Rounds; round++ {
					select {
					case <-ctx.Done():
						return nil, ctx.Err()
					default:
					}
					records = append(records, generateSingleRecord(inst, branch.name, branch.skew, category.name, category.relief, round, config.MaxRank))
				}
			}
		}
	}

	stats.RecordsGenerated = len(records)
	stats.Institutes = len(institutes)
	stats.Branches = len(branches)
	stats.Categories = len(categories)
	stats.Rounds = config.Rounds

	logger.Get().Info(ctx, "generated cutoff records", logger.Int("count", len(records)))
	return records, nil
}

// generateSingleRecord shapes one opening/closing window. Later rounds drift
// the window down slightly; reserved categories scale it by their relief.
func generateSingleRecord(inst institute, branch string, branchSkew float64, category string, relief float64, round, maxRank int) model.CutoffRecord {
	base := float64(inst.baseRank) * inst.branchSkew * branchSkew * relief
	base *= 1 + roundDriftFraction*float64(round-1)

	jitter := 1 + (getRandomFloat()*2-1)*tierJitterFraction
	opening := base * jitter
	if opening < 1 {
		opening = 1
	}

	width := opening * windowWidthFraction
	if width < minWindowWidth {
		width = minWindowWidth
	}
	closing := opening + width + getRandomFloat()*width

	if maxRank > 0 && closing > float64(maxRank) {
		closing = float64(maxRank)
		if opening >= closing {
			opening = closing - minWindowWidth
			if opening < 1 {
				opening = 1
			}
		}
	}

	return model.CutoffRecord{
		Institute:   inst.name,
		ProgramName: branch,
		Category:    category,
		CollegeType: inst.kind,
		Location:    inst.location,
		OpeningRank: float64(int(opening)),
		ClosingRank: float64(int(closing)),
		Round:       strconv.Itoa(round),
	}
}
