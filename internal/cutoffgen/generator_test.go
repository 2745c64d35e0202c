package cutoffgen

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/josaa-tools/seatcast/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	_ = logger.Init()
}

func TestGenerateRecords(t *testing.T) {
	Convey("Given a generator configuration", t, func() {
		ctx := context.Background()
		config := &Config{Rounds: 2, MaxRank: 250000}
		stats := &Stats{}

		Convey("When generating records", func() {
			records, err := generateRecords(ctx, config, stats)

			Convey("Then every combination is covered exactly once", func() {
				So(err, ShouldBeNil)
				So(len(records), ShouldEqual, len(institutes)*len(branches)*len(categories)*config.Rounds)
				So(stats.RecordsGenerated, ShouldEqual, len(records))
			})

			Convey("And every window is well formed", func() {
				So(err, ShouldBeNil)
				for _, rec := range records {
					So(rec.OpeningRank, ShouldBeGreaterThanOrEqualTo, 1)
					So(rec.ClosingRank, ShouldBeGreaterThan, rec.OpeningRank)
					So(rec.ClosingRank, ShouldBeLessThanOrEqualTo, float64(config.MaxRank))
					So(rec.Institute, ShouldNotBeEmpty)
					So(rec.Round, ShouldBeIn, []string{"1", "2"})
				}
			})
		})

		Convey("When the context is already cancelled", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			_, err := generateRecords(cancelled, config, stats)

			Convey("Then generation stops with the context error", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestRunWritesDataset(t *testing.T) {
	Convey("Given a full generator run", t, func() {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "cutoffs.csv")
		config := &Config{OutputFile: path, Rounds: 1, MaxRank: 250000}

		Convey("When running the generator", func() {
			err := Run(ctx, config)

			Convey("Then the dataset is written in the source schema", func() {
				So(err, ShouldBeNil)

				raw, readErr := os.ReadFile(path)
				So(readErr, ShouldBeNil)

				lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
				So(lines[0], ShouldEqual, "Institute,Academic Program Name,Category,College Type,Location,Opening Rank,Closing Rank,Round")
				So(len(lines), ShouldEqual, 1+len(institutes)*len(branches)*len(categories))
			})
		})
	})
}
