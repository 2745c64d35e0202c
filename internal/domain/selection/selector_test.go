package selection_test

import (
	"fmt"
	"testing"

	"github.com/josaa-tools/seatcast/internal/domain/model"
	selection "github.com/josaa-tools/seatcast/internal/domain/selection"
	. "github.com/smartystreets/goconvey/convey"
)

func record(institute string, opening, closing float64) model.CutoffRecord {
	return model.CutoffRecord{
		Institute:   institute,
		ProgramName: "computer science and engineering",
		Category:    "open",
		CollegeType: "NIT",
		Location:    "test",
		OpeningRank: opening,
		ClosingRank: closing,
		Round:       "1",
	}
}

func TestSelector_Tiers(t *testing.T) {
	Convey("Given a selector with default bounds and rank 10000", t, func() {
		sel := selection.NewSelector()
		rank := 10000

		Convey("When a record opens just above the rank and closes below it", func() {
			recs := []model.CutoffRecord{record("near-opening", 9900, 9950)}
			got := sel.Select(rank, recs)

			Convey("Then it is picked by the near-opening tier", func() {
				So(got, ShouldHaveLength, 1)
				So(got[0].Institute, ShouldEqual, "near-opening")
			})
		})

		Convey("When a record window contains the rank", func() {
			recs := []model.CutoffRecord{record("in-window", 9000, 15000)}
			got := sel.Select(rank, recs)

			Convey("Then it is picked by the in-window tier", func() {
				So(got, ShouldHaveLength, 1)
			})
		})

		Convey("When a record closes just past the rank but opens beyond it", func() {
			recs := []model.CutoffRecord{record("near-closing", 10050, 10100)}
			got := sel.Select(rank, recs)

			Convey("Then it is picked by the near-closing tier", func() {
				So(got, ShouldHaveLength, 1)
			})
		})

		Convey("When a record is far outside every window", func() {
			recs := []model.CutoffRecord{
				record("too-good", 100000, 200000),
				record("long-gone", 100, 200),
			}
			got := sel.Select(rank, recs)

			Convey("Then nothing is selected", func() {
				So(got, ShouldBeEmpty)
			})
		})

		Convey("When the record set is empty", func() {
			So(sel.Select(rank, nil), ShouldBeEmpty)
		})
	})
}

func TestSelector_Dedupe(t *testing.T) {
	Convey("Given a record that satisfies more than one tier", t, func() {
		sel := selection.NewSelector()
		rank := 10000
		// Opens within [rank-200, rank] and closes within [rank, rank+200]:
		// near-opening, in-window and near-closing all match.
		rec := record("triple", 9900, 10100)

		Convey("When selecting", func() {
			got := sel.Select(rank, []model.CutoffRecord{rec})

			Convey("Then the record appears exactly once", func() {
				So(got, ShouldHaveLength, 1)
			})
		})
	})
}

func TestSelector_Caps(t *testing.T) {
	Convey("Given more matching records than a tier can hold", t, func() {
		sel := selection.NewSelector()
		rank := 10000

		// 30 distinct in-window-only records: opening below rank, closing far
		// beyond the near-closing reach.
		recs := make([]model.CutoffRecord, 0, 30)
		for i := 0; i < 30; i++ {
			recs = append(recs, record(fmt.Sprintf("inst-%02d", i), 5000, 50000+float64(i)))
		}

		Convey("When selecting", func() {
			got := sel.Select(rank, recs)

			Convey("Then the in-window tier keeps its first 20", func() {
				So(got, ShouldHaveLength, 20)
				So(got[0].Institute, ShouldEqual, "inst-00")
				So(got[19].Institute, ShouldEqual, "inst-19")
			})
		})
	})

	Convey("Given the default configuration", t, func() {
		sel := selection.NewSelector()

		Convey("Then the pre-dedup shortlist bound is 50", func() {
			So(sel.MaxCandidates(), ShouldEqual, 50)
		})
	})

	Convey("Given custom tier caps", t, func() {
		sel := selection.NewSelector(
			selection.WithNearOpeningCap(2),
			selection.WithInWindowCap(3),
			selection.WithNearClosingCap(4),
			selection.WithWindowSpan(500),
		)

		Convey("Then the bound follows the caps", func() {
			So(sel.MaxCandidates(), ShouldEqual, 9)
		})
	})
}
