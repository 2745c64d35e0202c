package probability_test

import (
	"math"
	"testing"

	probability "github.com/josaa-tools/seatcast/internal/domain/probability"
	. "github.com/smartystreets/goconvey/convey"
)

func TestEstimate_WindowBoundaries(t *testing.T) {
	Convey("Given a 49000-52000 cutoff window", t, func() {
		opening, closing := 49000.0, 52000.0

		Convey("When the rank sits mid-window at 50000", func() {
			got := probability.Estimate(50000, opening, closing)

			Convey("Then the blend matches the manual computation", func() {
				// position = 1000/3000, piecewise = 80 - (1/3-0.2)/0.3*20 = 71.11
				// logistic = 100/(1+exp((50000-50500)/300)) = 84.11
				// blended = 0.7*84.11 + 0.3*71.11 = 80.21
				So(got, ShouldAlmostEqual, 80.21, 0.01)
			})
		})

		Convey("When the rank equals the opening rank", func() {
			got := probability.Estimate(opening, opening, closing)

			Convey("Then the piecewise leg contributes its 95.0 anchor", func() {
				// logistic = 100/(1+exp(-5)) = 99.33
				// blended = 0.7*99.33 + 0.3*95 = 98.03
				So(got, ShouldAlmostEqual, 98.03, 0.01)
			})
		})

		Convey("When the rank equals the closing rank", func() {
			got := probability.Estimate(closing, opening, closing)

			Convey("Then the piecewise leg contributes its 15.0 anchor", func() {
				// logistic = 100/(1+exp(5)) = 0.67
				// blended = 0.7*0.67 + 0.3*15 = 4.97
				So(got, ShouldAlmostEqual, 4.97, 0.01)
			})
		})
	})
}

func TestEstimate_OutsideWindow(t *testing.T) {
	Convey("Given a 1000-2000 cutoff window", t, func() {
		opening, closing := 1000.0, 2000.0

		Convey("When the rank is far better than the opening rank", func() {
			got := probability.Estimate(100, opening, closing)

			Convey("Then the estimate is floored at 95", func() {
				So(got, ShouldBeGreaterThanOrEqualTo, 95.0)
				So(got, ShouldBeLessThanOrEqualTo, 100.0)
			})
		})

		Convey("When the rank is slightly better than the opening rank", func() {
			got := probability.Estimate(990, opening, closing)

			Convey("Then the estimate stays in the near-certain band", func() {
				So(got, ShouldBeGreaterThan, 95.0)
				So(got, ShouldBeLessThan, 100.0)
			})
		})

		Convey("When the rank is just past the closing rank", func() {
			got := probability.Estimate(closing+5, opening, closing)

			Convey("Then the estimate is capped at the grace value", func() {
				So(got, ShouldBeGreaterThan, 0.0)
				So(got, ShouldBeLessThanOrEqualTo, 5.0)
			})
		})

		Convey("When the rank is exactly 100 past the closing rank", func() {
			got := probability.Estimate(closing+100, opening, closing)

			Convey("Then a nonzero sliver remains", func() {
				So(got, ShouldBeGreaterThan, 0.0)
				So(got, ShouldBeLessThanOrEqualTo, 5.0)
			})
		})

		Convey("When the rank is more than 100 past the closing rank", func() {
			got := probability.Estimate(closing+101, opening, closing)

			Convey("Then the estimate collapses to zero", func() {
				So(got, ShouldEqual, 0.0)
			})
		})
	})
}

func TestEstimate_DegenerateWindow(t *testing.T) {
	Convey("Given a collapsed window where opening equals closing", t, func() {
		Convey("When the rank is at or better than the threshold", func() {
			So(probability.Estimate(999, 1000, 1000), ShouldEqual, 100.0)
			So(probability.Estimate(1000, 1000, 1000), ShouldEqual, 100.0)
		})

		Convey("When the rank is past the threshold", func() {
			So(probability.Estimate(1001, 1000, 1000), ShouldEqual, 0.0)
			So(probability.Estimate(5000, 1000, 1000), ShouldEqual, 0.0)
		})
	})
}

func TestEstimate_Monotonicity(t *testing.T) {
	Convey("Given a fixed 1000-2000 window", t, func() {
		opening, closing := 1000.0, 2000.0

		Convey("When sweeping ranks through the window interior", func() {
			prev := probability.Estimate(opening+1, opening, closing)
			nonIncreasing := true
			for rank := opening + 2; rank < closing; rank++ {
				cur := probability.Estimate(rank, opening, closing)
				if cur > prev {
					nonIncreasing = false
					break
				}
				prev = cur
			}

			Convey("Then the estimate never increases", func() {
				So(nonIncreasing, ShouldBeTrue)
			})
		})
	})
}

func TestEstimate_RangeInvariant(t *testing.T) {
	Convey("Given a spread of windows and ranks", t, func() {
		windows := [][2]float64{
			{1, 10}, {100, 100}, {1000, 2000}, {50, 5000000}, {9999999, 9999999},
		}
		ranks := []float64{1, 10, 500, 49999, 100000, 9999999}

		Convey("Then every estimate lands in [0, 100]", func() {
			for _, w := range windows {
				for _, r := range ranks {
					got := probability.Estimate(r, w[0], w[1])
					So(got, ShouldBeGreaterThanOrEqualTo, 0.0)
					So(got, ShouldBeLessThanOrEqualTo, 100.0)
				}
			}
		})
	})
}

func TestEstimate_DegenerateInput(t *testing.T) {
	Convey("Given numerically degenerate inputs", t, func() {
		Convey("Then the estimate is 0.0 rather than a panic", func() {
			So(probability.Estimate(math.NaN(), 100, 200), ShouldEqual, 0.0)
			So(probability.Estimate(100, math.NaN(), 200), ShouldEqual, 0.0)
			So(probability.Estimate(100, 100, math.NaN()), ShouldEqual, 0.0)
			So(probability.Estimate(math.Inf(1), 100, 200), ShouldEqual, 0.0)
			So(probability.Estimate(100, math.Inf(-1), 200), ShouldEqual, 0.0)
		})
	})
}

func TestEstimate_Deterministic(t *testing.T) {
	Convey("Given identical inputs", t, func() {
		a := probability.Estimate(50000, 49000, 52000)
		b := probability.Estimate(50000, 49000, 52000)

		Convey("Then repeated calls agree exactly", func() {
			So(a, ShouldEqual, b)
		})
	})
}
