// Package probability computes heuristic admission probabilities from a
// candidate rank and a historical opening/closing rank window.
//
// The estimate blends two independent estimators: a logistic curve centered
// on the window midpoint, and a piecewise curve encoding how sharply chances
// degrade through and past the window. The blend weights depend on where the
// rank sits relative to the window.
package probability

import "math"

// Logistic estimator parameters.
const (
	spreadDivisor = 10.0 // window width to sigmoid spread
	minSpread     = 1.0  // floor keeps narrow windows from degenerating
)

// Piecewise estimator anchors.
const (
	bigImprovementCutoff = 0.5
	bigImprovementProb   = 99.0
	improvementBaseProb  = 96.0
	improvementSlope     = 6.0
	atOpeningProb        = 95.0
	atClosingProb        = 15.0
	graceBandProb        = 5.0
	graceBandWidth       = 10.0 // ranks past closing that still get a token chance
)

// Blend weights and limits.
const (
	belowWindowLogisticWeight  = 0.4
	belowWindowPiecewiseWeight = 0.6
	inWindowLogisticWeight     = 0.7
	inWindowPiecewiseWeight    = 0.3
	belowWindowFloor           = 95.0
	pastClosingCap             = 5.0
	pastClosingCutoff          = 100.0 // ranks beyond closing+this score zero
	maxProbability             = 100.0
)

// Estimate returns the admission probability in [0,100] for rank against the
// [openingRank, closingRank] window, rounded to two decimals. It is total:
// degenerate numeric input (NaN, infinities) yields 0.0, never a panic.
func Estimate(rank, openingRank, closingRank float64) float64 {
	if !finite(rank) || !finite(openingRank) || !finite(closingRank) {
		return 0.0
	}

	// A collapsed window is a hard threshold, not a curve.
	if openingRank == closingRank {
		if rank <= openingRank {
			return maxProbability
		}
		return 0.0
	}

	logistic := logisticEstimate(rank, openingRank, closingRank)
	piecewise := piecewiseEstimate(rank, openingRank, closingRank)

	var blended float64
	switch {
	case rank < openingRank:
		improvement := (openingRank - rank) / openingRank
		if improvement > bigImprovementCutoff {
			blended = math.Max(logistic, belowWindowFloor)
		} else {
			blended = logistic*belowWindowLogisticWeight + piecewise*belowWindowPiecewiseWeight
		}
	case rank <= closingRank:
		blended = logistic*inWindowLogisticWeight + piecewise*inWindowPiecewiseWeight
	default:
		if rank > closingRank+pastClosingCutoff {
			blended = 0.0
		} else {
			blended = math.Min(logistic, pastClosingCap)
		}
	}

	return round2(clamp(blended))
}

// logisticEstimate models probability as a sigmoid centered on the window
// midpoint with a spread proportional to the window width.
func logisticEstimate(rank, openingRank, closingRank float64) float64 {
	mid := (openingRank + closingRank) / 2
	spread := (closingRank - openingRank) / spreadDivisor
	if spread < minSpread {
		spread = minSpread
	}
	return maxProbability / (1 + math.Exp((rank-mid)/spread))
}

// piecewiseEstimate encodes the domain intuition: near-certain below the
// opening rank, four linear segments through the window, a sharp collapse at
// the closing rank, and a short grace band past it.
func piecewiseEstimate(rank, openingRank, closingRank float64) float64 {
	switch {
	case rank < openingRank:
		improvement := (openingRank - rank) / openingRank
		if improvement >= bigImprovementCutoff {
			return bigImprovementProb
		}
		return improvementBaseProb + improvement*improvementSlope
	case rank == openingRank:
		return atOpeningProb
	case rank < closingRank:
		position := (rank - openingRank) / (closingRank - openingRank)
		switch {
		case position <= 0.2:
			return 94 - position*70
		case position <= 0.5:
			return 80 - (position-0.2)/0.3*20
		case position <= 0.8:
			return 60 - (position-0.5)/0.3*20
		default:
			return 40 - (position-0.8)/0.2*20
		}
	case rank == closingRank:
		return atClosingProb
	case rank <= closingRank+graceBandWidth:
		return graceBandProb
	default:
		return 0.0
	}
}

func clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0.0
	}
	return math.Max(0, math.Min(maxProbability, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
