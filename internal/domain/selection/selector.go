// Package selection assembles a bounded, rank-relevant candidate shortlist
// from a filtered cutoff record set before any scoring happens.
//
// Three overlapping proximity tiers are collected relative to the rank:
// records whose opening rank is just above the candidate ("just missed it"),
// records whose window contains the rank ("comfortably within"), and records
// whose closing rank is just below ("just qualifies"). The tiers are unioned
// in that order with exact-duplicate rows removed.
package selection

import (
	"github.com/josaa-tools/seatcast/internal/domain/model"
)

// Default selection bounds.
const (
	defaultWindowSpan     = 200.0
	defaultNearOpeningCap = 10
	defaultInWindowCap    = 20
	defaultNearClosingCap = 20
)

// Selector picks plausible candidates around a rank.
type Selector struct {
	windowSpan     float64
	nearOpeningCap int
	inWindowCap    int
	nearClosingCap int
}

// NewSelector creates a selector with configuration options.
func NewSelector(opts ...Option) *Selector {
	s := &Selector{
		windowSpan:     defaultWindowSpan,
		nearOpeningCap: defaultNearOpeningCap,
		inWindowCap:    defaultInWindowCap,
		nearClosingCap: defaultNearClosingCap,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// MaxCandidates returns the upper bound of a shortlist before deduplication.
func (s *Selector) MaxCandidates() int {
	return s.nearOpeningCap + s.inWindowCap + s.nearClosingCap
}

// Select returns the deduplicated union of the three proximity tiers, each
// capped at its configured size, preserving encounter order within a tier.
// The input is read-only; the result is a fresh slice.
func (s *Selector) Select(rank int, records []model.CutoffRecord) []model.CutoffRecord {
	r := float64(rank)

	nearOpening := make([]model.CutoffRecord, 0, s.nearOpeningCap)
	inWindow := make([]model.CutoffRecord, 0, s.inWindowCap)
	nearClosing := make([]model.CutoffRecord, 0, s.nearClosingCap)

	for _, rec := range records {
		if len(nearOpening) == s.nearOpeningCap &&
			len(inWindow) == s.inWindowCap &&
			len(nearClosing) == s.nearClosingCap {
			break
		}
		if len(nearOpening) < s.nearOpeningCap &&
			rec.OpeningRank >= r-s.windowSpan && rec.OpeningRank <= r {
			nearOpening = append(nearOpening, rec)
		}
		if len(inWindow) < s.inWindowCap &&
			rec.OpeningRank <= r && r <= rec.ClosingRank {
			inWindow = append(inWindow, rec)
		}
		if len(nearClosing) < s.nearClosingCap &&
			rec.ClosingRank >= r && rec.ClosingRank <= r+s.windowSpan {
			nearClosing = append(nearClosing, rec)
		}
	}

	seen := make(map[model.CutoffRecord]struct{}, len(nearOpening)+len(inWindow)+len(nearClosing))
	out := make([]model.CutoffRecord, 0, len(nearOpening)+len(inWindow)+len(nearClosing))
	for _, tier := range [][]model.CutoffRecord{nearOpening, inWindow, nearClosing} {
		for _, rec := range tier {
			if _, dup := seen[rec]; dup {
				continue
			}
			seen[rec] = struct{}{}
			out = append(out, rec)
		}
	}

	return out
}
