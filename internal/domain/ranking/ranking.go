// Package ranking turns a candidate shortlist into an ordered preference list.
package ranking

import (
	"sort"

	"github.com/josaa-tools/seatcast/internal/domain/model"
	"github.com/josaa-tools/seatcast/internal/domain/probability"
)

// Estimator computes an admission probability for a rank against a window.
// It must be deterministic and total; the default is probability.Estimate.
type Estimator func(rank, openingRank, closingRank float64) float64

// Engine scores candidates, applies the probability threshold, and assigns a
// dense 1-based preference order by descending probability.
type Engine struct {
	estimate Estimator
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithEstimator overrides the probability estimator.
func WithEstimator(fn Estimator) Option {
	return func(e *Engine) {
		if fn != nil {
			e.estimate = fn
		}
	}
}

// NewEngine creates a ranking engine with configuration options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		estimate: probability.Estimate,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Rank scores every candidate, drops those under minProbability, stable-sorts
// the rest by probability descending, and numbers them 1..N. An empty or
// fully-filtered input yields an empty list, never an error.
func (e *Engine) Rank(rank int, candidates []model.CutoffRecord, minProbability float64) []model.Preference {
	scored := make([]model.ScoredCandidate, 0, len(candidates))
	for _, rec := range candidates {
		p := e.estimate(float64(rank), rec.OpeningRank, rec.ClosingRank)
		if p < minProbability {
			continue
		}
		scored = append(scored, model.ScoredCandidate{
			Record:         rec,
			Probability:    p,
			Interpretation: probability.Interpret(p),
		})
	}

	// Stable sort keeps ties in encounter order, so identical inputs always
	// produce the same preference numbering.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Probability > scored[j].Probability
	})

	prefs := make([]model.Preference, len(scored))
	for i, sc := range scored {
		prefs[i] = model.Preference{
			PreferenceOrder:      i + 1,
			Institute:            sc.Record.Institute,
			CollegeType:          sc.Record.CollegeType,
			Location:             sc.Record.Location,
			Branch:               sc.Record.ProgramName,
			OpeningRank:          sc.Record.OpeningRank,
			ClosingRank:          sc.Record.ClosingRank,
			AdmissionProbability: sc.Probability,
			AdmissionChances:     sc.Interpretation,
		}
	}

	return prefs
}
