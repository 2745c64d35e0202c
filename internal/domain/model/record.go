// Package model contains domain values passed between layers.
package model

// CutoffRecord is one historical admission-cutoff row, already normalized by
// the repository: category and program lower-cased, college type upper-cased,
// ranks numeric, round kept as the string it appeared as in the source data.
type CutoffRecord struct {
	Institute   string
	ProgramName string
	Category    string
	CollegeType string
	Location    string
	OpeningRank float64
	ClosingRank float64
	Round       string
}

// PredictionQuery is one scoring request as seen by the core. Empty filter
// fields mean "no constraint"; the HTTP layer maps the wire-level "all"
// sentinel to empty before the query reaches here.
type PredictionQuery struct {
	Rank            int
	Category        string
	CollegeType     string
	PreferredBranch string
	Round           string
	MinProbability  float64
}

// ScoredCandidate pairs a cutoff record with its computed admission
// probability and qualitative label. Created transiently per request.
type ScoredCandidate struct {
	Record         CutoffRecord
	Probability    float64
	Interpretation string
}

// Preference is one row of the final shortlist, shaped for callers.
type Preference struct {
	PreferenceOrder      int     `json:"preference_order"`
	Institute            string  `json:"institute"`
	CollegeType          string  `json:"college_type"`
	Location             string  `json:"location"`
	Branch               string  `json:"branch"`
	OpeningRank          float64 `json:"opening_rank"`
	ClosingRank          float64 `json:"closing_rank"`
	AdmissionProbability float64 `json:"admission_probability"`
	AdmissionChances     string  `json:"admission_chances"`
}
