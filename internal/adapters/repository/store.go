// Package repository provides the cutoff dataset store: an immutable,
// normalized in-memory snapshot of historical admission cutoff rows.
package repository

import (
	"context"
	"io"

	"github.com/josaa-tools/seatcast/internal/domain/model"
)

// Filter narrows a snapshot to the rows a prediction request cares about.
// Empty fields mean "no constraint". Category, college type and branch match
// case-insensitively against the normalized record fields; round is compared
// as a string, since round identifiers may be non-numeric in source data.
type Filter struct {
	Category    string
	CollegeType string
	Branch      string
	Round       string
}

// Facets lists the distinct values present in the current snapshot, for
// building request forms.
type Facets struct {
	Categories   []string `json:"categories"`
	CollegeTypes []string `json:"college_types"`
	Branches     []string `json:"branches"`
	Rounds       []string `json:"rounds"`
}

// Store provides read access to the cutoff dataset. Implementations must
// return internally consistent snapshots: a reload swaps the snapshot
// wholesale, never mutating rows an in-flight reader may hold.
type Store interface {
	// Records returns the current snapshot. The returned slice is shared and
	// read-only. Returns ErrDataUnavailable when no usable snapshot exists.
	Records(ctx context.Context) ([]model.CutoffRecord, error)

	// Query returns a fresh slice of the snapshot rows matching f.
	Query(ctx context.Context, f Filter) ([]model.CutoffRecord, error)

	// Facets returns the distinct filterable values in the snapshot, sorted.
	Facets(ctx context.Context) (Facets, error)

	// Count returns the number of rows in the current snapshot.
	Count(ctx context.Context) int

	// Reload replaces the snapshot from the backing source.
	Reload(ctx context.Context) error

	// ExportCSV writes the current snapshot to w in the source CSV schema.
	ExportCSV(ctx context.Context, w io.Writer) error
}
