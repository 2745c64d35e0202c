package repository

import "errors"

// Sentinel kinds for dataset errors.
var (
	// ErrDataUnavailable distinguishes "the system cannot compute" from
	// "nothing qualifies"; it surfaces when no usable snapshot exists.
	ErrDataUnavailable = errors.New("cutoff dataset unavailable")

	// ErrMalformedDataset marks a source file the loader cannot interpret.
	ErrMalformedDataset = errors.New("malformed cutoff dataset")
)
