package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrNotStarted  = errors.New("service not started")
	ErrInvalidRank = errors.New("rank must be a positive integer")
)
