package repository

import (
	"time"

	"github.com/josaa-tools/seatcast/pkg/logger"
)

// Option applies a configuration option to the CSVStore.
type Option func(*CSVStore)

// WithFallbackRank sets the value substituted for malformed rank cells.
func WithFallbackRank(rank float64) Option {
	return func(s *CSVStore) {
		if rank > 0 {
			s.fallbackRank = rank
		}
	}
}

// WithStaleCheckInterval throttles how often read paths probe the backing
// file for changes. Zero or negative disables refresh-on-read entirely.
func WithStaleCheckInterval(interval time.Duration) Option {
	return func(s *CSVStore) {
		s.staleCheckInterval = interval
	}
}

// WithLogger sets a custom logger for the store.
func WithLogger(log logger.Logger) Option {
	return func(s *CSVStore) {
		if log != nil {
			s.log = log
		}
	}
}
