package selection

// Option applies a configuration option to the Selector.
type Option func(*Selector)

// WithWindowSpan sets how far the near-opening and near-closing tiers reach
// around the candidate rank.
func WithWindowSpan(span float64) Option {
	return func(s *Selector) {
		if span > 0 {
			s.windowSpan = span
		}
	}
}

// WithNearOpeningCap bounds the "just missed it" tier.
func WithNearOpeningCap(n int) Option {
	return func(s *Selector) {
		if n > 0 {
			s.nearOpeningCap = n
		}
	}
}

// WithInWindowCap bounds the "comfortably within" tier.
func WithInWindowCap(n int) Option {
	return func(s *Selector) {
		if n > 0 {
			s.inWindowCap = n
		}
	}
}

// WithNearClosingCap bounds the "just qualifies" tier.
func WithNearClosingCap(n int) Option {
	return func(s *Selector) {
		if n > 0 {
			s.nearClosingCap = n
		}
	}
}
