package cutoffgen

import "time"

// Config holds configuration for the cutoff dataset generator
type Config struct {
	OutputFile string // Output CSV file for generated cutoffs
	Rounds     int    // Number of counselling rounds to generate
	MaxRank    int    // Upper bound for generated closing ranks
	LogFile    string // Log file for generator output
	Verbose    bool   // Enable verbose logging
}

// Stats holds generation statistics
type Stats struct {
	RecordsGenerated int
	Institutes       int
	Branches         int
	Categories       int
	Rounds           int
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
}
