package probability

// Qualitative labels attached to computed probabilities.
const (
	VeryHighChance = "Very High Chance"
	HighChance     = "High Chance"
	ModerateChance = "Moderate Chance"
	LowChance      = "Low Chance"
	VeryLowChance  = "Very Low Chance"
	NoChance       = "No Chance"
)

// Interpret maps a probability to its qualitative label. Tiers are closed on
// their lower bound and checked from highest to lowest.
func Interpret(probability float64) string {
	switch {
	case probability >= 95:
		return VeryHighChance
	case probability >= 80:
		return HighChance
	case probability >= 60:
		return ModerateChance
	case probability >= 40:
		return LowChance
	case probability > 0:
		return VeryLowChance
	default:
		return NoChance
	}
}
