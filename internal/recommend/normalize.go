package recommend

import "math"

// normalizeLinear maps value onto a descending 0-10 scale across [min, max]:
// the minimum gets 10, the maximum gets 0. A degenerate range scores 10.
func normalizeLinear(value, min, max float64) float64 {
	if min == max {
		return 10
	}
	return clampScore(10 - ((value-min)/(max-min))*10)
}

// clampScore clamps a component score into [0, 10]. NaN clamps to 0 so a
// malformed field can only lower confidence, never inflate it.
func clampScore(score float64) float64 {
	if math.IsNaN(score) || score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}

// sanitizeNonNegative clamps negative or NaN inputs to 0
func sanitizeNonNegative(value float64) float64 {
	if math.IsNaN(value) || value < 0 {
		return 0
	}
	return value
}
