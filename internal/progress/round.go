package progress

import "math"

// roundHalfUp rounds to the nearest integer with halves rounded toward
// positive infinity, so 12.5 becomes 13.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clampPct(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Percent returns round(done/total*100) clamped to [0,100]. A zero total
// yields 0.
func Percent(done, total int) int {
	if total <= 0 {
		return 0
	}
	return clampPct(roundHalfUp(float64(done) / float64(total) * 100))
}
