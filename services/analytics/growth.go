package analytics

// Growth returns the percentage change from previous to current.
// A move from zero to a positive value is reported as 100 and zero to zero as 0,
// so the result is always finite.
func Growth(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}
