package growth

import "math"

// Project grows principal at a constant annual rate for the given years.
// Negative cagr models a decline. years must not be negative; zero years
// returns principal unchanged. The result is not rounded.
func Project(principal, cagr, years float64) float64 {
	if years == 0 {
		return principal
	}
	return principal * math.Pow(1+cagr, years)
}
