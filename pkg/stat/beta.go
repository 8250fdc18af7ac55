package stat

import "math"

// logBeta returns the natural logarithm of the Beta function B(a, b).
// Both arguments must be positive; callers guarantee the domain.
func logBeta(a, b float64) float64 {
	la, _ := math.Lgamma(a)
	lb, _ := math.Lgamma(b)
	lab, _ := math.Lgamma(a + b)
	return la + lb - lab
}
