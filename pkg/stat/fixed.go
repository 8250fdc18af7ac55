package stat

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// FixedHorizonSampleSize returns the per-group sample size for a classical two-sided
// fixed-horizon test of two proportions using the normal approximation.  It answers the
// same question as EstimateSampleSize without early stopping, which makes it a useful
// reference point for how much a sequential design saves or costs.  Returns false when
// either rate falls outside (0,1) or the effect is zero.
func FixedHorizonSampleSize(alpha, power, baselineRate, effectSize float64) (int, bool) {
	p1 := baselineRate
	p2 := baselineRate + effectSize
	if p1 <= 0.0 || p1 >= 1.0 || p2 <= 0.0 || p2 >= 1.0 || effectSize == 0.0 {
		return 0, false
	}

	norm := distuv.Normal{Mu: 0, Sigma: 1}
	zAlpha := norm.Quantile(1.0 - alpha/2.0)
	zBeta := norm.Quantile(power)

	pBar := (p1 + p2) / 2.0
	num := zAlpha*math.Sqrt(2.0*pBar*(1.0-pBar)) + zBeta*math.Sqrt(p1*(1.0-p1)+p2*(1.0-p2))
	n := (num * num) / (effectSize * effectSize)
	return int(math.Ceil(n)), true
}
