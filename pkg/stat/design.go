// Package stat computes sequential test designs for two-group experiments.  A design is
// the smallest per-group sample size and random-walk decision barrier such that the test
// keeps its false positive rate below alpha under the null hypothesis while reaching the
// power target under the alternative.
package stat

import (
	"math"
	"sync"
)

const (
	// MaxConversions is the default ceiling on the number of conversions considered
	// before a design is declared infeasible
	MaxConversions = 800000
	// MaxBarrier is the default ceiling on the barrier search range
	MaxBarrier = 5000
)

// Design is the outcome of a sequential design search.  When Feasible is false, no
// sample size satisfied the alpha and power constraints within the configured ceilings.
// Infeasibility is a legitimate outcome, not an error: the effect may be too small to
// detect within the ceilings, or the series may have broken down numerically.
type Design struct {
	N        int
	Z        int
	Feasible bool
}

// RequiredSampleSize returns the smallest sample size n at which a sequential test with
// barrier z reaches the power target under altP while the cumulative probability under
// nullP is still below alpha.  The walk can only reach z at steps sharing its parity, so
// n advances from z in steps of 2.  Crossing the power target is a one-shot checkpoint:
// the null constraint is evaluated at that moment only and accumulation never continues
// past it.
func RequiredSampleSize(z int, alpha, power, nullP, altP float64, maxN int) (int, bool) {
	if z <= 0 || z > maxN {
		return 0, false
	}

	logNullP := math.Log(nullP)
	logNull1P := math.Log(1.0 - nullP)
	logAltP := math.Log(altP)
	logAlt1P := math.Log(1.0 - altP)

	var nullCDF, altCDF float64
	zf := float64(z)
	for n := z; n <= maxN; n += 2 {
		nf := float64(n)
		// k is the number of up steps needed for net displacement z after n steps.
		// The weight z/(n*k) is the first passage coefficient for an absorbing
		// barrier, not a generic binomial term.
		k := 0.5 * (nf + zf)
		weight := zf / nf / k
		lbeta := logBeta(k, nf+1.0-k)

		nullCDF += weight * math.Exp(-lbeta+(k-zf)*logNullP+k*logNull1P)
		altCDF += weight * math.Exp(-lbeta+(k-zf)*logAltP+k*logAlt1P)

		if math.IsNaN(nullCDF) || math.IsNaN(altCDF) {
			return 0, false
		}
		if altCDF > power {
			if nullCDF < alpha {
				return n, true
			}
			return 0, false
		}
	}
	return 0, false
}

// SearchBarrier binary searches for the smallest barrier in [zMin, zMax] for which the
// cumulative probability under altP crosses the power target before the probability
// under nullP crosses alpha.  zMin and zMax must share parity and only barriers of that
// parity are considered.  The search terminates early when the accumulation breaks down
// numerically or exhausts maxN without a decision; the returned pair is then a best
// effort bound, not a confirmed minimum.
func SearchBarrier(zMin, zMax int, alpha, power, nullP, altP float64, maxN int) (int, int) {
	logNullP := math.Log(nullP)
	logNull1P := math.Log(1.0 - nullP)
	logAltP := math.Log(altP)
	logAlt1P := math.Log(1.0 - altP)

	z := midpoint(zMin, zMax)

	for zMin < zMax {
		if z >= maxN {
			break
		}

		var nullCDF, altCDF float64
		var decided, breakdown bool
		last := z
		zf := float64(z)
		for n := z; n <= maxN; n += 2 {
			last = n
			nf := float64(n)
			k := 0.5 * (nf + zf)
			weight := zf / nf / k
			lbeta := logBeta(k, nf+1.0-k)

			nullCDF += weight * math.Exp(-lbeta+(k-zf)*logNullP+k*logNull1P)
			altCDF += weight * math.Exp(-lbeta+(k-zf)*logAltP+k*logAlt1P)

			if math.IsNaN(nullCDF) || math.IsNaN(altCDF) {
				breakdown = true
				break
			}

			if altCDF > power {
				if nullCDF < alpha {
					// feasible, look for a smaller barrier
					zMax = z
				} else {
					// barrier too easy to reach under the null
					zMin = z + 2
				}
				decided = true
				break
			} else if nullCDF > alpha {
				zMin = z + 2
				decided = true
				break
			}
		}

		if breakdown || !decided || last >= maxN {
			break
		}
		z = midpoint(zMin, zMax)
	}
	return z, zMax
}

// midpoint returns the next barrier candidate, biased toward the lower bound and stepped
// by 2 to hold parity.  The bias changes which of several feasible barriers the search
// converges to, so it must not be replaced with a symmetric midpoint.
func midpoint(zMin, zMax int) int {
	d := zMax - zMin
	q := d / 4
	if d < 0 && d%4 != 0 {
		q--
	}
	return zMin + 2*q
}

// EstimateSampleSize computes the minimum per-group sample size and decision barrier for
// a sequential test detecting an absolute effectSize over baselineRate.  The null
// hypothesis fixes p at 0.5 (balanced prior odds); the alternative is the implied odds of
// a conversion belonging to the control group when the treatment converts at
// baselineRate+effectSize.  Odd and even barriers constrain the walk to disjoint sets of
// reachable step counts, so the two parities are searched independently and the cheaper
// design wins.
func EstimateSampleSize(alpha, power, baselineRate, effectSize float64, maxN, maxZ int) Design {
	nullP := 0.5
	altP := 1.0 / (1.0 + (baselineRate+effectSize)/baselineRate)

	// Each search keeps both bounds on its own parity so every candidate the bisection
	// visits is reachable by the walk.
	maxOdd, maxEven := maxZ, maxZ
	if maxZ%2 == 0 {
		maxOdd = maxZ - 1
	} else {
		maxEven = maxZ - 1
	}

	var odd, even Design
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		odd = designFor(1, maxOdd, alpha, power, nullP, altP, maxN)
	}()
	go func() {
		defer wg.Done()
		even = designFor(2, maxEven, alpha, power, nullP, altP, maxN)
	}()
	wg.Wait()

	// The even design wins only when the odd design is infeasible or the even sample
	// size is strictly smaller; an equal-n tie goes to the odd barrier.
	if !odd.Feasible || (even.Feasible && even.N < odd.N) {
		return even
	}
	return odd
}

func designFor(zMin, zMax int, alpha, power, nullP, altP float64, maxN int) Design {
	z, _ := SearchBarrier(zMin, zMax, alpha, power, nullP, altP, maxN)
	n, ok := RequiredSampleSize(z, alpha, power, nullP, altP, maxN)
	return Design{N: n, Z: z, Feasible: ok}
}
