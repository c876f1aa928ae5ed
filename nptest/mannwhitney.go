package nptest

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// MannWhitneyU performs the unpaired Mann-Whitney U rank-sum test of
// sample a against sample b. It returns the U statistic of a and the
// one-sided p-value under a tie-corrected normal approximation with
// continuity correction. The p-value is reported, never acted on.
func MannWhitneyU(a, b []float64, alt Alternative) (u, p float64, err error) {
	n1 := len(a)
	n2 := len(b)
	if n1 == 0 || n2 == 0 {
		return 0, 0, errors.New("mann-whitney: empty sample")
	}

	combined := make([]float64, 0, n1+n2)
	combined = append(combined, a...)
	combined = append(combined, b...)
	ranks, tieTerm := midranks(combined)

	r1 := 0.0
	for i := 0; i < n1; i++ {
		r1 += ranks[i]
	}
	u = r1 - float64(n1)*float64(n1+1)/2

	fn1 := float64(n1)
	fn2 := float64(n2)
	fn := fn1 + fn2
	mean := fn1 * fn2 / 2
	variance := fn1 * fn2 / 12 * (fn + 1 - tieTerm/(fn*(fn-1)))
	if variance <= 0 {
		return u, 0, errors.New("mann-whitney: zero variance (all values tied)")
	}
	sd := math.Sqrt(variance)

	var z float64
	switch alt {
	case Less:
		z = (u - mean + 0.5) / sd
		p = distuv.UnitNormal.CDF(z)
	case Greater:
		z = (u - mean - 0.5) / sd
		p = distuv.UnitNormal.Survival(z)
	}
	return u, p, nil
}
