package nptest

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// WilcoxonSignedRank performs the paired Wilcoxon signed-rank test of
// a against b. Zero differences are dropped; ties among the absolute
// differences share midranks and correct the variance. It returns the
// positive-rank sum W and the one-sided p-value under a normal
// approximation.
func WilcoxonSignedRank(a, b []float64, alt Alternative) (w, p float64, err error) {
	if len(a) != len(b) {
		return 0, 0, fmt.Errorf("wilcoxon: paired samples differ in length: %d vs %d", len(a), len(b))
	}

	diffs := make([]float64, 0, len(a))
	for i := range a {
		if d := a[i] - b[i]; d != 0 {
			diffs = append(diffs, d)
		}
	}
	n := len(diffs)
	if n == 0 {
		return 0, 0, errors.New("wilcoxon: all paired differences are zero")
	}

	abs := make([]float64, n)
	for i, d := range diffs {
		abs[i] = math.Abs(d)
	}
	ranks, tieTerm := midranks(abs)

	for i, d := range diffs {
		if d > 0 {
			w += ranks[i]
		}
	}

	fn := float64(n)
	mean := fn * (fn + 1) / 4
	variance := fn*(fn+1)*(2*fn+1)/24 - tieTerm/48
	if variance <= 0 {
		return w, 0, errors.New("wilcoxon: zero variance")
	}
	sd := math.Sqrt(variance)

	z := (w - mean) / sd
	switch alt {
	case Less:
		p = distuv.UnitNormal.CDF(z)
	case Greater:
		p = distuv.UnitNormal.Survival(z)
	}
	return w, p, nil
}
