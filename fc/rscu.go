// Package fc implements the First-Classness dispersion statistic:
// RSCU computation, the intra/inter orbit dispersion ratio, cohort
// aggregation and the shuffled-orbit null model.
package fc

import (
	"errors"
	"fmt"

	"github.com/op/go-logging"
	"gonum.org/v1/gonum/stat"

	"github.com/evoldyn/codonfc/bio"
	"github.com/evoldyn/codonfc/orbit"
)

// log is the package logging variable.
var log = logging.MustGetLogger("fc")

var (
	// ErrEmptyOrganism marks an organism with zero total codon count.
	// RSCU is undefined for it; the row is skipped, never zeroed.
	ErrEmptyOrganism = errors.New("organism has zero total codon count")
	// ErrUndefinedRatio marks a zero inter-orbit variance. The ratio
	// is undefined for the row; it is skipped, never coerced.
	ErrUndefinedRatio = errors.New("inter-orbit variance is zero")
)

// RSCU computes relative synonymous codon usage from 64 codon counts
// aligned to bio.CodonOrder: count over total, scaled by the codon's
// orbit size. Uniform usage within an orbit gives every member the
// same value, the orbit's share of the genome. ErrEmptyOrganism is
// returned when the total is zero.
func RSCU(counts []int64, m *orbit.Map) ([]float64, error) {
	if len(counts) != bio.NCodon {
		return nil, fmt.Errorf("expected %d codon counts, got %d", bio.NCodon, len(counts))
	}
	var total int64
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return nil, ErrEmptyOrganism
	}
	rscu := make([]float64, bio.NCodon)
	for i, c := range counts {
		freq := float64(c) / float64(total)
		rscu[i] = freq * float64(m.SizeAt(i))
	}
	return rscu, nil
}

// Ratio computes the FC dispersion ratio of an RSCU vector: the
// sample standard deviation of within-orbit residuals over the sample
// standard deviation of the orbit means, each mean entering once per
// member codon. ErrUndefinedRatio is returned when the denominator
// is zero.
func Ratio(rscu []float64, m *orbit.Map) (float64, error) {
	if len(rscu) != bio.NCodon {
		return 0, fmt.Errorf("expected %d RSCU values, got %d", bio.NCodon, len(rscu))
	}
	// orbits accumulate in first-occurrence order over bio.CodonOrder;
	// a map-order iteration would make the float summation below
	// non-reproducible
	groups := make(map[string][]float64, m.NOrbits())
	order := make([]string, 0, m.NOrbits())
	for i, v := range rscu {
		label := m.LabelAt(i)
		if _, ok := groups[label]; !ok {
			order = append(order, label)
		}
		groups[label] = append(groups[label], v)
	}

	intra := make([]float64, 0, bio.NCodon)
	inter := make([]float64, 0, bio.NCodon)
	for _, label := range order {
		vs := groups[label]
		mean := stat.Mean(vs, nil)
		for _, v := range vs {
			intra = append(intra, v-mean)
			inter = append(inter, mean)
		}
	}

	den := stat.StdDev(inter, nil)
	if den == 0 {
		return 0, ErrUndefinedRatio
	}
	return stat.StdDev(intra, nil) / den, nil
}
