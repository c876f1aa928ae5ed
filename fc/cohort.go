package fc

import (
	"errors"
	"sort"

	"github.com/evoldyn/codonfc/orbit"
)

// Cohort accumulates FC ratios over organism records. Rows with an
// undefined RSCU vector or ratio are counted and skipped; they never
// contribute to the summary.
type Cohort struct {
	ratios []float64
	// skipped rows by cause
	empty     int
	undefined int
}

// Add computes the FC ratio for one organism's codon counts and
// accumulates it. The returned error is ErrEmptyOrganism or
// ErrUndefinedRatio for skipped rows (non-fatal, already counted),
// or a fatal shape error.
func (c *Cohort) Add(counts []int64, m *orbit.Map) (float64, error) {
	rscu, err := RSCU(counts, m)
	if err != nil {
		if errors.Is(err, ErrEmptyOrganism) {
			c.empty++
		}
		return 0, err
	}
	r, err := Ratio(rscu, m)
	if err != nil {
		if errors.Is(err, ErrUndefinedRatio) {
			c.undefined++
		}
		return 0, err
	}
	c.ratios = append(c.ratios, r)
	return r, nil
}

// AddRatio accumulates an already computed ratio.
func (c *Cohort) AddRatio(r float64) {
	c.ratios = append(c.ratios, r)
}

// N returns the number of valid ratios.
func (c *Cohort) N() int { return len(c.ratios) }

// SkippedEmpty returns the number of rows skipped for zero total count.
func (c *Cohort) SkippedEmpty() int { return c.empty }

// SkippedUndefined returns the number of rows skipped for zero
// inter-orbit variance.
func (c *Cohort) SkippedUndefined() int { return c.undefined }

// Ratios returns the accumulated ratios.
func (c *Cohort) Ratios() []float64 { return c.ratios }

// Median returns the sample median of the valid ratios; ok is false
// when the cohort is empty.
func (c *Cohort) Median() (med float64, ok bool) {
	if len(c.ratios) == 0 {
		return 0, false
	}
	return median(c.ratios), true
}

// median computes the midpoint sample median on a copy. gonum's
// empirical Quantile does not average the two central values for even
// lengths, so the midpoint convention is spelled out here.
func median(xs []float64) float64 {
	s := make([]float64, len(xs))
	copy(s, xs)
	sort.Float64s(s)
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}
