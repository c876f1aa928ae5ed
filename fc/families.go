package fc

import (
	"gonum.org/v1/gonum/stat"

	"github.com/evoldyn/codonfc/bio"
	"github.com/evoldyn/codonfc/orbit"
)

// FamilyStat summarizes the within-orbit usage dispersion of one
// multi-codon family across a cohort: the median coefficient of
// variation of the member frequencies. Large values single out the
// families driving FC violation (typically the split 6-fold ones).
type FamilyStat struct {
	// Label is the orbit label.
	Label string `json:"label"`
	// Size is the orbit size.
	Size int `json:"size"`
	// N is the number of organisms with usable counts for the family.
	N int `json:"n"`
	// MedianCV is the median coefficient of variation of member
	// frequencies.
	MedianCV float64 `json:"medianCV"`
}

// FamilyDispersion computes per-orbit dispersion statistics over a
// cohort. Singleton orbits are skipped (no variance is possible);
// organisms with zero family total are skipped per family.
func FamilyDispersion(rows [][]int64, m *orbit.Map) []FamilyStat {
	families := m.Families()
	names := m.FamilyNames()

	stats := make([]FamilyStat, 0, len(names))
	for _, label := range names {
		members := families[label]
		if len(members) < 2 {
			continue
		}
		idx := make([]int, len(members))
		for i, codon := range members {
			idx[i] = bio.CodonIndex[codon]
		}

		cvs := make([]float64, 0, len(rows))
		freqs := make([]float64, len(members))
		for _, counts := range rows {
			var familyTotal int64
			for _, j := range idx {
				familyTotal += counts[j]
			}
			if familyTotal == 0 {
				continue
			}
			for i, j := range idx {
				freqs[i] = float64(counts[j]) / float64(familyTotal)
			}
			mean := stat.Mean(freqs, nil)
			if mean == 0 {
				continue
			}
			cvs = append(cvs, stat.StdDev(freqs, nil)/mean)
		}
		if len(cvs) == 0 {
			continue
		}
		stats = append(stats, FamilyStat{
			Label:    label,
			Size:     len(members),
			N:        len(cvs),
			MedianCV: median(cvs),
		})
	}
	return stats
}
