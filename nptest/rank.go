// Package nptest implements the nonparametric two-sample tests used
// for cohort comparisons: the Mann-Whitney U rank-sum test and the
// Wilcoxon signed-rank test, both with midrank tie handling and a
// normal approximation.
package nptest

import "sort"

// Alternative selects the one-sided hypothesis.
type Alternative int

const (
	// Less tests whether the first sample is stochastically smaller.
	Less Alternative = iota
	// Greater tests whether the first sample is stochastically larger.
	Greater
)

// midranks assigns 1-based ranks to xs with ties sharing the average
// rank of their run. It also returns the tie-correction term
// sum(t^3-t) over the tie groups.
func midranks(xs []float64) (ranks []float64, tieTerm float64) {
	n := len(xs)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return xs[idx[i]] < xs[idx[j]] })

	ranks = make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j < n && xs[idx[j]] == xs[idx[i]] {
			j++
		}
		// positions i..j-1 hold a tie group; 1-based ranks i+1..j
		mid := float64(i+1+j) / 2
		for k := i; k < j; k++ {
			ranks[idx[k]] = mid
		}
		if t := float64(j - i); t > 1 {
			tieTerm += t*t*t - t
		}
		i = j
	}
	return ranks, tieTerm
}
