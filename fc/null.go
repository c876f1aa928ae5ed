package fc

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/evoldyn/codonfc/checkpoint"
	"github.com/evoldyn/codonfc/orbit"
)

// Direction selects the tail of the one-sided empirical test.
type Direction int

const (
	// Lower tests whether the observed statistic sits below the null.
	Lower Direction = iota
	// Upper tests whether the observed statistic sits above the null.
	Upper
)

// DegenerateNullError indicates that the null trials produced fewer
// than two finite values, so the Z-score and p-value are undefined.
type DegenerateNullError struct {
	Finite int
	Trials int
}

func (e *DegenerateNullError) Error() string {
	return fmt.Sprintf("degenerate null model: %d finite values in %d trials, need at least 2",
		e.Finite, e.Trials)
}

// NullOptions configures the null model.
type NullOptions struct {
	// Trials is the number of shuffles (default 10000).
	Trials int
	// Seed initializes the permutation stream; every trial derives
	// its own source from it, so resumed runs replay identically.
	Seed int64
	// Direction of the one-sided test.
	Direction Direction
	// Progress, when positive, logs a heartbeat every Progress trials.
	Progress int
	// Checkpoint, when set, persists trial state periodically and
	// resumes from it.
	Checkpoint *checkpoint.IO
}

// NullSummary reports the shuffled-orbit null distribution and the
// position of the observed statistic in it.
type NullSummary struct {
	// Trials is the number of shuffles performed.
	Trials int `json:"trials"`
	// Finite is the number of trials with a defined cohort median.
	Finite int `json:"finite"`
	// Mean is the mean of the finite null values.
	Mean float64 `json:"mean"`
	// Std is the population standard deviation of the finite null values.
	Std float64 `json:"std"`
	// Observed is the statistic under the true orbit map.
	Observed float64 `json:"observed"`
	// Z is the Z-score of the observed statistic against the null.
	Z float64 `json:"z"`
	// P is the one-sided empirical p-value with Laplace correction.
	P float64 `json:"p"`
	// Values holds the finite trial values (for plotting; omitted
	// from JSON).
	Values []float64 `json:"-"`
}

// RunNull runs the shuffled-orbit null model: each trial permutes the
// orbit labels across the fixed codon order, recomputes the cohort
// median FC ratio over the same rows, and records it. The observed
// statistic is then located in the resulting distribution.
func RunNull(rows [][]int64, m *orbit.Map, observed float64, opt NullOptions) (*NullSummary, error) {
	if opt.Trials <= 0 {
		opt.Trials = 10000
	}

	values := make([]float64, 0, opt.Trials)
	degenerate := 0
	start := 0

	if opt.Checkpoint != nil {
		state, err := opt.Checkpoint.Load()
		if err != nil {
			return nil, err
		}
		if state != nil && state.Trials <= opt.Trials {
			start = state.Trials
			values = append(values, state.Values...)
			degenerate = state.Degenerate
			log.Noticef("Resuming null model at trial %d", start)
		}
	}

	for trial := start; trial < opt.Trials; trial++ {
		// a per-trial source keeps trial t identical whether the run
		// was resumed or not
		rng := rand.New(rand.NewSource(opt.Seed + int64(trial)))
		fake := m.Shuffle(rng)

		cohort := &Cohort{}
		for _, counts := range rows {
			_, err := cohort.Add(counts, fake)
			if err != nil && err != ErrEmptyOrganism && err != ErrUndefinedRatio {
				return nil, err
			}
		}
		if med, ok := cohort.Median(); ok {
			values = append(values, med)
		} else {
			degenerate++
		}

		done := trial + 1
		if opt.Progress > 0 && done%opt.Progress == 0 {
			log.Infof("Null trial %d/%d", done, opt.Trials)
		}
		if opt.Checkpoint != nil {
			opt.Checkpoint.MaybeSave(&checkpoint.State{
				Trials: done, Values: values, Degenerate: degenerate,
			})
		}
	}

	if opt.Checkpoint != nil {
		if err := opt.Checkpoint.Save(&checkpoint.State{
			Trials: opt.Trials, Values: values, Degenerate: degenerate,
		}); err != nil {
			log.Error("Error saving final checkpoint:", err)
		}
	}

	if len(values) < 2 {
		return nil, &DegenerateNullError{Finite: len(values), Trials: opt.Trials}
	}

	summary := &NullSummary{
		Trials:   opt.Trials,
		Finite:   len(values),
		Mean:     stat.Mean(values, nil),
		Std:      stat.PopStdDev(values, nil),
		Observed: observed,
		Values:   values,
	}
	if summary.Std == 0 {
		return nil, &DegenerateNullError{Finite: len(values), Trials: opt.Trials}
	}
	summary.Z = (observed - summary.Mean) / summary.Std

	extreme := 0
	for _, v := range values {
		if (opt.Direction == Lower && v <= observed) ||
			(opt.Direction == Upper && v >= observed) {
			extreme++
		}
	}
	summary.P = float64(extreme+1) / float64(len(values)+1)

	return summary, nil
}

// Subsample returns n rows drawn without replacement using the given
// source, or all rows when n is zero or exceeds the input.
func Subsample(rows [][]int64, n int, rng *rand.Rand) [][]int64 {
	if n <= 0 || n >= len(rows) {
		return rows
	}
	perm := rng.Perm(len(rows))
	out := make([][]int64, n)
	for i := 0; i < n; i++ {
		out[i] = rows[perm[i]]
	}
	return out
}
