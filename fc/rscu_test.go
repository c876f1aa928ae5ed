package fc

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/op/go-logging"

	"github.com/evoldyn/codonfc/bio"
	"github.com/evoldyn/codonfc/orbit"
)

const smallDiff = 1e-9

func init() {
	// disable logging for tests
	logging.SetLevel(logging.ERROR, "fc")
}

// countsFor builds a 64-count vector from RNA codon counts.
func countsFor(tst *testing.T, counts map[string]int64) []int64 {
	tst.Helper()
	out := make([]int64, bio.NCodon)
	for codon, c := range counts {
		i, ok := bio.CodonIndex[codon]
		if !ok {
			tst.Fatal("Bad codon in test data:", codon)
		}
		out[i] = c
	}
	return out
}

func TestRSCUEmptyOrganism(tst *testing.T) {
	m := orbit.Standard()
	_, err := RSCU(make([]int64, bio.NCodon), m)
	if !errors.Is(err, ErrEmptyOrganism) {
		tst.Error("Expected ErrEmptyOrganism, got", err)
	}
}

func TestRSCUWrongShape(tst *testing.T) {
	m := orbit.Standard()
	if _, err := RSCU(make([]int64, 63), m); err == nil {
		tst.Error("Expected error for 63 counts")
	}
}

func TestRSCUFrequencySum(tst *testing.T) {
	m := orbit.Standard()
	counts := make([]int64, bio.NCodon)
	for i := range counts {
		counts[i] = int64(i%7) + 1
	}
	rscu, err := RSCU(counts, m)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	// frequencies reconstructed as rscu/size must sum to one
	sum := 0.0
	for i, v := range rscu {
		sum += v / float64(m.SizeAt(i))
	}
	if math.Abs(sum-1) > smallDiff {
		tst.Errorf("Frequencies sum to %v, expected 1", sum)
	}
}

func TestRSCUUniformOrbit(tst *testing.T) {
	m := orbit.Standard()
	counts := countsFor(tst, map[string]int64{
		"AAA": 10, "AAG": 10,
		"GUU": 5, "GUC": 5, "GUA": 5, "GUG": 5,
	})
	rscu, err := RSCU(counts, m)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	// uniform usage within both orbits: every member carries the same
	// value (here 2*10/40 = 4*5/40 = 0.5)
	for _, codon := range []string{"AAA", "AAG", "GUU", "GUC", "GUA", "GUG"} {
		v := rscu[bio.CodonIndex[codon]]
		if math.Abs(v-0.5) > smallDiff {
			tst.Errorf("RSCU(%s)=%v, expected 0.5", codon, v)
		}
	}
}

func TestRatioCompliantOrganism(tst *testing.T) {
	m := orbit.Standard()
	counts := countsFor(tst, map[string]int64{
		"AAA": 10, "AAG": 10,
		"GUU": 5, "GUC": 5, "GUA": 5, "GUG": 5,
	})
	rscu, err := RSCU(counts, m)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	r, err := Ratio(rscu, m)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if r != 0 {
		tst.Errorf("Ratio=%v, expected 0 for within-orbit uniform usage", r)
	}
}

func TestRatioImbalancedOrbit(tst *testing.T) {
	m := orbit.Standard()
	counts := countsFor(tst, map[string]int64{
		"AAA": 10, "AAG": 10,
		"GUU": 20,
	})
	rscu, err := RSCU(counts, m)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if v := rscu[bio.CodonIndex["GUU"]]; math.Abs(v-2) > smallDiff {
		tst.Errorf("RSCU(GUU)=%v, expected 2", v)
	}
	r, err := Ratio(rscu, m)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if r <= 0 {
		tst.Errorf("Ratio=%v, expected > 0 for within-orbit imbalance", r)
	}
}

func TestRatioBitReproducible(tst *testing.T) {
	m := orbit.Standard()
	counts := make([]int64, bio.NCodon)
	for i := range counts {
		counts[i] = int64(i%7) + 1
	}
	rscu, err := RSCU(counts, m)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	first, err := Ratio(rscu, m)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	// the orbit partition must accumulate in a fixed order; float
	// summation is order-sensitive, so any map-order iteration shows
	// up here as ULP-level jitter
	for i := 0; i < 1000; i++ {
		r, err := Ratio(rscu, m)
		if err != nil {
			tst.Fatal("Error: ", err)
		}
		if r != first {
			tst.Fatalf("Ratio %x differs from first %x at call %d", r, first, i)
		}
	}
}

// quartetMap builds a map of sixteen 4-fold orbits; with equal counts
// every RSCU value and every orbit mean is exactly 4/64, so the inter
// set has exactly zero variance.
func quartetMap(tst *testing.T) *orbit.Map {
	tst.Helper()
	assign := make(map[string]string, bio.NCodon)
	for i, codon := range bio.CodonOrder {
		assign[codon] = fmt.Sprintf("q%d", i/4)
	}
	m, err := orbit.New("quartets", assign)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	return m
}

func TestRatioUndefined(tst *testing.T) {
	m := quartetMap(tst)
	counts := make([]int64, bio.NCodon)
	for i := range counts {
		counts[i] = 1
	}
	rscu, err := RSCU(counts, m)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	_, err = Ratio(rscu, m)
	if !errors.Is(err, ErrUndefinedRatio) {
		tst.Error("Expected ErrUndefinedRatio, got", err)
	}
}

func TestCohortSkipsInvalidRows(tst *testing.T) {
	m := quartetMap(tst)
	cohort := &Cohort{}

	// valid row
	valid := countsFor(tst, map[string]int64{"UUU": 20})
	if _, err := cohort.Add(valid, m); err != nil {
		tst.Error("Error: ", err)
	}
	// empty row
	if _, err := cohort.Add(make([]int64, bio.NCodon), m); !errors.Is(err, ErrEmptyOrganism) {
		tst.Error("Expected ErrEmptyOrganism, got", err)
	}
	// constant-RSCU row
	flat := make([]int64, bio.NCodon)
	for i := range flat {
		flat[i] = 1
	}
	if _, err := cohort.Add(flat, m); !errors.Is(err, ErrUndefinedRatio) {
		tst.Error("Expected ErrUndefinedRatio, got", err)
	}

	if cohort.N() != 1 || cohort.SkippedEmpty() != 1 || cohort.SkippedUndefined() != 1 {
		tst.Errorf("Counts n=%d empty=%d undefined=%d, expected 1/1/1",
			cohort.N(), cohort.SkippedEmpty(), cohort.SkippedUndefined())
	}
	if _, ok := cohort.Median(); !ok {
		tst.Error("Median should be defined with one valid row")
	}
}

func TestCohortMedian(tst *testing.T) {
	cohort := &Cohort{}
	for _, r := range []float64{3, 1, 2} {
		cohort.AddRatio(r)
	}
	med, ok := cohort.Median()
	if !ok || med != 2 {
		tst.Errorf("Median=%v, expected 2", med)
	}
	cohort.AddRatio(4)
	med, _ = cohort.Median()
	if med != 2.5 {
		tst.Errorf("Median=%v, expected midpoint 2.5 for even cohort", med)
	}
}
