package nptest

import (
	"math"
	"testing"
)

const smallDiff = 1e-3

func TestMidranks(tst *testing.T) {
	ranks, tieTerm := midranks([]float64{3, 1, 2, 2})
	want := []float64{4, 1, 2.5, 2.5}
	for i := range want {
		if ranks[i] != want[i] {
			tst.Errorf("Rank[%d]=%v, expected %v", i, ranks[i], want[i])
		}
	}
	// one tie group of two: 2^3-2
	if tieTerm != 6 {
		tst.Errorf("Tie term %v, expected 6", tieTerm)
	}
}

func TestMannWhitneySeparated(tst *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 5, 6}

	u, p, err := MannWhitneyU(a, b, Less)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if u != 0 {
		tst.Errorf("U=%v, expected 0 for fully separated samples", u)
	}
	// z = (0 - 4.5 + 0.5)/sqrt(5.25), p = Phi(z)
	refP := 0.04045
	tst.Log("U=", u, ", p=", p, ", ref=", refP)
	if math.Abs(p-refP) > smallDiff {
		tst.Errorf("p=%v, expected %v", p, refP)
	}

	// the opposite direction is not supported by these data
	_, pGreater, err := MannWhitneyU(a, b, Greater)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if pGreater < 0.9 {
		tst.Error("p(greater) should be near 1, got", pGreater)
	}
}

func TestMannWhitneyDirections(tst *testing.T) {
	lo := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.15, 0.25}
	hi := []float64{1.1, 1.2, 1.3, 0.9, 1.5, 1.25, 1.4}

	_, pLess, err := MannWhitneyU(lo, hi, Less)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	_, pRev, err := MannWhitneyU(hi, lo, Less)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if pLess >= 0.05 {
		tst.Error("Expected small p for lo < hi, got", pLess)
	}
	if pRev <= 0.5 {
		tst.Error("Expected large p for hi < lo, got", pRev)
	}
}

func TestMannWhitneyErrors(tst *testing.T) {
	if _, _, err := MannWhitneyU(nil, []float64{1}, Less); err == nil {
		tst.Error("Expected error for empty sample")
	}
	if _, _, err := MannWhitneyU([]float64{1, 1}, []float64{1, 1}, Less); err == nil {
		tst.Error("Expected error for all-tied samples")
	}
}

func TestWilcoxonAllPositive(tst *testing.T) {
	a := []float64{2, 3, 4}
	b := []float64{1, 1, 1}

	w, p, err := WilcoxonSignedRank(a, b, Greater)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if w != 6 {
		tst.Errorf("W=%v, expected 6", w)
	}
	// z = (6-3)/sqrt(3.5), p = 1-Phi(z)
	refP := 0.05444
	tst.Log("W=", w, ", p=", p, ", ref=", refP)
	if math.Abs(p-refP) > smallDiff {
		tst.Errorf("p=%v, expected %v", p, refP)
	}
}

func TestWilcoxonPairedShift(tst *testing.T) {
	a := []float64{0.5, 0.6, 0.4, 0.7, 0.55, 0.45, 0.65, 0.5}
	b := make([]float64, len(a))
	for i, v := range a {
		b[i] = v + 0.2
	}

	_, pLess, err := WilcoxonSignedRank(a, b, Less)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if pLess >= 0.05 {
		tst.Error("Expected small p for a consistently below b, got", pLess)
	}
	_, pGreater, err := WilcoxonSignedRank(a, b, Greater)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if pGreater <= 0.9 {
		tst.Error("Expected p near 1 for the unsupported direction, got", pGreater)
	}
}

func TestWilcoxonErrors(tst *testing.T) {
	if _, _, err := WilcoxonSignedRank([]float64{1}, []float64{1, 2}, Less); err == nil {
		tst.Error("Expected error for length mismatch")
	}
	if _, _, err := WilcoxonSignedRank([]float64{1, 2}, []float64{1, 2}, Less); err == nil {
		tst.Error("Expected error for all-zero differences")
	}
}
