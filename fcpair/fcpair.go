/*

Fcpair compares the FC-ratio distributions of two cohorts, e.g. the
nuclear and mitochondrial genomes of the same species under their
respective genetic codes. It runs an unpaired Mann-Whitney rank-sum
test (first cohort stochastically less than the second) and, for
entities present in both cohorts, a Wilcoxon signed-rank test on the
paired differences.

	fcpair -map-a orbit_map_ciliate.csv -map-b orbit_map.csv \
	    nuclear_species.tsv mito_species.tsv

The p-values are reported against the -alpha threshold; no action is
taken on them.

*/
package main

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/op/go-logging"

	"gonum.org/v1/gonum/stat"

	"github.com/evoldyn/codonfc/cutg"
	"github.com/evoldyn/codonfc/fc"
	"github.com/evoldyn/codonfc/nptest"
	"github.com/evoldyn/codonfc/orbit"
)

// Logger settings.
var log = logging.MustGetLogger("fcpair")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	app = kingpin.New("fcpair", "paired FC comparison of two cohorts")

	tableA = app.Arg("table-a", "first cohort TSV (e.g. nuclear)").Required().ExistingFile()
	tableB = app.Arg("table-b", "second cohort TSV (e.g. mitochondrial)").Required().ExistingFile()

	mapA  = app.Flag("map-a", "orbit map file for the first cohort").String()
	mapB  = app.Flag("map-b", "orbit map file for the second cohort").String()
	codeA = app.Flag("code-a", "builtin orbit map for the first cohort").Default("standard").
		Enum("standard", "ciliate")
	codeB = app.Flag("code-b", "builtin orbit map for the second cohort").Default("standard").
		Enum("standard", "ciliate")

	alpha    = app.Flag("alpha", "significance threshold for reporting").Default("0.05").Float64()
	jsonF    = app.Flag("json", "write json output to a file").String()
	logLevel = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")
)

// CohortSummary describes one cohort's FC-ratio distribution.
type CohortSummary struct {
	Table            string  `json:"table"`
	Map              string  `json:"map"`
	Valid            int     `json:"valid"`
	SkippedEmpty     int     `json:"skippedEmpty"`
	SkippedUndefined int     `json:"skippedUndefined"`
	Mean             float64 `json:"mean"`
	Std              float64 `json:"std"`
	Median           float64 `json:"median"`
}

// TestSummary describes one hypothesis test result.
type TestSummary struct {
	Statistic float64 `json:"statistic"`
	P         float64 `json:"p"`
	N         int     `json:"n"`
	Rejected  bool    `json:"rejected"`
}

// PairSummary is the full fcpair output.
type PairSummary struct {
	A           *CohortSummary `json:"a"`
	B           *CohortSummary `json:"b"`
	Alpha       float64        `json:"alpha"`
	MannWhitney *TestSummary   `json:"mannWhitney,omitempty"`
	Wilcoxon    *TestSummary   `json:"wilcoxon,omitempty"`
	NPaired     int            `json:"nPaired"`
}

// cohort holds per-entity FC ratios of one table.
type cohort struct {
	summary *CohortSummary
	ratios  []float64
	byKey   map[string]float64
}

func loadMap(fileName, builtin string) *orbit.Map {
	if fileName != "" {
		f, err := os.Open(fileName)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		m, err := orbit.Read(fileName, f)
		if err != nil {
			log.Fatal(err)
		}
		return m
	}
	m, err := orbit.Builtin(builtin)
	if err != nil {
		log.Fatal(err)
	}
	return m
}

// readCohort computes FC ratios for every organism in the table,
// keyed by Taxid (or species) for pairing. Only the first record per
// key enters the pairing.
func readCohort(table string, m *orbit.Map) *cohort {
	log.Noticef("Reading %s (orbit map %s) ...", table, m.Name())

	f, err := os.Open(table)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	r, err := cutg.NewReader(table, f)
	if err != nil {
		log.Fatal(err)
	}

	c := &cohort{
		summary: &CohortSummary{Table: table, Map: m.Name()},
		byKey:   make(map[string]float64),
	}
	fcc := &fc.Cohort{}
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
		ratio, err := fcc.Add(rec.Counts, m)
		if err != nil {
			switch err {
			case fc.ErrEmptyOrganism, fc.ErrUndefinedRatio:
				continue
			default:
				log.Fatal(err)
			}
		}
		key := rec.Taxid
		if key == "" {
			key = rec.Species
		}
		if _, ok := c.byKey[key]; !ok {
			c.byKey[key] = ratio
		}
	}

	c.ratios = fcc.Ratios()
	c.summary.Valid = fcc.N()
	c.summary.SkippedEmpty = fcc.SkippedEmpty()
	c.summary.SkippedUndefined = fcc.SkippedUndefined()
	if med, ok := fcc.Median(); ok {
		c.summary.Median = med
	}
	if len(c.ratios) > 1 {
		c.summary.Mean, c.summary.Std = stat.MeanStdDev(c.ratios, nil)
	} else if len(c.ratios) == 1 {
		c.summary.Mean = c.ratios[0]
	}

	log.Noticef("  %d valid organisms (skipped %d empty, %d undefined)",
		c.summary.Valid, c.summary.SkippedEmpty, c.summary.SkippedUndefined)
	log.Noticef("  FC ratio: mean %.3f +- %.3f, median %.3f",
		c.summary.Mean, c.summary.Std, c.summary.Median)
	return c
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	startTime := time.Now()

	logging.SetFormatter(formatter)
	logging.SetBackend(logging.NewLogBackend(os.Stderr, "", 0))
	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	for _, pkg := range []string{"fcpair", "fc", "cutg"} {
		logging.SetLevel(level, pkg)
	}

	a := readCohort(*tableA, loadMap(*mapA, *codeA))
	b := readCohort(*tableB, loadMap(*mapB, *codeB))

	summary := &PairSummary{A: a.summary, B: b.summary, Alpha: *alpha}

	// unpaired rank-sum test: A stochastically less than B
	if len(a.ratios) > 0 && len(b.ratios) > 0 {
		u, p, err := nptest.MannWhitneyU(a.ratios, b.ratios, nptest.Less)
		if err != nil {
			log.Error("Mann-Whitney test failed:", err)
		} else {
			summary.MannWhitney = &TestSummary{
				Statistic: u, P: p,
				N:        len(a.ratios) + len(b.ratios),
				Rejected: p < *alpha,
			}
			log.Noticef("Mann-Whitney U (A < B): U = %.1f, P = %.3g", u, p)
			if p < *alpha {
				log.Noticef("  A's ratios are significantly lower at alpha=%v", *alpha)
			} else {
				log.Noticef("  no significant shift at alpha=%v", *alpha)
			}
		}
	}

	// paired signed-rank test restricted to shared entities
	pairedA := make([]float64, 0, len(a.byKey))
	pairedB := make([]float64, 0, len(a.byKey))
	for key, ra := range a.byKey {
		if rb, ok := b.byKey[key]; ok {
			pairedA = append(pairedA, ra)
			pairedB = append(pairedB, rb)
		}
	}
	summary.NPaired = len(pairedA)
	log.Noticef("Entities present in both cohorts: %d", summary.NPaired)

	if summary.NPaired > 1 {
		w, p, err := nptest.WilcoxonSignedRank(pairedA, pairedB, nptest.Less)
		if err != nil {
			log.Error("Wilcoxon test failed:", err)
		} else {
			summary.Wilcoxon = &TestSummary{
				Statistic: w, P: p,
				N:        summary.NPaired,
				Rejected: p < *alpha,
			}
			log.Noticef("Wilcoxon signed-rank (paired, A < B): W = %.1f, P = %.3g", w, p)
		}
	}

	if *jsonF != "" {
		j, err := json.Marshal(summary)
		if err != nil {
			log.Error(err)
		} else {
			f, err := os.Create(*jsonF)
			if err != nil {
				log.Error("Error creating json output file:", err)
			} else {
				f.Write(j)
				f.Close()
			}
		}
	}

	log.Noticef("Running time: %v", time.Since(startTime))
}
