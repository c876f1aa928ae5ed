/*

Fccheck audits First-Classness of codon usage: it reads codon-usage
tables, converts every organism's counts to RSCU, computes the
intra/inter orbit dispersion ratio per organism and reports the cohort
median, optionally locating it in a shuffled-orbit null distribution.

The basic usage of fccheck looks like this:

	fccheck genbank_species.tsv refseq_species.tsv

, this will audit both tables against the standard-code orbit map.

You can add the null model and plots:

	fccheck -null 10000 -plots refseq_species.tsv

To see all the options run:

	fccheck -h

*/
package main

import (
	"encoding/json"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/op/go-logging"

	"github.com/evoldyn/codonfc/checkpoint"
	"github.com/evoldyn/codonfc/cutg"
	"github.com/evoldyn/codonfc/fc"
	"github.com/evoldyn/codonfc/fcplot"
	"github.com/evoldyn/codonfc/orbit"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = "branch: " + gitbranch + ", revision: " + githash + ", build time: " + buildstamp

// Logger settings.
var log = logging.MustGetLogger("fccheck")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	app = kingpin.New("fccheck", "First-Classness audit of codon-usage tables").Version(version)

	tables = app.Arg("tables", "codon-usage species TSV files").Required().ExistingFiles()

	mapFileName = app.Flag("map", "orbit map file (two columns: codon, orbit label); overrides -code").String()
	code        = app.Flag("code", "builtin orbit map variant").Default("standard").
			Enum("standard", "ciliate")

	null      = app.Flag("null", "number of shuffled-orbit null trials (0 disables the null model)").Default("0").Int()
	direction = app.Flag("direction", "tail of the one-sided null test").Default("lower").
			Enum("lower", "upper")
	sample      = app.Flag("sample", "subsample N organisms for the null model (0: all)").Default("0").Int()
	seed        = app.Flag("seed", "random generator seed, default time based").Default("-1").Int64()
	checkpointF = app.Flag("checkpoint", "checkpoint file for resumable null-model runs").String()

	families = app.Flag("families", "report per-orbit dispersion breakdown").Bool()

	progress = app.Flag("progress", "print a heartbeat every N rows or null trials").Default("1000").Int()
	plots    = app.Flag("plots", "write ratio and null histograms to the output directory").Bool()
	outDir   = app.Flag("out", "output directory for plots").Default("fc_out").String()

	outLogF  = app.Flag("log", "write log to a file").String()
	jsonF    = app.Flag("json", "write json output to a file").String()
	logLevel = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")
)

// loadMap returns the orbit map from -map or the builtin variant.
func loadMap() *orbit.Map {
	if *mapFileName != "" {
		f, err := os.Open(*mapFileName)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		m, err := orbit.Read(*mapFileName, f)
		if err != nil {
			log.Fatal(err)
		}
		return m
	}
	m, err := orbit.Builtin(*code)
	if err != nil {
		log.Fatal(err)
	}
	return m
}

// readTables accumulates the count rows and the FC-ratio cohort over
// all input tables.
func readTables(m *orbit.Map, summary *RunSummary) ([][]int64, *fc.Cohort) {
	rows := make([][]int64, 0, 1024)
	cohort := &fc.Cohort{}

	for _, tbl := range *tables {
		log.Noticef("Reading %s ...", tbl)
		f, err := os.Open(tbl)
		if err != nil {
			log.Fatal(err)
		}
		r, err := cutg.NewReader(tbl, f)
		if err != nil {
			f.Close()
			log.Fatal(err)
		}
		for {
			rec, err := r.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				f.Close()
				log.Fatal(err)
			}
			rows = append(rows, rec.Counts)
			summary.Rows++
			if *progress > 0 && summary.Rows%*progress == 0 {
				log.Infof("  processed %d rows ...", summary.Rows)
			}
			if _, err = cohort.Add(rec.Counts, m); err != nil {
				switch err {
				case fc.ErrEmptyOrganism:
					log.Debugf("    skipped empty row %s", rec.Species)
				case fc.ErrUndefinedRatio:
					log.Debugf("    skipped undefined-ratio row %s", rec.Species)
				default:
					f.Close()
					log.Fatal(err)
				}
			}
		}
		summary.BadRows += r.BadRows
		f.Close()
	}
	return rows, cohort
}

// nullOptions assembles the null-model configuration from the flags.
// The -progress flag paces the trial heartbeat the same way it paces
// row reading.
func nullOptions() fc.NullOptions {
	dir := fc.Lower
	if *direction == "upper" {
		dir = fc.Upper
	}
	return fc.NullOptions{
		Trials:    *null,
		Seed:      *seed,
		Direction: dir,
		Progress:  *progress,
	}
}

func runNull(rows [][]int64, m *orbit.Map, observed float64, summary *RunSummary) {
	if *sample > 0 && *sample < len(rows) {
		log.Noticef("Subsampling %d of %d organisms for the null model", *sample, len(rows))
		rng := rand.New(rand.NewSource(*seed))
		rows = fc.Subsample(rows, *sample, rng)
	}

	opt := nullOptions()
	if *checkpointF != "" {
		db, err := checkpoint.Open(*checkpointF)
		if err != nil {
			log.Fatal("Error opening checkpoint file:", err)
		}
		defer db.Close()
		opt.Checkpoint = checkpoint.NewIO(db, []byte(m.Name()), 30)
	}

	res, err := fc.RunNull(rows, m, observed, opt)
	if err != nil {
		if _, ok := err.(*fc.DegenerateNullError); ok {
			log.Errorf("Null model degenerate, Z-score and P undefined: %v", err)
			summary.NullUndefined = err.Error()
			return
		}
		log.Fatal(err)
	}
	summary.Null = res
	log.Noticef("Null-model Z = %.2f, empirical P = %.4g (%d trials, %d finite)",
		res.Z, res.P, res.Trials, res.Finite)

	if *plots {
		name := filepath.Join(*outDir, "null_hist.png")
		if err := fcplot.Hist(res.Values, 40, "", "median sigma_intra/sigma_inter (null)", name); err != nil {
			log.Error("Error writing null histogram:", err)
		} else {
			log.Notice("Null hist -> ", name)
		}
	}
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	startTime := time.Now()

	// logging
	logging.SetFormatter(formatter)

	var backend *logging.LogBackend
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Error creating log file:", err)
		}
		defer f.Close()
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	for _, pkg := range []string{"fccheck", "fc", "cutg", "checkpoint"} {
		logging.SetLevel(level, pkg)
	}

	log.Info(version)
	log.Info("Command line:", os.Args)

	if *seed == -1 {
		*seed = time.Now().UnixNano()
		log.Debug("Random seed from time")
	}
	log.Infof("Random seed=%v", *seed)

	m := loadMap()
	log.Infof("Orbit map: %s, %d orbits", m.Name(), m.NOrbits())

	summary := &RunSummary{Map: m.Name(), Tables: *tables}
	rows, cohort := readTables(m, summary)

	summary.Valid = cohort.N()
	summary.SkippedEmpty = cohort.SkippedEmpty()
	summary.SkippedUndefined = cohort.SkippedUndefined()

	med, ok := cohort.Median()
	if !ok {
		log.Fatal("No valid rows; check the orbit map and input tables.")
	}
	summary.Median = med
	log.Noticef("Median sigma_intra/sigma_inter = %.3f (n = %d, skipped %d empty, %d undefined)",
		med, cohort.N(), cohort.SkippedEmpty(), cohort.SkippedUndefined())

	if *plots {
		if err := os.MkdirAll(*outDir, 0777); err != nil {
			log.Fatal(err)
		}
		name := filepath.Join(*outDir, "ratio_hist.png")
		if err := fcplot.Hist(cohort.Ratios(), 40, "", "sigma_intra/sigma_inter", name); err != nil {
			log.Error("Error writing ratio histogram:", err)
		} else {
			log.Notice("Ratio hist -> ", name)
		}
	}

	if *families {
		stats := fc.FamilyDispersion(rows, m)
		summary.Families = stats
		for _, s := range stats {
			log.Noticef("Orbit %-6s size=%d n=%d median CV=%.3f", s.Label, s.Size, s.N, s.MedianCV)
		}
	}

	if *null > 0 {
		runNull(rows, m, med, summary)
	}

	call := &CallSummary{
		Version:     version,
		CommandLine: os.Args,
		Seed:        *seed,
		TotalTime:   time.Since(startTime).Seconds(),
		Run:         summary,
	}
	if *jsonF != "" {
		j, err := json.Marshal(call)
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
