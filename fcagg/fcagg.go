/*

Fcagg collapses a header-fixed CUTG CDS table into one row per
(Taxid, Organelle): the 64 codon columns summed, plus the derived
#CDS and #Codons columns.

	fcagg -out refseq_codon_species.tsv refseq_cds_fixed.tsv

Accumulation happens in fixed-size chunks whose partial sums are
merged; the merge is associative and commutative, so the chunk size
only bounds memory, never changes the result.

*/
package main

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/op/go-logging"

	"github.com/evoldyn/codonfc/cutg"
)

// Logger settings.
var log = logging.MustGetLogger("fcagg")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	app = kingpin.New("fcagg", "aggregate CUTG CDS codon counts by (Taxid, Organelle)")

	inFileName = app.Arg("table", "header-fixed CDS TSV file").Required().ExistingFile()

	outFileName = app.Flag("out", "output file (default: stdout)").String()
	chunkSize   = app.Flag("chunk", "rows per accumulation chunk").Default("100000").Int()
	progress    = app.Flag("progress", "print a progress line every N rows (k/M suffixes accepted)").String()
	logLevel    = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")
)

var suffixRe = regexp.MustCompile(`^(\d+)([kKmM]?)$`)

// parseProgress accepts "500", "10k", "2M" and so on.
func parseProgress(text string) (int, error) {
	m := suffixRe.FindStringSubmatch(text)
	if m == nil {
		return 0, fmt.Errorf("expected integer with optional k/M suffix, got %q", text)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, err
	}
	switch m[2] {
	case "k", "K":
		n *= 1000
	case "m", "M":
		n *= 1000000
	}
	return n, nil
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
	logging.SetLevel(level, "fcagg")
	logging.SetLevel(level, "cutg")

	step := 0
	if *progress != "" {
		if step, err = parseProgress(*progress); err != nil {
			log.Fatal(err)
		}
	}

	f, err := os.Open(*inFileName)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	r, err := cutg.NewReader(*inFileName, f)
	if err != nil {
		log.Fatal(err)
	}

	total := cutg.NewAggregator()
	chunk := cutg.NewAggregator()
	rows := 0
	inChunk := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
		chunk.Add(rec)
		rows++
		inChunk++
		if inChunk >= *chunkSize {
			total.Merge(chunk)
			chunk = cutg.NewAggregator()
			inChunk = 0
		}
		if step > 0 && rows%step == 0 {
			log.Noticef("...%d rows", rows)
		}
	}
	total.Merge(chunk)

	if r.BadRows > 0 {
		log.Warningf("Skipped %d malformed rows", r.BadRows)
	}
	log.Noticef("Aggregated %d rows into %d (Taxid, Organelle) groups", rows, total.NRows())

	out := os.Stdout
	if *outFileName != "" {
		out, err = os.Create(*outFileName)
		if err != nil {
			log.Fatal(err)
		}
		defer out.Close()
	}
	if err = total.WriteTSV(out); err != nil {
		log.Fatal(err)
	}
	if *outFileName != "" {
		log.Noticef("Wrote %s", *outFileName)
	}

	log.Noticef("Running time: %v", time.Since(startTime))
}
