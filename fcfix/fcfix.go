/*

Fcfix repairs the malformed header of a CUTG HIVE dump. The dump's
first line has adjacent codon names accidentally merged, which shifts
all downstream parsing left; fcfix replaces it with the canonical
76-column header and drops the known extraneous trailing column.

	fcfix refseq_cds.tsv

writes refseq_cds_fixed.tsv next to the input.

*/
package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/op/go-logging"

	"github.com/evoldyn/codonfc/cutg"
)

// Logger settings.
var log = logging.MustGetLogger("fcfix")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	app = kingpin.New("fcfix", "repair the malformed CUTG HIVE dump header")

	inFileName  = app.Arg("table", "broken CDS TSV file").Required().ExistingFile()
	outFileName = app.Flag("out", "output file (default: <input>_fixed.tsv)").String()
)

// fixedName derives the output name: refseq_cds.tsv -> refseq_cds_fixed.tsv.
func fixedName(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_fixed" + ext
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	startTime := time.Now()

	logging.SetFormatter(formatter)
	logging.SetBackend(logging.NewLogBackend(os.Stderr, "", 0))

	outPath := *outFileName
	if outPath == "" {
		outPath = fixedName(*inFileName)
	}

	log.Noticef("Reading broken file: %s", *inFileName)
	log.Noticef("Writing fixed file:  %s", outPath)

	in, err := os.Open(*inFileName)
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	rows, err := cutg.FixHeader(*inFileName, in, out)
	if err != nil {
		log.Fatal(err)
	}

	log.Noticef("Header fixed, %d rows written. Downstream workflows should now use:", rows)
	log.Noticef("    %s", outPath)
	log.Noticef("Running time: %v", time.Since(startTime))
}
