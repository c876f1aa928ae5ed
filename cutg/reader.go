package cutg

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/evoldyn/codonfc/bio"
)

// Reader streams organism records from a tab-separated codon-usage
// table. The 64 codon columns are located by name (DNA or RNA
// triplets) and may sit anywhere in the header; identifying columns
// are matched by their CUTG names, falling back to the first column
// as the species key. A table without exactly the 64-codon column set
// is rejected with a SchemaError.
type Reader struct {
	name    string
	scanner *bufio.Scanner

	nCols    int
	codonCol []int // bio.CodonOrder position -> column index

	taxidCol, speciesCol, organelleCol int

	lineNo int
	// BadRows counts skipped rows with a wrong field count.
	BadRows int
}

// NewReader parses the header and prepares record streaming.
func NewReader(name string, rd io.Reader) (*Reader, error) {
	r := &Reader{
		name:     name,
		scanner:  bufio.NewScanner(rd),
		taxidCol: -1, speciesCol: -1, organelleCol: -1,
	}
	r.scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)

	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return nil, err
		}
		return nil, &SchemaError{File: name, Detail: "empty table", Expected: 1, Actual: 0}
	}
	header := strings.Split(r.scanner.Text(), "\t")
	r.lineNo = 1
	r.nCols = len(header)

	r.codonCol = make([]int, bio.NCodon)
	for i := range r.codonCol {
		r.codonCol[i] = -1
	}
	nCodons := 0
	for col, field := range header {
		field = strings.TrimSpace(field)
		switch field {
		case "Taxid":
			r.taxidCol = col
			continue
		case "Species", "Species_Name":
			r.speciesCol = col
			continue
		case "Organelle":
			r.organelleCol = col
			continue
		}
		if len(field) != 3 {
			continue
		}
		rna, err := bio.ToRNA(field)
		if err != nil {
			continue
		}
		pos := bio.CodonIndex[rna]
		if r.codonCol[pos] != -1 {
			return nil, &SchemaError{
				File: name, Detail: "codon column " + field + " duplicated",
				Expected: 1, Actual: 2,
			}
		}
		r.codonCol[pos] = col
		nCodons++
	}
	if nCodons != bio.NCodon {
		return nil, &SchemaError{
			File: name, Detail: "codon column set incomplete",
			Expected: bio.NCodon, Actual: nCodons,
		}
	}
	if r.taxidCol == -1 && r.speciesCol == -1 {
		// species aggregates keep the key in the first column
		r.speciesCol = 0
	}
	return r, nil
}

// Read returns the next record, or io.EOF at the end of the table.
// Rows with a wrong field count are skipped and counted in BadRows.
func (r *Reader) Read() (*Record, error) {
	for r.scanner.Scan() {
		r.lineNo++
		line := r.scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != r.nCols {
			log.Debugf("%s:%d: %d fields, expected %d; row skipped",
				r.name, r.lineNo, len(fields), r.nCols)
			r.BadRows++
			continue
		}
		rec := &Record{Counts: make([]int64, bio.NCodon)}
		if r.taxidCol >= 0 {
			rec.Taxid = fields[r.taxidCol]
		}
		if r.speciesCol >= 0 {
			rec.Species = fields[r.speciesCol]
		}
		if r.organelleCol >= 0 {
			rec.Organelle = fields[r.organelleCol]
		}
		for pos, col := range r.codonCol {
			rec.Counts[pos] = parseCount(fields[col])
		}
		return rec, nil
	}
	if err := r.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

// ReadAll reads the remaining records.
func (r *Reader) ReadAll() ([]*Record, error) {
	var recs []*Record
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return recs, nil
		}
		if err != nil {
			return recs, err
		}
		recs = append(recs, rec)
	}
}

// parseCount reads a count cell; blanks and non-numeric cells count
// as zero, fractional values are truncated.
func parseCount(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n < 0 {
			return 0
		}
		return n
	}
	// aggregated tables occasionally carry float-formatted counts
	if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 {
		return int64(f)
	}
	return 0
}
