// Package cutg reads and aggregates CUTG codon-usage tables: per-CDS
// or per-species rows of 64 codon counts with identifying metadata
// columns, including detection and repair of the known malformed
// header of the HIVE dumps.
package cutg

import (
	"fmt"

	"github.com/op/go-logging"

	"github.com/evoldyn/codonfc/bio"
)

// log is the package logging variable.
var log = logging.MustGetLogger("cutg")

// SchemaError indicates a table whose codon columns do not match the
// expected 64-codon set, or a corrupted header shape.
type SchemaError struct {
	File     string
	Detail   string
	Expected int
	Actual   int
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %s: expected %d, got %d", e.File, e.Detail, e.Expected, e.Actual)
}

// Record is one organism row: identifying key columns plus 64 codon
// counts aligned to bio.CodonOrder. Blank or non-numeric count cells
// are read as zero.
type Record struct {
	Taxid     string
	Species   string
	Organelle string
	Counts    []int64
}

// Total returns the organism's total codon count.
func (r *Record) Total() int64 {
	var total int64
	for _, c := range r.Counts {
		total += c
	}
	return total
}

// Key identifies an aggregation cohort.
type Key struct {
	Taxid     string
	Organelle string
}

// Key returns the record's aggregation key.
func (r *Record) Key() Key {
	return Key{Taxid: r.Taxid, Organelle: r.Organelle}
}

// cutgToInternal maps CUTG column positions to bio.CodonOrder
// positions.
var cutgToInternal []int

func init() {
	cutgToInternal = make([]int, bio.NCodon)
	for i, dna := range bio.CUTGCodonOrder {
		rna, err := bio.ToRNA(dna)
		if err != nil {
			panic(err)
		}
		cutgToInternal[i] = bio.CodonIndex[rna]
	}
}
