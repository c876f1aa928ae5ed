package cutg

import (
	"bufio"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/evoldyn/codonfc/bio"
)

// Aggregate is the per-(Taxid, Organelle) sum of codon counts with
// the number of aggregated CDS rows.
type Aggregate struct {
	Key
	Counts []int64 // aligned to bio.CodonOrder
	CDS    int64
}

// Codons returns the aggregate's total codon count.
func (a *Aggregate) Codons() int64 {
	var total int64
	for _, c := range a.Counts {
		total += c
	}
	return total
}

// Aggregator collapses CDS records into one row per (Taxid,
// Organelle). Accumulation is associative and commutative, so chunked
// inputs can be merged in any order with an identical result.
type Aggregator struct {
	rows map[Key]*Aggregate
}

// NewAggregator creates an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{rows: make(map[Key]*Aggregate)}
}

// Add accumulates one record.
func (a *Aggregator) Add(rec *Record) {
	key := rec.Key()
	acc := a.rows[key]
	if acc == nil {
		acc = &Aggregate{Key: key, Counts: make([]int64, bio.NCodon)}
		a.rows[key] = acc
	}
	for i, c := range rec.Counts {
		acc.Counts[i] += c
	}
	acc.CDS++
}

// Merge folds another aggregator's partial sums into this one.
func (a *Aggregator) Merge(b *Aggregator) {
	for key, other := range b.rows {
		acc := a.rows[key]
		if acc == nil {
			acc = &Aggregate{Key: key, Counts: make([]int64, bio.NCodon)}
			a.rows[key] = acc
		}
		for i, c := range other.Counts {
			acc.Counts[i] += c
		}
		acc.CDS += other.CDS
	}
}

// NRows returns the number of distinct keys.
func (a *Aggregator) NRows() int { return len(a.rows) }

// Rows returns the aggregates sorted by Taxid then Organelle.
func (a *Aggregator) Rows() []*Aggregate {
	rows := make([]*Aggregate, 0, len(a.rows))
	for _, acc := range a.rows {
		rows = append(rows, acc)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Taxid != rows[j].Taxid {
			return rows[i].Taxid < rows[j].Taxid
		}
		return rows[i].Organelle < rows[j].Organelle
	})
	return rows
}

// WriteTSV writes the aggregate table: Taxid, Organelle, the 64 DNA
// codon columns in CUTG order, and the derived #CDS and #Codons
// columns.
func (a *Aggregator) WriteTSV(w io.Writer) error {
	bw := bufio.NewWriter(w)

	header := make([]string, 0, bio.NCodon+4)
	header = append(header, "Taxid", "Organelle")
	header = append(header, bio.CUTGCodonOrder...)
	header = append(header, "#CDS", "#Codons")
	if _, err := bw.WriteString(strings.Join(header, "\t") + "\n"); err != nil {
		return err
	}

	fields := make([]string, len(header))
	for _, acc := range a.Rows() {
		fields = fields[:0]
		fields = append(fields, acc.Taxid, acc.Organelle)
		for i := range bio.CUTGCodonOrder {
			fields = append(fields, strconv.FormatInt(acc.Counts[cutgToInternal[i]], 10))
		}
		fields = append(fields,
			strconv.FormatInt(acc.CDS, 10),
			strconv.FormatInt(acc.Codons(), 10))
		if _, err := bw.WriteString(strings.Join(fields, "\t") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
