package cutg

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/evoldyn/codonfc/bio"
)

// CDSHeader is the exact, correct header of the CUTG CDS dumps:
// metadata fields followed by the 64 DNA codon columns.
var CDSHeader []string

// NMetaColumns is the number of metadata columns preceding the codon
// counts in a CDS dump.
const NMetaColumns = 12

func init() {
	CDSHeader = append(CDSHeader,
		"Division", "Assembly", "Taxid", "Species", "Organelle",
		"Translation Table", "# CDS", "# Codons",
		"GC%", "GC1%", "GC2%", "GC3%")
	CDSHeader = append(CDSHeader, bio.CUTGCodonOrder...)
}

// FixHeader repairs the malformed HIVE dump header, in which adjacent
// codon names have merged and all downstream parsing shifts left. The
// broken first line is dropped and replaced with the canonical
// header. Data lines must carry either the canonical column count or
// one extra trailing column (a known artifact, dropped); anything
// else is a SchemaError, never a silent misalignment. It returns the
// number of data rows written.
func FixHeader(name string, rd io.Reader, w io.Writer) (rows int, err error) {
	scanner := bufio.NewScanner(rd)
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)

	bw := bufio.NewWriter(w)
	if _, err = bw.WriteString(strings.Join(CDSHeader, "\t") + "\n"); err != nil {
		return 0, err
	}

	first := true
	lineNo := 0
	for scanner.Scan() {
		line := scanner.Text()
		lineNo++
		if first {
			// the broken header
			first = false
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := strings.Count(line, "\t") + 1
		switch n {
		case len(CDSHeader):
		case len(CDSHeader) + 1:
			// known artifact: one extraneous trailing column
			line = line[:strings.LastIndexByte(line, '\t')]
		default:
			return rows, &SchemaError{
				File:     name,
				Detail:   fmt.Sprintf("row %d: column count mismatch after header repair", lineNo),
				Expected: len(CDSHeader),
				Actual:   n,
			}
		}
		if _, err = bw.WriteString(line + "\n"); err != nil {
			return rows, err
		}
		rows++
	}
	if err = scanner.Err(); err != nil {
		return rows, err
	}
	return rows, bw.Flush()
}
