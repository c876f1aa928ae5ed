package orbit

import (
	"bufio"
	"io"
	"strings"

	"github.com/evoldyn/codonfc/bio"
)

// Read parses an orbit map from a two-column table (codon, orbit
// label), comma or tab separated, exactly 64 data rows. A single
// header line is tolerated if its first field is not a codon. Codons
// may be in the DNA or RNA alphabet.
func Read(name string, rd io.Reader) (*Map, error) {
	assign := make(map[string]string, bio.NCodon)
	scanner := bufio.NewScanner(rd)
	lineNo := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		lineNo++
		if line == "" {
			continue
		}
		fields := splitRow(line)
		if len(fields) < 2 {
			return nil, malformedf("%s:%d: expected two columns, got %q", name, lineNo, line)
		}
		codon := strings.TrimSpace(fields[0])
		label := strings.TrimSpace(fields[1])
		if _, err := bio.ToRNA(codon); err != nil {
			// header line
			if len(assign) == 0 {
				continue
			}
			return nil, malformedf("%s:%d: %v", name, lineNo, err)
		}
		if _, ok := assign[codon]; ok {
			return nil, malformedf("%s:%d: codon %s listed twice", name, lineNo, codon)
		}
		assign[codon] = label
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return New(name, assign)
}

func splitRow(line string) []string {
	if strings.ContainsRune(line, '\t') {
		return strings.Split(line, "\t")
	}
	return strings.Split(line, ",")
}
