// Package bio provides genetic-code fundamentals: the fixed 64-codon
// orderings, DNA/RNA codon normalization and the genetic-code variants
// used for orbit construction.
package bio

import (
	"fmt"
	"strings"
)

// NCodon is the number of codons.
const NCodon = 64

var (
	// CodonOrder is the analysis-internal codon ordering: all 64 RNA
	// codons in UCAG-lexicographic order.
	CodonOrder []string

	// CUTGCodonOrder is the exact DNA codon column order of the CUTG
	// CDS dumps. It differs from CodonOrder; columns are matched by
	// name, never by position.
	CUTGCodonOrder = []string{
		"TTT", "TTC", "TTA", "TTG",
		"CTT", "CTC", "CTA", "CTG",
		"ATT", "ATC", "ATA", "ATG",
		"GTT", "GTC", "GTA", "GTG",
		"TAT", "TAC", "TAA", "TAG",
		"CAT", "CAC", "CAA", "CAG",
		"AAT", "AAC", "AAA", "AAG",
		"GAT", "GAC", "GAA", "GAG",
		"TCT", "TCC", "TCA", "TCG",
		"CCT", "CCC", "CCA", "CCG",
		"ACT", "ACC", "ACA", "ACG",
		"GCT", "GCC", "GCA", "GCG",
		"TGT", "TGC", "TGA", "TGG",
		"CGT", "CGC", "CGA", "CGG",
		"AGT", "AGC", "AGA", "AGG",
		"GGT", "GGC", "GGA", "GGG",
	}

	// CodonIndex maps an RNA codon to its position in CodonOrder.
	CodonIndex map[string]int
)

func init() {
	const rna = "UCAG"
	CodonOrder = make([]string, 0, NCodon)
	for _, a := range rna {
		for _, b := range rna {
			for _, c := range rna {
				CodonOrder = append(CodonOrder, string([]rune{a, b, c}))
			}
		}
	}
	CodonIndex = make(map[string]int, NCodon)
	for i, codon := range CodonOrder {
		CodonIndex[codon] = i
	}
}

// ToRNA normalizes a codon string to the RNA alphabet (UCAG, capital
// letters). An error is returned if the string is not a valid codon in
// either alphabet, e.g. mixed T/U or a non-nucleotide letter.
func ToRNA(codon string) (string, error) {
	if len(codon) != 3 {
		return "", fmt.Errorf("codon %q: length %d, expected 3", codon, len(codon))
	}
	c := strings.ToUpper(codon)
	if strings.ContainsRune(c, 'T') && strings.ContainsRune(c, 'U') {
		return "", fmt.Errorf("codon %q mixes DNA and RNA alphabets", codon)
	}
	c = strings.Replace(c, "T", "U", -1)
	if _, ok := CodonIndex[c]; !ok {
		return "", fmt.Errorf("codon %q is not a valid nucleotide triplet", codon)
	}
	return c, nil
}

// ToDNA normalizes a codon string to the DNA alphabet (TCAG, capital
// letters).
func ToDNA(codon string) (string, error) {
	c, err := ToRNA(codon)
	if err != nil {
		return "", err
	}
	return strings.Replace(c, "U", "T", -1), nil
}

// GeneticCode is a codon to amino-acid assignment. Codons are in the
// RNA alphabet, amino acids are one-letter capitals, '*' is stop.
type GeneticCode struct {
	Name      string
	AminoAcid map[string]byte
}

// StandardCode is the standard nuclear genetic code.
var StandardCode = &GeneticCode{
	Name: "standard",
	AminoAcid: map[string]byte{
		"UUU": 'F', "UUC": 'F', "UUA": 'L', "UUG": 'L',
		"UCU": 'S', "UCC": 'S', "UCA": 'S', "UCG": 'S',
		"UAU": 'Y', "UAC": 'Y', "UAA": '*', "UAG": '*',
		"UGU": 'C', "UGC": 'C', "UGA": '*', "UGG": 'W',
		"CUU": 'L', "CUC": 'L', "CUA": 'L', "CUG": 'L',
		"CCU": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
		"CAU": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
		"CGU": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',
		"AUU": 'I', "AUC": 'I', "AUA": 'I', "AUG": 'M',
		"ACU": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
		"AAU": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
		"AGU": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',
		"GUU": 'V', "GUC": 'V', "GUA": 'V', "GUG": 'V',
		"GCU": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
		"GAU": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
		"GGU": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
	},
}

// CiliateCode is the ciliate nuclear genetic code: UAA and UAG are
// reassigned from stop to glutamine, leaving UGA as the only stop.
var CiliateCode *GeneticCode

// AminoAcidNames maps one-letter amino-acid symbols to three-letter
// names ('*' is Stop).
var AminoAcidNames = map[byte]string{
	'A': "Ala", 'R': "Arg", 'N': "Asn", 'D': "Asp", 'C': "Cys",
	'Q': "Gln", 'E': "Glu", 'G': "Gly", 'H': "His", 'I': "Ile",
	'L': "Leu", 'K': "Lys", 'M': "Met", 'F': "Phe", 'P': "Pro",
	'S': "Ser", 'T': "Thr", 'W': "Trp", 'Y': "Tyr", 'V': "Val",
	'*': "Stop",
}

func init() {
	aa := make(map[string]byte, NCodon)
	for codon, a := range StandardCode.AminoAcid {
		aa[codon] = a
	}
	aa["UAA"] = 'Q'
	aa["UAG"] = 'Q'
	CiliateCode = &GeneticCode{Name: "ciliate", AminoAcid: aa}
}

// IsStopCodon tests if an RNA codon is a stop codon under the code.
func (gc *GeneticCode) IsStopCodon(codon string) bool {
	return gc.AminoAcid[codon] == '*'
}

// Synonyms returns amino acid to codon lists under the code, codons in
// CodonOrder order.
func (gc *GeneticCode) Synonyms() map[byte][]string {
	syn := make(map[byte][]string, 21)
	for _, codon := range CodonOrder {
		aa := gc.AminoAcid[codon]
		syn[aa] = append(syn[aa], codon)
	}
	return syn
}
