package bio

import (
	"testing"
)

func TestCodonOrder(tst *testing.T) {
	if len(CodonOrder) != NCodon {
		tst.Errorf("Expected %d codons, got %d", NCodon, len(CodonOrder))
	}
	if CodonOrder[0] != "UUU" || CodonOrder[63] != "GGG" {
		tst.Error("Wrong codon ordering:", CodonOrder[0], CodonOrder[63])
	}
	seen := make(map[string]bool, NCodon)
	for _, codon := range CodonOrder {
		if seen[codon] {
			tst.Error("Duplicated codon:", codon)
		}
		seen[codon] = true
	}
}

func TestCUTGOrderMatchesCodonSet(tst *testing.T) {
	if len(CUTGCodonOrder) != NCodon {
		tst.Errorf("Expected %d CUTG columns, got %d", NCodon, len(CUTGCodonOrder))
	}
	for _, codon := range CUTGCodonOrder {
		rna, err := ToRNA(codon)
		if err != nil {
			tst.Error("Error: ", err)
		}
		if _, ok := CodonIndex[rna]; !ok {
			tst.Error("CUTG codon not in CodonOrder:", codon)
		}
	}
}

func TestToRNA(tst *testing.T) {
	cases := map[string]string{
		"TTT": "UUU",
		"uuu": "UUU",
		"AtG": "AUG",
		"GGG": "GGG",
	}
	for in, want := range cases {
		got, err := ToRNA(in)
		if err != nil {
			tst.Error("Error: ", err)
		}
		if got != want {
			tst.Errorf("ToRNA(%q)=%q, expected %q", in, got, want)
		}
	}
	for _, bad := range []string{"", "AU", "AUGC", "TUU", "ANG"} {
		if _, err := ToRNA(bad); err == nil {
			tst.Errorf("Expected error for %q", bad)
		}
	}
}

func TestToDNA(tst *testing.T) {
	got, err := ToDNA("UGA")
	if err != nil {
		tst.Error("Error: ", err)
	}
	if got != "TGA" {
		tst.Errorf("ToDNA(UGA)=%q, expected TGA", got)
	}
}

func TestGeneticCodes(tst *testing.T) {
	if !StandardCode.IsStopCodon("UAA") || !StandardCode.IsStopCodon("UAG") || !StandardCode.IsStopCodon("UGA") {
		tst.Error("Standard code should have three stop codons")
	}
	if CiliateCode.IsStopCodon("UAA") || CiliateCode.IsStopCodon("UAG") {
		tst.Error("Ciliate code reassigns UAA/UAG to Gln")
	}
	if !CiliateCode.IsStopCodon("UGA") {
		tst.Error("UGA remains a stop in the ciliate code")
	}
	if CiliateCode.AminoAcid["UAA"] != 'Q' {
		tst.Error("UAA should be Gln in the ciliate code")
	}
	// the override must not leak into the standard code
	if StandardCode.AminoAcid["UAA"] != '*' {
		tst.Error("Standard code modified by ciliate construction")
	}
}

func TestSynonyms(tst *testing.T) {
	syn := StandardCode.Synonyms()
	sizes := map[byte]int{'M': 1, 'W': 1, 'K': 2, 'I': 3, '*': 3, 'V': 4, 'L': 6, 'S': 6, 'R': 6}
	for aa, n := range sizes {
		if len(syn[aa]) != n {
			tst.Errorf("Amino acid %c: %d synonyms, expected %d", aa, len(syn[aa]), n)
		}
	}
	total := 0
	for _, codons := range syn {
		total += len(codons)
	}
	if total != NCodon {
		tst.Errorf("Synonym lists cover %d codons, expected %d", total, NCodon)
	}
}
