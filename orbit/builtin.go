package orbit

import (
	"fmt"

	"github.com/evoldyn/codonfc/bio"
)

// FromGeneticCode derives an orbit map from a genetic code: each
// synonym family becomes one orbit, labelled with the three-letter
// amino-acid name plus the family size (Lys2, Ser6, Stop3).
func FromGeneticCode(gc *bio.GeneticCode) (*Map, error) {
	syn := gc.Synonyms()
	assign := make(map[string]string, bio.NCodon)
	for aa, codons := range syn {
		label := fmt.Sprintf("%s%d", bio.AminoAcidNames[aa], len(codons))
		for _, codon := range codons {
			assign[codon] = label
		}
	}
	return New(gc.Name, assign)
}

// Standard returns the orbit map of the standard genetic code. The
// three stop codons form a single size-3 orbit.
func Standard() *Map {
	m, err := FromGeneticCode(bio.StandardCode)
	if err != nil {
		panic(err)
	}
	return m
}

// Ciliate returns the orbit map of the ciliate nuclear code: UAA and
// UAG join CAA/CAG in a 4-fold Gln orbit, UGA is the sole stop.
func Ciliate() *Map {
	m, err := FromGeneticCode(bio.CiliateCode)
	if err != nil {
		panic(err)
	}
	return m
}

// Builtin returns a builtin orbit map by variant name.
func Builtin(variant string) (*Map, error) {
	switch variant {
	case "standard":
		return Standard(), nil
	case "ciliate":
		return Ciliate(), nil
	}
	return nil, fmt.Errorf("unknown builtin orbit map: %s", variant)
}
