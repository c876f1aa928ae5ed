// orbitmap is a tool to write builtin orbit maps as CSV files
// suitable for the -map flag of fccheck and fcpair.
//
//	orbitmap standard >orbit_map.csv
//	orbitmap ciliate >orbit_map_ciliate.csv
package main

import (
	"fmt"
	"os"

	"github.com/evoldyn/codonfc/bio"
	"github.com/evoldyn/codonfc/orbit"
)

func main() {
	variant := "standard"
	if len(os.Args) > 1 {
		variant = os.Args[1]
	}
	m, err := orbit.Builtin(variant)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("Codon,Orbit")
	for _, codon := range bio.CodonOrder {
		dna, err := bio.ToDNA(codon)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("%s,%s\n", dna, m.Label(codon))
	}
}
