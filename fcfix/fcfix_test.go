package main

import "testing"

func TestFixedName(tst *testing.T) {
	cases := map[string]string{
		"refseq_cds.tsv":     "refseq_cds_fixed.tsv",
		"data/genbank.tsv":   "data/genbank_fixed.tsv",
		"dumps.d/cds":        "dumps.d/cds_fixed",
		"a/b.backup.tsv":     "a/b.backup_fixed.tsv",
		"table":              "table_fixed",
	}
	for in, want := range cases {
		if got := fixedName(in); got != want {
			tst.Errorf("fixedName(%q)=%q, expected %q", in, got, want)
		}
	}
}
