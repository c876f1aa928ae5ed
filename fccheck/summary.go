package main

import "github.com/evoldyn/codonfc/fc"

// CallSummary stores fccheck invocation information.
type CallSummary struct {
	// Version stores the fccheck version.
	Version string `json:"version"`
	// CommandLine is an array storing binary name and all command-line parameters.
	CommandLine []string `json:"commandLine"`
	// Seed is the seed used for random number generation initialization.
	Seed int64 `json:"seed"`
	// TotalTime is the computations time in seconds.
	TotalTime float64 `json:"time"`
	// Run is the analysis summary.
	Run *RunSummary `json:"run"`
}

// RunSummary stores the FC analysis results.
type RunSummary struct {
	// Map is the orbit map name.
	Map string `json:"map"`
	// Tables lists the input tables.
	Tables []string `json:"tables"`
	// Rows is the number of organism rows read.
	Rows int `json:"rows"`
	// BadRows is the number of malformed rows skipped by the reader.
	BadRows int `json:"badRows,omitempty"`
	// Valid is the number of organisms with a defined FC ratio.
	Valid int `json:"valid"`
	// SkippedEmpty counts organisms with zero total codon count.
	SkippedEmpty int `json:"skippedEmpty"`
	// SkippedUndefined counts organisms with zero inter-orbit variance.
	SkippedUndefined int `json:"skippedUndefined"`
	// Median is the cohort median FC ratio.
	Median float64 `json:"median"`
	// Null is the null-model summary, if the null model was run.
	Null *fc.NullSummary `json:"null,omitempty"`
	// NullUndefined explains an undefined null result, if any.
	NullUndefined string `json:"nullUndefined,omitempty"`
	// Families is the per-orbit dispersion breakdown, if requested.
	Families []fc.FamilyStat `json:"families,omitempty"`
}
