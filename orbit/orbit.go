// Package orbit implements synonymous-codon orbit maps: total
// assignments of the 64 codons to amino-acid orbits, their validation,
// and the label shuffling used by the null model.
package orbit

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/evoldyn/codonfc/bio"
)

// orbitSizes lists the admissible synonym-family sizes.
var orbitSizes = map[int]bool{1: true, 2: true, 3: true, 4: true, 6: true}

// MalformedMapError indicates an orbit map violating the
// 64-unique-codon invariant or the admissible family sizes.
type MalformedMapError struct {
	Reason string
}

func (e *MalformedMapError) Error() string {
	return "malformed orbit map: " + e.Reason
}

func malformedf(format string, args ...interface{}) error {
	return &MalformedMapError{Reason: fmt.Sprintf(format, args...)}
}

// Map is an immutable assignment of every RNA codon to an orbit label.
// Orbit sizes are derived by counting the codons sharing a label.
type Map struct {
	name   string
	labels []string // aligned to bio.CodonOrder
	size   map[string]int
}

// New creates a Map from a codon to label assignment. Codons may be
// given in the DNA or RNA alphabet; they are normalized to RNA. The
// assignment must cover all 64 codons exactly once and every derived
// orbit size must be one of 1, 2, 3, 4 or 6.
func New(name string, assign map[string]string) (*Map, error) {
	if len(assign) != bio.NCodon {
		return nil, malformedf("%d codons, expected %d", len(assign), bio.NCodon)
	}
	labels := make([]string, bio.NCodon)
	seen := make(map[string]string, bio.NCodon)
	for codon, label := range assign {
		rna, err := bio.ToRNA(codon)
		if err != nil {
			return nil, malformedf("%v", err)
		}
		if prev, ok := seen[rna]; ok {
			return nil, malformedf("codon %s assigned twice (%s and %s)", rna, prev, codon)
		}
		seen[rna] = codon
		if label == "" {
			return nil, malformedf("codon %s has an empty orbit label", rna)
		}
		labels[bio.CodonIndex[rna]] = label
	}
	m := &Map{name: name, labels: labels, size: countSizes(labels)}
	for label, n := range m.size {
		if !orbitSizes[n] {
			return nil, malformedf("orbit %q has size %d, expected 1, 2, 3, 4 or 6", label, n)
		}
	}
	return m, nil
}

func countSizes(labels []string) map[string]int {
	size := make(map[string]int)
	for _, label := range labels {
		size[label]++
	}
	return size
}

// Name returns the map name (file name or builtin variant).
func (m *Map) Name() string { return m.name }

// Label returns the orbit label of an RNA codon.
func (m *Map) Label(codon string) string {
	return m.labels[bio.CodonIndex[codon]]
}

// LabelAt returns the orbit label of the i-th codon of bio.CodonOrder.
func (m *Map) LabelAt(i int) string { return m.labels[i] }

// SizeAt returns the orbit size of the i-th codon of bio.CodonOrder.
func (m *Map) SizeAt(i int) int { return m.size[m.labels[i]] }

// NOrbits returns the number of distinct orbits.
func (m *Map) NOrbits() int { return len(m.size) }

// Families returns the orbit label to member codon lists, members in
// bio.CodonOrder order.
func (m *Map) Families() map[string][]string {
	fam := make(map[string][]string, len(m.size))
	for i, label := range m.labels {
		fam[label] = append(fam[label], bio.CodonOrder[i])
	}
	return fam
}

// FamilyNames returns the orbit labels sorted alphabetically.
func (m *Map) FamilyNames() []string {
	names := make([]string, 0, len(m.size))
	for label := range m.size {
		names = append(names, label)
	}
	sort.Strings(names)
	return names
}

// Shuffle returns a new Map with the labels uniformly permuted across
// the fixed codon order. The orbit-size multiset is preserved; only
// codon membership is randomized. The caller's rng determines the
// permutation, so a seeded source gives reproducible shuffles.
func (m *Map) Shuffle(rng *rand.Rand) *Map {
	perm := rng.Perm(bio.NCodon)
	labels := make([]string, bio.NCodon)
	for i, j := range perm {
		labels[i] = m.labels[j]
	}
	return &Map{name: m.name + "-shuffled", labels: labels, size: m.size}
}
