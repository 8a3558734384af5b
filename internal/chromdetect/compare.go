package chromdetect

import "sort"

// ClassificationChange records a scaffold classified differently by two
// assemblies.
type ClassificationChange struct {
	Name   string         `json:"name"`
	First  Classification `json:"classification1"`
	Second Classification `json:"classification2"`
}

// Comparison is a side-by-side diff of two classified assemblies.
type Comparison struct {
	Name1 string `json:"assembly1_name"`
	Name2 string `json:"assembly2_name"`

	Stats1 AssemblyStats `json:"stats1"`
	Stats2 AssemblyStats `json:"stats2"`

	Breakdown1 Breakdown `json:"breakdown1"`
	Breakdown2 Breakdown `json:"breakdown2"`

	// chromosome scaffolds by name
	SharedChromosomes []string `json:"shared_chromosomes"`
	UniqueTo1         []string `json:"unique_to_1"`
	UniqueTo2         []string `json:"unique_to_2"`

	// length deltas (second minus first) for shared chromosomes whose
	// sizes differ
	SizeDifferences map[string]int `json:"size_differences"`

	Changes []ClassificationChange `json:"classification_changes"`
}

// Compare diffs two independently classified result sets: which
// chromosome scaffolds they share, which are unique to one side, how
// shared chromosomes differ in size, and which scaffolds changed
// classification between the two.
func Compare(name1 string, results1 []Result, stats1 AssemblyStats, name2 string, results2 []Result, stats2 AssemblyStats) Comparison {
	chr1 := map[string]Result{}
	all1 := map[string]Result{}
	for _, r := range results1 {
		all1[r.Name] = r
		if r.Classification == Chromosome {
			chr1[r.Name] = r
		}
	}
	chr2 := map[string]Result{}
	all2 := map[string]Result{}
	for _, r := range results2 {
		all2[r.Name] = r
		if r.Classification == Chromosome {
			chr2[r.Name] = r
		}
	}

	c := Comparison{
		Name1:           name1,
		Name2:           name2,
		Stats1:          stats1,
		Stats2:          stats2,
		Breakdown1:      Summarize(results1),
		Breakdown2:      Summarize(results2),
		SizeDifferences: map[string]int{},
	}

	for name, r1 := range chr1 {
		if r2, ok := chr2[name]; ok {
			c.SharedChromosomes = append(c.SharedChromosomes, name)
			if diff := r2.Length - r1.Length; diff != 0 {
				c.SizeDifferences[name] = diff
			}
		} else {
			c.UniqueTo1 = append(c.UniqueTo1, name)
		}
	}
	for name := range chr2 {
		if _, ok := chr1[name]; !ok {
			c.UniqueTo2 = append(c.UniqueTo2, name)
		}
	}
	sort.Strings(c.SharedChromosomes)
	sort.Strings(c.UniqueTo1)
	sort.Strings(c.UniqueTo2)

	for name, r1 := range all1 {
		r2, ok := all2[name]
		if ok && r1.Classification != r2.Classification {
			c.Changes = append(c.Changes, ClassificationChange{Name: name, First: r1.Classification, Second: r2.Classification})
		}
	}
	sort.Slice(c.Changes, func(i, j int) bool { return c.Changes[i].Name < c.Changes[j].Name })

	return c
}

// N50Difference is the second assembly's N50 minus the first's.
func (c Comparison) N50Difference() int {
	return c.Stats2.N50 - c.Stats1.N50
}

// ChromosomeCountDifference is the second assembly's chromosome count
// minus the first's.
func (c Comparison) ChromosomeCountDifference() int {
	return c.Breakdown2.ChromosomeCount - c.Breakdown1.ChromosomeCount
}
