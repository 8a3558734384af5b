package chromdetect

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ComputeStats derives assembly-wide statistics from the scaffold set.
// An empty set yields the zero value rather than an error; downstream
// heuristics treat zero thresholds as "no size signal available".
func ComputeStats(records []Scaffold) AssemblyStats {
	if len(records) == 0 {
		return AssemblyStats{}
	}

	lengths := make([]int, len(records))
	var gcs []float64
	for i, rec := range records {
		lengths[i] = rec.Length
		if rec.HasGC {
			gcs = append(gcs, rec.GC)
		}
	}

	stats := AssemblyStats{
		ScaffoldCount: len(records),
		N50:           nx(lengths, 0.5),
		N90:           nx(lengths, 0.9),
	}
	for _, l := range lengths {
		stats.TotalLength += l
		if l > stats.LargestLength {
			stats.LargestLength = l
		}
	}
	if len(gcs) > 0 {
		stats.MeanGC = stat.Mean(gcs, nil)
	}

	return stats
}

// nx returns the Nx statistic for fraction x: the length of the
// scaffold at which the cumulative sum of descending-sorted lengths
// first reaches x of the total. Always the length of an actual
// scaffold, never interpolated.
func nx(lengths []int, x float64) int {
	if len(lengths) == 0 {
		return 0
	}

	sorted := append([]int(nil), lengths...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	total := 0
	for _, l := range sorted {
		total += l
	}

	running := 0
	for _, l := range sorted {
		running += l
		if float64(running) >= float64(total)*x {
			return l
		}
	}
	return sorted[len(sorted)-1]
}

// Summarize counts results per category and computes chromosome-only
// totals for reporting.
func Summarize(results []Result) Breakdown {
	var b Breakdown
	var chrLengths []int
	for _, r := range results {
		switch r.Classification {
		case Chromosome:
			b.ChromosomeCount++
			b.ChromosomeLength += r.Length
			chrLengths = append(chrLengths, r.Length)
		case Unlocalized:
			b.UnlocalizedCount++
		case Unplaced:
			b.UnplacedCount++
		}
	}
	b.ChromosomeN50 = nx(chrLengths, 0.5)
	return b
}
