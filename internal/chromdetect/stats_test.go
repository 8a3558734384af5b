package chromdetect

import (
	"math"
	"testing"
)

func Test_ComputeStats(t *testing.T) {
	records := []Scaffold{
		{Name: "a", Length: 100},
		{Name: "b", Length: 80},
		{Name: "c", Length: 50},
		{Name: "d", Length: 30},
		{Name: "e", Length: 10},
	}

	stats := ComputeStats(records)

	if stats.TotalLength != 270 {
		t.Errorf("TotalLength = %d, want 270", stats.TotalLength)
	}
	if stats.ScaffoldCount != 5 {
		t.Errorf("ScaffoldCount = %d, want 5", stats.ScaffoldCount)
	}
	if stats.LargestLength != 100 {
		t.Errorf("LargestLength = %d, want 100", stats.LargestLength)
	}
	// cumulative 100, 180 >= 135 -> N50 is 80; 260 >= 243 -> N90 is 30
	if stats.N50 != 80 {
		t.Errorf("N50 = %d, want 80", stats.N50)
	}
	if stats.N90 != 30 {
		t.Errorf("N90 = %d, want 30", stats.N90)
	}
}

func Test_ComputeStats_n50Membership(t *testing.T) {
	tests := []struct {
		name    string
		lengths []int
		n50     int
	}{
		{"single", []int{42}, 42},
		{"equal", []int{10, 10, 10}, 10},
		{"dominant", []int{1000, 1, 1}, 1000},
		{"pair", []int{60, 40}, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := make([]Scaffold, len(tt.lengths))
			for i, l := range tt.lengths {
				records[i] = Scaffold{Name: string(rune('a' + i)), Length: l}
			}
			stats := ComputeStats(records)

			if stats.N50 != tt.n50 {
				t.Errorf("N50 = %d, want %d", stats.N50, tt.n50)
			}
			if stats.N50 < stats.N90 {
				t.Errorf("N50 %d < N90 %d", stats.N50, stats.N90)
			}

			found := false
			for _, l := range tt.lengths {
				if l == stats.N50 {
					found = true
				}
			}
			if !found {
				t.Errorf("N50 %d is not an actual scaffold length", stats.N50)
			}
		})
	}
}

func Test_ComputeStats_empty(t *testing.T) {
	stats := ComputeStats(nil)
	if stats != (AssemblyStats{}) {
		t.Errorf("empty set: stats = %+v, want zero value", stats)
	}
}

func Test_ComputeStats_meanGC(t *testing.T) {
	records := []Scaffold{
		{Name: "a", Length: 10, GC: 0.40, HasGC: true},
		{Name: "b", Length: 10, GC: 0.60, HasGC: true},
		{Name: "c", Length: 10}, // no sequence, excluded from the mean
	}

	stats := ComputeStats(records)
	if math.Abs(stats.MeanGC-0.50) > 1e-9 {
		t.Errorf("MeanGC = %f, want 0.50", stats.MeanGC)
	}

	noGC := ComputeStats([]Scaffold{{Name: "a", Length: 10}})
	if noGC.MeanGC != 0 {
		t.Errorf("MeanGC without sequences = %f, want 0", noGC.MeanGC)
	}
}

func Test_Summarize(t *testing.T) {
	results := []Result{
		{Name: "chr1", Length: 100, Classification: Chromosome},
		{Name: "chr2", Length: 60, Classification: Chromosome},
		{Name: "chr1_random", Length: 5, Classification: Unlocalized},
		{Name: "contig_1", Length: 2, Classification: Unplaced},
		{Name: "contig_2", Length: 1, Classification: Unplaced},
	}

	b := Summarize(results)
	if b.ChromosomeCount != 2 || b.UnlocalizedCount != 1 || b.UnplacedCount != 2 {
		t.Errorf("counts = %d/%d/%d, want 2/1/2", b.ChromosomeCount, b.UnlocalizedCount, b.UnplacedCount)
	}
	if b.ChromosomeLength != 160 {
		t.Errorf("ChromosomeLength = %d, want 160", b.ChromosomeLength)
	}
	if b.ChromosomeN50 != 100 {
		t.Errorf("ChromosomeN50 = %d, want 100", b.ChromosomeN50)
	}
}
