package chromdetect

import (
	"math"
	"testing"
)

func Test_reconcile(t *testing.T) {
	tests := []struct {
		name     string
		rec      Scaffold
		match    Match
		size     sizeEvidence
		category Classification
		conf     float64
		method   string
	}{
		{
			// strong marker wins even against a chromosome-level size
			name:     "marker beats size",
			rec:      Scaffold{Name: "chr1_random", Length: 80_000_000},
			match:    Match{Category: Unlocalized, Confidence: 0.8, Method: "name_unlocalized"},
			size:     sizeEvidence{category: Chromosome, confidence: 0.95, method: "size_large"},
			category: Unlocalized,
			conf:     0.8,
			method:   "name_unlocalized",
		},
		{
			name:     "strong name with size agreement",
			rec:      Scaffold{Name: "chr1", Length: 50_000_000},
			match:    Match{Category: Chromosome, Confidence: 0.95, Method: "name_chr_explicit", ChromosomeID: "1"},
			size:     sizeEvidence{category: Chromosome, confidence: 0.95, method: "size_large"},
			category: Chromosome,
			conf:     0.99,
			method:   "name_chr_explicit+size_large",
		},
		{
			// a short "chr22" keeps its name confidence without the bonus
			name:     "strong name without size agreement",
			rec:      Scaffold{Name: "chr22", Length: 500_000},
			match:    Match{Category: Chromosome, Confidence: 0.95, Method: "name_chr_explicit", ChromosomeID: "22"},
			size:     sizeEvidence{category: Unplaced, confidence: 0.78, method: "size_small"},
			category: Chromosome,
			conf:     0.95,
			method:   "name_chr_explicit",
		},
		{
			name:     "weak name blended with size",
			rec:      Scaffold{Name: "2", Length: 60_000_000},
			match:    Match{Category: Chromosome, Confidence: 0.6, Method: "name_numeric", ChromosomeID: "2"},
			size:     sizeEvidence{category: Chromosome, confidence: 0.95, method: "size_large"},
			category: Chromosome,
			conf:     0.90, // blend 0.9125 meets the 0.90 ceiling
			method:   "name_numeric+size_large",
		},
		{
			name:     "size only",
			rec:      Scaffold{Name: "scaffold_99", Length: 45_000_000},
			match:    Match{Method: NoMatch},
			size:     sizeEvidence{category: Chromosome, confidence: 0.95, method: "size_large"},
			category: Chromosome,
			conf:     0.665,
			method:   "size_large",
		},
		{
			name:     "nothing chromosome-like",
			rec:      Scaffold{Name: "random_junk", Length: 5_000},
			match:    Match{Method: NoMatch},
			size:     sizeEvidence{category: Unplaced, confidence: 0.7998, method: "size_small"},
			category: Unplaced,
			conf:     0.8,
			method:   "size_small",
		},
		{
			// weak chromosome name on a small scaffold: size wins, both
			// methods recorded
			name:     "weak name on small scaffold",
			rec:      Scaffold{Name: "7", Length: 5_000},
			match:    Match{Category: Chromosome, Confidence: 0.6, Method: "name_numeric", ChromosomeID: "7"},
			size:     sizeEvidence{category: Unplaced, confidence: 0.7998, method: "size_small"},
			category: Unplaced,
			conf:     0.8,
			method:   "name_numeric+size_small",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := reconcile(tt.rec, tt.match, tt.size)

			if res.Name != tt.rec.Name || res.Length != tt.rec.Length {
				t.Errorf("identity fields changed: %+v", res)
			}
			if res.Classification != tt.category {
				t.Errorf("Classification = %q, want %q", res.Classification, tt.category)
			}
			if math.Abs(res.Confidence-tt.conf) > 1e-9 {
				t.Errorf("Confidence = %f, want %f", res.Confidence, tt.conf)
			}
			if res.DetectionMethod != tt.method {
				t.Errorf("DetectionMethod = %q, want %q", res.DetectionMethod, tt.method)
			}
			if res.ChromosomeID != tt.match.ChromosomeID {
				t.Errorf("ChromosomeID = %q, want %q", res.ChromosomeID, tt.match.ChromosomeID)
			}
		})
	}
}

// the size-only path must stay inside its dedicated confidence band
func Test_reconcile_sizeOnlyBand(t *testing.T) {
	for _, conf := range []float64{0.70, 0.80, 0.90, 0.95} {
		res := reconcile(
			Scaffold{Name: "s", Length: 20_000_000},
			Match{Method: NoMatch},
			sizeEvidence{category: Chromosome, confidence: conf, method: "size_large"},
		)
		if res.Confidence < 0.50 || res.Confidence > 0.75 {
			t.Errorf("size-only confidence %f outside [0.50, 0.75] (input %f)", res.Confidence, conf)
		}
	}
}

// no heuristic result may reach the 1.0 reserved for authoritative data
func Test_reconcile_ceiling(t *testing.T) {
	res := reconcile(
		Scaffold{Name: "chr1", Length: 100},
		Match{Category: Chromosome, Confidence: 0.99, Method: "name_chr_explicit"},
		sizeEvidence{category: Chromosome, confidence: 0.95, method: "size_large"},
	)
	if res.Confidence > maxHeuristicConfidence {
		t.Errorf("Confidence = %f exceeds the heuristic ceiling", res.Confidence)
	}
}
