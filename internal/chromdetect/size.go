package chromdetect

import "fmt"

// DefaultMinChromosomeSize is the length at which a scaffold starts
// looking chromosome-level, absent any other evidence.
const DefaultMinChromosomeSize = 10_000_000

// sizeEvidence is the Size Heuristic's contribution for one scaffold.
// The confidence is a contribution to be blended by the reconciler, not
// a final score.
type sizeEvidence struct {
	category   Classification
	confidence float64
	method     string
}

// evaluateSize suggests a category from scaffold length alone. Lengths
// at or above minSize suggest chromosome, with confidence saturating as
// the length approaches the assembly N50; shorter lengths suggest
// unplaced, with confidence growing with the deficit. A zero or
// negative length is a data fault, not a classifiable value.
func evaluateSize(length int, stats AssemblyStats, minSize int) (sizeEvidence, error) {
	if length <= 0 {
		return sizeEvidence{}, fmt.Errorf("%w: scaffold length %d", ErrData, length)
	}
	if minSize <= 0 {
		minSize = DefaultMinChromosomeSize
	}

	if length >= minSize {
		conf := 0.70
		if stats.N50 > 0 {
			rel := float64(length) / float64(stats.N50)
			if rel > 1 {
				rel = 1
			}
			conf += 0.25 * rel
		}
		if conf > 0.95 {
			conf = 0.95
		}
		return sizeEvidence{category: Chromosome, confidence: conf, method: "size_large"}, nil
	}

	// Below threshold the deficit is the evidence: a 5 kb contig is a
	// much stronger "unplaced" signal than a 9.9 Mb scaffold.
	deficit := 1 - float64(length)/float64(minSize)
	conf := 0.40 + 0.40*deficit
	return sizeEvidence{category: Unplaced, confidence: conf, method: "size_small"}, nil
}
