package chromdetect

import "math"

// Confidence thresholds used by the reconciliation priority rules.
const (
	strongNameConfidence = 0.8

	// agreement bonus when a strong name match is backed by size
	sizeAgreementBoost = 0.04

	// ceiling below the 1.0 reserved for authoritative sources
	maxHeuristicConfidence = 0.99
)

// reconcile combines the name and size evidence for one scaffold into a
// final Result. Priority rules, first applicable wins:
//
//  1. strong unlocalized/fragment marker: honored regardless of size
//  2. strong chromosome name: name confidence, nudged up if size agrees
//  3. chromosome-level size plus a weak chromosome name: blend, size
//     dominant
//  4. chromosome-level size, no name signal: size confidence with a
//     penalty, clamped to the 0.50-0.75 band
//  5. everything else: unplaced on the size evidence
func reconcile(rec Scaffold, name Match, size sizeEvidence) Result {
	res := Result{Name: rec.Name, Length: rec.Length, ChromosomeID: name.ChromosomeID}
	if rec.HasGC {
		res.GC = rec.GC
	}

	switch {
	case name.Confidence >= strongNameConfidence && (name.Category == Unlocalized || name.Category == Unplaced):
		res.Classification = name.Category
		res.Confidence = name.Confidence
		res.DetectionMethod = name.Method

	case name.Confidence >= strongNameConfidence && name.Category == Chromosome:
		res.Classification = Chromosome
		res.Confidence = name.Confidence
		res.DetectionMethod = name.Method
		if size.category == Chromosome {
			res.Confidence = math.Min(maxHeuristicConfidence, res.Confidence+sizeAgreementBoost)
			res.DetectionMethod = name.Method + "+" + size.method
		}

	case size.category == Chromosome && name.Category == Chromosome:
		// weak name match (0 < confidence < 0.8) agreeing with size
		res.Classification = Chromosome
		res.Confidence = math.Min(0.90, 0.75*size.confidence+0.25*name.Confidence+0.05)
		res.DetectionMethod = name.Method + "+" + size.method

	case size.category == Chromosome:
		// large but unnamed: plausible chromosome, less certain than a
		// named one
		res.Classification = Chromosome
		res.Confidence = clamp(size.confidence*0.7, 0.50, 0.75)
		res.DetectionMethod = size.method

	default:
		res.Classification = Unplaced
		res.Confidence = size.confidence
		res.DetectionMethod = size.method
		if name.Method != NoMatch {
			res.DetectionMethod = name.Method + "+" + size.method
		}
	}

	res.Confidence = round3(res.Confidence)
	return res
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
