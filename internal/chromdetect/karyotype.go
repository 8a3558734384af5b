package chromdetect

import (
	"fmt"
	"math"
	"sort"
)

// Detection-method suffixes recorded by the karyotype pass.
const (
	demotedSuffix  = "_demoted_karyotype"
	promotedSuffix = "_promoted_karyotype"
)

// AdjustKaryotype reconciles the classified set against an expected
// chromosome count. It never mutates its input: the returned slice is a
// fresh copy, so the pre-adjustment view stays valid for comparison
// flows.
//
// With more chromosomes than expected, the lowest-confidence ones are
// demoted to unplaced; with fewer, the longest non-chromosome scaffolds
// are promoted. Ties are broken lexicographically by name: on equal
// confidence the later name is demoted first, and on equal length the
// earlier name is promoted first. Names and lengths are never altered.
func AdjustKaryotype(results []Result, expected int) ([]Result, error) {
	if expected < 0 {
		return nil, fmt.Errorf("%w: expected chromosome count %d is negative", ErrConfig, expected)
	}

	adjusted := append([]Result(nil), results...)

	var chromosomes []int // indices into adjusted
	for i, r := range adjusted {
		if r.Classification == Chromosome {
			chromosomes = append(chromosomes, i)
		}
	}

	switch current := len(chromosomes); {
	case current > expected:
		demote(adjusted, chromosomes, current-expected)
	case current < expected:
		promote(adjusted, expected-current)
	}

	return adjusted, nil
}

// demote reclassifies the n weakest chromosome results as unplaced.
func demote(results []Result, chromosomes []int, n int) {
	order := append([]int(nil), chromosomes...)
	sort.Slice(order, func(a, b int) bool {
		ra, rb := results[order[a]], results[order[b]]
		if ra.Confidence != rb.Confidence {
			return ra.Confidence < rb.Confidence
		}
		return ra.Name > rb.Name
	})

	for _, idx := range order[:n] {
		r := &results[idx]
		r.Classification = Unplaced
		r.DetectionMethod += demotedSuffix
		r.Confidence = round3(r.Confidence * 0.5)
	}
}

// promote reclassifies the n longest non-chromosome results as
// chromosomes. Zero-length entries are never promoted, so fewer than n
// promotions can happen when the assembly runs out of plausible
// candidates.
func promote(results []Result, n int) {
	var candidates []int
	for i, r := range results {
		if r.Classification != Chromosome && r.Length > 0 {
			candidates = append(candidates, i)
		}
	}
	sort.Slice(candidates, func(a, b int) bool {
		ra, rb := results[candidates[a]], results[candidates[b]]
		if ra.Length != rb.Length {
			return ra.Length > rb.Length
		}
		return ra.Name < rb.Name
	})

	if n > len(candidates) {
		n = len(candidates)
	}
	for _, idx := range candidates[:n] {
		r := &results[idx]
		r.Classification = Chromosome
		r.DetectionMethod += promotedSuffix
		r.Confidence = round3(math.Min(0.6, r.Confidence+0.2))
	}
}
