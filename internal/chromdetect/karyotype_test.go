package chromdetect

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func Test_AdjustKaryotype_demote(t *testing.T) {
	// 11 classified chromosomes against an expected karyotype of 9: the
	// two weakest get demoted
	var results []Result
	for i := 1; i <= 11; i++ {
		results = append(results, Result{
			Name:            fmt.Sprintf("chr%d", i),
			Length:          100_000_000 - i,
			Classification:  Chromosome,
			Confidence:      0.99 - float64(i)*0.02,
			DetectionMethod: "name_chr_explicit",
		})
	}

	adjusted, err := AdjustKaryotype(results, 9)
	if err != nil {
		t.Fatal(err)
	}

	var demoted []Result
	chromosomes := 0
	for _, r := range adjusted {
		if r.Classification == Chromosome {
			chromosomes++
		} else {
			demoted = append(demoted, r)
		}
	}
	if chromosomes != 9 {
		t.Errorf("chromosome count after adjustment = %d, want 9", chromosomes)
	}
	if len(demoted) != 2 {
		t.Fatalf("demoted count = %d, want 2", len(demoted))
	}

	// the two lowest-confidence entries, i=10 and i=11 in the input
	for _, r := range demoted {
		if r.Classification != Unplaced {
			t.Errorf("%s: Classification = %q, want %q", r.Name, r.Classification, Unplaced)
		}
		if !strings.HasSuffix(r.DetectionMethod, demotedSuffix) {
			t.Errorf("%s: DetectionMethod = %q, missing demotion suffix", r.Name, r.DetectionMethod)
		}
	}
	for _, r := range adjusted {
		if r.Classification == Chromosome && r.Confidence < 0.99-9*0.02-1e-9 {
			t.Errorf("%s kept as chromosome with confidence %f below a demoted one", r.Name, r.Confidence)
		}
	}
}

func Test_AdjustKaryotype_demoteHalvesConfidence(t *testing.T) {
	results := []Result{
		{Name: "chr1", Length: 100, Classification: Chromosome, Confidence: 0.95, DetectionMethod: "name_chr_explicit"},
		{Name: "chr2", Length: 90, Classification: Chromosome, Confidence: 0.60, DetectionMethod: "name_numeric"},
	}

	adjusted, err := AdjustKaryotype(results, 1)
	if err != nil {
		t.Fatal(err)
	}

	if adjusted[1].Classification != Unplaced {
		t.Fatalf("weakest entry not demoted: %+v", adjusted[1])
	}
	if adjusted[1].Confidence != 0.30 {
		t.Errorf("demoted Confidence = %f, want 0.30", adjusted[1].Confidence)
	}
	if adjusted[1].DetectionMethod != "name_numeric"+demotedSuffix {
		t.Errorf("demoted DetectionMethod = %q", adjusted[1].DetectionMethod)
	}
	if adjusted[0].Classification != Chromosome || adjusted[0].Confidence != 0.95 {
		t.Errorf("strong entry disturbed: %+v", adjusted[0])
	}
}

func Test_AdjustKaryotype_demoteTieBreak(t *testing.T) {
	// equal confidence: the later name goes first
	results := []Result{
		{Name: "chrA", Length: 100, Classification: Chromosome, Confidence: 0.9},
		{Name: "chrB", Length: 100, Classification: Chromosome, Confidence: 0.9},
	}

	adjusted, err := AdjustKaryotype(results, 1)
	if err != nil {
		t.Fatal(err)
	}
	if adjusted[0].Classification != Chromosome {
		t.Errorf("chrA should survive the tie: %+v", adjusted[0])
	}
	if adjusted[1].Classification != Unplaced {
		t.Errorf("chrB should be demoted on the tie: %+v", adjusted[1])
	}
}

func Test_AdjustKaryotype_promote(t *testing.T) {
	results := []Result{
		{Name: "chr1", Length: 100_000_000, Classification: Chromosome, Confidence: 0.95, DetectionMethod: "name_chr_explicit"},
		{Name: "scaffold_5", Length: 40_000_000, Classification: Unplaced, Confidence: 0.5, DetectionMethod: "size_small"},
		{Name: "scaffold_9", Length: 30_000_000, Classification: Unplaced, Confidence: 0.55, DetectionMethod: "size_small"},
		{Name: "contig_1", Length: 5_000, Classification: Unplaced, Confidence: 0.8, DetectionMethod: "name_fragment"},
	}

	adjusted, err := AdjustKaryotype(results, 2)
	if err != nil {
		t.Fatal(err)
	}

	if adjusted[1].Classification != Chromosome {
		t.Fatalf("longest non-chromosome not promoted: %+v", adjusted[1])
	}
	if adjusted[1].Confidence != 0.6 {
		t.Errorf("promoted Confidence = %f, want 0.6 (capped)", adjusted[1].Confidence)
	}
	if adjusted[1].DetectionMethod != "size_small"+promotedSuffix {
		t.Errorf("promoted DetectionMethod = %q", adjusted[1].DetectionMethod)
	}
	if adjusted[2].Classification != Unplaced || adjusted[3].Classification != Unplaced {
		t.Errorf("only one promotion expected, got %+v / %+v", adjusted[2], adjusted[3])
	}
}

func Test_AdjustKaryotype_promoteRunsOut(t *testing.T) {
	// zero-length entries are never promoted, so the set can fall short
	// of the expected count
	results := []Result{
		{Name: "chr1", Length: 100, Classification: Chromosome, Confidence: 0.95},
		{Name: "empty", Length: 0, Classification: Unplaced, Confidence: 0.5},
	}

	adjusted, err := AdjustKaryotype(results, 5)
	if err != nil {
		t.Fatal(err)
	}
	if adjusted[1].Classification != Unplaced {
		t.Errorf("zero-length entry promoted: %+v", adjusted[1])
	}
}

func Test_AdjustKaryotype_exactMatch(t *testing.T) {
	results := []Result{
		{Name: "chr1", Length: 100, Classification: Chromosome, Confidence: 0.95},
		{Name: "contig_1", Length: 5, Classification: Unplaced, Confidence: 0.8},
	}

	adjusted, err := AdjustKaryotype(results, 1)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(results, adjusted); diff != "" {
		t.Errorf("matching count must be a no-op (-want +got):\n%s", diff)
	}
}

// adjusting an already-adjusted set with the same target changes nothing
func Test_AdjustKaryotype_idempotent(t *testing.T) {
	results := []Result{
		{Name: "chr1", Length: 100, Classification: Chromosome, Confidence: 0.95, DetectionMethod: "name_chr_explicit"},
		{Name: "chr2", Length: 90, Classification: Chromosome, Confidence: 0.90, DetectionMethod: "name_chr_explicit"},
		{Name: "chr3", Length: 80, Classification: Chromosome, Confidence: 0.60, DetectionMethod: "name_numeric"},
		{Name: "contig_1", Length: 5, Classification: Unplaced, Confidence: 0.8, DetectionMethod: "name_fragment"},
	}

	once, err := AdjustKaryotype(results, 2)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := AdjustKaryotype(once, 2)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("second adjustment changed results (-once +twice):\n%s", diff)
	}
}

func Test_AdjustKaryotype_pure(t *testing.T) {
	results := []Result{
		{Name: "chr1", Length: 100, Classification: Chromosome, Confidence: 0.95},
		{Name: "chr2", Length: 90, Classification: Chromosome, Confidence: 0.60},
	}
	before := append([]Result(nil), results...)

	if _, err := AdjustKaryotype(results, 1); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(before, results); diff != "" {
		t.Errorf("input mutated (-before +after):\n%s", diff)
	}
}

func Test_AdjustKaryotype_negative(t *testing.T) {
	_, err := AdjustKaryotype(nil, -1)
	if !errors.Is(err, ErrConfig) {
		t.Errorf("err = %v, want ErrConfig", err)
	}
}

func Test_AdjustKaryotype_zeroExpected(t *testing.T) {
	results := []Result{
		{Name: "chr1", Length: 100, Classification: Chromosome, Confidence: 0.95, DetectionMethod: "name_chr_explicit"},
	}
	adjusted, err := AdjustKaryotype(results, 0)
	if err != nil {
		t.Fatal(err)
	}
	if adjusted[0].Classification != Unplaced {
		t.Errorf("expected 0 must demote every chromosome: %+v", adjusted[0])
	}
}
