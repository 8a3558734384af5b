package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shandley/chromdetect/internal/chromdetect"
)

func sampleComparison() chromdetect.Comparison {
	results1 := []chromdetect.Result{
		{Name: "chr1", Length: 100, Classification: chromdetect.Chromosome},
		{Name: "chr3", Length: 80, Classification: chromdetect.Chromosome},
		{Name: "scaffold_7", Length: 10, Classification: chromdetect.Unplaced},
	}
	results2 := []chromdetect.Result{
		{Name: "chr1", Length: 110, Classification: chromdetect.Chromosome},
		{Name: "chr4", Length: 70, Classification: chromdetect.Chromosome},
		{Name: "scaffold_7", Length: 10, Classification: chromdetect.Unlocalized},
	}
	stats1 := chromdetect.AssemblyStats{TotalLength: 190, ScaffoldCount: 3, N50: 100, N90: 10}
	stats2 := chromdetect.AssemblyStats{TotalLength: 190, ScaffoldCount: 3, N50: 110, N90: 10}
	return chromdetect.Compare("old_asm", results1, stats1, "new_asm", results2, stats2)
}

func Test_WriteComparison_summary(t *testing.T) {
	var sb strings.Builder
	if err := WriteComparison(&sb, FormatSummary, sampleComparison()); err != nil {
		t.Fatal(err)
	}
	out := sb.String()

	for _, want := range []string{
		"CHROMDETECT ASSEMBLY COMPARISON",
		"Assembly 1: old_asm",
		"Assembly 2: new_asm",
		"Shared chromosomes:      1",
		"Chromosomes only in old_asm:",
		"  - chr3",
		"Chromosomes only in new_asm:",
		"  - chr4",
		"SIZE DIFFERENCES",
		"chr1",
		"CLASSIFICATION CHANGES",
		"scaffold_7",
		"N50 improved by 10 bp in new_asm",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func Test_WriteComparison_tsv(t *testing.T) {
	var sb strings.Builder
	if err := WriteComparison(&sb, FormatTSV, sampleComparison()); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if lines[0] != "metric\tassembly1\tassembly2\tdifference" {
		t.Errorf("header = %q", lines[0])
	}

	var n50 string
	for _, line := range lines[1:] {
		if strings.HasPrefix(line, "n50\t") {
			n50 = line
		}
	}
	if n50 != "n50\t100\t110\t10" {
		t.Errorf("n50 row = %q", n50)
	}
}

func Test_WriteComparison_json(t *testing.T) {
	var sb strings.Builder
	if err := WriteComparison(&sb, FormatJSON, sampleComparison()); err != nil {
		t.Fatal(err)
	}

	var doc struct {
		Name1  string   `json:"assembly1_name"`
		Shared []string `json:"shared_chromosomes"`
	}
	if err := json.Unmarshal([]byte(sb.String()), &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Name1 != "old_asm" {
		t.Errorf("assembly1_name = %q", doc.Name1)
	}
	if len(doc.Shared) != 1 || doc.Shared[0] != "chr1" {
		t.Errorf("shared_chromosomes = %v", doc.Shared)
	}
}
