package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/shandley/chromdetect/internal/chromdetect"
)

// WriteComparison renders an assembly comparison. Formats other than
// json and tsv fall back to the human-readable summary.
func WriteComparison(w io.Writer, format string, c chromdetect.Comparison) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(c)
	case FormatTSV:
		return writeComparisonTSV(w, c)
	default:
		return writeComparisonSummary(w, c)
	}
}

func writeComparisonTSV(w io.Writer, c chromdetect.Comparison) error {
	var b strings.Builder
	b.WriteString("metric\tassembly1\tassembly2\tdifference\n")

	row := func(metric string, v1, v2 int) {
		fmt.Fprintf(&b, "%s\t%d\t%d\t%d\n", metric, v1, v2, v2-v1)
	}
	row("total_scaffolds", c.Stats1.ScaffoldCount, c.Stats2.ScaffoldCount)
	row("total_length", c.Stats1.TotalLength, c.Stats2.TotalLength)
	row("n50", c.Stats1.N50, c.Stats2.N50)
	row("n90", c.Stats1.N90, c.Stats2.N90)
	row("chromosome_count", c.Breakdown1.ChromosomeCount, c.Breakdown2.ChromosomeCount)
	row("chromosome_length", c.Breakdown1.ChromosomeLength, c.Breakdown2.ChromosomeLength)
	row("chromosome_n50", c.Breakdown1.ChromosomeN50, c.Breakdown2.ChromosomeN50)
	fmt.Fprintf(&b, "gc_content\t%.4f\t%.4f\t%.4f\n", c.Stats1.MeanGC, c.Stats2.MeanGC, c.Stats2.MeanGC-c.Stats1.MeanGC)
	fmt.Fprintf(&b, "shared_chromosomes\t%d\t%d\t0\n", len(c.SharedChromosomes), len(c.SharedChromosomes))
	fmt.Fprintf(&b, "unique_chromosomes\t%d\t%d\t%d\n", len(c.UniqueTo1), len(c.UniqueTo2), len(c.UniqueTo2)-len(c.UniqueTo1))

	_, err := io.WriteString(w, b.String())
	return err
}

const listLimit = 10

func writeComparisonSummary(w io.Writer, c chromdetect.Comparison) error {
	rule := strings.Repeat("=", 70)
	thin := strings.Repeat("-", 70)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\nCHROMDETECT ASSEMBLY COMPARISON\n%s\n\n", rule, rule)
	fmt.Fprintf(&b, "Assembly 1: %s\nAssembly 2: %s\n\n", c.Name1, c.Name2)

	fmt.Fprintf(&b, "%s\nSTATISTICS COMPARISON\n%s\n\n", thin, thin)
	fmt.Fprintf(&b, "%-30s %18s %18s\n%s\n", "Metric", "Assembly 1", "Assembly 2", thin)
	row := func(metric string, v1, v2 int) {
		fmt.Fprintf(&b, "%-30s %18d %18d\n", metric, v1, v2)
	}
	row("Total scaffolds", c.Stats1.ScaffoldCount, c.Stats2.ScaffoldCount)
	row("Total length (bp)", c.Stats1.TotalLength, c.Stats2.TotalLength)
	row("N50 (bp)", c.Stats1.N50, c.Stats2.N50)
	row("N90 (bp)", c.Stats1.N90, c.Stats2.N90)
	row("Chromosome count", c.Breakdown1.ChromosomeCount, c.Breakdown2.ChromosomeCount)
	row("Chromosome length (bp)", c.Breakdown1.ChromosomeLength, c.Breakdown2.ChromosomeLength)
	row("Chromosome N50 (bp)", c.Breakdown1.ChromosomeN50, c.Breakdown2.ChromosomeN50)
	row("Unlocalized count", c.Breakdown1.UnlocalizedCount, c.Breakdown2.UnlocalizedCount)
	row("Unplaced count", c.Breakdown1.UnplacedCount, c.Breakdown2.UnplacedCount)

	fmt.Fprintf(&b, "\n%s\nCHROMOSOME COMPARISON\n%s\n\n", thin, thin)
	fmt.Fprintf(&b, "Shared chromosomes:      %d\n", len(c.SharedChromosomes))
	fmt.Fprintf(&b, "Unique to Assembly 1:    %d\n", len(c.UniqueTo1))
	fmt.Fprintf(&b, "Unique to Assembly 2:    %d\n", len(c.UniqueTo2))

	writeList(&b, fmt.Sprintf("Chromosomes only in %s:", c.Name1), c.UniqueTo1)
	writeList(&b, fmt.Sprintf("Chromosomes only in %s:", c.Name2), c.UniqueTo2)

	if len(c.SizeDifferences) > 0 {
		fmt.Fprintf(&b, "\n%s\nSIZE DIFFERENCES (shared chromosomes)\n%s\n\n", thin, thin)
		names := make([]string, 0, len(c.SizeDifferences))
		for name := range c.SizeDifferences {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool {
			di, dj := abs(c.SizeDifferences[names[i]]), abs(c.SizeDifferences[names[j]])
			if di != dj {
				return di > dj
			}
			return names[i] < names[j]
		})
		for i, name := range names {
			if i == listLimit {
				fmt.Fprintf(&b, "  ... and %d more\n", len(names)-listLimit)
				break
			}
			fmt.Fprintf(&b, "  %-30s %+12d bp\n", name, c.SizeDifferences[name])
		}
	}

	if len(c.Changes) > 0 {
		fmt.Fprintf(&b, "\n%s\nCLASSIFICATION CHANGES\n%s\n\n", thin, thin)
		for i, ch := range c.Changes {
			if i == listLimit {
				fmt.Fprintf(&b, "  ... and %d more\n", len(c.Changes)-listLimit)
				break
			}
			fmt.Fprintf(&b, "  %-30s %-15s -> %-15s\n", ch.Name, ch.First, ch.Second)
		}
	}

	fmt.Fprintf(&b, "\n%s\nSUMMARY\n%s\n\n", thin, thin)
	switch diff := c.N50Difference(); {
	case diff > 0:
		fmt.Fprintf(&b, "N50 improved by %d bp in %s\n", diff, c.Name2)
	case diff < 0:
		fmt.Fprintf(&b, "N50 decreased by %d bp in %s\n", -diff, c.Name2)
	default:
		fmt.Fprintln(&b, "N50 unchanged between assemblies")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeList(b *strings.Builder, heading string, names []string) {
	if len(names) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s\n", heading)
	for i, name := range names {
		if i == listLimit {
			fmt.Fprintf(b, "  ... and %d more\n", len(names)-listLimit)
			return
		}
		fmt.Fprintf(b, "  - %s\n", name)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
