// Package output renders classification results in the formats the CLI
// exposes: json, tsv, bed, gff, summary text, and an HTML report.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/shandley/chromdetect/internal/chromdetect"
)

// Format names accepted by the CLI.
const (
	FormatJSON    = "json"
	FormatTSV     = "tsv"
	FormatBED     = "bed"
	FormatGFF     = "gff"
	FormatSummary = "summary"
	FormatHTML    = "html"
)

// Extension returns the output-file extension for a format.
func Extension(format string) string {
	switch format {
	case FormatJSON:
		return ".json"
	case FormatTSV:
		return ".tsv"
	case FormatBED:
		return ".bed"
	case FormatGFF:
		return ".gff"
	case FormatHTML:
		return ".html"
	default:
		return ".txt"
	}
}

// Write renders results and statistics in the named format. The
// assembly name only shows up in formats that display it (summary,
// html).
func Write(w io.Writer, format, assemblyName string, results []chromdetect.Result, stats chromdetect.AssemblyStats) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, results, stats)
	case FormatTSV:
		return writeTSV(w, results)
	case FormatBED:
		return writeBED(w, results)
	case FormatGFF:
		return writeGFF(w, results)
	case FormatSummary:
		return writeSummary(w, assemblyName, results, stats)
	case FormatHTML:
		return writeHTML(w, assemblyName, results, stats)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

type jsonDoc struct {
	Summary   summaryDoc           `json:"summary"`
	Scaffolds []chromdetect.Result `json:"scaffolds"`
}

type summaryDoc struct {
	chromdetect.AssemblyStats
	chromdetect.Breakdown
}

func writeJSON(w io.Writer, results []chromdetect.Result, stats chromdetect.AssemblyStats) error {
	doc := jsonDoc{
		Summary:   summaryDoc{AssemblyStats: stats, Breakdown: chromdetect.Summarize(results)},
		Scaffolds: results,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func writeTSV(w io.Writer, results []chromdetect.Result) error {
	if _, err := fmt.Fprintln(w, "name\tlength\tclassification\tconfidence\tmethod\tchromosome_id\tgc_content"); err != nil {
		return err
	}
	for _, r := range results {
		gc := ""
		if r.GC > 0 {
			gc = fmt.Sprintf("%.4f", r.GC)
		}
		if _, err := fmt.Fprintf(w, "%s\t%d\t%s\t%g\t%s\t%s\t%s\n",
			r.Name, r.Length, r.Classification, r.Confidence, r.DetectionMethod, r.ChromosomeID, gc); err != nil {
			return err
		}
	}
	return nil
}

// writeBED emits one whole-scaffold interval per result, with the
// classification in the name column and the confidence scaled to the
// BED score range.
func writeBED(w io.Writer, results []chromdetect.Result) error {
	for _, r := range results {
		score := int(math.Round(r.Confidence * 1000))
		if _, err := fmt.Fprintf(w, "%s\t0\t%d\t%s\t%d\t.\n", r.Name, r.Length, r.Classification, score); err != nil {
			return err
		}
	}
	return nil
}

func writeGFF(w io.Writer, results []chromdetect.Result) error {
	if _, err := fmt.Fprintln(w, "##gff-version 3"); err != nil {
		return err
	}
	for _, r := range results {
		attrs := fmt.Sprintf("ID=%s;classification=%s;detection_method=%s", r.Name, r.Classification, r.DetectionMethod)
		if r.ChromosomeID != "" {
			attrs += ";chromosome=" + r.ChromosomeID
		}
		if _, err := fmt.Fprintf(w, "%s\tchromdetect\tregion\t1\t%d\t%.3f\t.\t.\t%s\n",
			r.Name, r.Length, r.Confidence, attrs); err != nil {
			return err
		}
	}
	return nil
}

const topScaffolds = 20

func writeSummary(w io.Writer, assemblyName string, results []chromdetect.Result, stats chromdetect.AssemblyStats) error {
	breakdown := chromdetect.Summarize(results)
	rule := strings.Repeat("=", 60)
	thin := strings.Repeat("-", 60)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\nCHROMDETECT ASSEMBLY ANALYSIS: %s\n%s\n\n", rule, assemblyName, rule)
	fmt.Fprintf(&b, "Total scaffolds:     %d\n", stats.ScaffoldCount)
	fmt.Fprintf(&b, "Total length:        %d bp (%.2f Gb)\n", stats.TotalLength, float64(stats.TotalLength)/1e9)
	fmt.Fprintf(&b, "N50:                 %d bp (%.1f Mb)\n", stats.N50, float64(stats.N50)/1e6)
	fmt.Fprintf(&b, "N90:                 %d bp\n", stats.N90)
	fmt.Fprintf(&b, "Largest scaffold:    %d bp\n\n", stats.LargestLength)
	fmt.Fprintf(&b, "Scaffold Classification:\n")
	fmt.Fprintf(&b, "  Chromosomes:       %d (%.2f Gb)\n", breakdown.ChromosomeCount, float64(breakdown.ChromosomeLength)/1e9)
	fmt.Fprintf(&b, "  Unlocalized:       %d\n", breakdown.UnlocalizedCount)
	fmt.Fprintf(&b, "  Unplaced:          %d\n\n", breakdown.UnplacedCount)
	fmt.Fprintf(&b, "Chromosome N50:      %d bp (%.1f Mb)\n", breakdown.ChromosomeN50, float64(breakdown.ChromosomeN50)/1e6)
	if stats.MeanGC > 0 {
		fmt.Fprintf(&b, "GC content:          %.1f%%\n", stats.MeanGC*100)
	}

	fmt.Fprintf(&b, "\n%s\nTop %d Scaffolds:\n%s\n", thin, topScaffolds, thin)
	top := append([]chromdetect.Result(nil), results...)
	sort.Slice(top, func(i, j int) bool { return top[i].Length > top[j].Length })
	if len(top) > topScaffolds {
		top = top[:topScaffolds]
	}
	for _, r := range top {
		line := fmt.Sprintf("  %-30s %12d bp  %-12s %.2f", r.Name, r.Length, r.Classification, r.Confidence)
		if r.ChromosomeID != "" {
			line += fmt.Sprintf(" (%s)", r.ChromosomeID)
		}
		if r.GC > 0 {
			line += fmt.Sprintf(" GC:%.1f%%", r.GC*100)
		}
		fmt.Fprintln(&b, line)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
