package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shandley/chromdetect/config"
	"github.com/shandley/chromdetect/internal/chromdetect"
	"github.com/shandley/chromdetect/internal/fasta"
	"github.com/shandley/chromdetect/internal/output"
)

var (
	outPath     string
	extractPath string
)

// classifyCmd classifies a single assembly FASTA.
var classifyCmd = &cobra.Command{
	Use:   "classify [fasta]",
	Short: "Classify scaffolds in an assembly FASTA (use '-' for stdin)",
	Long: `Classify every scaffold in a genome assembly as chromosome,
unlocalized, or unplaced.

Detection combines naming conventions (chr1, Super_scaffold_1, LG_2,
NC_000001.11, ...), size heuristics relative to the assembly N50, an
optional expected chromosome count, and an optional NCBI assembly report
that overrides the heuristics for the scaffolds it names.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		bindFlags(cmd)
		c := config.New()

		inputs, err := loadInputs(c)
		if err != nil {
			fail(err)
		}

		results, stats, records, err := classifyFile(args[0], c, inputs, extractPath != "")
		if err != nil {
			fail(err)
		}

		if extractPath != "" {
			if err := extractChromosomes(extractPath, results, records); err != nil {
				fail(err)
			}
		}

		results = applyFilters(results, c.Filter)

		if err := writeResults(outPath, c.Format, assemblyName(args[0]), results, stats); err != nil {
			fail(err)
		}
	},
}

func init() {
	classifyCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	classifyCmd.Flags().StringVarP(&extractPath, "extract-chromosomes", "x", "", "write chromosome sequences to a FASTA file")
	classifyCmd.Flags().StringP("format", "f", "summary", "output format: json, tsv, bed, gff, summary, html")
	classifyCmd.Flags().IntP("karyotype", "k", -1, "expected chromosome count for karyotype-informed detection")
	classifyCmd.Flags().IntP("min-size", "s", chromdetect.DefaultMinChromosomeSize, "minimum size (bp) to consider chromosome-level")
	classifyCmd.Flags().String("patterns", "", "custom naming-rule file (YAML or JSON)")
	classifyCmd.Flags().String("assembly-report", "", "NCBI assembly report for authoritative classification")
	classifyCmd.Flags().BoolP("chromosomes-only", "c", false, "only output chromosome-level scaffolds")
	classifyCmd.Flags().Float64("min-confidence", 0, "minimum confidence (0.0-1.0) to include scaffolds")
	classifyCmd.Flags().Int("min-length", 0, "minimum scaffold length (bp) to include in output")

	RootCmd.AddCommand(classifyCmd)
}

// settingsKeys are the viper keys that can come from flags, the
// chromdetect.yaml settings file, or defaults, in that priority.
var settingsKeys = []string{
	"format", "karyotype", "min-size", "patterns", "assembly-report",
	"chromosomes-only", "min-confidence", "min-length",
}

// bindFlags points viper at the running command's flags. Binding at run
// time keeps sibling commands that share flag names from clobbering
// each other's bindings in init().
func bindFlags(cmd *cobra.Command) {
	for _, key := range settingsKeys {
		if f := cmd.Flags().Lookup(key); f != nil {
			viper.BindPFlag(key, f)
		}
	}
}

// classifyInputs are the side inputs shared by classify, batch, and
// compare: custom rules and an assembly report, both optional.
type classifyInputs struct {
	custom *chromdetect.CustomRules
	report *chromdetect.AssemblyReport
}

func loadInputs(c *config.Config) (classifyInputs, error) {
	var in classifyInputs

	if c.Patterns != "" {
		custom, err := chromdetect.LoadCustomRules(c.Patterns)
		if err != nil {
			return in, err
		}
		in.custom = custom
		logger.Debug("loaded custom rules",
			"chromosome", len(custom.Chromosome),
			"unlocalized", len(custom.Unlocalized),
			"fragment", len(custom.Fragment))
	}

	if c.AssemblyReport != "" {
		report, err := chromdetect.ParseAssemblyReportFile(c.AssemblyReport)
		if err != nil {
			return in, err
		}
		in.report = report
		logger.Debug("loaded assembly report",
			"assembly", report.AssemblyName,
			"sequences", len(report.Entries),
			"chromosomes", report.ExpectedChromosomes())
	}

	return in, nil
}

// classifyFile parses and classifies one FASTA, returning the records
// as well so callers can extract sequences.
func classifyFile(path string, c *config.Config, in classifyInputs, keepSeq bool) ([]chromdetect.Result, chromdetect.AssemblyStats, []chromdetect.Scaffold, error) {
	logger.Info("parsing assembly", "input", path)
	records, err := fasta.Read(path, keepSeq)
	if err != nil {
		return nil, chromdetect.AssemblyStats{}, nil, err
	}
	logger.Info("classifying scaffolds", "count", len(records))

	opt := chromdetect.Options{
		MinChromosomeSize: c.MinChromosomeSize,
		Custom:            in.custom,
		Report:            in.report,
	}
	if c.Karyotype >= 0 {
		opt.ExpectedChromosomes = c.Karyotype
		opt.UseKaryotype = true
	}

	results, stats, err := chromdetect.Classify(records, opt)
	if err != nil {
		return nil, chromdetect.AssemblyStats{}, nil, err
	}

	breakdown := chromdetect.Summarize(results)
	logger.Debug("classification complete",
		"chromosomes", breakdown.ChromosomeCount,
		"unlocalized", breakdown.UnlocalizedCount,
		"unplaced", breakdown.UnplacedCount,
		"n50", stats.N50)

	return results, stats, records, nil
}

func extractChromosomes(path string, results []chromdetect.Result, records []chromdetect.Scaffold) error {
	chromosomes := map[string]bool{}
	for _, r := range results {
		if r.Classification == chromdetect.Chromosome {
			chromosomes[r.Name] = true
		}
	}

	var seqs []chromdetect.Scaffold
	for _, rec := range records {
		if chromosomes[rec.Name] && rec.Sequence != "" {
			seqs = append(seqs, rec)
		}
	}
	if len(seqs) == 0 {
		logger.Warn("no chromosome sequences to extract")
		return nil
	}
	sort.Slice(seqs, func(i, j int) bool { return seqs[i].Name < seqs[j].Name })

	if err := fasta.WriteFile(path, seqs); err != nil {
		return err
	}
	logger.Info("extracted chromosome sequences", "count", len(seqs), "out", path)
	return nil
}

func applyFilters(results []chromdetect.Result, f config.FilterConfig) []chromdetect.Result {
	if !f.ChromosomesOnly && f.MinConfidence <= 0 && f.MinLength <= 0 {
		return results
	}

	kept := results[:0:0]
	for _, r := range results {
		if f.ChromosomesOnly && r.Classification != chromdetect.Chromosome {
			continue
		}
		if r.Confidence < f.MinConfidence || r.Length < f.MinLength {
			continue
		}
		kept = append(kept, r)
	}
	if len(kept) != len(results) {
		logger.Debug("filtered results", "kept", len(kept), "total", len(results))
	}
	return kept
}

func writeResults(path, format, name string, results []chromdetect.Result, stats chromdetect.AssemblyStats) error {
	if path == "" {
		return output.Write(os.Stdout, format, name, results, stats)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := output.Write(f, format, name, results, stats); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("results written", "out", path)
	return nil
}

// assemblyName derives a display name from the input path, trimming
// directory, compression, and FASTA extensions.
func assemblyName(path string) string {
	if path == "-" {
		return "Assembly"
	}
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, ".gz")
	for _, ext := range []string{".fasta", ".fa", ".fna"} {
		name = strings.TrimSuffix(name, ext)
	}
	if name == "" {
		return fmt.Sprintf("Assembly (%s)", path)
	}
	return name
}
