package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/shandley/chromdetect/config"
	"github.com/shandley/chromdetect/internal/chromdetect"
	"github.com/shandley/chromdetect/internal/fasta"
	"github.com/shandley/chromdetect/internal/output"
)

var batchOutDir string

// batchCmd classifies every FASTA file in a directory. A failure in one
// file is recorded in the batch summary and does not stop the rest.
var batchCmd = &cobra.Command{
	Use:   "batch [dir]",
	Short: "Classify every assembly FASTA in a directory",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		bindFlags(cmd)
		c := config.New()

		inputs, err := loadInputs(c)
		if err != nil {
			fail(err)
		}

		files, err := findFastaFiles(args[0])
		if err != nil {
			fail(err)
		}
		if len(files) == 0 {
			fail(fmt.Errorf("no FASTA files found in %s: %w", args[0], os.ErrNotExist))
		}

		outDir := batchOutDir
		if outDir == "" {
			outDir = filepath.Join(args[0], "chromdetect_results")
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			fail(err)
		}
		logger.Info("batch run", "files", len(files), "out", outDir)

		type fileSummary struct {
			file        string
			scaffolds   int
			chromosomes int
			totalLength int
			n50         int
			err         error
		}

		summaries := make([]fileSummary, 0, len(files))
		for i, path := range files {
			logger.Info("processing", "file", filepath.Base(path), "n", i+1, "of", len(files))

			s := fileSummary{file: filepath.Base(path)}
			results, stats, _, err := classifyFile(path, c, inputs, false)
			if err != nil {
				logger.Warn("skipping file", "file", s.file, "err", err)
				s.err = err
				summaries = append(summaries, s)
				continue
			}

			filtered := applyFilters(results, c.Filter)
			outFile := filepath.Join(outDir, assemblyName(path)+output.Extension(c.Format))
			if err := writeResults(outFile, c.Format, assemblyName(path), filtered, stats); err != nil {
				s.err = err
				summaries = append(summaries, s)
				continue
			}

			s.scaffolds = stats.ScaffoldCount
			s.chromosomes = chromdetect.Summarize(results).ChromosomeCount
			s.totalLength = stats.TotalLength
			s.n50 = stats.N50
			summaries = append(summaries, s)
		}

		summaryPath := filepath.Join(outDir, "batch_summary.tsv")
		f, err := os.Create(summaryPath)
		if err != nil {
			fail(err)
		}
		fmt.Fprintln(f, "file\tscaffolds\tchromosomes\ttotal_length\tn50\terror")
		ok := 0
		for _, s := range summaries {
			if s.err != nil {
				fmt.Fprintf(f, "%s\t\t\t\t\t%v\n", s.file, s.err)
				continue
			}
			fmt.Fprintf(f, "%s\t%d\t%d\t%d\t%d\t\n", s.file, s.scaffolds, s.chromosomes, s.totalLength, s.n50)
			ok++
		}
		if err := f.Close(); err != nil {
			fail(err)
		}

		logger.Info("batch complete", "processed", ok, "of", len(files), "summary", summaryPath)
	},
}

func init() {
	batchCmd.Flags().StringVarP(&batchOutDir, "out", "o", "", "output directory (default DIR/chromdetect_results)")
	batchCmd.Flags().StringP("format", "f", "summary", "output format: json, tsv, bed, gff, summary, html")
	batchCmd.Flags().IntP("karyotype", "k", -1, "expected chromosome count for karyotype-informed detection")
	batchCmd.Flags().IntP("min-size", "s", 0, "minimum size (bp) to consider chromosome-level")
	batchCmd.Flags().String("patterns", "", "custom naming-rule file (YAML or JSON)")
	batchCmd.Flags().String("assembly-report", "", "NCBI assembly report for authoritative classification")

	RootCmd.AddCommand(batchCmd)
}

// findFastaFiles lists FASTA files directly inside dir, sorted by name.
func findFastaFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && fasta.HasFastaExt(e.Name()) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
