package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/shandley/chromdetect/config"
	"github.com/shandley/chromdetect/internal/chromdetect"
	"github.com/shandley/chromdetect/internal/output"
)

var compareOutPath string

// compareCmd classifies two assemblies and diffs the outcomes.
var compareCmd = &cobra.Command{
	Use:   "compare [fasta1] [fasta2]",
	Short: "Compare scaffold classifications of two assemblies side by side",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		bindFlags(cmd)
		c := config.New()

		inputs, err := loadInputs(c)
		if err != nil {
			fail(err)
		}

		results1, stats1, _, err := classifyFile(args[0], c, inputs, false)
		if err != nil {
			fail(err)
		}
		results2, stats2, _, err := classifyFile(args[1], c, inputs, false)
		if err != nil {
			fail(err)
		}

		comparison := chromdetect.Compare(
			assemblyName(args[0]), results1, stats1,
			assemblyName(args[1]), results2, stats2,
		)

		w := os.Stdout
		if compareOutPath != "" {
			f, err := os.Create(compareOutPath)
			if err != nil {
				fail(err)
			}
			defer f.Close()
			w = f
		}
		if err := output.WriteComparison(w, c.Format, comparison); err != nil {
			fail(err)
		}
	},
}

func init() {
	compareCmd.Flags().StringVarP(&compareOutPath, "out", "o", "", "output file (default stdout)")
	compareCmd.Flags().StringP("format", "f", "summary", "output format: json, tsv, summary")
	compareCmd.Flags().IntP("karyotype", "k", -1, "expected chromosome count for karyotype-informed detection")
	compareCmd.Flags().IntP("min-size", "s", 0, "minimum size (bp) to consider chromosome-level")
	compareCmd.Flags().String("patterns", "", "custom naming-rule file (YAML or JSON)")
	compareCmd.Flags().String("assembly-report", "", "NCBI assembly report for authoritative classification")

	RootCmd.AddCommand(compareCmd)
}
