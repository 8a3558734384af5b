package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shandley/chromdetect/internal/chromdetect"
)

// patternsCmd prints the built-in naming-rule tables.
var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the built-in scaffold naming rules",
	Run: func(cmd *cobra.Command, args []string) {
		rules := chromdetect.DefaultRules()
		thin := strings.Repeat("-", 50)

		fmt.Println("CHROMOSOME PATTERNS (detected as chromosome-level):")
		fmt.Println(thin)
		for _, r := range rules.ChromosomeRules() {
			display := strings.TrimSuffix(strings.TrimPrefix(r.Pattern, "^"), "$")
			fmt.Printf("  %-25s %-45s conf %.2f\n", r.Method, display, r.Confidence)
		}

		unlocalized, fragment := rules.MarkerRules()
		fmt.Println()
		fmt.Println("UNLOCALIZED PATTERNS (chromosome-associated but not placed):")
		fmt.Println(thin)
		for _, r := range unlocalized {
			fmt.Printf("  %s\n", r.Pattern)
		}

		fmt.Println()
		fmt.Println("FRAGMENT PATTERNS (contigs/fragments, not chromosome-level):")
		fmt.Println(thin)
		for _, r := range fragment {
			fmt.Printf("  %s\n", r.Pattern)
		}
	},
}

func init() {
	RootCmd.AddCommand(patternsCmd)
}
