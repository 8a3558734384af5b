package config

import (
	"testing"

	"github.com/spf13/viper"

	"github.com/shandley/chromdetect/internal/chromdetect"
)

func Test_New_defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	c := New()

	if c.MinChromosomeSize != chromdetect.DefaultMinChromosomeSize {
		t.Errorf("MinChromosomeSize = %d, want %d", c.MinChromosomeSize, chromdetect.DefaultMinChromosomeSize)
	}
	if c.Karyotype != -1 {
		t.Errorf("Karyotype = %d, want -1 (not provided)", c.Karyotype)
	}
	if c.Format != "summary" {
		t.Errorf("Format = %q, want %q", c.Format, "summary")
	}
	if c.Filter.ChromosomesOnly || c.Filter.MinConfidence != 0 || c.Filter.MinLength != 0 {
		t.Errorf("Filter = %+v, want zero filters", c.Filter)
	}
}

func Test_New_overrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("min-size", 5_000_000)
	viper.Set("karyotype", 39)
	viper.Set("format", "tsv")
	viper.Set("chromosomes-only", true)
	viper.Set("min-confidence", 0.7)

	c := New()

	if c.MinChromosomeSize != 5_000_000 || c.Karyotype != 39 || c.Format != "tsv" {
		t.Errorf("Config = %+v", c)
	}
	if !c.Filter.ChromosomesOnly || c.Filter.MinConfidence != 0.7 {
		t.Errorf("Filter = %+v", c.Filter)
	}
}
