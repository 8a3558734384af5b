// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"

	"github.com/shandley/chromdetect/internal/chromdetect"
)

// FilterConfig narrows which results make it into the output.
type FilterConfig struct {
	// drop everything that isn't chromosome-level
	ChromosomesOnly bool `mapstructure:"chromosomes-only"`

	// minimum confidence a result needs to be reported
	MinConfidence float64 `mapstructure:"min-confidence"`

	// minimum scaffold length (bp) to be reported
	MinLength int `mapstructure:"min-length"`
}

// Config is the root-level settings struct, a mix of settings from an
// optional chromdetect.yaml and command line flags bound to viper.
type Config struct {
	// the length (bp) at which a scaffold starts looking chromosome-level
	MinChromosomeSize int `mapstructure:"min-size"`

	// expected chromosome count; negative means "not provided"
	Karyotype int `mapstructure:"karyotype"`

	// output format: json, tsv, bed, gff, summary, html
	Format string `mapstructure:"format"`

	// path to a custom naming-rule file (YAML or JSON)
	Patterns string `mapstructure:"patterns"`

	// path to an NCBI assembly report for authoritative classification
	AssemblyReport string `mapstructure:"assembly-report"`

	// output filters
	Filter FilterConfig `mapstructure:",squash"`
}

// New returns a Config populated from viper: defaults, then an optional
// chromdetect.yaml in the working directory, then any bound flags.
func New() *Config {
	viper.SetDefault("min-size", chromdetect.DefaultMinChromosomeSize)
	viper.SetDefault("karyotype", -1)
	viper.SetDefault("format", "summary")

	viper.SetConfigName("chromdetect")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("failed to read settings file: %v", err)
		}
	}

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		log.Fatalf("failed to decode settings: %v", err)
	}
	return c
}
