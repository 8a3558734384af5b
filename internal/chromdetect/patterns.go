package chromdetect

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// NamingRule is one entry in the ordered rule table: a pattern, the
// method identifier recorded on matches, the category the rule targets,
// and the base confidence it contributes. Chromosome rules are anchored
// against the full name and capture the chromosome token in group 1;
// marker rules (unlocalized/fragment) match anywhere in the name.
type NamingRule struct {
	Pattern    string         `json:"pattern" yaml:"pattern"`
	Method     string         `json:"name" yaml:"name"`
	Category   Classification `json:"-" yaml:"-"`
	Confidence float64        `json:"confidence,omitempty" yaml:"confidence,omitempty"`

	re *regexp.Regexp
}

// builtinChromosome is the ordered chromosome-rule table. Order is
// priority: explicit names, assembly-pipeline conventions, accessions,
// then the weak bare-token rule last.
var builtinChromosome = []NamingRule{
	{Pattern: `^chr(?:omosome)?[_\-\s]?(\d+|[XYZWAB]|MT?|Un)$`, Method: "chr_explicit", Confidence: 0.95},
	{Pattern: `^super[_\-\s]?scaffold[_\-\s]?(\d+|[XYZWAB])$`, Method: "super_scaffold", Confidence: 0.85},
	{Pattern: `^superscaffold[_\-\s]?(\d+|[XYZWAB])$`, Method: "superscaffold", Confidence: 0.85},
	{Pattern: `^SUPER[_\-\s]?(\d+|[XYZWAB])$`, Method: "SUPER", Confidence: 0.85},
	{Pattern: `^Super-Scaffold_(\d+)$`, Method: "super_scaffold_hyphen", Confidence: 0.85},
	{Pattern: `^LG[_\-\s]?(\d+|[XYZWAB])$`, Method: "linkage_group", Confidence: 0.85},
	{Pattern: `^NC_\d+\.\d+$`, Method: "ncbi_refseq", Confidence: 0.9},
	{Pattern: `^CM\d+\.\d+$`, Method: "ncbi_genbank", Confidence: 0.9},
	{Pattern: `^HiC_scaffold_(\d+)$`, Method: "hic_scaffold", Confidence: 0.75},
	{Pattern: `^Scaffold_(\d+)_RaGOO$`, Method: "ragoo", Confidence: 0.75},
	{Pattern: `^scaffold_(\d+)_cov\d+$`, Method: "scaffold_cov", Confidence: 0.75},
	{Pattern: `^Pt(\d+)$`, Method: "plant_chromosome", Confidence: 0.85},
	{Pattern: `^Gm(\d+)$`, Method: "soybean_chromosome", Confidence: 0.85},
	{Pattern: `^(\d+|[XYZWAB]|MT?)$`, Method: "numeric", Confidence: 0.6},
}

// builtinUnlocalized marks scaffolds that belong to a chromosome but
// have no placed position. Checked before any chromosome rule so that
// chr1_random never matches chr_explicit by accident.
var builtinUnlocalized = []string{
	`random`,
	`unloc`,
	`unplaced`,
	`_un_`,
	`chrUn`,
	`scaffold.*unloc`,
	`_hap\d+_unloc`,
}

// builtinFragment marks contigs and assembly debris.
var builtinFragment = []string{
	`ctg\d*$`,
	`contig`,
	`_arrow_`,
	`_pilon`,
	`fragment`,
	`_hap\d`,
	`_alt$`,
	`_patch$`,
	`debris`,
}

const (
	markerConfidence = 0.8

	// confidence assigned to custom chromosome rules that don't carry
	// their own
	defaultCustomConfidence = 0.9
)

// Rules is a compiled, ordered rule table. The zero value is unusable;
// build one with DefaultRules or CompileRules.
type Rules struct {
	unlocalized []NamingRule
	fragment    []NamingRule
	chromosome  []NamingRule
}

// CustomRules are caller-supplied rules merged ahead of the built-ins.
// Chromosome entries should capture the chromosome token in group 1.
type CustomRules struct {
	Chromosome  []NamingRule `json:"chromosome_patterns" yaml:"chromosome_patterns"`
	Unlocalized []string     `json:"unlocalized_patterns" yaml:"unlocalized_patterns"`
	Fragment    []string     `json:"fragment_patterns" yaml:"fragment_patterns"`
}

var defaultRules = mustCompile()

func mustCompile() *Rules {
	r, err := CompileRules(nil)
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultRules returns the built-in rule table, compiled once at
// startup. The returned table is shared and must not be mutated.
func DefaultRules() *Rules {
	return defaultRules
}

// CompileRules builds a rule table from the built-ins plus optional
// custom rules. Custom rules are prepended within each category so they
// win ties against built-ins; built-ins are never removed. An invalid
// pattern yields a configuration error and no table.
func CompileRules(custom *CustomRules) (*Rules, error) {
	r := &Rules{}

	if custom != nil {
		for _, c := range custom.Chromosome {
			if c.Pattern == "" {
				return nil, fmt.Errorf("%w: custom chromosome rule %q has no pattern", ErrConfig, c.Method)
			}
			re, err := regexp.Compile(`(?i)` + c.Pattern)
			if err != nil {
				return nil, fmt.Errorf("%w: custom pattern %q: %v", ErrConfig, c.Pattern, err)
			}
			conf := c.Confidence
			if conf == 0 {
				conf = defaultCustomConfidence
			}
			r.chromosome = append(r.chromosome, NamingRule{
				Pattern: c.Pattern, Method: c.Method, Category: Chromosome, Confidence: conf, re: re,
			})
		}
		var err error
		if r.unlocalized, err = compileMarkers(custom.Unlocalized, Unlocalized); err != nil {
			return nil, err
		}
		if r.fragment, err = compileMarkers(custom.Fragment, Unplaced); err != nil {
			return nil, err
		}
	}

	for _, b := range builtinChromosome {
		b.Category = Chromosome
		b.re = regexp.MustCompile(`(?i)` + b.Pattern)
		r.chromosome = append(r.chromosome, b)
	}
	bu, err := compileMarkers(builtinUnlocalized, Unlocalized)
	if err != nil {
		return nil, err
	}
	bf, err := compileMarkers(builtinFragment, Unplaced)
	if err != nil {
		return nil, err
	}
	r.unlocalized = append(r.unlocalized, bu...)
	r.fragment = append(r.fragment, bf...)

	return r, nil
}

func compileMarkers(patterns []string, cat Classification) ([]NamingRule, error) {
	method := "unlocalized"
	if cat == Unplaced {
		method = "fragment"
	}

	rules := make([]NamingRule, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(`(?i)` + p)
		if err != nil {
			return nil, fmt.Errorf("%w: %s pattern %q: %v", ErrConfig, method, p, err)
		}
		rules = append(rules, NamingRule{
			Pattern: p, Method: method, Category: cat, Confidence: markerConfidence, re: re,
		})
	}
	return rules, nil
}

// ChromosomeRules returns the ordered chromosome rule table, for
// display purposes.
func (r *Rules) ChromosomeRules() []NamingRule {
	return append([]NamingRule(nil), r.chromosome...)
}

// MarkerRules returns the unlocalized and fragment marker tables, for
// display purposes.
func (r *Rules) MarkerRules() (unlocalized, fragment []NamingRule) {
	return append([]NamingRule(nil), r.unlocalized...), append([]NamingRule(nil), r.fragment...)
}

// LoadCustomRules reads a custom rule file. YAML and JSON are both
// accepted; the extension picks the parser, with JSON tried first for
// unknown extensions.
func LoadCustomRules(path string) (*CustomRules, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	custom := &CustomRules{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(raw, custom); err != nil {
			return nil, fmt.Errorf("%w: rule file %s: %v", ErrConfig, path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, custom); err != nil {
			return nil, fmt.Errorf("%w: rule file %s: %v", ErrConfig, path, err)
		}
	default:
		if jsonErr := json.Unmarshal(raw, custom); jsonErr != nil {
			if yamlErr := yaml.Unmarshal(raw, custom); yamlErr != nil {
				return nil, fmt.Errorf("%w: rule file %s is neither JSON nor YAML: %v", ErrConfig, path, yamlErr)
			}
		}
	}
	return custom, nil
}
