// Package chromdetect classifies scaffolds in a genome assembly as
// chromosome-level, unlocalized, or unplaced using naming conventions,
// size heuristics, and optional karyotype reconciliation.
package chromdetect

import "errors"

// Classification is the category assigned to a scaffold.
type Classification string

// The three scaffold categories. Every classified scaffold ends up in
// exactly one of them.
const (
	Chromosome  Classification = "chromosome"
	Unlocalized Classification = "unlocalized"
	Unplaced    Classification = "unplaced"
)

var (
	// ErrData marks input data faults: zero-length scaffolds, duplicate
	// names, malformed report or FASTA content.
	ErrData = errors.New("invalid input data")

	// ErrConfig marks configuration faults: a negative karyotype, a
	// custom rule pattern that fails to compile. Raised before any
	// classification work begins.
	ErrConfig = errors.New("invalid configuration")
)

// Scaffold is a single input record parsed from an assembly. It is
// never mutated by the classifier.
type Scaffold struct {
	// Name from the FASTA header, unique within an assembly
	Name string

	// Length in base pairs
	Length int

	// GC is the GC content as a fraction in [0,1]. Only meaningful
	// when HasGC is set; sources that carry lengths but no sequence
	// leave it unset.
	GC    float64
	HasGC bool

	// Sequence holds the raw bases. Empty unless the caller asked the
	// reader to retain sequences (chromosome extraction mode).
	Sequence string
}

// Result is the classification of one scaffold. There is exactly one
// Result per input Scaffold, matched by name.
type Result struct {
	Name            string         `json:"name"`
	Length          int            `json:"length"`
	Classification  Classification `json:"classification"`
	Confidence      float64        `json:"confidence"`
	DetectionMethod string         `json:"detection_method"`
	ChromosomeID    string         `json:"chromosome_id,omitempty"`
	GC              float64        `json:"gc_content,omitempty"`
}

// AssemblyStats are aggregate values computed once over the full
// scaffold set. A zero value means "no size signal available" (empty
// assembly).
type AssemblyStats struct {
	TotalLength   int     `json:"total_length"`
	ScaffoldCount int     `json:"scaffold_count"`
	N50           int     `json:"n50"`
	N90           int     `json:"n90"`
	LargestLength int     `json:"largest_length"`
	MeanGC        float64 `json:"mean_gc_content,omitempty"`
}

// Breakdown counts results per category, with chromosome-only totals.
type Breakdown struct {
	ChromosomeCount  int `json:"chromosome_count"`
	UnlocalizedCount int `json:"unlocalized_count"`
	UnplacedCount    int `json:"unplaced_count"`
	ChromosomeLength int `json:"chromosome_length"`
	ChromosomeN50    int `json:"chromosome_n50"`
}
