package chromdetect

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Detection method recorded when an assembly report settles a scaffold.
const MethodAssemblyReport = "assembly_report"

// NCBI sequence roles that map onto classifications.
const (
	roleAssembled   = "assembled-molecule"
	roleUnlocalized = "unlocalized-scaffold"
	roleUnplaced    = "unplaced-scaffold"
)

// ReportEntry is one sequence row from an NCBI assembly report.
type ReportEntry struct {
	SequenceName     string
	SequenceRole     string
	AssignedMolecule string
	MoleculeType     string
	GenBankAccession string
	RefSeqAccession  string
	Length           int
}

// AssemblyReport is a parsed NCBI assembly report: metadata plus the
// sequence table. When supplied to Classify it overrides the heuristics
// for every scaffold it names.
type AssemblyReport struct {
	AssemblyName string
	Organism     string
	TaxID        string
	Entries      []ReportEntry
}

// Assignment is the authoritative classification for one scaffold name.
type Assignment struct {
	Classification Classification
	ChromosomeID   string
}

// Assignments maps every scaffold name the report settles to its
// authoritative classification. Sequence names and GenBank/RefSeq
// accessions all key the same assignment, so FASTA headers using either
// convention resolve.
func (ar *AssemblyReport) Assignments() map[string]Assignment {
	assignments := make(map[string]Assignment, len(ar.Entries))
	for _, e := range ar.Entries {
		var cls Classification
		switch e.SequenceRole {
		case roleAssembled:
			cls = Chromosome
		case roleUnlocalized:
			cls = Unlocalized
		case roleUnplaced:
			cls = Unplaced
		default:
			continue
		}

		a := Assignment{Classification: cls}
		if mol := e.AssignedMolecule; mol != "" && !strings.EqualFold(mol, "na") {
			a.ChromosomeID = mol
		}

		assignments[e.SequenceName] = a
		for _, accn := range []string{e.GenBankAccession, e.RefSeqAccession} {
			if accn != "" && !strings.EqualFold(accn, "na") {
				assignments[accn] = a
			}
		}
	}
	return assignments
}

// ExpectedChromosomes counts the distinct chromosome molecules the
// report assigns, usable as a karyotype for the adjuster.
func (ar *AssemblyReport) ExpectedChromosomes() int {
	seen := map[string]bool{}
	for _, e := range ar.Entries {
		if e.SequenceRole == roleAssembled && strings.EqualFold(e.MoleculeType, "chromosome") {
			seen[e.AssignedMolecule] = true
		}
	}
	return len(seen)
}

// ParseAssemblyReportFile parses an NCBI assembly report from disk.
func ParseAssemblyReportFile(path string) (*AssemblyReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseAssemblyReport(f)
}

// ParseAssemblyReport parses an NCBI assembly report: '#' lines carry
// metadata ("# Assembly name: GRCh38.p14") and the tab-separated column
// header; the remaining lines are the sequence table. Column positions
// are discovered from the header, not assumed.
func ParseAssemblyReport(r io.Reader) (*AssemblyReport, error) {
	report := &AssemblyReport{}
	columns := map[string]int{}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			content := strings.TrimSpace(line[1:])
			if strings.Contains(content, "\t") && strings.Contains(strings.ToLower(content), "sequence") {
				for i, col := range strings.Split(content, "\t") {
					key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(col), "-", "_"))
					columns[key] = i
				}
				continue
			}
			key, value, found := strings.Cut(content, ":")
			if !found {
				continue
			}
			value = strings.TrimSpace(value)
			switch strings.ToLower(strings.TrimSpace(key)) {
			case "assembly name":
				report.AssemblyName = value
			case "organism name":
				report.Organism = value
			case "taxid":
				report.TaxID = value
			}
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 5 {
			continue // malformed row
		}
		field := func(name string) string {
			if idx, ok := columns[name]; ok && idx < len(fields) {
				return strings.TrimSpace(fields[idx])
			}
			return ""
		}

		entry := ReportEntry{
			SequenceName:     field("sequence_name"),
			SequenceRole:     field("sequence_role"),
			AssignedMolecule: field("assigned_molecule"),
			MoleculeType:     firstNonEmpty(field("assigned_molecule_location/type"), field("assigned_molecule_type")),
			GenBankAccession: field("genbank_accn"),
			RefSeqAccession:  field("refseq_accn"),
		}
		if ls := field("sequence_length"); ls != "" && !strings.EqualFold(ls, "na") {
			if n, err := strconv.Atoi(ls); err == nil {
				entry.Length = n
			}
		}

		if entry.SequenceName != "" {
			report.Entries = append(report.Entries, entry)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if len(report.Entries) == 0 {
		return nil, fmt.Errorf("%w: no sequence entries in assembly report", ErrData)
	}
	return report, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
