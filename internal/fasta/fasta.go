// Package fasta reads scaffold records from multi-FASTA assembly files
// and writes extracted sequences back out. Gzipped input is detected by
// magic bytes or a .gz suffix.
package fasta

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/klauspost/compress/gzip"

	"github.com/shandley/chromdetect/internal/chromdetect"
)

// Extensions recognized as FASTA when scanning directories in batch
// mode.
var Extensions = []string{".fasta", ".fa", ".fna", ".fasta.gz", ".fa.gz", ".fna.gz"}

// HasFastaExt reports whether a filename carries a recognized FASTA
// extension.
func HasFastaExt(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range Extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// Read parses the FASTA file at path into scaffold records, in file
// order. "-" reads from stdin. keepSeq retains the raw bases on each
// record for downstream extraction; GC content is computed either way.
func Read(path string, keepSeq bool) ([]chromdetect.Scaffold, error) {
	if path == "-" {
		return ReadFrom(os.Stdin, keepSeq)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if gzipped, err := sniffGzip(f, path); err != nil {
		return nil, err
	} else if gzipped {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", chromdetect.ErrData, path, err)
		}
		defer gz.Close()
		r = gz
	}

	records, err := ReadFrom(r, keepSeq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// sniffGzip checks the two-byte gzip signature, falling back to the
// file extension, and rewinds the handle.
func sniffGzip(f *os.File, path string) (bool, error) {
	var sig [2]byte
	n, _ := io.ReadFull(f, sig[:])
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return false, err
	}
	if n == 2 && sig[0] == 0x1f && sig[1] == 0x8b {
		return true, nil
	}
	return strings.HasSuffix(strings.ToLower(path), ".gz"), nil
}

// ReadFrom parses FASTA records from a stream.
func ReadFrom(r io.Reader, keepSeq bool) ([]chromdetect.Scaffold, error) {
	template := linear.NewSeq("", nil, alphabet.DNA)
	sc := seqio.NewScanner(fasta.NewReader(r, template))

	var records []chromdetect.Scaffold
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		seq := s.Seq.String()

		rec := chromdetect.Scaffold{
			Name:   s.ID,
			Length: s.Len(),
		}
		if gc, ok := gcContent(seq); ok {
			rec.GC = gc
			rec.HasGC = true
		}
		if keepSeq {
			rec.Sequence = seq
		}
		records = append(records, rec)
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", chromdetect.ErrData, err)
	}

	return records, nil
}

// gcContent is the G+C fraction over unambiguous bases. Unknown when
// the sequence has no A/C/G/T at all.
func gcContent(seq string) (float64, bool) {
	var gc, at int
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'G', 'C', 'g', 'c':
			gc++
		case 'A', 'T', 'a', 't':
			at++
		}
	}
	if gc+at == 0 {
		return 0, false
	}
	return float64(gc) / float64(gc+at), true
}

const lineWidth = 60

// Write renders records as FASTA with 60-column sequence lines.
// Records without a retained sequence are skipped.
func Write(w io.Writer, records []chromdetect.Scaffold) error {
	for _, rec := range records {
		if rec.Sequence == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, ">%s\n", rec.Name); err != nil {
			return err
		}
		for start := 0; start < len(rec.Sequence); start += lineWidth {
			end := start + lineWidth
			if end > len(rec.Sequence) {
				end = len(rec.Sequence)
			}
			if _, err := fmt.Fprintln(w, rec.Sequence[start:end]); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteFile writes records as FASTA to path.
func WriteFile(path string, records []chromdetect.Scaffold) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
