package chromdetect

import "fmt"

// Options configure one classification run.
type Options struct {
	// MinChromosomeSize is the length threshold for the size heuristic.
	// Zero means DefaultMinChromosomeSize.
	MinChromosomeSize int

	// ExpectedChromosomes is the karyotype for the adjustment pass,
	// applied only when UseKaryotype is set. A negative count is a
	// configuration error.
	ExpectedChromosomes int
	UseKaryotype        bool

	// Custom naming rules, merged ahead of the built-ins.
	Custom *CustomRules

	// Report supplies authoritative assignments that override both the
	// pattern matcher and the size heuristic for any scaffold it names.
	Report *AssemblyReport
}

// Classify runs the full pipeline over a scaffold set: aggregate
// statistics, per-scaffold name matching and size evaluation, the
// reconciliation rules, then the optional karyotype pass. Results come
// back in input order, one per scaffold.
//
// Configuration faults (bad custom patterns, negative karyotype) and
// data faults (duplicate names, non-positive lengths) surface before
// any partial results. An empty scaffold set is not a fault: it yields
// empty results and zero statistics.
func Classify(records []Scaffold, opt Options) ([]Result, AssemblyStats, error) {
	if opt.UseKaryotype && opt.ExpectedChromosomes < 0 {
		return nil, AssemblyStats{}, fmt.Errorf("%w: expected chromosome count %d is negative", ErrConfig, opt.ExpectedChromosomes)
	}

	rules := DefaultRules()
	if opt.Custom != nil {
		var err error
		if rules, err = CompileRules(opt.Custom); err != nil {
			return nil, AssemblyStats{}, err
		}
	}

	seen := make(map[string]bool, len(records))
	for _, rec := range records {
		if rec.Name == "" {
			return nil, AssemblyStats{}, fmt.Errorf("%w: scaffold with empty name", ErrData)
		}
		if seen[rec.Name] {
			return nil, AssemblyStats{}, fmt.Errorf("%w: duplicate scaffold name %q", ErrData, rec.Name)
		}
		seen[rec.Name] = true
		if rec.Length <= 0 {
			return nil, AssemblyStats{}, fmt.Errorf("%w: scaffold %q has length %d", ErrData, rec.Name, rec.Length)
		}
	}

	stats := ComputeStats(records)
	if len(records) == 0 {
		return []Result{}, stats, nil
	}

	var assignments map[string]Assignment
	if opt.Report != nil {
		assignments = opt.Report.Assignments()
	}

	results := make([]Result, 0, len(records))
	for _, rec := range records {
		if a, ok := assignments[rec.Name]; ok {
			res := Result{
				Name:            rec.Name,
				Length:          rec.Length,
				Classification:  a.Classification,
				Confidence:      1.0,
				DetectionMethod: MethodAssemblyReport,
				ChromosomeID:    a.ChromosomeID,
			}
			if rec.HasGC {
				res.GC = rec.GC
			}
			results = append(results, res)
			continue
		}

		name := rules.Match(rec.Name)
		size, err := evaluateSize(rec.Length, stats, opt.MinChromosomeSize)
		if err != nil {
			return nil, AssemblyStats{}, err
		}
		results = append(results, reconcile(rec, name, size))
	}

	if opt.UseKaryotype {
		var err error
		if results, err = AdjustKaryotype(results, opt.ExpectedChromosomes); err != nil {
			return nil, AssemblyStats{}, err
		}
	}

	return results, stats, nil
}
