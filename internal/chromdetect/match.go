package chromdetect

// NoMatch is the detection method recorded when no naming rule applies.
// A miss is a normal outcome, never an error.
const NoMatch = "no_match"

// Match is the Pattern Matcher's verdict for one scaffold name. A zero
// Category means no rule matched.
type Match struct {
	Category     Classification
	Confidence   float64
	Method       string
	ChromosomeID string
}

// Match evaluates a scaffold name against the ordered rule table and
// returns the first rule that applies. Marker rules (unlocalized, then
// fragment) are checked before chromosome rules: an explicit
// chr1_random must never read as chromosome 1. Matching is
// case-insensitive throughout; the captured chromosome token keeps its
// original case.
func (r *Rules) Match(name string) Match {
	for _, rule := range r.unlocalized {
		if rule.re.MatchString(name) {
			return Match{Category: Unlocalized, Confidence: rule.Confidence, Method: "name_" + rule.Method}
		}
	}

	for _, rule := range r.fragment {
		if rule.re.MatchString(name) {
			return Match{Category: Unplaced, Confidence: rule.Confidence, Method: "name_" + rule.Method}
		}
	}

	for _, rule := range r.chromosome {
		groups := rule.re.FindStringSubmatch(name)
		if groups == nil {
			continue
		}
		m := Match{Category: Chromosome, Confidence: rule.Confidence, Method: "name_" + rule.Method}
		if len(groups) > 1 {
			m.ChromosomeID = groups[1]
		}
		return m
	}

	return Match{Method: NoMatch}
}
