package strategy

// Fired is a matcher's candidate tagged with the matcher's registry position.
type Fired struct {
	Index     int
	Candidate Candidate
}

// Run evaluates every matcher in order and returns the ones that fired.
func Run(ms []Matcher, in Input) []Fired {
	var out []Fired
	for i, m := range ms {
		if c, ok := m.Match(in); ok {
			out = append(out, Fired{Index: i, Candidate: c})
		}
	}
	return out
}

// Select returns the candidate with the highest base confidence. Ties go to the lower
// registry index. It reports false when nothing fired.
func Select(fired []Fired) (Candidate, bool) {
	if len(fired) == 0 {
		return Candidate{}, false
	}
	best := fired[0]
	for _, f := range fired[1:] {
		if f.Candidate.Base > best.Candidate.Base ||
			(f.Candidate.Base == best.Candidate.Base && f.Index < best.Index) {
			best = f
		}
	}
	return best.Candidate, true
}
