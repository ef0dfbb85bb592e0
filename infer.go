package heredity

// Infer runs the exact-inference engine over p: it enumerates every
// hypothesis consistent with the recorded trait observations, weighs each by
// its joint probability, accumulates the weights into per-person
// distributions, and normalizes them. The returned Results follow Pedigree
// order. On any failure no results are returned.
func Infer(p *Pedigree, probs Probs) (Results, error) {
	if len(p.People) == 0 {
		return nil, ErrDegenerateDistribution
	}

	results := newResults(p)

	hr := p.NewHypothesisReader()
	for h := hr.Read(); h != nil; h = hr.Read() {
		jp, err := JointProbability(p, h, probs)
		if err != nil {
			return nil, err
		}
		results.accumulate(h, jp)
	}

	if err := results.Normalize(); err != nil {
		return nil, err
	}

	return results, nil
}
