package heredity

import "fmt"

// GeneDistribution holds one weight per gene-copy count, indexed 0 through 2.
type GeneDistribution [3]float64

// TraitDistribution holds one weight per trait value.
type TraitDistribution [2]float64

// Absent returns the weight for the trait not being expressed.
func (d TraitDistribution) Absent() float64 { return d[0] }

// Present returns the weight for the trait being expressed.
func (d TraitDistribution) Present() float64 { return d[1] }

// PersonDistribution carries one person's gene and trait weight tables.
// During enumeration they hold unnormalized probability mass; after
// Normalize each sums to 1 and should be treated as immutable output.
type PersonDistribution struct {
	Gene  GeneDistribution
	Trait TraitDistribution
}

// Results holds one PersonDistribution per person, in Pedigree order.
type Results []PersonDistribution

func newResults(p *Pedigree) Results {
	return make(Results, len(p.People))
}

// accumulate adds joint probability mass p to every person's slot matching
// their assignment under h. Every person receives the same total mass over a
// full enumeration, so the per-person gene and trait totals all converge to
// the probability of the evidence.
func (r Results) accumulate(h *Hypothesis, p float64) {
	for i := range r {
		r[i].Gene[h.GeneCopies(i)] += p
		if h.HaveTrait.Contains(i) {
			r[i].Trait[1] += p
		} else {
			r[i].Trait[0] += p
		}
	}
}

// merge adds other's weights into r elementwise. Both must cover the same
// pedigree. Merge order only perturbs least-significant floating-point bits.
func (r Results) merge(other Results) {
	for i := range r {
		for g := range r[i].Gene {
			r[i].Gene[g] += other[i].Gene[g]
		}
		r[i].Trait[0] += other[i].Trait[0]
		r[i].Trait[1] += other[i].Trait[1]
	}
}

// Normalize rescales every distribution in place so it sums to 1. A zero
// total leaves no valid rescaling and returns ErrDegenerateDistribution;
// with a nonzero mutation rate this cannot happen for a nonempty,
// evidence-consistent population, but dividing through unguarded would
// silently produce NaN.
func (r Results) Normalize() error {
	for i := range r {
		geneTotal := r[i].Gene[0] + r[i].Gene[1] + r[i].Gene[2]
		traitTotal := r[i].Trait[0] + r[i].Trait[1]

		if geneTotal == 0 || traitTotal == 0 {
			return fmt.Errorf("person at position %d: %w", i, ErrDegenerateDistribution)
		}

		for g := range r[i].Gene {
			r[i].Gene[g] /= geneTotal
		}
		r[i].Trait[0] /= traitTotal
		r[i].Trait[1] /= traitTotal
	}

	return nil
}
