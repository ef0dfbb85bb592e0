package heredity

import (
	"fmt"

	"github.com/carbocation/pfx"
)

// JointProbability returns the probability that the exact combination of
// gene counts and trait values described by h occurs across the whole
// population, under the network's independence structure: a founder's gene
// count follows the prior, a child's follows two independent per-parent
// allele transmissions, and each person's trait depends only on their own
// gene count. The result is the product of every person's gene and trait
// factors.
//
// The pedigree is assumed validated; a parent reference that does not
// resolve is a structural error, not a recoverable condition.
func JointProbability(p *Pedigree, h *Hypothesis, probs Probs) (float64, error) {
	probability := 1.0

	for i := range p.People {
		person := &p.People[i]
		copies := h.GeneCopies(i)

		var geneProb float64
		if person.Founder() {
			geneProb = probs.GenePrior[copies]
		} else {
			mi, ok := p.index[person.Mother]
			if !ok {
				return 0, pfx.Err(fmt.Errorf("%s: mother %q is not in the population", person.Name, person.Mother))
			}
			fi, ok := p.index[person.Father]
			if !ok {
				return 0, pfx.Err(fmt.Errorf("%s: father %q is not in the population", person.Name, person.Father))
			}

			geneProb = childGeneProbability(copies, h.GeneCopies(mi), h.GeneCopies(fi), probs.MutationRate)
		}

		traitProb := probs.TraitGivenGene[copies]
		if !h.HaveTrait.Contains(i) {
			traitProb = 1 - traitProb
		}

		probability *= geneProb * traitProb
	}

	return probability, nil
}

// childGeneProbability combines the two independent parental transmission
// events into the probability that the child ends up with copies variant
// alleles. One copy can arrive two ways, so its terms sum.
func childGeneProbability(copies, motherCopies, fatherCopies int, mutationRate float64) float64 {
	switch copies {
	case 2:
		return TransmissionProbability(motherCopies, true, mutationRate) *
			TransmissionProbability(fatherCopies, true, mutationRate)
	case 1:
		return TransmissionProbability(motherCopies, true, mutationRate)*
			TransmissionProbability(fatherCopies, false, mutationRate) +
			TransmissionProbability(motherCopies, false, mutationRate)*
				TransmissionProbability(fatherCopies, true, mutationRate)

	default:
		return TransmissionProbability(motherCopies, false, mutationRate) *
			TransmissionProbability(fatherCopies, false, mutationRate)
	}
}
