package heredity

// Probs carries the fixed conditional-probability tables of the network. It
// is a value type: inference runs receive their own copy, so concurrent runs
// (or tests) cannot interfere through shared mutable state.
type Probs struct {
	// GenePrior is the unconditional gene-copy distribution for founders,
	// indexed by copy count.
	GenePrior [3]float64

	// TraitGivenGene is P(trait present | copy count), indexed by copy
	// count. The complement is the probability of the trait being absent.
	TraitGivenGene [3]float64

	// MutationRate is the probability that an allele flips state during
	// transmission from parent to child, applied symmetrically.
	MutationRate float64
}

// DefaultProbs returns the reference tables.
func DefaultProbs() Probs {
	return Probs{
		GenePrior:      [3]float64{0.96, 0.03, 0.01},
		TraitGivenGene: [3]float64{0.01, 0.56, 0.65},
		MutationRate:   0.01,
	}
}

// TransmissionProbability returns the probability that a parent carrying
// parentCopies copies of the variant allele passes the variant on (transmits
// true) or withholds it (transmits false) in one transmission event.
//
// A homozygous parent transmits the variant unless a mutation intervenes; a
// parent with no copies transmits it only through mutation. A heterozygous
// parent transmits each allele with probability 0.5, which the mutation rate
// does not alter: the coin flip over the two alleles is already the random
// event.
func TransmissionProbability(parentCopies int, transmits bool, mutationRate float64) float64 {
	switch parentCopies {
	case 2:
		if transmits {
			return 1 - mutationRate
		}
		return mutationRate
	case 1:
		return 0.5

	default:
		if transmits {
			return mutationRate
		}
		return 1 - mutationRate
	}
}
