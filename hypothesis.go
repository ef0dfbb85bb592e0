package heredity

import "math/bits"

// Set is a subset of the population, one bit per person in Pedigree order.
type Set uint64

// Contains reports whether the person at bit position i is in the set.
func (s Set) Contains(i int) bool {
	return s&(1<<uint(i)) != 0
}

// Len returns the number of people in the set.
func (s Set) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Hypothesis is one complete assignment of gene counts and trait values to
// the whole population. People absent from both gene sets carry zero copies;
// people absent from HaveTrait do not express the trait.
type Hypothesis struct {
	OneGene   Set
	TwoGenes  Set
	HaveTrait Set
}

// GeneCopies returns the number of gene copies this hypothesis assigns to
// the person at bit position i.
func (h *Hypothesis) GeneCopies(i int) int {
	if h.TwoGenes.Contains(i) {
		return 2
	}
	if h.OneGene.Contains(i) {
		return 1
	}
	return 0
}

// HypothesisReader enumerates, in a fixed deterministic order, every
// hypothesis consistent with the pedigree's trait observations. It walks
// trait subsets in ascending mask order, discarding any subset that
// contradicts an observation before gene partitions are generated; for each
// surviving subset it walks all disjoint (one-copy, two-copy) partitions of
// the population. Nothing is materialized: the space grows as 6^n, so the
// reader yields one hypothesis at a time and a fresh reader restarts the
// sequence from the beginning.
type HypothesisReader struct {
	HypothesesSeen uint64

	full     Set // every person
	observed Set // people with a recorded trait
	want     Set // people recorded trait-present

	trait    Set
	one, two Set
	started  bool
	done     bool
}

// NewHypothesisReader prepares enumeration over p. The pedigree is not
// retained; only its observation masks are.
func (p *Pedigree) NewHypothesisReader() *HypothesisReader {
	hr := &HypothesisReader{
		done: len(p.People) == 0,
	}

	if len(p.People) > 0 {
		hr.full = Set(1)<<uint(len(p.People)) - 1
	}
	for i := range p.People {
		switch p.People[i].Trait {
		case TraitPresent:
			hr.observed |= 1 << uint(i)
			hr.want |= 1 << uint(i)
		case TraitAbsent:
			hr.observed |= 1 << uint(i)
		}
	}

	return hr
}

// Read returns the next consistent hypothesis, or nil once the space is
// exhausted. The returned value is freshly allocated and remains valid after
// subsequent calls.
func (hr *HypothesisReader) Read() *Hypothesis {
	if hr.done {
		return nil
	}

	if !hr.started {
		hr.started = true
		if !hr.consistent(hr.trait) && !hr.advanceTrait() {
			return nil
		}
	} else if !hr.advance() {
		return nil
	}

	hr.HypothesesSeen++

	return &Hypothesis{
		OneGene:   hr.one,
		TwoGenes:  hr.two,
		HaveTrait: hr.trait,
	}
}

// advance steps the enumeration odometer: the two-copy set varies fastest,
// then the one-copy set, then the trait subset.
func (hr *HypothesisReader) advance() bool {
	hr.two = nextSubset(hr.two, hr.full&^hr.one)
	if hr.two != 0 {
		return true
	}

	hr.one = nextSubset(hr.one, hr.full)
	if hr.one != 0 {
		return true
	}

	return hr.advanceTrait()
}

// advanceTrait moves to the next trait subset that agrees with every
// observation, resetting the gene partition. Returns false when the trait
// subsets are exhausted.
func (hr *HypothesisReader) advanceTrait() bool {
	for {
		if hr.trait == hr.full {
			hr.done = true
			return false
		}
		hr.trait++
		if hr.consistent(hr.trait) {
			hr.one, hr.two = 0, 0
			return true
		}
	}
}

// consistent reports whether a trait subset agrees with every recorded
// observation: observed-present people must be members, observed-absent
// people must not be.
func (hr *HypothesisReader) consistent(trait Set) bool {
	return trait&hr.observed == hr.want
}

// nextSubset returns the submask of mask that follows s in the enumeration
// cycle, wrapping to 0 after the final submask. Only bits of mask are ever
// set; s must itself be a submask of mask.
func nextSubset(s, mask Set) Set {
	return (s - mask) & mask
}
