// Package heredity performs exact Bayesian inference over a single-locus
// pedigree: given partial trait observations for some family members, it
// computes every member's posterior distribution over gene-copy count
// (0, 1, or 2) and trait expression.
package heredity

import "fmt"

// MaxPeople is the largest population a Pedigree may hold. Hypothesis sets
// are represented as 64-bit masks, and enumeration cost grows as 6^n anyway,
// so the cap is never the binding constraint in practice.
const MaxPeople = 62

// TraitObservation is the tri-state recorded phenotype for one person.
type TraitObservation uint8

const (
	TraitUnknown TraitObservation = iota
	TraitAbsent
	TraitPresent
)

func (t TraitObservation) String() string {
	switch t {
	case TraitAbsent:
		return "absent"
	case TraitPresent:
		return "present"

	default:
		return "unknown"
	}
}

// Person is one member of the population. Mother and Father are either both
// empty (a founder) or both set to the name of another person in the same
// pedigree.
type Person struct {
	Name   string
	Mother string
	Father string
	Trait  TraitObservation
}

// Founder reports whether the person has no recorded parents.
func (p *Person) Founder() bool {
	return p.Mother == "" && p.Father == ""
}

// Pedigree is the read-only population model consumed by inference. People
// keeps its construction order, which fixes the bit position each person
// occupies in hypothesis sets and the order of reported results.
type Pedigree struct {
	People []Person

	index map[string]int
}

// NewPedigree builds a Pedigree from people and validates its structure. Any
// violation (duplicate name, a single parent reference, a parent that does
// not resolve, a parental cycle, or a population over MaxPeople) is a
// *DataFormatError.
func NewPedigree(people []Person) (*Pedigree, error) {
	if len(people) > MaxPeople {
		return nil, &DataFormatError{
			Reason: fmt.Sprintf("population of %d exceeds the maximum of %d", len(people), MaxPeople),
		}
	}

	p := &Pedigree{
		People: people,
		index:  make(map[string]int, len(people)),
	}

	for i := range people {
		name := people[i].Name
		if name == "" {
			return nil, &DataFormatError{Reason: "person with empty name"}
		}
		if _, exists := p.index[name]; exists {
			return nil, &DataFormatError{Record: name, Reason: "duplicate name"}
		}
		p.index[name] = i
	}

	for i := range people {
		person := &people[i]
		if (person.Mother == "") != (person.Father == "") {
			return nil, &DataFormatError{
				Record: person.Name,
				Reason: "exactly one parent is recorded; a person must have both parents or neither",
			}
		}
		if person.Founder() {
			continue
		}
		if _, ok := p.index[person.Mother]; !ok {
			return nil, &DataFormatError{
				Record: person.Name,
				Reason: fmt.Sprintf("mother %q is not in the population", person.Mother),
			}
		}
		if _, ok := p.index[person.Father]; !ok {
			return nil, &DataFormatError{
				Record: person.Name,
				Reason: fmt.Sprintf("father %q is not in the population", person.Father),
			}
		}
	}

	if err := p.checkAcyclic(); err != nil {
		return nil, err
	}

	return p, nil
}

// Lookup returns the bit position of the named person.
func (p *Pedigree) Lookup(name string) (int, bool) {
	i, ok := p.index[name]
	return i, ok
}

// checkAcyclic walks the parent relation from every person. The relation must
// form a forest; a person reachable from themselves is a data error.
func (p *Pedigree) checkAcyclic() error {
	const (
		unvisited = iota
		visiting
		done
	)

	state := make([]uint8, len(p.People))

	var visit func(i int) error
	visit = func(i int) error {
		switch state[i] {
		case done:
			return nil
		case visiting:
			return &DataFormatError{
				Record: p.People[i].Name,
				Reason: "parental cycle detected",
			}
		}

		state[i] = visiting
		person := &p.People[i]
		if !person.Founder() {
			if err := visit(p.index[person.Mother]); err != nil {
				return err
			}
			if err := visit(p.index[person.Father]); err != nil {
				return err
			}
		}
		state[i] = done

		return nil
	}

	for i := range p.People {
		if err := visit(i); err != nil {
			return err
		}
	}

	return nil
}
