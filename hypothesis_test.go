package heredity

import "testing"

func testPedigree(t *testing.T, people []Person) *Pedigree {
	t.Helper()

	p, err := NewPedigree(people)
	if err != nil {
		t.Fatal(err)
	}

	return p
}

func TestHypothesisReaderCountsNoEvidence(t *testing.T) {
	p := testPedigree(t, []Person{
		{Name: "A"},
		{Name: "B"},
	})

	hr := p.NewHypothesisReader()

	count := 0
	for h := hr.Read(); h != nil; h = hr.Read() {
		count++
	}

	// 2 people: 4 trait subsets, 9 gene partitions each
	if expected := 36; count != expected {
		t.Errorf("Got %d hypotheses, expected %d", count, expected)
	}
	if hr.HypothesesSeen != 36 {
		t.Errorf("Got HypothesesSeen %d, expected 36", hr.HypothesesSeen)
	}
}

func TestHypothesisReaderPrunesEvidence(t *testing.T) {
	p := testPedigree(t, []Person{
		{Name: "A", Trait: TraitPresent},
		{Name: "B"},
	})

	hr := p.NewHypothesisReader()

	count := 0
	for h := hr.Read(); h != nil; h = hr.Read() {
		count++
		if ai, _ := p.Lookup("A"); !h.HaveTrait.Contains(ai) {
			t.Fatalf("Hypothesis %+v contradicts A's observed trait", h)
		}
	}

	// Half the trait subsets survive
	if expected := 18; count != expected {
		t.Errorf("Got %d hypotheses, expected %d", count, expected)
	}
}

func TestHypothesisReaderFullyObserved(t *testing.T) {
	p := testPedigree(t, []Person{
		{Name: "A", Trait: TraitPresent},
		{Name: "B", Trait: TraitAbsent},
	})

	hr := p.NewHypothesisReader()

	traitSets := make(map[Set]bool)
	count := 0
	for h := hr.Read(); h != nil; h = hr.Read() {
		traitSets[h.HaveTrait] = true
		count++
	}

	// One surviving trait subset, all gene partitions still enumerated
	if len(traitSets) != 1 {
		t.Errorf("Got %d surviving trait subsets, expected 1", len(traitSets))
	}
	if expected := 9; count != expected {
		t.Errorf("Got %d hypotheses, expected %d", count, expected)
	}
}

func TestHypothesisReaderEmptyPopulation(t *testing.T) {
	p := testPedigree(t, nil)

	hr := p.NewHypothesisReader()
	if h := hr.Read(); h != nil {
		t.Errorf("Got %+v from an empty population, expected nil", h)
	}
}

func TestHypothesisReaderDeterministicRestart(t *testing.T) {
	p := testPedigree(t, []Person{
		{Name: "A"},
		{Name: "B", Trait: TraitAbsent},
		{Name: "C"},
	})

	var first []Hypothesis
	hr := p.NewHypothesisReader()
	for h := hr.Read(); h != nil; h = hr.Read() {
		first = append(first, *h)
	}

	hr = p.NewHypothesisReader()
	for i := 0; ; i++ {
		h := hr.Read()
		if h == nil {
			if i != len(first) {
				t.Fatalf("Second pass ended after %d hypotheses, expected %d", i, len(first))
			}
			break
		}
		if *h != first[i] {
			t.Fatalf("Hypothesis %d differs between passes: %+v vs %+v", i, *h, first[i])
		}
	}
}

func TestHypothesisGenePartitionsDisjoint(t *testing.T) {
	p := testPedigree(t, []Person{
		{Name: "A"},
		{Name: "B"},
		{Name: "C"},
	})

	hr := p.NewHypothesisReader()
	for h := hr.Read(); h != nil; h = hr.Read() {
		if h.OneGene&h.TwoGenes != 0 {
			t.Fatalf("Gene sets overlap in %+v", h)
		}
	}
}

func TestNextSubsetCycle(t *testing.T) {
	mask := Set(0b1011)

	seen := make(map[Set]bool)
	s := Set(0)
	for {
		if s&^mask != 0 {
			t.Fatalf("Subset %b is not contained in mask %b", s, mask)
		}
		if seen[s] {
			t.Fatalf("Subset %b visited twice", s)
		}
		seen[s] = true

		if s = nextSubset(s, mask); s == 0 {
			break
		}
	}

	if expected := 8; len(seen) != expected {
		t.Errorf("Got %d subsets, expected %d", len(seen), expected)
	}
}

func TestGeneCopies(t *testing.T) {
	h := Hypothesis{OneGene: 0b001, TwoGenes: 0b010}

	for i, expected := range []int{1, 2, 0} {
		if got := h.GeneCopies(i); got != expected {
			t.Errorf("Person %d: got %d copies, expected %d", i, got, expected)
		}
	}
}
