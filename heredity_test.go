package heredity

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewPedigreeValid(t *testing.T) {
	p := testPedigree(t, []Person{
		{Name: "Harry", Mother: "Lily", Father: "James"},
		{Name: "James"},
		{Name: "Lily"},
	})

	if i, ok := p.Lookup("Lily"); !ok || i != 2 {
		t.Errorf("Lookup(Lily) = %d, %v; expected 2, true", i, ok)
	}
	if _, ok := p.Lookup("Voldemort"); ok {
		t.Error("Lookup of an absent name reported success")
	}
	if p.People[0].Founder() {
		t.Error("Harry reported as a founder despite having parents")
	}
	if !p.People[1].Founder() {
		t.Error("James not reported as a founder")
	}
}

func TestNewPedigreeRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name   string
		people []Person
	}{
		{"duplicate name", []Person{{Name: "A"}, {Name: "A"}}},
		{"empty name", []Person{{Name: ""}}},
		{"one-sided parents", []Person{{Name: "A", Mother: "B"}, {Name: "B"}}},
		{"dangling mother", []Person{{Name: "A", Mother: "ghost", Father: "B"}, {Name: "B"}}},
		{"dangling father", []Person{{Name: "A", Mother: "B", Father: "ghost"}, {Name: "B"}}},
		{"self parent", []Person{{Name: "A", Mother: "A", Father: "A"}}},
		{"cycle", []Person{
			{Name: "A", Mother: "B", Father: "B"},
			{Name: "B", Mother: "A", Father: "A"},
		}},
	}

	for _, test := range tests {
		_, err := NewPedigree(test.people)
		if err == nil {
			t.Errorf("%s: got nil error, expected a DataFormatError", test.name)
			continue
		}

		var dfe *DataFormatError
		if !errors.As(err, &dfe) {
			t.Errorf("%s: got %T (%v), expected a *DataFormatError", test.name, err, err)
		}
	}
}

func TestNewPedigreeRejectsOversizedPopulation(t *testing.T) {
	people := make([]Person, MaxPeople+1)
	for i := range people {
		people[i].Name = fmt.Sprintf("p%d", i)
	}

	var dfe *DataFormatError
	if _, err := NewPedigree(people); !errors.As(err, &dfe) {
		t.Errorf("Got %v, expected a *DataFormatError", err)
	}
}

func TestTraitObservationString(t *testing.T) {
	for obs, expected := range map[TraitObservation]string{
		TraitUnknown: "unknown",
		TraitAbsent:  "absent",
		TraitPresent: "present",
	} {
		if got := obs.String(); got != expected {
			t.Errorf("Got %q, expected %q", got, expected)
		}
	}
}
