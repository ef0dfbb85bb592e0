package heredity

import (
	"fmt"
	"io"

	"github.com/carbocation/pfx"
)

// WriteReport renders every person's normalized distributions to w in
// pedigree order, four decimal places per value.
func WriteReport(w io.Writer, p *Pedigree, results Results) error {
	if len(results) != len(p.People) {
		return pfx.Err(fmt.Errorf("results cover %d people but the pedigree has %d", len(results), len(p.People)))
	}

	for i := range p.People {
		_, err := fmt.Fprintf(w, "%s:\n  Gene:\n    2: %.4f\n    1: %.4f\n    0: %.4f\n  Trait:\n    True: %.4f\n    False: %.4f\n",
			p.People[i].Name,
			results[i].Gene[2],
			results[i].Gene[1],
			results[i].Gene[0],
			results[i].Trait.Present(),
			results[i].Trait.Absent(),
		)
		if err != nil {
			return pfx.Err(err)
		}
	}

	return nil
}
