package heredity

import (
	"errors"
	"fmt"
)

// ErrDegenerateDistribution indicates a normalization total of zero: either
// the population was empty or the hypothesis space carried no probability
// mass. No partial results are produced.
var ErrDegenerateDistribution = errors.New("distribution total is zero; cannot normalize")

// DataFormatError describes a malformed population record: an unrecognized
// trait encoding, a dangling or one-sided parent reference, a duplicate or
// empty name, or a parental cycle. It is always fatal and always raised
// before any inference begins.
type DataFormatError struct {
	Record string // the offending record's name, when known
	Reason string
}

func (e *DataFormatError) Error() string {
	if e.Record == "" {
		return fmt.Sprintf("data format error: %s", e.Reason)
	}
	return fmt.Sprintf("data format error in record %q: %s", e.Record, e.Reason)
}
