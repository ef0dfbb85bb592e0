package heredity

import "math"

// HypothesisSpaceSize returns the number of hypotheses enumerated for a
// population of n before any evidence pruning: 2^n trait subsets times 3^n
// gene partitions. Saturates at MaxUint64 rather than wrapping.
func HypothesisSpaceSize(n int) uint64 {
	if n < 0 {
		return 0
	}

	size := uint64(1)
	for i := 0; i < n; i++ {
		if size > math.MaxUint64/6 {
			return math.MaxUint64
		}
		size *= 6
	}

	return size
}

func WhichSQLiteDriver() string {
	return whichSQLiteDriver
}
