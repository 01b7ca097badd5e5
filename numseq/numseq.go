package numseq

// Average returns the arithmetic mean of values.
//
// An empty slice yields 0 (a defined sentinel, not an error), so the
// caller never faces a division by zero. Precision is plain float64
// arithmetic: the sum is accumulated in full and divided once.
func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// Max returns the greatest element of values and true.
// When values is empty it returns (0, false): the boolean, not the
// number, carries the "no value" signal.
//
// The scan starts from the first element, so all-negative input and a
// maximum sitting at either end are handled without special cases.
// Ties keep the earliest-seen maximum.
func Max(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}

	best := values[0]
	for _, v := range values[1:] {
		if v > best {
			best = v
		}
	}

	return best, true
}
