package breakeven

// Savings holds per-year comparisons of the new series against the old one.
type Savings struct {
	// Absolute is new - old in kg CO2e. Negative values mean the new unit
	// is ahead.
	Absolute []float64 `json:"absolute"`

	// Relative is 1 - old/new. Entries where new is 0 are 0.
	Relative []float64 `json:"relative"`

	// Ratio is new/old. Entries where old is 0 are 0.
	Ratio []float64 `json:"ratio"`
}

// ComputeSavings compares two equally indexed series entry by entry. Extra
// entries in the longer series are ignored.
func ComputeSavings(oldSeries, newSeries []float64) Savings {
	n := min(len(oldSeries), len(newSeries))
	s := Savings{
		Absolute: make([]float64, n),
		Relative: make([]float64, n),
		Ratio:    make([]float64, n),
	}
	for i := 0; i < n; i++ {
		o, nw := oldSeries[i], newSeries[i]
		s.Absolute[i] = nw - o
		if nw != 0 {
			s.Relative[i] = 1 - o/nw
		}
		if o != 0 {
			s.Ratio[i] = nw / o
		}
	}
	return s
}
