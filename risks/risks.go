package risks

import "github.com/katalvlaran/maintsched/ids"

// Risks is the jagged, per-candidate-start risk tensor for one intervention.
// See doc.go for the flat-buffer layout.
type Risks struct {
	nscenarios  int
	periodSlice []int // length nstarts+1, element offsets into values
	values      []float64
	summed      []float64 // length sum(duration(s)) across starts
}

// NScenarios returns the number of scenarios every day in this tensor
// provisions room for (the instance-wide maximum across all days).
func (r Risks) NScenarios() int { return r.nscenarios }

// Values returns the slice of length duration(start)*NScenarios holding
// every (day-offset, scenario) risk value for the period beginning at
// start, day-offset-major and scenario-minor.
func (r Risks) Values(start ids.Day) []float64 {
	i := int(start)
	return r.values[r.periodSlice[i]:r.periodSlice[i+1]]
}

// SummedValues returns the slice of length duration(start) holding, for each
// day-offset in the period beginning at start, the sum over scenarios of
// that day's risk.
func (r Risks) SummedValues(start ids.Day) []float64 {
	i := int(start)
	lo := r.periodSlice[i] / r.nscenarios
	hi := r.periodSlice[i+1] / r.nscenarios
	return r.summed[lo:hi]
}
