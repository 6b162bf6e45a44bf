package workload

import "github.com/katalvlaran/maintsched/ids"

// Workload is the duration-long committed-load vector an intervention
// contributes to one resource over one candidate period.
type Workload struct {
	rid     ids.RID
	loads   []float64
	prefix  []float64
	total   float64
}

// New builds a Workload for resource rid from its day-by-day loads,
// precomputing the prefix sum and total.
func New(rid ids.RID, loads []float64) Workload {
	prefix := make([]float64, len(loads))
	var running float64
	for i, v := range loads {
		running += v
		prefix[i] = running
	}
	return Workload{rid: rid, loads: loads, prefix: prefix, total: running}
}

// RID returns the resource this workload is for.
func (w Workload) RID() ids.RID { return w.rid }

// Loads returns the raw per-day-in-period committed load.
func (w Workload) Loads() []float64 { return w.loads }

// Total returns the sum of Loads.
func (w Workload) Total() float64 { return w.total }

// PrefixSum returns the cumulative load committed over the first k days
// (0-indexed, inclusive) of the period; PrefixSum(len(Loads())-1) == Total.
func (w Workload) PrefixSum(k int) float64 {
	return w.prefix[k]
}
