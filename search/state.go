package search

import (
	"github.com/katalvlaran/maintsched/ids"
	"github.com/katalvlaran/maintsched/period"
	"github.com/katalvlaran/maintsched/seasons"
	"github.com/katalvlaran/maintsched/workload"
)

// SearchState tracks, for every intervention, whether and where it is
// currently placed, plus the derived WorkloadsState and CostState. A nil
// entry in periods/activeSeasons means that intervention is unplanned.
type SearchState struct {
	periods       []*period.Period
	activeSeasons []*seasons.Seasons
	workloads     WorkloadsState
	cost          CostState
	unplanned     map[ids.IID]struct{}
	planned       []ids.IID
}

// newSearchState allocates a fully-unplanned SearchState sized for a
// Maintenance instance with the given dimensions.
func newSearchState(ninterventions, nresources, ndays, nscenarios int) SearchState {
	unplanned := make(map[ids.IID]struct{}, ninterventions)
	for i := 0; i < ninterventions; i++ {
		unplanned[ids.IID(i)] = struct{}{}
	}

	workloads := make([][]float64, nresources)
	for r := range workloads {
		workloads[r] = make([]float64, ndays)
	}

	return SearchState{
		periods:       make([]*period.Period, ninterventions),
		activeSeasons: make([]*seasons.Seasons, ninterventions),
		workloads:     WorkloadsState{workloads: workloads},
		cost: CostState{
			nscenarios:   nscenarios,
			risks:        make([]float64, ndays*nscenarios),
			summedRisks:  make([]float64, ndays),
			meanRisks:    make([]float64, ndays),
			quantileRisks: make([]float64, ndays),
			excessRisks:  make([]float64, ndays),
		},
		unplanned: unplanned,
		planned:   make([]ids.IID, 0, ninterventions),
	}
}

// Period returns the current placement for iid, or false if unplanned.
func (s SearchState) Period(iid ids.IID) (period.Period, bool) {
	p := s.periods[int(iid)]
	if p == nil {
		return period.Period{}, false
	}
	return *p, true
}

// Seasons returns the active-season mask for iid's current placement, or
// false if unplanned.
func (s SearchState) Seasons(iid ids.IID) (seasons.Seasons, bool) {
	sm := s.activeSeasons[int(iid)]
	if sm == nil {
		return seasons.Seasons{}, false
	}
	return *sm, true
}

// Planned returns every currently scheduled IID, in schedule order.
func (s SearchState) Planned() []ids.IID { return s.planned }

// Unplanned reports whether iid currently has no placement.
func (s SearchState) Unplanned(iid ids.IID) bool {
	_, ok := s.unplanned[iid]
	return ok
}

func (s *SearchState) markPlanned(iid ids.IID, p period.Period, sm seasons.Seasons) {
	delete(s.unplanned, iid)
	s.planned = append(s.planned, iid)
	s.periods[int(iid)] = &p
	s.activeSeasons[int(iid)] = &sm
}

func (s *SearchState) markUnplanned(iid ids.IID) {
	s.unplanned[iid] = struct{}{}
	s.periods[int(iid)] = nil
	s.activeSeasons[int(iid)] = nil
	for i, planned := range s.planned {
		if planned == iid {
			s.planned = append(s.planned[:i], s.planned[i+1:]...)
			break
		}
	}
}

// WorkloadsState tracks, per resource, the cumulative load committed on
// every day by every currently scheduled intervention.
type WorkloadsState struct {
	workloads [][]float64 // [rid][day]
}

// IncreaseWorkloads adds each Workload's per-day loads into p's window.
func (w *WorkloadsState) IncreaseWorkloads(p period.Period, loads []workload.Workload) {
	begin := int(p.Start())
	for _, wl := range loads {
		dst := w.workloads[int(wl.RID())][begin : begin+len(wl.Loads())]
		addVecInPlace(dst, wl.Loads())
	}
}

// DecreaseWorkloads subtracts each Workload's per-day loads from p's
// window, undoing a prior IncreaseWorkloads call.
func (w *WorkloadsState) DecreaseWorkloads(p period.Period, loads []workload.Workload) {
	begin := int(p.Start())
	for _, wl := range loads {
		dst := w.workloads[int(wl.RID())][begin : begin+len(wl.Loads())]
		subVecInPlace(dst, wl.Loads())
	}
}

// CheckAdding reports whether adding every Workload's loads over p stays
// within each resource's max bound for every day in p.
func (w *WorkloadsState) CheckAdding(p period.Period, loads []workload.Workload, resources []workload.Resource) bool {
	begin := int(p.Start())
	for _, wl := range loads {
		rid := int(wl.RID())
		cur := w.workloads[rid][begin : begin+len(wl.Loads())]
		maxs := resources[rid].Max[begin : begin+len(wl.Loads())]
		for i, v := range wl.Loads() {
			if v+cur[i] > maxs[i] {
				return false
			}
		}
	}
	return true
}

// CostState holds the five flat buffers the risk/cost pipeline reads and
// writes: the raw per-(day,scenario) risks, their per-day scenario sum, the
// per-day mean, the per-day tau-quantile and the per-day excess (quantile
// minus mean, clamped at zero), plus the running mean and excess totals and
// the scalar cost derived from them.
type CostState struct {
	nscenarios       int
	risks            []float64
	summedRisks      []float64
	meanRisks        []float64
	summedMeanRisks  float64
	quantileRisks    []float64
	excessRisks      []float64
	summedExcess     float64
	cost             float64
}

// Cost returns the current scalar objective value.
func (c CostState) Cost() float64 { return c.cost }

func addVecInPlace(x, y []float64) {
	for i := range x {
		x[i] += y[i]
	}
}

func subVecInPlace(x, y []float64) {
	for i := range x {
		x[i] -= y[i]
	}
}

func meanVec(dst, sums []float64, divisors []int) {
	for i := range dst {
		dst[i] = sums[i] / float64(divisors[i])
	}
}
