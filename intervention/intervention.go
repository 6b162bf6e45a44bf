package intervention

import (
	"github.com/katalvlaran/maintsched/ids"
	"github.com/katalvlaran/maintsched/period"
	"github.com/katalvlaran/maintsched/risks"
	"github.com/katalvlaran/maintsched/seasons"
	"github.com/katalvlaran/maintsched/workload"
)

// Intervention is the immutable per-task bundle: one maintenance task's
// candidate start days together with, per start, its occupied Period, its
// active Seasons mask, its risk contribution and the Workload it commits
// to each resource. periods, seasonsOfStart and workloads are all indexed
// directly by start Day. Builder stores them as given: it neither filters
// nor checks that every candidate start d satisfies d <= latestStart and
// period(d).End() <= ndays-1.
type Intervention struct {
	latestStart    ids.Day
	periods        []period.Period   // indexed by start Day
	seasonsOfStart []seasons.Seasons // indexed by start Day
	risks          risks.Risks
	// workloads[start] holds nresources entries, in resourceOrder, for that
	// candidate start.
	workloads     [][]workload.Workload
	resourceOrder []ids.RID
}

// LatestStart returns the last Day this intervention may start on.
func (iv Intervention) LatestStart() ids.Day { return iv.latestStart }

// IsDayCompatible reports whether day is within [0, LatestStart()].
func (iv Intervention) IsDayCompatible(day ids.Day) bool {
	return day <= iv.latestStart
}

// Days returns every candidate start day, 0..=LatestStart(), in order.
// Kept as a first-class accessor because search.LocalSearch.InitNaive (the
// reference-only naive constructive pass) iterates it directly.
func (iv Intervention) Days() []ids.Day {
	out := make([]ids.Day, int(iv.latestStart)+1)
	for i := range out {
		out[i] = ids.Day(i)
	}
	return out
}

// Periods returns every candidate-start Period, indexed by start Day.
func (iv Intervention) Periods() []period.Period { return iv.periods }

// Period returns the Period corresponding to starting on day.
func (iv Intervention) Period(day ids.Day) period.Period {
	return iv.periods[int(day)]
}

// SummedRisks returns, for the period beginning at day, the per-day-offset
// sum over scenarios (risks.Risks.SummedValues).
func (iv Intervention) SummedRisks(day ids.Day) []float64 {
	return iv.risks.SummedValues(day)
}

// PeriodRisks returns, for the period beginning at day, every
// (day-offset, scenario) risk value (risks.Risks.Values).
func (iv Intervention) PeriodRisks(day ids.Day) []float64 {
	return iv.risks.Values(day)
}

// Seasons returns the active-season mask for the period beginning at day.
func (iv Intervention) Seasons(day ids.Day) seasons.Seasons {
	return iv.seasonsOfStart[int(day)]
}

// NResources returns how many distinct resources this intervention consumes.
func (iv Intervention) NResources() int { return len(iv.resourceOrder) }

// ResourceOrder returns the fixed resource order workload entries follow.
func (iv Intervention) ResourceOrder() []ids.RID { return iv.resourceOrder }

// Workloads returns the nresources Workload entries committed if this
// intervention starts on day, in ResourceOrder.
func (iv Intervention) Workloads(day ids.Day) []workload.Workload {
	return iv.workloads[int(day)]
}
