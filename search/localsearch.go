package search

import (
	"sort"

	"github.com/katalvlaran/maintsched/ids"
	"github.com/katalvlaran/maintsched/intervention"
	"github.com/katalvlaran/maintsched/maintenance"
	"github.com/katalvlaran/maintsched/period"
	"github.com/katalvlaran/maintsched/seasons"
)

// LocalSearch drives a constructive, then repairable, local search over a
// Maintenance instance: Init places every intervention it can in a single
// greedy pass, and Schedule/Unschedule/Move let a caller repair the
// resulting Planning one intervention at a time.
type LocalSearch struct {
	maintenance maintenance.Maintenance
	state       SearchState
	opts        Options
}

// New builds a LocalSearch over m with every intervention unplanned.
func New(m maintenance.Maintenance, opts ...Option) *LocalSearch {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return &LocalSearch{
		maintenance: m,
		state:       newSearchState(m.NInterventions(), m.NResources(), m.NDays(), m.NScenarios()),
		opts:        o,
	}
}

// CurrentPlanning returns every currently scheduled intervention and its
// start day, in IID order.
func (ls *LocalSearch) CurrentPlanning() maintenance.Planning {
	planned := make([]ids.IID, len(ls.state.planned))
	copy(planned, ls.state.planned)
	sort.Slice(planned, func(i, j int) bool { return planned[i] < planned[j] })

	out := make([]maintenance.PlannedIntervention, 0, len(planned))
	for _, iid := range planned {
		p, _ := ls.state.Period(iid)
		out = append(out, maintenance.PlannedIntervention{IID: iid, Start: p.Start()})
	}
	return maintenance.Planning{Interventions: out}
}

// Cost returns the current scalar objective value.
func (ls *LocalSearch) Cost() float64 { return ls.state.cost.Cost() }

// Schedulable reports whether intervention iid could start on day without
// violating an exclusion rule or a resource's max bound, given everything
// currently scheduled.
func (ls *LocalSearch) Schedulable(iid ids.IID, day ids.Day) bool {
	iv := ls.maintenance.Intervention(iid)
	if !iv.IsDayCompatible(day) {
		return false
	}
	p := iv.Period(day)
	if !ls.checkExclusion(iid, p, iv.Seasons(day)) {
		return false
	}
	return ls.state.workloads.CheckAdding(p, iv.Workloads(day), ls.maintenance.Resources())
}

func (ls *LocalSearch) checkExclusion(iid ids.IID, p period.Period, active seasons.Seasons) bool {
	var partners []ids.IID
	for _, other := range ls.state.planned {
		if other == iid {
			continue
		}
		otherPeriod, ok := ls.state.Period(other)
		if !ok || !otherPeriod.Intersects(p) {
			continue
		}
		otherSeasons, ok := ls.state.Seasons(other)
		if !ok || otherSeasons.IsDisjoint(active) {
			continue
		}
		partners = append(partners, other)
	}
	sort.Slice(partners, func(i, j int) bool { return partners[i] < partners[j] })
	return !ls.maintenance.Exclusions(iid).IsExcluded(active, partners)
}

// Schedule places iid at day, updating workloads and the cost pipeline.
// It returns ErrInfeasiblePlacement without mutating state if the
// placement is infeasible.
func (ls *LocalSearch) Schedule(iid ids.IID, day ids.Day) error {
	if !ls.Schedulable(iid, day) {
		return ErrInfeasiblePlacement
	}
	iv := ls.maintenance.Intervention(iid)
	p := iv.Period(day)
	active := iv.Seasons(day)

	ls.state.workloads.IncreaseWorkloads(p, iv.Workloads(day))
	ls.applyRiskDelta(p, iv, +1)
	ls.state.markPlanned(iid, p, active)

	ls.opts.Logger.Debug().Int("iid", int(iid)).Int("day", int(day)).Float64("cost", ls.state.cost.Cost()).Msg("scheduled intervention")
	return nil
}

// Unschedule removes iid's current placement, updating workloads and the
// cost pipeline. It returns ErrNotScheduled if iid has no placement.
func (ls *LocalSearch) Unschedule(iid ids.IID) error {
	p, ok := ls.state.Period(iid)
	if !ok {
		return ErrNotScheduled
	}
	iv := ls.maintenance.Intervention(iid)
	day := p.Start()

	ls.state.workloads.DecreaseWorkloads(p, iv.Workloads(day))
	ls.applyRiskDelta(p, iv, -1)
	ls.state.markUnplanned(iid)

	ls.opts.Logger.Debug().Int("iid", int(iid)).Msg("unscheduled intervention")
	return nil
}

// Move relocates iid from its current day to newDay: unschedule, then
// schedule. If the new placement is infeasible, the original placement is
// restored and ErrInfeasiblePlacement is returned; state is never left
// half-moved.
func (ls *LocalSearch) Move(iid ids.IID, newDay ids.Day) error {
	_, err := ls.TryMove(iid, newDay)
	return err
}

// TryMove behaves like Move but also reports whether the move succeeded,
// distinguishing a clean no-op (iid already at newDay) from an applied move.
func (ls *LocalSearch) TryMove(iid ids.IID, newDay ids.Day) (moved bool, err error) {
	cur, ok := ls.state.Period(iid)
	if !ok {
		return false, ErrNotScheduled
	}
	if cur.Start() == newDay {
		return false, nil
	}

	if err := ls.Unschedule(iid); err != nil {
		return false, err
	}
	if err := ls.Schedule(iid, newDay); err != nil {
		// Roll back: the old placement is guaranteed feasible since it held
		// before this call.
		if rerr := ls.Schedule(iid, cur.Start()); rerr != nil {
			panic("search: rollback of failed Move could not restore prior placement: " + rerr.Error())
		}
		return false, err
	}
	return true, nil
}

// applyRiskDelta runs the six-stage cost pipeline for a single placement
// change, sign +1 to add iv's contribution or -1 to remove it.
func (ls *LocalSearch) applyRiskDelta(p period.Period, iv intervention.Intervention, sign float64) {
	day := p.Start()
	scenariosNumber := ls.maintenance.ScenariosNumberByPeriod(p)
	quantiles := ls.maintenance.QuantilesByPeriod(p)

	riskIncrementer{state: &ls.state.cost, sign: sign}.
		updateRisks(p, iv.PeriodRisks(day)).
		updateMean(p, iv.SummedRisks(day), scenariosNumber).
		updateQuantile(p, scenariosNumber, quantiles).
		updateExcess(p).
		updateCost(ls.maintenance.NDays(), ls.maintenance.Alpha())
}

// VerifyMinBounds reports every (resource, day) pair where current
// cumulative workload falls below that resource's configured minimum,
// given the currently scheduled interventions. This is a read-only audit
// query: Schedule never enforces min bounds at placement time, since
// overall min-bound satisfaction is a property of the final Planning, not
// of each incremental step.
func (ls *LocalSearch) VerifyMinBounds() []MinBoundViolation {
	var violations []MinBoundViolation
	resources := ls.maintenance.Resources()
	for rid, res := range resources {
		loads := ls.state.workloads.workloads[rid]
		for day, v := range loads {
			if v < res.Min[day] {
				violations = append(violations, MinBoundViolation{
					RID: ids.RID(rid),
					Day: ids.Day(day),
					Workload: v,
					Min: res.Min[day],
				})
			}
		}
	}
	return violations
}

// MinBoundViolation reports one (resource, day) pair where cumulative
// workload is below the configured minimum.
type MinBoundViolation struct {
	RID      ids.RID
	Day      ids.Day
	Workload float64
	Min      float64
}
