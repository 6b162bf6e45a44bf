package maintenance

import (
	"math"

	"github.com/katalvlaran/maintsched/exclusion"
	"github.com/katalvlaran/maintsched/ids"
	"github.com/katalvlaran/maintsched/intervention"
	"github.com/katalvlaran/maintsched/period"
	"github.com/katalvlaran/maintsched/workload"
)

// Maintenance is the full optimization instance: every Intervention, every
// Resource's bounds, the per-intervention exclusion rules, the per-day
// scenario counts, and the tail quantile parameters of the risk objective.
type Maintenance struct {
	ndays           int
	quantile        float64
	alpha           float64
	interventions   []intervention.Intervention
	resources       []workload.Resource
	exclusions      []exclusion.InterventionExclusions
	scenariosNumber []int
	quantiles       []int
	nscenarios      int
}

// NDays returns the planning horizon length in days.
func (m Maintenance) NDays() int { return m.ndays }

// Quantile returns the configured tail quantile tau.
func (m Maintenance) Quantile() float64 { return m.quantile }

// Alpha returns the mean/excess blending weight.
func (m Maintenance) Alpha() float64 { return m.alpha }

// NResources returns how many resources the instance tracks.
func (m Maintenance) NResources() int { return len(m.resources) }

// Resources returns every Resource's min/max bound arrays, indexed by RID.
func (m Maintenance) Resources() []workload.Resource { return m.resources }

// Resource returns the bounds for a single resource.
func (m Maintenance) Resource(rid ids.RID) workload.Resource { return m.resources[int(rid)] }

// NInterventions returns how many interventions the instance schedules.
func (m Maintenance) NInterventions() int { return len(m.interventions) }

// Intervention returns the Intervention identified by iid.
func (m Maintenance) Intervention(iid ids.IID) intervention.Intervention {
	return m.interventions[int(iid)]
}

// Interventions returns every Intervention, indexed by IID.
func (m Maintenance) Interventions() []intervention.Intervention { return m.interventions }

// InterventionIDs returns every valid IID, in order.
func (m Maintenance) InterventionIDs() []ids.IID {
	out := make([]ids.IID, len(m.interventions))
	for i := range out {
		out[i] = ids.IID(i)
	}
	return out
}

// Exclusions returns the exclusion rule set for an intervention.
func (m Maintenance) Exclusions(iid ids.IID) exclusion.InterventionExclusions {
	return m.exclusions[int(iid)]
}

// NScenarios returns the instance-wide maximum scenario count, used to size
// risk tensors and quantile indices.
func (m Maintenance) NScenarios() int { return m.nscenarios }

// ScenariosNumber returns the per-day scenario count table.
func (m Maintenance) ScenariosNumber() []int { return m.scenariosNumber }

// Quantiles returns the per-day quantile index table (zero-based order
// statistic position into that day's scenario sums).
func (m Maintenance) Quantiles() []int { return m.quantiles }

// QuantilesByPeriod returns the quantile indices for every day in p.
func (m Maintenance) QuantilesByPeriod(p period.Period) []int {
	start, end := p.DaysExclusive()
	return m.quantiles[int(start):int(end)]
}

// ScenariosNumberByPeriod returns the scenario counts for every day in p.
func (m Maintenance) ScenariosNumberByPeriod(p period.Period) []int {
	start, end := p.DaysExclusive()
	return m.scenariosNumber[int(start):int(end)]
}

// quantileIndex computes the zero-based order-statistic position for a
// single day: ceil(nb*quantile) - 1.
func quantileIndex(nb int, quantile float64) int {
	return int(math.Ceil(float64(nb)*quantile)) - 1
}

// MaintenanceMapping carries human-readable names for resources,
// interventions and seasons. It is never consulted by the solver; it exists
// so a loader/writer collaborator can render a Planning back into the
// source instance's vocabulary.
type MaintenanceMapping struct {
	Resources     map[ids.RID]string
	Interventions map[ids.IID]string
	Seasons       map[ids.SID]string
}

// NewMaintenanceMapping builds an empty MaintenanceMapping with initialized
// maps, ready for population by a loader.
func NewMaintenanceMapping() MaintenanceMapping {
	return MaintenanceMapping{
		Resources:     make(map[ids.RID]string),
		Interventions: make(map[ids.IID]string),
		Seasons:       make(map[ids.SID]string),
	}
}

// Planning is an ordered schedule: one (IID, Day) pair per scheduled
// intervention, in IID order.
type Planning struct {
	Interventions []PlannedIntervention
}

// PlannedIntervention pairs an intervention with the day it starts on.
type PlannedIntervention struct {
	IID   ids.IID
	Start ids.Day
}
