package maintenance_test

import (
	"testing"

	"github.com/katalvlaran/maintsched/exclusion"
	"github.com/katalvlaran/maintsched/ids"
	"github.com/katalvlaran/maintsched/intervention"
	"github.com/katalvlaran/maintsched/maintenance"
	"github.com/katalvlaran/maintsched/period"
	"github.com/katalvlaran/maintsched/risks"
	"github.com/katalvlaran/maintsched/seasons"
	"github.com/katalvlaran/maintsched/workload"
	"github.com/stretchr/testify/require"
)

func buildSingleIntervention(t *testing.T) intervention.Intervention {
	t.Helper()
	r, err := risks.NewBuilder().
		WithNScenarios(2).
		WithPeriodSlice([]int{0, 2}).
		WithValues([]float64{1, 2}).
		Build()
	require.NoError(t, err)

	s0 := seasons.New(1)
	iv, err := intervention.NewBuilder().
		WithLatestStart(ids.Day(0)).
		WithPeriods([]period.Period{period.MustNew(ids.Day(0), ids.Day(1))}).
		WithSeasons([]seasons.Seasons{s0}).
		WithRisks(r).
		WithWorkloads([][]workload.Workload{{workload.New(ids.RID(0), []float64{1})}}).
		WithResourceOrder([]ids.RID{ids.RID(0)}).
		Build()
	require.NoError(t, err)
	return iv
}

func buildMaintenance(t *testing.T) maintenance.Maintenance {
	t.Helper()
	iv := buildSingleIntervention(t)
	m, err := maintenance.NewBuilder().
		WithNDays(3).
		WithQuantile(0.8).
		WithAlpha(0.6).
		WithInterventions([]intervention.Intervention{iv}).
		WithResources([]workload.Resource{workload.NewResource([]float64{0}, []float64{10, 10, 10})}).
		WithExclusions([]exclusion.InterventionExclusions{exclusion.New(nil)}).
		WithScenariosNumber([]int{4, 5, 2}).
		Build()
	require.NoError(t, err)
	return m
}

func TestBuilderRejectsIncompleteFields(t *testing.T) {
	_, err := maintenance.NewBuilder().WithNDays(1).Build()
	require.ErrorIs(t, err, maintenance.ErrBuilderIncomplete)
}

func TestBuilderRejectsEmptyScenariosNumber(t *testing.T) {
	iv := buildSingleIntervention(t)
	_, err := maintenance.NewBuilder().
		WithNDays(1).
		WithQuantile(0.8).
		WithAlpha(0.6).
		WithInterventions([]intervention.Intervention{iv}).
		WithResources([]workload.Resource{workload.NewResource([]float64{0}, []float64{10})}).
		WithExclusions([]exclusion.InterventionExclusions{exclusion.New(nil)}).
		Build()
	require.ErrorIs(t, err, maintenance.ErrEmptyScenariosNumber)
}

func TestQuantileIndexDerivation(t *testing.T) {
	m := buildMaintenance(t)
	// ceil(4*0.8)-1=3, ceil(5*0.8)-1=3, ceil(2*0.8)-1=1
	require.Equal(t, []int{3, 3, 1}, m.Quantiles())
	require.Equal(t, 5, m.NScenarios())
}

func TestQuantilesByPeriod(t *testing.T) {
	m := buildMaintenance(t)
	p := period.MustNew(ids.Day(1), ids.Day(2))
	require.Equal(t, []int{3, 1}, m.QuantilesByPeriod(p))
	require.Equal(t, []int{5, 2}, m.ScenariosNumberByPeriod(p))
}

func TestAccessorsByID(t *testing.T) {
	m := buildMaintenance(t)
	require.Equal(t, 1, m.NInterventions())
	require.Equal(t, []ids.IID{0}, m.InterventionIDs())
	require.Equal(t, ids.Day(0), m.Intervention(ids.IID(0)).LatestStart())
	require.Equal(t, 1, m.NResources())
	require.False(t, m.Exclusions(ids.IID(0)).IsExcluded(seasons.New(1), nil))
}

func TestMaintenanceMappingStartsEmpty(t *testing.T) {
	mm := maintenance.NewMaintenanceMapping()
	require.Empty(t, mm.Resources)
	require.Empty(t, mm.Interventions)
	require.Empty(t, mm.Seasons)
}
