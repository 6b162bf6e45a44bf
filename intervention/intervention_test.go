package intervention_test

import (
	"testing"

	"github.com/katalvlaran/maintsched/ids"
	"github.com/katalvlaran/maintsched/intervention"
	"github.com/katalvlaran/maintsched/period"
	"github.com/katalvlaran/maintsched/risks"
	"github.com/katalvlaran/maintsched/seasons"
	"github.com/katalvlaran/maintsched/workload"
	"github.com/stretchr/testify/require"
)

// buildTwoStart builds an Intervention with two candidate starts (day 0 and
// day 1), each of duration 2, one resource, two scenarios, and risk values
// 1..8 (four per start, day-offset-major, scenario-minor).
func buildTwoStart(t *testing.T) intervention.Intervention {
	t.Helper()

	r, err := risks.NewBuilder().
		WithNScenarios(2).
		WithPeriodSlice([]int{0, 4, 8}).
		WithValues([]float64{1, 2, 3, 4, 5, 6, 7, 8}).
		Build()
	require.NoError(t, err)

	s0 := seasons.New(2)
	s0.Set(ids.SID(0))
	s1 := seasons.New(2)
	s1.Set(ids.SID(1))

	iv, err := intervention.NewBuilder().
		WithLatestStart(ids.Day(1)).
		WithPeriods([]period.Period{
			period.MustNew(ids.Day(0), ids.Day(2)),
			period.MustNew(ids.Day(1), ids.Day(2)),
		}).
		WithSeasons([]seasons.Seasons{s0, s1}).
		WithRisks(r).
		WithWorkloads([][]workload.Workload{
			{workload.New(ids.RID(0), []float64{3, 3})},
			{workload.New(ids.RID(0), []float64{4, 4})},
		}).
		WithResourceOrder([]ids.RID{ids.RID(0)}).
		Build()
	require.NoError(t, err)
	return iv
}

func TestBuilderRejectsIncompleteFields(t *testing.T) {
	_, err := intervention.NewBuilder().WithLatestStart(ids.Day(0)).Build()
	require.ErrorIs(t, err, intervention.ErrBuilderIncomplete)
}

func TestDaysAndLatestStart(t *testing.T) {
	iv := buildTwoStart(t)
	require.Equal(t, ids.Day(1), iv.LatestStart())
	require.Equal(t, []ids.Day{0, 1}, iv.Days())
	require.True(t, iv.IsDayCompatible(ids.Day(1)))
	require.False(t, iv.IsDayCompatible(ids.Day(2)))
}

func TestPeriodAndSeasonsIndexing(t *testing.T) {
	iv := buildTwoStart(t)
	require.Equal(t, ids.Day(0), iv.Period(ids.Day(0)).Start())
	require.Equal(t, ids.Day(1), iv.Period(ids.Day(1)).Start())
	require.True(t, iv.Seasons(ids.Day(0)).Test(ids.SID(0)))
	require.True(t, iv.Seasons(ids.Day(1)).Test(ids.SID(1)))
}

func TestRiskAccessorsMatchTensor(t *testing.T) {
	iv := buildTwoStart(t)
	require.Equal(t, []float64{1, 2, 3, 4}, iv.PeriodRisks(ids.Day(0)))
	require.Equal(t, []float64{3, 7}, iv.SummedRisks(ids.Day(0)))
	require.Equal(t, []float64{5, 6, 7, 8}, iv.PeriodRisks(ids.Day(1)))
	require.Equal(t, []float64{11, 15}, iv.SummedRisks(ids.Day(1)))
}

func TestWorkloadsIndexing(t *testing.T) {
	iv := buildTwoStart(t)
	require.Equal(t, 1, iv.NResources())
	require.Equal(t, []ids.RID{ids.RID(0)}, iv.ResourceOrder())
	require.Equal(t, 6.0, iv.Workloads(ids.Day(0))[0].Total())
	require.Equal(t, 8.0, iv.Workloads(ids.Day(1))[0].Total())
}
