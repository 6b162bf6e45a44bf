// Package search_test demonstrates running a single Schedule call and
// reading back the resulting cost via a runnable Example function.
package search_test

import (
	"fmt"

	"github.com/katalvlaran/maintsched/exclusion"
	"github.com/katalvlaran/maintsched/ids"
	"github.com/katalvlaran/maintsched/intervention"
	"github.com/katalvlaran/maintsched/maintenance"
	"github.com/katalvlaran/maintsched/period"
	"github.com/katalvlaran/maintsched/risks"
	"github.com/katalvlaran/maintsched/search"
	"github.com/katalvlaran/maintsched/seasons"
	"github.com/katalvlaran/maintsched/workload"
)

// ExampleLocalSearch_Schedule builds a single-intervention cost-pipeline
// instance and schedules it on its only candidate day.
func ExampleLocalSearch_Schedule() {
	r, _ := risks.NewBuilder().
		WithNScenarios(2).
		WithPeriodSlice([]int{0, 6}).
		WithValues([]float64{2, 4, 6, 8, 10, 12}).
		Build()

	iv, _ := intervention.NewBuilder().
		WithLatestStart(ids.Day(0)).
		WithPeriods([]period.Period{period.MustNew(ids.Day(0), ids.Day(3))}).
		WithSeasons([]seasons.Seasons{seasons.New(1)}).
		WithRisks(r).
		WithWorkloads([][]workload.Workload{{workload.New(ids.RID(0), []float64{1, 1, 1})}}).
		WithResourceOrder([]ids.RID{ids.RID(0)}).
		Build()

	m, _ := maintenance.NewBuilder().
		WithNDays(3).
		WithQuantile(0.5).
		WithAlpha(0.5).
		WithInterventions([]intervention.Intervention{iv}).
		WithResources([]workload.Resource{workload.NewResource([]float64{0, 0, 0}, []float64{10, 10, 10})}).
		WithExclusions([]exclusion.InterventionExclusions{exclusion.New(nil)}).
		WithScenariosNumber([]int{2, 2, 2}).
		Build()

	ls := search.New(m)
	if err := ls.Schedule(ids.IID(0), ids.Day(0)); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("cost=%.1f\n", ls.Cost())
	// Output: cost=3.5
}
