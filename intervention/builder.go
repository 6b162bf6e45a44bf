package intervention

import (
	"github.com/katalvlaran/maintsched/ids"
	"github.com/katalvlaran/maintsched/period"
	"github.com/katalvlaran/maintsched/risks"
	"github.com/katalvlaran/maintsched/seasons"
	"github.com/katalvlaran/maintsched/workload"
)

// Builder assembles an Intervention field-by-field, returning
// ErrBuilderIncomplete from Build if a required field was never set.
type Builder struct {
	latestStart    *ids.Day
	periods        []period.Period
	seasonsOfStart []seasons.Seasons
	risks          *risks.Risks
	workloads      [][]workload.Workload
	resourceOrder  []ids.RID
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// WithLatestStart sets the last day this intervention may start on.
func (b *Builder) WithLatestStart(day ids.Day) *Builder {
	b.latestStart = &day
	return b
}

// WithPeriods sets the per-start-day Period slice.
func (b *Builder) WithPeriods(periods []period.Period) *Builder {
	b.periods = periods
	return b
}

// WithSeasons sets the per-start-day active-season masks.
func (b *Builder) WithSeasons(s []seasons.Seasons) *Builder {
	b.seasonsOfStart = s
	return b
}

// WithRisks sets the risk tensor.
func (b *Builder) WithRisks(r risks.Risks) *Builder {
	b.risks = &r
	return b
}

// WithWorkloads sets the per-start-day workload vectors, one slice of
// NResources() entries per candidate start, in resource order.
func (b *Builder) WithWorkloads(w [][]workload.Workload) *Builder {
	b.workloads = w
	return b
}

// WithResourceOrder fixes the resource order workload entries follow.
func (b *Builder) WithResourceOrder(order []ids.RID) *Builder {
	b.resourceOrder = order
	return b
}

// Build validates every required field was set and returns the immutable
// Intervention.
func (b *Builder) Build() (Intervention, error) {
	if b.latestStart == nil || b.periods == nil || b.seasonsOfStart == nil ||
		b.risks == nil || b.workloads == nil || b.resourceOrder == nil {
		return Intervention{}, ErrBuilderIncomplete
	}
	return Intervention{
		latestStart:    *b.latestStart,
		periods:        b.periods,
		seasonsOfStart: b.seasonsOfStart,
		risks:          *b.risks,
		workloads:      b.workloads,
		resourceOrder:  b.resourceOrder,
	}, nil
}
