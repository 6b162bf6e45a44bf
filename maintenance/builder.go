package maintenance

import (
	"github.com/katalvlaran/maintsched/exclusion"
	"github.com/katalvlaran/maintsched/intervention"
	"github.com/katalvlaran/maintsched/workload"
)

// Builder assembles a Maintenance field-by-field. Build derives the
// instance-wide nscenarios and the per-day quantile index table from
// scenariosNumber and quantile.
type Builder struct {
	ndays           *int
	quantile        *float64
	alpha           *float64
	interventions   []intervention.Intervention
	resources       []workload.Resource
	exclusions      []exclusion.InterventionExclusions
	scenariosNumber []int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// WithNDays sets the planning horizon length.
func (b *Builder) WithNDays(ndays int) *Builder {
	b.ndays = &ndays
	return b
}

// WithQuantile sets the tail quantile tau.
func (b *Builder) WithQuantile(q float64) *Builder {
	b.quantile = &q
	return b
}

// WithAlpha sets the mean/excess blending weight.
func (b *Builder) WithAlpha(alpha float64) *Builder {
	b.alpha = &alpha
	return b
}

// WithInterventions sets every Intervention, indexed by IID.
func (b *Builder) WithInterventions(ivs []intervention.Intervention) *Builder {
	b.interventions = ivs
	return b
}

// WithResources sets every Resource's bounds, indexed by RID.
func (b *Builder) WithResources(resources []workload.Resource) *Builder {
	b.resources = resources
	return b
}

// WithExclusions sets the exclusion rule set for every intervention,
// indexed by IID, parallel to interventions.
func (b *Builder) WithExclusions(excl []exclusion.InterventionExclusions) *Builder {
	b.exclusions = excl
	return b
}

// WithScenariosNumber sets the per-day scenario count table.
func (b *Builder) WithScenariosNumber(n []int) *Builder {
	b.scenariosNumber = n
	return b
}

// Build validates every required field was set, derives nscenarios and the
// per-day quantile index table, and returns the immutable Maintenance.
func (b *Builder) Build() (Maintenance, error) {
	if b.ndays == nil || b.quantile == nil || b.alpha == nil ||
		b.interventions == nil || b.resources == nil || b.exclusions == nil {
		return Maintenance{}, ErrBuilderIncomplete
	}
	if len(b.scenariosNumber) == 0 {
		return Maintenance{}, ErrEmptyScenariosNumber
	}

	nscenarios := 0
	for _, nb := range b.scenariosNumber {
		if nb > nscenarios {
			nscenarios = nb
		}
	}

	quantiles := make([]int, len(b.scenariosNumber))
	for d, nb := range b.scenariosNumber {
		quantiles[d] = quantileIndex(nb, *b.quantile)
	}

	return Maintenance{
		ndays:           *b.ndays,
		quantile:        *b.quantile,
		alpha:           *b.alpha,
		interventions:   b.interventions,
		resources:       b.resources,
		exclusions:      b.exclusions,
		scenariosNumber: b.scenariosNumber,
		quantiles:       quantiles,
		nscenarios:      nscenarios,
	}, nil
}
