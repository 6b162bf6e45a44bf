// Package maintenance defines the Maintenance aggregate: the full instance
// under optimization — every Intervention, every Resource's min/max bounds,
// the per-intervention exclusion rules, the per-day scenario counts, and
// the derived per-day quantile index used by the cost pipeline in package
// search.
//
// Maintenance is built once, by Builder. MaintenanceMapping (human-readable
// names for resources, interventions and seasons) is kept alongside it but
// is never consulted by the solver itself — it exists purely for an
// embedder that wants to report results back by name.
package maintenance
