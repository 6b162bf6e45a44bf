// Package maintsched implements the core constructive local-search engine
// of a maintenance-scheduling solver: interventions must be placed on start
// days under resource-capacity, temporal and seasonal-exclusion
// constraints, minimizing a risk objective that blends mean risk with a
// tail-quantile excess.
//
// The module has no executable of its own; it is a library meant to be
// embedded by a loader (parses an instance into a Maintenance), a writer
// (serializes a Planning back out), and optionally a CLI or HTTP server -
// all outside this module's scope. Everything the solver itself needs is
// organized under focused subpackages:
//
//	ids/         — Day, IID, RID, SID, PID: distinct integer handle types
//	period/      — Period and its Allen-relation predicates
//	seasons/     — fixed-capacity season bitsets
//	risks/       — the jagged per-(day,scenario) risk tensor and its builder
//	workload/    — per-resource load tracking and min/max bounds
//	exclusion/   — pairwise seasonal exclusion rules
//	intervention/— the immutable per-task candidate-start bundle
//	maintenance/ — the full optimization instance (Maintenance) and Planning
//	search/      — SearchState, the six-stage cost pipeline, and LocalSearch
//
// A small in-memory runnable demonstration is ExampleLocalSearch_Schedule in
// package search.
package maintsched
