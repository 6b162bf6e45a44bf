// Package intervention defines the immutable Intervention composite: for
// one maintenance task, the set of candidate start days, each start's
// Period, its active Seasons mask, its Risks tensor, and the Workload
// vectors it commits per resource per start.
//
// An Intervention is built once, by Builder, and never mutated afterwards;
// every accessor except Days indexes straight into a precomputed slice;
// Days builds its 0..=LatestStart slice on each call.
package intervention
